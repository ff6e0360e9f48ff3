package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// logTimeFormat prints wall-clock time with centiseconds, enough to see
// where a slow run spends its time without sub-millisecond noise.
const logTimeFormat = "15:04:05.00"

// newLogger creates the CLI logger writing to w at the given level.
// Commands run at info by default; --verbose drops the level to debug,
// which also surfaces the pipeline's cache-hit and timing lines.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      logTimeFormat,
		Level:           level,
	})
}

// progress measures one command-level operation, from construction to the
// done call, and reports it as a single info line. Not safe for concurrent
// done calls; each operation gets its own progress.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress starts timing an operation.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time appended, rounded to the
// millisecond: "Laid out 12 rows (3ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
