package pipeline

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/spantable/pkg/cache"
	"github.com/matzehuels/spantable/pkg/gridio"
	"github.com/matzehuels/spantable/pkg/table"
)

// Runner executes layout pipelines against a shared cache.
// A Runner is safe for concurrent use; each Execute call owns its own
// tracker state inside [table.Layout].
type Runner struct {
	cache  cache.Cache
	logger *log.Logger
}

// NewRunner creates a pipeline runner. A nil cache disables caching and a
// nil logger discards log output.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{cache: c, logger: logger}
}

// Close releases the runner's cache resources.
func (r *Runner) Close() error {
	return r.cache.Close()
}

// Execute runs the full pipeline: decode both specs, look up the cache,
// compute the layout on a miss, encode, and store.
//
// Decode failures surface with code INVALID_INPUT and zero-dimension spans
// with INVALID_SPAN; the layout stage itself cannot fail. Cache backend
// errors are logged and degrade to recomputation, never to a failed run.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	spans, err := gridio.DecodeSpans(opts.SpanInfo)
	if err != nil {
		return nil, err
	}
	rows, err := gridio.DecodeTable(opts.Table)
	if err != nil {
		return nil, err
	}

	anchors := 0
	for _, row := range rows {
		anchors += len(row)
	}

	key := cache.LayoutKey(opts.SpanInfo, opts.Table)

	if !opts.Refresh {
		if res, ok := r.fromCache(ctx, key, opts); ok {
			res.Stats.Anchors = anchors
			return res, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	layout := table.Layout(spans, rows)
	elapsed := time.Since(start)
	r.logger.Debug("layout computed", "rows", len(layout), "anchors", anchors, "took", elapsed)

	encoded, err := encode(layout, opts.Indent)
	if err != nil {
		return nil, err
	}

	// Cache the compact form so hits are independent of the indent flag.
	compact, err := gridio.EncodeLayout(layout)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, key, compact, 0); err != nil {
		r.logger.Debug("cache store failed", "err", err)
	}

	return &Result{
		Layout:  layout,
		Encoded: encoded,
		Stats: Stats{
			Rows:       len(layout),
			Cells:      countCells(layout),
			Anchors:    anchors,
			LayoutTime: elapsed,
		},
	}, nil
}

// fromCache attempts to serve a run from the cache. Backend errors and
// undecodable entries count as misses.
func (r *Runner) fromCache(ctx context.Context, key string, opts Options) (*Result, bool) {
	data, hit, err := r.cache.Get(ctx, key)
	if err != nil {
		r.logger.Debug("cache lookup failed", "err", err)
		return nil, false
	}
	if !hit {
		return nil, false
	}

	var layout [][]table.Cell[string]
	if err := json.Unmarshal(data, &layout); err != nil {
		r.logger.Debug("cache entry undecodable, recomputing", "err", err)
		return nil, false
	}

	encoded := data
	if opts.Indent {
		if encoded, err = encode(layout, true); err != nil {
			return nil, false
		}
	}

	r.logger.Debug("layout served from cache", "rows", len(layout))
	return &Result{
		Layout:   layout,
		Encoded:  encoded,
		Stats:    Stats{Rows: len(layout), Cells: countCells(layout)},
		CacheHit: true,
	}, true
}

func encode(layout [][]table.Cell[string], indent bool) ([]byte, error) {
	if !indent {
		return gridio.EncodeLayout(layout)
	}
	data, err := json.MarshalIndent(layout, "", "  ")
	if err != nil {
		return nil, err
	}
	return data, nil
}

func countCells(layout [][]table.Cell[string]) int {
	n := 0
	for _, row := range layout {
		n += len(row)
	}
	return n
}
