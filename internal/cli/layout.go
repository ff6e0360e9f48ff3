package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/spantable/pkg/errors"
	"github.com/matzehuels/spantable/pkg/pipeline"
)

// layoutCommand creates the layout command for computing dense table grids.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{
		Indent: c.config.Indent,
	}
	noCache = c.config.NoCache

	cmd := &cobra.Command{
		Use:   "layout SPANINFO TABLE",
		Short: "Compute a dense table grid from spans and anchor rows",
		Long: `Compute a dense table grid from spans and anchor rows.

SPANINFO is a JSON object mapping cell identifiers to [rows, cols] span
pairs. Identifiers absent from the object span a single cell. TABLE is a
two-dimensional JSON array listing only the anchor cell of each span, in
row-major order.

Both arguments accept a literal JSON string, @path to read from a file,
or - to read from stdin (at most one argument may be -).

The output grid widens each row to the extent the spans require, with
null marking every position a span occupies beyond its anchor.

Results are cached locally for faster repeated runs.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], args[1], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.Indent, "indent", opts.Indent, "pretty-print the output grid")
	cmd.Flags().BoolVar(&noCache, "no-cache", noCache, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even if a cached result exists")

	return cmd
}

// runLayout resolves the two spec arguments, runs the pipeline, and writes
// the encoded grid to stdout or the output file.
func (c *CLI) runLayout(ctx context.Context, spanArg, tableArg string, opts pipeline.Options, output string, noCache bool) error {
	if spanArg == "-" && tableArg == "-" {
		return fmt.Errorf("only one argument may read from stdin")
	}
	spanSpec, err := resolveSpecArg(spanArg, os.Stdin)
	if err != nil {
		return fmt.Errorf("read span spec: %w", err)
	}
	tableSpec, err := resolveSpecArg(tableArg, os.Stdin)
	if err != nil {
		return fmt.Errorf("read table spec: %w", err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.SpanInfo = spanSpec
	opts.Table = tableSpec

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Laid out %d rows", result.Stats.Rows))

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if output == "" {
		fmt.Println(string(result.Encoded))
		return nil
	}

	if err := os.WriteFile(output, append(result.Encoded, '\n'), 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}

	printSuccess("Layout complete")
	printFile(output)
	printStats(result.Stats.Rows, result.Stats.Cells, result.CacheHit)

	return nil
}

// resolveSpecArg turns a positional spec argument into its JSON text.
// "@path" reads the named file, "-" reads stdin, anything else is taken
// as literal JSON.
func resolveSpecArg(arg string, stdin io.Reader) (string, error) {
	switch {
	case arg == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	case strings.HasPrefix(arg, "@"):
		path := strings.TrimPrefix(arg, "@")
		data, err := os.ReadFile(path)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "read spec file %s", path)
		}
		return strings.TrimSpace(string(data)), nil
	default:
		return arg, nil
	}
}
