// Package pipeline provides the core layout pipeline for spantable.
//
// This package implements the complete decode → layout → encode pipeline
// shared by the CLI and the HTTP API. By centralizing this logic, both
// entry points behave identically: same validation, same cache keys, same
// output encoding.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Decode: Parse the serialized span spec and table spec
//  2. Layout: Expand the sparse anchor table into a dense grid
//  3. Encode: Serialize the grid with null markers for spanned cells
//
// Results are cached under a content hash of the two inputs, so repeated
// invocations with identical arguments skip the layout stage entirely.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, logger)
//	defer runner.Close()
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    SpanInfo: `{"a": [2, 2]}`,
//	    Table:    `[["a", "b"], ["c", "d"]]`,
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(string(result.Encoded))
package pipeline

import (
	"time"

	"github.com/matzehuels/spantable/pkg/errors"
	"github.com/matzehuels/spantable/pkg/table"
)

// Options contains all configuration for one layout pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// SpanInfo is the serialized span spec: a JSON object mapping cell
	// identifiers to [rows, cols] pairs.
	SpanInfo string `json:"span_info"`

	// Table is the serialized table spec: a two-dimensional JSON array of
	// cell identifiers (anchors only).
	Table string `json:"table"`

	// Indent pretty-prints the encoded layout.
	Indent bool `json:"indent,omitempty"`

	// Refresh bypasses the cache read (the result is still stored).
	Refresh bool `json:"refresh,omitempty"`
}

// Validate checks that the required inputs are present.
func (o *Options) Validate() error {
	if o.SpanInfo == "" {
		return errors.New(errors.ErrCodeInvalidInput, "span spec is required")
	}
	if o.Table == "" {
		return errors.New(errors.ErrCodeInvalidInput, "table spec is required")
	}
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the computed dense grid.
	Layout [][]table.Cell[string]

	// Encoded is the JSON form of the layout (compact, or indented when
	// Options.Indent was set).
	Encoded []byte

	// Stats contains size and timing information.
	Stats Stats

	// CacheHit reports whether the result came from the cache.
	CacheHit bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Rows       int           // output rows, including trailing span rows
	Cells      int           // total output positions (present + empty)
	Anchors    int           // anchors in the input
	LayoutTime time.Duration // zero on a cache hit
}
