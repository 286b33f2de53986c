// Package render turns scan results into human- or machine-readable
// output.
package render

import (
	"fmt"
	"io"

	"github.com/shlint/shlint/core/scanner"
)

// A Renderer consumes per-file scan results. Close flushes any output
// the renderer buffered; text output is written as results arrive.
type Renderer interface {
	Render(path string, result *scanner.ScanResult) error
	Close() error
}

// New builds the renderer for a format name from the configuration.
func New(format string, mode ColorMode, w io.Writer) (Renderer, error) {
	switch format {
	case "text":
		return NewText(w, mode), nil
	case "json":
		return NewJSON(w), nil
	default:
		return nil, fmt.Errorf("unknown output format: %q", format)
	}
}
