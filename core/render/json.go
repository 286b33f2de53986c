package render

import (
	"encoding/json"
	"io"

	"github.com/shlint/shlint/core/scanner"
)

// Record is the machine-readable form of one diagnostic.
type Record struct {
	Path     string           `json:"path"`
	Line     int              `json:"line"`
	Col      int              `json:"col,omitempty"`
	RuleID   string           `json:"rule_id"`
	Severity scanner.Severity `json:"severity"`
	Message  string           `json:"message"`
}

// JSON renders all diagnostics as a single JSON array ordered by file
// then by the diagnostic order within each file. Records are buffered
// until Close so multi-file runs produce one document.
type JSON struct {
	w       io.Writer
	records []Record
}

func NewJSON(w io.Writer) *JSON {
	return &JSON{w: w, records: []Record{}}
}

func (j *JSON) Render(path string, result *scanner.ScanResult) error {
	for _, d := range result.Diagnostics {
		j.records = append(j.records, Record{
			Path:     path,
			Line:     d.Line,
			Col:      d.Col,
			RuleID:   d.RuleID,
			Severity: d.Severity,
			Message:  d.Message,
		})
	}
	return nil
}

func (j *JSON) Close() error {
	encoder := json.NewEncoder(j.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(j.records)
}
