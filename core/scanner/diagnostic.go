package scanner

import "fmt"

// Severity classifies how important a diagnostic is.
type Severity int

const (
	// Warning marks advisory findings that don't fail a scan.
	Warning Severity = iota
	// Error marks findings that fail a scan.
	Error
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// ParseSeverity converts the textual form used in configuration files
// back into a Severity.
func ParseSeverity(text string) (Severity, error) {
	switch text {
	case "warning":
		return Warning, nil
	case "error":
		return Error, nil
	default:
		return 0, fmt.Errorf("unknown severity: %q", text)
	}
}

// MarshalText implements encoding.TextMarshaler so severities render as
// their lowercase names in JSON and YAML.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Diagnostic is one reported finding, tied to a line and a rule.
// Diagnostics are plain values and never modified once created.
type Diagnostic struct {
	// RuleID names the rule that produced the finding.
	RuleID string `json:"rule_id"`
	// Line is the 1-based line the finding refers to.
	Line int `json:"line"`
	// Col is the 1-based byte column of the finding, 0 if unknown.
	Col int `json:"col,omitempty"`
	// Message describes the finding.
	Message string `json:"message"`

	Severity Severity `json:"severity"`
}

// ScanResult holds the ordered findings of one scan.
type ScanResult struct {
	// Diagnostics are ordered by line, then by the order the rules were
	// supplied in. The order is stable across runs on identical input.
	Diagnostics []Diagnostic
	// Lines is the total number of lines scanned.
	Lines int
}

// HasErrors reports whether any finding has Error severity.
func (r *ScanResult) HasErrors() bool {
	for i := range r.Diagnostics {
		if r.Diagnostics[i].Severity >= Error {
			return true
		}
	}
	return false
}
