package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/shlint/shlint/core/scanner"
)

// ColorMode controls when text output is colorized.
type ColorMode string

const (
	ColorAlways ColorMode = "always"
	ColorAuto   ColorMode = "auto"
	ColorNever  ColorMode = "never"
)

// Text renders diagnostics one per line as
// <path>:<line>: [<severity>] <rule-id>: <message>.
type Text struct {
	w io.Writer

	warnColor  *color.Color
	errorColor *color.Color
}

// NewText builds a text renderer writing to w. In auto mode the color
// package's own TTY detection decides whether escapes are emitted.
func NewText(w io.Writer, mode ColorMode) *Text {
	t := &Text{
		w:          w,
		warnColor:  color.New(color.FgYellow, color.Bold),
		errorColor: color.New(color.FgRed, color.Bold),
	}

	switch mode {
	case ColorAlways:
		t.warnColor.EnableColor()
		t.errorColor.EnableColor()
	case ColorNever:
		t.warnColor.DisableColor()
		t.errorColor.DisableColor()
	}

	return t
}

func (t *Text) severity(s scanner.Severity) string {
	switch s {
	case scanner.Error:
		return t.errorColor.Sprintf("[%s]", s)
	default:
		return t.warnColor.Sprintf("[%s]", s)
	}
}

func (t *Text) Render(path string, result *scanner.ScanResult) error {
	for _, d := range result.Diagnostics {
		_, err := fmt.Fprintf(t.w, "%s:%d: %s %s: %s\n",
			path, d.Line, t.severity(d.Severity), d.RuleID, d.Message)
		if err != nil {
			return err
		}
	}
	return nil
}

func (t *Text) Close() error {
	return nil
}
