package rules

import (
	"strings"

	"github.com/shlint/shlint/core/scanner"
)

// unguardedCd returns whether the blanked line invokes cd without its
// status being consumed on the same line.
func unguardedCd(code string) bool {
	for _, seg := range splitSegments(code) {
		cmd, conditional := firstCommand(seg.text)
		if cmd != "cd" || conditional {
			continue
		}
		if seg.next == "&&" || seg.next == "||" {
			continue
		}
		return true
	}
	return false
}

// statusCheck returns whether the blanked line inspects the previous
// command's exit status.
func statusCheck(code string) bool {
	trimmed := strings.TrimSpace(code)
	if strings.Contains(trimmed, "$?") {
		return true
	}
	first := strings.Fields(trimmed)
	return len(first) > 0 && conditionalPrefixes[first[0]]
}

// checkUncheckedCd fires one line late: the previous line must have
// invoked cd unguarded, and the current line must not check its status.
// The scanner's end-of-input pass makes this work on the last line too.
func checkUncheckedCd(ctx *scanner.LineContext) *scanner.Match {
	if !unguardedCd(ctx.PrevCode) {
		return nil
	}
	if !ctx.EOF && statusCheck(ctx.Code()) {
		return nil
	}

	return &scanner.Match{
		Line:    ctx.Num - 1,
		Message: "cd can fail and the script keeps running in the wrong directory; use cd ... || exit",
	}
}

func init() {
	register(scanner.Rule{
		ID:       "unchecked-cd",
		Short:    "Flags cd invocations whose failure isn't handled.",
		Severity: scanner.Error,
		Check:    checkUncheckedCd,
	})
}
