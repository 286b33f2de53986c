package rules

import (
	"github.com/shlint/shlint/core/scanner"
)

func checkEvalUsage(ctx *scanner.LineContext) *scanner.Match {
	for _, seg := range splitSegments(ctx.Code()) {
		cmd, _ := firstCommand(seg.text)
		if cmd != "eval" {
			continue
		}

		return &scanner.Match{
			Col:     seg.col,
			Message: "eval re-parses its arguments as shell code; a safer construct almost always exists",
		}
	}
	return nil
}

func init() {
	register(scanner.Rule{
		ID:       "eval-usage",
		Short:    "Flags eval in command position.",
		Severity: scanner.Warning,
		Check:    checkEvalUsage,
	})
}
