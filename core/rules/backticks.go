package rules

import (
	"strings"

	"github.com/shlint/shlint/core/scanner"
)

func checkBacktickSubstitution(ctx *scanner.LineContext) *scanner.Match {
	idx := strings.IndexByte(ctx.Code(), '`')
	if idx < 0 {
		return nil
	}

	return &scanner.Match{
		Col:     idx + 1,
		Message: "backtick command substitution doesn't nest and is easy to misread; use $(...)",
	}
}

func init() {
	register(scanner.Rule{
		ID:       "backtick-substitution",
		Short:    "Flags `...` command substitution in favor of $(...).",
		Severity: scanner.Warning,
		Check:    checkBacktickSubstitution,
	})
}
