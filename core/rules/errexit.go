package rules

import (
	"strings"

	"github.com/shlint/shlint/core/scanner"
)

// errexitEnabled reports whether a set invocation turns on errexit,
// either as -e (possibly clustered, as in -euo) or as -o errexit.
func errexitEnabled(words []string) bool {
	for i, w := range words[1:] {
		switch {
		case w == "-o":
			if i+2 < len(words) && words[i+2] == "errexit" {
				return true
			}
		case strings.HasPrefix(w, "-") && strings.ContainsRune(w[1:], 'e'):
			return true
		}
	}
	return false
}

func checkErrexitFlag(ctx *scanner.LineContext) *scanner.Match {
	for _, seg := range splitSegments(ctx.Code()) {
		cmd, _ := firstCommand(seg.text)
		if cmd != "set" {
			continue
		}
		if !errexitEnabled(splitWords(seg.text)) {
			continue
		}

		return &scanner.Match{
			Col:     seg.col,
			Message: "errexit is implicitly disabled in many contexts (conditions, command substitution); don't rely on it alone",
		}
	}
	return nil
}

func init() {
	register(scanner.Rule{
		ID:       "errexit-flag",
		Short:    "Flags reliance on set -e / set -o errexit.",
		Severity: scanner.Warning,
		Check:    checkErrexitFlag,
	})
}
