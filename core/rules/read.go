package rules

import (
	"strings"

	"github.com/shlint/shlint/core/scanner"
)

func checkReadWithoutR(ctx *scanner.LineContext) *scanner.Match {
	for _, seg := range splitSegments(ctx.Code()) {
		cmd, _ := firstCommand(seg.text)
		if cmd != "read" {
			continue
		}

		raw := false
		for _, w := range splitWords(seg.text) {
			if strings.HasPrefix(w, "-") && w != "--" && strings.ContainsRune(w[1:], 'r') {
				raw = true
				break
			}
		}
		if raw {
			continue
		}

		return &scanner.Match{
			Col:     seg.col,
			Message: "read without -r treats backslashes as escapes and mangles input; use read -r",
		}
	}
	return nil
}

func init() {
	register(scanner.Rule{
		ID:       "read-without-r",
		Short:    "Flags read invocations missing the -r flag.",
		Severity: scanner.Warning,
		Check:    checkReadWithoutR,
	})
}
