package rules

import (
	"fmt"

	"github.com/shlint/shlint/core/scanner"
)

func checkSingleBracketTest(ctx *scanner.LineContext) *scanner.Match {
	for _, seg := range splitSegments(ctx.Code()) {
		cmd, _ := firstCommand(seg.text)
		if cmd != "[" && cmd != "test" {
			continue
		}

		return &scanner.Match{
			Col: seg.col,
			Message: fmt.Sprintf(
				"%s wordsplits its unquoted operands; use [[ ... ]]", cmd),
		}
	}
	return nil
}

func init() {
	register(scanner.Rule{
		ID:       "single-bracket-test",
		Short:    "Flags [ ... ] and test in favor of [[ ... ]].",
		Severity: scanner.Warning,
		Check:    checkSingleBracketTest,
	})
}
