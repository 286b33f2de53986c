package rules

import (
	"strings"

	"github.com/shlint/shlint/core/scanner"
)

// The kernel only honors a shebang on the very first line, so a #!
// after a blank line doesn't count.
func checkMissingShebang(ctx *scanner.LineContext) *scanner.Match {
	if ctx.Num != 1 || ctx.EOF {
		return nil
	}
	if strings.HasPrefix(ctx.Raw, "#!") {
		return nil
	}

	return &scanner.Match{
		Col:     1,
		Message: "script doesn't declare an interpreter; start it with #!/bin/sh or #!/usr/bin/env bash",
	}
}

func init() {
	register(scanner.Rule{
		ID:       "missing-shebang",
		Short:    "Flags scripts that don't start with a #! line.",
		Severity: scanner.Warning,
		Check:    checkMissingShebang,
	})
}
