package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shlint/shlint/core/scanner"
	"mvdan.cc/sh/v3/syntax"
)

var expansionPattern = regexp.MustCompile(`\$(\{[^}]*\}|[A-Za-z_][A-Za-z0-9_]*)`)

// blankArithmetic blanks $(( ... )) and (( ... )) spans; expansions
// inside arithmetic don't wordsplit.
func blankArithmetic(code string) string {
	for {
		open := strings.Index(code, "((")
		if open < 0 {
			return code
		}
		start := open
		if start > 0 && code[start-1] == '$' {
			start--
		}
		closing := strings.Index(code[open:], "))")
		end := len(code)
		if closing >= 0 {
			end = open + closing + 2
		}
		code = code[:start] + strings.Repeat(" ", end-start) + code[end:]
	}
}

func checkUnquotedExpansion(ctx *scanner.LineContext) *scanner.Match {
	code := blankArithmetic(ctx.Code())

	loc := expansionPattern.FindStringSubmatchIndex(code)
	if loc == nil {
		return nil
	}

	param := code[loc[2]:loc[3]]
	if param[0] == '{' {
		param = param[1 : len(param)-1]
	}

	// Plain variable names get a concrete rewrite; compound expansions
	// (${x:-y}, ${a[0]}, ${#x}) a generic one.
	message := "this parameter expansion is unquoted and subject to wordsplitting and globbing; wrap it in double quotes"
	if syntax.ValidName(param) {
		message = fmt.Sprintf(
			"expansion of $%s is unquoted and subject to wordsplitting and globbing; use \"${%s}\"",
			param, param)
	}

	return &scanner.Match{Col: loc[0] + 1, Message: message}
}

func init() {
	register(scanner.Rule{
		ID:       "unquoted-expansion",
		Short:    "Flags parameter expansions outside quotes.",
		Severity: scanner.Warning,
		Check:    checkUnquotedExpansion,
	})
}
