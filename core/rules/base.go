// Package rules holds the builtin rule catalog. Each rule lives in its
// own file and registers itself from init(), mirroring how a shell
// would expose one binary per check.
package rules

import (
	"fmt"
	"regexp"
	"strings"

	shlex "github.com/anmitsu/go-shlex"
	"github.com/shlint/shlint/core/scanner"
)

// AllRules holds every registered builtin rule keyed by id.
var AllRules = make(map[string]scanner.Rule)

// registration order, used as the deterministic tiebreak for
// diagnostics on the same line.
var order []string

func register(rule scanner.Rule) {
	if _, ok := AllRules[rule.ID]; ok {
		panic(fmt.Sprintf("rule registered twice: %s", rule.ID))
	}
	AllRules[rule.ID] = rule
	order = append(order, rule.ID)
}

// Builtin returns a fresh copy of the builtin rules in registration
// order. Callers may reorder or trim the slice without affecting other
// scans.
func Builtin() []scanner.Rule {
	out := make([]scanner.Rule, 0, len(order))
	for _, id := range order {
		out = append(out, AllRules[id])
	}
	return out
}

// segment is one command-separated span of a blanked line.
type segment struct {
	// text is the blanked slice of the line, whitespace included.
	text string
	// col is the 1-based byte column of the segment's first non-blank
	// character, 0 for an all-blank segment.
	col int
	// next is the separator following the segment: ";", "&", "|",
	// "&&", "||" or "" at end of line.
	next string
}

// splitSegments cuts a blanked line on unquoted command separators.
// A lone & after > (as in 2>&1) is a redirect, not a separator.
func splitSegments(code string) []segment {
	var segs []segment
	start := 0

	flush := func(end int, next string) {
		text := code[start:end]
		col := 0
		if lead := len(text) - len(strings.TrimLeft(text, " \t")); lead < len(text) {
			col = start + lead + 1
		}
		segs = append(segs, segment{text: text, col: col, next: next})
	}

	for i := 0; i < len(code); i++ {
		switch code[i] {
		case ';':
			flush(i, ";")
			start = i + 1
		case '&', '|':
			if code[i] == '&' && i > 0 && code[i-1] == '>' {
				continue
			}
			if i+1 < len(code) && code[i+1] == code[i] {
				flush(i, code[i:i+2])
				i++
			} else {
				flush(i, string(code[i]))
			}
			start = i + 1
		}
	}
	flush(len(code), "")

	return segs
}

// splitWords splits a segment into shell words. Lines the lexer can't
// handle (stray quotes survive blanking only in pathological input)
// fall back to whitespace splitting.
func splitWords(text string) []string {
	words, err := shlex.Split(text, true)
	if err != nil {
		return strings.Fields(text)
	}
	return words
}

// commandPrefixes are words that may precede the command in command
// position without changing which word the command is.
var commandPrefixes = map[string]bool{
	"if": true, "elif": true, "while": true, "until": true,
	"then": true, "else": true, "do": true, "!": true,
	"time": true, "exec": true, "command": true, "builtin": true,
	"env": true, "nohup": true, "sudo": true,
}

// conditionalPrefixes are the subset whose construct consumes the
// command's exit status.
var conditionalPrefixes = map[string]bool{
	"if": true, "elif": true, "while": true, "until": true, "!": true,
}

var assignPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\[[^\]]*\])?\+?=`)

// firstCommand returns the word in command position of a segment,
// skipping prefix words and VAR=value assignments, plus whether the
// command's exit status is consumed by a conditional construct.
func firstCommand(text string) (cmd string, conditional bool) {
	for _, w := range splitWords(text) {
		switch {
		case commandPrefixes[w]:
			if conditionalPrefixes[w] {
				conditional = true
			}
		case assignPattern.MatchString(w):
			// Environment assignment prefix; keep looking.
		default:
			return w, conditional
		}
	}
	return "", conditional
}
