// Package scanner implements a rule-based line scanner for shell
// scripts. It applies a caller-supplied set of rules to each line of a
// script and collects the findings into an ordered, deterministic
// ScanResult. The scanner holds no global state; every call owns its
// own buffers, so independent scans may run concurrently.
package scanner

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// InternalRuleID is the rule id attached to diagnostics produced when a
// rule's predicate panics. A broken rule never aborts the scan.
const InternalRuleID = "internal-rule-error"

// Match is a rule's report that it fired on a line. The zero Col means
// the column is unknown. Line, when non-zero, overrides the line number
// the diagnostic is attributed to; rules that look back at the previous
// line use it to flag that line instead of the current one.
type Match struct {
	Col     int
	Line    int
	Message string
}

// Rule pairs an identifier with a matching predicate. Check inspects a
// single line (plus the minimal context in LineContext) and returns nil
// when the rule doesn't apply. Predicates must be pure: same line and
// context in, same result out.
type Rule struct {
	// ID uniquely identifies the rule, e.g. "unquoted-expansion".
	ID string
	// Short is a one line description of what the rule flags.
	Short string

	Severity Severity

	Check func(*LineContext) *Match
}

// EncodingError reports input that is not valid UTF-8. It is the only
// fatal scan condition; no partial result is returned alongside it.
type EncodingError struct {
	// Line is the 1-based line the first invalid sequence was found on.
	Line int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("input is not valid UTF-8 at line %d", e.Line)
}

// pending is a diagnostic plus its sort key. The rule's position in the
// supplied slice breaks ties between findings on the same line, so the
// caller's rule order, not evaluation incidentals, decides the output.
type pending struct {
	diag    Diagnostic
	ruleIdx int
}

// Scan applies every rule to every line of src and returns the ordered
// findings. Lines are split on \n; a trailing newline doesn't add an
// empty final line. Each rule produces at most one diagnostic per line.
// Diagnostics are ordered by line number, then by the position of the
// rule in the supplied slice, so the result is identical across runs on
// identical input.
func Scan(src []byte, rules []Rule) (*ScanResult, error) {
	result := &ScanResult{}
	if len(src) == 0 {
		return result, nil
	}

	lines := strings.Split(string(src), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	result.Lines = len(lines)

	for num, raw := range lines {
		if !utf8.ValidString(raw) {
			return nil, &EncodingError{Line: num + 1}
		}
	}

	var (
		found    []pending
		state    quoteState
		prev     string
		prevCode string
	)
	for num, raw := range lines {
		ctx, next := makeContext(num+1, raw, prev, prevCode, state)
		found = evalRules(found, rules, &ctx)
		state = next
		prev = ctx.Trimmed
		prevCode = ctx.code
	}

	// One synthetic pass past the last line so rules that need to see a
	// following line can still fire at end of input.
	ctx := LineContext{
		Num:         result.Lines + 1,
		PrevTrimmed: prev,
		PrevCode:    prevCode,
		InQuote:     state.open(),
		EOF:         true,
	}
	found = evalRules(found, rules, &ctx)

	sort.SliceStable(found, func(i, j int) bool {
		if found[i].diag.Line != found[j].diag.Line {
			return found[i].diag.Line < found[j].diag.Line
		}
		return found[i].ruleIdx < found[j].ruleIdx
	})
	for _, p := range found {
		result.Diagnostics = append(result.Diagnostics, p.diag)
	}

	return result, nil
}

func evalRules(found []pending, rules []Rule, ctx *LineContext) []pending {
	for i := range rules {
		rule := &rules[i]
		match, err := checkOne(rule, ctx)
		if err != nil {
			if ctx.EOF {
				// Already reported on every real line.
				continue
			}
			found = append(found, pending{
				diag: Diagnostic{
					RuleID:   InternalRuleID,
					Line:     ctx.Num,
					Message:  fmt.Sprintf("rule %s failed: %v", rule.ID, err),
					Severity: Error,
				},
				ruleIdx: i,
			})
			continue
		}
		if match == nil {
			continue
		}

		line := ctx.Num
		if match.Line > 0 {
			line = match.Line
		}
		found = append(found, pending{
			diag: Diagnostic{
				RuleID:   rule.ID,
				Line:     line,
				Col:      match.Col,
				Message:  match.Message,
				Severity: rule.Severity,
			},
			ruleIdx: i,
		})
	}

	return found
}

// checkOne runs a single predicate, converting a panic into an error so
// one misbehaving rule never blocks detection by the others.
func checkOne(rule *Rule, ctx *LineContext) (match *Match, err error) {
	defer func() {
		if r := recover(); r != nil {
			match = nil
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return rule.Check(ctx), nil
}
