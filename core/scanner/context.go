package scanner

import "strings"

// quoteState tracks open quotes carried from one line to the next so
// rules don't flag text that's inside a multi-line quoted string.
type quoteState struct {
	inSingle bool
	inDouble bool
}

func (q quoteState) open() bool {
	return q.inSingle || q.inDouble
}

// LineContext is the per-line view handed to each rule. Rules only ever
// see one line plus this minimal surrounding context.
type LineContext struct {
	// Num is the 1-based line number.
	Num int
	// Raw is the line as it appeared in the input, without the newline.
	Raw string
	// Trimmed is Raw with leading and trailing whitespace removed.
	Trimmed string
	// PrevTrimmed is the trimmed previous line, "" on the first line.
	PrevTrimmed string
	// PrevCode is the blanked form of the previous line, as Code is for
	// the current one.
	PrevCode string
	// InQuote reports whether the line begins inside a quote opened on
	// an earlier line.
	InQuote bool
	// EOF marks the synthetic pass after the last line. Raw and Trimmed
	// are empty then; rules that look back at PrevTrimmed use it to
	// flag constructs that need a following line.
	EOF bool

	code string
}

// Code returns Raw with quoted regions, comments and backslash-escaped
// characters blanked out to spaces. Byte offsets are preserved, so an
// index into Code is also an index into Raw. Rules match against this
// to avoid flagging text inside quotes.
func (c *LineContext) Code() string {
	return c.code
}

// startsComment reports whether a # preceded by prev opens a comment.
// That's the case at the start of a word, so after whitespace or a
// command separator. A # inside a word (as in $# or ${#var}) doesn't.
func startsComment(prev byte) bool {
	switch prev {
	case ' ', '\t', ';', '&', '|', '(':
		return true
	}
	return false
}

// blankLine computes the blanked form of one line and the quote state
// at its end. Escapes only apply outside single quotes; comments only
// start outside quotes and run to the end of the line.
func blankLine(raw string, state quoteState) (string, quoteState) {
	out := []byte(raw)

	blank := func(i int) {
		if out[i] != '\t' {
			out[i] = ' '
		}
	}

	for i := 0; i < len(out); i++ {
		ch := out[i]
		switch {
		case state.inSingle:
			if ch == '\'' {
				state.inSingle = false
			}
			blank(i)
		case state.inDouble:
			if ch == '\\' && i+1 < len(out) {
				blank(i)
				i++
				blank(i)
				continue
			}
			if ch == '"' {
				state.inDouble = false
			}
			blank(i)
		case ch == '\\':
			blank(i)
			if i+1 < len(out) {
				i++
				blank(i)
			}
		case ch == '\'':
			state.inSingle = true
			blank(i)
		case ch == '"':
			state.inDouble = true
			blank(i)
		case ch == '#' && (i == 0 || startsComment(raw[i-1])):
			// Comment until end of line; quote state is unaffected.
			for ; i < len(out); i++ {
				blank(i)
			}
		}
	}

	return string(out), state
}

// makeContext builds the LineContext for one line, threading the quote
// state forward.
func makeContext(num int, raw, prevTrimmed, prevCode string, state quoteState) (LineContext, quoteState) {
	code, next := blankLine(raw, state)
	ctx := LineContext{
		Num:         num,
		Raw:         raw,
		Trimmed:     strings.TrimSpace(raw),
		PrevTrimmed: prevTrimmed,
		PrevCode:    prevCode,
		InQuote:     state.open(),
		code:        code,
	}
	return ctx, next
}
