package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUncheckedCd(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []int
	}{
		{"followed by another command", "cd nonExistingDirectory\nrm *", []int{1}},
		{"last line", "cd /tmp", []int{1}},
		{"and guard", "cd /tmp && rm -f stale.lock", nil},
		{"or guard", "cd /tmp || exit 1", nil},
		{"if guard", "if cd /tmp; then\n  :\nfi", nil},
		{"negated", "! cd /tmp", nil},
		{"status checked on next line", "cd /tmp\nif [ $? -ne 0 ]; then exit 1; fi", nil},
		{"dollar question on next line", "cd /tmp\ntest $? -eq 0 || exit", nil},
		{"cd in a string", "echo 'cd /tmp'\nrm *", nil},
		{"two unchecked cds", "cd /a\ncd /b\npwd", []int{1, 2}},
		{"cd after semicolon", "pwd; cd /tmp\nrm *", []int{1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			diags := scanWith(t, "unchecked-cd", tc.src)
			assert.Equal(t, tc.want, diagLines(diags))
		})
	}
}
