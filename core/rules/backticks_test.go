package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBacktickSubstitution(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []int
	}{
		{"assignment", "now=`date`", []int{1}},
		{"argument", "echo `id -u`", []int{1}},
		{"modern form", "now=$(date)", nil},
		{"quoted literal", "echo 'a `backtick`'", nil},
		{"comment", "# use `date` here", nil},
		{"comment after semicolon", "echo hi;# see `date`", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			diags := scanWith(t, "backtick-substitution", tc.src)
			assert.Equal(t, tc.want, diagLines(diags))
		})
	}
}
