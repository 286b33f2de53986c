package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvalUsage(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []int
	}{
		{"bare", `eval "$cmd"`, []int{1}},
		{"after separator", `setup; eval "$cmd"`, []int{1}},
		{"mentioned in a string", "echo 'do not eval this'", nil},
		{"argument named eval", "grep eval script.sh", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			diags := scanWith(t, "eval-usage", tc.src)
			assert.Equal(t, tc.want, diagLines(diags))
		})
	}
}
