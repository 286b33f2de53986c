package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadWithoutR(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []int
	}{
		{"plain read", "read answer", []int{1}},
		{"raw read", "read -r answer", nil},
		{"clustered flags", "read -rp 'name: ' name", nil},
		{"while loop", "while read line; do", []int{1}},
		{"while loop raw", "while read -r line; do", nil},
		{"ifs prefix", "IFS= read -r line", nil},
		{"read in a string", "echo 'read the docs'", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			diags := scanWith(t, "read-without-r", tc.src)
			assert.Equal(t, tc.want, diagLines(diags))
		})
	}
}
