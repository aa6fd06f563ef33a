//go:build unit

package boolflag_test

import (
	"testing"

	"merch-store/internal/pkg/boolflag"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want bool
	}{
		{"bool true", true, true},
		{"bool false", false, false},
		{"int one", 1, true},
		{"int zero", 0, false},
		{"int other", 2, false},
		{"json number one", float64(1), true},
		{"json number zero", float64(0), false},
		{"json number fraction", 0.5, false},
		{"string 1", "1", true},
		{"string true", "true", true},
		{"string TRUE", "TRUE", true},
		{"string yes", "yes", true},
		{"string y", "y", true},
		{"string on", "on", true},
		{"string padded", "  true  ", true},
		{"string false", "false", false},
		{"string no", "no", false},
		{"string empty", "", false},
		{"string garbage", "maybe", false},
		{"nil", nil, false},
		{"unsupported type", []string{"true"}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, boolflag.Parse(c.in))
		})
	}
}
