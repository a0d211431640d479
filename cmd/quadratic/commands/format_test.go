package commands

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatResult(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"integer", 2, "2.000000\n"},
		{"negative", -1, "-1.000000\n"},
		{"rounding", 1.0 / 3, "0.333333\n"},
		{"nan", math.NaN(), "nan\n"},
		{"positive infinity", math.Inf(1), "inf\n"},
		{"negative infinity", math.Inf(-1), "-inf\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatResult(tt.in))
		})
	}
}
