package quadratic

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		want    float64
	}{
		{"two distinct roots prefers r1", 1, -3, 2, 2},
		{"double root", 1, 2, 1, -1},
		{"zero r1 falls back to r2", 1, 1, 0, -1},
		{"negative leading coefficient", -1, 0, 4, -2},
		{"zero constant term", 2, -4, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Solve(tt.a, tt.b, tt.c))
		})
	}
}

func TestSolve_NegativeDiscriminantIsNaN(t *testing.T) {
	got := Solve(1, 0, 1)
	assert.True(t, math.IsNaN(got), "expected NaN, got %v", got)
}

func TestSolve_DegenerateIsNonFinite(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
	}{
		{"zero over zero", 0, 2, 4},
		{"positive over zero", 0, -2, 0},
		{"all zero", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Solve(tt.a, tt.b, tt.c)
			assert.True(t, math.IsNaN(got) || math.IsInf(got, 0), "expected non-finite, got %v", got)
		})
	}
}

func TestSolve_Idempotent(t *testing.T) {
	inputs := [][3]float64{
		{1, -3, 2},
		{1, 0, 1},
		{0, 2, 4},
		{3, 7, -11},
	}

	for _, in := range inputs {
		first := Solve(in[0], in[1], in[2])
		second := Solve(in[0], in[1], in[2])
		assert.Equal(t, math.Float64bits(first), math.Float64bits(second), "inputs %v", in)
	}
}

func TestEvaluate(t *testing.T) {
	roots := Evaluate(Coefficients{A: 1, B: -3, C: 2})

	assert.Equal(t, 1.0, roots.Discriminant)
	assert.Equal(t, 2.0, roots.Denominator)
	assert.Equal(t, 2.0, roots.R1)
	assert.Equal(t, 1.0, roots.R2)
	assert.Equal(t, 2.0, roots.Pick())
}

func TestRoots_PickNaN(t *testing.T) {
	r := Roots{R1: math.NaN(), R2: 5}
	assert.True(t, math.IsNaN(r.Pick()))
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		coef    Coefficients
		wantErr error
	}{
		{"real roots", Coefficients{A: 1, B: -3, C: 2}, nil},
		{"double root", Coefficients{A: 1, B: 2, C: 1}, nil},
		{"negative discriminant", Coefficients{A: 1, B: 0, C: 1}, ErrDomain},
		{"degenerate", Coefficients{A: 0, B: 2, C: 4}, ErrDivisionDegenerate},
		{"degenerate wins over domain", Coefficients{A: 0, B: 0, C: 0}, ErrDivisionDegenerate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.coef)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}
