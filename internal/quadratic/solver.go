package quadratic

import (
	"fmt"
	"math"
)

// Coefficients of ax² + bx + c = 0
type Coefficients struct {
	A float64
	B float64
	C float64
}

// Roots holds the intermediate values of one evaluation
type Roots struct {
	Discriminant float64
	Denominator  float64
	R1           float64 // (-b + √s) / 2a
	R2           float64 // (-b - √s) / 2a
}

// Evaluate computes both candidate roots.
// NaN and ±Inf propagate; nothing here fails.
func Evaluate(c Coefficients) Roots {
	s := c.B*c.B - 4*c.A*c.C
	d := 2 * c.A
	sq := math.Sqrt(s)

	return Roots{
		Discriminant: s,
		Denominator:  d,
		R1:           (-c.B + sq) / d,
		R2:           (-c.B - sq) / d,
	}
}

// Pick returns R1 unless it is exactly zero, otherwise R2.
// NaN compares unequal to zero, so a NaN R1 is returned as is.
func (r Roots) Pick() float64 {
	if r.R1 != 0 {
		return r.R1
	}
	return r.R2
}

// Solve returns one real root of ax² + bx + c = 0
func Solve(a, b, c float64) float64 {
	return Evaluate(Coefficients{A: a, B: b, C: c}).Pick()
}

// Check reports why the closed form has no finite real answer.
// Returns nil when a != 0 and the discriminant is non-negative.
func Check(c Coefficients) error {
	if c.A == 0 {
		return fmt.Errorf("%w (b=%g, c=%g)", ErrDivisionDegenerate, c.B, c.C)
	}

	if s := c.B*c.B - 4*c.A*c.C; s < 0 {
		return fmt.Errorf("%w: b²-4ac = %g", ErrDomain, s)
	}

	return nil
}
