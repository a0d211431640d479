package commands

import (
	"fmt"
	"math"
)

// FormatResult renders x as printf("%f\n") does in C.
// Non-finite values use the C spelling (nan, inf, -inf) rather than Go's NaN/+Inf.
func FormatResult(x float64) string {
	switch {
	case math.IsNaN(x):
		return "nan\n"
	case math.IsInf(x, 1):
		return "inf\n"
	case math.IsInf(x, -1):
		return "-inf\n"
	}
	return fmt.Sprintf("%f\n", x)
}
