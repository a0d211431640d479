package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/wonny/quadratic/internal/quadratic"
)

const coefficientCount = 3

// ParseCoefficient reads s the way C atoi does: leading whitespace, an
// optional sign, then as many decimal digits as follow. Anything unparsable
// is 0. Out-of-range values saturate to the 32-bit int bounds.
func ParseCoefficient(s string) float64 {
	s = strings.TrimLeft(s, " \t\n\v\f\r")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0
	}

	n, err := strconv.ParseInt(s[:end], 10, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return float64(n)
}

// parseCoefficients converts the first three arguments; extras are ignored
func parseCoefficients(args []string) quadratic.Coefficients {
	return quadratic.Coefficients{
		A: ParseCoefficient(args[0]),
		B: ParseCoefficient(args[1]),
		C: ParseCoefficient(args[2]),
	}
}

// requireCoefficients is the cobra.PositionalArgs check for <a> <b> <c>
func requireCoefficients(_ *cobra.Command, args []string) error {
	if len(args) < coefficientCount {
		return &ExitError{
			Code: 2,
			Err:  fmt.Errorf("%w: expected %d coefficients <a> <b> <c>, got %d", quadratic.ErrInvalidArguments, coefficientCount, len(args)),
		}
	}
	return nil
}

// escapeNegativeArgs inserts "--" ahead of the first negative number that
// would otherwise be read as a shorthand flag ("-3"). Flag parsing is not
// interspersed, so only tokens before the first positional need checking.
func escapeNegativeArgs(flags *pflag.FlagSet, args []string) []string {
	for i := 0; i < len(args); i++ {
		tok := args[i]
		switch {
		case tok == "--":
			return args
		case tok == "-":
			// pflag reads a lone dash as a positional
			return args
		case isNegativeNumber(tok):
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		case !strings.HasPrefix(tok, "-"):
			return args
		case takesValue(flags, tok):
			i++
		}
	}
	return args
}

func isNegativeNumber(tok string) bool {
	return len(tok) > 1 && tok[0] == '-' && tok[1] >= '0' && tok[1] <= '9'
}

// takesValue reports whether tok is a flag that consumes the next token
func takesValue(flags *pflag.FlagSet, tok string) bool {
	if strings.Contains(tok, "=") {
		return false
	}

	var f *pflag.Flag
	switch {
	case strings.HasPrefix(tok, "--"):
		f = flags.Lookup(tok[2:])
	case len(tok) == 2:
		f = flags.ShorthandLookup(tok[1:])
	}
	return f != nil && f.NoOptDefVal == ""
}
