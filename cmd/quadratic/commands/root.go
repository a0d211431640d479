package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/wonny/quadratic/internal/quadratic"
	"github.com/wonny/quadratic/pkg/config"
	"github.com/wonny/quadratic/pkg/logger"
)

// options holds flag values; flags override the environment
type options struct {
	env       string
	logLevel  string
	logFormat string
	strict    bool
	verbose   bool
}

// NewRootCmd builds the quadratic command
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "quadratic [flags] <a> <b> <c>",
		Short: "Solve ax² + bx + c = 0 for one real root",
		Long: `quadratic prints one root of ax² + bx + c = 0.

Coefficients are read as integers (atoi rules: "12abc" is 12, "abc" is 0).
The root (-b + √(b²-4ac)) / 2a is printed unless it is zero, in which case
(-b - √(b²-4ac)) / 2a is printed instead.

A negative discriminant prints nan; a = 0 prints nan or ±inf.
Use --strict to fail on those cases instead.

Example:
  quadratic 1 -3 2
  quadratic --strict 1 0 1
  quadratic -v -- -1 0 4`,
		Args:         requireCoefficients,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.SetInterspersed(false)
	flags.StringVar(&opts.env, "env", "", "environment (development|staging|production)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug|info|warn|error|off)")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format (console|pretty|json)")
	flags.BoolVar(&opts.strict, "strict", false, "fail on negative discriminant or a = 0")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output (debug logs)")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: 2, Err: err}
	})

	return cmd
}

// Execute runs the root command against os.Args.
// This is called by main.main().
func Execute() error {
	return execute(NewRootCmd(), os.Args[1:], os.Stdout, os.Stderr)
}

func execute(cmd *cobra.Command, args []string, stdout, stderr io.Writer) error {
	// cobra falls back to os.Args on nil
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(escapeNegativeArgs(cmd.Flags(), args))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

// loadConfig layers flags over config.Load
func (o *options) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("env") {
		cfg.Env = o.env
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = o.logFormat
	}
	if flags.Changed("strict") {
		cfg.Strict = o.strict
	}
	if o.verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSolve(cmd *cobra.Command, opts *options, args []string) error {
	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	log := logger.NewWithWriter(cfg, cmd.ErrOrStderr())

	if len(args) > coefficientCount {
		log.WithField("ignored", args[coefficientCount:]).
			Warnf("%d extra arguments ignored", len(args)-coefficientCount)
	}

	coef := parseCoefficients(args)
	log.WithFields(map[string]interface{}{
		"a": coef.A,
		"b": coef.B,
		"c": coef.C,
	}).Debug("coefficients parsed")

	roots := quadratic.Evaluate(coef)
	log.WithFloat("discriminant", roots.Discriminant).
		WithFloat("r1", roots.R1).
		WithFloat("r2", roots.R2).
		Debug("roots evaluated")

	if err := quadratic.Check(coef); err != nil {
		if cfg.Strict {
			log.WithError(err).Error("no finite real root")
			return &ExitError{Code: 1, Err: err}
		}
		log.WithError(err).Warn("result is not finite")
	}

	result := roots.Pick()
	log.Debugf("selected root %g", result)

	_, err = io.WriteString(cmd.OutOrStdout(), FormatResult(result))
	return err
}
