package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssom"
)

var checkCmd = &cobra.Command{
	Use:   "check [patterns...]",
	Short: "Check stylesheets for invalid and missed shorthands",
	Long: `Parse every stylesheet matching the patterns and report shorthand values
that do not parse, and runs of longhands that fold into one shorthand.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, args []string) error {
		code, err := runCheck(args)
		if err != nil {
			return err
		}
		if code != 0 {
			os.Exit(code)
		}
		return nil
	},
}

func init() {
	f := checkCmd.Flags()
	f.StringSlice("paths", []string{"**/*.css"}, "Stylesheet patterns to check")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.Float64("threshold", 0.0, "Minimum shorthand rate for strict mode")
	f.String("output-format", "", "Output format: issues|summary|full|json|markdown")
	f.Int("max-issues-per-linter", 0, "Max issues to show per linter (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (cssom) suffix on issues")
}

// runCheck returns the exit code: 1 on errors, or on any issue in
// strict mode.
func runCheck(args []string) (int, error) {
	log := buildLogger()
	defer func() { _ = log.Sync() }()

	checkConfig := buildCheckConfig(log)
	if len(args) > 0 {
		checkConfig.Paths = args
	}

	result, err := cssom.Check(checkConfig)
	if err != nil {
		return 0, fmt.Errorf("check failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "check.output-format", "")
	format := cssom.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		cssom.WriteOutput(os.Stdout, result, format, checkConfig)
	}

	// Exit code logic - "Soft Gate" approach
	if getBoolWithFallback("strict", "check.strict", false) {
		if len(result.Issues) > 0 {
			return 1, nil
		}

		threshold := getFloat64WithFallback("threshold", "check.threshold", 0.0)
		if threshold > 0 && result.ShorthandRate < threshold {
			if !quiet {
				fmt.Fprintf(os.Stderr, "\nStrict mode: shorthand rate %.1f%% is below threshold %.1f%%\n",
					result.ShorthandRate, threshold)
			}
			return 1, nil
		}
	} else if result.ErrorCount > 0 {
		return 1, nil
	}

	return 0, nil
}
