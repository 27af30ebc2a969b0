package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/utilcss"
)

// errIssuesFound fails the run in strict mode once issues have been printed.
var errIssuesFound = errors.New("unresolved classes found")

var checkCmd = &cobra.Command{
	Use:     "check",
	Aliases: []string{"lint"},
	Short:   "Report class tokens that do not resolve",
	Long: `Resolve every class token in the content files without writing a
stylesheet and report the ones that fail, with their file position.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		config := buildConfig()
		log := newLogger(config.Verbose)
		defer func() { _ = log.Sync() }()
		config.Logger = log

		result, err := utilcss.Check(cmd.Context(), config)
		if err != nil {
			return err
		}

		return reportCheck(cmd, result, config)
	},
}

func init() {
	f := checkCmd.Flags()
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|full|json|plain")
	f.Int("max-issues", 0, "Max issues to show (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (utilcss) suffix on issues")

	// build --check shares the reporting flags
	buildCmd.Flags().AddFlagSet(f)
}

// reportCheck prints the result and applies the strict-mode exit rule.
// It is shared between `utilcss check` and `utilcss build --check`.
func reportCheck(cmd *cobra.Command, result *utilcss.Result, config utilcss.Config) error {
	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "check.output-format", "")
	format := utilcss.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		utilcss.WriteOutput(cmd.OutOrStdout(), result, format, config)
	}

	if utilcss.Failed(result, config) {
		if !quiet && format != utilcss.OutputJSON {
			fmt.Fprintln(cmd.ErrOrStderr(),
				utilcss.RenderStyle(utilcss.StyleRed, "\nStrict mode: unresolved classes fail the check", config.UseColors))
		}
		return errIssuesFound
	}

	return nil
}
