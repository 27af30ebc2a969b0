package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/utilcss"
)

var buildCmd = &cobra.Command{
	Use:     "build",
	Aliases: []string{"gen"},
	Short:   "Generate the stylesheet from class tokens in content files",
	Long: `Scan content files for utility class tokens and write one CSS rule per
distinct token. Unresolved tokens are counted; use --check to list them.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runBuild(cmd.Context(), cmd)
	},
}

func init() {
	f := buildCmd.Flags()
	f.StringP("output", "o", "dist/utilities.css", `Stylesheet output path ("-" for stdout)`)
	f.BoolP("preflight", "p", false, "Prepend the preflight reset to the stylesheet")
	f.Bool("check", false, "Report unresolved classes after building")
}

func runBuild(ctx context.Context, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}

	config := buildConfig()
	log := newLogger(config.Verbose)
	defer func() { _ = log.Sync() }()
	config.Logger = log

	toStdout := config.Output == "-"
	if toStdout {
		config.Output = ""
	}

	result, err := utilcss.Build(ctx, config)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	out := cmd.OutOrStdout()
	quiet := getBoolWithFallback("quiet", "quiet", false)

	if toStdout {
		fmt.Fprint(out, result.CSS)
	} else if !quiet {
		fmt.Fprintf(out, "Generated %s\n", config.Output)
		fmt.Fprintf(out, "  Files scanned: %d\n", result.FilesScanned)
		fmt.Fprintf(out, "  Rules generated: %d\n", result.RulesGenerated)
		fmt.Fprintf(out, "  Unresolved tokens: %d\n", len(result.Issues))

		for _, w := range result.Warnings {
			fmt.Fprintf(out, "  Warning: %s\n", w)
		}
	}

	// Report issues after build if --check flag set
	check, _ := cmd.Flags().GetBool("check")
	if check {
		result.Limit(config)
		return reportCheck(cmd, result, config)
	}

	return nil
}
