package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .utilcss.yaml config file",
	Long:  `Create a .utilcss.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigPath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigPath)
		}

		if err := os.WriteFile(defaultConfigPath, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigPath)
		return nil
	},
}

const defaultConfig = `# utilcss configuration
# Precedence: flags > UTILCSS_* environment variables > this file

# Files scanned for class tokens (doublestar globs)
content:
  - "**/*.{html,templ,jsx,tsx,vue,svelte}"

# Generated stylesheet ("-" writes to stdout)
output: dist/utilities.css

# Prepend the preflight reset to the generated stylesheet
preflight: false

# Collection mode per file extension: class reads class attributes,
# text treats every word as a token. Markup extensions default to class,
# everything else to text.
collection:
  go: text

verbose: false
color: false

# Check settings
check:
  strict: false            # exit 1 on any unresolved class
  output-format: issues    # issues | summary | full | json | plain
  max-issues: 0            # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
