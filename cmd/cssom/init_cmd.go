package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssom.yaml config file",
	Long:  `Create a .cssom.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".cssom.yaml"); err == nil && !force {
			return fmt.Errorf(".cssom.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".cssom.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Created .cssom.yaml")
		return nil
	},
}

const defaultConfig = `# cssom configuration

# Shared settings
verbose: false
color: false
sequence-shorthands: false # cue, pause and rest

# Expansion settings
expand:
  group: false # group longhands by category

# Compaction settings
compact:
  minify: false

# Checking settings
check:
  paths:
    - "**/*.css"
  strict: false
  threshold: 0.0
  output-format: issues    # issues | summary | full | json | markdown
  max-issues-per-linter: 0 # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
