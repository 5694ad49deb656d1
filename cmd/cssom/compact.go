package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssom"
)

var compactCmd = &cobra.Command{
	Use:   "compact [declarations]",
	Short: "Fold longhands into the shortest shorthands",
	Long: `Parse a declaration block and print it with longhands folded into
shorthands wherever that is lossless.
Reads standard input when no argument is given.`,
	Example: `  cssom compact "margin-top: 0; margin-right: 1px; margin-bottom: 0; margin-left: 1px"
  cssom compact --minify < decls.txt`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args, cmd.InOrStdin())
		if err != nil {
			return err
		}
		minify := getBoolWithFallback("minify", "compact.minify", false)
		return runCompact(cmd.OutOrStdout(), text, minify)
	},
}

func init() {
	compactCmd.Flags().Bool("minify", false, "Drop optional whitespace")
}

func runCompact(w io.Writer, text string, minify bool) error {
	log := buildLogger()
	defer func() { _ = log.Sync() }()

	decl := cssom.ParseDeclaration(text, buildDeclarationConfig(log))
	if minify {
		fmt.Fprintln(w, decl.MinifiedCSSText())
	} else {
		fmt.Fprintln(w, decl.CSSText())
	}
	return reportErrors(decl)
}
