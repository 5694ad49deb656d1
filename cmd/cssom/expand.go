package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssom"
	"github.com/yacobolo/cssom/internal/meta"
)

var expandCmd = &cobra.Command{
	Use:   "expand [declarations]",
	Short: "Split shorthand declarations into longhands",
	Long: `Parse a declaration block and print one longhand per line.
Reads standard input when no argument is given.`,
	Example: `  cssom expand "margin: 1px 2px"
  echo "font: bold 12px/1.5 serif" | cssom expand
  cssom expand --group "border: 1px solid; flex: 1"`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args, cmd.InOrStdin())
		if err != nil {
			return err
		}
		group := getBoolWithFallback("group", "expand.group", false)
		return runExpand(cmd.OutOrStdout(), text, group)
	},
}

func init() {
	expandCmd.Flags().Bool("group", false, "Group longhands by category")
}

func runExpand(w io.Writer, text string, group bool) error {
	log := buildLogger()
	defer func() { _ = log.Sync() }()

	decl := cssom.ParseDeclaration(text, buildDeclarationConfig(log))
	names := make([]string, decl.Length())
	for i := range names {
		names[i] = decl.Item(i)
	}

	if !group {
		for _, name := range names {
			printLonghand(w, decl, name)
		}
		return reportErrors(decl)
	}

	groups := meta.GroupByCategory(names)
	categories := make([]meta.Category, 0, len(groups))
	for cat := range groups {
		categories = append(categories, cat)
	}
	slices.Sort(categories)
	for i, cat := range categories {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "/* %s */\n", cat)
		for _, name := range groups[cat] {
			printLonghand(w, decl, name)
		}
	}
	return reportErrors(decl)
}

func printLonghand(w io.Writer, decl *cssom.Declaration, name string) {
	priority := ""
	if decl.GetPropertyPriority(name) == "important" {
		priority = " !important"
	}
	fmt.Fprintf(w, "%s: %s%s;\n", name, decl.GetPropertyValue(name), priority)
}

// readInput returns the first argument, or all of stdin.
func readInput(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// reportErrors prints skipped declarations unless --quiet is set and
// returns an error when there were any.
func reportErrors(decl *cssom.Declaration) error {
	issues := decl.Issues()
	if len(issues) == 0 {
		return nil
	}
	if !getBoolWithFallback("quiet", "quiet", false) {
		for _, issue := range issues {
			fmt.Fprintln(os.Stderr, cssom.RenderStyle(cssom.StyleRed, issue.Text, getBoolWithFallback("color", "color", false)))
		}
	}
	return fmt.Errorf("%d declaration(s) skipped", len(issues))
}
