package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/steezy/steezy/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the trick catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tricks easiest first (optionally filtered by category)",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")

		var tricks []catalog.Trick
		if category == "" {
			tricks = engine.OrderedCatalog()
		} else {
			c := catalog.Category(strings.ToLower(category))
			if c != catalog.CategoryAll && !c.Valid() {
				return fmt.Errorf("unknown category %q", category)
			}
			tricks = engine.FilterByCategory(c)
		}

		out := cmd.OutOrStdout()
		printTrickTable(out, tricks)
		fmt.Fprintf(out, "\n%d tricks\n", len(tricks))
		return nil
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <id|slug>",
	Short: "Show one trick with its prerequisites and dependents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := engine.Catalog()
		t, ok := c.Resolve(args[0])
		if !ok {
			return fmt.Errorf("no trick found for %q", args[0])
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "ID:          %s\n", t.ID)
		fmt.Fprintf(out, "Name:        %s (%s)\n", t.Name, t.Slug())
		fmt.Fprintf(out, "Category:    %s\n", t.Category.DisplayName())
		fmt.Fprintf(out, "Difficulty:  %s\n", rating(t.Difficulty))
		fmt.Fprintf(out, "Risk:        %s\n", rating(t.Risk))
		fmt.Fprintf(out, "Points:      %d\n", t.SteezPoints)
		if t.Description != "" {
			fmt.Fprintf(out, "\n%s\n", t.Description)
		}

		fmt.Fprintln(out)
		if names := c.PrerequisiteNames(t); len(names) > 0 {
			fmt.Fprintf(out, "Requires:    %s\n", strings.Join(names, ", "))
		} else {
			fmt.Fprintln(out, "Requires:    nothing")
		}
		var unlocks []string
		for _, d := range c.Dependents(t.ID) {
			unlocks = append(unlocks, d.Name)
		}
		if len(unlocks) > 0 {
			fmt.Fprintf(out, "Unlocks:     %s\n", strings.Join(unlocks, ", "))
		}
		return nil
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the active catalog or a catalog document",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")

		c := engine.Catalog()
		source := "active catalog"
		if file != "" {
			loaded, err := catalog.Load(file)
			if err != nil {
				return err
			}
			c, source = loaded, file
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (version %s, %d tricks, %d levels)\n",
			source, c.Version(), c.Len(), len(c.Levels()))
		return nil
	},
}

func init() {
	catalogListCmd.Flags().String("category", "", "Filter by category (grabs, spins, flips, rails, jumps, butters or all)")
	catalogValidateCmd.Flags().String("file", "", "Catalog document to validate instead of the active catalog")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
}

func printTrickTable(out io.Writer, tricks []catalog.Trick) {
	fmt.Fprintf(out, "%-4s  %-20s  %-8s  %-5s  %-5s  %6s  %s\n",
		"ID", "Name", "Category", "Diff", "Risk", "Points", "Requires")
	fmt.Fprintln(out, strings.Repeat("─", 72))

	for _, t := range tricks {
		name := t.Name
		if len(name) > 20 {
			name = name[:17] + "..."
		}
		fmt.Fprintf(out, "%-4s  %-20s  %-8s  %-5s  %-5s  %6d  %s\n",
			t.ID, name, t.Category.DisplayName(),
			rating(t.Difficulty), rating(t.Risk), t.SteezPoints,
			strings.Join(t.Prerequisites, ","))
	}
}

// rating renders a 1-5 score as filled and empty dots.
func rating(n int) string {
	n = max(0, min(n, catalog.MaxRating))
	return strings.Repeat("●", n) + strings.Repeat("○", catalog.MaxRating-n)
}
