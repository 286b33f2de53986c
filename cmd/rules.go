package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/shlint/shlint/core/rules"
	"github.com/spf13/cobra"
)

// rulesCmd prints the builtin rule catalog.
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the builtin rule catalog.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSEVERITY\tDESCRIPTION")
		for _, rule := range rules.Builtin() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", rule.ID, rule.Severity, rule.Short)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
