package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/policyplot/internal/domain"
)

var policiesCmd = &cobra.Command{
	Use:   "policies",
	Short: "List recognized policy identifiers and their chart labels",
	Args:  cobra.NoArgs,
	RunE:  runPolicies,
}

func init() {
	rootCmd.AddCommand(policiesCmd)
}

func runPolicies(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "  %-14s %s\n", "IDENTIFIER", "LABEL")
	for _, p := range domain.KnownPolicies {
		fmt.Fprintf(w, "  %-14s %s\n", p.ID(), p.Label())
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Other identifiers are handled by --unknown-policy (ciavmp, raw, error).\n")
	return nil
}
