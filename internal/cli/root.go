package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "policyplot",
	Short: "Comparison charts for VM placement policy simulations",
	Long: `policyplot turns the policy summary written by the carbon-aware placement
simulation into energy, carbon and makespan comparison charts.

Each chart shows one bar per policy at its mean value, with an error bar of one
standard deviation. Run the simulation first so that the summary exists.

Without a subcommand, policyplot renders the charts.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRender,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
