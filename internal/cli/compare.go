package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/policyplot/internal/adapters/csvsummary"
	"github.com/emiliopalmerini/policyplot/internal/domain"
	"github.com/emiliopalmerini/policyplot/internal/report"
	"github.com/emiliopalmerini/policyplot/internal/util"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Print per-policy statistics and CIAVMP improvements",
	Long: `Print the mean and standard deviation of every metric per policy, followed by
the relative improvement of CIAVMP over the FIRST_FIT and ENERGY_AWARE baselines.

Improvement is (baseline - CIAVMP) / baseline, so positive values mean CIAVMP
used less energy, emitted less carbon or finished sooner.

Examples:
  policyplot compare
  policyplot compare --summary runs/2024-05/summary.csv`,
	Args: cobra.NoArgs,
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := report.NewStdLogger(cmd.ErrOrStderr(), flagVerbose)
	svc := report.NewService(csvsummary.NewReader(), nil, nil, logger, serviceOptions(cfg))

	sum, err := svc.Load(ctx)
	if err != nil {
		return err
	}

	printComparison(cmd.OutOrStdout(), sum)
	return nil
}

func printComparison(w io.Writer, sum *report.Summary) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Policy Statistics (mean ± std)\n")
	fmt.Fprintf(w, "  ==============================\n")
	fmt.Fprintln(w)

	for i, row := range sum.Rows {
		fmt.Fprintf(w, "  %s\n", sum.Labels[i])
		if row.Runs > 0 {
			fmt.Fprintf(w, "    Runs:      %d\n", row.Runs)
		}
		fmt.Fprintf(w, "    Energy:    %s kWh\n", util.FormatMeanStd(row.EnergyMeanKWh, row.EnergyStdKWh, 4))
		fmt.Fprintf(w, "    Carbon:    %s kg CO2\n", util.FormatMeanStd(row.CarbonMeanKg, row.CarbonStdKg, 4))
		fmt.Fprintf(w, "    Makespan:  %s s (%s)\n", util.FormatMeanStd(row.MakespanMeanS, row.MakespanStdS, 2), util.FormatSeconds(row.MakespanMeanS))
		fmt.Fprintln(w)
	}

	improvements := domain.CompareToBaselines(sum.Rows)
	if len(improvements) == 0 {
		fmt.Fprintf(w, "  No CIAVMP improvement: summary lacks CIAVMP or both baselines\n")
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintf(w, "  CIAVMP Relative Improvements\n")
	fmt.Fprintf(w, "  ----------------------------\n")
	for _, imp := range improvements {
		fmt.Fprintf(w, "  vs %-13s energy %9s   carbon %9s   makespan %9s\n",
			domain.ParsePolicy(imp.Baseline).Label(),
			util.FormatPercent(imp.EnergyPct),
			util.FormatPercent(imp.CarbonPct),
			util.FormatPercent(imp.MakespanPct),
		)
	}
	fmt.Fprintln(w)
}
