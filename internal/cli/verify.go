package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/policyplot/internal/adapters/csvsummary"
	"github.com/emiliopalmerini/policyplot/internal/report"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that manifest.json still matches the summary and chart files",
	Long: `Read manifest.json from the output directory, reload the policy summary and
report every plotted value that differs from the summary and every chart file
that is missing. Exits non-zero when the charts need to be rendered again.

When neither --summary nor POLICYPLOT_SUMMARY_PATH is set, the summary recorded
in the manifest is used.

Examples:
  policyplot verify
  policyplot verify --output-dir figures`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	manifest, err := report.ReadManifest(filepath.Join(cfg.OutputDir, report.ManifestFile))
	if err != nil {
		return err
	}

	opts := serviceOptions(cfg)
	if !summaryExplicit(cmd) && manifest.SummaryPath != "" {
		opts.SummaryPath = manifest.SummaryPath
	}

	logger := report.NewStdLogger(cmd.ErrOrStderr(), flagVerbose)
	svc := report.NewService(csvsummary.NewReader(), nil, nil, logger, opts)

	discrepancies, err := svc.Verify(ctx, manifest)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(discrepancies) == 0 {
		fmt.Fprintf(w, "Manifest %s matches %s (%d charts)\n", manifest.RunID, opts.SummaryPath, len(manifest.Charts))
		return nil
	}

	fmt.Fprintf(w, "Manifest %s is out of date:\n", manifest.RunID)
	for _, d := range discrepancies {
		fmt.Fprintf(w, "  %s\n", d)
	}
	return fmt.Errorf("%d discrepancies found, run policyplot render again", len(discrepancies))
}
