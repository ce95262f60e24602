package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/emiliopalmerini/policyplot/internal/adapters/csvsummary"
	"github.com/emiliopalmerini/policyplot/internal/adapters/gonumplot"
	"github.com/emiliopalmerini/policyplot/internal/adapters/otel"
	"github.com/emiliopalmerini/policyplot/internal/adapters/viewer"
	"github.com/emiliopalmerini/policyplot/internal/config"
	"github.com/emiliopalmerini/policyplot/internal/domain"
	"github.com/emiliopalmerini/policyplot/internal/ports"
	"github.com/emiliopalmerini/policyplot/internal/report"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the energy, carbon and makespan comparison charts",
	Long: `Render one bar chart per metric from the policy summary.

Charts are written to the output directory, replacing existing files:
  energy_comparison.png, carbon_comparison.png, makespan_comparison.png
and a manifest.json recording the plotted values.

Examples:
  policyplot render
  policyplot render --summary runs/2024-05/summary.csv --output-dir figures
  policyplot render --format pdf --unknown-policy raw
  POLICYPLOT_DPI=600 policyplot render`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := report.NewStdLogger(cmd.ErrOrStderr(), flagVerbose)

	exporter := newMetricsExporter(ctx, cfg.OTel, logger)
	defer func() {
		if err := exporter.Close(context.Background()); err != nil {
			logger.Error(fmt.Sprintf("failed to flush metrics: %v", err))
		}
	}()

	svc := report.NewService(csvsummary.NewReader(), newRenderer(cfg), exporter, logger, serviceOptions(cfg))

	manifest, err := svc.Run(ctx)
	if err != nil {
		return err
	}

	printManifest(cmd.OutOrStdout(), manifest)

	if cfg.Show {
		v := viewer.New()
		if !v.Available() {
			logger.Debug("no display available, skipping --show")
		} else if err := v.Open(ctx, manifest.OutputPaths()...); err != nil {
			logger.Warn(err.Error())
		}
	}

	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func serviceOptions(cfg *config.Config) report.Options {
	return report.Options{
		SummaryPath:   cfg.SummaryPath,
		OutputDir:     cfg.OutputDir,
		Format:        cfg.Format,
		Metrics:       domain.DefaultMetrics(),
		Labels:        domain.LabelMapper{Fallback: cfg.UnknownPolicyMode()},
		WriteManifest: cfg.Manifest,
	}
}

func newRenderer(cfg *config.Config) ports.ChartRenderer {
	return gonumplot.NewRenderer(gonumplot.Options{
		Width:  vg.Length(cfg.WidthInches) * vg.Inch,
		Height: vg.Length(cfg.HeightInches) * vg.Inch,
		DPI:    cfg.DPI,
	})
}

// newMetricsExporter returns the OTEL exporter when configured, or a no-op exporter.
func newMetricsExporter(ctx context.Context, cfg config.OTelConfig, logger report.Logger) ports.MetricsExporter {
	if !cfg.Enabled {
		return otel.NewNoOpExporter()
	}
	exp, err := otel.NewExporter(ctx, otel.Config{
		Endpoint: cfg.Endpoint,
		Enabled:  cfg.Enabled,
		Insecure: cfg.Insecure,
	})
	if err != nil {
		logger.Warn(fmt.Sprintf("metrics export disabled: %v", err))
		return otel.NewNoOpExporter()
	}
	return exp
}

func printManifest(w io.Writer, m *report.Manifest) {
	fmt.Fprintf(w, "Rendered %d charts from %s\n", len(m.Charts), m.SummaryPath)
	for _, c := range m.Charts {
		fmt.Fprintf(w, "  %-10s %s\n", c.Metric, c.OutputPath)
	}
	if len(m.UnknownPolicies) > 0 {
		fmt.Fprintf(w, "  unrecognized policies: %v\n", m.UnknownPolicies)
	}
}
