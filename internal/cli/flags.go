package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/policyplot/internal/config"
)

// Flags shared by every command. Unset flags fall back to POLICYPLOT_* environment values.
var (
	flagSummary       string
	flagOutputDir     string
	flagFormat        string
	flagDPI           int
	flagWidth         float64
	flagHeight        float64
	flagUnknownPolicy string
	flagNoManifest    bool
	flagShow          bool
	flagVerbose       bool
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagSummary, "summary", "s", "", "Policy summary CSV (default results/evaluation_policy_summary.csv)")
	pf.StringVarP(&flagOutputDir, "output-dir", "o", "", "Directory for the charts (default results)")
	pf.StringVarP(&flagFormat, "format", "f", "", "Image format: png, jpg, svg, pdf (default png)")
	pf.IntVar(&flagDPI, "dpi", 0, "Raster resolution in dots per inch (default 300)")
	pf.Float64Var(&flagWidth, "width", 0, "Canvas width in inches (default 8)")
	pf.Float64Var(&flagHeight, "height", 0, "Canvas height in inches (default 5)")
	pf.StringVar(&flagUnknownPolicy, "unknown-policy", "", "Label for unrecognized policies: ciavmp, raw, error (default ciavmp)")
	pf.BoolVar(&flagNoManifest, "no-manifest", false, "Do not write manifest.json next to the charts")
	pf.BoolVar(&flagShow, "show", false, "Open the charts in the default viewer when a display is available")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Log each step")
}

// loadConfig reads the environment and applies any flags set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("summary") {
		cfg.SummaryPath = flagSummary
	}
	if flags.Changed("output-dir") {
		cfg.OutputDir = flagOutputDir
	}
	if flags.Changed("format") {
		cfg.Format = flagFormat
	}
	if flags.Changed("dpi") {
		cfg.DPI = flagDPI
	}
	if flags.Changed("width") {
		cfg.WidthInches = flagWidth
	}
	if flags.Changed("height") {
		cfg.HeightInches = flagHeight
	}
	if flags.Changed("unknown-policy") {
		cfg.UnknownPolicy = flagUnknownPolicy
	}
	if flags.Changed("no-manifest") {
		cfg.Manifest = !flagNoManifest
	}
	if flags.Changed("show") {
		cfg.Show = flagShow
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// summaryExplicit reports whether the summary path was chosen by flag or environment.
func summaryExplicit(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("summary") {
		return true
	}
	_, ok := os.LookupEnv("POLICYPLOT_SUMMARY_PATH")
	return ok
}
