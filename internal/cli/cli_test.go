package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/emiliopalmerini/policyplot/internal/domain"
	"github.com/emiliopalmerini/policyplot/internal/report"
)

const summaryFixture = "../report/testdata/evaluation_policy_summary.csv"

// execute runs the root command with args and a clean flag state.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	t.Cleanup(func() { rootCmd.PersistentFlags().VisitAll(reset) })

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRender_WritesChartsAndManifest(t *testing.T) {
	outDir := t.TempDir()

	out, err := execute(t, "render", "--summary", summaryFixture, "--output-dir", outDir, "--dpi", "72")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for _, name := range []string{"energy_comparison.png", "carbon_comparison.png", "makespan_comparison.png"} {
		info, err := os.Stat(filepath.Join(outDir, name))
		if err != nil {
			t.Errorf("missing chart %s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("chart %s is empty", name)
		}
	}

	m, err := report.ReadManifest(filepath.Join(outDir, report.ManifestFile))
	if err != nil {
		t.Fatalf("ReadManifest: %v", err)
	}
	if len(m.Charts) != 3 || m.Charts[0].Bars[0].Height != 10.2 {
		t.Errorf("unexpected manifest charts: %+v", m.Charts)
	}

	if !strings.Contains(out, "Rendered 3 charts") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestRootWithoutSubcommandRenders(t *testing.T) {
	outDir := t.TempDir()

	if _, err := execute(t, "--summary", summaryFixture, "--output-dir", outDir, "--dpi", "72", "--format", "svg", "--no-manifest"); err != nil {
		t.Fatalf("root command failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(outDir, "energy_comparison.svg")); err != nil {
		t.Errorf("expected svg chart: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, report.ManifestFile)); !os.IsNotExist(err) {
		t.Error("--no-manifest should skip the manifest")
	}
}

func TestRender_MissingSummary(t *testing.T) {
	outDir := t.TempDir()
	missing := filepath.Join(t.TempDir(), "evaluation_policy_summary.csv")

	_, err := execute(t, "render", "--summary", missing, "--output-dir", outDir)

	var mie *domain.MissingInputError
	if !errors.As(err, &mie) {
		t.Fatalf("expected MissingInputError, got %v", err)
	}
	entries, _ := os.ReadDir(outDir)
	if len(entries) != 0 {
		t.Errorf("no files should be written, found %d", len(entries))
	}
}

func TestRender_InvalidFlags(t *testing.T) {
	if _, err := execute(t, "render", "--summary", summaryFixture, "--unknown-policy", "skip"); err == nil {
		t.Error("expected error for invalid --unknown-policy")
	}
	if _, err := execute(t, "render", "--summary", summaryFixture, "--format", "gif"); err == nil {
		t.Error("expected error for invalid --format")
	}
}

func TestRender_EnvConfig(t *testing.T) {
	outDir := t.TempDir()
	t.Setenv("POLICYPLOT_SUMMARY_PATH", summaryFixture)
	t.Setenv("POLICYPLOT_OUTPUT_DIR", outDir)
	t.Setenv("POLICYPLOT_DPI", "72")

	if _, err := execute(t, "render"); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "makespan_comparison.png")); err != nil {
		t.Errorf("expected chart in env output dir: %v", err)
	}
}

func TestCompare_PrintsImprovements(t *testing.T) {
	out, err := execute(t, "compare", "--summary", summaryFixture)
	if err != nil {
		t.Fatalf("compare failed: %v", err)
	}

	for _, want := range []string{
		"First Fit", "Energy Aware", "CIAVMP",
		"10.2000 ± 0.5000 kWh",
		"CIAVMP Relative Improvements",
		"vs First Fit",
		"+23.53%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPolicies_ListsKnownPolicies(t *testing.T) {
	out, err := execute(t, "policies")
	if err != nil {
		t.Fatalf("policies failed: %v", err)
	}
	for _, want := range []string{"FIRST_FIT", "First Fit", "ENERGY_AWARE", "Energy Aware", "CIAVMP"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestVerify_MatchesFreshRender(t *testing.T) {
	outDir := t.TempDir()
	if _, err := execute(t, "render", "--summary", summaryFixture, "--output-dir", outDir, "--dpi", "72"); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	out, err := execute(t, "verify", "--output-dir", outDir)
	if err != nil {
		t.Fatalf("verify failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "matches") || !strings.Contains(out, "3 charts") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestVerify_DetectsChangedSummary(t *testing.T) {
	raw, err := os.ReadFile(summaryFixture)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	summary := filepath.Join(t.TempDir(), "evaluation_policy_summary.csv")
	if err := os.WriteFile(summary, raw, 0644); err != nil {
		t.Fatalf("write summary: %v", err)
	}
	outDir := t.TempDir()
	if _, err := execute(t, "render", "--summary", summary, "--output-dir", outDir, "--dpi", "72", "--format", "svg"); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	changed := strings.Replace(string(raw), "CIAVMP,10,100.0000,0.0000,1585.0000", "CIAVMP,10,100.0000,0.0000,1499.0000", 1)
	if changed == string(raw) {
		t.Fatal("fixture layout changed, update the replacement")
	}
	if err := os.WriteFile(summary, []byte(changed), 0644); err != nil {
		t.Fatalf("rewrite summary: %v", err)
	}

	out, err := execute(t, "verify", "--output-dir", outDir)
	if err == nil {
		t.Fatal("expected verify to fail after the summary changed")
	}
	if !strings.Contains(out, "makespan: CIAVMP mean is 1585 in manifest, 1499 in summary") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestVerify_NoManifest(t *testing.T) {
	if _, err := execute(t, "verify", "--summary", summaryFixture, "--output-dir", t.TempDir()); err == nil {
		t.Error("expected error when manifest.json is missing")
	}
}
