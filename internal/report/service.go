package report

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/emiliopalmerini/policyplot/internal/domain"
	"github.com/emiliopalmerini/policyplot/internal/ports"
)

// Options configure a chart run.
type Options struct {
	SummaryPath   string
	OutputDir     string
	Format        string
	Metrics       []domain.MetricSpec
	Labels        domain.LabelMapper
	WriteManifest bool
}

// Summary is a loaded and parsed policy summary.
type Summary struct {
	Records []domain.Record
	Rows    []domain.SummaryRow
	Labels  []string
	Unknown []string
}

// Service turns a policy summary into comparison charts.
type Service struct {
	reader   ports.SummaryReader
	renderer ports.ChartRenderer
	exporter ports.MetricsExporter
	logger   Logger
	opts     Options

	now   func() time.Time
	runID func() string
}

// NewService creates a new report service. A nil exporter or logger disables that concern.
func NewService(reader ports.SummaryReader, renderer ports.ChartRenderer, exporter ports.MetricsExporter, logger Logger, opts Options) *Service {
	if logger == nil {
		logger = nopLogger{}
	}
	if len(opts.Metrics) == 0 {
		opts.Metrics = domain.DefaultMetrics()
	}
	if opts.Format == "" {
		opts.Format = "png"
	}
	return &Service{
		reader:   reader,
		renderer: renderer,
		exporter: exporter,
		logger:   logger,
		opts:     opts,
		now:      time.Now,
		runID:    uuid.NewString,
	}
}

// Load checks that the summary exists, reads it and derives display labels.
func (s *Service) Load(ctx context.Context) (*Summary, error) {
	path := s.opts.SummaryPath
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &domain.MissingInputError{Path: path}
		}
		return nil, fmt.Errorf("failed to stat summary: %w", err)
	}

	s.logger.Debug(fmt.Sprintf("reading summary %s", path))
	records, err := s.reader.Read(ctx, path)
	if err != nil {
		var mie *domain.MissingInputError
		if errors.As(err, &mie) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrNoRows)
	}
	if err := domain.CheckColumns(records[0], s.requiredColumns()...); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := domain.CheckUniquePolicies(records); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	rows, err := domain.ParseSummary(records)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	sum := &Summary{Records: records, Rows: rows, Labels: make([]string, len(records))}
	for i, rec := range records {
		id := rec.Policy()
		label, err := s.opts.Labels.Label(id)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+1, err)
		}
		if domain.ParsePolicy(id) == domain.PolicyUnknown {
			sum.Unknown = append(sum.Unknown, id)
			s.logger.Warn(fmt.Sprintf("policy %q on row %d is not recognized, labelled %q", id, i+1, label))
		}
		sum.Labels[i] = label
	}

	return sum, nil
}

func (s *Service) requiredColumns() []string {
	cols := append([]string(nil), domain.RequiredColumns...)
	for _, m := range s.opts.Metrics {
		cols = append(cols, m.MeanColumn, m.StdColumn)
	}
	return cols
}

type plannedChart struct {
	metric domain.MetricSpec
	spec   domain.ChartSpec
}

// plan builds and validates every chart before anything is drawn.
func (s *Service) plan(sum *Summary) ([]plannedChart, error) {
	charts := make([]plannedChart, 0, len(s.opts.Metrics))
	for _, metric := range s.opts.Metrics {
		means, stds, err := metric.Series(sum.Records)
		if err != nil {
			return nil, fmt.Errorf("metric %s: %w", metric.Name, err)
		}
		spec := domain.ChartSpec{
			Labels:     sum.Labels,
			Means:      means,
			Stds:       stds,
			YLabel:     metric.YLabel,
			Title:      metric.Title,
			OutputPath: metric.OutputPath(s.opts.OutputDir, s.opts.Format),
			Color:      metric.Color,
		}
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("metric %s: %w", metric.Name, err)
		}
		charts = append(charts, plannedChart{metric: metric, spec: spec})
	}
	return charts, nil
}

// Run renders one chart per configured metric. Data problems are reported before
// any file is written. A render failure aborts the run; charts already written are
// left in place but no manifest is produced.
func (s *Service) Run(ctx context.Context) (*Manifest, error) {
	sum, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	charts, err := s.plan(sum)
	if err != nil {
		return nil, err
	}

	manifest := &Manifest{
		RunID:           s.runID(),
		GeneratedAt:     s.now().UTC(),
		SummaryPath:     s.opts.SummaryPath,
		UnknownPolicies: sum.Unknown,
		Charts:          make([]domain.ChartData, 0, len(s.opts.Metrics)),
	}

	for _, c := range charts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := s.renderer.Render(ctx, c.spec)
		if err != nil {
			return nil, fmt.Errorf("metric %s: %w", c.metric.Name, err)
		}
		data.Metric = c.metric.Name
		s.logger.Debug(fmt.Sprintf("rendered %s", c.spec.OutputPath))
		manifest.Charts = append(manifest.Charts, data)

		if s.exporter != nil {
			if err := s.exporter.ExportChart(ctx, manifest.RunID, data); err != nil {
				s.logger.Error(fmt.Sprintf("failed to export %s metrics: %v", c.metric.Name, err))
			}
		}
	}

	if s.opts.WriteManifest {
		path := filepath.Join(s.opts.OutputDir, ManifestFile)
		if err := WriteManifest(path, manifest); err != nil {
			return nil, err
		}
		s.logger.Debug(fmt.Sprintf("wrote %s", path))
	}

	return manifest, nil
}

// Discrepancy is one way a manifest no longer describes the current summary or chart files.
type Discrepancy struct {
	Metric string
	Detail string
}

func (d Discrepancy) String() string {
	return fmt.Sprintf("%s: %s", d.Metric, d.Detail)
}

// Verify re-reads the summary and checks that m still records the values a fresh
// run would plot and that every chart file it lists exists.
func (s *Service) Verify(ctx context.Context, m *Manifest) ([]Discrepancy, error) {
	sum, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	charts, err := s.plan(sum)
	if err != nil {
		return nil, err
	}

	recorded := make(map[string]domain.ChartData, len(m.Charts))
	for _, c := range m.Charts {
		recorded[c.Metric] = c
	}

	var out []Discrepancy
	add := func(metric, format string, args ...any) {
		out = append(out, Discrepancy{Metric: metric, Detail: fmt.Sprintf(format, args...)})
	}

	for _, c := range charts {
		name := c.metric.Name
		data, ok := recorded[name]
		if !ok {
			add(name, "not in manifest")
			continue
		}
		delete(recorded, name)

		if _, err := os.Stat(data.OutputPath); err != nil {
			add(name, "chart file %s is missing", data.OutputPath)
		}
		if len(data.Bars) != len(c.spec.Labels) {
			add(name, "manifest has %d bars, summary has %d policies", len(data.Bars), len(c.spec.Labels))
			continue
		}
		for i, bar := range data.Bars {
			if bar.Label != c.spec.Labels[i] {
				add(name, "bar %d is labelled %q, expected %q", i+1, bar.Label, c.spec.Labels[i])
			}
			if bar.Height != c.spec.Means[i] {
				add(name, "%s mean is %g in manifest, %g in summary", c.spec.Labels[i], bar.Height, c.spec.Means[i])
			}
			if bar.ErrorLow != c.spec.Stds[i] || bar.ErrorHi != c.spec.Stds[i] {
				add(name, "%s std is %g in manifest, %g in summary", c.spec.Labels[i], bar.ErrorHi, c.spec.Stds[i])
			}
		}
	}
	for _, c := range m.Charts {
		if _, ok := recorded[c.Metric]; ok {
			add(c.Metric, "recorded in manifest but not a configured metric")
		}
	}

	return out, nil
}
