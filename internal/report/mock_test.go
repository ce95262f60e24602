package report

import (
	"context"

	"github.com/emiliopalmerini/policyplot/internal/domain"
)

// MockRenderer is a mock implementation of ports.ChartRenderer for testing.
type MockRenderer struct {
	RenderFunc func(ctx context.Context, spec domain.ChartSpec) (domain.ChartData, error)
	Specs      []domain.ChartSpec
}

func (m *MockRenderer) Render(ctx context.Context, spec domain.ChartSpec) (domain.ChartData, error) {
	m.Specs = append(m.Specs, spec)
	if m.RenderFunc != nil {
		return m.RenderFunc(ctx, spec)
	}
	data := domain.ChartData{Title: spec.Title, YLabel: spec.YLabel, OutputPath: spec.OutputPath}
	for i := range spec.Labels {
		data.Bars = append(data.Bars, domain.Bar{
			Label:    spec.Labels[i],
			Height:   spec.Means[i],
			ErrorLow: spec.Stds[i],
			ErrorHi:  spec.Stds[i],
		})
	}
	return data, nil
}

// MockReader is a mock implementation of ports.SummaryReader for testing.
type MockReader struct {
	ReadFunc func(ctx context.Context, path string) ([]domain.Record, error)
}

func (m *MockReader) Read(ctx context.Context, path string) ([]domain.Record, error) {
	if m.ReadFunc != nil {
		return m.ReadFunc(ctx, path)
	}
	return nil, nil
}

// MockExporter is a mock implementation of ports.MetricsExporter for testing.
type MockExporter struct {
	ExportChartFunc func(ctx context.Context, runID string, chart domain.ChartData) error
	Charts          []domain.ChartData
}

func (m *MockExporter) ExportChart(ctx context.Context, runID string, chart domain.ChartData) error {
	m.Charts = append(m.Charts, chart)
	if m.ExportChartFunc != nil {
		return m.ExportChartFunc(ctx, runID, chart)
	}
	return nil
}

func (m *MockExporter) Close(ctx context.Context) error {
	return nil
}

type recordingLogger struct {
	debug, warn, errs []string
}

func (l *recordingLogger) Debug(msg string) { l.debug = append(l.debug, msg) }
func (l *recordingLogger) Warn(msg string)  { l.warn = append(l.warn, msg) }
func (l *recordingLogger) Error(msg string) { l.errs = append(l.errs, msg) }
