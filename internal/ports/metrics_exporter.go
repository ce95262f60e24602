package ports

import (
	"context"

	"github.com/emiliopalmerini/policyplot/internal/domain"
)

// MetricsExporter exports rendered chart values to an external observability system.
type MetricsExporter interface {
	// ExportChart records the bars of one rendered chart for the given run.
	ExportChart(ctx context.Context, runID string, chart domain.ChartData) error
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}
