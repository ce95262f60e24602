package ports

import (
	"context"

	"github.com/emiliopalmerini/policyplot/internal/domain"
)

// ChartRenderer renders one bar chart with error bars and persists it to spec.OutputPath.
type ChartRenderer interface {
	Render(ctx context.Context, spec domain.ChartSpec) (domain.ChartData, error)
}
