package ports

import (
	"context"

	"github.com/emiliopalmerini/policyplot/internal/domain"
)

// SummaryReader loads a policy summary file into raw records, preserving file order.
type SummaryReader interface {
	// Read returns one record per data row. A missing file yields *domain.MissingInputError.
	Read(ctx context.Context, path string) ([]domain.Record, error)
}
