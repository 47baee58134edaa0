package ports

import (
	"context"

	"github.com/bft-labs/secpad/internal/domain"
)

// ReportStore persists the report of the most recent pass.
type ReportStore interface {
	// Save writes the report, replacing any previous one atomically.
	Save(ctx context.Context, r domain.Report) error
}
