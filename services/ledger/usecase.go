package ledger

import (
	"context"

	"github.com/rizkypram/tranledger/internal/pkg/models"
)

// RowSource produces a finite, forward-only sequence of raw rows keyed by
// column name. Next returns io.EOF once the sequence is exhausted.
type RowSource interface {
	Next() (map[string]string, error)
	Name() string
}

// LedgerUC defines the interface for import and aggregation operations
type LedgerUC interface {
	ImportFile(ctx context.Context, path string) (*models.ImportSummary, error)
	ImportBatch(ctx context.Context, source RowSource, originTag string) (*models.ImportSummary, error)
	AggregateDay(ctx context.Context, date string) (*models.AggregateSummary, error)
}
