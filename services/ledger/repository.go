package ledger

import (
	"context"

	"github.com/rizkypram/tranledger/internal/pkg/models"
)

// LedgerRepo defines the transaction and aggregate store interface
type LedgerRepo interface {
	// Transaction store
	UpsertTransaction(ctx context.Context, txn *models.Transaction) (inserted bool, err error)
	CountTransactions(ctx context.Context) (int64, error)
	GetTransactionsByDay(ctx context.Context, day string) ([]models.Transaction, error)

	// Aggregate stores
	InsertDailyAggregates(ctx context.Context, aggs []models.DailyAggregate) error
	InsertHourlyAggregates(ctx context.Context, aggs []models.HourlyAggregate) error
}
