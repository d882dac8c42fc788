package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rizkypram/tranledger/internal/pkg/converter"
	"github.com/rizkypram/tranledger/internal/pkg/csvsource"
	"github.com/rizkypram/tranledger/internal/pkg/logger"
	"github.com/rizkypram/tranledger/internal/pkg/models"
	"github.com/rizkypram/tranledger/services/ledger"
)

// requiredFields must all be present and non-empty on a source row.
var requiredFields = []string{"transactionId", "user", "datetime", "operation", "quantity", "unitPrice"}

// ImportFile streams the CSV file at path into the transaction store.
func (uc *LedgerUC) ImportFile(ctx context.Context, path string) (*models.ImportSummary, error) {
	source, err := csvsource.Open(path)
	if err != nil {
		return nil, err
	}
	defer source.Close()

	return uc.ImportBatch(ctx, source, source.Name())
}

// ImportBatch consumes the row source in arrival order and upserts each
// valid row, tagged with originTag. Malformed rows are logged and skipped;
// the batch never rolls back rows already applied.
func (uc *LedgerUC) ImportBatch(ctx context.Context, source ledger.RowSource, originTag string) (*models.ImportSummary, error) {
	summary := &models.ImportSummary{
		BatchID:  uuid.New(),
		FileName: originTag,
	}

	logger.Info("starting import batch", logger.Fields{
		"batch_id": summary.BatchID,
		"file":     originTag,
	})

	for {
		row, err := source.Next()
		if err == io.EOF {
			break
		}

		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			summary.RowsSeen++
			summary.Skipped++
			logger.Warn("skipping unparseable row", logger.Fields{
				"batch_id": summary.BatchID,
				"row":      summary.RowsSeen,
				"error":    err.Error(),
			})
			continue
		}
		if err != nil {
			return summary, fmt.Errorf("failed to read source row: %w", err)
		}
		summary.RowsSeen++

		txn, err := uc.buildTransaction(row, originTag)
		if err != nil {
			summary.Skipped++
			logger.Warn("skipping malformed row", logger.Fields{
				"batch_id": summary.BatchID,
				"row":      summary.RowsSeen,
				"error":    err.Error(),
			})
			continue
		}

		inserted, err := uc.repo.UpsertTransaction(ctx, txn)
		if err != nil {
			if uc.cfg.Import.AbortOnStoreError {
				return summary, err
			}
			summary.Skipped++
			logger.Error("store rejected row", logger.Fields{
				"batch_id":       summary.BatchID,
				"transaction_id": txn.TransactionID,
				"error":          err.Error(),
			})
			continue
		}

		outcome := "updated"
		if inserted {
			summary.Inserted++
			outcome = "inserted"
		} else {
			summary.Updated++
		}
		logger.Debug("row applied", logger.Fields{
			"batch_id":       summary.BatchID,
			"transaction_id": txn.TransactionID,
			"outcome":        outcome,
		})
	}

	total, err := uc.repo.CountTransactions(ctx)
	if err != nil {
		logger.Warn("failed to read store total", logger.Fields{
			"batch_id": summary.BatchID,
			"error":    err.Error(),
		})
	} else {
		summary.StoreTotal = total
	}

	logger.Info("import batch completed", logger.Fields{
		"batch_id":    summary.BatchID,
		"file":        originTag,
		"rows_seen":   summary.RowsSeen,
		"inserted":    summary.Inserted,
		"updated":     summary.Updated,
		"skipped":     summary.Skipped,
		"store_total": summary.StoreTotal,
	})

	return summary, nil
}

// buildTransaction validates a raw row and assembles the record to store.
func (uc *LedgerUC) buildTransaction(row map[string]string, originTag string) (*models.Transaction, error) {
	for _, field := range requiredFields {
		if row[field] == "" {
			return nil, fmt.Errorf("%w: missing field %q", models.ErrMalformedRow, field)
		}
	}

	ms, err := converter.ParseEpochMillis(row["datetime"])
	if err != nil {
		return nil, err
	}

	quantity, err := decimal.NewFromString(row["quantity"])
	if err != nil {
		return nil, fmt.Errorf("%w: quantity %q is not numeric", models.ErrMalformedRow, row["quantity"])
	}
	unitPrice, err := decimal.NewFromString(row["unitPrice"])
	if err != nil {
		return nil, fmt.Errorf("%w: unitPrice %q is not numeric", models.ErrMalformedRow, row["unitPrice"])
	}

	return &models.Transaction{
		TransactionID: row["transactionId"],
		User:          row["user"],
		Datetime:      ms,
		Operation:     row["operation"],
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		TranDate:      converter.CanonicalTimestamp(ms),
		FileName:      originTag,
	}, nil
}
