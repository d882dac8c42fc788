package repository

import (
	"context"
	"fmt"

	"github.com/rizkypram/tranledger/internal/pkg/models"
)

// UpsertTransaction inserts the record or, when a row with the same
// transaction_id already exists, replaces its mutable fields in a single
// atomic statement. Reports whether the row was newly inserted.
func (r *LedgerRepo) UpsertTransaction(ctx context.Context, txn *models.Transaction) (bool, error) {
	var (
		query string
		args  []interface{}
	)

	if r.cfg.Database.ExtendedSchema {
		query = `
			INSERT INTO tran (transaction_id, "user", datetime, operation, quantity, unit_price, tran_date, file_name)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (transaction_id) DO UPDATE SET
				"user" = EXCLUDED."user",
				datetime = EXCLUDED.datetime,
				operation = EXCLUDED.operation,
				quantity = EXCLUDED.quantity,
				unit_price = EXCLUDED.unit_price,
				tran_date = EXCLUDED.tran_date,
				file_name = EXCLUDED.file_name
			RETURNING (xmax = 0) AS inserted
		`
		args = []interface{}{
			txn.TransactionID, txn.User, txn.Datetime, txn.Operation,
			txn.Quantity, txn.UnitPrice, txn.TranDate, txn.FileName,
		}
	} else {
		query = `
			INSERT INTO tran (transaction_id, "user", datetime, operation, quantity, unit_price)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (transaction_id) DO UPDATE SET
				"user" = EXCLUDED."user",
				datetime = EXCLUDED.datetime,
				operation = EXCLUDED.operation,
				quantity = EXCLUDED.quantity,
				unit_price = EXCLUDED.unit_price
			RETURNING (xmax = 0) AS inserted
		`
		args = []interface{}{
			txn.TransactionID, txn.User, txn.Datetime, txn.Operation,
			txn.Quantity, txn.UnitPrice,
		}
	}

	var inserted bool
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&inserted); err != nil {
		return false, fmt.Errorf("%w: failed to upsert transaction %s: %v",
			models.ErrStoreUnavailable, txn.TransactionID, err)
	}
	return inserted, nil
}

// CountTransactions returns the total number of stored transaction rows.
func (r *LedgerRepo) CountTransactions(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT count(*) FROM tran`); err != nil {
		return 0, fmt.Errorf("%w: failed to count transactions: %v", models.ErrStoreUnavailable, err)
	}
	return total, nil
}

// GetTransactionsByDay returns all records whose canonical date prefix
// equals day, in timestamp order.
func (r *LedgerRepo) GetTransactionsByDay(ctx context.Context, day string) ([]models.Transaction, error) {
	expr := r.tranDateExpr()

	fileName := `file_name`
	if !r.cfg.Database.ExtendedSchema {
		fileName = `'' AS file_name`
	}

	query := fmt.Sprintf(`
		SELECT transaction_id, "user", datetime, operation, quantity, unit_price,
			%s AS tran_date, %s
		FROM tran
		WHERE left(%s, 10) = $1
		ORDER BY datetime
	`, expr, fileName, expr)

	var txns []models.Transaction
	if err := r.db.SelectContext(ctx, &txns, query, day); err != nil {
		return nil, fmt.Errorf("%w: failed to get transactions for %s: %v",
			models.ErrStoreUnavailable, day, err)
	}
	return txns, nil
}
