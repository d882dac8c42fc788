package repository

import (
	"context"
	"fmt"

	"github.com/rizkypram/tranledger/internal/pkg/models"
)

// InsertDailyAggregates appends the rollup rows inside one transaction so
// a failed rollup writes nothing.
func (r *LedgerRepo) InsertDailyAggregates(ctx context.Context, aggs []models.DailyAggregate) error {
	if len(aggs) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO agg_user_per_day (date, "user", no_of_operations, revenue)
		VALUES (:date, :user, :no_of_operations, :revenue)
	`
	for _, agg := range aggs {
		if _, err := tx.NamedExecContext(ctx, query, agg); err != nil {
			return fmt.Errorf("failed to insert daily aggregate for %s/%s: %w", agg.Date, agg.User, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit daily aggregates: %w", err)
	}
	return nil
}

// InsertHourlyAggregates appends the rollup rows inside one transaction.
func (r *LedgerRepo) InsertHourlyAggregates(ctx context.Context, aggs []models.HourlyAggregate) error {
	if len(aggs) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO agg_user_per_hour (date, hour, "user", no_of_operations, revenue)
		VALUES (:date, :hour, :user, :no_of_operations, :revenue)
	`
	for _, agg := range aggs {
		if _, err := tx.NamedExecContext(ctx, query, agg); err != nil {
			return fmt.Errorf("failed to insert hourly aggregate for %s/%s/%s: %w",
				agg.Date, agg.Hour, agg.User, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit hourly aggregates: %w", err)
	}
	return nil
}
