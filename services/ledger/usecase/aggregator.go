package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rizkypram/tranledger/internal/pkg/converter"
	"github.com/rizkypram/tranledger/internal/pkg/logger"
	"github.com/rizkypram/tranledger/internal/pkg/models"
)

// AggregateDay computes and appends the per-user daily and hourly rollups
// for the given "YYYY-MM-DD" date. The two rollups share one source read
// but no transactional boundary: a write failure in one does not prevent
// the other; the first error is returned.
func (uc *LedgerUC) AggregateDay(ctx context.Context, date string) (*models.AggregateSummary, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("invalid target date %q: expected YYYY-MM-DD", date)
	}

	txns, err := uc.repo.GetTransactionsByDay(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load transactions for %s: %v",
			models.ErrAggregationSource, date, err)
	}

	daily, hourly := buildRollups(date, txns)
	summary := &models.AggregateSummary{Date: date}
	var firstErr error

	if err := uc.repo.InsertDailyAggregates(ctx, daily); err != nil {
		firstErr = err
		logger.Error("daily rollup failed", logger.Fields{
			"date":  date,
			"error": err.Error(),
		})
	} else {
		summary.DailyRows = len(daily)
		for _, agg := range daily {
			logger.Debug("daily aggregate written", logger.Fields{
				"date":       agg.Date,
				"user":       agg.User,
				"operations": agg.Operations,
				"revenue":    agg.Revenue.String(),
			})
		}
	}

	if err := uc.repo.InsertHourlyAggregates(ctx, hourly); err != nil {
		if firstErr == nil {
			firstErr = err
		}
		logger.Error("hourly rollup failed", logger.Fields{
			"date":  date,
			"error": err.Error(),
		})
	} else {
		summary.HourlyRows = len(hourly)
		for _, agg := range hourly {
			logger.Debug("hourly aggregate written", logger.Fields{
				"date":       agg.Date,
				"hour":       agg.Hour,
				"user":       agg.User,
				"operations": agg.Operations,
				"revenue":    agg.Revenue.String(),
			})
		}
	}

	logger.Info("aggregation completed", logger.Fields{
		"date":         date,
		"transactions": len(txns),
		"daily_rows":   summary.DailyRows,
		"hourly_rows":  summary.HourlyRows,
	})

	return summary, firstErr
}

type rollupBucket struct {
	count   int64
	revenue decimal.Decimal
}

// buildRollups groups the day's transactions by user and by (hour, user).
// Grouping is an exact, case-sensitive string match on user; revenue is
// accumulated in source order with decimal arithmetic, no intermediate
// rounding.
func buildRollups(date string, txns []models.Transaction) ([]models.DailyAggregate, []models.HourlyAggregate) {
	type hourUser struct {
		hour string
		user string
	}

	dailyBuckets := make(map[string]*rollupBucket)
	hourlyBuckets := make(map[hourUser]*rollupBucket)

	for _, txn := range txns {
		amount := txn.Quantity.Mul(txn.UnitPrice)

		db, ok := dailyBuckets[txn.User]
		if !ok {
			db = &rollupBucket{}
			dailyBuckets[txn.User] = db
		}
		db.count++
		db.revenue = db.revenue.Add(amount)

		key := hourUser{hour: converter.HourKey(txn.TranDate), user: txn.User}
		hb, ok := hourlyBuckets[key]
		if !ok {
			hb = &rollupBucket{}
			hourlyBuckets[key] = hb
		}
		hb.count++
		hb.revenue = hb.revenue.Add(amount)
	}

	daily := make([]models.DailyAggregate, 0, len(dailyBuckets))
	for user, bucket := range dailyBuckets {
		daily = append(daily, models.DailyAggregate{
			Date:       date,
			User:       user,
			Operations: bucket.count,
			Revenue:    bucket.revenue,
		})
	}
	sort.Slice(daily, func(i, j int) bool { return daily[i].User < daily[j].User })

	hourly := make([]models.HourlyAggregate, 0, len(hourlyBuckets))
	for key, bucket := range hourlyBuckets {
		hourly = append(hourly, models.HourlyAggregate{
			Date:       date,
			Hour:       key.hour,
			User:       key.user,
			Operations: bucket.count,
			Revenue:    bucket.revenue,
		})
	}
	sort.Slice(hourly, func(i, j int) bool {
		if hourly[i].Hour != hourly[j].Hour {
			return hourly[i].Hour < hourly[j].Hour
		}
		return hourly[i].User < hourly[j].User
	})

	return daily, hourly
}
