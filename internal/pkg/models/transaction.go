package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents a single imported transaction record
type Transaction struct {
	TransactionID string          `json:"transaction_id" db:"transaction_id"`
	User          string          `json:"user" db:"user"`
	Datetime      int64           `json:"datetime" db:"datetime"`
	Operation     string          `json:"operation" db:"operation"`
	Quantity      decimal.Decimal `json:"quantity" db:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price" db:"unit_price"`
	TranDate      string          `json:"tran_date" db:"tran_date"`
	FileName      string          `json:"file_name" db:"file_name"`
}

// DailyAggregate is one per-user rollup row for a single day
type DailyAggregate struct {
	Date       string          `json:"date" db:"date"`
	User       string          `json:"user" db:"user"`
	Operations int64           `json:"no_of_operations" db:"no_of_operations"`
	Revenue    decimal.Decimal `json:"revenue" db:"revenue"`
}

// HourlyAggregate is one per-user rollup row for a single hour of a day
type HourlyAggregate struct {
	Date       string          `json:"date" db:"date"`
	Hour       string          `json:"hour" db:"hour"`
	User       string          `json:"user" db:"user"`
	Operations int64           `json:"no_of_operations" db:"no_of_operations"`
	Revenue    decimal.Decimal `json:"revenue" db:"revenue"`
}

// ImportSummary reports the outcome of one import batch
type ImportSummary struct {
	BatchID    uuid.UUID `json:"batch_id"`
	FileName   string    `json:"file_name"`
	RowsSeen   int       `json:"rows_seen"`
	Inserted   int       `json:"inserted"`
	Updated    int       `json:"updated"`
	Skipped    int       `json:"skipped"`
	StoreTotal int64     `json:"store_total"`
}

// AggregateSummary reports the number of rollup rows written for one day
type AggregateSummary struct {
	Date       string `json:"date"`
	DailyRows  int    `json:"daily_rows"`
	HourlyRows int    `json:"hourly_rows"`
}
