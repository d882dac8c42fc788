package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/rizkypram/tranledger/internal/pkg/models"
)

// LedgerRepo implements the ledger repository interface on PostgreSQL
type LedgerRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewLedgerRepo creates a new ledger repository instance
func NewLedgerRepo(cfg *models.Config, db *sqlx.DB) *LedgerRepo {
	return &LedgerRepo{
		cfg: cfg,
		db:  db,
	}
}

// tranDateExpr returns the SQL expression yielding the canonical
// "YYYY-MM-DD HH:MM:SS" timestamp for the configured schema variant. The
// extended variant stores the string directly; the core variant derives it
// from the epoch-millisecond datetime column.
func (r *LedgerRepo) tranDateExpr() string {
	if r.cfg.Database.ExtendedSchema {
		return "tran_date"
	}
	return "to_char(to_timestamp(datetime / 1000.0) AT TIME ZONE 'UTC', 'YYYY-MM-DD HH24:MI:SS')"
}
