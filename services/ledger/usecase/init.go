package usecase

import (
	"github.com/rizkypram/tranledger/internal/pkg/models"
	"github.com/rizkypram/tranledger/services/ledger"
)

// LedgerUC implements the ledger usecase interface
type LedgerUC struct {
	cfg  *models.Config
	repo ledger.LedgerRepo
}

// NewLedgerUC creates a new ledger usecase instance
func NewLedgerUC(cfg *models.Config, repo ledger.LedgerRepo) *LedgerUC {
	return &LedgerUC{
		cfg:  cfg,
		repo: repo,
	}
}
