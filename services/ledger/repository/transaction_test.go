package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rizkypram/tranledger/internal/pkg/models"
)

func setupLedgerRepoTest(t *testing.T, extended bool) (*LedgerRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "pgx")

	repo := &LedgerRepo{
		db: sqlxDB,
		cfg: &models.Config{
			Database: models.DatabaseConfig{ExtendedSchema: extended},
		},
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func sampleTransaction() *models.Transaction {
	return &models.Transaction{
		TransactionID: "5001",
		User:          "alice",
		Datetime:      1596330211174,
		Operation:     "buy",
		Quantity:      decimal.NewFromInt(2),
		UnitPrice:     decimal.NewFromInt(10),
		TranDate:      "2020-08-02 01:03:31",
		FileName:      "tx.csv",
	}
}

func TestUpsertTransaction(t *testing.T) {
	testCases := []struct {
		name         string
		mockSetup    func(mock sqlmock.Sqlmock)
		wantInserted bool
		wantErr      error
	}{
		{
			name: "new row inserted",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"inserted"}).AddRow(true)
				mock.ExpectQuery("INSERT INTO tran").
					WithArgs("5001", "alice", int64(1596330211174), "buy",
						decimal.NewFromInt(2), decimal.NewFromInt(10),
						"2020-08-02 01:03:31", "tx.csv").
					WillReturnRows(rows)
			},
			wantInserted: true,
		},
		{
			name: "existing row updated",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"inserted"}).AddRow(false)
				mock.ExpectQuery("INSERT INTO tran").
					WillReturnRows(rows)
			},
			wantInserted: false,
		},
		{
			name: "store unreachable",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO tran").
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: models.ErrStoreUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupLedgerRepoTest(t, true)
			defer cleanup()

			tc.mockSetup(mock)

			inserted, err := repo.UpsertTransaction(context.Background(), sampleTransaction())
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.wantInserted, inserted)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpsertTransactionCoreSchema(t *testing.T) {
	repo, mock, cleanup := setupLedgerRepoTest(t, false)
	defer cleanup()

	// The core variant writes only the six raw columns.
	rows := sqlmock.NewRows([]string{"inserted"}).AddRow(true)
	mock.ExpectQuery("INSERT INTO tran").
		WithArgs("5001", "alice", int64(1596330211174), "buy",
			decimal.NewFromInt(2), decimal.NewFromInt(10)).
		WillReturnRows(rows)

	inserted, err := repo.UpsertTransaction(context.Background(), sampleTransaction())
	assert.NoError(t, err)
	assert.True(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountTransactions(t *testing.T) {
	repo, mock, cleanup := setupLedgerRepoTest(t, true)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"count"}).AddRow(42)
	mock.ExpectQuery("SELECT count").WillReturnRows(rows)

	total, err := repo.CountTransactions(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(42), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountTransactionsError(t *testing.T) {
	repo, mock, cleanup := setupLedgerRepoTest(t, true)
	defer cleanup()

	mock.ExpectQuery("SELECT count").WillReturnError(errors.New("connection refused"))

	_, err := repo.CountTransactions(context.Background())
	assert.ErrorIs(t, err, models.ErrStoreUnavailable)
}

func TestGetTransactionsByDay(t *testing.T) {
	repo, mock, cleanup := setupLedgerRepoTest(t, true)
	defer cleanup()

	columns := []string{"transaction_id", "user", "datetime", "operation", "quantity", "unit_price", "tran_date", "file_name"}
	rows := sqlmock.NewRows(columns).
		AddRow("5001", "alice", int64(1596330211174), "buy", "2", "10", "2020-08-02 01:03:31", "tx.csv").
		AddRow("5002", "bob", int64(1596333811174), "sell", "1", "5", "2020-08-02 02:03:31", "tx.csv")

	mock.ExpectQuery("SELECT transaction_id").
		WithArgs("2020-08-02").
		WillReturnRows(rows)

	txns, err := repo.GetTransactionsByDay(context.Background(), "2020-08-02")
	require.NoError(t, err)
	require.Len(t, txns, 2)

	assert.Equal(t, "5001", txns[0].TransactionID)
	assert.Equal(t, "alice", txns[0].User)
	assert.True(t, txns[0].Quantity.Equal(decimal.NewFromInt(2)))
	assert.True(t, txns[0].UnitPrice.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "2020-08-02 01:03:31", txns[0].TranDate)
	assert.Equal(t, "bob", txns[1].User)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTransactionsByDayEmpty(t *testing.T) {
	repo, mock, cleanup := setupLedgerRepoTest(t, true)
	defer cleanup()

	columns := []string{"transaction_id", "user", "datetime", "operation", "quantity", "unit_price", "tran_date", "file_name"}
	mock.ExpectQuery("SELECT transaction_id").
		WithArgs("1999-01-01").
		WillReturnRows(sqlmock.NewRows(columns))

	txns, err := repo.GetTransactionsByDay(context.Background(), "1999-01-01")
	assert.NoError(t, err)
	assert.Empty(t, txns)
}

func TestGetTransactionsByDayError(t *testing.T) {
	repo, mock, cleanup := setupLedgerRepoTest(t, true)
	defer cleanup()

	mock.ExpectQuery("SELECT transaction_id").
		WillReturnError(errors.New("connection refused"))

	txns, err := repo.GetTransactionsByDay(context.Background(), "2020-08-02")
	assert.Nil(t, txns)
	assert.ErrorIs(t, err, models.ErrStoreUnavailable)
}
