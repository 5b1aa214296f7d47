package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/materials-ledger/internal/domain/entity"
	"github.com/jhoicas/materials-ledger/internal/domain/repository"
	"github.com/jhoicas/materials-ledger/internal/infrastructure/postgres"
)

func TestTxRunner_Commit(t *testing.T) {
	mock := newMock(t)
	runner := postgres.NewTxRunner(mock)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO materials_invoices`).
		WithArgs(int64(1), int64(2), fecha, decimal.NewFromInt(200), "UNPAID").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(10)))
	mock.ExpectCommit()

	err := runner.RunLedger(context.Background(), func(inv repository.InvoiceRepository, _ repository.TransactionRepository, _ repository.DebtRepository) error {
		return inv.Create(context.Background(), &entity.MaterialsInvoice{
			ClientID: 1, SupplierID: 2, InvoiceDate: fecha,
			BaseAmount: decimal.NewFromInt(200), Status: entity.InvoiceStatusUnpaid,
		})
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxRunner_RollbackSiFallaElCallback(t *testing.T) {
	mock := newMock(t)
	runner := postgres.NewTxRunner(mock)
	boom := errors.New("fallo en deuda")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := runner.RunLedger(context.Background(), func(repository.InvoiceRepository, repository.TransactionRepository, repository.DebtRepository) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxRunner_BeginFalla(t *testing.T) {
	mock := newMock(t)
	runner := postgres.NewTxRunner(mock)

	mock.ExpectBegin().WillReturnError(errors.New("sin conexiones"))

	called := false
	err := runner.RunLedger(context.Background(), func(repository.InvoiceRepository, repository.TransactionRepository, repository.DebtRepository) error {
		called = true
		return nil
	})
	assert.Error(t, err)
	assert.False(t, called)
}

func TestMigrateURL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@h:5432/db?sslmode=disable", postgres.MigrateURL("postgres://u:p@h:5432/db?sslmode=disable"))
	assert.Equal(t, "pgx5://u@h/db", postgres.MigrateURL("postgresql://u@h/db"))
	assert.Equal(t, "pgx5://x", postgres.MigrateURL("pgx5://x"))
}
