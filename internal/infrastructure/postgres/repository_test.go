package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/materials-ledger/internal/domain"
	"github.com/jhoicas/materials-ledger/internal/domain/entity"
	"github.com/jhoicas/materials-ledger/internal/domain/repository"
	"github.com/jhoicas/materials-ledger/internal/infrastructure/postgres"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

var fecha = time.Date(2023, 4, 15, 10, 30, 0, 0, time.UTC)

func TestClientRepo_Create(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewClientRepository(mock)
	c := &entity.Client{Name: "Test Client", MarkupRate: decimal.RequireFromString("0.15")}

	mock.ExpectQuery(`INSERT INTO clients`).
		WithArgs("Test Client", c.MarkupRate).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), fecha))

	require.NoError(t, repo.Create(context.Background(), c))
	assert.Equal(t, int64(7), c.ID)
	assert.Equal(t, fecha, c.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepo_GetByID_NoExiste(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewClientRepository(mock)

	mock.ExpectQuery(`SELECT .* FROM clients WHERE id = \$1`).
		WithArgs(int64(404)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "markup_rate", "created_at"}))

	c, err := repo.GetByID(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, c)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepo_List_Keyset(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewClientRepository(mock)

	mock.ExpectQuery(`SELECT .* FROM clients WHERE id > \$1 ORDER BY id LIMIT \$2`).
		WithArgs(int64(2), 3).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "markup_rate", "created_at"}).
			AddRow(int64(3), "A", decimal.RequireFromString("0.1"), fecha).
			AddRow(int64(4), "B", decimal.Zero, fecha))

	list, err := repo.List(context.Background(), repository.PageQuery{AfterID: 2, Limit: 3})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(3), list[0].ID)
	assert.Equal(t, "B", list[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSupplierRepo_List_SinLimite(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewSupplierRepository(mock)

	mock.ExpectQuery(`SELECT id, name, created_at FROM suppliers WHERE id > \$1 ORDER BY id$`).
		WithArgs(int64(0)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "created_at"}).AddRow(int64(1), "Test Supplier", fecha))

	list, err := repo.List(context.Background(), repository.PageQuery{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepo_Create_ForeignKey(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewInvoiceRepository(mock)
	inv := &entity.MaterialsInvoice{
		ClientID: 1, SupplierID: 99, InvoiceDate: fecha,
		BaseAmount: decimal.NewFromInt(200), Status: entity.InvoiceStatusUnpaid,
	}

	mock.ExpectQuery(`INSERT INTO materials_invoices`).
		WithArgs(int64(1), int64(99), fecha, inv.BaseAmount, "UNPAID").
		WillReturnError(&pgconn.PgError{Code: "23503"})

	err := repo.Create(context.Background(), inv)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepo_ListByClient(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewInvoiceRepository(mock)
	cols := []string{"id", "client_id", "supplier_id", "invoice_date", "base_amount", "status"}

	mock.ExpectQuery(`FROM materials_invoices WHERE client_id = \$1 AND id > \$2 ORDER BY id LIMIT \$3`).
		WithArgs(int64(5), int64(0), 11).
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow(int64(1), int64(5), int64(2), fecha, decimal.NewFromInt(100), "PAID"))

	list, err := repo.ListByClient(context.Background(), 5, repository.PageQuery{Limit: 11})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.InvoiceStatusPaid, list[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepo_UpdateStatus(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewInvoiceRepository(mock)

	mock.ExpectExec(`UPDATE materials_invoices SET status = \$1 WHERE id = \$2`).
		WithArgs("PAID", int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`UPDATE materials_invoices`).
		WithArgs("PAID", int64(2)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	require.NoError(t, repo.UpdateStatus(context.Background(), 1, entity.InvoiceStatusPaid))
	assert.ErrorIs(t, repo.UpdateStatus(context.Background(), 2, entity.InvoiceStatusPaid), domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetByInvoiceID(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewTransactionRepository(mock)

	mock.ExpectQuery(`FROM transactions WHERE invoice_id = \$1`).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "invoice_id", "transaction_date", "amount"}).
			AddRow(int64(9), int64(3), fecha, decimal.RequireFromString("230.00")))

	tx, err := repo.GetByInvoiceID(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, tx)
	assert.Equal(t, int64(9), tx.ID)
	assert.True(t, decimal.RequireFromString("230").Equal(tx.Amount))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDebtRepo_Create_AsignaFecha(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewDebtRepository(mock)
	d := &entity.Debt{InvoiceID: 1, Party: entity.PartyClient, Amount: decimal.NewFromInt(230)}

	mock.ExpectQuery(`INSERT INTO debts`).
		WithArgs(int64(1), "client", d.Amount, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(4)))

	require.NoError(t, repo.Create(context.Background(), d))
	assert.Equal(t, int64(4), d.ID)
	assert.False(t, d.CreatedDate.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDebtRepo_ListByInvoice_Error(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewDebtRepository(mock)
	boom := errors.New("conexión perdida")

	mock.ExpectQuery(`FROM debts WHERE invoice_id = \$1`).
		WithArgs(int64(1), int64(0)).
		WillReturnError(boom)

	_, err := repo.ListByInvoice(context.Background(), 1, repository.PageQuery{})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}
