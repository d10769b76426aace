package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-sales-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/retail-sales-dashboard/internal/domain"
)

func newMockConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &postgres.Connection{DB: db}, mock
}

func TestSalesPostgresRepository_LoadSales(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewSalesPostgresRepository(conn)

	date := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"sale_date", "customer", "product", "category", "channel", "quantity", "total_amount"}).
		AddRow(date, "C001", "Vestido rojo", "Ropa mujer", "Web", int64(2), "180000.00").
		AddRow(date.AddDate(0, 0, 1), "C002", "Gorra", "Accesorios", "Tienda física", int64(1), "45000.50")

	mock.ExpectQuery(`SELECT (.+) FROM sales s ORDER BY s.position ASC`).WillReturnRows(rows)

	sales, err := repo.LoadSales(context.Background())
	require.NoError(t, err)
	require.Len(t, sales, 2)

	assert.Equal(t, "C001", sales[0].Customer)
	assert.Equal(t, int64(2), sales[0].Quantity)
	assert.True(t, decimal.NewFromInt(180000).Equal(sales[0].Amount))
	assert.Equal(t, "Tienda física", sales[1].Channel)
	assert.True(t, decimal.RequireFromString("45000.5").Equal(sales[1].Amount))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesPostgresRepository_LoadSales_SessionTimezone(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewSalesPostgresRepository(conn)

	bogota := time.FixedZone("COT", -5*60*60)
	stored := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).In(bogota)
	rows := sqlmock.NewRows([]string{"sale_date", "customer", "product", "category", "channel", "quantity", "total_amount"}).
		AddRow(stored, "C001", "Vestido rojo", "Ropa mujer", "Web", int64(1), "100.125")

	mock.ExpectQuery(`SELECT (.+) FROM sales s ORDER BY s.position ASC`).WillReturnRows(rows)

	sales, err := repo.LoadSales(context.Background())
	require.NoError(t, err)
	require.Len(t, sales, 1)

	assert.Equal(t, "2024-03", sales[0].YearMonth())
	assert.True(t, decimal.RequireFromString("100.125").Equal(sales[0].Amount))
}

func TestSalesPostgresRepository_LoadSales_QueryError(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewSalesPostgresRepository(conn)

	mock.ExpectQuery(`SELECT (.+) FROM sales s`).WillReturnError(errors.New("conexão perdida"))

	sales, err := repo.LoadSales(context.Background())
	assert.Nil(t, sales)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conexão perdida")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesPostgresRepository_ReplaceSales(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewSalesPostgresRepository(conn)

	date := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)
	sales := []domain.Sale{
		{Date: date, Customer: "C001", Product: "Vestido rojo", Category: "Ropa mujer", Channel: "Web", Quantity: 2, Amount: decimal.NewFromInt(180000)},
		{Date: date, Customer: "C002", Product: "Gorra", Category: "Accesorios", Channel: "Web", Quantity: 1, Amount: decimal.NewFromInt(45000)},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM sales`).WillReturnResult(sqlmock.NewResult(0, 10))
	mock.ExpectExec(`INSERT INTO sales \(id,position,sale_date,customer,product,category,channel,quantity,total_amount\) VALUES`).
		WithArgs(
			sqlmock.AnyArg(), int64(1), date, "C001", "Vestido rojo", "Ropa mujer", "Web", int64(2), sqlmock.AnyArg(),
			sqlmock.AnyArg(), int64(2), date, "C002", "Gorra", "Accesorios", "Web", int64(1), sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	inserted, err := repo.ReplaceSales(context.Background(), sales)
	require.NoError(t, err)
	assert.Equal(t, int64(2), inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesPostgresRepository_ReplaceSales_Rollback(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewSalesPostgresRepository(conn)

	sales := []domain.Sale{
		{Date: time.Now(), Customer: "C001", Product: "P", Category: "C", Channel: "Web", Quantity: 1, Amount: decimal.NewFromInt(10)},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM sales`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO sales`).WillReturnError(errors.New("violação de restrição"))
	mock.ExpectRollback()

	inserted, err := repo.ReplaceSales(context.Background(), sales)
	require.Error(t, err)
	assert.Zero(t, inserted)
	assert.Contains(t, err.Error(), "erro ao inserir vendas 1-1")
	assert.NoError(t, mock.ExpectationsWereMet())
}
