package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-sales-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/retail-sales-dashboard/internal/domain"
)

const (
	salesTable = "sales s"

	// Limite de linhas por INSERT para não estourar o máximo de parâmetros do PostgreSQL
	insertBatchSize = 500

	saleIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	saleIDLength   = 12
)

var salesColumns = []string{
	"id", "position", "sale_date", "customer", "product", "category", "channel", "quantity", "total_amount",
}

type salesPostgresRepository struct {
	conn *postgres.Connection
}

func NewSalesPostgresRepository(conn *postgres.Connection) SalesStore {
	return &salesPostgresRepository{
		conn: conn,
	}
}

func (r *salesPostgresRepository) Source() string {
	return "postgres:sales"
}

func (r *salesPostgresRepository) LoadSales(ctx context.Context) ([]domain.Sale, error) {
	query, args, err := squirrel.
		Select("s.sale_date, s.customer, s.product, s.category, s.channel, s.quantity, s.total_amount").
		From(salesTable).
		OrderBy("s.position ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query de vendas")
	}
	defer rows.Close()

	sales := make([]domain.Sale, 0)
	for rows.Next() {
		sale, err := r.scanSale(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear venda")
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return sales, nil
}

// ReplaceSales substitui todo o conteúdo da tabela pelas vendas informadas em uma única transação
func (r *salesPostgresRepository) ReplaceSales(ctx context.Context, sales []domain.Sale) (int64, error) {
	var inserted int64

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM sales"); err != nil {
			return errors.Wrap(err, "erro ao limpar tabela de vendas")
		}

		for start := 0; start < len(sales); start += insertBatchSize {
			end := min(start+insertBatchSize, len(sales))

			builder := squirrel.
				Insert("sales").
				Columns(salesColumns...).
				PlaceholderFormat(squirrel.Dollar)

			for i, sale := range sales[start:end] {
				id, err := gonanoid.Generate(saleIDAlphabet, saleIDLength)
				if err != nil {
					return errors.Wrap(err, "erro ao gerar ID da venda")
				}
				builder = builder.Values(
					id,
					start+i+1,
					sale.Date,
					sale.Customer,
					sale.Product,
					sale.Category,
					sale.Channel,
					sale.Quantity,
					sale.Amount,
				)
			}

			query, args, err := builder.ToSql()
			if err != nil {
				return errors.Wrap(err, "erro ao construir a query de inserção")
			}

			result, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return errors.Wrapf(err, "erro ao inserir vendas %d-%d", start+1, end)
			}

			affected, err := result.RowsAffected()
			if err != nil {
				return errors.Wrap(err, "erro ao obter linhas afetadas")
			}
			inserted += affected

			logrus.WithFields(logrus.Fields{
				"inserted": inserted,
				"total":    len(sales),
			}).Debug("Lote de vendas inserido")
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

func (r *salesPostgresRepository) scanSale(rows *sql.Rows) (domain.Sale, error) {
	var sale domain.Sale

	err := rows.Scan(
		&sale.Date,
		&sale.Customer,
		&sale.Product,
		&sale.Category,
		&sale.Channel,
		&sale.Quantity,
		&sale.Amount,
	)
	if err != nil {
		return domain.Sale{}, err
	}

	// TIMESTAMPTZ volta no fuso da sessão; em UTC o mês e o dia da semana batem com o CSV
	sale.Date = sale.Date.UTC()

	return sale, nil
}
