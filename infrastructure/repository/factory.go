package repository

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-sales-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/retail-sales-dashboard/internal/config"
)

// NewSalesRepositoryFromConfig escolhe a fonte de vendas por DATA_SOURCE.
// A função de encerramento deve ser chamada ao final do uso.
func NewSalesRepositoryFromConfig(ctx context.Context, cfg *config.Config) (SalesRepository, func(), error) {
	switch cfg.Dataset.Source {
	case config.DataSourceCSV:
		return NewSalesCSVRepository(cfg.Dataset.Path), func() {}, nil
	case config.DataSourcePostgres:
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}

		logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")

		closeConn := func() {
			if err := conn.Close(); err != nil {
				logrus.WithError(err).Warn("Erro ao fechar conexão com PostgreSQL")
			}
		}
		return NewSalesPostgresRepository(conn), closeConn, nil
	}

	return nil, nil, errors.Errorf("fonte de dados desconhecida: %q", cfg.Dataset.Source)
}
