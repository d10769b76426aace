package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/retail-sales-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/retail-sales-dashboard/infrastructure/migration"
	"github.com/vfg2006/retail-sales-dashboard/infrastructure/repository"
	"github.com/vfg2006/retail-sales-dashboard/internal/config"
	"github.com/vfg2006/retail-sales-dashboard/pkg/log"
)

var (
	flagDataset        string
	flagSkipMigrations bool
)

var rootCmd = &cobra.Command{
	Use:   "import",
	Short: "Importa o CSV de vendas para o PostgreSQL",
	Long: `import lê o arquivo CSV de vendas, aplica as migrações do banco e
substitui o conteúdo da tabela sales em uma única transação. Depois disso
a API pode ser iniciada com DATA_SOURCE=postgres.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewConfig()
		if err != nil {
			return err
		}
		log.Configure(cfg.App.LogLevel, cfg.App.Env)

		path := cfg.Dataset.Path
		if cmd.Flags().Changed("dataset") {
			path = flagDataset
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		if !flagSkipMigrations {
			if err := migration.RunMigrations(cfg.Database.DSN); err != nil {
				return err
			}
		}

		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer conn.Close()

		_, err = importSales(ctx, repository.NewSalesCSVRepository(path), repository.NewSalesPostgresRepository(conn))
		return err
	},
}

// Execute é chamado por main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Erro:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&flagDataset, "dataset", "d", "", "arquivo CSV de vendas (padrão: DATASET_PATH)")
	rootCmd.Flags().BoolVar(&flagSkipMigrations, "skip-migrations", false, "não aplica as migrações antes de importar")
}

func importSales(ctx context.Context, source repository.SalesRepository, target repository.SalesStore) (int64, error) {
	start := time.Now()

	sales, err := source.LoadSales(ctx)
	if err != nil {
		return 0, err
	}

	if len(sales) == 0 {
		return 0, errors.Errorf("nenhuma venda encontrada em %s", source.Source())
	}

	inserted, err := target.ReplaceSales(ctx, sales)
	if err != nil {
		return 0, errors.Wrapf(err, "erro ao importar vendas de %s", source.Source())
	}

	logrus.WithFields(logrus.Fields{
		"dataset_source": source.Source(),
		"dataset_target": target.Source(),
		"dataset_rows":   inserted,
		"duration_ms":    time.Since(start).Milliseconds(),
	}).Info("Importação de vendas concluída")

	return inserted, nil
}
