package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/retail-sales-dashboard/infrastructure/repository"
	"github.com/vfg2006/retail-sales-dashboard/internal/config"
	"github.com/vfg2006/retail-sales-dashboard/internal/dataset"
	"github.com/vfg2006/retail-sales-dashboard/internal/render"
	"github.com/vfg2006/retail-sales-dashboard/internal/usecases/analytics"
	"github.com/vfg2006/retail-sales-dashboard/internal/usecases/navigating"
	"github.com/vfg2006/retail-sales-dashboard/pkg/log"
)

var (
	flagView    string
	flagFormat  string
	flagDataset string
)

var rootCmd = &cobra.Command{
	Use:   "report",
	Short: "Gera no terminal o relatório de uma view do painel de vendas",
	Long: `report carrega o conjunto de vendas com a mesma configuração da API
(DATA_SOURCE, DATASET_PATH, TOP_*, FOCUS_MONTH) e imprime os agregados
da view escolhida em markdown, json ou yaml.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewConfig()
		if err != nil {
			return err
		}
		log.Configure(cfg.App.LogLevel, cfg.App.Env)

		if cmd.Flags().Changed("dataset") {
			cfg.Dataset.Source = config.DataSourceCSV
			cfg.Dataset.Path = flagDataset
		}

		return runReport(cmd.Context(), cmd, cfg)
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
	rootCmd.Flags().StringVarP(&flagView, "vista", "v", "", "view a gerar: número, slug ou rótulo do menu (padrão: 1.Análisis General)")
	rootCmd.Flags().StringVarP(&flagFormat, "formato", "f", string(render.FormatMarkdown), "formato de saída: markdown, json ou yaml")
	rootCmd.Flags().StringVarP(&flagDataset, "dataset", "d", "", "arquivo CSV de vendas (substitui DATA_SOURCE e DATASET_PATH)")
}

func runReport(ctx context.Context, cmd *cobra.Command, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	format, err := render.ParseFormat(flagFormat)
	if err != nil {
		return err
	}

	view, err := navigating.NewService().Resolve(flagView)
	if err != nil {
		return err
	}

	salesRepo, closeRepo, err := repository.NewSalesRepositoryFromConfig(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	store := dataset.NewStore(salesRepo)
	if err := store.Load(ctx); err != nil {
		return err
	}

	report, err := analytics.NewService(store, analytics.OptionsFromConfig(cfg.Analytics)).Report(ctx, view)
	if err != nil {
		return errors.Wrapf(err, "erro ao calcular view %s", view.Slug())
	}

	return render.WriteReport(cmd.OutOrStdout(), report, format)
}
