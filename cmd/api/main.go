package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-sales-dashboard/infrastructure/repository"
	"github.com/vfg2006/retail-sales-dashboard/internal/api"
	"github.com/vfg2006/retail-sales-dashboard/internal/config"
	"github.com/vfg2006/retail-sales-dashboard/internal/dataset"
	"github.com/vfg2006/retail-sales-dashboard/internal/render"
	"github.com/vfg2006/retail-sales-dashboard/internal/scheduler"
	"github.com/vfg2006/retail-sales-dashboard/internal/usecases/analytics"
	"github.com/vfg2006/retail-sales-dashboard/internal/usecases/navigating"
	"github.com/vfg2006/retail-sales-dashboard/pkg/log"
)

func main() {
	log.Configure("info", os.Getenv("APP_ENV"))

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel, cfg.App.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	salesRepo, closeRepo, err := repository.NewSalesRepositoryFromConfig(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar a fonte de vendas")
	}
	defer closeRepo()

	// Sem a carga inicial o painel não tem o que mostrar
	store := dataset.NewStore(salesRepo)
	if err := store.Load(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o conjunto de vendas")
	}

	analyticsService := analytics.NewService(store, analytics.OptionsFromConfig(cfg.Analytics))
	navigator := navigating.NewService()

	dashboard, err := render.NewDashboard(cfg.Dashboard.PageTitle)
	if err != nil {
		logrus.Fatal(err)
	}

	reloadService := scheduler.NewDatasetReloadService(store, cfg)
	if err := reloadService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga do conjunto de vendas")
	} else {
		logrus.Info("Agendador de recarga do conjunto de vendas iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Dependencies{
		Navigator: navigator,
		Analyzer:  analyticsService,
		Renderer:  dashboard,
		Store:     store,
		Reloader:  reloadService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
