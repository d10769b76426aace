package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-sales-dashboard/internal/config"
	"github.com/vfg2006/retail-sales-dashboard/internal/dataset"
)

//go:generate mockgen -source=dataset_reload.go -destination=mocks/dataset_reload.go -package=mocks

var ErrReloadRunning = errors.New("recarga do conjunto de vendas já em andamento")

// reloadTimeout limita uma recarga agendada
const reloadTimeout = 5 * time.Minute

// DatasetLoader é a parte do dataset.Store usada pelo agendador
type DatasetLoader interface {
	Load(ctx context.Context) error
	Status() dataset.Status
}

// DatasetReloadConfig representa a configuração da recarga agendada
type DatasetReloadConfig struct {
	CronSchedule  string
	ReloadEnabled bool
}

// DatasetReloadService agenda e executa a recarga do conjunto de vendas
type DatasetReloadService struct {
	scheduler             *gocron.Scheduler
	config                DatasetReloadConfig
	loader                DatasetLoader
	reloadRunning         bool
	reloadMutex           sync.Mutex
	lastReloadStartedAt   time.Time
	lastReloadCompletedAt time.Time
	lastReloadErr         error
}

func NewDatasetReloadService(loader DatasetLoader, appConfig *config.Config) *DatasetReloadService {
	reloadConfig := DatasetReloadConfig{
		CronSchedule:  appConfig.Dataset.ReloadCron,
		ReloadEnabled: appConfig.Dataset.ReloadEnabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  reloadConfig.CronSchedule,
		"reload_enabled": reloadConfig.ReloadEnabled,
	}).Info("Configuração do agendador de recarga do conjunto de vendas carregada")

	return &DatasetReloadService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    reloadConfig,
		loader:    loader,
	}
}

// Start inicia o agendador quando a recarga está habilitada
func (s *DatasetReloadService) Start(ctx context.Context) error {
	if !s.config.ReloadEnabled {
		logrus.Info("Recarga agendada do conjunto de vendas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga do conjunto de vendas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		reloadCtx, cancel := context.WithTimeout(ctx, reloadTimeout)
		defer cancel()

		if err := s.Reload(reloadCtx); err != nil && !errors.Is(err, ErrReloadRunning) {
			logrus.WithError(err).Error("Erro na recarga agendada do conjunto de vendas")
		}
	})
	if err != nil {
		return errors.Wrap(err, "erro ao agendar recarga do conjunto de vendas")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga do conjunto de vendas")
		s.scheduler.Stop()
	}()

	return nil
}

// Reload recarrega o conjunto de vendas e espera o resultado.
// Retorna ErrReloadRunning se outra recarga estiver em andamento.
func (s *DatasetReloadService) Reload(ctx context.Context) error {
	s.reloadMutex.Lock()
	if s.reloadRunning {
		s.reloadMutex.Unlock()
		logrus.Info("Recarga do conjunto de vendas já em andamento, ignorando")
		return ErrReloadRunning
	}
	s.reloadRunning = true
	s.lastReloadStartedAt = time.Now()
	s.reloadMutex.Unlock()

	startTime := time.Now()
	logrus.Info("Iniciando recarga do conjunto de vendas")

	err := s.loader.Load(ctx)

	s.reloadMutex.Lock()
	s.reloadRunning = false
	s.lastReloadCompletedAt = time.Now()
	s.lastReloadErr = err
	s.reloadMutex.Unlock()

	if err != nil {
		return err
	}

	logrus.WithField("duration", time.Since(startTime).String()).Info("Recarga do conjunto de vendas concluída")
	return nil
}

// TriggerManualSync dispara uma recarga em segundo plano
func (s *DatasetReloadService) TriggerManualSync() bool {
	s.reloadMutex.Lock()
	running := s.reloadRunning
	s.reloadMutex.Unlock()

	if running {
		logrus.Info("Recarga do conjunto de vendas já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando recarga manual do conjunto de vendas")
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), reloadTimeout)
		defer cancel()

		if err := s.Reload(ctx); err != nil && !errors.Is(err, ErrReloadRunning) {
			logrus.WithError(err).Error("Erro na recarga manual do conjunto de vendas")
		}
	}()

	return true
}

// GetStatus retorna o status do agendador junto com o estado do conjunto carregado
func (s *DatasetReloadService) GetStatus() map[string]any {
	s.reloadMutex.Lock()
	defer s.reloadMutex.Unlock()

	status := map[string]any{
		"reload_enabled":           s.config.ReloadEnabled,
		"reload_cron":              s.config.CronSchedule,
		"reload_running":           s.reloadRunning,
		"last_reload_started_at":   s.lastReloadStartedAt,
		"last_reload_completed_at": s.lastReloadCompletedAt,
		"dataset":                  s.loader.Status(),
	}
	if s.lastReloadErr != nil {
		status["last_reload_error"] = s.lastReloadErr.Error()
	}

	return status
}
