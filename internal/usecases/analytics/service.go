package analytics

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-sales-dashboard/internal/config"
	"github.com/vfg2006/retail-sales-dashboard/internal/dataset"
	"github.com/vfg2006/retail-sales-dashboard/internal/domain"
	"github.com/vfg2006/retail-sales-dashboard/pkg/apiErrors"
)

// Options controla os limites dos rankings
type Options struct {
	TopCustomers int
	TopProducts  int
	TopFocus     int
	FocusMonth   int
}

// OptionsFromConfig converte a configuração da aplicação em Options
func OptionsFromConfig(cfg config.Analytics) Options {
	return Options{
		TopCustomers: cfg.TopCustomers,
		TopProducts:  cfg.TopProducts,
		TopFocus:     cfg.TopFocus,
		FocusMonth:   cfg.FocusMonth,
	}
}

// DefaultOptions usa os mesmos limites dos padrões de configuração
func DefaultOptions() Options {
	return Options{
		TopCustomers: 20,
		TopProducts:  10,
		TopFocus:     5,
		FocusMonth:   int(time.March),
	}
}

// Service recalcula os agregados a cada chamada, sem cache
type Service struct {
	store   SnapshotProvider
	options Options
	now     func() time.Time
}

func NewService(store SnapshotProvider, options Options) *Service {
	return &Service{
		store:   store,
		options: options,
		now:     time.Now,
	}
}

func (s *Service) sales(ctx context.Context) ([]domain.Sale, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snapshot, err := s.store.Snapshot()
	if err != nil {
		if errors.Is(err, dataset.ErrNotLoaded) {
			return nil, NewAnalyticsError(ErrDatasetUnavailable, apiErrors.ErrDatasetUnavailable, err.Error())
		}
		return nil, err
	}

	return snapshot.Sales, nil
}

func (s *Service) General(ctx context.Context) (*domain.GeneralReport, error) {
	sales, err := s.sales(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeGeneral(sales, s.options.TopCustomers), nil
}

func (s *Service) ByCategory(ctx context.Context) (*domain.CategoryReport, error) {
	sales, err := s.sales(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeCategory(sales, s.options.TopProducts), nil
}

func (s *Service) Temporal(ctx context.Context) (*domain.TemporalReport, error) {
	sales, err := s.sales(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeTemporal(sales, s.options.FocusMonth, s.options.TopFocus), nil
}

func (s *Service) Segmentation(ctx context.Context) (*domain.SegmentationReport, error) {
	sales, err := s.sales(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeSegmentation(sales, s.options.TopFocus), nil
}

func (s *Service) Conclusions(ctx context.Context) (*domain.ConclusionsReport, error) {
	sales, err := s.sales(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeConclusions(sales), nil
}

func (s *Service) Report(ctx context.Context, view domain.View) (*domain.Report, error) {
	if !view.Valid() {
		return nil, NewAnalyticsError(ErrUnknownView, apiErrors.ErrViewNotFound, view.String())
	}

	startTime := s.now()
	report := &domain.Report{View: view.Summary(), GeneratedAt: startTime}

	var err error
	switch view {
	case domain.ViewGeneral:
		report.General, err = s.General(ctx)
	case domain.ViewCategory:
		report.Category, err = s.ByCategory(ctx)
	case domain.ViewTemporal:
		report.Temporal, err = s.Temporal(ctx)
	case domain.ViewSegmentation:
		report.Segmentation, err = s.Segmentation(ctx)
	case domain.ViewConclusions:
		report.Conclusions, err = s.Conclusions(ctx)
	}
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"view":     view.Slug(),
		"duration": time.Since(startTime).String(),
	}).Debug("Relatório calculado")

	return report, nil
}
