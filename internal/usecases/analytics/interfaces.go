package analytics

import (
	"context"

	"github.com/vfg2006/retail-sales-dashboard/internal/dataset"
	"github.com/vfg2006/retail-sales-dashboard/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/analytics.go -package=mocks

// SnapshotProvider fornece a tabela de vendas atualmente carregada
type SnapshotProvider interface {
	Snapshot() (*dataset.Snapshot, error)
}

// Analyzer calcula os agregados de cada view a partir do snapshot atual
type Analyzer interface {
	General(ctx context.Context) (*domain.GeneralReport, error)
	ByCategory(ctx context.Context) (*domain.CategoryReport, error)
	Temporal(ctx context.Context) (*domain.TemporalReport, error)
	Segmentation(ctx context.Context) (*domain.SegmentationReport, error)
	Conclusions(ctx context.Context) (*domain.ConclusionsReport, error)

	// Report calcula apenas os agregados da view selecionada
	Report(ctx context.Context, view domain.View) (*domain.Report, error)
}
