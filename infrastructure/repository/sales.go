package repository

import (
	"context"

	"github.com/vfg2006/retail-sales-dashboard/internal/domain"
)

//go:generate mockgen -source=sales.go -destination=mocks/sales.go -package=mocks

// SalesRepository carrega a tabela de vendas completa, preservando a ordem de entrada
type SalesRepository interface {
	LoadSales(ctx context.Context) ([]domain.Sale, error)
	// Source identifica a origem dos dados para logs e status
	Source() string
}

// SalesStore é a origem persistente usada pelo importador
type SalesStore interface {
	SalesRepository
	ReplaceSales(ctx context.Context, sales []domain.Sale) (int64, error)
}
