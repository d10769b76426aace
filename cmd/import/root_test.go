package main

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-sales-dashboard/infrastructure/repository/mocks"
	"github.com/vfg2006/retail-sales-dashboard/internal/domain"
	"go.uber.org/mock/gomock"
)

func sampleSales() []domain.Sale {
	return []domain.Sale{
		{
			Date:        time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC),
			Customer:    "C1",
			Product:     "Vestido rojo",
			Category:    "Ropa mujer",
			Channel:     "Web",
			Quantity:    2,
			Amount:      decimal.NewFromInt(100),
		},
		{
			Date:        time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
			Customer:    "C2",
			Product:     "Tenis",
			Category:    "Calzado",
			Channel:     "Tienda física",
			Quantity:    1,
			Amount:      decimal.NewFromInt(400),
		},
	}
}

func TestImportSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	sales := sampleSales()

	source := mocks.NewMockSalesRepository(ctrl)
	target := mocks.NewMockSalesStore(ctrl)

	source.EXPECT().LoadSales(ctx).Return(sales, nil)
	source.EXPECT().Source().Return("csv:ventas.csv").AnyTimes()
	target.EXPECT().Source().Return("postgres").AnyTimes()
	target.EXPECT().ReplaceSales(ctx, sales).Return(int64(2), nil)

	inserted, err := importSales(ctx, source, target)

	require.NoError(t, err)
	assert.Equal(t, int64(2), inserted)
}

func TestImportSales_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("Falha ao ler o CSV", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := mocks.NewMockSalesRepository(ctrl)
		target := mocks.NewMockSalesStore(ctrl)

		source.EXPECT().LoadSales(ctx).Return(nil, errors.New("arquivo inexistente"))

		_, err := importSales(ctx, source, target)
		assert.EqualError(t, err, "arquivo inexistente")
	})

	t.Run("CSV sem linhas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := mocks.NewMockSalesRepository(ctrl)
		target := mocks.NewMockSalesStore(ctrl)

		source.EXPECT().LoadSales(ctx).Return([]domain.Sale{}, nil)
		source.EXPECT().Source().Return("csv:vazio.csv")

		_, err := importSales(ctx, source, target)
		assert.ErrorContains(t, err, "nenhuma venda encontrada")
	})

	t.Run("Falha na transação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := mocks.NewMockSalesRepository(ctrl)
		target := mocks.NewMockSalesStore(ctrl)
		sales := sampleSales()

		source.EXPECT().LoadSales(ctx).Return(sales, nil)
		source.EXPECT().Source().Return("csv:ventas.csv")
		target.EXPECT().ReplaceSales(ctx, sales).Return(int64(0), errors.New("rollback"))

		_, err := importSales(ctx, source, target)
		assert.ErrorContains(t, err, "erro ao importar vendas de csv:ventas.csv")
	})
}
