package render

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-sales-dashboard/internal/domain"
	"github.com/vfg2006/retail-sales-dashboard/internal/usecases/analytics"
)

func newSale(date, customer, product, category, channel string, quantity, amount int64) domain.Sale {
	parsed, err := time.Parse(time.DateOnly, date)
	if err != nil {
		panic(err)
	}
	return domain.Sale{
		Date:     parsed,
		Customer: customer,
		Product:  product,
		Category: category,
		Channel:  channel,
		Quantity: quantity,
		Amount:   decimal.NewFromInt(amount),
	}
}

func storeSales() []domain.Sale {
	return []domain.Sale{
		newSale("2024-01-15", "C1", "Vestido rojo", "Ropa mujer", "Web", 2, 100),
		newSale("2024-01-16", "C2", "Tenis", "Calzado", "Tienda física", 1, 200),
		newSale("2024-02-10", "C3", "Gorra", "Accesorios", "Redes Sociales", 3, 300),
		newSale("2024-03-08", "C1", "Vestido rojo", "Ropa mujer", "Web", 1, 400),
		newSale("2024-03-09", "C4", "Tenis", "Calzado", "Web", 2, 500),
		newSale("2024-03-10", "C5", "Camisa", "Ropa hombre", "Tienda física", 1, 1500),
		newSale("2024-03-10", "C6", "Gorra", "Accesorios", "Redes Sociales", 4, 150),
	}
}

// reportFor monta o relatório da view como o serviço de análise faria
func reportFor(view domain.View) *domain.Report {
	sales := storeSales()
	report := &domain.Report{View: view.Summary(), GeneratedAt: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)}

	switch view {
	case domain.ViewGeneral:
		report.General = analytics.ComputeGeneral(sales, 20)
	case domain.ViewCategory:
		report.Category = analytics.ComputeCategory(sales, 10)
	case domain.ViewTemporal:
		report.Temporal = analytics.ComputeTemporal(sales, 3, 5)
	case domain.ViewSegmentation:
		report.Segmentation = analytics.ComputeSegmentation(sales, 5)
	case domain.ViewConclusions:
		report.Conclusions = analytics.ComputeConclusions(sales)
	}

	return report
}
