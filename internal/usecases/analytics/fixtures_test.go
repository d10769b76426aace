package analytics

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-sales-dashboard/internal/domain"
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

// storeSales é um recorte pequeno com o formato do arquivo da loja
func storeSales() []domain.Sale {
	return []domain.Sale{
		newSale("2024-01-15", "C1", "Vestido rojo", "Ropa mujer", "Web", 2, 100),
		newSale("2024-01-16", "C2", "Tenis", "Calzado", "Tienda física", 1, 200),
		newSale("2024-02-10", "C3", "Gorra", "Accesorios", "Redes Sociales", 3, 300),
		newSale("2024-03-08", "C1", "Vestido rojo", "Ropa mujer", "Web", 1, 400),
		newSale("2024-03-09", "C4", "Tenis", "Calzado", "Web", 2, 500),
		newSale("2024-03-10", "C5", "Camisa", "Ropa hombre", "Tienda física", 1, 50),
		newSale("2024-03-10", "C6", "Gorra", "Accesorios", "Redes Sociales", 4, 150),
	}
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}
