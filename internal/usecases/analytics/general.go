package analytics

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-sales-dashboard/internal/domain"
)

// ComputeGeneral calcula os cartões e o ranking de clientes por gasto acumulado
func ComputeGeneral(sales []domain.Sale, topCustomers int) *domain.GeneralReport {
	report := &domain.GeneralReport{
		TotalRevenue:  totalAmount(sales),
		AverageTicket: decimal.Zero,
		Transactions:  len(sales),
		TopCustomers:  make([]domain.CustomerSpend, 0),
	}

	for _, sale := range sales {
		report.UnitsSold += sale.Quantity
	}

	if len(sales) > 0 {
		report.AverageTicket = report.TotalRevenue.DivRound(decimal.NewFromInt(int64(len(sales))), 2)
	}

	spend := sumAmountBy(sales, byCustomer)
	report.UniqueCustomers = len(spend)

	for _, customer := range topAmounts(spend, topCustomers) {
		report.TopCustomers = append(report.TopCustomers, domain.CustomerSpend{
			Customer: customer.Key,
			Spend:    customer.Total,
		})
	}

	return report
}
