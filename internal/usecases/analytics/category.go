package analytics

import (
	"github.com/vfg2006/retail-sales-dashboard/internal/domain"
)

// ComputeCategory calcula unidades e receita por categoria, participação por canal
// e o ranking de produtos por unidades vendidas
func ComputeCategory(sales []domain.Sale, topProducts int) *domain.CategoryReport {
	report := &domain.CategoryReport{
		UnitsByCategory: make([]domain.CategoryUnits, 0),
		ChannelShares:   make([]domain.ChannelShare, 0),
	}

	units := sumUnitsBy(sales, byCategory)
	sortUnitsDesc(units)
	for _, u := range units {
		report.UnitsByCategory = append(report.UnitsByCategory, domain.CategoryUnits{Category: u.Key, Units: u.Total})
	}

	revenue := sumAmountBy(sales, byCategory)
	sortAmountsDesc(revenue)
	report.RevenueByCategory = toCategoryRevenue(revenue)

	report.ChannelShares = channelShares(sales)
	report.TopProducts = toProductUnits(topUnits(sumUnitsBy(sales, byProduct), topProducts))

	return report
}

// channelShares retorna a receita por canal em ordem decrescente com o percentual sobre o total
func channelShares(sales []domain.Sale) []domain.ChannelShare {
	total := totalAmount(sales)
	channels := sumAmountBy(sales, byChannel)
	sortAmountsDesc(channels)

	shares := make([]domain.ChannelShare, 0, len(channels))
	for _, c := range channels {
		shares = append(shares, domain.ChannelShare{
			Channel: c.Key,
			Revenue: c.Total,
			Share:   percentOf(c.Total, total),
		})
	}
	return shares
}
