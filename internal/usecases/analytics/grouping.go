package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-sales-dashboard/internal/domain"
)

// amountTotal é a soma de valores de uma chave, na ordem da primeira aparição
type amountTotal struct {
	Key   string
	Total decimal.Decimal
}

type unitTotal struct {
	Key   string
	Total int64
}

func sumAmountBy(sales []domain.Sale, key func(domain.Sale) string) []amountTotal {
	index := make(map[string]int)
	totals := make([]amountTotal, 0)

	for _, sale := range sales {
		k := key(sale)
		i, ok := index[k]
		if !ok {
			i = len(totals)
			index[k] = i
			totals = append(totals, amountTotal{Key: k, Total: decimal.Zero})
		}
		totals[i].Total = totals[i].Total.Add(sale.Amount)
	}

	return totals
}

func sumUnitsBy(sales []domain.Sale, key func(domain.Sale) string) []unitTotal {
	index := make(map[string]int)
	totals := make([]unitTotal, 0)

	for _, sale := range sales {
		k := key(sale)
		i, ok := index[k]
		if !ok {
			i = len(totals)
			index[k] = i
			totals = append(totals, unitTotal{Key: k})
		}
		totals[i].Total += sale.Quantity
	}

	return totals
}

// Ordenação estável: valores iguais mantêm a ordem de primeira aparição na entrada
func sortAmountsDesc(totals []amountTotal) {
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total.GreaterThan(totals[j].Total)
	})
}

func sortUnitsDesc(totals []unitTotal) {
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total > totals[j].Total
	})
}

func topAmounts(totals []amountTotal, limit int) []amountTotal {
	sortAmountsDesc(totals)
	if limit > 0 && len(totals) > limit {
		return totals[:limit]
	}
	return totals
}

func topUnits(totals []unitTotal, limit int) []unitTotal {
	sortUnitsDesc(totals)
	if limit > 0 && len(totals) > limit {
		return totals[:limit]
	}
	return totals
}

func totalAmount(sales []domain.Sale) decimal.Decimal {
	total := decimal.Zero
	for _, sale := range sales {
		total = total.Add(sale.Amount)
	}
	return total
}

// percentOf retorna part/total em percentual com duas casas; zero quando total é zero
func percentOf(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Mul(decimal.NewFromInt(100)).DivRound(total, 2)
}

func toCategoryRevenue(totals []amountTotal) []domain.CategoryRevenue {
	rows := make([]domain.CategoryRevenue, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, domain.CategoryRevenue{Category: t.Key, Revenue: t.Total})
	}
	return rows
}

func toProductUnits(totals []unitTotal) []domain.ProductUnits {
	rows := make([]domain.ProductUnits, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, domain.ProductUnits{Product: t.Key, Units: t.Total})
	}
	return rows
}

func byCustomer(s domain.Sale) string { return s.Customer }
func byCategory(s domain.Sale) string { return s.Category }
func byChannel(s domain.Sale) string  { return s.Channel }
func byProduct(s domain.Sale) string  { return s.Product }
