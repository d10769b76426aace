package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-sales-dashboard/internal/domain"
)

// ComputeTemporal calcula a série mensal, a receita por dia da semana e o recorte do mês em foco
func ComputeTemporal(sales []domain.Sale, focusMonth, topFocus int) *domain.TemporalReport {
	report := &domain.TemporalReport{
		Monthly:        monthlyRevenue(sales),
		Weekdays:       weekdayRevenue(sales),
		FocusMonth:     focusMonth,
		FocusMonthName: domain.MonthName(focusMonth),
	}

	focus := make([]domain.Sale, 0)
	for _, sale := range sales {
		if int(sale.Date.Month()) == focusMonth {
			focus = append(focus, sale)
		}
	}

	report.FocusTopProducts = toProductUnits(topUnits(sumUnitsBy(focus, byProduct), topFocus))
	report.FocusTopCategories = toCategoryRevenue(topAmounts(sumAmountBy(focus, byCategory), topFocus))

	return report
}

// monthlyRevenue soma a receita por YYYY-MM em ordem cronológica
func monthlyRevenue(sales []domain.Sale) []domain.MonthlyRevenue {
	totals := sumAmountBy(sales, func(s domain.Sale) string { return s.YearMonth() })
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Key < totals[j].Key
	})

	monthly := make([]domain.MonthlyRevenue, 0, len(totals))
	for _, t := range totals {
		monthly = append(monthly, domain.MonthlyRevenue{YearMonth: t.Key, Revenue: t.Total})
	}
	return monthly
}

// weekdayRevenue soma a receita por dia da semana (segunda = 0), apenas dias presentes
func weekdayRevenue(sales []domain.Sale) []domain.WeekdayRevenue {
	var totals [7]decimal.Decimal
	var present [7]bool

	for _, sale := range sales {
		i := sale.WeekdayIndex()
		totals[i] = totals[i].Add(sale.Amount)
		present[i] = true
	}

	weekdays := make([]domain.WeekdayRevenue, 0, len(totals))
	for i := range totals {
		if !present[i] {
			continue
		}
		weekdays = append(weekdays, domain.WeekdayRevenue{
			Index:   i,
			Name:    domain.WeekdayName(i),
			Revenue: totals[i],
		})
	}
	return weekdays
}
