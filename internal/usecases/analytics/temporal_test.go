package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-sales-dashboard/internal/domain"
)

func TestComputeTemporal(t *testing.T) {
	report := ComputeTemporal(storeSales(), 3, 5)

	require.Len(t, report.Monthly, 3)
	assert.Equal(t, "2024-01", report.Monthly[0].YearMonth)
	assert.Equal(t, "2024-02", report.Monthly[1].YearMonth)
	assert.Equal(t, "2024-03", report.Monthly[2].YearMonth)
	assert.True(t, dec("1100").Equal(report.Monthly[2].Revenue))

	expectedWeekdays := []struct {
		index   int
		name    string
		revenue string
	}{
		{0, "Lunes", "100"},
		{1, "Martes", "200"},
		{4, "Viernes", "400"},
		{5, "Sábado", "800"},
		{6, "Domingo", "200"},
	}
	require.Len(t, report.Weekdays, len(expectedWeekdays))
	for i, expected := range expectedWeekdays {
		assert.Equal(t, expected.index, report.Weekdays[i].Index)
		assert.Equal(t, expected.name, report.Weekdays[i].Name)
		assert.True(t, dec(expected.revenue).Equal(report.Weekdays[i].Revenue), "dia %s", expected.name)
	}

	assert.Equal(t, 3, report.FocusMonth)
	assert.Equal(t, "marzo", report.FocusMonthName)
	assert.Equal(t, []domain.ProductUnits{
		{Product: "Gorra", Units: 4},
		{Product: "Tenis", Units: 2},
		{Product: "Vestido rojo", Units: 1},
		{Product: "Camisa", Units: 1},
	}, report.FocusTopProducts)

	categories := make([]string, 0)
	for _, c := range report.FocusTopCategories {
		categories = append(categories, c.Category)
	}
	assert.Equal(t, []string{"Calzado", "Ropa mujer", "Accesorios", "Ropa hombre"}, categories)
}

func TestComputeTemporal_MonthlyIsChronologicalAndSumsToTotal(t *testing.T) {
	sales := []domain.Sale{
		newSale("2024-11-03", "A", "P", "C", "Web", 1, 10),
		newSale("2023-12-24", "B", "P", "C", "Web", 1, 20),
		newSale("2024-02-14", "C", "P", "C", "Web", 1, 30),
		newSale("2023-12-31", "A", "P", "C", "Web", 1, 40),
		newSale("2024-11-30", "B", "P", "C", "Web", 1, 50),
	}

	report := ComputeTemporal(sales, 3, 5)

	keys := make([]string, 0)
	sum := decimal.Zero
	for _, month := range report.Monthly {
		keys = append(keys, month.YearMonth)
		sum = sum.Add(month.Revenue)
	}

	assert.Equal(t, []string{"2023-12", "2024-02", "2024-11"}, keys)
	assert.True(t, ComputeGeneral(sales, 20).TotalRevenue.Equal(sum))
	assert.Empty(t, report.FocusTopProducts)
	assert.Empty(t, report.FocusTopCategories)
}

func TestComputeTemporal_FocusMonthAcrossYearsAndLimit(t *testing.T) {
	sales := []domain.Sale{
		newSale("2023-03-01", "A", "P1", "C1", "Web", 5, 10),
		newSale("2024-03-01", "B", "P2", "C2", "Web", 4, 20),
		newSale("2024-03-02", "C", "P3", "C3", "Web", 3, 30),
		newSale("2024-04-02", "C", "P4", "C4", "Web", 9, 90),
	}

	report := ComputeTemporal(sales, 3, 2)

	assert.Equal(t, []domain.ProductUnits{{Product: "P1", Units: 5}, {Product: "P2", Units: 4}}, report.FocusTopProducts)
	require.Len(t, report.FocusTopCategories, 2)
	assert.Equal(t, "C3", report.FocusTopCategories[0].Category)
	assert.Equal(t, "C2", report.FocusTopCategories[1].Category)
}
