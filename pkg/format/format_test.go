package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    decimal.Decimal
		expected string
	}{
		{name: "Zero", input: decimal.Zero, expected: "$0"},
		{name: "Milhares", input: decimal.NewFromInt(382775), expected: "$382,775"},
		{name: "Arredonda para cima", input: decimal.RequireFromString("1234567.5"), expected: "$1,234,568"},
		{name: "Arredonda para baixo", input: decimal.RequireFromString("999.49"), expected: "$999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Currency(tt.input))
		})
	}
}

func TestUnitsAndPercent(t *testing.T) {
	assert.Equal(t, "12,345", Units(12345))
	assert.Equal(t, "1,000", Count(1000))
	assert.Equal(t, "19.84%", Percent(decimal.RequireFromString("19.84")))
	assert.Equal(t, "50.00%", Percent(decimal.NewFromInt(50)))
}

func TestJoinSpanish(t *testing.T) {
	assert.Equal(t, "", JoinSpanish(nil))
	assert.Equal(t, "calzado", JoinSpanish([]string{"calzado"}))
	assert.Equal(t, "calzado y ropa mujer", JoinSpanish([]string{"calzado", "ropa mujer"}))
	assert.Equal(t, "ropa unisex, calzado y ropa mujer", JoinSpanish([]string{"ropa unisex", "calzado", "ropa mujer"}))
}
