// Package format formata números para exibição no painel
package format

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Currency formata um valor monetário arredondado para inteiro, ex: $1,234,568
func Currency(value decimal.Decimal) string {
	return "$" + humanize.Comma(value.Round(0).IntPart())
}

// Units formata quantidades com separador de milhar
func Units(value int64) string {
	return humanize.Comma(value)
}

func Count(value int) string {
	return humanize.Comma(int64(value))
}

// Percent formata um percentual (0-100) com duas casas, ex: 19.84%
func Percent(value decimal.Decimal) string {
	return value.StringFixed(2) + "%"
}

// JoinSpanish junta itens no formato "a, b y c"
func JoinSpanish(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " y " + items[len(items)-1]
}
