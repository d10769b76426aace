package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Colunas obrigatórias do arquivo de vendas
const (
	ColumnDate     = "Fecha"
	ColumnCustomer = "Cliente"
	ColumnProduct  = "Producto"
	ColumnCategory = "Categoría"
	ColumnChannel  = "Canal"
	ColumnQuantity = "Cantidad"
	ColumnAmount   = "Total_Venta"
)

// SaleColumns lista as colunas na ordem do CSV de vendas
var SaleColumns = []string{
	ColumnDate,
	ColumnCustomer,
	ColumnProduct,
	ColumnCategory,
	ColumnChannel,
	ColumnQuantity,
	ColumnAmount,
}

const YearMonthLayout = "2006-01"

var weekdayNames = [7]string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"}

// Sale representa uma linha do arquivo de vendas
type Sale struct {
	Date     time.Time       `json:"date"`
	Customer string          `json:"customer"`
	Product  string          `json:"product"`
	Category string          `json:"category"`
	Channel  string          `json:"channel"`
	Quantity int64           `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`
}

// YearMonth retorna a chave de agrupamento mensal (YYYY-MM)
func (s Sale) YearMonth() string {
	return s.Date.Format(YearMonthLayout)
}

// WeekdayIndex retorna o dia da semana com segunda-feira = 0 e domingo = 6
func (s Sale) WeekdayIndex() int {
	return (int(s.Date.Weekday()) + 6) % 7
}

func (s Sale) WeekdayName() string {
	return WeekdayName(s.WeekdayIndex())
}

// WeekdayName retorna o nome em espanhol para um índice 0-6
func WeekdayName(index int) string {
	if index < 0 || index >= len(weekdayNames) {
		return ""
	}
	return weekdayNames[index]
}
