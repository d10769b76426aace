package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

var monthNames = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// MonthName retorna o nome do mês em espanhol (1 = enero)
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// Report agrupa o resultado de uma view; apenas o campo da view selecionada é preenchido
type Report struct {
	View         ViewSummary         `json:"view"`
	GeneratedAt  time.Time           `json:"generated_at"`
	General      *GeneralReport      `json:"general,omitempty"`
	Category     *CategoryReport     `json:"category,omitempty"`
	Temporal     *TemporalReport     `json:"temporal,omitempty"`
	Segmentation *SegmentationReport `json:"segmentation,omitempty"`
	Conclusions  *ConclusionsReport  `json:"conclusions,omitempty"`
}

type GeneralReport struct {
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	UnitsSold       int64           `json:"units_sold"`
	AverageTicket   decimal.Decimal `json:"average_ticket"`
	UniqueCustomers int             `json:"unique_customers"`
	Transactions    int             `json:"transactions"`
	TopCustomers    []CustomerSpend `json:"top_customers"`
}

type CustomerSpend struct {
	Customer string          `json:"customer"`
	Spend    decimal.Decimal `json:"spend"`
}

type CategoryReport struct {
	UnitsByCategory   []CategoryUnits   `json:"units_by_category"`
	RevenueByCategory []CategoryRevenue `json:"revenue_by_category"`
	ChannelShares     []ChannelShare    `json:"channel_shares"`
	TopProducts       []ProductUnits    `json:"top_products"`
}

type CategoryUnits struct {
	Category string `json:"category"`
	Units    int64  `json:"units"`
}

type CategoryRevenue struct {
	Category string          `json:"category"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// ChannelShare traz a receita do canal e seu percentual sobre o total (0-100)
type ChannelShare struct {
	Channel string          `json:"channel"`
	Revenue decimal.Decimal `json:"revenue"`
	Share   decimal.Decimal `json:"share"`
}

type ProductUnits struct {
	Product string `json:"product"`
	Units   int64  `json:"units"`
}

type TemporalReport struct {
	Monthly            []MonthlyRevenue  `json:"monthly"`
	Weekdays           []WeekdayRevenue  `json:"weekdays"`
	FocusMonth         int               `json:"focus_month"`
	FocusMonthName     string            `json:"focus_month_name"`
	FocusTopProducts   []ProductUnits    `json:"focus_top_products"`
	FocusTopCategories []CategoryRevenue `json:"focus_top_categories"`
}

type MonthlyRevenue struct {
	YearMonth string          `json:"year_month"`
	Revenue   decimal.Decimal `json:"revenue"`
}

type WeekdayRevenue struct {
	Index   int             `json:"index"`
	Name    string          `json:"name"`
	Revenue decimal.Decimal `json:"revenue"`
}

type SegmentationReport struct {
	Edges                 []float64               `json:"edges"`
	Customers             []CustomerSegment       `json:"customers"`
	SegmentSizes          []SegmentSize           `json:"segment_sizes"`
	Channels              []string                `json:"channels"`
	ChannelSegments       []ChannelSegmentCount   `json:"channel_segments"`
	SegmentChannelRevenue []SegmentChannelRevenue `json:"segment_channel_revenue"`
	HighValueCategories   []CategoryRevenue       `json:"high_value_categories"`
	// RowSegments acompanha as vendas do snapshot na mesma ordem
	RowSegments []Segment `json:"-"`
}

type SegmentSize struct {
	Segment   Segment `json:"segment"`
	Customers int     `json:"customers"`
}

// ChannelSegmentCount é uma célula da tabela cruzada canal x segmento
type ChannelSegmentCount struct {
	Channel   string  `json:"channel"`
	Segment   Segment `json:"segment"`
	Customers int     `json:"customers"`
}

type SegmentChannelRevenue struct {
	Segment Segment         `json:"segment"`
	Channel string          `json:"channel"`
	Revenue decimal.Decimal `json:"revenue"`
}

type ConclusionsReport struct {
	UniqueCustomers        int             `json:"unique_customers"`
	AverageTicket          decimal.Decimal `json:"average_ticket"`
	HighSegmentShare       decimal.Decimal `json:"high_segment_share"`
	HighPreferredChannel   string          `json:"high_preferred_channel"`
	HighTopCategories      []string        `json:"high_top_categories"`
	PeakMonth              string          `json:"peak_month"`
	PeakMonthName          string          `json:"peak_month_name"`
	PeakMonthTopCategories []string        `json:"peak_month_top_categories"`
	TopChannel             *ChannelShare   `json:"top_channel,omitempty"`
	BottomChannel          *ChannelShare   `json:"bottom_channel,omitempty"`
	Findings               []string        `json:"findings"`
	Strategies             []Strategy      `json:"strategies"`
}

type Strategy struct {
	Title string         `json:"title"`
	Items []StrategyItem `json:"items"`
}

type StrategyItem struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}
