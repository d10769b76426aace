package analytics

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-sales-dashboard/internal/domain"
	"github.com/vfg2006/retail-sales-dashboard/pkg/format"
)

const conclusionTopCategories = 3

var strategies = []domain.Strategy{
	{
		Title: "Campaña de Marketing en la Web",
		Items: []domain.StrategyItem{
			{Label: "Objetivo", Text: "Aumentar el ticket de clientes de alto y medio valor."},
			{Label: "Táctica", Text: "Ofrecer promociones en las categorías preferidas por los clientes de alto valor para compras superiores al ticket promedio realizadas exclusivamente en la página web."},
		},
	},
	{
		Title: "Promociones para Temporadas Especiales",
		Items: []domain.StrategyItem{
			{Label: "Evento", Text: "Temporada navideña y Día de la Madre."},
			{Label: "Táctica", Text: "Lanzar promociones enfocadas en calzado y ropa para mujer, volcando todos los medios de promoción a incentivar la compra de estos productos."},
		},
	},
	{
		Title: "Campaña de Fidelización",
		Items: []domain.StrategyItem{
			{Label: "Objetivo", Text: "Retener a los clientes de alto valor."},
			{Label: "Táctica", Text: "Implementar un sistema de puntos o descuentos especiales para recompensar su lealtad y motivar futuras compras."},
		},
	},
}

// Strategies retorna as estratégias propostas, iguais para qualquer conjunto de dados
func Strategies() []domain.Strategy {
	out := make([]domain.Strategy, len(strategies))
	copy(out, strategies)
	return out
}

// ComputeConclusions gera as conclusões do painel a partir dos próprios dados
func ComputeConclusions(sales []domain.Sale) *domain.ConclusionsReport {
	general := ComputeGeneral(sales, 0)
	segmentation := ComputeSegmentation(sales, conclusionTopCategories)
	shares := channelShares(sales)

	report := &domain.ConclusionsReport{
		UniqueCustomers:        general.UniqueCustomers,
		AverageTicket:          general.AverageTicket,
		HighSegmentShare:       decimal.Zero,
		HighTopCategories:      make([]string, 0),
		PeakMonthTopCategories: make([]string, 0),
		Findings:               make([]string, 0),
		Strategies:             Strategies(),
	}

	if len(sales) == 0 {
		report.Findings = append(report.Findings, "No hay ventas registradas en el conjunto de datos.")
		return report
	}

	for _, size := range segmentation.SegmentSizes {
		if size.Segment == domain.SegmentHigh {
			report.HighSegmentShare = percentOf(decimal.NewFromInt(int64(size.Customers)), decimal.NewFromInt(int64(general.UniqueCustomers)))
		}
	}

	report.HighPreferredChannel = preferredChannel(segmentation.SegmentChannelRevenue, domain.SegmentHigh)
	for _, category := range segmentation.HighValueCategories {
		report.HighTopCategories = append(report.HighTopCategories, category.Category)
	}

	monthly := monthlyRevenue(sales)
	peak := monthly[0]
	for _, month := range monthly[1:] {
		if month.Revenue.GreaterThan(peak.Revenue) {
			peak = month
		}
	}
	report.PeakMonth = peak.YearMonth
	report.PeakMonthName = peakMonthName(peak.YearMonth)

	inPeak := make([]domain.Sale, 0)
	for _, sale := range sales {
		if sale.YearMonth() == peak.YearMonth {
			inPeak = append(inPeak, sale)
		}
	}
	for _, category := range topAmounts(sumAmountBy(inPeak, byCategory), conclusionTopCategories) {
		report.PeakMonthTopCategories = append(report.PeakMonthTopCategories, category.Key)
	}

	top, bottom := shares[0], shares[len(shares)-1]
	report.TopChannel = &top
	report.BottomChannel = &bottom

	report.Findings = findings(report)

	return report
}

// preferredChannel retorna o canal com maior receita no segmento; empate fica com o primeiro canal
func preferredChannel(matrix []domain.SegmentChannelRevenue, segment domain.Segment) string {
	var best *domain.SegmentChannelRevenue
	for i := range matrix {
		cell := &matrix[i]
		if cell.Segment != segment || !cell.Revenue.IsPositive() {
			continue
		}
		if best == nil || cell.Revenue.GreaterThan(best.Revenue) {
			best = cell
		}
	}
	if best == nil {
		return ""
	}
	return best.Channel
}

func peakMonthName(yearMonth string) string {
	date, err := time.Parse(domain.YearMonthLayout, yearMonth)
	if err != nil {
		return yearMonth
	}
	return fmt.Sprintf("%s de %d", domain.MonthName(int(date.Month())), date.Year())
}

func findings(report *domain.ConclusionsReport) []string {
	lines := []string{
		fmt.Sprintf(
			"La tienda ha tenido %s clientes distintos, con un ticket promedio de %s. De estos, el %s se ubica en el segmento de Alto Valor.",
			format.Count(report.UniqueCustomers),
			format.Currency(report.AverageTicket),
			format.Percent(report.HighSegmentShare),
		),
	}

	if report.HighPreferredChannel != "" {
		lines = append(lines, fmt.Sprintf(
			"Los clientes de alto valor tuvieron como canal de compra preferido %s. Sus categorías preferidas fueron %s.",
			report.HighPreferredChannel,
			strings.ToLower(format.JoinSpanish(report.HighTopCategories)),
		))
	}

	lines = append(lines, fmt.Sprintf(
		"El mes de mayor venta fue %s. Las categorías más vendidas fueron %s.",
		report.PeakMonthName,
		strings.ToLower(format.JoinSpanish(report.PeakMonthTopCategories)),
	))

	if report.TopChannel != nil && report.BottomChannel != nil && report.TopChannel.Channel != report.BottomChannel.Channel {
		lines = append(lines, fmt.Sprintf(
			"El canal de venta con mayor registro fue %s con un %s del total, mientras que el de menor rendimiento fue %s con un %s.",
			report.TopChannel.Channel,
			format.Percent(report.TopChannel.Share),
			report.BottomChannel.Channel,
			format.Percent(report.BottomChannel.Share),
		))
	}

	return lines
}
