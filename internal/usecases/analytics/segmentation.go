package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-sales-dashboard/internal/domain"
)

// ComputeSegmentation divide os clientes em tercis de gasto acumulado e cruza os segmentos
// com canais e categorias
func ComputeSegmentation(sales []domain.Sale, topFocus int) *domain.SegmentationReport {
	spend := sumAmountBy(sales, byCustomer)

	values := make([]float64, len(spend))
	for i, s := range spend {
		values[i] = s.Total.InexactFloat64()
	}
	edges := quantileEdges(values, segmentBins)

	report := &domain.SegmentationReport{
		Edges:        edges,
		Customers:    make([]domain.CustomerSegment, 0, len(spend)),
		SegmentSizes: make([]domain.SegmentSize, 0, segmentBins),
		RowSegments:  make([]domain.Segment, len(sales)),
	}

	segmentOf := make(map[string]domain.Segment, len(spend))
	sizes := make(map[domain.Segment]int, segmentBins)
	for i, s := range spend {
		segment := segmentFor(values[i], edges)
		segmentOf[s.Key] = segment
		sizes[segment]++
		report.Customers = append(report.Customers, domain.CustomerSegment{
			Customer: s.Key,
			Spend:    s.Total,
			Segment:  segment,
		})
	}

	for _, segment := range domain.AllSegments() {
		report.SegmentSizes = append(report.SegmentSizes, domain.SegmentSize{Segment: segment, Customers: sizes[segment]})
	}

	// Junção à esquerda: cada venda recebe o segmento do seu cliente
	high := make([]domain.Sale, 0)
	for i, sale := range sales {
		report.RowSegments[i] = segmentOf[sale.Customer]
		if report.RowSegments[i] == domain.SegmentHigh {
			high = append(high, sale)
		}
	}

	report.Channels = sortedChannels(sales)
	report.ChannelSegments = channelSegmentCounts(sales, report.RowSegments, report.Channels)
	report.SegmentChannelRevenue = segmentChannelRevenue(sales, report.RowSegments, report.Channels)
	report.HighValueCategories = toCategoryRevenue(topAmounts(sumAmountBy(high, byCategory), topFocus))

	return report
}

func sortedChannels(sales []domain.Sale) []string {
	seen := make(map[string]struct{})
	channels := make([]string, 0)
	for _, sale := range sales {
		if _, ok := seen[sale.Channel]; ok {
			continue
		}
		seen[sale.Channel] = struct{}{}
		channels = append(channels, sale.Channel)
	}
	sort.Strings(channels)
	return channels
}

type channelSegmentKey struct {
	channel string
	segment domain.Segment
}

// channelSegmentCounts conta clientes distintos por canal e segmento, incluindo células zeradas
func channelSegmentCounts(sales []domain.Sale, rowSegments []domain.Segment, channels []string) []domain.ChannelSegmentCount {
	customers := make(map[channelSegmentKey]map[string]struct{})
	for i, sale := range sales {
		key := channelSegmentKey{channel: sale.Channel, segment: rowSegments[i]}
		if customers[key] == nil {
			customers[key] = make(map[string]struct{})
		}
		customers[key][sale.Customer] = struct{}{}
	}

	counts := make([]domain.ChannelSegmentCount, 0, len(channels)*segmentBins)
	for _, channel := range channels {
		for _, segment := range domain.AllSegments() {
			counts = append(counts, domain.ChannelSegmentCount{
				Channel:   channel,
				Segment:   segment,
				Customers: len(customers[channelSegmentKey{channel: channel, segment: segment}]),
			})
		}
	}
	return counts
}

// segmentChannelRevenue monta a matriz segmento x canal usada no gráfico de barras empilhadas
func segmentChannelRevenue(sales []domain.Sale, rowSegments []domain.Segment, channels []string) []domain.SegmentChannelRevenue {
	totals := make(map[channelSegmentKey]decimal.Decimal)
	for i, sale := range sales {
		key := channelSegmentKey{channel: sale.Channel, segment: rowSegments[i]}
		totals[key] = totals[key].Add(sale.Amount)
	}

	matrix := make([]domain.SegmentChannelRevenue, 0, len(channels)*segmentBins)
	for _, segment := range domain.AllSegments() {
		for _, channel := range channels {
			matrix = append(matrix, domain.SegmentChannelRevenue{
				Segment: segment,
				Channel: channel,
				Revenue: totals[channelSegmentKey{channel: channel, segment: segment}],
			})
		}
	}
	return matrix
}
