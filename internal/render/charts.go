package render

import (
	"bytes"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"github.com/vfg2006/retail-sales-dashboard/internal/domain"
)

const (
	chartWidth  = 960
	chartHeight = 480

	// Cor da linha mensal
	monthlyLineColor = 2
)

var ErrEmptyChart = errors.New("gráfico sem dados para desenhar")

// Chart identifica um gráfico do painel
type Chart string

const (
	ChartChannelShare   Chart = "canales"
	ChartMonthlyRevenue Chart = "mensual"
	ChartWeekdayRevenue Chart = "semanal"
	ChartSegmentChannel Chart = "segmentos"
)

// ParseChart valida o nome do gráfico recebido na URL
func ParseChart(name string) (Chart, bool) {
	switch c := Chart(name); c {
	case ChartChannelShare, ChartMonthlyRevenue, ChartWeekdayRevenue, ChartSegmentChannel:
		return c, true
	}
	return "", false
}

// ChannelSharePie desenha a participação de cada canal na receita total
func ChannelSharePie(shares []domain.ChannelShare) ([]byte, error) {
	values := make([]chart.Value, 0, len(shares))
	for i, share := range shares {
		revenue := share.Revenue.InexactFloat64()
		if revenue <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: share.Channel + " " + share.Share.StringFixed(1) + "%",
			Value: revenue,
			Style: chart.Style{
				FillColor:   chartColor(i),
				StrokeColor: drawing.ColorWhite,
				FontColor:   drawing.ColorWhite,
			},
		})
	}
	if len(values) == 0 {
		return nil, ErrEmptyChart
	}

	pie := chart.PieChart{
		Width:  chartHeight,
		Height: chartHeight,
		Values: values,
	}

	return renderSVG(pie.Render)
}

// MonthlyRevenueLine desenha a evolução mensal da receita
func MonthlyRevenueLine(monthly []domain.MonthlyRevenue) ([]byte, error) {
	if len(monthly) == 0 {
		return nil, ErrEmptyChart
	}

	xs := make([]float64, len(monthly))
	ys := make([]float64, len(monthly))
	ticks := make([]chart.Tick, len(monthly))
	var maxY float64
	for i, month := range monthly {
		xs[i] = float64(i)
		ys[i] = month.Revenue.InexactFloat64()
		ticks[i] = chart.Tick{Value: float64(i), Label: month.YearMonth}
		maxY = max(maxY, ys[i])
	}

	// O go-chart exige ao menos dois pontos; um único mês vira um segmento horizontal
	if len(monthly) == 1 {
		xs = append(xs, 1)
		ys = append(ys, ys[0])
	}

	color := chartColor(monthlyLineColor)
	graph := chart.Chart{
		Title:  "Evolución de Ventas Mensuales",
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 48, Left: 24, Right: 24, Bottom: 16},
		},
		XAxis: chart.XAxis{
			Name:  "Mes",
			Range: &chart.ContinuousRange{Min: 0, Max: float64(max(len(monthly)-1, 1))},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name:           "Total de Ventas",
			Range:          &chart.ContinuousRange{Min: 0, Max: axisMax(maxY)},
			ValueFormatter: thousandsFormatter,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Total de Ventas",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: color,
					StrokeWidth: 3,
					DotColor:    color,
					DotWidth:    5,
				},
			},
		},
	}

	return renderSVG(graph.Render)
}

// WeekdayRevenueBar desenha a receita acumulada por dia da semana
func WeekdayRevenueBar(weekdays []domain.WeekdayRevenue) ([]byte, error) {
	if len(weekdays) == 0 {
		return nil, ErrEmptyChart
	}

	bars := make([]chart.Value, 0, len(weekdays))
	var maxY float64
	for _, day := range weekdays {
		value := day.Revenue.InexactFloat64()
		maxY = max(maxY, value)
		bars = append(bars, chart.Value{
			Label: day.Name,
			Value: value,
			Style: chart.Style{
				FillColor:   chartColor(0),
				StrokeColor: chartColor(0),
			},
		})
	}

	graph := chart.BarChart{
		Title:    "Ventas acumuladas por día de la semana",
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{Top: 48},
		},
		YAxis: chart.YAxis{
			Range:          &chart.ContinuousRange{Min: 0, Max: axisMax(maxY)},
			ValueFormatter: thousandsFormatter,
		},
		Bars: bars,
	}

	return renderSVG(graph.Render)
}

// SegmentChannelStackedBar desenha a composição por canal da receita de cada segmento
func SegmentChannelStackedBar(matrix []domain.SegmentChannelRevenue, channels []string) ([]byte, error) {
	channelColor := make(map[string]int, len(channels))
	for i, channel := range channels {
		channelColor[channel] = i
	}

	bars := make([]chart.StackedBar, 0, 3)
	for _, segment := range domain.AllSegments() {
		bar := chart.StackedBar{Name: segment.Label(), Width: 120}
		for _, cell := range matrix {
			if cell.Segment != segment || !cell.Revenue.IsPositive() {
				continue
			}
			color := chartColor(channelColor[cell.Channel])
			bar.Values = append(bar.Values, chart.Value{
				Label: cell.Channel,
				Value: cell.Revenue.InexactFloat64(),
				Style: chart.Style{FillColor: color, StrokeColor: color},
			})
		}
		if len(bar.Values) > 0 {
			bars = append(bars, bar)
		}
	}
	if len(bars) == 0 {
		return nil, ErrEmptyChart
	}

	graph := chart.StackedBarChart{
		Title:      "Ventas por segmento y canal",
		Width:      chartWidth,
		Height:     chartHeight,
		BarSpacing: 80,
		Background: chart.Style{
			Padding: chart.Box{Top: 48},
		},
		Bars: bars,
	}

	return renderSVG(graph.Render)
}

func renderSVG(render func(chart.RendererProvider, io.Writer) error) ([]byte, error) {
	var buf bytes.Buffer
	if err := render(chart.SVG, &buf); err != nil {
		return nil, errors.Wrap(err, "erro ao renderizar gráfico")
	}
	return buf.Bytes(), nil
}

func axisMax(maxValue float64) float64 {
	if maxValue <= 0 {
		return 1
	}
	return maxValue * 1.1
}

func thousandsFormatter(v interface{}) string {
	if value, ok := v.(float64); ok {
		return humanize.Comma(int64(value))
	}
	return ""
}
