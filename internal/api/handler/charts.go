package handler

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/retail-sales-dashboard/internal/api/handler/router"
	"github.com/vfg2006/retail-sales-dashboard/internal/render"
	"github.com/vfg2006/retail-sales-dashboard/internal/usecases/analytics"
	"github.com/vfg2006/retail-sales-dashboard/pkg/apiErrors"
	"github.com/vfg2006/retail-sales-dashboard/pkg/log"
)

// GetChart desenha em SVG um dos gráficos do painel
func GetChart(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		name := router.Param(r, "name")
		chart, ok := render.ParseChart(name)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrChartNotFound, "Gráfico não encontrado", name)
			return
		}

		logger = logger.WithField("chart", string(chart))

		svg, err := drawChart(r.Context(), service, chart)
		switch {
		case errors.Is(err, render.ErrEmptyChart):
			apiErrors.WriteError(w, apiErrors.ErrChartEmpty, "Gráfico sem dados", string(chart))
			return
		case err != nil:
			writeAnalyticsError(w, logger, err, "Erro ao desenhar gráfico")
			return
		}

		w.Header().Set("Content-Type", "image/svg+xml")
		if _, err := w.Write(svg); err != nil {
			logger.WithError(err).Warn("charts: erro ao enviar gráfico")
		}
	})
}

func drawChart(ctx context.Context, service analytics.Analyzer, chart render.Chart) ([]byte, error) {
	switch chart {
	case render.ChartChannelShare:
		report, err := service.ByCategory(ctx)
		if err != nil {
			return nil, err
		}
		return render.ChannelSharePie(report.ChannelShares)
	case render.ChartMonthlyRevenue:
		report, err := service.Temporal(ctx)
		if err != nil {
			return nil, err
		}
		return render.MonthlyRevenueLine(report.Monthly)
	case render.ChartWeekdayRevenue:
		report, err := service.Temporal(ctx)
		if err != nil {
			return nil, err
		}
		return render.WeekdayRevenueBar(report.Weekdays)
	case render.ChartSegmentChannel:
		report, err := service.Segmentation(ctx)
		if err != nil {
			return nil, err
		}
		return render.SegmentChannelStackedBar(report.SegmentChannelRevenue, report.Channels)
	}
	return nil, errors.Errorf("gráfico sem implementação: %s", chart)
}
