package handler

import (
	"bytes"
	"io"
	"net/http"

	"github.com/vfg2006/retail-sales-dashboard/internal/domain"
	"github.com/vfg2006/retail-sales-dashboard/internal/usecases/analytics"
	"github.com/vfg2006/retail-sales-dashboard/internal/usecases/navigating"
	"github.com/vfg2006/retail-sales-dashboard/pkg/apiErrors"
	"github.com/vfg2006/retail-sales-dashboard/pkg/log"
)

// ViewQueryParam é o parâmetro que seleciona a view do painel
const ViewQueryParam = "vista"

// DashboardRenderer escreve a página HTML de um relatório
type DashboardRenderer interface {
	Render(w io.Writer, report *domain.Report) error
}

// GetDashboard renderiza a view escolhida em ?vista=; sem parâmetro mostra a primeira view
func GetDashboard(navigator navigating.Navigator, service analytics.Analyzer, renderer DashboardRenderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		selection := r.URL.Query().Get(ViewQueryParam)
		view, err := navigator.Resolve(selection)
		if err != nil {
			logger.WithField("view", selection).Warn("dashboard: view desconhecida")
			apiErrors.WriteError(w, apiErrors.ErrViewNotFound, "View não encontrada", selection)
			return
		}

		logger = logger.WithField("view", view.Slug())

		report, err := service.Report(r.Context(), view)
		if err != nil {
			writeAnalyticsError(w, logger, err, "Erro ao calcular relatório do painel")
			return
		}

		// Renderiza em memória para não enviar página pela metade
		var page bytes.Buffer
		if err := renderer.Render(&page, report); err != nil {
			logger.WithError(err).Error("dashboard: erro ao renderizar página")
			apiErrors.WriteError(w, apiErrors.ErrRendering, "Erro ao renderizar painel", nil)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := page.WriteTo(w); err != nil {
			logger.WithError(err).Warn("dashboard: erro ao enviar página")
		}
	})
}
