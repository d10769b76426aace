package handler

import (
	"bytes"
	"net/http"

	"github.com/vfg2006/retail-sales-dashboard/internal/api/handler/router"
	"github.com/vfg2006/retail-sales-dashboard/internal/render"
	"github.com/vfg2006/retail-sales-dashboard/internal/usecases/analytics"
	"github.com/vfg2006/retail-sales-dashboard/internal/usecases/navigating"
	"github.com/vfg2006/retail-sales-dashboard/pkg/apiErrors"
	"github.com/vfg2006/retail-sales-dashboard/pkg/log"
)

// FormatQueryParam escolhe o formato do relatório; sem ele a resposta é JSON
const FormatQueryParam = "formato"

var reportContentTypes = map[render.Format]string{
	render.FormatJSON:     "application/json",
	render.FormatYAML:     "application/yaml; charset=utf-8",
	render.FormatMarkdown: "text/markdown; charset=utf-8",
}

// ListViews retorna as cinco views na ordem do menu
func ListViews(navigator navigating.Navigator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, navigator.Views())
	})
}

// GetReport retorna os agregados da view informada no caminho, em JSON ou no formato pedido
func GetReport(navigator navigating.Navigator, service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		format := render.FormatJSON
		if requested := r.URL.Query().Get(FormatQueryParam); requested != "" {
			parsed, err := render.ParseFormat(requested)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de relatório inválido", requested)
				return
			}
			format = parsed
		}

		selection := router.Param(r, "view")
		view, err := navigator.Resolve(selection)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrViewNotFound, "View não encontrada", selection)
			return
		}

		logger = logger.WithField("view", view.Slug())

		report, err := service.Report(r.Context(), view)
		if err != nil {
			writeAnalyticsError(w, logger, err, "Erro ao calcular relatório")
			return
		}

		logger.Debug("reports: relatório calculado")

		if format == render.FormatJSON {
			writeJSON(w, logger, http.StatusOK, report)
			return
		}

		var body bytes.Buffer
		if err := render.WriteReport(&body, report, format); err != nil {
			logger.WithError(err).Error("reports: erro ao gerar relatório")
			apiErrors.WriteError(w, apiErrors.ErrRendering, "Erro ao gerar relatório", nil)
			return
		}

		w.Header().Set("Content-Type", reportContentTypes[format])
		w.WriteHeader(http.StatusOK)
		if _, err := body.WriteTo(w); err != nil {
			logger.WithError(err).Warn("reports: erro ao escrever resposta")
		}
	})
}
