package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/retail-sales-dashboard/internal/scheduler"
	"github.com/vfg2006/retail-sales-dashboard/pkg/apiErrors"
	"github.com/vfg2006/retail-sales-dashboard/pkg/log"
)

// DatasetReloader recarrega o conjunto de vendas sob demanda
type DatasetReloader interface {
	Reload(ctx context.Context) error
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// AsyncQueryParam com valor true faz a recarga rodar em segundo plano
const AsyncQueryParam = "async"

// ReloadDataset recarrega as vendas e responde com o novo status.
// Se a recarga falhar o painel continua com os dados anteriores.
func ReloadDataset(reloader DatasetReloader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("dataset: recarga manual solicitada")

		if async, _ := strconv.ParseBool(r.URL.Query().Get(AsyncQueryParam)); async {
			if !reloader.TriggerManualSync() {
				apiErrors.WriteError(w, apiErrors.ErrServiceBusy, "Recarga já em andamento", nil)
				return
			}
			writeJSON(w, logger, http.StatusAccepted, map[string]any{
				"message": "Recarga do conjunto de vendas iniciada",
			})
			return
		}

		err := reloader.Reload(r.Context())
		switch {
		case errors.Is(err, scheduler.ErrReloadRunning):
			apiErrors.WriteError(w, apiErrors.ErrServiceBusy, "Recarga já em andamento", nil)
			return
		case err != nil:
			logger.WithError(err).Error("dataset: erro ao recarregar conjunto de vendas")
			apiErrors.WriteError(w, apiErrors.ErrDatasetReload, "Erro ao recarregar conjunto de vendas", err.Error())
			return
		}

		writeJSON(w, logger, http.StatusOK, map[string]any{
			"message": "Conjunto de vendas recarregado com sucesso",
			"status":  reloader.GetStatus(),
		})
	})
}

// GetDatasetStatus retorna o estado da carga e do agendador de recarga
func GetDatasetStatus(reloader DatasetReloader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, reloader.GetStatus())
	})
}
