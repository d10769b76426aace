package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/retail-sales-dashboard/internal/dataset"
	"github.com/vfg2006/retail-sales-dashboard/pkg/log"
)

// DatasetStatuser expõe o estado do conjunto de vendas carregado
type DatasetStatuser interface {
	Status() dataset.Status
}

// HealthcheckHandler responde 200 quando há vendas carregadas e 503 caso contrário
func HealthcheckHandler(store DatasetStatuser) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := store.Status()

		code := http.StatusOK
		state := "ok"
		if status.LoadedAt == nil {
			code = http.StatusServiceUnavailable
			state = "sem dados"
		}

		writeJSON(w, log.ForContext(r.Context()), code, map[string]any{
			"status":  state,
			"time":    time.Now().Format(time.RFC3339),
			"rows":    status.Rows,
			"version": status.Version,
		})
	})
}
