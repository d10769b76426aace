package handler

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/retail-sales-dashboard/internal/usecases/analytics"
	"github.com/vfg2006/retail-sales-dashboard/pkg/apiErrors"
	"github.com/vfg2006/retail-sales-dashboard/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, logger log.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeAnalyticsError traduz erros do serviço de análise para a resposta padronizada
func writeAnalyticsError(w http.ResponseWriter, logger log.Logger, err error, message string) {
	var analyticsErr *analytics.AnalyticsError
	switch {
	case errors.As(err, &analyticsErr):
		logger.WithError(err).Warn(message)
		apiErrors.WriteError(w, analyticsErr.Code, message, analyticsErr.Details)
	case errors.Is(err, context.Canceled):
		logger.Debug("Requisição cancelada pelo cliente")
	default:
		logger.WithError(err).Error(message)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
	}
}
