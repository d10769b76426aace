package analytics

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de análises
var (
	ErrDatasetUnavailable = errors.New("sales dataset unavailable")
	ErrUnknownView        = errors.New("unknown view")
)

// AnalyticsError é um erro com contexto adicional para a API
type AnalyticsError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AnalyticsError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

// NewAnalyticsError cria um novo AnalyticsError
func NewAnalyticsError(err error, code string, details string) *AnalyticsError {
	return &AnalyticsError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
