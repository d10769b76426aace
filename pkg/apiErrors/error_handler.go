package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro retornados pela API do painel
const (
	// Erros de dados (1000-1999)
	ErrDatasetUnavailable = "DATA_001" // Conjunto de vendas não carregado
	ErrDatasetReload      = "DATA_002" // Falha ao recarregar o conjunto de vendas
	ErrViewNotFound       = "DATA_003" // View inexistente
	ErrChartNotFound      = "DATA_004" // Gráfico inexistente
	ErrChartEmpty         = "DATA_005" // Gráfico sem dados para desenhar

	// Erros de validação (2000-2999)
	ErrInvalidFormat = "VAL_001" // Formato de relatório não suportado

	// Erros de roteamento (4000-4999)
	ErrNotFound         = "RTE_001" // Rota inexistente
	ErrMethodNotAllowed = "RTE_002" // Método não suportado na rota

	// Erros do servidor (5000-5999)
	ErrInternalServer = "SRV_001" // Erro interno do servidor
	ErrRendering      = "SRV_002" // Erro ao renderizar página, gráfico ou relatório
	ErrServiceBusy    = "SRV_003" // Operação já em andamento
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrDatasetUnavailable: http.StatusServiceUnavailable,
	ErrDatasetReload:      http.StatusInternalServerError,
	ErrViewNotFound:       http.StatusNotFound,
	ErrChartNotFound:      http.StatusNotFound,
	ErrChartEmpty:         http.StatusUnprocessableEntity,
	ErrInvalidFormat:      http.StatusBadRequest,
	ErrNotFound:           http.StatusNotFound,
	ErrMethodNotAllowed:   http.StatusMethodNotAllowed,
	ErrInternalServer:     http.StatusInternalServerError,
	ErrRendering:          http.StatusInternalServerError,
	ErrServiceBusy:        http.StatusConflict,
}

// StatusFor retorna o status HTTP associado a um código de erro
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status := StatusFor(code)

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
// Útil para quando você quer envolver um erro existente em um erro de API
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
