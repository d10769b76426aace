package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-sales-dashboard/infrastructure/repository/mocks"
	"github.com/vfg2006/retail-sales-dashboard/internal/config"
	"github.com/vfg2006/retail-sales-dashboard/internal/dataset"
	"github.com/vfg2006/retail-sales-dashboard/internal/domain"
	"github.com/vfg2006/retail-sales-dashboard/internal/render"
	"github.com/vfg2006/retail-sales-dashboard/internal/scheduler"
	"github.com/vfg2006/retail-sales-dashboard/internal/usecases/analytics"
	"github.com/vfg2006/retail-sales-dashboard/internal/usecases/navigating"
	"github.com/vfg2006/retail-sales-dashboard/pkg/log"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Host = "localhost"
	cfg.Server.Port = "8000"
	cfg.Server.AllowedOrigins = []string{"http://localhost:3000"}
	cfg.Dataset.ReloadCron = "0 * * * *"
	return cfg
}

func newDependencies(t *testing.T, sales []domain.Sale) Dependencies {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSalesRepository(ctrl)
	repo.EXPECT().Source().Return("csv:ventas.csv").AnyTimes()
	repo.EXPECT().LoadSales(gomock.Any()).Return(sales, nil).AnyTimes()

	store := dataset.NewStore(repo)
	require.NoError(t, store.Load(context.Background()))

	dashboard, err := render.NewDashboard("Caso de Estudio")
	require.NoError(t, err)

	return Dependencies{
		Navigator: navigating.NewService(),
		Analyzer:  analytics.NewService(store, analytics.DefaultOptions()),
		Renderer:  dashboard,
		Store:     store,
		Reloader:  scheduler.NewDatasetReloadService(store, testConfig()),
	}
}

func TestNew_MissingDependencies(t *testing.T) {
	_, err := New(testConfig(), Dependencies{})
	assert.Error(t, err)
}

func TestNewHandler(t *testing.T) {
	handler := NewHandler(testConfig(), newDependencies(t, []domain.Sale{}))

	tests := []struct {
		name         string
		method       string
		path         string
		expectedCode int
		expectedBody string
	}{
		{name: "Painel sem vendas", method: http.MethodGet, path: "/", expectedCode: http.StatusOK, expectedBody: "Menú de navegación"},
		{name: "Relatório de conclusões", method: http.MethodGet, path: "/v1/reports/conclusiones", expectedCode: http.StatusOK, expectedBody: "No hay ventas registradas"},
		{name: "Gráfico sem dados", method: http.MethodGet, path: "/charts/mensual", expectedCode: http.StatusUnprocessableEntity, expectedBody: "DATA_005"},
		{name: "Rota inexistente", method: http.MethodGet, path: "/v2/ventas", expectedCode: http.StatusNotFound, expectedBody: "RTE_001"},
		{name: "Método não permitido", method: http.MethodPut, path: "/v1/views", expectedCode: http.StatusMethodNotAllowed, expectedBody: "RTE_002"},
		{name: "Recarga manual", method: http.MethodPost, path: "/v1/dataset/reload", expectedCode: http.StatusOK, expectedBody: `"version":2`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
		})
	}
}

func TestNewHandler_CorsPreflight(t *testing.T) {
	handler := NewHandler(testConfig(), newDependencies(t, []domain.Sale{}))

	req := httptest.NewRequest(http.MethodOptions, "/v1/reports/general", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
