package handler

import (
	"net/http"

	"github.com/vfg2006/retail-sales-dashboard/internal/api/handler/router"
	"github.com/vfg2006/retail-sales-dashboard/internal/usecases/analytics"
	"github.com/vfg2006/retail-sales-dashboard/internal/usecases/navigating"
	"github.com/vfg2006/retail-sales-dashboard/pkg/middleware"
)

func Healthcheck(store DatasetStatuser) []router.Route {
	return []router.Route{
		{
			Path:        "/healthcheck",
			Method:      http.MethodGet,
			Handler:     HealthcheckHandler(store),
			Middlewares: []func(http.Handler) http.Handler{middleware.NoCache()},
		},
	}
}

func Dashboard(navigator navigating.Navigator, service analytics.Analyzer, renderer DashboardRenderer) []router.Route {
	dashboard := GetDashboard(navigator, service, renderer)

	return []router.Route{
		{
			Path:        "/",
			Method:      http.MethodGet,
			Handler:     dashboard,
			Middlewares: []func(http.Handler) http.Handler{middleware.NoCache()},
		},
		{
			Path:        "/dashboard",
			Method:      http.MethodGet,
			Handler:     dashboard,
			Middlewares: []func(http.Handler) http.Handler{middleware.NoCache()},
		},
	}
}

func Reports(navigator navigating.Navigator, service analytics.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/views",
			Method:  http.MethodGet,
			Handler: ListViews(navigator),
		},
		{
			Path:        "/v1/reports/:view",
			Method:      http.MethodGet,
			Handler:     GetReport(navigator, service),
			Middlewares: []func(http.Handler) http.Handler{middleware.NoCache()},
		},
	}
}

func Charts(service analytics.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/charts/:name",
			Method:      http.MethodGet,
			Handler:     GetChart(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.NoCache()},
		},
	}
}

func Dataset(reloader DatasetReloader) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dataset/reload",
			Method:  http.MethodPost,
			Handler: ReloadDataset(reloader),
		},
		{
			Path:        "/v1/dataset/status",
			Method:      http.MethodGet,
			Handler:     GetDatasetStatus(reloader),
			Middlewares: []func(http.Handler) http.Handler{middleware.NoCache()},
		},
	}
}
