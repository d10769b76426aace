package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Route associa método e caminho a um handler; Middlewares envolvem o handler na ordem da lista
type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler
}

type ConfigRouter func(*Router)

func WithRoutes(routes ...Route) ConfigRouter {
	return func(r *Router) {
		r.AddRoutes(routes...)
	}
}

// WithNotFound define a resposta para caminhos sem rota
func WithNotFound(handler http.Handler) ConfigRouter {
	return func(r *Router) {
		r.mux.NotFound = handler
	}
}

// WithMethodNotAllowed define a resposta para métodos não suportados em uma rota existente
func WithMethodNotAllowed(handler http.Handler) ConfigRouter {
	return func(r *Router) {
		r.mux.HandleMethodNotAllowed = true
		r.mux.MethodNotAllowed = handler
	}
}

type Router struct {
	mux    *httprouter.Router
	routes []string
}

func New(configs ...ConfigRouter) *Router {
	r := &Router{mux: httprouter.New()}

	for _, config := range configs {
		config(r)
	}

	return r
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// AddRoutes registra as rotas. Rotas GET também respondem a HEAD.
func (r *Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		handler := route.Handler
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		r.mux.Handler(route.Method, route.Path, handler)
		r.routes = append(r.routes, route.Method+" "+route.Path)

		if route.Method == http.MethodGet {
			r.mux.Handler(http.MethodHead, route.Path, handler)
		}
	}
}

// Routes lista "MÉTODO caminho" na ordem de registro
func (r *Router) Routes() []string {
	return append([]string(nil), r.routes...)
}

// Param retorna o parâmetro de caminho (ex: :view) da requisição
func Param(req *http.Request, name string) string {
	return httprouter.ParamsFromContext(req.Context()).ByName(name)
}
