package handler

import (
	"net/http"
	"strings"

	"github.com/srihariharan14/auto-sales-dashboard/pkg/apiErrors"
	"github.com/srihariharan14/auto-sales-dashboard/web"
)

// IndexPage serve a página embutida do dashboard.
func IndexPage() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(web.IndexHTML)
	})
}

// NotFound devolve 404 em JSON para caminhos da API e a página do dashboard
// para qualquer outro caminho desconhecido.
func NotFound() http.Handler {
	index := IndexPage()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/v1/") || r.URL.Path == "/healthcheck" {
			apiErrors.WriteError(w, apiErrors.ErrRouteNotFound, "rota não encontrada", nil)
			return
		}

		index.ServeHTTP(w, r)
	})
}
