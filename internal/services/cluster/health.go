package cluster

import (
	"fmt"
	"net/http"
)

// NewBasicHealthHandler retorna um http.HandlerFunc de "liveness check": ele
// apenas confirma que o processo está rodando e o servidor HTTP responde. É o
// endpoint que o Consul consulta periodicamente.
func NewBasicHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "Service is alive.")
	}
}
