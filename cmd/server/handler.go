package main

import (
	"net/http"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/scoreboard/internal/metrics"
	"github.com/mmynk/scoreboard/internal/middleware"
	"github.com/mmynk/scoreboard/internal/registry"
	"github.com/mmynk/scoreboard/internal/service"
	"github.com/mmynk/scoreboard/internal/storage"
	"github.com/mmynk/scoreboard/pkg/api/apiconnect"
)

// newHandler builds the full HTTP handler: the Connect service, /metrics and
// /health, behind CORS and h2c.
func newHandler(reg *registry.Registry, store storage.ResultStore, promReg *prometheus.Registry) http.Handler {
	m := metrics.New(promReg, reg.Len)

	mux := http.NewServeMux()

	interceptors := connect.WithInterceptors(
		middleware.LoggingInterceptor(),
		m.Interceptor(),
	)
	path, handler := apiconnect.NewScoreboardServiceHandler(service.NewScoreboardService(reg, store), interceptors)
	mux.Handle(path, handler)

	mux.Handle("GET /metrics", m.Handler())
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Connect-Protocol-Version", "Connect-Timeout-Ms"},
		ExposedHeaders: []string{"Connect-Protocol-Version", "Connect-Timeout-Ms"},
	}).Handler(mux)

	// h2c serves HTTP/2 without TLS, which Connect's gRPC protocol needs.
	return h2c.NewHandler(corsHandler, &http2.Server{})
}
