package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mercato/internal/http/handlers/health"
	"mercato/internal/http/responses"
	"mercato/internal/logging"
)

type serviceInfo struct {
	Service   string            `json:"service"`
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Endpoints map[string]string `json:"endpoints"`
}

// NewRouter exposes the operational surface of the service: health,
// Prometheus metrics and a root info endpoint. The event flow itself
// rides on Kafka, not on HTTP.
func NewRouter(
	logger logging.Logger,
	serviceName string,
	healthHandler *health.Handler,
) chi.Router {
	r := chi.NewRouter()

	useBaseMiddlewares(r, logger)

	r.Get("/health", healthHandler.Check)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		responses.WriteJSON(w, http.StatusOK, serviceInfo{
			Service:   serviceName,
			Status:    "running",
			Timestamp: time.Now().UTC(),
			Endpoints: map[string]string{
				"health":  "/health",
				"metrics": "/metrics",
			},
		})
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteNotFound(w, req)
	})

	return r
}
