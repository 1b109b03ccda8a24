package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/plantcare-backend/internal/config"
	"github.com/heartmarshall/plantcare-backend/internal/transport/middleware"
)

// NewRouter registers every endpoint on a ServeMux and wraps it with the
// middleware chain with recovery outermost. A nil limit disables rate limiting.
func NewRouter(
	plants *PlantHandler,
	health *HealthHandler,
	cors config.CORSConfig,
	limit middleware.Middleware,
	logger *slog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("GET /plants", plants.List)
	mux.HandleFunc("GET /plants/{$}", plants.List)
	mux.HandleFunc("POST /plants", plants.Create)
	mux.HandleFunc("POST /plants/{$}", plants.Create)
	mux.HandleFunc("GET /plants/{id}", plants.Get)
	mux.HandleFunc("PUT /plants/{id}", plants.Update)
	mux.HandleFunc("DELETE /plants/{id}", plants.Delete)

	mux.HandleFunc("GET /plants/{id}/care-logs", plants.ListCareLogs)
	mux.HandleFunc("GET /plants/{id}/care-logs/{$}", plants.ListCareLogs)
	mux.HandleFunc("POST /plants/{id}/care-logs", plants.AddCareLog)
	mux.HandleFunc("POST /plants/{id}/care-logs/{$}", plants.AddCareLog)

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cors),
		limit,
	)(mux)
}
