package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mlorentedev/wordsmith/internal/adapter"
	"github.com/mlorentedev/wordsmith/internal/handler"
	"github.com/mlorentedev/wordsmith/internal/middleware"
)

// SetupMux wires handlers with the full middleware chain. /api/gemini is
// an alias of /api/suggest.
func SetupMux(adapters map[string]adapter.LLMAdapter, models []adapter.ModelInfo, defaultModel, version string) http.Handler {
	suggest := handler.Suggest(adapters, defaultModel)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", handler.Health(adapters, version))
	mux.HandleFunc("/api/models", handler.Models(models))
	mux.HandleFunc("/api/suggest", suggest)
	mux.HandleFunc("/api/gemini", suggest)
	mux.Handle("/metrics", promhttp.Handler())

	return middleware.Chain(mux)
}
