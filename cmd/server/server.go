// cmd/server/server.go
package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/comalab/comatheme/internal/api"
	"github.com/comalab/comatheme/internal/api/themes"
	"github.com/comalab/comatheme/internal/config"
)

func newServer(cfg *config.Config) *http.Server {
	router := http.NewServeMux()

	// Setup middleware chain
	handler := api.ChainMiddleware(
		router,
		api.WithLogging,
		api.WithRecovery,
		api.WithRequestID,
		api.WithContentType,
	)

	registerRoutes(router)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      handler,
		ReadTimeout: 15 * time.Second,
		// Generation calls can run long; the write timeout has to outlive them.
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", handleHealth)

	mux.HandleFunc("POST /api/v1/themes/generate", themes.HandleThemeGenerate)
	mux.HandleFunc("POST /api/v1/themes/invert", themes.HandleThemeInvert)
	mux.HandleFunc("GET /api/v1/themes", themes.HandleThemesList)
	mux.HandleFunc("POST /api/v1/themes", themes.HandleThemeSave)
	mux.HandleFunc("PUT /api/v1/themes/{id}", themes.HandleThemeOverwrite)
	mux.HandleFunc("DELETE /api/v1/themes/{id}", themes.HandleThemeDelete)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
