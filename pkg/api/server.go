// Package api serves PSY-Q library archives over a REST API: listing
// archives and their modules, rendering module section listings, and
// answering symbol lookups from the persistent index.
package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Routes builds the chi router for the server
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	m := s.metrics
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", m.InstrumentHandler("GET", "/api/v1/health", s.handleHealth))

		r.Get("/libraries", m.InstrumentHandler("GET", "/api/v1/libraries", s.handleListLibraries))
		r.Get("/libraries/{name}", m.InstrumentHandler("GET", "/api/v1/libraries/{name}", s.handleGetLibrary))
		r.Get("/libraries/{name}/modules/{module}", m.InstrumentHandler("GET", "/api/v1/libraries/{name}/modules/{module}", s.handleGetModule))

		r.Get("/symbols/{symbol}", m.InstrumentHandler("GET", "/api/v1/symbols/{symbol}", s.handleLookupSymbol))
	})

	return r
}

// StartServer starts the HTTP server with all routes configured
func StartServer(config ServerConfig, index SymbolIndex) error {
	server := NewServer(config, index, NewMetrics())

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	fmt.Printf("Starting psyk REST API server on %s\n", addr)
	fmt.Printf("Metrics available at: http://%s/metrics\n", addr)
	log.Fatal(http.ListenAndServe(addr, server.Routes()))

	return nil
}
