/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the frontend

ROUTE GROUPS:
  /api/calculate        Collaboration cost analysis
  /api/sca/*            Service Contract Act determinations
  /api/davis-bacon/*    Davis-Bacon determinations
  /*                    Static files (frontend)

STATIC FILE SERVING:
  Serves the frontend from ./static when present, otherwise a minimal
  endpoint listing.

SECURITY NOTE:
  No authentication middleware. All endpoints are public.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Collaboration cost analysis
		r.Post("/calculate", h.Calculate)

		// Service Contract Act routes
		r.Route("/sca", func(r chi.Router) {
			r.Get("/rates", h.ListSCARates)
			r.Get("/rates/{code}", h.GetSCARate)
			r.Post("/compensation", h.SCACompensation)
		})

		// Davis-Bacon routes
		r.Route("/davis-bacon", func(r chi.Router) {
			r.Get("/rates", h.ListDavisBaconRates)
			r.Get("/rates/{occupation}", h.GetDavisBaconRate)
			r.Post("/compensation", h.DavisBaconCompensation)
			r.Get("/minimum-wage", h.MinimumWage)
		})
	})

	// Serve static files (frontend)
	staticDir := "./static"
	if _, err := os.Stat(staticDir); os.IsNotExist(err) {
		// Try relative to executable
		exe, _ := os.Executable()
		staticDir = filepath.Join(filepath.Dir(exe), "static")
	}

	if _, err := os.Stat(staticDir); err == nil {
		fileServer := http.FileServer(http.Dir(staticDir))
		r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
			fullPath := filepath.Join(staticDir, r.URL.Path)
			if _, err := os.Stat(fullPath); os.IsNotExist(err) {
				http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
				return
			}
			fileServer.ServeHTTP(w, r)
		})
	} else {
		r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Wage Engine</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>Wage Engine API</h1>
<p>No frontend build found in ./static.</p>
<h2>API Endpoints</h2>
<ul>
<li>POST /api/calculate - Blended human/AI labor cost analysis</li>
<li><a href="/api/sca/rates">/api/sca/rates</a> - SCA wage determination</li>
<li>POST /api/sca/compensation - SCA total compensation</li>
<li><a href="/api/davis-bacon/rates">/api/davis-bacon/rates</a> - Davis-Bacon wage determination</li>
<li>POST /api/davis-bacon/compensation - Davis-Bacon total compensation</li>
<li><a href="/api/davis-bacon/minimum-wage?contract_date=2025-01-01">/api/davis-bacon/minimum-wage</a> - Statutory minimum by contract date</li>
</ul>
</body>
</html>`))
		})
	}

	return r
}
