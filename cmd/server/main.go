/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the wage engine server. Handles configuration,
  dependency wiring, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Open the SQLite rate store (seeds the statutory snapshot when empty)
  3. Load the wage tables and build the immutable determinations
  4. Configure HTTP router
  5. Start server with graceful shutdown

The wage tables are loaded exactly once, before the server accepts
requests. Calculations afterwards are pure and lock-free; changing the
tables means editing the database and restarting.

COMMAND-LINE FLAGS:
  -port    HTTP server port (default: 8080)
  -db      SQLite rate database path (default: wagerates.db)
           Use ":memory:" to run purely from the built-in snapshot

EXAMPLES:
  # Run with file database
  ./server -db="./data/rates.db"

  # Run with in-memory database
  ./server -db=":memory:"

SEE ALSO:
  - api/server.go: Router configuration
  - store/sqlite/sqlite.go: Rate persistence
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/warp/wage-engine/api"
	"github.com/warp/wage-engine/davisbacon"
	"github.com/warp/wage-engine/sca"
	"github.com/warp/wage-engine/store/sqlite"
)

func main() {
	// Flags
	port := flag.Int("port", 8080, "HTTP server port")
	dbPath := flag.String("db", "wagerates.db", "SQLite rate database path")
	flag.Parse()

	// Initialize rate store
	store, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize rate database: %v", err)
	}
	defer store.Close()

	// Load wage tables and build the immutable determinations
	ctx := context.Background()
	scaRates, err := store.SCAWageRates(ctx)
	if err != nil {
		log.Fatalf("Failed to load SCA wage rates: %v", err)
	}
	dbRates, err := store.DavisBaconWageRates(ctx)
	if err != nil {
		log.Fatalf("Failed to load Davis-Bacon wage rates: %v", err)
	}
	log.Printf("Loaded %d SCA and %d Davis-Bacon wage rates", len(scaRates), len(dbRates))

	handler := api.NewHandler(
		sca.NewDeterminationFromRates(scaRates),
		davisbacon.NewDeterminationFromRates(dbRates),
	)

	// Create router
	router := api.NewRouter(handler)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on http://localhost:%d", *port)
		log.Printf("API available at http://localhost:%d/api", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
