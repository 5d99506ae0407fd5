/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the expense engine server. Handles configuration,
  store selection, dependency wiring, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load configuration (environment, optional .env file)
  2. Open the selected store backend (json | sqlite | memory)
  3. Open the repository over the store
  4. Configure the HTTP router
  5. Start the server with graceful shutdown

CONFIGURATION:
  PORT             HTTP server port (default: 8080)
  DATA_BACKEND     json | sqlite | memory (default: json)
  DATA_FILE        JSON backend file path (default: ./data/expenses.json)
  SQLITE_DB_PATH   SQLite backend path (default: ./data/expenses.db)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM: stop accepting connections, wait for active requests
  (30s timeout), close the store, exit.

SEE ALSO:
  - config/config.go: Environment loading
  - api/server.go: Router configuration
*/
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/warp/expense-engine/api"
	"github.com/warp/expense-engine/config"
	"github.com/warp/expense-engine/expense"
	memstore "github.com/warp/expense-engine/expense/store"
	"github.com/warp/expense-engine/store/jsonfile"
	"github.com/warp/expense-engine/store/sqlite"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(log)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		log.Error("failed to open store", "backend", cfg.DataBackend, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	repo := expense.Open(context.Background(), store,
		expense.WithLogger(log.With("component", "repository")))
	log.Info("repository loaded", "backend", cfg.DataBackend, "expenses", repo.Len())

	router := api.NewRouter(api.NewHandler(repo))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server starting", "addr", fmt.Sprintf("http://localhost:%s/api", cfg.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

func openStore(cfg *config.Config) (expense.Store, func(), error) {
	switch cfg.DataBackend {
	case config.BackendSQLite:
		s, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { s.Close() }, nil
	case config.BackendMemory:
		return memstore.NewMemory(), func() {}, nil
	default:
		return jsonfile.New(cfg.DataFile), func() {}, nil
	}
}
