package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glacefrais/storefront/internal/config"
	httpx "github.com/glacefrais/storefront/internal/http"
	"github.com/glacefrais/storefront/internal/observability"
	"github.com/glacefrais/storefront/internal/repo/memory"
)

func main() {
	cfg := config.Load()

	log := observability.NewLogger(cfg.Env)

	// tracing is opt-in via the exporter endpoint
	var traceShutdown func(context.Context) error

	if cfg.OTLPEndpoint != "" {
		shutdown, err := observability.InitTracer(context.Background(), httpx.ServiceName, cfg.OTLPEndpoint)

		if err != nil {
			log.Error("tracer init failed", "err", err)
			os.Exit(1)
		}

		traceShutdown = shutdown
	}

	// the catalog and principal set are fixed for the process lifetime

	catalog, err := memory.NewCatalogRepo()

	if err != nil {
		log.Error("catalog load failed", "err", err)
		os.Exit(1)
	}

	users, err := memory.NewUsersRepo(memory.DefaultSeeds(cfg.AdminPassword, cfg.UserPassword))

	if err != nil {
		log.Error("user seed failed", "err", err)
		os.Exit(1)
	}

	prom := observability.NewProm()

	router := httpx.NewRouter(log, cfg, catalog, users, prom)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.Port, "env", cfg.Env, "products", len(catalog.All()))
		err := srv.ListenAndServe()

		if err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("server shutting down")

	shutdownCh := make(chan struct{})

	go func() {
		defer close(shutdownCh)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("graceful shutdown failed", "err", err)
			return
		}

		if traceShutdown != nil {
			if err := traceShutdown(ctx); err != nil {
				log.Error("tracer shutdown failed", "err", err)
			}
		}
	}()

	select {
	case <-shutdownCh:
		log.Info("shutdown complete")

	case <-time.After(12 * time.Second):
		log.Error("shutdown timed out")
	}
}
