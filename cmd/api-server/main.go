package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"novadex/internal/pokeapi"
	"novadex/internal/pokedex"
	"novadex/pkg/cache"
	"novadex/pkg/telemetry"
	"novadex/pkg/utils"
)

func main() {
	cfg, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, "novadex-api", cfg.OtelEndpoint)
	if err != nil {
		log.Fatalf("telemetry setup failed: %v", err)
	}

	store, err := cache.New(cache.Config{Capacity: cfg.CacheCapacity, TTL: cfg.CacheTTL})
	if err != nil {
		log.Fatalf("cache: %v", err)
	}
	client := pokeapi.NewClient(cfg.UpstreamBaseURL, cfg.UpstreamTimeout)
	svc := pokedex.NewService(store, pokeapi.NewAggregator(client, cfg.CatalogLimit))

	router := pokedex.NewRouter(svc)

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		store.Run(ctx, cfg.CacheSweepInterval)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Printf("HTTP API server listening on %s (upstream %s)", cfg.HTTPAddr, cfg.UpstreamBaseURL)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("shutdown signal received: %s", sig)
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	log.Println("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}
	stop()
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Printf("telemetry shutdown error: %v", err)
	}

	wg.Wait()
	log.Println("server stopped")
}
