package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"

	"novadex/internal/grpcserver"
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

	shutdownTracing, err := telemetry.Setup(ctx, "novadex-grpc", cfg.OtelEndpoint)
	if err != nil {
		log.Fatalf("telemetry setup failed: %v", err)
	}

	listener, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("grpc listen failed: %v", err)
	}

	store, err := cache.New(cache.Config{Capacity: cfg.CacheCapacity, TTL: cfg.CacheTTL})
	if err != nil {
		log.Fatalf("cache: %v", err)
	}
	go store.Run(ctx, cfg.CacheSweepInterval)

	client := pokeapi.NewClient(cfg.UpstreamBaseURL, cfg.UpstreamTimeout)
	svc := pokedex.NewService(store, pokeapi.NewAggregator(client, cfg.CatalogLimit))

	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	healthSrv := grpcserver.Register(grpcServer, grpcserver.NewServer(svc))

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		log.Printf("shutdown signal received: %s", sig)
		healthSrv.Shutdown()
		grpcServer.GracefulStop()
	}()

	log.Printf("gRPC server listening on %s", cfg.GRPCAddr)
	if err := grpcServer.Serve(listener); err != nil {
		log.Fatalf("grpc server stopped: %v", err)
	}

	stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Printf("telemetry shutdown error: %v", err)
	}
	log.Println("gRPC server stopped")
}
