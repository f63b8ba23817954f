package grpcserver

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"novadex/pkg/grpc/pokedexpb"
)

// Register installs the pokedex service and a health service reporting it as
// serving. The returned health server lets the caller flip status on shutdown.
func Register(s grpc.ServiceRegistrar, srv *Server) *health.Server {
	pokedexpb.RegisterPokedexServiceServer(s, srv)

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(pokedexpb.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(s, hs)
	return hs
}
