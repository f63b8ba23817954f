package grpcserver_test

import (
	"context"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"novadex/internal/grpcserver"
	"novadex/internal/pokeapi"
	"novadex/internal/pokedex"
	"novadex/internal/testutil"
	"novadex/pkg/cache"
	"novadex/pkg/grpc/pokedexpb"
)

func dial(t *testing.T) (pokedexpb.PokedexServiceClient, *grpc.ClientConn) {
	t.Helper()
	up := testutil.NewUpstream(t, nil)
	svc := pokedex.NewService(
		cache.MustNew(cache.DefaultConfig()),
		pokeapi.NewAggregator(pokeapi.NewClient(up.URL, time.Second), 0),
	)

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	grpcserver.Register(srv, grpcserver.NewServer(svc))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return pokedexpb.NewPokedexServiceClient(conn), conn
}

func TestLookup(t *testing.T) {
	client, _ := dial(t)
	ctx := context.Background()

	res, err := client.Lookup(ctx, wrapperspb.String("Bulbasaur"))
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if res.GetFields()["source"].GetStringValue() != "live" {
		t.Fatalf("unexpected source %v", res.GetFields()["source"])
	}
	data := res.GetFields()["data"].GetStructValue().GetFields()
	if data["name"].GetStringValue() != "bulbasaur" || data["id"].GetNumberValue() != 1 {
		t.Fatalf("unexpected data %v", data)
	}

	res, err = client.Lookup(ctx, wrapperspb.String("bulbasaur"))
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if res.GetFields()["source"].GetStringValue() != "cache" {
		t.Fatal("expected second lookup to come from cache")
	}
}

func TestErrorCodes(t *testing.T) {
	client, _ := dial(t)
	ctx := context.Background()

	cases := []struct {
		name string
		want codes.Code
	}{
		{"bad name!", codes.InvalidArgument},
		{"missingno", codes.NotFound},
		{"glitch", codes.Internal},
	}
	for _, tc := range cases {
		_, err := client.Lookup(ctx, wrapperspb.String(tc.name))
		if status.Code(err) != tc.want {
			t.Fatalf("Lookup(%q) code = %v, want %v", tc.name, status.Code(err), tc.want)
		}
	}

	_, err := client.Lookup(ctx, wrapperspb.String("glitch"))
	if msg := status.Convert(err).Message(); msg != "Unexpected error while talking to PokeAPI" {
		t.Fatalf("internal detail leaked: %q", msg)
	}
}

func TestMatchupsAndTeam(t *testing.T) {
	client, _ := dial(t)
	ctx := context.Background()

	res, err := client.Matchups(ctx, grpcserver.MatchupsRequest("pikachu", "squirtle"))
	if err != nil {
		t.Fatalf("Matchups() error = %v", err)
	}
	versus := res.GetFields()["data"].GetStructValue().GetFields()["versus"].GetStructValue().GetFields()
	if versus["verdict"].GetStringValue() != "Favorable matchup" {
		t.Fatalf("unexpected verdict %v", versus["verdict"])
	}

	list, err := structpb.NewList([]any{"pikachu", "squirtle"})
	if err != nil {
		t.Fatalf("NewList: %v", err)
	}
	team, err := client.Team(ctx, list)
	if err != nil {
		t.Fatalf("Team() error = %v", err)
	}
	if size := team.GetFields()["data"].GetStructValue().GetFields()["size"].GetNumberValue(); size != 2 {
		t.Fatalf("unexpected team size %v", size)
	}

	bad, _ := structpb.NewList([]any{"pikachu", 7})
	if _, err := client.Team(ctx, bad); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestCatalogAndCacheStats(t *testing.T) {
	client, _ := dial(t)
	ctx := context.Background()

	list, err := client.Catalog(ctx, &emptypb.Empty{})
	if err != nil {
		t.Fatalf("Catalog() error = %v", err)
	}
	if len(list.GetValues()) == 0 || list.GetValues()[0].GetStringValue() != "bulbasaur" {
		t.Fatalf("unexpected catalog %v", list.AsSlice())
	}

	stats, err := client.CacheStats(ctx, &emptypb.Empty{})
	if err != nil {
		t.Fatalf("CacheStats() error = %v", err)
	}
	if stats.GetFields()["size"].GetNumberValue() != 1 {
		t.Fatalf("expected the catalog to be cached, got %v", stats.AsMap())
	}
}

func TestHealth(t *testing.T) {
	_, conn := dial(t)

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(),
		&healthpb.HealthCheckRequest{Service: pokedexpb.ServiceName})
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		t.Fatalf("unexpected health status %v", resp.GetStatus())
	}
}
