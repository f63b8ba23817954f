// Package grpcserver exposes the pokedex service over gRPC.
package grpcserver

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"novadex/internal/apperr"
	"novadex/internal/pokedex"
	"novadex/pkg/grpc/pokedexpb"
)

type Server struct {
	pokedexpb.UnimplementedPokedexServiceServer
	Service *pokedex.Service
}

func NewServer(svc *pokedex.Service) *Server {
	return &Server{Service: svc}
}

func (s *Server) Lookup(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request required")
	}
	res, err := s.Service.Lookup(ctx, req.GetValue())
	if err != nil {
		return nil, toStatus("lookup", err)
	}
	return toStruct(res)
}

func (s *Server) Matchups(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request required")
	}
	fields := req.GetFields()
	res, err := s.Service.Matchups(ctx, fields["name"].GetStringValue(), fields["opponent"].GetStringValue())
	if err != nil {
		return nil, toStatus("matchups", err)
	}
	return toStruct(res)
}

func (s *Server) Catalog(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	res, err := s.Service.Catalog(ctx)
	if err != nil {
		return nil, toStatus("catalog", err)
	}
	values := make([]*structpb.Value, 0, len(res.Data))
	for _, name := range res.Data {
		values = append(values, structpb.NewStringValue(name))
	}
	return &structpb.ListValue{Values: values}, nil
}

func (s *Server) Team(ctx context.Context, req *structpb.ListValue) (*structpb.Struct, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request required")
	}
	names := make([]string, 0, len(req.GetValues()))
	for _, v := range req.GetValues() {
		if _, ok := v.GetKind().(*structpb.Value_StringValue); !ok {
			return nil, status.Error(codes.InvalidArgument, "team members must be names")
		}
		names = append(names, v.GetStringValue())
	}
	res, err := s.Service.Team(ctx, names)
	if err != nil {
		return nil, toStatus("team", err)
	}
	return toStruct(res)
}

func (s *Server) CacheStats(_ context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return toStruct(s.Service.CacheStats())
}

// toStatus maps err onto a gRPC status carrying only the public message.
func toStatus(op string, err error) error {
	if apperr.KindOf(err) == apperr.KindInternal {
		log.Printf("[grpc] %s failed: %v", op, err)
	}
	return status.Error(apperr.GRPCCode(err), apperr.PublicMessage(err))
}

// toStruct converts v through its JSON form so gRPC callers see the same
// field names as HTTP callers.
func toStruct(v any) (*structpb.Struct, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, status.Error(codes.Internal, "encode failed")
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(b, out); err != nil {
		return nil, status.Error(codes.Internal, "encode failed")
	}
	return out, nil
}

// MatchupsRequest builds the Matchups payload; opponent may be empty.
func MatchupsRequest(name, opponent string) *structpb.Struct {
	fields := map[string]*structpb.Value{"name": structpb.NewStringValue(name)}
	if strings.TrimSpace(opponent) != "" {
		fields["opponent"] = structpb.NewStringValue(opponent)
	}
	return &structpb.Struct{Fields: fields}
}
