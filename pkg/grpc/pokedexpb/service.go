// Package pokedexpb describes the novadex.v1.PokedexService gRPC service.
// Requests and responses are protobuf well-known types carrying the same
// JSON shapes the HTTP API returns, so no generated message code is needed.
package pokedexpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "novadex.v1.PokedexService"

const (
	PokedexService_Lookup_FullMethodName     = "/novadex.v1.PokedexService/Lookup"
	PokedexService_Matchups_FullMethodName   = "/novadex.v1.PokedexService/Matchups"
	PokedexService_Catalog_FullMethodName    = "/novadex.v1.PokedexService/Catalog"
	PokedexService_Team_FullMethodName       = "/novadex.v1.PokedexService/Team"
	PokedexService_CacheStats_FullMethodName = "/novadex.v1.PokedexService/CacheStats"
)

// PokedexServiceClient is the client API for PokedexService.
//
// Matchups takes a struct with a "name" and an optional "opponent" field.
// Team takes a list of name strings.
type PokedexServiceClient interface {
	Lookup(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	Matchups(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Catalog(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
	Team(ctx context.Context, in *structpb.ListValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	CacheStats(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type pokedexServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPokedexServiceClient(cc grpc.ClientConnInterface) PokedexServiceClient {
	return &pokedexServiceClient{cc}
}

func (c *pokedexServiceClient) Lookup(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, PokedexService_Lookup_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pokedexServiceClient) Matchups(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, PokedexService_Matchups_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pokedexServiceClient) Catalog(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, PokedexService_Catalog_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pokedexServiceClient) Team(ctx context.Context, in *structpb.ListValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, PokedexService_Team_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pokedexServiceClient) CacheStats(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, PokedexService_CacheStats_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// PokedexServiceServer is the server API for PokedexService. Implementations
// must embed UnimplementedPokedexServiceServer.
type PokedexServiceServer interface {
	Lookup(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	Matchups(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Catalog(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	Team(context.Context, *structpb.ListValue) (*structpb.Struct, error)
	CacheStats(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	mustEmbedUnimplementedPokedexServiceServer()
}

type UnimplementedPokedexServiceServer struct{}

func (UnimplementedPokedexServiceServer) Lookup(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Lookup not implemented")
}
func (UnimplementedPokedexServiceServer) Matchups(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Matchups not implemented")
}
func (UnimplementedPokedexServiceServer) Catalog(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Catalog not implemented")
}
func (UnimplementedPokedexServiceServer) Team(context.Context, *structpb.ListValue) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Team not implemented")
}
func (UnimplementedPokedexServiceServer) CacheStats(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method CacheStats not implemented")
}
func (UnimplementedPokedexServiceServer) mustEmbedUnimplementedPokedexServiceServer() {}

func RegisterPokedexServiceServer(s grpc.ServiceRegistrar, srv PokedexServiceServer) {
	s.RegisterService(&PokedexService_ServiceDesc, srv)
}

func _PokedexService_Lookup_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PokedexServiceServer).Lookup(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PokedexService_Lookup_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PokedexServiceServer).Lookup(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _PokedexService_Matchups_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PokedexServiceServer).Matchups(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PokedexService_Matchups_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PokedexServiceServer).Matchups(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _PokedexService_Catalog_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PokedexServiceServer).Catalog(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PokedexService_Catalog_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PokedexServiceServer).Catalog(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _PokedexService_Team_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.ListValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PokedexServiceServer).Team(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PokedexService_Team_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PokedexServiceServer).Team(ctx, req.(*structpb.ListValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _PokedexService_CacheStats_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PokedexServiceServer).CacheStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PokedexService_CacheStats_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PokedexServiceServer).CacheStats(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

var PokedexService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PokedexServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Lookup", Handler: _PokedexService_Lookup_Handler},
		{MethodName: "Matchups", Handler: _PokedexService_Matchups_Handler},
		{MethodName: "Catalog", Handler: _PokedexService_Catalog_Handler},
		{MethodName: "Team", Handler: _PokedexService_Team_Handler},
		{MethodName: "CacheStats", Handler: _PokedexService_CacheStats_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "novadex/v1/pokedex.proto",
}
