package rpc

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully-qualified gRPC service name
const ServiceName = "catalogue.CatalogueService"

const (
	getAllItemsMethod    = "/" + ServiceName + "/GetAllItems"
	searchItemsMethod    = "/" + ServiceName + "/SearchItems"
	getItemMethod        = "/" + ServiceName + "/GetItem"
	createItemMethod     = "/" + ServiceName + "/CreateItem"
	deactivateItemMethod = "/" + ServiceName + "/DeactivateItem"
)

// CatalogueServiceServer is the server API for catalogue.CatalogueService
type CatalogueServiceServer interface {
	GetAllItems(context.Context, *Empty) (*ItemList, error)
	SearchItems(context.Context, *SearchRequest) (*ItemList, error)
	GetItem(context.Context, *ItemRequest) (*ItemResponse, error)
	CreateItem(context.Context, *CreateItemRequest) (*ItemResponse, error)
	DeactivateItem(context.Context, *ItemRequest) (*ItemResponse, error)
}

// RegisterCatalogueServiceServer attaches srv to s
func RegisterCatalogueServiceServer(s grpc.ServiceRegistrar, srv CatalogueServiceServer) {
	s.RegisterService(&CatalogueServiceDesc, srv)
}

func getAllItemsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogueServiceServer).GetAllItems(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: getAllItemsMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogueServiceServer).GetAllItems(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func searchItemsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SearchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogueServiceServer).SearchItems(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: searchItemsMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogueServiceServer).SearchItems(ctx, req.(*SearchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func getItemHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ItemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogueServiceServer).GetItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: getItemMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogueServiceServer).GetItem(ctx, req.(*ItemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func createItemHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateItemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogueServiceServer).CreateItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: createItemMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogueServiceServer).CreateItem(ctx, req.(*CreateItemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func deactivateItemHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ItemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogueServiceServer).DeactivateItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: deactivateItemMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogueServiceServer).DeactivateItem(ctx, req.(*ItemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CatalogueServiceDesc is the grpc.ServiceDesc for catalogue.CatalogueService
var CatalogueServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogueServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetAllItems", Handler: getAllItemsHandler},
		{MethodName: "SearchItems", Handler: searchItemsHandler},
		{MethodName: "GetItem", Handler: getItemHandler},
		{MethodName: "CreateItem", Handler: createItemHandler},
		{MethodName: "DeactivateItem", Handler: deactivateItemHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalogue.proto",
}
