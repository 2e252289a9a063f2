package rpc

import (
	"context"

	"google.golang.org/grpc"
)

// CatalogueServiceClient is the client API for catalogue.CatalogueService
type CatalogueServiceClient interface {
	GetAllItems(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ItemList, error)
	SearchItems(ctx context.Context, in *SearchRequest, opts ...grpc.CallOption) (*ItemList, error)
	GetItem(ctx context.Context, in *ItemRequest, opts ...grpc.CallOption) (*ItemResponse, error)
	CreateItem(ctx context.Context, in *CreateItemRequest, opts ...grpc.CallOption) (*ItemResponse, error)
	DeactivateItem(ctx context.Context, in *ItemRequest, opts ...grpc.CallOption) (*ItemResponse, error)
}

type catalogueServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCatalogueServiceClient returns a client whose calls always use the json codec
func NewCatalogueServiceClient(cc grpc.ClientConnInterface) CatalogueServiceClient {
	return &catalogueServiceClient{cc: cc}
}

func (c *catalogueServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *catalogueServiceClient) GetAllItems(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ItemList, error) {
	out := new(ItemList)
	if err := c.invoke(ctx, getAllItemsMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogueServiceClient) SearchItems(ctx context.Context, in *SearchRequest, opts ...grpc.CallOption) (*ItemList, error) {
	out := new(ItemList)
	if err := c.invoke(ctx, searchItemsMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogueServiceClient) GetItem(ctx context.Context, in *ItemRequest, opts ...grpc.CallOption) (*ItemResponse, error) {
	out := new(ItemResponse)
	if err := c.invoke(ctx, getItemMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogueServiceClient) CreateItem(ctx context.Context, in *CreateItemRequest, opts ...grpc.CallOption) (*ItemResponse, error) {
	out := new(ItemResponse)
	if err := c.invoke(ctx, createItemMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogueServiceClient) DeactivateItem(ctx context.Context, in *ItemRequest, opts ...grpc.CallOption) (*ItemResponse, error) {
	out := new(ItemResponse)
	if err := c.invoke(ctx, deactivateItemMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
