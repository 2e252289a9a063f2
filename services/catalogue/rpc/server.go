package rpc

import (
	"context"
	"fmt"

	"catalogue-service/internal/catalogueerrors"
	"catalogue-service/internal/models"
	"catalogue-service/utils"

	"google.golang.org/grpc"
)

// CatalogueService is the part of the shared service layer the gRPC front end uses
type CatalogueService interface {
	ListItems(ctx context.Context, scope models.Scope) ([]models.ItemView, error)
	SearchItems(ctx context.Context, keyword string, scope models.Scope) ([]models.ItemView, error)
	GetItem(ctx context.Context, itemID int64) (models.ItemView, error)
	CreateItem(ctx context.Context, in models.NewItem) (models.ItemView, error)
	DeactivateItem(ctx context.Context, itemID int64) (models.ItemView, error)
}

// Server adapts CatalogueService to catalogue.CatalogueService.
// Listings use ScopeAll, so inactive items are returned with active=false.
type Server struct {
	service CatalogueService
}

var _ CatalogueServiceServer = (*Server)(nil)

func NewServer(service CatalogueService) *Server {
	return &Server{service: service}
}

// NewGRPCServer builds a grpc.Server with recovery and logging interceptors and the catalogue service registered
func NewGRPCServer(service CatalogueService, opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(LoggingInterceptor, RecoveryInterceptor),
	}, opts...)
	s := grpc.NewServer(opts...)
	RegisterCatalogueServiceServer(s, NewServer(service))
	return s
}

func (s *Server) GetAllItems(ctx context.Context, _ *Empty) (*ItemList, error) {
	items, err := s.service.ListItems(ctx, models.ScopeAll)
	if err != nil {
		return nil, statusFromError(err)
	}
	return toItemList(items), nil
}

func (s *Server) SearchItems(ctx context.Context, in *SearchRequest) (*ItemList, error) {
	items, err := s.service.SearchItems(ctx, in.Keyword, models.ScopeAll)
	if err != nil {
		return nil, statusFromError(err)
	}
	return toItemList(items), nil
}

func (s *Server) GetItem(ctx context.Context, in *ItemRequest) (*ItemResponse, error) {
	item, err := s.service.GetItem(ctx, in.ID)
	if err != nil {
		return nil, statusFromError(err)
	}
	return toItemResponse(item), nil
}

func (s *Server) CreateItem(ctx context.Context, in *CreateItemRequest) (*ItemResponse, error) {
	price, err := models.ParseWholeUnits(in.StartingPrice)
	if err != nil {
		return nil, statusFromError(fmt.Errorf("%w: starting price: %w", catalogueerrors.ErrInvalidItem, err))
	}
	item, err := s.service.CreateItem(ctx, models.NewItem{
		Title:         in.Title,
		Description:   in.Description,
		StartingPrice: price,
		DurationHours: clampHours(in.DurationHours),
		SellerID:      in.SellerID,
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return toItemResponse(item), nil
}

func (s *Server) DeactivateItem(ctx context.Context, in *ItemRequest) (*ItemResponse, error) {
	item, err := s.service.DeactivateItem(ctx, in.ID)
	if err != nil {
		return nil, statusFromError(err)
	}
	return toItemResponse(item), nil
}

// clampHours keeps out-of-range durations out of int overflow; the service rejects them
func clampHours(h int64) int {
	const limit = 1 << 30
	switch {
	case h > limit:
		return limit
	case h < -limit:
		return -limit
	}
	return int(h)
}

func toItemList(items []models.ItemView) *ItemList {
	out := &ItemList{Items: make([]*ItemResponse, 0, len(items))}
	for _, item := range items {
		out.Items = append(out.Items, toItemResponse(item))
	}
	return out
}

func toItemResponse(v models.ItemView) *ItemResponse {
	return &ItemResponse{
		ID:                   v.ID,
		Title:                v.Title,
		Description:          v.Description,
		StartingPrice:        v.StartingPrice.WholeUnits(),
		CurrentPrice:         v.CurrentPrice.WholeUnits(),
		Active:               v.Active,
		DurationHours:        int64(v.DurationHours),
		CreatedAt:            utils.FormatTime(v.CreatedAt),
		EndTime:              utils.FormatTime(v.EndTime),
		SellerID:             v.SellerID,
		ShippingCost:         v.ShippingCost.WholeUnits(),
		ShippingTime:         int64(v.ShippingTime),
		RemainingTimeSeconds: v.RemainingSeconds,
	}
}
