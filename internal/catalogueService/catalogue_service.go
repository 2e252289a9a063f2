package catalogue

import (
	"catalogue-service/internal/catalogueerrors"
	"catalogue-service/internal/models"
	"catalogue-service/internal/repository"
	"context"
	"fmt"
	"strings"
	"time"
)

// MaxDurationHours bounds an auction's length (ten years)
const MaxDurationHours = 24 * 365 * 10

// CatalogueService holds the item and seller rules shared by every front end
type CatalogueService struct {
	repo repository.CatalogueDB
	now  func() time.Time
}

// Option configures a CatalogueService
type Option func(*CatalogueService)

// WithClock replaces the wall clock, for simulated-time tests
func WithClock(now func() time.Time) Option {
	return func(s *CatalogueService) {
		s.now = now
	}
}

// NewCatalogueService creates a new CatalogueService instance
func NewCatalogueService(repo repository.CatalogueDB, opts ...Option) *CatalogueService {
	s := &CatalogueService{
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now returns the service clock's current time in UTC
func (s *CatalogueService) Now() time.Time {
	return s.now().UTC()
}

// ListItems returns items in insertion order as observed now.
// With ScopeActive, items that have ended are left out before the sweeper persists the change.
func (s *CatalogueService) ListItems(ctx context.Context, scope models.Scope) ([]models.ItemView, error) {
	items, err := s.repo.ListItems(ctx, scope == models.ScopeActive)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list items: %w", err)
	}
	return s.project(items, scope), nil
}

// SearchItems returns items whose title contains keyword, ignoring case. No match is not an error.
func (s *CatalogueService) SearchItems(ctx context.Context, keyword string, scope models.Scope) ([]models.ItemView, error) {
	items, err := s.repo.SearchItems(ctx, keyword, scope == models.ScopeActive)
	if err != nil {
		return nil, fmt.Errorf("service: failed to search items for %q: %w", keyword, err)
	}
	return s.project(items, scope), nil
}

// GetItem returns a single item by ID
func (s *CatalogueService) GetItem(ctx context.Context, itemID int64) (models.ItemView, error) {
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return models.ItemView{}, fmt.Errorf("service: failed to get item %d: %w", itemID, err)
	}
	return models.NewItemView(item, s.Now()), nil
}

// CreateItem validates and stores a new listing that ends DurationHours after now
func (s *CatalogueService) CreateItem(ctx context.Context, in models.NewItem) (models.ItemView, error) {
	if err := validateItem(in); err != nil {
		return models.ItemView{}, err
	}

	if _, err := s.repo.GetSeller(ctx, in.SellerID); err != nil {
		return models.ItemView{}, fmt.Errorf("service: failed to check seller %d: %w", in.SellerID, err)
	}

	now := s.Now()
	item := models.Item{
		Title:         in.Title,
		Description:   in.Description,
		StartingPrice: in.StartingPrice,
		CurrentPrice:  in.StartingPrice,
		DurationHours: in.DurationHours,
		CreatedAt:     now,
		EndTime:       now.Add(time.Duration(in.DurationHours) * time.Hour),
		Active:        true,
		SellerID:      in.SellerID,
		ShippingCost:  models.DefaultShippingCost,
		ShippingTime:  models.DefaultShippingTime,
	}

	if err := s.repo.CreateItem(ctx, &item); err != nil {
		return models.ItemView{}, fmt.Errorf("service: failed to create item %q: %w", in.Title, err)
	}

	return models.NewItemView(item, now), nil
}

// validateItem checks required fields and positivity
func validateItem(in models.NewItem) error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("service: %w - title is required", catalogueerrors.ErrInvalidItem)
	}
	if strings.TrimSpace(in.Description) == "" {
		return fmt.Errorf("service: %w - description is required", catalogueerrors.ErrInvalidItem)
	}
	if in.StartingPrice <= 0 {
		return fmt.Errorf("service: %w - starting price must be greater than 0", catalogueerrors.ErrInvalidItem)
	}
	if in.DurationHours <= 0 || in.DurationHours > MaxDurationHours {
		return fmt.Errorf("service: %w - duration hours must be between 1 and %d", catalogueerrors.ErrInvalidItem, MaxDurationHours)
	}
	if in.SellerID <= 0 {
		return fmt.Errorf("service: %w - seller id is required", catalogueerrors.ErrInvalidItem)
	}
	return nil
}

// DeactivateItem closes an item explicitly. Closing a closed item succeeds.
func (s *CatalogueService) DeactivateItem(ctx context.Context, itemID int64) (models.ItemView, error) {
	item, err := s.repo.DeactivateItem(ctx, itemID)
	if err != nil {
		return models.ItemView{}, fmt.Errorf("service: failed to deactivate item %d: %w", itemID, err)
	}
	return models.NewItemView(item, s.Now()), nil
}

// CreateSeller registers a seller. Name and email uniqueness is left to the store.
func (s *CatalogueService) CreateSeller(ctx context.Context, name, email string) (models.Seller, error) {
	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	if name == "" || email == "" {
		return models.Seller{}, fmt.Errorf("service: %w - missing name or email", catalogueerrors.ErrInvalidSeller)
	}
	if !strings.Contains(email, "@") {
		return models.Seller{}, fmt.Errorf("service: %w - malformed email %q", catalogueerrors.ErrInvalidSeller, email)
	}

	seller := models.Seller{Name: name, Email: email, CreatedAt: s.Now()}
	if err := s.repo.CreateSeller(ctx, &seller); err != nil {
		return models.Seller{}, fmt.Errorf("service: failed to create seller %q: %w", name, err)
	}
	return seller, nil
}

// ListSellers returns all sellers
func (s *CatalogueService) ListSellers(ctx context.Context) ([]models.Seller, error) {
	sellers, err := s.repo.ListSellers(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list sellers: %w", err)
	}
	return sellers, nil
}

func (s *CatalogueService) project(items []models.Item, scope models.Scope) []models.ItemView {
	now := s.Now()
	views := make([]models.ItemView, 0, len(items))
	for _, item := range items {
		v := models.NewItemView(item, now)
		if scope == models.ScopeActive && !v.Active {
			continue
		}
		views = append(views, v)
	}
	return views
}
