package repository

import (
	"catalogue-service/internal/catalogueerrors"
	model "catalogue-service/internal/models"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// CatalogueDB defines the item and seller storage interface for the catalogue
type CatalogueDB interface {
	CreateSeller(ctx context.Context, seller *model.Seller) error
	GetSeller(ctx context.Context, sellerID int64) (model.Seller, error)
	ListSellers(ctx context.Context) ([]model.Seller, error)

	CreateItem(ctx context.Context, item *model.Item) error
	GetItem(ctx context.Context, itemID int64) (model.Item, error)
	ListItems(ctx context.Context, activeOnly bool) ([]model.Item, error)
	SearchItems(ctx context.Context, keyword string, activeOnly bool) ([]model.Item, error)
	DeactivateItem(ctx context.Context, itemID int64) (model.Item, error)
	DeactivateExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of CatalogueDB
type MemoryRepo struct {
	mu           sync.RWMutex
	items        map[int64]model.Item   // key: itemID -> value: item
	itemOrder    []int64                // itemIDs in insertion order
	sellers      map[int64]model.Seller // key: sellerID -> value: seller
	sellerOrder  []int64
	sellerNames  map[string]int64
	sellerEmails map[string]int64
	nextItemID   int64
	nextSellerID int64
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		items:        make(map[int64]model.Item),
		sellers:      make(map[int64]model.Seller),
		sellerNames:  make(map[string]int64),
		sellerEmails: make(map[string]int64),
	}
}

// CreateSeller stores a seller and assigns its ID. Name and email are unique.
func (r *MemoryRepo) CreateSeller(_ context.Context, seller *model.Seller) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.sellerNames[seller.Name]; taken {
		return fmt.Errorf("create seller %q: name: %w", seller.Name, catalogueerrors.ErrSellerExists)
	}
	if _, taken := r.sellerEmails[seller.Email]; taken {
		return fmt.Errorf("create seller %q: email: %w", seller.Email, catalogueerrors.ErrSellerExists)
	}

	r.nextSellerID++
	seller.ID = r.nextSellerID
	r.sellers[seller.ID] = *seller
	r.sellerOrder = append(r.sellerOrder, seller.ID)
	r.sellerNames[seller.Name] = seller.ID
	r.sellerEmails[seller.Email] = seller.ID
	return nil
}

// GetSeller returns a seller by ID
func (r *MemoryRepo) GetSeller(_ context.Context, sellerID int64) (model.Seller, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seller, ok := r.sellers[sellerID]
	if !ok {
		return model.Seller{}, fmt.Errorf("get seller %d: %w", sellerID, catalogueerrors.ErrSellerNotFound)
	}
	return seller, nil
}

// ListSellers returns all sellers in creation order
func (r *MemoryRepo) ListSellers(_ context.Context) ([]model.Seller, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sellers := make([]model.Seller, 0, len(r.sellerOrder))
	for _, id := range r.sellerOrder {
		sellers = append(sellers, r.sellers[id])
	}
	return sellers, nil
}

// CreateItem stores an item and assigns its ID. The seller must exist.
func (r *MemoryRepo) CreateItem(_ context.Context, item *model.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sellers[item.SellerID]; !ok {
		return fmt.Errorf("create item for seller %d: %w", item.SellerID, catalogueerrors.ErrSellerNotFound)
	}

	r.nextItemID++
	item.ID = r.nextItemID
	r.items[item.ID] = *item
	r.itemOrder = append(r.itemOrder, item.ID)
	return nil
}

// GetItem returns an item by ID
func (r *MemoryRepo) GetItem(_ context.Context, itemID int64) (model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[itemID]
	if !ok {
		return model.Item{}, fmt.Errorf("get item %d: %w", itemID, catalogueerrors.ErrItemNotFound)
	}
	return item, nil
}

// ListItems returns items in insertion order, optionally only those stored as active
func (r *MemoryRepo) ListItems(_ context.Context, activeOnly bool) ([]model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(item model.Item) bool {
		return !activeOnly || item.Active
	}), nil
}

// SearchItems returns items whose title contains keyword, ignoring case
func (r *MemoryRepo) SearchItems(_ context.Context, keyword string, activeOnly bool) ([]model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(keyword)
	return r.collect(func(item model.Item) bool {
		if activeOnly && !item.Active {
			return false
		}
		return strings.Contains(strings.ToLower(item.Title), needle)
	}), nil
}

// DeactivateItem marks an item inactive. Deactivating an inactive item is a no-op.
func (r *MemoryRepo) DeactivateItem(_ context.Context, itemID int64) (model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok {
		return model.Item{}, fmt.Errorf("deactivate item %d: %w", itemID, catalogueerrors.ErrItemNotFound)
	}
	item.Active = false
	r.items[itemID] = item
	return item, nil
}

// DeactivateExpired marks inactive every active item whose end time is before cutoff
func (r *MemoryRepo) DeactivateExpired(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for id, item := range r.items {
		if item.Active && !item.EndTime.IsZero() && item.EndTime.Before(cutoff) {
			item.Active = false
			r.items[id] = item
			n++
		}
	}
	return n, nil
}

// collect must be called with r.mu held
func (r *MemoryRepo) collect(keep func(model.Item) bool) []model.Item {
	items := make([]model.Item, 0, len(r.itemOrder))
	for _, id := range r.itemOrder {
		if item := r.items[id]; keep(item) {
			items = append(items, item)
		}
	}
	return items
}
