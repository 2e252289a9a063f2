package gormstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	gomysql "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"catalogue-service/internal/catalogueerrors"
	model "catalogue-service/internal/models"
	"catalogue-service/internal/repository"
)

var _ repository.CatalogueDB = (*Store)(nil)

// sellerRecord is the sellers table row
type sellerRecord struct {
	ID        int64        `gorm:"primaryKey;autoIncrement"`
	Name      string       `gorm:"size:128;not null;uniqueIndex"`
	Email     string       `gorm:"size:255;not null;uniqueIndex"`
	CreatedAt time.Time    `gorm:"precision:6"`
	Items     []itemRecord `gorm:"foreignKey:SellerID"`
}

func (sellerRecord) TableName() string { return "sellers" }

// itemRecord is the items table row. Prices are minor units.
type itemRecord struct {
	ID            int64      `gorm:"primaryKey;autoIncrement"`
	Title         string     `gorm:"size:255;not null;index"`
	Description   string     `gorm:"type:text;not null"`
	StartingPrice int64      `gorm:"not null"`
	CurrentPrice  int64      `gorm:"not null"`
	DurationHours int        `gorm:"not null"`
	CreatedAt     time.Time  `gorm:"precision:6"`
	EndTime       *time.Time `gorm:"precision:6;index:idx_items_active_end,priority:2"`
	Active        bool       `gorm:"not null;index:idx_items_active_end,priority:1"`
	SellerID      int64      `gorm:"not null;index"`
	ShippingCost  int64      `gorm:"not null"`
	ShippingTime  int        `gorm:"not null"`
}

func (itemRecord) TableName() string { return "items" }

// Store persists items and sellers through GORM
type Store struct {
	db *gorm.DB
}

// Open connects to MySQL with dsn and migrates the schema
func Open(dsn string) (*Store, error) {
	dsn, err := normalizeDSN(dsn)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return New(db)
}

// normalizeDSN forces DATETIME columns to scan into time.Time in UTC
func normalizeDSN(dsn string) (string, error) {
	cfg, err := gomysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("parse mysql dsn: %w", err)
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	return cfg.FormatDSN(), nil
}

// New wraps an open GORM handle and migrates the schema
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&sellerRecord{}, &itemRecord{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) CreateSeller(ctx context.Context, seller *model.Seller) error {
	rec := sellerRecord{Name: seller.Name, Email: seller.Email, CreatedAt: seller.CreatedAt}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("create seller %q: %w", seller.Name, catalogueerrors.ErrSellerExists)
		}
		return fmt.Errorf("create seller %q: %w", seller.Name, err)
	}
	seller.ID = rec.ID
	return nil
}

func (s *Store) GetSeller(ctx context.Context, sellerID int64) (model.Seller, error) {
	var rec sellerRecord
	if err := s.db.WithContext(ctx).First(&rec, sellerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Seller{}, fmt.Errorf("get seller %d: %w", sellerID, catalogueerrors.ErrSellerNotFound)
		}
		return model.Seller{}, err
	}
	return rec.toModel(), nil
}

func (s *Store) ListSellers(ctx context.Context) ([]model.Seller, error) {
	var recs []sellerRecord
	if err := s.db.WithContext(ctx).Order("id").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]model.Seller, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toModel())
	}
	return out, nil
}

func (s *Store) CreateItem(ctx context.Context, item *model.Item) error {
	rec := fromItem(*item)
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return fmt.Errorf("create item for seller %d: %w", item.SellerID, catalogueerrors.ErrSellerNotFound)
		}
		return fmt.Errorf("create item: %w", err)
	}
	item.ID = rec.ID
	return nil
}

func (s *Store) GetItem(ctx context.Context, itemID int64) (model.Item, error) {
	return s.getItem(s.db.WithContext(ctx), itemID)
}

func (s *Store) ListItems(ctx context.Context, activeOnly bool) ([]model.Item, error) {
	query := s.db.WithContext(ctx)
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	return findItems(query)
}

func (s *Store) SearchItems(ctx context.Context, keyword string, activeOnly bool) ([]model.Item, error) {
	query := s.db.WithContext(ctx).Where("LOWER(title) LIKE ?", "%"+escapeLike(strings.ToLower(keyword))+"%")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	return findItems(query)
}

func (s *Store) DeactivateItem(ctx context.Context, itemID int64) (model.Item, error) {
	var item model.Item
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&itemRecord{}).Where("id = ?", itemID).Update("active", false).Error; err != nil {
			return err
		}
		var err error
		item, err = s.getItem(tx, itemID)
		return err
	})
	if err != nil {
		return model.Item{}, fmt.Errorf("deactivate item %d: %w", itemID, err)
	}
	return item, nil
}

func (s *Store) DeactivateExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	res := s.db.WithContext(ctx).Model(&itemRecord{}).
		Where("active = ? AND end_time IS NOT NULL AND end_time < ?", true, cutoff).
		Update("active", false)
	if res.Error != nil {
		return 0, fmt.Errorf("deactivate expired items: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (s *Store) getItem(db *gorm.DB, itemID int64) (model.Item, error) {
	var rec itemRecord
	if err := db.First(&rec, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Item{}, fmt.Errorf("get item %d: %w", itemID, catalogueerrors.ErrItemNotFound)
		}
		return model.Item{}, err
	}
	return rec.toModel(), nil
}

func findItems(query *gorm.DB) ([]model.Item, error) {
	var recs []itemRecord
	if err := query.Order("id").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]model.Item, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toModel())
	}
	return out, nil
}

func (r sellerRecord) toModel() model.Seller {
	return model.Seller{ID: r.ID, Name: r.Name, Email: r.Email, CreatedAt: r.CreatedAt.UTC()}
}

func fromItem(it model.Item) itemRecord {
	rec := itemRecord{
		ID:            it.ID,
		Title:         it.Title,
		Description:   it.Description,
		StartingPrice: int64(it.StartingPrice),
		CurrentPrice:  int64(it.CurrentPrice),
		DurationHours: it.DurationHours,
		CreatedAt:     it.CreatedAt,
		Active:        it.Active,
		SellerID:      it.SellerID,
		ShippingCost:  int64(it.ShippingCost),
		ShippingTime:  it.ShippingTime,
	}
	if !it.EndTime.IsZero() {
		end := it.EndTime
		rec.EndTime = &end
	}
	return rec
}

func (r itemRecord) toModel() model.Item {
	it := model.Item{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		StartingPrice: model.Money(r.StartingPrice),
		CurrentPrice:  model.Money(r.CurrentPrice),
		DurationHours: r.DurationHours,
		CreatedAt:     r.CreatedAt.UTC(),
		Active:        r.Active,
		SellerID:      r.SellerID,
		ShippingCost:  model.Money(r.ShippingCost),
		ShippingTime:  r.ShippingTime,
	}
	if r.EndTime != nil {
		it.EndTime = r.EndTime.UTC()
	}
	return it
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
