package sqlite

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"catalogue-service/internal/catalogueerrors"
	model "catalogue-service/internal/models"
	"catalogue-service/internal/repository"
)

var _ repository.CatalogueDB = (*Store)(nil)

// SQLite's lower() and LIKE only fold ASCII; title search uses Go's Unicode
// lowering on both sides so it matches the in-memory repository.
func init() {
	sqlite.MustRegisterDeterministicScalarFunction("catalogue_lower", 1, foldTitle)
}

func foldTitle(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}

// Store persists items and sellers in a SQLite database
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database file at path and migrates the schema
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// one writer at a time; also keeps every statement on the pragma'd connection
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS sellers (
  id         INTEGER PRIMARY KEY AUTOINCREMENT,
  name       TEXT NOT NULL UNIQUE,
  email      TEXT NOT NULL UNIQUE,
  created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS items (
  id             INTEGER PRIMARY KEY AUTOINCREMENT,
  title          TEXT NOT NULL,
  description    TEXT NOT NULL,
  starting_price INTEGER NOT NULL,
  current_price  INTEGER NOT NULL,
  duration_hours INTEGER NOT NULL,
  created_at     INTEGER NOT NULL,
  end_time       INTEGER,
  active         INTEGER NOT NULL DEFAULT 1,
  seller_id      INTEGER NOT NULL REFERENCES sellers(id),
  shipping_cost  INTEGER NOT NULL DEFAULT 700,
  shipping_time  INTEGER NOT NULL DEFAULT 3
);

CREATE INDEX IF NOT EXISTS idx_items_title    ON items(title);
CREATE INDEX IF NOT EXISTS idx_items_active   ON items(active, end_time);
CREATE INDEX IF NOT EXISTS idx_items_seller   ON items(seller_id);
`)
	return err
}

func (s *Store) CreateSeller(ctx context.Context, seller *model.Seller) error {
	res, err := s.db.ExecContext(ctx, `
INSERT INTO sellers(name, email, created_at)
VALUES(?, ?, ?)
`, seller.Name, seller.Email, seller.CreatedAt.UnixNano())
	if err != nil {
		if isConstraint(err, sqlite3.SQLITE_CONSTRAINT_UNIQUE, "UNIQUE constraint failed") {
			return fmt.Errorf("create seller %q: %w", seller.Name, catalogueerrors.ErrSellerExists)
		}
		return fmt.Errorf("create seller %q: %w", seller.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	seller.ID = id
	return nil
}

func (s *Store) GetSeller(ctx context.Context, sellerID int64) (model.Seller, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, name, email, created_at FROM sellers WHERE id=?`, sellerID)
	seller, err := scanSeller(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Seller{}, fmt.Errorf("get seller %d: %w", sellerID, catalogueerrors.ErrSellerNotFound)
	}
	return seller, err
}

func (s *Store) ListSellers(ctx context.Context) ([]model.Seller, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, email, created_at FROM sellers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Seller{}
	for rows.Next() {
		seller, err := scanSeller(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, seller)
	}
	return out, rows.Err()
}

func (s *Store) CreateItem(ctx context.Context, item *model.Item) error {
	res, err := s.db.ExecContext(ctx, `
INSERT INTO items(title, description, starting_price, current_price, duration_hours,
                  created_at, end_time, active, seller_id, shipping_cost, shipping_time)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, item.Title, item.Description, int64(item.StartingPrice), int64(item.CurrentPrice), item.DurationHours,
		item.CreatedAt.UnixNano(), nullableTime(item.EndTime), boolToInt(item.Active), item.SellerID,
		int64(item.ShippingCost), item.ShippingTime)
	if err != nil {
		if isConstraint(err, sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY, "FOREIGN KEY constraint failed") {
			return fmt.Errorf("create item for seller %d: %w", item.SellerID, catalogueerrors.ErrSellerNotFound)
		}
		return fmt.Errorf("create item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	item.ID = id
	return nil
}

const itemColumns = `id, title, description, starting_price, current_price, duration_hours,
       created_at, end_time, active, seller_id, shipping_cost, shipping_time`

func (s *Store) GetItem(ctx context.Context, itemID int64) (model.Item, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM items WHERE id=?`, itemID)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Item{}, fmt.Errorf("get item %d: %w", itemID, catalogueerrors.ErrItemNotFound)
	}
	return item, err
}

func (s *Store) ListItems(ctx context.Context, activeOnly bool) ([]model.Item, error) {
	return s.queryItems(ctx, `SELECT `+itemColumns+` FROM items WHERE (? = 0 OR active = 1) ORDER BY id`,
		boolToInt(activeOnly))
}

func (s *Store) SearchItems(ctx context.Context, keyword string, activeOnly bool) ([]model.Item, error) {
	return s.queryItems(ctx, `
SELECT `+itemColumns+` FROM items
WHERE (? = 0 OR active = 1) AND catalogue_lower(title) LIKE ? ESCAPE '\'
ORDER BY id`, boolToInt(activeOnly), "%"+escapeLike(strings.ToLower(keyword))+"%")
}

func (s *Store) DeactivateItem(ctx context.Context, itemID int64) (model.Item, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Item{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, `UPDATE items SET active=0 WHERE id=?`, itemID); err != nil {
		return model.Item{}, fmt.Errorf("deactivate item %d: %w", itemID, err)
	}
	item, err := scanItem(tx.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM items WHERE id=?`, itemID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Item{}, fmt.Errorf("deactivate item %d: %w", itemID, catalogueerrors.ErrItemNotFound)
	}
	if err != nil {
		return model.Item{}, err
	}
	return item, tx.Commit()
}

func (s *Store) DeactivateExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
UPDATE items SET active=0
WHERE active=1 AND end_time IS NOT NULL AND end_time < ?
`, cutoff.UnixNano())
	if err != nil {
		return 0, fmt.Errorf("deactivate expired items: %w", err)
	}
	return res.RowsAffected()
}

func (s *Store) queryItems(ctx context.Context, query string, args ...any) ([]model.Item, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSeller(row scanner) (model.Seller, error) {
	var seller model.Seller
	var cAt int64
	if err := row.Scan(&seller.ID, &seller.Name, &seller.Email, &cAt); err != nil {
		return model.Seller{}, err
	}
	seller.CreatedAt = time.Unix(0, cAt).UTC()
	return seller, nil
}

func scanItem(row scanner) (model.Item, error) {
	var it model.Item
	var startPrice, curPrice, shipCost, cAt int64
	var endAt sql.NullInt64
	var active int

	if err := row.Scan(&it.ID, &it.Title, &it.Description, &startPrice, &curPrice, &it.DurationHours,
		&cAt, &endAt, &active, &it.SellerID, &shipCost, &it.ShippingTime); err != nil {
		return model.Item{}, err
	}
	it.StartingPrice = model.Money(startPrice)
	it.CurrentPrice = model.Money(curPrice)
	it.ShippingCost = model.Money(shipCost)
	it.CreatedAt = time.Unix(0, cAt).UTC()
	if endAt.Valid {
		it.EndTime = time.Unix(0, endAt.Int64).UTC()
	}
	it.Active = active == 1
	return it, nil
}

func isConstraint(err error, code int, msg string) bool {
	var se *sqlite.Error
	if errors.As(err, &se) && se.Code() == code {
		return true
	}
	return strings.Contains(err.Error(), msg)
}

func nullableTime(t time.Time) sql.NullInt64 {
	if t.IsZero() {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.UnixNano(), Valid: true}
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
