package stores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"traffic-analytics/internal/models"
	"traffic-analytics/internal/shared/sqlitedb"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
)

//go:generate mockgen -source=customer_store.go -destination=./mocks/customer_store_mock.go -package=mocks
type CustomerStore interface {
	// Get returns the customer with the given id, or ErrCustomerNotFound.
	Get(ctx context.Context, id int64) (*models.Customer, error)
	// InsertIgnore inserts the customer unless its id already exists.
	// It reports whether a row was actually inserted; an existing key is
	// skipped silently, not an error.
	InsertIgnore(ctx context.Context, customer *models.Customer) (bool, error)
}

type customerStore struct {
	db sqlitedb.DBTX
}

func NewCustomerStore(db sqlitedb.DBTX) CustomerStore {
	return &customerStore{db: db}
}

func (s *customerStore) Get(ctx context.Context, id int64) (*models.Customer, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, active FROM customers WHERE id = ?`, id)

	var customer models.Customer
	if err := row.Scan(&customer.ID, &customer.Name, &customer.Active); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer %d: %w", id, err)
	}
	return &customer, nil
}

func (s *customerStore) InsertIgnore(ctx context.Context, customer *models.Customer) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO customers (id, name, active) VALUES (?, ?, ?)`,
		customer.ID, customer.Name, customer.Active)
	if err != nil {
		return false, fmt.Errorf("failed to insert customer %d: %w", customer.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}
