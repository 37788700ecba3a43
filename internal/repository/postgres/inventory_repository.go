// internal/repository/postgres/inventory_repository.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iscsys/backend-go/internal/domain"
	"github.com/iscsys/backend-go/internal/repository"
)

var ErrNotFound = errors.New("not found")

type inventoryRepository struct {
	db *DB
}

// NewInventoryRepository creates the snapshot fetcher backing the engine.
func NewInventoryRepository(db *DB) repository.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) List(ctx context.Context) ([]domain.InventoryItem, error) {
	query := `
		SELECT id, name, unit, quantity, min_stock, cost_per_unit, category, created_at, updated_at
		FROM inventory_items
		ORDER BY name
	`

	items := []domain.InventoryItem{}
	err := r.db.withSem(ctx, func() error {
		return r.db.SelectContext(ctx, &items, query)
	})
	if err != nil {
		return nil, fmt.Errorf("error listing inventory items: %w", err)
	}

	return items, nil
}

func (r *inventoryRepository) Get(ctx context.Context, id string) (*domain.InventoryItem, error) {
	query := `
		SELECT id, name, unit, quantity, min_stock, cost_per_unit, category, created_at, updated_at
		FROM inventory_items
		WHERE id = $1
	`

	var item domain.InventoryItem
	err := r.db.withSem(ctx, func() error {
		return r.db.GetContext(ctx, &item, query, id)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("inventory item %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("error getting inventory item: %w", err)
	}

	return &item, nil
}
