// internal/repository/repository.go
package repository

import (
	"context"

	"github.com/iscsys/backend-go/internal/domain"
)

// InventoryRepository fetches the current stock snapshot. The engine
// treats what it returns as immutable for the duration of a computation.
type InventoryRepository interface {
	List(ctx context.Context) ([]domain.InventoryItem, error)
	Get(ctx context.Context, id string) (*domain.InventoryItem, error)
}

// MovementRepository fetches immutable event history. Empty date bounds
// are open; bounds are inclusive calendar dates (YYYY-MM-DD).
type MovementRepository interface {
	ListDeductions(ctx context.Context, start, end string) ([]domain.DeductionEvent, error)
	ListWastage(ctx context.Context, start, end string) ([]domain.WastageEvent, error)
}
