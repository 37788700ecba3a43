// internal/repository/postgres/movement_repository.go
package postgres

import (
	"context"
	"fmt"

	"github.com/iscsys/backend-go/internal/domain"
	"github.com/iscsys/backend-go/internal/repository"
)

type movementRepository struct {
	db *DB
}

// NewMovementRepository creates the event-history fetcher. Dates are
// stored as YYYY-MM-DD text so range filters match the engine's calendar
// string comparisons exactly.
func NewMovementRepository(db *DB) repository.MovementRepository {
	return &movementRepository{db: db}
}

func (r *movementRepository) ListDeductions(ctx context.Context, start, end string) ([]domain.DeductionEvent, error) {
	query := `
		SELECT id, item_id, item_name, quantity, order_id, total_cost, date, created_at
		FROM deductions
		WHERE ($1 = '' OR date >= $1)
		  AND ($2 = '' OR date <= $2)
		ORDER BY created_at DESC
	`

	events := []domain.DeductionEvent{}
	err := r.db.withSem(ctx, func() error {
		return r.db.SelectContext(ctx, &events, query, start, end)
	})
	if err != nil {
		return nil, fmt.Errorf("error listing deductions: %w", err)
	}

	return events, nil
}

func (r *movementRepository) ListWastage(ctx context.Context, start, end string) ([]domain.WastageEvent, error) {
	query := `
		SELECT id, item_id, item_name, quantity, reason, cost_loss, date, created_at
		FROM wastage
		WHERE ($1 = '' OR date >= $1)
		  AND ($2 = '' OR date <= $2)
		ORDER BY created_at DESC
	`

	events := []domain.WastageEvent{}
	err := r.db.withSem(ctx, func() error {
		return r.db.SelectContext(ctx, &events, query, start, end)
	})
	if err != nil {
		return nil, fmt.Errorf("error listing wastage: %w", err)
	}

	return events, nil
}
