package queries

import (
	"context"

	"gorm.io/gorm"

	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/errs"
)

// GetItemQueryHandler reads a single item joined with its agent's username.
type GetItemQueryHandler struct {
	db *gorm.DB
}

// NewGetItemQueryHandler creates a handler for single-item lookups.
func NewGetItemQueryHandler(db *gorm.DB) GetItemQueryHandler {
	return GetItemQueryHandler{db: db}
}

// Handle executes the lookup. Returns an ObjectNotFound error when no row
// matches the requested identifier.
func (h GetItemQueryHandler) Handle(ctx context.Context, query GetItemQuery) (ItemResponse, error) {
	if err := query.Validate(); err != nil {
		return ItemResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+itemSelectColumns+`
		FROM delivery_items i
		LEFT JOIN accounts a ON a.id = i.assigned_agent_id
		WHERE i.id = ?
	`, query.ItemID()).Rows()
	if err != nil {
		return ItemResponse{}, err
	}
	defer rows.Close()

	items, err := scanItemRows(rows)
	if err != nil {
		return ItemResponse{}, err
	}
	if len(items) == 0 {
		return ItemResponse{}, errs.NewObjectNotFoundError("delivery item", query.ItemID())
	}

	return items[0], nil
}
