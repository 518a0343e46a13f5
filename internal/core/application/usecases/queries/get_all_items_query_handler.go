package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllItemsQueryHandler lists every item with its agent's username, the
// dashboard's main feed.
type GetAllItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllItemsQueryHandler creates a handler for the full item listing.
func NewGetAllItemsQueryHandler(db *gorm.DB) GetAllItemsQueryHandler {
	return GetAllItemsQueryHandler{db: db}
}

// Handle executes the listing, newest items first.
func (h GetAllItemsQueryHandler) Handle(ctx context.Context, query GetAllItemsQuery) ([]ItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + itemSelectColumns + `
		FROM delivery_items i
		LEFT JOIN accounts a ON a.id = i.assigned_agent_id
		ORDER BY i.created_at DESC, i.id DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanItemRows(rows)
}
