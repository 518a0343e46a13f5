package queries

import (
	"context"

	"gorm.io/gorm"

	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/item"
)

// GetPendingItemsQueryHandler lists items still waiting for an agent.
type GetPendingItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingItemsQueryHandler creates a handler for pending item queries.
func NewGetPendingItemsQueryHandler(db *gorm.DB) GetPendingItemsQueryHandler {
	return GetPendingItemsQueryHandler{db: db}
}

// Handle executes the query, oldest pending items first so long waiters
// surface at the top.
func (h GetPendingItemsQueryHandler) Handle(ctx context.Context, query GetPendingItemsQuery) ([]ItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+itemSelectColumns+`
		FROM delivery_items i
		LEFT JOIN accounts a ON a.id = i.assigned_agent_id
		WHERE i.status = ?
		ORDER BY i.created_at ASC, i.id ASC
	`, item.Pending.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanItemRows(rows)
}
