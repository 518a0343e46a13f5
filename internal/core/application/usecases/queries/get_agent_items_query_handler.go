package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAgentItemsQueryHandler lists the items assigned to a specific agent.
type GetAgentItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetAgentItemsQueryHandler creates a handler for per-agent item queries.
func NewGetAgentItemsQueryHandler(db *gorm.DB) GetAgentItemsQueryHandler {
	return GetAgentItemsQueryHandler{db: db}
}

// Handle executes the query, active work first and delivered history after.
func (h GetAgentItemsQueryHandler) Handle(ctx context.Context, query GetAgentItemsQuery) ([]ItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+itemSelectColumns+`
		FROM delivery_items i
		LEFT JOIN accounts a ON a.id = i.assigned_agent_id
		WHERE i.assigned_agent_id = ?
		ORDER BY i.status = 'Delivered', i.created_at DESC
	`, query.AgentID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanItemRows(rows)
}
