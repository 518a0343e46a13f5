package queries

import (
	"context"

	"gorm.io/gorm"

	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/account"
	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/item"
)

// GetAllAgentsQueryHandler reads the agent roster with a per-agent count of
// in-flight deliveries.
type GetAllAgentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllAgentsQueryHandler creates a handler for roster queries.
func NewGetAllAgentsQueryHandler(db *gorm.DB) GetAllAgentsQueryHandler {
	return GetAllAgentsQueryHandler{db: db}
}

// Handle executes the roster query sorted by username.
func (h GetAllAgentsQueryHandler) Handle(ctx context.Context, query GetAllAgentsQuery) ([]AgentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	agents := make([]AgentResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.username,
			a.phone_number,
			COUNT(i.id) FILTER (WHERE i.status NOT IN (?, ?)) AS active_items,
			a.created_at
		FROM accounts a
		LEFT JOIN delivery_items i ON i.assigned_agent_id = a.id
		WHERE a.role = ?
		GROUP BY a.id, a.username, a.phone_number, a.created_at
		ORDER BY a.username
	`, item.Delivered.String(), item.Cancelled.String(), account.RoleAgent.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var agent AgentResponse
		if err = rows.Scan(
			&agent.ID,
			&agent.Username,
			&agent.PhoneNumber,
			&agent.ActiveItems,
			&agent.CreatedAt,
		); err != nil {
			return nil, err
		}
		agents = append(agents, agent)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return agents, nil
}
