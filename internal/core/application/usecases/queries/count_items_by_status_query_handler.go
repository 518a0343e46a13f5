package queries

import (
	"context"

	"gorm.io/gorm"

	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/item"
)

// CountItemsByStatusQueryHandler aggregates item counts per lifecycle
// status.
type CountItemsByStatusQueryHandler struct {
	db *gorm.DB
}

// NewCountItemsByStatusQueryHandler creates a handler for status count
// queries.
func NewCountItemsByStatusQueryHandler(db *gorm.DB) CountItemsByStatusQueryHandler {
	return CountItemsByStatusQueryHandler{db: db}
}

// Handle executes the aggregation. The result maps every known status to
// its count, including zeroes for statuses absent from the table.
func (h CountItemsByStatusQueryHandler) Handle(
	ctx context.Context,
	query CountItemsByStatusQuery,
) (map[string]int64, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(item.AllStatuses()))
	for _, status := range item.AllStatuses() {
		counts[status.String()] = 0
	}

	sql := `
		SELECT status, COUNT(*)
		FROM delivery_items
		GROUP BY status
	`
	args := []any{}
	if agentID := query.AgentID(); agentID != nil {
		sql = `
			SELECT status, COUNT(*)
			FROM delivery_items
			WHERE assigned_agent_id = ?
			GROUP BY status
		`
		args = append(args, agentID.String())
	}

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int64
		if err = rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
