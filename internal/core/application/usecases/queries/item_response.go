// Package queries contains the read side of the delivery backend. Handlers
// run raw SQL over the GORM connection and return flat read models, skipping
// aggregate reconstruction entirely.
package queries

import (
	"database/sql"
	"time"
)

// ItemResponse is the read model shared by the item listing queries. Agent
// fields are populated from the accounts table when the item is assigned.
// Image fields hold storage-relative paths; resolving them into absolute
// URLs is the transport layer's job.
type ItemResponse struct {
	ID                 int64
	Name               string
	Address            string
	Description        string
	Location           string
	DeliveryTime       string
	CustomerNumber     string
	AlternativeNumber  string
	Status             string
	AgentID            *string
	AgentName          *string
	ImagePath          *string
	DeliveredImagePath *string
	CreatedAt          time.Time
}

const itemSelectColumns = `
	i.id,
	i.name,
	i.address,
	i.description,
	i.location,
	i.delivery_time,
	i.customer_number,
	i.alternative_number,
	i.status,
	i.assigned_agent_id,
	a.username,
	i.image_ref,
	i.delivered_image_ref,
	i.created_at
`

// scanItemRows drains a result set produced with itemSelectColumns.
func scanItemRows(rows *sql.Rows) ([]ItemResponse, error) {
	items := make([]ItemResponse, 0)

	for rows.Next() {
		var resp ItemResponse
		var agentID, agentName, imagePath, deliveredImagePath sql.NullString

		err := rows.Scan(
			&resp.ID,
			&resp.Name,
			&resp.Address,
			&resp.Description,
			&resp.Location,
			&resp.DeliveryTime,
			&resp.CustomerNumber,
			&resp.AlternativeNumber,
			&resp.Status,
			&agentID,
			&agentName,
			&imagePath,
			&deliveredImagePath,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if agentID.Valid {
			resp.AgentID = &agentID.String
		}
		if agentName.Valid {
			resp.AgentName = &agentName.String
		}
		if imagePath.Valid {
			resp.ImagePath = &imagePath.String
		}
		if deliveredImagePath.Valid {
			resp.DeliveredImagePath = &deliveredImagePath.String
		}

		items = append(items, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
