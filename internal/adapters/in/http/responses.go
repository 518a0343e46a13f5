package http

import (
	"strings"
	"time"

	"github.com/townkitchenn/fnp-delivery-backend/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// itemJSON is the wire shape of a delivery item. Path fields carry the
// storage-relative names; the url fields are resolved against the request
// host (or the configured public base URL) and stay null when no file was
// ever attached.
type itemJSON struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Address            string    `json:"address"`
	Description        string    `json:"description"`
	Location           string    `json:"location"`
	DeliveryTime       string    `json:"deliveryTime"`
	CustomerNumber     string    `json:"customerNumber"`
	AlternativeNumber  string    `json:"alternativeNumber"`
	Status             string    `json:"status"`
	AgentID            *string   `json:"agentId"`
	AgentName          *string   `json:"agentName"`
	ImagePath          *string   `json:"imagePath"`
	DeliveredImagePath *string   `json:"deliveredImagePath"`
	ImageURL           *string   `json:"imageUrl"`
	DeliveredImageURL  *string   `json:"deliveredImageUrl"`
	CreatedAt          time.Time `json:"createdAt"`
}

type agentJSON struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	PhoneNumber string    `json:"phoneNumber"`
	ActiveItems int64     `json:"activeItems"`
	CreatedAt   time.Time `json:"createdAt"`
}

// baseURL returns the prefix upload URLs are resolved against. The
// configured public base URL wins; otherwise it is derived from the
// request scheme and host.
func (s *Server) baseURL(ctx echo.Context) string {
	if s.deps.PublicBaseURL != "" {
		return strings.TrimRight(s.deps.PublicBaseURL, "/")
	}
	return ctx.Scheme() + "://" + ctx.Request().Host
}

// resolveUploadURL turns a storage-relative path into an absolute URL.
// A nil path stays nil so clients see an explicit null, never "".
func resolveUploadURL(base string, path *string) *string {
	if path == nil {
		return nil
	}
	resolved := base + "/uploads/" + *path
	return &resolved
}

func (s *Server) toItemJSON(ctx echo.Context, item queries.ItemResponse) itemJSON {
	base := s.baseURL(ctx)

	return itemJSON{
		ID:                 item.ID,
		Name:               item.Name,
		Address:            item.Address,
		Description:        item.Description,
		Location:           item.Location,
		DeliveryTime:       item.DeliveryTime,
		CustomerNumber:     item.CustomerNumber,
		AlternativeNumber:  item.AlternativeNumber,
		Status:             item.Status,
		AgentID:            item.AgentID,
		AgentName:          item.AgentName,
		ImagePath:          item.ImagePath,
		DeliveredImagePath: item.DeliveredImagePath,
		ImageURL:           resolveUploadURL(base, item.ImagePath),
		DeliveredImageURL:  resolveUploadURL(base, item.DeliveredImagePath),
		CreatedAt:          item.CreatedAt,
	}
}

func (s *Server) toItemJSONList(ctx echo.Context, items []queries.ItemResponse) []itemJSON {
	response := make([]itemJSON, len(items))
	for i, item := range items {
		response[i] = s.toItemJSON(ctx, item)
	}
	return response
}

func toAgentJSON(agent queries.AgentResponse) agentJSON {
	return agentJSON{
		ID:          agent.ID,
		Username:    agent.Username,
		PhoneNumber: agent.PhoneNumber,
		ActiveItems: agent.ActiveItems,
		CreatedAt:   agent.CreatedAt,
	}
}
