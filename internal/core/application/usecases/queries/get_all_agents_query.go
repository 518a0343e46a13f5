package queries

import (
	"errors"
	"time"

	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/guard"
)

var ErrGetAllAgentsQueryIsNotConstructed = errors.New(
	"GetAllAgentsQuery must be created via NewGetAllAgentsQuery constructor",
)

// GetAllAgentsQuery retrieves the delivery agent roster together with each
// agent's current workload.
//
// Example:
//
//	query := NewGetAllAgentsQuery()
//	agents, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list agents: %w", err)
//	}
//	for _, agent := range agents {
//	    fmt.Printf("%s carries %d items\n", agent.Username, agent.ActiveItems)
//	}
type GetAllAgentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllAgentsQuery creates a query for the agent roster.
func NewGetAllAgentsQuery() GetAllAgentsQuery {
	return GetAllAgentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllAgentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllAgentsQueryIsNotConstructed)
}

// AgentResponse represents one roster entry. ActiveItems counts the agent's
// deliveries that have not reached a terminal status yet.
type AgentResponse struct {
	ID          string
	Username    string
	PhoneNumber string
	ActiveItems int64
	CreatedAt   time.Time
}
