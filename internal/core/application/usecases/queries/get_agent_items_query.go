package queries

import (
	"errors"

	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/kernel"
	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/guard"
)

var ErrGetAgentItemsQueryIsNotConstructed = errors.New(
	"GetAgentItemsQuery must be created via NewGetAgentItemsQuery constructor",
)

// GetAgentItemsQuery retrieves the items currently carried by one agent.
// This backs the agent's own worklist in the mobile client.
type GetAgentItemsQuery struct {
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAgentItemsQuery creates a query for a single agent's items.
func NewGetAgentItemsQuery(agentID kernel.UUID) (GetAgentItemsQuery, error) {
	if err := agentID.Validate(); err != nil {
		return GetAgentItemsQuery{}, err
	}
	return GetAgentItemsQuery{agentID: agentID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAgentItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentItemsQueryIsNotConstructed)
}

// AgentID returns the agent identifier.
func (q GetAgentItemsQuery) AgentID() kernel.UUID { return q.agentID }
