package queries

import (
	"errors"

	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/kernel"
	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/guard"
)

var ErrCountItemsByStatusQueryIsNotConstructed = errors.New(
	"CountItemsByStatusQuery must be created via NewCountItemsByStatusQuery constructor",
)

// CountItemsByStatusQuery retrieves per-status item totals, optionally
// restricted to a single agent. Statuses with no items are reported as
// zero so dashboard tiles never go missing.
type CountItemsByStatusQuery struct {
	agentID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCountItemsByStatusQuery creates a counts query over the whole board.
func NewCountItemsByStatusQuery() CountItemsByStatusQuery {
	return CountItemsByStatusQuery{guard: guard.NewConstructorGuard()}
}

// NewCountItemsByStatusQueryForAgent creates a counts query restricted to
// one agent's items.
func NewCountItemsByStatusQueryForAgent(agentID kernel.UUID) (CountItemsByStatusQuery, error) {
	if err := agentID.Validate(); err != nil {
		return CountItemsByStatusQuery{}, err
	}
	return CountItemsByStatusQuery{agentID: &agentID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through a constructor.
func (q CountItemsByStatusQuery) Validate() error {
	return q.guard.Validate(ErrCountItemsByStatusQueryIsNotConstructed)
}

// AgentID returns the optional agent filter, nil when counting the board.
func (q CountItemsByStatusQuery) AgentID() *kernel.UUID { return q.agentID }
