package queries

import (
	"errors"

	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/guard"
)

var ErrGetPendingItemsQueryIsNotConstructed = errors.New(
	"GetPendingItemsQuery must be created via NewGetPendingItemsQuery constructor",
)

// GetPendingItemsQuery retrieves items awaiting assignment. Dispatchers use
// this listing to hand work to free agents.
type GetPendingItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingItemsQuery creates a query for unassigned items.
func NewGetPendingItemsQuery() GetPendingItemsQuery {
	return GetPendingItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingItemsQueryIsNotConstructed)
}
