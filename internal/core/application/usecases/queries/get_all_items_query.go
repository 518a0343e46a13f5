package queries

import (
	"errors"

	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/guard"
)

var ErrGetAllItemsQueryIsNotConstructed = errors.New(
	"GetAllItemsQuery must be created via NewGetAllItemsQuery constructor",
)

// GetAllItemsQuery retrieves every delivery item on the board, newest first.
//
// Example:
//
//	query := NewGetAllItemsQuery()
//	items, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list items: %w", err)
//	}
//	fmt.Printf("%d items on the board\n", len(items))
type GetAllItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllItemsQuery creates a query for the full item listing.
func NewGetAllItemsQuery() GetAllItemsQuery {
	return GetAllItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllItemsQueryIsNotConstructed)
}
