package queries

import (
	"errors"

	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/errs"
	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/guard"
)

var ErrGetItemQueryIsNotConstructed = errors.New(
	"GetItemQuery must be created via NewGetItemQuery constructor",
)

// GetItemQuery retrieves a single delivery item by its identifier.
//
// Example:
//
//	query, err := NewGetItemQuery(42)
//	if err != nil {
//	    return err
//	}
//	item, err := handler.Handle(ctx, query)
type GetItemQuery struct {
	itemID int64

	guard guard.ConstructorGuard
}

// NewGetItemQuery creates a query for one delivery item.
func NewGetItemQuery(itemID int64) (GetItemQuery, error) {
	if itemID <= 0 {
		return GetItemQuery{}, errs.NewValueIsInvalidError("item ID")
	}
	return GetItemQuery{itemID: itemID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetItemQuery) Validate() error {
	return q.guard.Validate(ErrGetItemQueryIsNotConstructed)
}

// ItemID returns the requested item identifier.
func (q GetItemQuery) ItemID() int64 { return q.itemID }
