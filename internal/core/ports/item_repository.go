// Package ports defines the contracts between the application core and
// infrastructure: persistence for delivery items and accounts, the file
// store for uploaded photos, and the unit of work that ties repository
// operations into one transaction.
package ports

import (
	"context"

	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/item"
)

// ItemRepository defines the persistence contract for the delivery item
// aggregate.
type ItemRepository interface {
	// Add persists a new item and backfills its store-assigned identifier.
	Add(ctx context.Context, aggregate *item.Item) error

	// Update persists changes to an existing item.
	Update(ctx context.Context, aggregate *item.Item) error

	// Get retrieves an item by identifier.
	// Returns an ObjectNotFound error when no row exists.
	Get(ctx context.Context, id int64) (*item.Item, error)

	// GetForUpdate retrieves an item under a row lock (SELECT ... FOR UPDATE)
	// so a read-modify-write sequence inside the surrounding transaction
	// excludes concurrent writers of the same row. Assignment and
	// unassignment use this to keep the single-assignment invariant under
	// concurrent requests.
	GetForUpdate(ctx context.Context, id int64) (*item.Item, error)

	// Delete removes an item permanently. The aggregate-level deletion
	// precondition (status Pending or Delivered) is checked by the caller.
	Delete(ctx context.Context, id int64) error
}
