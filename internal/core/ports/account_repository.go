package ports

import (
	"context"

	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/account"
	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for user accounts.
// The agent directory consulted during assignment is the agent-role subset.
type AccountRepository interface {
	// Add persists a new account. A duplicate username surfaces as a
	// ValueIsInvalid error.
	Add(ctx context.Context, aggregate *account.Account) error

	// GetByUsername retrieves an account by its unique login name.
	// Returns an ObjectNotFound error when no row exists.
	GetByUsername(ctx context.Context, username string) (*account.Account, error)

	// GetEligibleAgent retrieves the account with the given identifier only
	// if it holds the agent role. A missing or non-agent account yields an
	// InvalidReference error, so assignment can distinguish "agent not
	// eligible" from "item not found".
	GetEligibleAgent(ctx context.Context, id kernel.UUID) (*account.Account, error)
}
