// Package commands contains the write operations of the delivery backend.
// Every item mutation (create, assign, change status, unassign, edit,
// delete) flows through a handler here, so the lifecycle invariants are
// enforced in one place rather than re-derived per endpoint. Handlers follow
// a consistent shape: validate the command, open a unit of work, mutate the
// aggregate, commit.
package commands

import (
	"context"

	"github.com/townkitchenn/fnp-delivery-backend/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Handlers depend on the narrowest interface that covers the
// repositories they touch.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ItemRepoFactory provides access to the item repository within a transaction.
	ItemRepoFactory interface {
		ItemRepository() ports.ItemRepository
	}

	// AccountRepoFactory provides access to the account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// ItemUoW manages transactions for item-only operations.
	ItemUoW interface {
		TxManager
		ItemRepoFactory
	}

	// ItemUoWFactory creates item unit of work instances.
	ItemUoWFactory interface {
		Create() ItemUoW
	}

	// AccountUoW manages transactions for account-only operations.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	// AccountUoWFactory creates account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// UoW manages transactions spanning items and accounts, used by
	// assignment which must check agent eligibility and lock the item row
	// in the same transaction.
	UoW interface {
		TxManager
		ItemRepoFactory
		AccountRepoFactory
	}

	// UoWFactory creates cross-aggregate unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)
