package commands

import (
	"errors"

	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/errs"
	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/guard"
)

var ErrUnassignItemCommandIsNotConstructed = errors.New(
	"UnassignItemCommand must be created via NewUnassignItemCommand constructor",
)

// UnassignItemCommand represents a request to release an item back to the
// pending pool. Only items still in Assigned status can be released; once
// picked up the delivery stays with its agent.
type UnassignItemCommand struct { //nolint:recvcheck //using for validation
	itemID int64

	guard guard.ConstructorGuard
}

// NewUnassignItemCommand creates a command to unassign an item.
func NewUnassignItemCommand(itemID int64) (UnassignItemCommand, error) {
	cmd := UnassignItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setItemID(itemID); err != nil {
		return UnassignItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UnassignItemCommand) Validate() error {
	return c.guard.Validate(ErrUnassignItemCommandIsNotConstructed)
}

// ItemID returns the target item identifier.
func (c UnassignItemCommand) ItemID() int64 { return c.itemID }

func (c *UnassignItemCommand) setItemID(itemID int64) error {
	if itemID <= 0 {
		return errs.NewValueIsInvalidError("item ID")
	}
	c.itemID = itemID
	return nil
}
