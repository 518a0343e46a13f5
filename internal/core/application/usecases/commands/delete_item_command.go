package commands

import (
	"errors"

	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/errs"
	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/guard"
)

var ErrDeleteItemCommandIsNotConstructed = errors.New(
	"DeleteItemCommand must be created via NewDeleteItemCommand constructor",
)

// DeleteItemCommand represents a request to remove an item from the
// dispatch board.
type DeleteItemCommand struct { //nolint:recvcheck //using for validation
	itemID int64

	guard guard.ConstructorGuard
}

// NewDeleteItemCommand creates a delete command.
func NewDeleteItemCommand(itemID int64) (DeleteItemCommand, error) {
	cmd := DeleteItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setItemID(itemID); err != nil {
		return DeleteItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteItemCommandIsNotConstructed)
}

// ItemID returns the target item identifier.
func (c DeleteItemCommand) ItemID() int64 { return c.itemID }

func (c *DeleteItemCommand) setItemID(itemID int64) error {
	if itemID <= 0 {
		return errs.NewValueIsInvalidError("item ID")
	}
	c.itemID = itemID
	return nil
}
