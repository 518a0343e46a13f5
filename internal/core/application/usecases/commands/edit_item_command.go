package commands

import (
	"errors"
	"strings"

	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/item"
	"github.com/townkitchenn/fnp-delivery-backend/internal/core/ports"
	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/errs"
	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/guard"
)

var ErrEditItemCommandIsNotConstructed = errors.New(
	"EditItemCommand must be created via NewEditItemCommand constructor",
)

// EditItemCommand represents a request to overwrite the editable fields of
// an item that has not been picked up yet. A new photo in the "image" field
// replaces the existing reference; absent, the existing photo is retained.
type EditItemCommand struct { //nolint:recvcheck //using for validation
	itemID  int64
	name    string
	address string
	details item.Details
	image   *ports.Upload

	guard guard.ConstructorGuard
}

// NewEditItemCommand creates an edit command. Name and address stay
// required, mirroring creation.
func NewEditItemCommand(itemID int64, name, address string, details item.Details, image *ports.Upload) (EditItemCommand, error) {
	cmd := EditItemCommand{
		details: details,
		image:   image,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setName(name),
		cmd.setAddress(address),
	); err != nil {
		return EditItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditItemCommand) Validate() error {
	return c.guard.Validate(ErrEditItemCommandIsNotConstructed)
}

// ItemID returns the target item identifier.
func (c EditItemCommand) ItemID() int64 { return c.itemID }

// Name returns the replacement item name.
func (c EditItemCommand) Name() string { return c.name }

// Address returns the replacement delivery address.
func (c EditItemCommand) Address() string { return c.address }

// Details returns the replacement free-form attributes.
func (c EditItemCommand) Details() item.Details { return c.details }

// Image returns the optional replacement photo, nil when absent.
func (c EditItemCommand) Image() *ports.Upload { return c.image }

func (c *EditItemCommand) setItemID(itemID int64) error {
	if itemID <= 0 {
		return errs.NewValueIsInvalidError("item ID")
	}
	c.itemID = itemID
	return nil
}

func (c *EditItemCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return item.ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *EditItemCommand) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return item.ErrAddressIsRequired
	}
	c.address = address
	return nil
}
