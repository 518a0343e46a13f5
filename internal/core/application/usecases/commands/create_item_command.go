package commands

import (
	"errors"
	"strings"

	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/item"
	"github.com/townkitchenn/fnp-delivery-backend/internal/core/ports"
	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/guard"
)

var ErrCreateItemCommandIsNotConstructed = errors.New(
	"CreateItemCommand must be created via NewCreateItemCommand constructor",
)

// CreateItemCommand represents a request to register a new delivery item,
// optionally carrying a contents photo from the "image" form field.
//
// Example:
//
//	cmd, err := NewCreateItemCommand("Flowers", "12 Elm St", item.Details{}, nil)
//	if err != nil {
//	    return err
//	}
//	id, err := handler.Handle(ctx, cmd)
type CreateItemCommand struct { //nolint:recvcheck //using for validation
	name    string
	address string
	details item.Details
	image   *ports.Upload

	guard guard.ConstructorGuard
}

// NewCreateItemCommand creates a command to register a delivery item.
// Name and address are required; details and image are optional.
func NewCreateItemCommand(name, address string, details item.Details, image *ports.Upload) (CreateItemCommand, error) {
	cmd := CreateItemCommand{
		details: details,
		image:   image,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setAddress(address),
	); err != nil {
		return CreateItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateItemCommandIsNotConstructed)
}

// Name returns the item name.
func (c CreateItemCommand) Name() string { return c.name }

// Address returns the delivery address.
func (c CreateItemCommand) Address() string { return c.address }

// Details returns the optional free-form attributes.
func (c CreateItemCommand) Details() item.Details { return c.details }

// Image returns the optional contents photo, nil when absent.
func (c CreateItemCommand) Image() *ports.Upload { return c.image }

func (c *CreateItemCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return item.ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateItemCommand) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return item.ErrAddressIsRequired
	}
	c.address = address
	return nil
}
