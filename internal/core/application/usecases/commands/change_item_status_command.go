package commands

import (
	"errors"

	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/item"
	"github.com/townkitchenn/fnp-delivery-backend/internal/core/ports"
	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/errs"
	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/guard"
)

var ErrChangeItemStatusCommandIsNotConstructed = errors.New(
	"ChangeItemStatusCommand must be created via NewChangeItemStatusCommand constructor",
)

// ChangeItemStatusCommand represents a request to move an item along the
// lifecycle graph, optionally carrying a proof-of-delivery photo from the
// "delivered_image" form field.
//
// The raw status string is resolved at construction time, so an
// unrecognized value fails fast with an InvalidStatus error before any
// transaction is opened.
type ChangeItemStatusCommand struct { //nolint:recvcheck //using for validation
	itemID         int64
	status         item.Status
	deliveredImage *ports.Upload

	guard guard.ConstructorGuard
}

// NewChangeItemStatusCommand creates a status change command from the raw
// status string supplied by the client. Matching is case- and
// whitespace-insensitive.
func NewChangeItemStatusCommand(itemID int64, rawStatus string, deliveredImage *ports.Upload) (ChangeItemStatusCommand, error) {
	cmd := ChangeItemStatusCommand{
		deliveredImage: deliveredImage,
		guard:          guard.NewConstructorGuard(),
	}

	if err := cmd.setItemID(itemID); err != nil {
		return ChangeItemStatusCommand{}, err
	}

	status, err := item.ParseStatus(rawStatus)
	if err != nil {
		return ChangeItemStatusCommand{}, err
	}
	cmd.status = status

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeItemStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeItemStatusCommandIsNotConstructed)
}

// ItemID returns the target item identifier.
func (c ChangeItemStatusCommand) ItemID() int64 { return c.itemID }

// Status returns the resolved destination status.
func (c ChangeItemStatusCommand) Status() item.Status { return c.status }

// DeliveredImage returns the optional proof-of-delivery photo, nil when absent.
func (c ChangeItemStatusCommand) DeliveredImage() *ports.Upload { return c.deliveredImage }

func (c *ChangeItemStatusCommand) setItemID(itemID int64) error {
	if itemID <= 0 {
		return errs.NewValueIsInvalidError("item ID")
	}
	c.itemID = itemID
	return nil
}
