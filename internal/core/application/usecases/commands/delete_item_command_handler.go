package commands

import (
	"context"
)

// DeleteItemCommandHandler removes an item. Deletion is restricted to the
// Pending and Delivered states so an in-flight item never vanishes from
// under its agent.
type DeleteItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewDeleteItemCommandHandler creates a handler for delete operations.
func NewDeleteItemCommandHandler(uowFactory ItemUoWFactory) DeleteItemCommandHandler {
	return DeleteItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete command.
//
// Failure modes: ObjectNotFound for a missing item, InvalidOperation
// (naming the current status) when the item is neither Pending nor
// Delivered.
func (h DeleteItemCommandHandler) Handle(ctx context.Context, cmd DeleteItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	itemRepo := uow.ItemRepository()

	target, err := itemRepo.GetForUpdate(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if err = target.EnsureDeletable(); err != nil {
		return err
	}

	if err = itemRepo.Delete(ctx, target.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
