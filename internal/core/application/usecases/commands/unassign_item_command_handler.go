package commands

import (
	"context"
)

// UnassignItemCommandHandler releases an item from its agent under the same
// row lock as assignment, so assign/unassign races resolve to a consistent
// state.
type UnassignItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewUnassignItemCommandHandler creates a handler for unassign operations.
func NewUnassignItemCommandHandler(uowFactory ItemUoWFactory) UnassignItemCommandHandler {
	return UnassignItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the unassign command.
//
// Failure modes: ObjectNotFound for a missing item, NotAssigned when no
// agent is attached, InvalidTransition once the item has been picked up.
func (h UnassignItemCommandHandler) Handle(ctx context.Context, cmd UnassignItemCommand) error {
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

	if err = target.Unassign(); err != nil {
		return err
	}

	if err = itemRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
