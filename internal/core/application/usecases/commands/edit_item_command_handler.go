package commands

import (
	"context"

	"github.com/townkitchenn/fnp-delivery-backend/internal/core/ports"
)

// EditItemCommandHandler rewrites the editable fields of an item. Edits are
// only honored while the item is Pending or Assigned; once movement starts
// the record is frozen.
type EditItemCommandHandler struct {
	uowFactory ItemUoWFactory
	fileStore  ports.FileStore
}

// NewEditItemCommandHandler creates a handler for edit operations.
func NewEditItemCommandHandler(uowFactory ItemUoWFactory, fileStore ports.FileStore) EditItemCommandHandler {
	return EditItemCommandHandler{
		uowFactory: uowFactory,
		fileStore:  fileStore,
	}
}

// Handle processes the edit command.
//
// Failure modes: ObjectNotFound for a missing item, InvalidOperation once
// the item is past Assigned, plus the attachment rejections when a
// replacement photo is supplied.
func (h EditItemCommandHandler) Handle(ctx context.Context, cmd EditItemCommand) error {
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

	if err = target.ApplyEdit(cmd.Name(), cmd.Address(), cmd.Details()); err != nil {
		return err
	}

	if upload := cmd.Image(); upload != nil {
		ref, saveErr := h.fileStore.Save(ctx, *upload)
		if saveErr != nil {
			return saveErr
		}
		if attachErr := target.AttachImage(ref); attachErr != nil {
			return attachErr
		}
	}

	if err = itemRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
