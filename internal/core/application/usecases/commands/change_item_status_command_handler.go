package commands

import (
	"context"

	"github.com/townkitchenn/fnp-delivery-backend/internal/core/ports"
)

// ChangeItemStatusCommandHandler applies lifecycle transitions. The
// transition is validated against the graph before the photo is written, so
// an invalid edge never leaves a file behind. A supplied delivered image is
// recorded whatever the destination status is; agents may photograph a
// handover at any step.
type ChangeItemStatusCommandHandler struct {
	uowFactory ItemUoWFactory
	fileStore  ports.FileStore
}

// NewChangeItemStatusCommandHandler creates a handler for status updates.
func NewChangeItemStatusCommandHandler(uowFactory ItemUoWFactory, fileStore ports.FileStore) ChangeItemStatusCommandHandler {
	return ChangeItemStatusCommandHandler{
		uowFactory: uowFactory,
		fileStore:  fileStore,
	}
}

// Handle processes the status change command.
//
// Failure modes: ObjectNotFound for a missing item, InvalidTransition
// (naming both endpoints) for an edge outside the graph, plus the
// attachment rejections when a delivered image is supplied.
func (h ChangeItemStatusCommandHandler) Handle(ctx context.Context, cmd ChangeItemStatusCommand) error {
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

	if err = target.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if upload := cmd.DeliveredImage(); upload != nil {
		ref, saveErr := h.fileStore.Save(ctx, *upload)
		if saveErr != nil {
			return saveErr
		}
		if attachErr := target.AttachDeliveredImage(ref); attachErr != nil {
			return attachErr
		}
	}

	if err = itemRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
