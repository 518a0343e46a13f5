package commands

import (
	"context"

	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/item"
	"github.com/townkitchenn/fnp-delivery-backend/internal/core/ports"
)

// CreateItemCommandHandler handles delivery item creation. New items start
// in Pending status with no agent; an attached photo is persisted through
// the file store before the database write.
type CreateItemCommandHandler struct {
	uowFactory ItemUoWFactory
	fileStore  ports.FileStore
}

// NewCreateItemCommandHandler creates a handler for item creation.
func NewCreateItemCommandHandler(uowFactory ItemUoWFactory, fileStore ports.FileStore) CreateItemCommandHandler {
	return CreateItemCommandHandler{
		uowFactory: uowFactory,
		fileStore:  fileStore,
	}
}

// Handle processes the creation command and returns the store-assigned
// identifier of the new item.
//
// If the photo write succeeds but the insert fails, the orphaned file is
// left behind for the sweep job rather than cleaned up inline.
func (h CreateItemCommandHandler) Handle(ctx context.Context, cmd CreateItemCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	newItem, err := item.NewItem(cmd.Name(), cmd.Address(), cmd.Details())
	if err != nil {
		return 0, err
	}

	if upload := cmd.Image(); upload != nil {
		ref, saveErr := h.fileStore.Save(ctx, *upload)
		if saveErr != nil {
			return 0, saveErr
		}
		if attachErr := newItem.AttachImage(ref); attachErr != nil {
			return 0, attachErr
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ItemRepository().Add(ctx, newItem); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return newItem.ID(), nil
}
