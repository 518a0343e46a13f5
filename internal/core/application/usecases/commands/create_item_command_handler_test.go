package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/townkitchenn/fnp-delivery-backend/internal/core/application/usecases/commands"
	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/item"
	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/kernel"
	"github.com/townkitchenn/fnp-delivery-backend/internal/core/ports"
	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/errs"
)

type MockCreateItemRepository struct{ mock.Mock }

func (m *MockCreateItemRepository) Add(ctx context.Context, i *item.Item) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockCreateItemRepository) Update(ctx context.Context, i *item.Item) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockCreateItemRepository) Get(ctx context.Context, id int64) (*item.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.Item), args.Error(1)
}

func (m *MockCreateItemRepository) GetForUpdate(ctx context.Context, id int64) (*item.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.Item), args.Error(1)
}

func (m *MockCreateItemRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCreateFileStore struct{ mock.Mock }

func (m *MockCreateFileStore) Save(ctx context.Context, upload ports.Upload) (kernel.StorageRef, error) {
	args := m.Called(ctx, upload)
	return args.Get(0).(kernel.StorageRef), args.Error(1)
}

func (m *MockCreateFileStore) List(ctx context.Context) ([]kernel.StorageRef, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.StorageRef), args.Error(1)
}

func (m *MockCreateFileStore) Remove(ctx context.Context, ref kernel.StorageRef) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

type MockCreateItemUoW struct{ mock.Mock }

func (m *MockCreateItemUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCreateItemUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCreateItemUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCreateItemUoW) ItemRepository() ports.ItemRepository {
	args := m.Called()
	return args.Get(0).(ports.ItemRepository)
}

type MockCreateItemUoWFactory struct{ mock.Mock }

func (m *MockCreateItemUoWFactory) Create() commands.ItemUoW {
	args := m.Called()
	return args.Get(0).(commands.ItemUoW)
}

func TestCreateItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateItemCommand("Flowers", "12 Elm St", item.Details{}, nil)
	require.NoError(t, err)

	itemRepo := new(MockCreateItemRepository)
	fileStore := new(MockCreateFileStore)
	uow := new(MockCreateItemUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("Add", ctx, mock.AnythingOfType("*item.Item")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateItemCommandHandler(factory, fileStore)
	_, err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	itemRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	fileStore.AssertNotCalled(t, "Save")
}

func TestCreateItemCommandHandler_Handle_WithImage(t *testing.T) {
	ctx := t.Context()
	upload := &ports.Upload{
		FieldName:   "image",
		FileName:    "box.png",
		ContentType: "image/png",
		Size:        64,
		Content:     strings.NewReader("payload"),
	}
	cmd, err := commands.NewCreateItemCommand("Flowers", "12 Elm St", item.Details{}, upload)
	require.NoError(t, err)

	ref, err := kernel.NewStorageRef("image-1700000000000.png")
	require.NoError(t, err)

	itemRepo := new(MockCreateItemRepository)
	fileStore := new(MockCreateFileStore)
	uow := new(MockCreateItemUoW)

	mock.InOrder(
		fileStore.On("Save", ctx, *upload).Return(ref, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("Add", ctx, mock.AnythingOfType("*item.Item")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateItemCommandHandler(factory, fileStore)
	_, err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	addedItem := itemRepo.Calls[0].Arguments[1].(*item.Item)
	require.NotNil(t, addedItem.ImageRef())
	assert.True(t, addedItem.ImageRef().IsEqual(ref))
	assert.Equal(t, item.Pending, addedItem.Status())
}

func TestCreateItemCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateItemCommand{} // not constructed properly

	factory := new(MockCreateItemUoWFactory)
	fileStore := new(MockCreateFileStore)
	handler := commands.NewCreateItemCommandHandler(factory, fileStore)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateItemCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateItemCommandHandler_Handle_SaveImageError(t *testing.T) {
	ctx := t.Context()
	upload := &ports.Upload{
		FieldName:   "image",
		FileName:    "report.pdf",
		ContentType: "application/pdf",
		Size:        64,
		Content:     strings.NewReader("payload"),
	}
	cmd, err := commands.NewCreateItemCommand("Flowers", "12 Elm St", item.Details{}, upload)
	require.NoError(t, err)

	fileStore := new(MockCreateFileStore)
	fileStore.On("Save", ctx, *upload).
		Return(kernel.StorageRef{}, errs.NewUnsupportedMediaTypeError("application/pdf")).
		Once()

	factory := new(MockCreateItemUoWFactory)
	handler := commands.NewCreateItemCommandHandler(factory, fileStore)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUnsupportedMediaType)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateItemCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateItemCommand("Flowers", "12 Elm St", item.Details{}, nil)
	require.NoError(t, err)

	itemRepo := new(MockCreateItemRepository)
	fileStore := new(MockCreateFileStore)
	uow := new(MockCreateItemUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("Add", ctx, mock.AnythingOfType("*item.Item")).Return(errors.New("database error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateItemCommandHandler(factory, fileStore)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "database error")
}

func TestCreateItemCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateItemCommand("Flowers", "12 Elm St", item.Details{}, nil)
	require.NoError(t, err)

	itemRepo := new(MockCreateItemRepository)
	fileStore := new(MockCreateFileStore)
	uow := new(MockCreateItemUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("Add", ctx, mock.AnythingOfType("*item.Item")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateItemCommandHandler(factory, fileStore)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
}
