package commands_test

import (
	"context"
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

type MockUnassignItemRepository struct{ mock.Mock }

func (m *MockUnassignItemRepository) Add(ctx context.Context, i *item.Item) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockUnassignItemRepository) Update(ctx context.Context, i *item.Item) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockUnassignItemRepository) Get(ctx context.Context, id int64) (*item.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.Item), args.Error(1)
}

func (m *MockUnassignItemRepository) GetForUpdate(ctx context.Context, id int64) (*item.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.Item), args.Error(1)
}

func (m *MockUnassignItemRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUnassignItemUoW struct{ mock.Mock }

func (m *MockUnassignItemUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnassignItemUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnassignItemUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnassignItemUoW) ItemRepository() ports.ItemRepository {
	args := m.Called()
	return args.Get(0).(ports.ItemRepository)
}

type MockUnassignItemUoWFactory struct{ mock.Mock }

func (m *MockUnassignItemUoWFactory) Create() commands.ItemUoW {
	args := m.Called()
	return args.Get(0).(commands.ItemUoW)
}

func TestUnassignItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	agentID := kernel.NewUUID()
	cmd, err := commands.NewUnassignItemCommand(42)
	require.NoError(t, err)

	assignedItem := restoreTestItem(t, 42, item.Assigned, &agentID)

	itemRepo := new(MockUnassignItemRepository)
	uow := new(MockUnassignItemUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("GetForUpdate", ctx, int64(42)).Return(assignedItem, nil).Once(),
		itemRepo.On("Update", ctx, mock.AnythingOfType("*item.Item")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUnassignItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUnassignItemCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	updated := itemRepo.Calls[1].Arguments[1].(*item.Item)
	assert.Equal(t, item.Pending, updated.Status())
	assert.Nil(t, updated.AssignedAgent())
}

func TestUnassignItemCommandHandler_Handle_NotAssigned(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUnassignItemCommand(42)
	require.NoError(t, err)

	pendingItem := restoreTestItem(t, 42, item.Pending, nil)

	itemRepo := new(MockUnassignItemRepository)
	uow := new(MockUnassignItemUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("GetForUpdate", ctx, int64(42)).Return(pendingItem, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUnassignItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUnassignItemCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrNotAssigned)
	itemRepo.AssertNotCalled(t, "Update")
}

func TestUnassignItemCommandHandler_Handle_AlreadyPicked(t *testing.T) {
	ctx := t.Context()
	agentID := kernel.NewUUID()
	cmd, err := commands.NewUnassignItemCommand(42)
	require.NoError(t, err)

	pickedItem := restoreTestItem(t, 42, item.Picked, &agentID)

	itemRepo := new(MockUnassignItemRepository)
	uow := new(MockUnassignItemUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("GetForUpdate", ctx, int64(42)).Return(pickedItem, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUnassignItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUnassignItemCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	uow.AssertNotCalled(t, "Commit")
}
