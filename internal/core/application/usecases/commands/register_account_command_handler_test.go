package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/townkitchenn/fnp-delivery-backend/internal/core/application/usecases/commands"
	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/account"
	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/kernel"
	"github.com/townkitchenn/fnp-delivery-backend/internal/core/ports"
	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/errs"
)

type MockRegisterAccountRepository struct{ mock.Mock }

func (m *MockRegisterAccountRepository) Add(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockRegisterAccountRepository) GetByUsername(ctx context.Context, username string) (*account.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockRegisterAccountRepository) GetEligibleAgent(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

type MockRegisterAccountUoW struct{ mock.Mock }

func (m *MockRegisterAccountUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRegisterAccountUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRegisterAccountUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRegisterAccountUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

type MockRegisterAccountUoWFactory struct{ mock.Mock }

func (m *MockRegisterAccountUoWFactory) Create() commands.AccountUoW {
	args := m.Called()
	return args.Get(0).(commands.AccountUoW)
}

func TestRegisterAccountCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterAccountCommand("ravi", "secret123", "secret123", "9876543210", "agent")
	require.NoError(t, err)

	accountRepo := new(MockRegisterAccountRepository)
	uow := new(MockRegisterAccountUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Add", ctx, mock.AnythingOfType("*account.Account")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRegisterAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterAccountCommandHandler(factory)
	accountID, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NoError(t, accountID.Validate())

	added := accountRepo.Calls[0].Arguments[1].(*account.Account)
	assert.Equal(t, "ravi", added.Username())
	assert.True(t, added.IsAgent())
	// the stored credential is a bcrypt hash of the raw password
	assert.NotEqual(t, "secret123", added.PasswordHash())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(added.PasswordHash()), []byte("secret123")))
}

func TestRegisterAccountCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RegisterAccountCommand{} // not constructed properly

	factory := new(MockRegisterAccountUoWFactory)
	handler := commands.NewRegisterAccountCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRegisterAccountCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestRegisterAccountCommandHandler_Handle_DuplicateUsername(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterAccountCommand("ravi", "secret123", "secret123", "9876543210", "agent")
	require.NoError(t, err)

	accountRepo := new(MockRegisterAccountRepository)
	uow := new(MockRegisterAccountUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Add", ctx, mock.AnythingOfType("*account.Account")).
			Return(errs.NewValueIsInvalidError("username")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRegisterAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterAccountCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertNotCalled(t, "Commit")
}
