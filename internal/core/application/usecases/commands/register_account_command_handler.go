package commands

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/account"
	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/kernel"
)

// RegisterAccountCommandHandler creates accounts. Passwords are hashed with
// bcrypt before anything touches the store; the duplicate-username check is
// delegated to the repository's unique constraint.
type RegisterAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewRegisterAccountCommandHandler creates a handler for registrations.
func NewRegisterAccountCommandHandler(uowFactory AccountUoWFactory) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command and returns the new account ID.
//
// Failure modes: ValueIsInvalid when the username is already taken.
func (h RegisterAccountCommandHandler) Handle(ctx context.Context, cmd RegisterAccountCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return kernel.UUID{}, err
	}

	newAccount, err := account.NewAccount(kernel.NewUUID(), cmd.Username(), string(hash), cmd.PhoneNumber(), cmd.Role())
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AccountRepository().Add(ctx, newAccount); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return newAccount.ID(), nil
}
