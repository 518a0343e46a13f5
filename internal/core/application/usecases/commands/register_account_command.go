package commands

import (
	"errors"
	"strings"

	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/account"
	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/errs"
	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/guard"
)

var ErrRegisterAccountCommandIsNotConstructed = errors.New(
	"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
)

const minPasswordLength = 6

// RegisterAccountCommand represents a request to create a login for a
// dispatcher or a delivery agent. The raw password travels only as far as
// the handler, which stores a bcrypt hash.
type RegisterAccountCommand struct { //nolint:recvcheck //using for validation
	username    string
	password    string
	phoneNumber string
	role        account.Role

	guard guard.ConstructorGuard
}

// NewRegisterAccountCommand creates a registration command. The role is
// parsed from its string form, and password and confirmation must match.
func NewRegisterAccountCommand(username, password, confirmPassword, phoneNumber, rawRole string) (RegisterAccountCommand, error) {
	cmd := RegisterAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUsername(username),
		cmd.setPassword(password, confirmPassword),
		cmd.setPhoneNumber(phoneNumber),
		cmd.setRole(rawRole),
	); err != nil {
		return RegisterAccountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

// Username returns the login name.
func (c RegisterAccountCommand) Username() string { return c.username }

// Password returns the raw password.
func (c RegisterAccountCommand) Password() string { return c.password }

// PhoneNumber returns the contact number.
func (c RegisterAccountCommand) PhoneNumber() string { return c.phoneNumber }

// Role returns the parsed account role.
func (c RegisterAccountCommand) Role() account.Role { return c.role }

func (c *RegisterAccountCommand) setUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return account.ErrUsernameIsRequired
	}
	c.username = username
	return nil
}

func (c *RegisterAccountCommand) setPassword(password, confirmPassword string) error {
	if len(password) < minPasswordLength {
		return errs.NewValueIsInvalidError("password")
	}
	if password != confirmPassword {
		return errs.NewValueIsInvalidError("confirm password")
	}
	c.password = password
	return nil
}

func (c *RegisterAccountCommand) setPhoneNumber(phoneNumber string) error {
	if strings.TrimSpace(phoneNumber) == "" {
		return errs.NewValueIsRequiredError("phone number")
	}
	c.phoneNumber = phoneNumber
	return nil
}

func (c *RegisterAccountCommand) setRole(rawRole string) error {
	role, err := account.ParseRole(rawRole)
	if err != nil {
		return err
	}
	c.role = role
	return nil
}
