package account

import (
	"errors"
	"strings"
	"time"

	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/kernel"
	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/errs"
	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/guard"
)

// minPhoneNumberLength matches the registration rule: anything shorter is
// rejected as not a dialable number.
const minPhoneNumberLength = 10

// Role distinguishes administrators from delivery agents.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleAdmin can create, assign, edit and delete delivery items.
	RoleAdmin

	// RoleAgent carries deliveries and is eligible for item assignment.
	RoleAgent
)

// getRoleStrings returns the persisted string form for every Role.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "unknown",
		RoleAdmin:   "admin",
		RoleAgent:   "agent",
	}
}

// ParseRole resolves a persisted role string to its enum member.
func ParseRole(raw string) (Role, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	for role, canonical := range getRoleStrings() {
		if role == RoleUnknown {
			continue
		}
		if normalized == canonical {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidError("role " + raw)
}

// String returns the persisted name of the role.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// Validate rejects RoleUnknown and out-of-range values.
func (r Role) Validate() error {
	if r != RoleAdmin && r != RoleAgent {
		return errs.NewValueIsInvalidError("role")
	}
	return nil
}

// Domain errors for account construction.
var (
	// ErrUsernameIsRequired is returned when creating an account without a username.
	ErrUsernameIsRequired = errs.NewValueIsRequiredError("username")
	// ErrPasswordHashIsRequired is returned when creating an account without a credential hash.
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("password hash")
	// ErrPhoneNumberIsInvalid is returned for phone numbers shorter than ten characters.
	ErrPhoneNumberIsInvalid = errs.NewValueIsInvalidError("phone number must be at least 10 characters")
	// ErrAccountIsNotConstructed is returned when using an improperly initialized Account.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount or RestoreAccount")
)

// Account represents a backend user: an administrator or a delivery agent.
// Credentials are stored as a bcrypt hash, never in plain text.
type Account struct {
	id           kernel.UUID
	username     string
	passwordHash string
	phoneNumber  string
	role         Role
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewAccount creates an account with a fresh identifier.
// The passwordHash must already be a bcrypt hash of the credential;
// hashing is the caller's concern so the domain never sees plain text.
func NewAccount(id kernel.UUID, username, passwordHash, phoneNumber string, role Role) (*Account, error) {
	a := &Account{
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setUsername(username),
		a.setPasswordHash(passwordHash),
		a.setPhoneNumber(phoneNumber),
		a.setRole(role),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAccount reconstructs an account from persisted state.
func RestoreAccount(id kernel.UUID, username, passwordHash, phoneNumber string, role Role, createdAt time.Time) (*Account, error) {
	a, err := NewAccount(id, username, passwordHash, phoneNumber, role)
	if err != nil {
		return nil, err
	}
	a.createdAt = createdAt
	return a, nil
}

// Validate ensures the Account was built through a constructor.
func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

// ID returns the account identifier.
func (a *Account) ID() kernel.UUID { return a.id }

// Username returns the unique login name.
func (a *Account) Username() string { return a.username }

// PasswordHash returns the stored bcrypt hash.
func (a *Account) PasswordHash() string { return a.passwordHash }

// PhoneNumber returns the contact number.
func (a *Account) PhoneNumber() string { return a.phoneNumber }

// Role returns the account role.
func (a *Account) Role() Role { return a.role }

// CreatedAt returns the registration timestamp.
func (a *Account) CreatedAt() time.Time { return a.createdAt }

// IsAgent reports whether the account is eligible for item assignment.
func (a *Account) IsAgent() bool { return a.role == RoleAgent }

// IsAdmin reports whether the account holds administrator privileges.
func (a *Account) IsAdmin() bool { return a.role == RoleAdmin }

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return ErrUsernameIsRequired
	}
	a.username = username
	return nil
}

func (a *Account) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return ErrPasswordHashIsRequired
	}
	a.passwordHash = passwordHash
	return nil
}

func (a *Account) setPhoneNumber(phoneNumber string) error {
	if len(phoneNumber) < minPhoneNumberLength {
		return ErrPhoneNumberIsInvalid
	}
	a.phoneNumber = phoneNumber
	return nil
}

func (a *Account) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
