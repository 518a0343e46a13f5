package account_test

import (
	"testing"
	"time"

	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/account"
	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/kernel"
	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func TestNewAccount(t *testing.T) {
	t.Run("creates agent account", func(t *testing.T) {
		id := kernel.NewUUID()

		a, err := account.NewAccount(id, "driver1", testHash, "9876543210", account.RoleAgent)

		require.NoError(t, err)
		assert.True(t, a.ID().IsEqual(id))
		assert.Equal(t, "driver1", a.Username())
		assert.True(t, a.IsAgent())
		assert.False(t, a.IsAdmin())
		require.NoError(t, a.Validate())
	})

	t.Run("requires username", func(t *testing.T) {
		_, err := account.NewAccount(kernel.NewUUID(), "  ", testHash, "9876543210", account.RoleAdmin)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires password hash", func(t *testing.T) {
		_, err := account.NewAccount(kernel.NewUUID(), "admin", "", "9876543210", account.RoleAdmin)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects short phone number", func(t *testing.T) {
		_, err := account.NewAccount(kernel.NewUUID(), "admin", testHash, "12345", account.RoleAdmin)

		require.ErrorIs(t, err, account.ErrPhoneNumberIsInvalid)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := account.NewAccount(kernel.NewUUID(), "admin", testHash, "9876543210", account.RoleUnknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreAccount(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	a, err := account.RestoreAccount(kernel.NewUUID(), "admin", testHash, "9876543210", account.RoleAdmin, createdAt)

	require.NoError(t, err)
	assert.Equal(t, createdAt, a.CreatedAt())
}

func TestAccount_Validate(t *testing.T) {
	var zero account.Account

	require.ErrorIs(t, zero.Validate(), account.ErrAccountIsNotConstructed)

	var nilAccount *account.Account
	require.ErrorIs(t, nilAccount.Validate(), account.ErrAccountIsNotConstructed)
}

func TestParseRole(t *testing.T) {
	testCases := map[string]account.Role{
		"admin":  account.RoleAdmin,
		"Agent":  account.RoleAgent,
		" AGENT": account.RoleAgent,
	}

	for raw, expected := range testCases {
		role, err := account.ParseRole(raw)

		require.NoError(t, err, "input %q", raw)
		assert.Equal(t, expected, role, "input %q", raw)
	}

	_, err := account.ParseRole("superuser")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "admin", account.RoleAdmin.String())
	assert.Equal(t, "agent", account.RoleAgent.String())
	assert.Equal(t, "unknown", account.RoleUnknown.String())
	assert.Equal(t, "unknown", account.Role(99).String())
}
