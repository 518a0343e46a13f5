package queries

import (
	"errors"
	"strings"

	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/errs"
	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/guard"
)

var ErrAuthenticateQueryIsNotConstructed = errors.New(
	"AuthenticateQuery must be created via NewAuthenticateQuery constructor",
)

// AuthenticateQuery checks a username and password pair at login.
type AuthenticateQuery struct {
	username string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateQuery creates a login query. Both fields are required but
// otherwise unconstrained; credential policy applies at registration.
func NewAuthenticateQuery(username, password string) (AuthenticateQuery, error) {
	if strings.TrimSpace(username) == "" {
		return AuthenticateQuery{}, errs.NewValueIsRequiredError("username")
	}
	if password == "" {
		return AuthenticateQuery{}, errs.NewValueIsRequiredError("password")
	}
	return AuthenticateQuery{
		username: username,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateQueryIsNotConstructed)
}

// Username returns the login name.
func (q AuthenticateQuery) Username() string { return q.username }

// Password returns the raw password.
func (q AuthenticateQuery) Password() string { return q.password }

// AuthenticateQueryResponse carries the identity claims handed to the token
// issuer after a successful credential check.
type AuthenticateQueryResponse struct {
	AccountID string
	Username  string
	Role      string
}
