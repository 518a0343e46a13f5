package queries

import (
	"context"
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/errs"
)

// AuthenticateQueryHandler verifies login credentials against the stored
// bcrypt hash. An unknown username and a wrong password produce the same
// error, so responses do not leak which accounts exist.
type AuthenticateQueryHandler struct {
	db *gorm.DB
}

// NewAuthenticateQueryHandler creates a handler for login checks.
func NewAuthenticateQueryHandler(db *gorm.DB) AuthenticateQueryHandler {
	return AuthenticateQueryHandler{db: db}
}

// Handle executes the credential check and returns the account's identity
// claims on success.
func (h AuthenticateQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateQuery,
) (AuthenticateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateQueryResponse{}, err
	}

	var resp AuthenticateQueryResponse
	var passwordHash string

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, username, password_hash, role
		FROM accounts
		WHERE username = ?
	`, query.Username()).Row()

	err := row.Scan(&resp.AccountID, &resp.Username, &passwordHash, &resp.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return AuthenticateQueryResponse{}, errs.NewValueIsInvalidError("credentials")
	}
	if err != nil {
		return AuthenticateQueryResponse{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(query.Password())) != nil {
		return AuthenticateQueryResponse{}, errs.NewValueIsInvalidError("credentials")
	}

	return resp, nil
}
