// Package token issues and verifies the HS256 JWTs used for API access.
package token

import (
	"errors"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is how long issued tokens stay valid.
const DefaultTTL = 24 * time.Hour

var (
	ErrSecretIsEmpty = errors.New("jwt secret is empty")
	ErrTokenInvalid  = errors.New("token is invalid")
)

// Principal represents the authenticated caller carried in a token.
type Principal struct {
	AccountID string
	Username  string
	Role      string
}

type claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies tokens with a shared HMAC secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer creates a token issuer. The secret must be non-empty.
func NewIssuer(secret string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, ErrSecretIsEmpty
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue signs a token for the given principal. The account ID travels in
// the subject claim.
func (i *Issuer) Issue(p Principal) (string, error) {
	now := i.now().UTC()
	c := claims{
		Username: p.Username,
		Role:     strings.ToLower(p.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.AccountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(i.secret)
}

// Verify parses a token string and returns its principal. Expired tokens,
// bad signatures and foreign signing methods all come back as
// ErrTokenInvalid.
func (i *Issuer) Verify(tokenStr string) (*Principal, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &claims{}, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, ErrTokenInvalid
		}
		return i.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrTokenInvalid
	}

	c, ok := tok.Claims.(*claims)
	if !ok || c.Subject == "" || c.Username == "" || c.Role == "" {
		return nil, ErrTokenInvalid
	}

	return &Principal{
		AccountID: c.Subject,
		Username:  c.Username,
		Role:      c.Role,
	}, nil
}
