package http

import (
	"net/http"
	"strings"

	"github.com/townkitchenn/fnp-delivery-backend/internal/core/domain/model/account"
	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/token"

	"github.com/labstack/echo/v4"
)

const principalContextKey = "principal"

// authenticated verifies the Bearer token and stores the principal on the
// request context for downstream role checks.
func (s *Server) authenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		tokenStr, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenStr == "" {
			return ctx.JSON(http.StatusUnauthorized, errorBody{
				Code:    http.StatusUnauthorized,
				Message: "missing bearer token",
			})
		}

		principal, err := s.deps.Tokens.Verify(tokenStr)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, errorBody{
				Code:    http.StatusUnauthorized,
				Message: "invalid or expired token",
			})
		}

		ctx.Set(principalContextKey, principal)
		return next(ctx)
	}
}

// requireRole rejects requests whose principal holds none of the given
// roles. Must run after authenticated.
func (s *Server) requireRole(roles ...account.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			principal := principalFrom(ctx)
			if principal == nil {
				return ctx.JSON(http.StatusUnauthorized, errorBody{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			for _, role := range roles {
				if principal.Role == role.String() {
					return next(ctx)
				}
			}

			return ctx.JSON(http.StatusForbidden, errorBody{
				Code:    http.StatusForbidden,
				Message: "insufficient role",
			})
		}
	}
}

// principalFrom returns the authenticated principal, or nil when the
// request skipped the auth middleware.
func principalFrom(ctx echo.Context) *token.Principal {
	principal, ok := ctx.Get(principalContextKey).(*token.Principal)
	if !ok {
		return nil
	}
	return principal
}
