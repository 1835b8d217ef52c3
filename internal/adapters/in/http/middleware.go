package http

import (
	"errors"
	"strings"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// userIDContextKey is the echo context key holding the authenticated user id.
const userIDContextKey = "userID"

const bearerPrefix = "Bearer "

// BearerAuth builds the authorization middleware for protected routes.
// It extracts the bearer token, verifies it and confirms the subject still
// exists; the resolved user id is then stowed in the echo context. Every
// failure mode gets the same generic 401 body.
func BearerAuth(tokens ports.TokenService, users queries.GetUserQueryHandler) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, bearerPrefix) {
				return writeUnauthenticated(ctx)
			}

			userID, err := tokens.Verify(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				return writeUnauthenticated(ctx)
			}

			query, err := queries.NewGetUserQuery(userID)
			if err != nil {
				return writeUnauthenticated(ctx)
			}

			if _, err = users.Handle(ctx.Request().Context(), query); err != nil {
				// A deleted account invalidates its outstanding tokens.
				if errors.Is(err, errs.ErrObjectNotFound) {
					return writeUnauthenticated(ctx)
				}
				return writeError(ctx, err)
			}

			ctx.Set(userIDContextKey, userID)
			return next(ctx)
		}
	}
}

// userIDFromContext retrieves the authenticated user id stowed by BearerAuth.
func userIDFromContext(ctx echo.Context) (kernel.UUID, bool) {
	userID, ok := ctx.Get(userIDContextKey).(kernel.UUID)
	return userID, ok
}
