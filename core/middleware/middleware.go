package middleware

import (
	"context"
	"strings"

	"room-booking-api/core/constants"
	"room-booking-api/core/controller"
	"room-booking-api/core/errors"
	"room-booking-api/core/utils"

	"github.com/labstack/echo/v4"
)

// TokenValidator is implemented by the auth service. Kept as a local
// interface so core does not import module packages.
type TokenValidator interface {
	ValidateAccessToken(ctx context.Context, token string) (*utils.TokenClaims, *errors.AppError)
}

type Middleware struct {
	validator TokenValidator
}

func NewMiddleware(validator TokenValidator) *Middleware {
	return &Middleware{validator: validator}
}

// AuthMiddleware validates the bearer token and stores the claims under
// constants.ContextTokenData.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return controller.NewErrorResponse(401, errors.ErrMissingAuthorizationHeader, "Missing Authorization header")
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return controller.NewErrorResponse(401, errors.ErrInvalidTokenFormat, "Authorization header must be a Bearer token")
			}

			claims, appErr := m.validator.ValidateAccessToken(c.Request().Context(), token)
			if appErr != nil {
				return controller.NewErrorResponse(401, appErr.Code, appErr.Message)
			}

			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}

// ManagerMiddleware rejects callers without the manager capability.
// Must run after AuthMiddleware.
func (m *Middleware) ManagerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(constants.ContextTokenData).(*utils.TokenClaims)
			if !ok {
				return controller.NewErrorResponse(401, errors.ErrUnauthorized, "User not authenticated")
			}
			if !claims.IsManager {
				return controller.NewErrorResponse(403, errors.ErrForbidden, "Manager capability required")
			}
			return next(c)
		}
	}
}
