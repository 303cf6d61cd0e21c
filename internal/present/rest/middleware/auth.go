package middleware

import (
	"context"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/niya-shroff/folio/internal/domain"
	"github.com/niya-shroff/folio/internal/present/rest/presenter"
	"github.com/niya-shroff/folio/internal/service"
)

var tracer = otel.Tracer("auth")

type AuthMiddleware struct {
	auth *service.AuthService
}

func NewAuthMiddleware(auth *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		auth: auth,
	}
}

// RequireAdmin gates the admin content-management routes. Requests without
// a valid Bearer session token are rejected with 401.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.Middleware.RequireAdmin")
		defer span.End()

		token, err := bearerToken(c)
		if err != nil {
			span.RecordError(err)
			return presenter.Unauthorized(c, "missing credentials")
		}

		username, err := m.auth.Validate(ctx, token)
		if err != nil {
			span.RecordError(errors.Wrap(err, "AuthMiddleware.RequireAdmin: token validation failed"))
			return presenter.Unauthorized(c, "session expired")
		}

		ctx = context.WithValue(ctx, domain.AdminUserCtxKey, username)
		span.SetAttributes(attribute.String("AdminUser", username))

		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("authorization")
	if authHeader == "" {
		return "", fmt.Errorf("missing authorization header")
	}

	split := strings.Split(authHeader, " ")
	if len(split) != 2 {
		return "", fmt.Errorf("invalid authentication header")
	}

	authType, token := split[0], split[1]
	if authType != "Bearer" {
		return "", fmt.Errorf("only Bearer is acceptable")
	}
	return token, nil
}
