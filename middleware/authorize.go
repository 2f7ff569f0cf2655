package middleware

import (
	"errors"
	"net/http"
	"strings"

	"board-gateway/internal/domain"
	"board-gateway/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates requests according to each route's declared
// operation class.
type AuthMiddleware struct {
	authorize *usecase.AuthorizeOperation
}

// NewAuthMiddleware creates a new authentication middleware.
func NewAuthMiddleware(authorize *usecase.AuthorizeOperation) *AuthMiddleware {
	return &AuthMiddleware{authorize: authorize}
}

// Require returns middleware enforcing the given operation class. The class
// is fixed at route registration, so a validity-only route can never incur
// an identity lookup.
func (m *AuthMiddleware) Require(class domain.OperationClass) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c.Request())
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			principal, err := m.authorize.Execute(c.Request().Context(), token, class)
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrInvalidToken):
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid bearer token")
				case errors.Is(err, domain.ErrUnknownUser):
					return echo.NewHTTPError(http.StatusUnauthorized, "unknown user")
				case errors.Is(err, domain.ErrDirectoryUnavailable):
					return echo.NewHTTPError(http.StatusBadGateway, "upstream directory unavailable")
				default:
					return echo.NewHTTPError(http.StatusUnauthorized, "authentication failed")
				}
			}

			ctx := domain.WithPrincipal(c.Request().Context(), principal)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// bearerToken extracts the opaque token from the Authorization header.
func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get(echo.HeaderAuthorization)
	if header == "" || !strings.HasPrefix(header, bearerPrefix) {
		return "", domain.ErrInvalidToken
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return "", domain.ErrInvalidToken
	}
	return token, nil
}
