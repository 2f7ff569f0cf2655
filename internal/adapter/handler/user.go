package handler

import (
	"net/http"

	"board-gateway/internal/domain"

	"github.com/labstack/echo/v4"
)

// CurrentUserHandler serves GET /v1/me.
type CurrentUserHandler struct{}

// NewCurrentUserHandler creates a new current-user handler.
func NewCurrentUserHandler() *CurrentUserHandler {
	return &CurrentUserHandler{}
}

type currentUserResponse struct {
	ID               string `json:"id"`
	AuthenticationID string `json:"authenticationId"`
	Email            string `json:"email"`
}

// Handle returns the caller's resolved identity. The route is registered
// identity-required, so the middleware has already populated the principal.
func (h *CurrentUserHandler) Handle(c echo.Context) error {
	principal, err := domain.PrincipalFromContext(c.Request().Context())
	if err != nil || principal.Identity == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	return c.JSON(http.StatusOK, currentUserResponse{
		ID:               principal.Identity.UserID,
		AuthenticationID: string(principal.Identity.AuthenticationID),
		Email:            principal.Identity.Email,
	})
}
