package handler

import (
	"net/http"

	"board-gateway/internal/domain"

	"github.com/labstack/echo/v4"
)

// InternalHandler serves operator-only endpoints behind the shared secret.
type InternalHandler struct {
	resolver domain.IdentityResolver
}

// NewInternalHandler creates a new internal handler.
func NewInternalHandler(r domain.IdentityResolver) *InternalHandler {
	return &InternalHandler{resolver: r}
}

// HandleInvalidate processes POST /internal/invalidate/:authenticationId.
// Removes a cached identity mapping so the next resolution consults the
// directory again.
func (h *InternalHandler) HandleInvalidate(c echo.Context) error {
	authID := c.Param("authenticationId")
	if authID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing authentication id")
	}

	h.resolver.Invalidate(domain.AuthenticationID(authID))
	return c.NoContent(http.StatusNoContent)
}
