package handler

import (
	"errors"
	"net/http"

	"board-gateway/internal/domain"
	"board-gateway/internal/usecase"

	"github.com/labstack/echo/v4"
)

// mapDomainError converts a domain error into an appropriate echo.HTTPError.
func mapDomainError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrUnknownUser),
		errors.Is(err, domain.ErrNoPrincipal):
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")

	case errors.Is(err, domain.ErrBoardNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "board not found")

	case errors.Is(err, usecase.ErrEmptyBoardName):
		return echo.NewHTTPError(http.StatusBadRequest, "board name must not be empty")

	case errors.Is(err, domain.ErrDirectoryUnavailable):
		return echo.NewHTTPError(http.StatusBadGateway, "upstream directory unavailable")

	case errors.Is(err, domain.ErrRateLimited):
		return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")

	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
