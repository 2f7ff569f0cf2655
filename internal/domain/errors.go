package domain

import "errors"

// Authentication errors.
var (
	ErrInvalidToken = errors.New("invalid bearer token")
	ErrUnknownUser  = errors.New("no user for authentication id")
	ErrNoPrincipal  = errors.New("no principal in context")
)

// Upstream directory errors.
var (
	ErrDirectoryUnavailable = errors.New("directory unavailable")
	ErrBoardNotFound        = errors.New("board not found")
)

// Rate limiting errors.
var (
	ErrRateLimited = errors.New("rate limit exceeded")
)
