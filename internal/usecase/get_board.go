package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"board-gateway/internal/domain"
)

// GetBoard fetches a board by its ID from the upstream directory.
// Validity-only: the result does not depend on who the caller is.
type GetBoard struct {
	boards domain.BoardDirectory
	logger *slog.Logger
}

// NewGetBoard creates a new GetBoard usecase.
func NewGetBoard(b domain.BoardDirectory, l *slog.Logger) *GetBoard {
	return &GetBoard{boards: b, logger: l}
}

// Execute fetches the board identified by boardID.
func (uc *GetBoard) Execute(ctx context.Context, boardID string) (*domain.Board, error) {
	if boardID == "" {
		return nil, fmt.Errorf("%w: empty board id", domain.ErrBoardNotFound)
	}
	return uc.boards.BoardByID(ctx, boardID)
}
