package usecase

import (
	"context"
	"errors"
	"log/slog"

	"board-gateway/internal/domain"
)

// ErrEmptyBoardName rejects board creation without a name.
var ErrEmptyBoardName = errors.New("board name must not be empty")

// CreateBoard creates a board upstream attributed to the caller.
// Identity-required: the mutation records the resolved internal user ID as
// the board's owner.
type CreateBoard struct {
	boards domain.BoardDirectory
	logger *slog.Logger
}

// NewCreateBoard creates a new CreateBoard usecase.
func NewCreateBoard(b domain.BoardDirectory, l *slog.Logger) *CreateBoard {
	return &CreateBoard{boards: b, logger: l}
}

// Execute creates a board named name owned by owner.
func (uc *CreateBoard) Execute(ctx context.Context, owner *domain.UserIdentity, name string) (*domain.Board, error) {
	if name == "" {
		return nil, ErrEmptyBoardName
	}

	board, err := uc.boards.CreateBoard(ctx, owner.UserID, name)
	if err != nil {
		return nil, err
	}

	uc.logger.InfoContext(ctx, "board created",
		"board_id", board.ID,
		"owner_user_id", owner.UserID)
	return board, nil
}
