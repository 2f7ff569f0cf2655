package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"board-gateway/internal/domain"
)

// ListCardLists fetches the card lists of a board. Validity-only.
type ListCardLists struct {
	boards domain.BoardDirectory
	logger *slog.Logger
}

// NewListCardLists creates a new ListCardLists usecase.
func NewListCardLists(b domain.BoardDirectory, l *slog.Logger) *ListCardLists {
	return &ListCardLists{boards: b, logger: l}
}

// Execute fetches all card lists belonging to boardID.
func (uc *ListCardLists) Execute(ctx context.Context, boardID string) ([]domain.CardList, error) {
	if boardID == "" {
		return nil, fmt.Errorf("%w: empty board id", domain.ErrBoardNotFound)
	}
	return uc.boards.CardListsByBoard(ctx, boardID)
}
