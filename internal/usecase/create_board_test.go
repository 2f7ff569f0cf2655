package usecase

import (
	"context"
	"log/slog"
	"testing"

	"board-gateway/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockBoards implements domain.BoardDirectory for testing.
type mockBoards struct {
	board       *domain.Board
	cardLists   []domain.CardList
	err         error
	createCalls int
	lastOwner   string
	lastName    string
}

func (m *mockBoards) BoardByID(_ context.Context, boardID string) (*domain.Board, error) {
	return m.board, m.err
}

func (m *mockBoards) CardListsByBoard(_ context.Context, boardID string) ([]domain.CardList, error) {
	return m.cardLists, m.err
}

func (m *mockBoards) CreateBoard(_ context.Context, ownerUserID, name string) (*domain.Board, error) {
	m.createCalls++
	m.lastOwner = ownerUserID
	m.lastName = name
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Board{ID: "board-new", Name: name, OwnerUserID: ownerUserID}, nil
}

func TestCreateBoard_AttributesOwner(t *testing.T) {
	boards := &mockBoards{}
	owner := &domain.UserIdentity{UserID: "user-1", AuthenticationID: "auth-1"}

	uc := NewCreateBoard(boards, slog.Default())
	board, err := uc.Execute(context.Background(), owner, "Sprint 12")

	require.NoError(t, err)
	assert.Equal(t, "user-1", board.OwnerUserID)
	assert.Equal(t, "Sprint 12", board.Name)
	assert.Equal(t, "user-1", boards.lastOwner)
}

func TestCreateBoard_EmptyName(t *testing.T) {
	boards := &mockBoards{}
	owner := &domain.UserIdentity{UserID: "user-1"}

	uc := NewCreateBoard(boards, slog.Default())
	board, err := uc.Execute(context.Background(), owner, "")

	assert.Nil(t, board)
	assert.ErrorIs(t, err, ErrEmptyBoardName)
	assert.Equal(t, 0, boards.createCalls)
}

func TestCreateBoard_DirectoryError(t *testing.T) {
	boards := &mockBoards{err: domain.ErrDirectoryUnavailable}
	owner := &domain.UserIdentity{UserID: "user-1"}

	uc := NewCreateBoard(boards, slog.Default())
	board, err := uc.Execute(context.Background(), owner, "Sprint 12")

	assert.Nil(t, board)
	assert.ErrorIs(t, err, domain.ErrDirectoryUnavailable)
}

func TestGetBoard_EmptyID(t *testing.T) {
	boards := &mockBoards{}

	uc := NewGetBoard(boards, slog.Default())
	board, err := uc.Execute(context.Background(), "")

	assert.Nil(t, board)
	assert.ErrorIs(t, err, domain.ErrBoardNotFound)
}

func TestGetBoard_Found(t *testing.T) {
	boards := &mockBoards{board: &domain.Board{ID: "board-1", Name: "Roadmap"}}

	uc := NewGetBoard(boards, slog.Default())
	board, err := uc.Execute(context.Background(), "board-1")

	require.NoError(t, err)
	assert.Equal(t, "Roadmap", board.Name)
}

func TestListCardLists_Found(t *testing.T) {
	boards := &mockBoards{cardLists: []domain.CardList{
		{ID: "cl-1", BoardID: "board-1", Title: "To Do", Position: 0},
		{ID: "cl-2", BoardID: "board-1", Title: "Done", Position: 1},
	}}

	uc := NewListCardLists(boards, slog.Default())
	lists, err := uc.Execute(context.Background(), "board-1")

	require.NoError(t, err)
	require.Len(t, lists, 2)
	assert.Equal(t, "To Do", lists[0].Title)
}
