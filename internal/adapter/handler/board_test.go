package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"board-gateway/internal/domain"
	"board-gateway/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBoards implements domain.BoardDirectory for handler tests.
type stubBoards struct {
	board     *domain.Board
	cardLists []domain.CardList
	err       error
}

func (s *stubBoards) BoardByID(context.Context, string) (*domain.Board, error) {
	return s.board, s.err
}

func (s *stubBoards) CardListsByBoard(context.Context, string) ([]domain.CardList, error) {
	return s.cardLists, s.err
}

func (s *stubBoards) CreateBoard(_ context.Context, ownerUserID, name string) (*domain.Board, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Board{ID: "board-new", Name: name, OwnerUserID: ownerUserID}, nil
}

func newBoardHandler(boards domain.BoardDirectory) *BoardHandler {
	l := slog.Default()
	return NewBoardHandler(
		usecase.NewGetBoard(boards, l),
		usecase.NewListCardLists(boards, l),
		usecase.NewCreateBoard(boards, l),
	)
}

func TestBoardHandler_HandleGet(t *testing.T) {
	h := newBoardHandler(&stubBoards{board: &domain.Board{ID: "board-1", Name: "Roadmap", OwnerUserID: "user-1"}})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("board-1")

	require.NoError(t, h.HandleGet(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp boardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "board-1", resp.ID)
	assert.Equal(t, "Roadmap", resp.Name)
}

func TestBoardHandler_HandleGet_NotFound(t *testing.T) {
	h := newBoardHandler(&stubBoards{err: domain.ErrBoardNotFound})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("board-missing")

	err := h.HandleGet(c)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestBoardHandler_HandleCardLists(t *testing.T) {
	h := newBoardHandler(&stubBoards{cardLists: []domain.CardList{
		{ID: "cl-1", BoardID: "board-1", Title: "To Do"},
	}})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("board-1")

	require.NoError(t, h.HandleCardLists(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []cardListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "To Do", resp[0].Title)
}

func TestBoardHandler_HandleCreate(t *testing.T) {
	h := newBoardHandler(&stubBoards{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Sprint 12"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	principal := &domain.Principal{
		AuthenticationID: "auth-1",
		Identity:         &domain.UserIdentity{UserID: "user-1", AuthenticationID: "auth-1"},
	}
	c.SetRequest(req.WithContext(domain.WithPrincipal(req.Context(), principal)))

	require.NoError(t, h.HandleCreate(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp boardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "user-1", resp.OwnerUserID, "board must be attributed to the resolved caller")
	assert.Equal(t, "Sprint 12", resp.Name)
}

func TestBoardHandler_HandleCreate_NoPrincipal(t *testing.T) {
	h := newBoardHandler(&stubBoards{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Sprint 12"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.HandleCreate(c)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestBoardHandler_HandleCreate_EmptyName(t *testing.T) {
	h := newBoardHandler(&stubBoards{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":""}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	principal := &domain.Principal{
		AuthenticationID: "auth-1",
		Identity:         &domain.UserIdentity{UserID: "user-1"},
	}
	c.SetRequest(req.WithContext(domain.WithPrincipal(req.Context(), principal)))

	err := h.HandleCreate(c)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
