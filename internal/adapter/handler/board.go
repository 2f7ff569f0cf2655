package handler

import (
	"net/http"
	"time"

	"board-gateway/internal/domain"
	"board-gateway/internal/usecase"

	"github.com/labstack/echo/v4"
)

// BoardHandler serves the board data endpoints.
type BoardHandler struct {
	getBoard      *usecase.GetBoard
	listCardLists *usecase.ListCardLists
	createBoard   *usecase.CreateBoard
}

// NewBoardHandler creates a new board handler.
func NewBoardHandler(gb *usecase.GetBoard, lc *usecase.ListCardLists, cb *usecase.CreateBoard) *BoardHandler {
	return &BoardHandler{getBoard: gb, listCardLists: lc, createBoard: cb}
}

type boardResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	OwnerUserID string    `json:"ownerUserId"`
	CreatedAt   time.Time `json:"createdAt"`
}

type cardListResponse struct {
	ID       string `json:"id"`
	BoardID  string `json:"boardId"`
	Title    string `json:"title"`
	Position int    `json:"position"`
}

type createBoardRequest struct {
	Name string `json:"name"`
}

// HandleGet processes GET /v1/boards/:id. Validity-only.
func (h *BoardHandler) HandleGet(c echo.Context) error {
	board, err := h.getBoard.Execute(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, toBoardResponse(board))
}

// HandleCardLists processes GET /v1/boards/:id/card-lists. Validity-only.
func (h *BoardHandler) HandleCardLists(c echo.Context) error {
	lists, err := h.listCardLists.Execute(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapDomainError(err)
	}

	resp := make([]cardListResponse, 0, len(lists))
	for _, cl := range lists {
		resp = append(resp, cardListResponse{
			ID:       cl.ID,
			BoardID:  cl.BoardID,
			Title:    cl.Title,
			Position: cl.Position,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// HandleCreate processes POST /v1/boards. Identity-required: the board is
// attributed to the resolved caller.
func (h *BoardHandler) HandleCreate(c echo.Context) error {
	principal, err := domain.PrincipalFromContext(c.Request().Context())
	if err != nil || principal.Identity == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	var req createBoardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	board, err := h.createBoard.Execute(c.Request().Context(), principal.Identity, req.Name)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusCreated, toBoardResponse(board))
}

func toBoardResponse(b *domain.Board) boardResponse {
	return boardResponse{
		ID:          b.ID,
		Name:        b.Name,
		OwnerUserID: b.OwnerUserID,
		CreatedAt:   b.CreatedAt,
	}
}
