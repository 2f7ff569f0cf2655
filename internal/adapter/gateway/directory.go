package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"board-gateway/internal/domain"
)

// DirectoryGateway talks to the upstream GraphQL persistence service.
// Implements domain.UserDirectory and domain.BoardDirectory.
type DirectoryGateway struct {
	endpoint   string
	httpClient *http.Client
}

// NewDirectoryGateway creates a directory gateway with tuned HTTP transport.
func NewDirectoryGateway(endpoint string, timeout time.Duration) *DirectoryGateway {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     90 * time.Second,
	}

	return &DirectoryGateway{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

const userByAuthenticationIDQuery = `query ($id: String!) {
  userByAuthenticationId(authenticationId: $id) {
    id
    authenticationId
    email
  }
}`

const boardByIDQuery = `query ($id: ID!) {
  board(id: $id) {
    id
    name
    ownerUserId
    createdAt
  }
}`

const cardListsByBoardQuery = `query ($boardId: ID!) {
  cardLists(boardId: $boardId) {
    id
    boardId
    title
    position
  }
}`

const createBoardMutation = `mutation ($ownerUserId: ID!, $name: String!) {
  createBoard(input: {ownerUserId: $ownerUserId, name: $name}) {
    id
    name
    ownerUserId
    createdAt
  }
}`

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

type directoryUser struct {
	ID               string `json:"id"`
	AuthenticationID string `json:"authenticationId"`
	Email            string `json:"email"`
}

type directoryBoard struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	OwnerUserID string    `json:"ownerUserId"`
	CreatedAt   time.Time `json:"createdAt"`
}

type directoryCardList struct {
	ID       string `json:"id"`
	BoardID  string `json:"boardId"`
	Title    string `json:"title"`
	Position int    `json:"position"`
}

// FindUserByAuthenticationID resolves an authentication ID to the internal
// user record. A null result means the token is valid but no account
// exists, which maps to domain.ErrUnknownUser.
func (g *DirectoryGateway) FindUserByAuthenticationID(ctx context.Context, id domain.AuthenticationID) (*domain.UserIdentity, error) {
	var data struct {
		User *directoryUser `json:"userByAuthenticationId"`
	}
	if err := g.query(ctx, userByAuthenticationIDQuery, map[string]any{"id": string(id)}, &data); err != nil {
		return nil, err
	}
	if data.User == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownUser, id)
	}

	return &domain.UserIdentity{
		UserID:           data.User.ID,
		AuthenticationID: domain.AuthenticationID(data.User.AuthenticationID),
		Email:            data.User.Email,
	}, nil
}

// BoardByID fetches a board by its ID.
func (g *DirectoryGateway) BoardByID(ctx context.Context, boardID string) (*domain.Board, error) {
	var data struct {
		Board *directoryBoard `json:"board"`
	}
	if err := g.query(ctx, boardByIDQuery, map[string]any{"id": boardID}, &data); err != nil {
		return nil, err
	}
	if data.Board == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrBoardNotFound, boardID)
	}
	return toBoard(data.Board), nil
}

// CardListsByBoard fetches the card lists belonging to a board.
func (g *DirectoryGateway) CardListsByBoard(ctx context.Context, boardID string) ([]domain.CardList, error) {
	var data struct {
		CardLists []directoryCardList `json:"cardLists"`
	}
	if err := g.query(ctx, cardListsByBoardQuery, map[string]any{"boardId": boardID}, &data); err != nil {
		return nil, err
	}

	lists := make([]domain.CardList, 0, len(data.CardLists))
	for _, cl := range data.CardLists {
		lists = append(lists, domain.CardList{
			ID:       cl.ID,
			BoardID:  cl.BoardID,
			Title:    cl.Title,
			Position: cl.Position,
		})
	}
	return lists, nil
}

// CreateBoard creates a board owned by ownerUserID.
func (g *DirectoryGateway) CreateBoard(ctx context.Context, ownerUserID, name string) (*domain.Board, error) {
	var data struct {
		Board *directoryBoard `json:"createBoard"`
	}
	vars := map[string]any{"ownerUserId": ownerUserID, "name": name}
	if err := g.query(ctx, createBoardMutation, vars, &data); err != nil {
		return nil, err
	}
	if data.Board == nil {
		return nil, fmt.Errorf("%w: createBoard returned no board", domain.ErrDirectoryUnavailable)
	}
	return toBoard(data.Board), nil
}

// query executes one GraphQL request and decodes the data object into out.
// Transport failures, non-200 statuses and GraphQL-level errors all map to
// domain.ErrDirectoryUnavailable; callers decide whether to retry.
func (g *DirectoryGateway) query(ctx context.Context, query string, vars map[string]any, out any) error {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("encoding directory request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDirectoryUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDirectoryUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: directory returned status %d", domain.ErrDirectoryUnavailable, resp.StatusCode)
	}

	var gqlResp graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&gqlResp); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDirectoryUnavailable, err)
	}
	if len(gqlResp.Errors) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrDirectoryUnavailable, gqlResp.Errors[0].Message)
	}

	if err := json.Unmarshal(gqlResp.Data, out); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDirectoryUnavailable, err)
	}
	return nil
}

func toBoard(b *directoryBoard) *domain.Board {
	return &domain.Board{
		ID:          b.ID,
		Name:        b.Name,
		OwnerUserID: b.OwnerUserID,
		CreatedAt:   b.CreatedAt,
	}
}
