package domain

import "context"

// TokenVerifier validates a bearer token and extracts its subject.
type TokenVerifier interface {
	Verify(token string) (AuthenticationID, error)
}

// IdentityResolver maps an authentication ID to the internal user record,
// deduplicating and memoizing directory lookups.
type IdentityResolver interface {
	Resolve(ctx context.Context, id AuthenticationID) (*UserIdentity, error)
	Invalidate(id AuthenticationID)
}

// UserDirectory is the upstream store's user-lookup capability.
type UserDirectory interface {
	FindUserByAuthenticationID(ctx context.Context, id AuthenticationID) (*UserIdentity, error)
}

// BoardDirectory is the upstream store's board data capability.
type BoardDirectory interface {
	BoardByID(ctx context.Context, boardID string) (*Board, error)
	CardListsByBoard(ctx context.Context, boardID string) ([]CardList, error)
	CreateBoard(ctx context.Context, ownerUserID, name string) (*Board, error)
}
