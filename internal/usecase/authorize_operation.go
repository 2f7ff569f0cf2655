package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"board-gateway/internal/domain"
)

// AuthorizeOperation enforces the per-operation authentication contract.
//
// Every operation declares its class up front: validity-only operations
// prove the token is currently valid and stop there, identity-required
// operations additionally resolve the internal user record. The class is
// an explicit argument so a validity-only operation can never trigger a
// directory lookup as a side effect of a shared helper.
type AuthorizeOperation struct {
	verifier domain.TokenVerifier
	resolver domain.IdentityResolver
	logger   *slog.Logger
}

// NewAuthorizeOperation creates a new AuthorizeOperation usecase.
func NewAuthorizeOperation(v domain.TokenVerifier, r domain.IdentityResolver, l *slog.Logger) *AuthorizeOperation {
	return &AuthorizeOperation{verifier: v, resolver: r, logger: l}
}

// Execute verifies the bearer token and, for identity-required operations,
// resolves the caller's internal identity. The returned principal carries
// a nil Identity for validity-only operations.
func (uc *AuthorizeOperation) Execute(ctx context.Context, token string, class domain.OperationClass) (*domain.Principal, error) {
	authID, err := uc.verifier.Verify(token)
	if err != nil {
		return nil, err
	}

	if class == domain.ClassValidityOnly {
		return &domain.Principal{AuthenticationID: authID}, nil
	}

	identity, err := uc.resolver.Resolve(ctx, authID)
	if err != nil {
		uc.logger.WarnContext(ctx, "identity resolution failed",
			"authentication_id", string(authID),
			"error", err)
		return nil, fmt.Errorf("resolving identity: %w", err)
	}

	return &domain.Principal{AuthenticationID: authID, Identity: identity}, nil
}
