package token

import (
	"fmt"

	"board-gateway/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// VerifierConfig holds token verification configuration.
type VerifierConfig struct {
	Secret   string
	Issuer   string
	Audience string
}

// bearerClaims represents the claims carried by tokens from the identity
// provider. Only the registered claims participate in verification; the
// subject is the authentication ID.
type bearerClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// JWTVerifier validates bearer tokens issued by the identity provider.
// Implements domain.TokenVerifier. Verification is a local signature and
// expiry check; it performs no I/O and no caching.
type JWTVerifier struct {
	cfg    VerifierConfig
	secret []byte
}

// NewJWTVerifier creates a new verifier.
func NewJWTVerifier(cfg VerifierConfig) *JWTVerifier {
	return &JWTVerifier{cfg: cfg, secret: []byte(cfg.Secret)}
}

// Verify parses and validates the token and returns the subject claim.
// All parse and validation failures collapse into domain.ErrInvalidToken;
// the caller never retries an invalid token.
func (v *JWTVerifier) Verify(tokenStr string) (domain.AuthenticationID, error) {
	if tokenStr == "" {
		return "", fmt.Errorf("%w: empty token", domain.ErrInvalidToken)
	}
	if len(v.secret) == 0 {
		return "", fmt.Errorf("token secret not configured")
	}

	parsed, err := jwt.ParseWithClaims(tokenStr, &bearerClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	},
		jwt.WithIssuer(v.cfg.Issuer),
		jwt.WithAudience(v.cfg.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*bearerClaims)
	if !ok || !parsed.Valid {
		return "", fmt.Errorf("%w: invalid claims", domain.ErrInvalidToken)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", domain.ErrInvalidToken)
	}

	return domain.AuthenticationID(claims.Subject), nil
}
