package auth

import (
	"context"
	"time"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest, session SessionTrackingRequest) (TokenResponse, error)
	Logout(ctx context.Context, session SessionTrackingRequest) error
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
}

// RefreshTokenRepository persists issued refresh tokens so they can be
// rotated and revoked server side.
type RefreshTokenRepository interface {
	Store(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error
	Exists(ctx context.Context, userID, tokenHash string) (bool, error)
	Revoke(ctx context.Context, userID, tokenHash string) error
	RevokeAllForUser(ctx context.Context, userID string) error
	// DeleteExpired removes tokens past their expiry and reports how many
	// rows went away. Revoked rows are kept until they expire.
	DeleteExpired(ctx context.Context) (int64, error)
}
