package auth

import (
	"context"

	"github.com/oa-project/office-backend-go/internal/domain/user"
)

// AuthService gates every protected operation. Authenticate re-reads the
// user row on every call so that a lock or leader change takes effect on
// the very next request.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	// Authenticate resolves a raw Authorization header value. An empty
	// header yields (nil, "", nil): anonymous, the caller decides whether
	// that is acceptable.
	Authenticate(ctx context.Context, authorizationHeader string) (*user.User, string, error)
	// RefreshToken reissues a fresh 24h token. Expiry alone does not block
	// a refresh; only a broken signature or a vanished subject does.
	RefreshToken(ctx context.Context, token string) (RefreshResponse, error)
	ResetPassword(ctx context.Context, userID string, req ResetPasswordRequest) error
}
