package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/oa-project/office-backend-go/internal/domain/auth"
	"github.com/oa-project/office-backend-go/internal/domain/user"
	"github.com/oa-project/office-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepo,
		jwtService:     jwtService,
	}
}

// Login implements auth.AuthService. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := s.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if !u.CanAuthenticate() {
		return auth.TokenResponse{}, auth.ErrUserInactive
	}

	token, expiresAt, err := s.jwtService.GenerateToken(u)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := s.UserRepository.UpdateLastLogin(ctx, u.ID); err != nil {
		slog.WarnContext(ctx, "failed to record last login", "user_id", u.ID, "error", err)
	}

	return auth.TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user.ToResponse(u),
	}, nil
}

// Authenticate implements auth.AuthService. It returns the live user row
// for a valid Bearer token, the anonymous triple (nil, "", nil) for an
// absent header, and an auth error for everything in between. Every failure
// surfaces identically as a 401 upstream; the distinct sentinels feed the
// request log.
func (s *AuthServiceImpl) Authenticate(ctx context.Context, authorizationHeader string) (*user.User, string, error) {
	if authorizationHeader == "" {
		return nil, "", nil
	}

	scheme, token, found := strings.Cut(authorizationHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return nil, "", auth.ErrAuthHeaderFormat
	}

	userID, err := s.jwtService.ParseToken(token)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			slog.InfoContext(ctx, "rejected expired token")
		} else {
			slog.WarnContext(ctx, "rejected invalid token")
		}
		return nil, "", err
	}

	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			slog.WarnContext(ctx, "token subject no longer exists", "user_id", userID)
			return nil, "", auth.ErrAuthUserNotFound
		}
		return nil, "", fmt.Errorf("failed to get user by id: %w", err)
	}

	if !u.CanAuthenticate() {
		return nil, "", auth.ErrUserInactive
	}

	return &u, token, nil
}

// RefreshToken implements auth.AuthService. The signature is checked but
// expiry is not: an expired token stays exchangeable as long as the secret
// signed it and the subject still holds an active account. Every failure
// collapses to ErrRefreshFailed; the client's only recovery is a new login.
func (s *AuthServiceImpl) RefreshToken(ctx context.Context, token string) (auth.RefreshResponse, error) {
	userID, err := s.jwtService.DecodeSubject(token)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrRefreshFailed
	}

	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrRefreshFailed
	}
	if !u.CanAuthenticate() {
		return auth.RefreshResponse{}, auth.ErrRefreshFailed
	}

	newToken, expiresAt, err := s.jwtService.GenerateToken(u)
	if err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("failed to generate token: %w", err)
	}

	return auth.RefreshResponse{
		Token:     newToken,
		ExpiresAt: expiresAt,
	}, nil
}

// ResetPassword implements auth.AuthService.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, userID string, req auth.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if req.NewPassword != req.ConfirmPassword {
		return auth.ErrPasswordMismatch
	}

	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user by id: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.OldPassword)); err != nil {
		return auth.ErrWrongOldPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.UserRepository.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}
