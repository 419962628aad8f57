package jwt

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/oa-project/office-backend-go/internal/domain/auth"
	"github.com/oa-project/office-backend-go/internal/domain/user"
)

// TokenExpiry is fixed at 24 hours from issuance, not configurable per call.
const TokenExpiry = 24 * time.Hour

// ActivationExpiry bounds how long a staff activation link stays valid.
const ActivationExpiry = 72 * time.Hour

type Service interface {
	// GenerateToken signs an access token binding the user's id, username
	// and email, expiring exactly TokenExpiry from now.
	GenerateToken(u user.User) (token string, expiresAt int64, err error)
	// ParseToken verifies signature and expiry and returns the subject
	// user id. Expired tokens fail with auth.ErrTokenExpired, everything
	// else with auth.ErrTokenInvalid.
	ParseToken(tokenString string) (userID string, err error)
	// DecodeSubject checks the signature but deliberately ignores expiry,
	// the refresh grace window: an expired token may still be exchanged
	// for a fresh one as long as it was signed by us.
	DecodeSubject(tokenString string) (userID string, err error)
	GenerateActivationToken(userID string) (token string, err error)
	ParseActivationToken(tokenString string) (userID string, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateToken(u user.User) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(TokenExpiry).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id":  u.ID,
		"username": u.Username,
		"email":    u.Email,
		"type":     "access",
		"iat":      now.Unix(),
		"exp":      expiresAt,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) ParseToken(tokenString string) (string, error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		if errors.Is(err, jwtauth.ErrExpired) {
			return "", auth.ErrTokenExpired
		}
		return "", auth.ErrTokenInvalid
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "access" {
		return "", auth.ErrTokenInvalid
	}

	return j.subject(token.PrivateClaims())
}

func (j *JWTService) DecodeSubject(tokenString string) (string, error) {
	// Decode checks the signature only; claim validation (exp) is skipped.
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return "", auth.ErrTokenInvalid
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "access" {
		return "", auth.ErrTokenInvalid
	}

	return j.subject(token.PrivateClaims())
}

func (j *JWTService) GenerateActivationToken(userID string) (string, error) {
	now := time.Now()
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"type":    "activate",
		"iat":     now.Unix(),
		"exp":     now.Add(ActivationExpiry).Unix(),
	})
	return tokenString, err
}

func (j *JWTService) ParseActivationToken(tokenString string) (string, error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return "", auth.ErrTokenInvalid
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "activate" {
		return "", auth.ErrTokenInvalid
	}

	return j.subject(token.PrivateClaims())
}

func (j *JWTService) subject(claims map[string]interface{}) (string, error) {
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrTokenInvalid
	}
	return userID, nil
}
