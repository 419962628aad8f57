package jwt

import (
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oa-project/office-backend-go/internal/domain/auth"
	"github.com/oa-project/office-backend-go/internal/domain/user"
)

const testSecret = "test-secret-key-for-jwt"

func testUser() user.User {
	return user.User{
		ID:       "user-1",
		Username: "alice",
		Email:    "alice@corp.test",
	}
}

// expiredToken signs an access token whose exp is already in the past,
// using the given secret.
func expiredToken(t *testing.T, secret string) string {
	t.Helper()
	ja := jwtauth.New("HS256", []byte(secret), nil)
	now := time.Now().Add(-48 * time.Hour)
	_, tokenString, err := ja.Encode(map[string]interface{}{
		"user_id":  "user-1",
		"username": "alice",
		"email":    "alice@corp.test",
		"type":     "access",
		"iat":      now.Unix(),
		"exp":      now.Add(TokenExpiry).Unix(),
	})
	require.NoError(t, err)
	return tokenString
}

func TestGenerateAndParseToken(t *testing.T) {
	svc := NewJWTService(testSecret)

	token, expiresAt, err := svc.GenerateToken(testUser())
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.InDelta(t, time.Now().Add(TokenExpiry).Unix(), expiresAt, 5)

	userID, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestParseTokenExpired(t *testing.T) {
	svc := NewJWTService(testSecret)

	_, err := svc.ParseToken(expiredToken(t, testSecret))
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestParseTokenWrongSecret(t *testing.T) {
	other := NewJWTService("a-different-secret")
	token, _, err := other.GenerateToken(testUser())
	require.NoError(t, err)

	svc := NewJWTService(testSecret)
	_, err = svc.ParseToken(token)
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)

	_, err = svc.ParseToken("not-a-jwt")
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
}

// DecodeSubject is the refresh path: expiry is forgiven, a bad signature
// is not.
func TestDecodeSubjectGraceWindow(t *testing.T) {
	svc := NewJWTService(testSecret)

	userID, err := svc.DecodeSubject(expiredToken(t, testSecret))
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	_, err = svc.DecodeSubject(expiredToken(t, "a-different-secret"))
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
}

func TestActivationTokenRoundTrip(t *testing.T) {
	svc := NewJWTService(testSecret)

	token, err := svc.GenerateActivationToken("invitee-1")
	require.NoError(t, err)

	userID, err := svc.ParseActivationToken(token)
	require.NoError(t, err)
	assert.Equal(t, "invitee-1", userID)
}

// Token types are not interchangeable: an access token cannot activate an
// account and an activation token cannot authenticate a request.
func TestTokenTypeIsolation(t *testing.T) {
	svc := NewJWTService(testSecret)

	access, _, err := svc.GenerateToken(testUser())
	require.NoError(t, err)
	_, err = svc.ParseActivationToken(access)
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)

	activation, err := svc.GenerateActivationToken("user-1")
	require.NoError(t, err)
	_, err = svc.ParseToken(activation)
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
	_, err = svc.DecodeSubject(activation)
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
}
