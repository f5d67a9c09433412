package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJWT_GenerateAndValidate(t *testing.T) {
	j := New("test-secret", time.Minute)

	userID := uuid.New()
	ctx := context.Background()

	token, err := j.Generate(ctx, userID, "user@example.com", false)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Valid token should pass validation
	err = j.Validate(ctx, token)
	assert.NoError(t, err)

	// Extract claims
	claims, err := j.GetClaims(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.False(t, claims.IsAdmin)
}

func TestJWT_AdminClaim(t *testing.T) {
	j := New("test-secret", time.Minute)
	ctx := context.Background()

	token, err := j.Generate(ctx, uuid.New(), "ops@example.com", true)
	assert.NoError(t, err)

	claims, err := j.GetClaims(ctx, token)
	assert.NoError(t, err)
	assert.True(t, claims.IsAdmin)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New("test-secret", -time.Minute) // already expired

	ctx := context.Background()

	token, err := j.Generate(ctx, uuid.New(), "user@example.com", false)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Validation should fail
	err = j.Validate(ctx, token)
	assert.Error(t, err)

	claims, err := j.GetClaims(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	err := j.Validate(ctx, "invalid.token.string")
	assert.Error(t, err)

	// Token signed with a different secret
	other := New("other-secret", time.Minute)
	token, err := other.Generate(ctx, uuid.New(), "user@example.com", false)
	assert.NoError(t, err)

	err = j.Validate(ctx, token)
	assert.Error(t, err)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	_, err := j.GetTokenFromRequest(ctx, req)
	assert.Error(t, err)

	req.Header.Set("Authorization", "Basic abc")
	_, err = j.GetTokenFromRequest(ctx, req)
	assert.Error(t, err)

	req.Header.Set("Authorization", "Bearer sometoken")
	token, err := j.GetTokenFromRequest(ctx, req)
	assert.NoError(t, err)
	assert.Equal(t, "sometoken", token)
}
