package jwt_test

import (
	"context"
	"staybook/config"
	"staybook/infras/jwt"
	"staybook/infras/otel/mocks"
	"testing"
	"time"

	jwtGo "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "staybook"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	return cfg
}

func TestGenerateAndValidate(t *testing.T) {
	ctx := context.Background()
	svc := jwt.New(newConfig(), mocks.NewOtel())

	pair, err := svc.GenerateTokenPair(ctx, "vendor-1", "vendor@example.com", "vendor")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(15*60), pair.ExpiresIn)

	claims, err := svc.ValidateToken(ctx, pair.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "vendor-1", claims.UserID)
	assert.Equal(t, "vendor@example.com", claims.Email)
	assert.Equal(t, "vendor", claims.Role)

	_, err = svc.ValidateToken(ctx, pair.AccessToken, jwt.RefreshToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken, "access token is signed with the access secret")

	_, err = svc.ValidateToken(ctx, "not-a-token", jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidateToken_WrongType(t *testing.T) {
	cfg := newConfig()
	cfg.JWT.RefreshSecret = cfg.JWT.AccessSecret

	ctx := context.Background()
	svc := jwt.New(cfg, mocks.NewOtel())

	pair, err := svc.GenerateTokenPair(ctx, "customer-1", "c@example.com", "customer")
	require.NoError(t, err)

	_, err = svc.ValidateToken(ctx, pair.RefreshToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidClaim)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := newConfig()

	expired := jwtGo.NewWithClaims(jwtGo.SigningMethodHS256, jwt.Claims{
		UserID: "admin-1",
		Role:   "admin",
		Type:   jwt.AccessToken,
		RegisteredClaims: jwtGo.RegisteredClaims{
			ExpiresAt: jwtGo.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	token, err := expired.SignedString([]byte(cfg.JWT.AccessSecret))
	require.NoError(t, err)

	_, err = jwt.New(cfg, mocks.NewOtel()).ValidateToken(context.Background(), token, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestRefreshTokenRejectedAsAccess(t *testing.T) {
	ctx := context.Background()
	svc := jwt.New(newConfig(), mocks.NewOtel())

	pair, err := svc.GenerateTokenPair(ctx, "customer-1", "c@example.com", "customer")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(ctx, pair.RefreshToken, jwt.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "customer", claims.Role)
	assert.Equal(t, jwt.RefreshToken, claims.Type)

	_, err = svc.ValidateToken(ctx, pair.AccessToken, jwt.RefreshToken)
	assert.Error(t, err)
}

func TestEphemeralSecret(t *testing.T) {
	cfg := newConfig()
	cfg.JWT.AccessSecret = ""
	cfg.JWT.RefreshSecret = ""

	ctx := context.Background()
	first := jwt.New(cfg, mocks.NewOtel())
	second := jwt.New(cfg, mocks.NewOtel())

	pair, err := first.GenerateTokenPair(ctx, "customer-1", "c@example.com", "customer")
	require.NoError(t, err)

	_, err = first.ValidateToken(ctx, pair.AccessToken, jwt.AccessToken)
	assert.NoError(t, err)

	_, err = second.ValidateToken(ctx, pair.AccessToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
		err      error
	}{
		{name: "bearer token", header: "Bearer abc.def", expected: "abc.def"},
		{name: "missing header", header: "", err: jwt.ErrMissingHeader},
		{name: "basic scheme", header: "Basic abc", err: jwt.ErrInvalidHeader},
		{name: "empty bearer", header: "Bearer ", err: jwt.ErrInvalidHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwt.ExtractTokenFromHeader(tt.header)

			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, tt.expected, token)
		})
	}
}
