package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"staybook/infras/jwt"
	"staybook/infras/otel"
	"staybook/internal/domains/auth/model/dto"
	"staybook/shared/constant"
	"staybook/shared/failure"
	"staybook/shared/identity"

	"github.com/rs/zerolog/log"
)

const (
	msgInvalidTokenType    = "Invalid token type"
	msgInvalidClaims       = "Invalid token claims"
	msgInvalidRefreshToken = "Invalid refresh token"
	msgAccountNotFound     = "Account not found"
	msgAccountDisabled     = "Account is deactivated. Please contact support."
)

// Auth turns bearer tokens into identities. Every identity domain shares one token format;
// the role claim says which resolver owns the subject.
type Auth interface {
	Authenticate(ctx context.Context, token string, allowed []identity.Domain) (identity.Identity, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
}

type serviceImpl struct {
	jwt       jwt.JWT
	resolvers identity.Resolvers
	otel      otel.Otel
}

func New(jwt jwt.JWT, resolvers identity.Resolvers, otel otel.Otel) Auth {
	return &serviceImpl{
		jwt:       jwt,
		resolvers: resolvers,
		otel:      otel,
	}
}

// Authenticate validates an access token and loads the current state of its subject.
// An empty allowed list accepts any domain.
func (s *serviceImpl) Authenticate(ctx context.Context, token string, allowed []identity.Domain) (res identity.Identity, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Authenticate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	claims, err := s.jwt.ValidateToken(ctx, token, jwt.AccessToken)
	if err != nil {
		return res, failure.Unauthorized(tokenMessage(err)) // nolint:wrapcheck
	}

	domain, ok := identity.ParseDomain(claims.Role)
	if !ok {
		return res, failure.Unauthorized(msgInvalidClaims) // nolint:wrapcheck
	}

	if len(allowed) > 0 && !slices.Contains(allowed, domain) {
		return res, failure.Unauthorized(msgInvalidTokenType) // nolint:wrapcheck
	}

	return s.resolve(ctx, domain, claims.UserID)
}

// RefreshToken issues a new pair only while the subject still exists and is active.
func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	claims, err := s.jwt.ValidateToken(ctx, req.RefreshToken, jwt.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("refresh attempt with invalid token")

		return res, failure.Unauthorized(msgInvalidRefreshToken) // nolint:wrapcheck
	}

	domain, ok := identity.ParseDomain(claims.Role)
	if !ok {
		return res, failure.Unauthorized(msgInvalidClaims) // nolint:wrapcheck
	}

	caller, err := s.resolve(ctx, domain, claims.UserID)
	if err != nil {
		return res, err
	}

	tokenPair, err := s.jwt.GenerateTokenPair(ctx, caller.ID, caller.Email, string(domain))
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair, domain)

	return res, nil
}

func (s *serviceImpl) resolve(ctx context.Context, domain identity.Domain, id string) (identity.Identity, error) {
	resolver, ok := s.resolvers[domain]
	if !ok {
		return identity.Identity{}, failure.Unauthorized(msgInvalidTokenType) // nolint:wrapcheck
	}

	caller, err := resolver.Resolve(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("domain", string(domain)).Str("id", id).Msg("failed to resolve identity")

		return identity.Identity{}, fmt.Errorf("failed to resolve identity: %w", err)
	}

	if !caller.Exists() {
		return identity.Identity{}, failure.Unauthorized(msgAccountNotFound) // nolint:wrapcheck
	}

	if !caller.Active {
		return identity.Identity{}, failure.Forbidden(msgAccountDisabled) // nolint:wrapcheck
	}

	return caller, nil
}

func tokenMessage(err error) string {
	switch {
	case errors.Is(err, jwt.ErrExpiredToken):
		return "Token has expired"
	case errors.Is(err, jwt.ErrInvalidToken):
		return "Invalid token"
	case errors.Is(err, jwt.ErrInvalidClaim):
		return msgInvalidClaims
	default:
		return "Token validation failed"
	}
}
