package dto

import (
	"staybook/infras/jwt"
	"staybook/shared/identity"
)

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type RefreshTokenResponse struct {
	Token        string          `json:"token"`
	RefreshToken string          `json:"refreshToken"`
	ExpiresIn    int64           `json:"expiresIn"`
	Role         identity.Domain `json:"role"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair, domain identity.Domain) {
	r.Token = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
	r.Role = domain
}
