package dto

import (
	"staybook/infras/jwt"
	"staybook/internal/domains/admin/model"
	"staybook/shared/constant"
	gDto "staybook/shared/dto"
	gModel "staybook/shared/model"
	"staybook/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Username        string `json:"username"        validate:"required"`
	Email           string `json:"email"           validate:"required,email"`
	Password        string `json:"password"        validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

func (r *RegisterRequest) ToModel(hashedPassword, actor string) model.Admin {
	return newAdmin(r.Username, r.Email, hashedPassword, model.RoleAdmin, actor)
}

// CreateRequest is the bootstrap payload kept for provisioning scripts.
type CreateRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"omitempty,oneof=admin"`
}

func (r *CreateRequest) ToModel(hashedPassword, actor string) model.Admin {
	role := r.Role
	if role == constant.Empty {
		role = model.RoleAdmin
	}

	return newAdmin(r.Username, r.Email, hashedPassword, role, actor)
}

func newAdmin(username, email, hashedPassword, role, actor string) model.Admin {
	now := timezone.Now()

	return model.Admin{
		ID:       uuid.NewString(),
		Username: strings.TrimSpace(username),
		Email:    NormalizeEmail(email),
		Password: hashedPassword,
		Role:     role,
		IsActive: true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login"`
}

type AdminResponse struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	IsActive  bool    `json:"isActive"`
	LastLogin *string `json:"lastLogin,omitempty"`
	gDto.Metadata
}

func (r *AdminResponse) FromModel(m model.Admin) {
	r.ID = m.ID
	r.Username = m.Username
	r.Email = m.Email
	r.Role = m.Role
	r.IsActive = m.IsActive

	if m.LastLogin != nil {
		lastLogin := timezone.Format(*m.LastLogin, constant.DateFormat)
		r.LastLogin = &lastLogin
	}

	r.Metadata.FromModel(m.Metadata)
}

type AuthResponse struct {
	Admin        AdminResponse `json:"admin"`
	Token        string        `json:"token"`
	RefreshToken string        `json:"refreshToken"`
	ExpiresIn    int64         `json:"expiresIn"`
}

func (r *AuthResponse) FromModel(m model.Admin, tokenPair *jwt.TokenPair) {
	r.Admin.FromModel(m)
	r.Token = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}

type ExistsResponse struct {
	Exists bool `json:"exists"`
	Count  int  `json:"count"`
}
