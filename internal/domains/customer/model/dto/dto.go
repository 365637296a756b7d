package dto

import (
	"staybook/infras/jwt"
	"staybook/internal/domains/customer/model"
	"staybook/shared/constant"
	gDto "staybook/shared/dto"
	gModel "staybook/shared/model"
	"staybook/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	FirstName       string `json:"firstName"       validate:"required"`
	LastName        string `json:"lastName"        validate:"required"`
	Email           string `json:"email"           validate:"required,email"`
	PhoneNumber     string `json:"phoneNumber"     validate:"required"`
	DateOfBirth     string `json:"dateOfBirth"     validate:"required,dateonly,adult"`
	Gender          string `json:"gender"          validate:"required,oneof=Male Female Other 'Prefer not to say'"`
	Address         string `json:"address"         validate:"required"`
	City            string `json:"city"            validate:"required"`
	Country         string `json:"country"         validate:"required"`
	PostalCode      string `json:"postalCode"      validate:"required"`
	Password        string `json:"password"        validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	Newsletter      bool   `json:"newsletter"`
	Notifications   *bool  `json:"notifications"`
	AcceptTerms     bool   `json:"acceptTerms"     validate:"required"`
	AcceptPrivacy   bool   `json:"acceptPrivacy"   validate:"required"`
}

// Normalize trims the free-text fields and lowercases the email, matching how they are stored.
func (r *RegisterRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = NormalizeEmail(r.Email)
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)
	r.Address = strings.TrimSpace(r.Address)
	r.City = strings.TrimSpace(r.City)
	r.Country = strings.TrimSpace(r.Country)
	r.PostalCode = strings.TrimSpace(r.PostalCode)
}

func (r *RegisterRequest) ToModel(hashedPassword string) (model.Customer, error) {
	dob, err := time.Parse(constant.DateOnlyFormat, r.DateOfBirth)
	if err != nil {
		return model.Customer{}, err
	}

	notifications := true
	if r.Notifications != nil {
		notifications = *r.Notifications
	}

	id := uuid.NewString()
	now := timezone.Now()

	return model.Customer{
		ID:            id,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		PhoneNumber:   r.PhoneNumber,
		Password:      hashedPassword,
		DateOfBirth:   dob,
		Gender:        r.Gender,
		Address:       r.Address,
		City:          r.City,
		Country:       r.Country,
		PostalCode:    r.PostalCode,
		Newsletter:    r.Newsletter,
		Notifications: notifications,
		AcceptTerms:   r.AcceptTerms,
		AcceptPrivacy: r.AcceptPrivacy,
		IsActive:      true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  id,
			ModifiedBy: id,
		},
	}, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login"`
}

// UpdateProfileRequest lists the profile fields a customer may change. Email and password are not among them.
type UpdateProfileRequest struct {
	FirstName     *string `db:"first_name"     json:"firstName"     validate:"omitempty,min=1"`
	LastName      *string `db:"last_name"      json:"lastName"      validate:"omitempty,min=1"`
	PhoneNumber   *string `db:"phone_number"   json:"phoneNumber"   validate:"omitempty,min=1"`
	Gender        *string `db:"gender"         json:"gender"        validate:"omitempty,oneof=Male Female Other 'Prefer not to say'"`
	Address       *string `db:"address"        json:"address"`
	City          *string `db:"city"           json:"city"`
	Country       *string `db:"country"        json:"country"`
	PostalCode    *string `db:"postal_code"    json:"postalCode"`
	Newsletter    *bool   `db:"newsletter"     json:"newsletter"`
	Notifications *bool   `db:"notifications"  json:"notifications"`
}

func (r UpdateProfileRequest) IsEmpty() bool {
	return r == UpdateProfileRequest{}
}

type CustomerResponse struct {
	ID            string  `json:"id"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Email         string  `json:"email"`
	PhoneNumber   string  `json:"phoneNumber"`
	DateOfBirth   string  `json:"dateOfBirth"`
	Gender        string  `json:"gender"`
	Address       string  `json:"address"`
	City          string  `json:"city"`
	Country       string  `json:"country"`
	PostalCode    string  `json:"postalCode"`
	Newsletter    bool    `json:"newsletter"`
	Notifications bool    `json:"notifications"`
	AcceptTerms   bool    `json:"acceptTerms"`
	AcceptPrivacy bool    `json:"acceptPrivacy"`
	IsActive      bool    `json:"isActive"`
	LastLogin     *string `json:"lastLogin,omitempty"`
	gDto.Metadata
}

func (r *CustomerResponse) FromModel(m model.Customer) {
	r.ID = m.ID
	r.FirstName = m.FirstName
	r.LastName = m.LastName
	r.Email = m.Email
	r.PhoneNumber = m.PhoneNumber
	r.DateOfBirth = m.DateOfBirth.Format(constant.DateOnlyFormat)
	r.Gender = m.Gender
	r.Address = m.Address
	r.City = m.City
	r.Country = m.Country
	r.PostalCode = m.PostalCode
	r.Newsletter = m.Newsletter
	r.Notifications = m.Notifications
	r.AcceptTerms = m.AcceptTerms
	r.AcceptPrivacy = m.AcceptPrivacy
	r.IsActive = m.IsActive

	if m.LastLogin != nil {
		lastLogin := timezone.Format(*m.LastLogin, constant.DateFormat)
		r.LastLogin = &lastLogin
	}

	r.Metadata.FromModel(m.Metadata)
}

type AuthResponse struct {
	Customer     CustomerResponse `json:"customer"`
	Token        string           `json:"token"`
	RefreshToken string           `json:"refreshToken"`
	ExpiresIn    int64            `json:"expiresIn"`
}

func (r *AuthResponse) FromModel(m model.Customer, tokenPair *jwt.TokenPair) {
	r.Customer.FromModel(m)
	r.Token = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}
