package dto

import (
	"staybook/infras/jwt"
	"staybook/internal/domains/vender/model"
	"staybook/shared/constant"
	gDto "staybook/shared/dto"
	gModel "staybook/shared/model"
	"staybook/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	BusinessName               string  `json:"businessName"               validate:"required"`
	BusinessType               string  `json:"businessType"               validate:"required"`
	BusinessDescription        *string `json:"businessDescription"`
	ContactName                string  `json:"contactName"                validate:"required"`
	EmailAddress               string  `json:"emailAddress"               validate:"required,email"`
	PhoneNumber                string  `json:"phoneNumber"                validate:"required"`
	StreetAddress              *string `json:"streetAddress"`
	City                       *string `json:"city"`
	Country                    *string `json:"country"`
	PostalCode                 *string `json:"postalCode"`
	BusinessRegistrationNumber *string `json:"businessRegistrationNumber"`
	TaxID                      *string `json:"taxId"`
	CategoryID                 *string `json:"categoryId"                 validate:"omitempty,uuid"`
	Password                   string  `json:"password"                   validate:"required,min=8"`
	ConfirmPassword            string  `json:"confirmPassword"            validate:"required,eqfield=Password"`
	AcceptTerms                bool    `json:"acceptTerms"`
	AcceptPrivacy              bool    `json:"acceptPrivacy"`
}

func (r *RegisterRequest) ToModel(hashedPassword string) model.Vendor {
	id := uuid.NewString()
	now := timezone.Now()

	return model.Vendor{
		ID:                         id,
		BusinessName:               strings.TrimSpace(r.BusinessName),
		BusinessType:               strings.TrimSpace(r.BusinessType),
		BusinessDescription:        r.BusinessDescription,
		ContactName:                strings.TrimSpace(r.ContactName),
		Email:                      NormalizeEmail(r.EmailAddress),
		PhoneNumber:                strings.TrimSpace(r.PhoneNumber),
		StreetAddress:              r.StreetAddress,
		City:                       r.City,
		Country:                    r.Country,
		PostalCode:                 r.PostalCode,
		BusinessRegistrationNumber: r.BusinessRegistrationNumber,
		TaxID:                      r.TaxID,
		CategoryID:                 r.CategoryID,
		Password:                   hashedPassword,
		AcceptTerms:                r.AcceptTerms,
		AcceptPrivacy:              r.AcceptPrivacy,
		IsActive:                   true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  id,
			ModifiedBy: id,
		},
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type LoginRequest struct {
	EmailAddress string `json:"emailAddress" validate:"required,email"`
	Password     string `json:"password"     validate:"required"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login"`
}

type VendorResponse struct {
	ID                         string  `json:"id"`
	BusinessName               string  `json:"businessName"`
	BusinessType               string  `json:"businessType"`
	BusinessDescription        *string `json:"businessDescription,omitempty"`
	ContactName                string  `json:"contactName"`
	EmailAddress               string  `json:"emailAddress"`
	PhoneNumber                string  `json:"phoneNumber"`
	StreetAddress              *string `json:"streetAddress,omitempty"`
	City                       *string `json:"city,omitempty"`
	Country                    *string `json:"country,omitempty"`
	PostalCode                 *string `json:"postalCode,omitempty"`
	BusinessRegistrationNumber *string `json:"businessRegistrationNumber,omitempty"`
	TaxID                      *string `json:"taxId,omitempty"`
	CategoryID                 *string `json:"categoryId,omitempty"`
	IsActive                   bool    `json:"isActive"`
	LastLogin                  *string `json:"lastLogin,omitempty"`
	gDto.Metadata
}

func (r *VendorResponse) FromModel(m model.Vendor) {
	r.ID = m.ID
	r.BusinessName = m.BusinessName
	r.BusinessType = m.BusinessType
	r.BusinessDescription = m.BusinessDescription
	r.ContactName = m.ContactName
	r.EmailAddress = m.Email
	r.PhoneNumber = m.PhoneNumber
	r.StreetAddress = m.StreetAddress
	r.City = m.City
	r.Country = m.Country
	r.PostalCode = m.PostalCode
	r.BusinessRegistrationNumber = m.BusinessRegistrationNumber
	r.TaxID = m.TaxID
	r.CategoryID = m.CategoryID
	r.IsActive = m.IsActive

	if m.LastLogin != nil {
		lastLogin := timezone.Format(*m.LastLogin, constant.DateFormat)
		r.LastLogin = &lastLogin
	}

	r.Metadata.FromModel(m.Metadata)
}

type AuthResponse struct {
	Vendor       VendorResponse `json:"vendor"`
	Token        string         `json:"token"`
	RefreshToken string         `json:"refreshToken"`
	ExpiresIn    int64          `json:"expiresIn"`
}

func (r *AuthResponse) FromModel(m model.Vendor, tokenPair *jwt.TokenPair) {
	r.Vendor.FromModel(m)
	r.Token = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}
