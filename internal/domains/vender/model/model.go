package model

import (
	"staybook/shared/model"
	"time"
)

const (
	TableName  = "vendors"
	EntityName = "vendor"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldIsActive  = "is_active"
	FieldLastLogin = "last_login"
)

type Vendor struct {
	ID                         string     `db:"id"`
	BusinessName               string     `db:"business_name"`
	BusinessType               string     `db:"business_type"`
	BusinessDescription        *string    `db:"business_description"`
	ContactName                string     `db:"contact_name"`
	Email                      string     `db:"email"`
	PhoneNumber                string     `db:"phone_number"`
	StreetAddress              *string    `db:"street_address"`
	City                       *string    `db:"city"`
	Country                    *string    `db:"country"`
	PostalCode                 *string    `db:"postal_code"`
	BusinessRegistrationNumber *string    `db:"business_registration_number"`
	TaxID                      *string    `db:"tax_id"`
	CategoryID                 *string    `db:"category_id"`
	Password                   string     `db:"password"`
	AcceptTerms                bool       `db:"accept_terms"`
	AcceptPrivacy              bool       `db:"accept_privacy"`
	IsActive                   bool       `db:"is_active"`
	LastLogin                  *time.Time `db:"last_login"`
	model.Metadata
}
