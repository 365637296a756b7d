package model

import (
	"staybook/shared/model"
	"time"
)

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID          = "id"
	FieldEmail       = "email"
	FieldPhoneNumber = "phone_number"
	FieldIsActive    = "is_active"
	FieldLastLogin   = "last_login"
)

const (
	GenderMale           = "Male"
	GenderFemale         = "Female"
	GenderOther          = "Other"
	GenderPreferNotToSay = "Prefer not to say"
)

type Customer struct {
	ID            string     `db:"id"`
	FirstName     string     `db:"first_name"`
	LastName      string     `db:"last_name"`
	Email         string     `db:"email"`
	PhoneNumber   string     `db:"phone_number"`
	Password      string     `db:"password"`
	DateOfBirth   time.Time  `db:"date_of_birth"`
	Gender        string     `db:"gender"`
	Address       string     `db:"address"`
	City          string     `db:"city"`
	Country       string     `db:"country"`
	PostalCode    string     `db:"postal_code"`
	Newsletter    bool       `db:"newsletter"`
	Notifications bool       `db:"notifications"`
	AcceptTerms   bool       `db:"accept_terms"`
	AcceptPrivacy bool       `db:"accept_privacy"`
	IsActive      bool       `db:"is_active"`
	LastLogin     *time.Time `db:"last_login"`
	model.Metadata
}

func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
