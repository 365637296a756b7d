package model

import (
	"staybook/shared/model"
	"time"
)

const (
	TableName  = "admins"
	EntityName = "admin"

	FieldID       = "id"
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldIsActive = "is_active"

	RoleAdmin = "admin"
)

type Admin struct {
	ID        string     `db:"id"`
	Username  string     `db:"username"`
	Email     string     `db:"email"`
	Password  string     `db:"password"`
	Role      string     `db:"role"`
	IsActive  bool       `db:"is_active"`
	LastLogin *time.Time `db:"last_login"`
	model.Metadata
}
