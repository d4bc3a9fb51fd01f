package model

import (
	"time"

	"hotel/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID         = "id"
	FieldUsername   = "username"
	FieldPassword   = "password"
	FieldEmail      = "email"
	FieldFullName   = "full_name"
	FieldRole       = "role"
	FieldDepartment = "department"
	FieldPhone      = "phone"
	FieldIsActive   = "is_active"
	FieldLastLogin  = "last_login"
)

// User is a staff account. Accounts are never deleted, only deactivated.
type User struct {
	ID         string     `db:"id"`
	Username   string     `db:"username"`
	Password   string     `db:"password"`
	Email      string     `db:"email"`
	FullName   string     `db:"full_name"`
	Role       string     `db:"role"`
	Department string     `db:"department"`
	Phone      string     `db:"phone"`
	IsActive   bool       `db:"is_active"`
	LastLogin  *time.Time `db:"last_login"`
	model.Metadata
}
