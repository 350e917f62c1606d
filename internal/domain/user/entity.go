package user

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	// SalaryRate is the hourly pay rate; nil until HR sets it.
	SalaryRate *decimal.Decimal
	// BaseSalary is the fixed monthly salary component.
	BaseSalary decimal.Decimal
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

var RoleValues = []string{
	string(RoleAdmin),
	string(RoleManager),
	string(RoleEmployee),
}
