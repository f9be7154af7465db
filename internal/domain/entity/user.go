package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roles válidos para User.
const (
	RoleUser  = "user"
	RoleSale  = "sale"
	RoleAdmin = "admin"
)

// ValidRole indica si role es uno de los roles conocidos.
func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleSale, RoleAdmin:
		return true
	}
	return false
}

// Address dirección postal del usuario.
type Address struct {
	Street   string `json:"street,omitempty"`
	City     string `json:"city,omitempty"`
	District string `json:"district,omitempty"`
	Ward     string `json:"ward,omitempty"`
	ZipCode  string `json:"zipCode,omitempty"`
}

// User representa una cuenta del sistema.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FullName     string
	Phone        string
	Address      Address
	Role         string // user, sale, admin

	// Solo aplican a role = sale.
	EmployeeID     *string
	CommissionRate decimal.Decimal // porcentaje 0..100
	TotalSales     decimal.Decimal
	TotalOrders    int

	IsActive   bool
	IsVerified bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
