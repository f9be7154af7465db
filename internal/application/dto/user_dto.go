package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// RegisterRequest entrada para registro (auth). El rol no se elige: siempre "user".
type RegisterRequest struct {
	Username string         `json:"username" validate:"required,min=3,max=50"`
	Email    string         `json:"email" validate:"required,email,max=254"`
	Password string         `json:"password" validate:"required,min=6,max=72"`
	FullName string         `json:"fullName" validate:"required,max=200"`
	Phone    string         `json:"phone" validate:"required,max=30"`
	Address  entity.Address `json:"address"`
}

// RegisterResponse subconjunto público del usuario creado (nunca el hash).
type RegisterResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserSummary datos básicos del usuario autenticado.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

// ChangeRoleRequest entrada de PUT /users/:id/role (solo admin).
type ChangeRoleRequest struct {
	Role           string           `json:"role" validate:"required,oneof=user sale admin"`
	EmployeeID     *string          `json:"employeeId" validate:"omitempty,max=50"`
	CommissionRate *decimal.Decimal `json:"commissionRate"`
}

// UserResponse perfil de un usuario (sin password).
type UserResponse struct {
	ID             string          `json:"id"`
	Username       string          `json:"username"`
	Email          string          `json:"email"`
	FullName       string          `json:"fullName"`
	Phone          string          `json:"phone"`
	Address        entity.Address  `json:"address"`
	Role           string          `json:"role"`
	EmployeeID     *string         `json:"employeeId,omitempty"`
	CommissionRate decimal.Decimal `json:"commissionRate"`
	TotalSales     decimal.Decimal `json:"totalSales"`
	TotalOrders    int             `json:"totalOrders"`
	IsActive       bool            `json:"isActive"`
	IsVerified     bool            `json:"isVerified"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
