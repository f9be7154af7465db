package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductQueryParams parámetros de GET /products.
type ProductQueryParams struct {
	Category string `query:"category"`
	Search   string `query:"search"`
	MinPrice string `query:"minPrice"`
	MaxPrice string `query:"maxPrice"`
	Sort     string `query:"sort"`
	Page     string `query:"page"`
	Limit    string `query:"limit"`
}

// CreateProductRequest entrada para crear un producto.
// Seller se acepta en el JSON pero se ignora: el vendedor es siempre quien crea.
type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required,max=200"`
	Description string           `json:"description" validate:"max=5000"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	CostPrice   *decimal.Decimal `json:"costPrice"`
	Categories  []string         `json:"categories" validate:"max=20"`
	Stock       int              `json:"stock" validate:"min=0,max=2147483647"`
	Seller      *string          `json:"seller,omitempty"`
}

// UpdateProductRequest entrada para actualizar un producto. Solo se aplican los
// campos presentes. Seller se descarta siempre (la propiedad es inmutable).
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description" validate:"omitempty,max=5000"`
	Price       *decimal.Decimal `json:"price"`
	CostPrice   *decimal.Decimal `json:"costPrice"`
	Categories  *[]string        `json:"categories" validate:"omitempty,max=20"`
	Stock       *int             `json:"stock" validate:"omitempty,min=0,max=2147483647"`
	Seller      *string          `json:"seller,omitempty"`
}

// CategorySummary categoría embebida en un producto. En listados solo lleva el id.
type CategorySummary struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Slug string `json:"slug,omitempty"`
}

// SellerSummary vendedor embebido en un producto. En listados solo lleva el id.
type SellerSummary struct {
	ID       string `json:"id"`
	Username string `json:"username,omitempty"`
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Slug        string            `json:"slug"`
	Description string            `json:"description"`
	Price       decimal.Decimal   `json:"price"`
	CostPrice   *decimal.Decimal  `json:"costPrice,omitempty"`
	Categories  []CategorySummary `json:"categories"`
	Stock       int               `json:"stock"`
	Seller      SellerSummary     `json:"seller"`
	SoldCount   int               `json:"soldCount"`
	ViewCount   int               `json:"viewCount"`
	AvgRating   decimal.Decimal   `json:"avgRating"`
	ReviewCount int               `json:"reviewCount"`
	IsActive    bool              `json:"isActive"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// ProductListResponse página de productos con sus metadatos.
type ProductListResponse struct {
	Success     bool              `json:"success"`
	Count       int               `json:"count"`
	Total       int               `json:"total"`
	TotalPages  int               `json:"totalPages"`
	CurrentPage int               `json:"currentPage"`
	Data        []ProductResponse `json:"data"`
}
