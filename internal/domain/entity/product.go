package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del catálogo publicado por un vendedor.
// Slug se deriva de Name en cada guardado; SellerID no cambia después de crearse.
// La eliminación es lógica (IsActive = false).
type Product struct {
	ID          string
	Name        string
	Slug        string
	Description string
	Price       decimal.Decimal  // precio de venta, >= 0
	CostPrice   *decimal.Decimal // precio de compra (opcional, para margen)
	CategoryIDs []string         // orden tal como lo envió el vendedor
	Stock       int
	SellerID    string

	SoldCount   int
	ViewCount   int
	AvgRating   decimal.Decimal // 0..5
	ReviewCount int

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanBeModifiedBy indica si la identidad puede editar o eliminar el producto:
// el vendedor dueño o cualquier admin.
func (p *Product) CanBeModifiedBy(id Identity) bool {
	return id.Role == RoleAdmin || (id.UserID != "" && id.UserID == p.SellerID)
}
