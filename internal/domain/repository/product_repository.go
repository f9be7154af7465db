package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// Update guarda los campos editables y reemplaza las categorías del producto.
	Update(ctx context.Context, product *entity.Product) error
	SetActive(ctx context.Context, id string, active bool) error
	// Search aplica filtros, orden y paginación sobre productos activos y devuelve
	// además el total de coincidencias.
	Search(ctx context.Context, q catalog.ProductQuery) ([]*entity.Product, int, error)
}
