package usecase

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// CatalogTxRunner ejecuta fn dentro de una transacción de base de datos. Los
// repositorios que recibe fn comparten esa transacción; si fn devuelve error se
// hace rollback.
type CatalogTxRunner interface {
	RunCatalog(ctx context.Context, fn func(products repository.ProductRepository, categories repository.CategoryRepository) error) error
}
