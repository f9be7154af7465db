package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	ListActive(ctx context.Context) ([]*entity.Category, error)
	// ListByIDs devuelve las categorías existentes entre ids, activas o no.
	ListByIDs(ctx context.Context, ids []string) ([]*entity.Category, error)
	// LockActiveByIDs devuelve los ids activos entre ids y los bloquea en modo
	// compartido hasta el fin de la transacción actual.
	LockActiveByIDs(ctx context.Context, ids []string) ([]string, error)
	SetActive(ctx context.Context, id string, active bool) error
}
