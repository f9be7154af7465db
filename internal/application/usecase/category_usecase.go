package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// CategoryUseCase administra las categorías del catálogo.
type CategoryUseCase struct {
	repo repository.CategoryRepository
	now  func() time.Time
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, now: time.Now}
}

// ListActive devuelve las categorías activas.
func (uc *CategoryUseCase) ListActive(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

// Create crea una categoría activa. El slug se deriva del nombre.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	slug := catalog.Slugify(name)
	if slug == "" {
		return nil, domain.Errorf(domain.ErrInvalidInput, "name debe contener letras o números")
	}
	now := uc.now()
	c := &entity.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Slug:        slug,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	out := toCategoryResponse(c)
	return &out, nil
}

// Deactivate desactiva una categoría. Los productos que la referencian no cambian,
// pero ya no se puede asignar a productos nuevos o editados.
func (uc *CategoryUseCase) Deactivate(ctx context.Context, id string) error {
	u, err := uuid.Parse(id)
	if err != nil {
		return domain.Errorf(domain.ErrNotFound, "categoría no encontrada")
	}
	c, err := uc.repo.GetByID(ctx, u.String())
	if err != nil {
		return err
	}
	if c == nil {
		return domain.Errorf(domain.ErrNotFound, "categoría no encontrada")
	}
	if !c.IsActive {
		return nil
	}
	return uc.repo.SetActive(ctx, c.ID, false)
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}
