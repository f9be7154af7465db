package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo de productos.
type ProductUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	users      repository.UserRepository
	tx         CatalogTxRunner
	now        func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository, categories repository.CategoryRepository, users repository.UserRepository, tx CatalogTxRunner) *ProductUseCase {
	return &ProductUseCase{
		products:   products,
		categories: categories,
		users:      users,
		tx:         tx,
		now:        time.Now,
	}
}

// List lista productos activos con filtros, orden y paginación. Las relaciones
// van sin resolver (solo ids).
func (uc *ProductUseCase) List(ctx context.Context, params dto.ProductQueryParams) (*dto.ProductListResponse, error) {
	q := catalog.ParseProductQuery(catalog.RawQuery{
		Category: params.Category,
		Search:   params.Search,
		MinPrice: params.MinPrice,
		MaxPrice: params.MaxPrice,
		Sort:     params.Sort,
		Page:     params.Page,
		Limit:    params.Limit,
	})
	out := &dto.ProductListResponse{
		Success:     true,
		CurrentPage: q.Page,
		Data:        []dto.ProductResponse{},
	}
	if !q.CategoryMatchable() {
		return out, nil
	}

	list, total, err := uc.products.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		out.Data = append(out.Data, toProductResponse(p, nil, nil))
	}
	out.Count = len(out.Data)
	out.Total = total
	out.TotalPages = catalog.TotalPages(total, q.PageSize)
	return out, nil
}

// GetByID obtiene un producto (activo o no) con categorías y vendedor resueltos.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.resolve(ctx, p)
}

// Create crea un producto. El vendedor es siempre quien crea; cualquier seller
// enviado en el cuerpo se ignora.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest, creator entity.Identity) (*dto.ProductResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	name, slug, err := nameAndSlug(in.Name)
	if err != nil {
		return nil, err
	}
	if err := checkPrices(in.Price, in.CostPrice); err != nil {
		return nil, err
	}
	ids, invalid := catalog.NormalizeIDs(in.Categories)

	now := uc.now()
	p := &entity.Product{
		ID:          uuid.New().String(),
		Name:        name,
		Slug:        slug,
		Description: in.Description,
		Price:       *in.Price,
		CostPrice:   in.CostPrice,
		CategoryIDs: ids,
		Stock:       in.Stock,
		SellerID:    creator.UserID,
		AvgRating:   decimal.Zero,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err = uc.tx.RunCatalog(ctx, func(products repository.ProductRepository, categories repository.CategoryRepository) error {
		if err := checkCategories(ctx, categories, ids, invalid); err != nil {
			return err
		}
		return products.Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return uc.resolve(ctx, p)
}

// Update aplica los campos presentes en in. Solo el vendedor dueño o un admin
// pueden modificar el producto; el vendedor no cambia nunca.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest, caller entity.Identity) (*dto.ProductResponse, error) {
	p, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.CanBeModifiedBy(caller) {
		return nil, domain.Errorf(domain.ErrForbidden, "no tiene permiso para modificar este producto")
	}
	in.Seller = nil
	if err := dto.Validate(in); err != nil {
		return nil, err
	}

	if in.Name != nil {
		if p.Name, p.Slug, err = nameAndSlug(*in.Name); err != nil {
			return nil, err
		}
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil || in.CostPrice != nil {
		price := in.Price
		if price == nil {
			price = &p.Price
		}
		if err := checkPrices(price, in.CostPrice); err != nil {
			return nil, err
		}
		p.Price = *price
		if in.CostPrice != nil {
			p.CostPrice = in.CostPrice
		}
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	var ids []string
	invalid := 0
	if in.Categories != nil {
		ids, invalid = catalog.NormalizeIDs(*in.Categories)
		p.CategoryIDs = ids
	}
	p.UpdatedAt = uc.now()

	err = uc.tx.RunCatalog(ctx, func(products repository.ProductRepository, categories repository.CategoryRepository) error {
		if in.Categories != nil {
			if err := checkCategories(ctx, categories, ids, invalid); err != nil {
				return err
			}
		}
		return products.Update(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return uc.resolve(ctx, p)
}

// Delete desactiva el producto (borrado lógico). Borrar un producto ya inactivo
// no es error.
func (uc *ProductUseCase) Delete(ctx context.Context, id string, caller entity.Identity) error {
	p, err := uc.load(ctx, id)
	if err != nil {
		return err
	}
	if !p.CanBeModifiedBy(caller) {
		return domain.Errorf(domain.ErrForbidden, "no tiene permiso para eliminar este producto")
	}
	if !p.IsActive {
		return nil
	}
	return uc.products.SetActive(ctx, p.ID, false)
}

func (uc *ProductUseCase) load(ctx context.Context, id string) (*entity.Product, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.Errorf(domain.ErrNotFound, "producto no encontrado")
	}
	p, err := uc.products.GetByID(ctx, u.String())
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.Errorf(domain.ErrNotFound, "producto no encontrado")
	}
	return p, nil
}

// resolve completa las categorías y el vendedor del producto.
func (uc *ProductUseCase) resolve(ctx context.Context, p *entity.Product) (*dto.ProductResponse, error) {
	cats := map[string]*entity.Category{}
	if len(p.CategoryIDs) > 0 {
		list, err := uc.categories.ListByIDs(ctx, p.CategoryIDs)
		if err != nil {
			return nil, err
		}
		for _, c := range list {
			cats[c.ID] = c
		}
	}
	seller, err := uc.users.GetByID(ctx, p.SellerID)
	if err != nil {
		return nil, err
	}
	out := toProductResponse(p, cats, seller)
	return &out, nil
}

func nameAndSlug(raw string) (name, slug string, err error) {
	name = strings.TrimSpace(raw)
	if name == "" {
		return "", "", domain.Errorf(domain.ErrInvalidInput, "name es requerido")
	}
	slug = catalog.Slugify(name)
	if slug == "" {
		return "", "", domain.Errorf(domain.ErrInvalidInput, "name debe contener letras o números")
	}
	return name, slug, nil
}

// maxPrice es el primer valor que no cabe en NUMERIC(12,2).
var maxPrice = decimal.New(1, 10)

func checkPrices(price, cost *decimal.Decimal) error {
	if price == nil {
		return domain.Errorf(domain.ErrInvalidInput, "price es requerido")
	}
	if err := checkAmount("price", *price); err != nil {
		return err
	}
	if cost != nil {
		return checkAmount("costPrice", *cost)
	}
	return nil
}

// checkAmount exige un importe que se guarde tal cual: no negativo, menor que
// maxPrice y con a lo sumo dos decimales.
func checkAmount(field string, v decimal.Decimal) error {
	switch {
	case v.IsNegative():
		return domain.Errorf(domain.ErrInvalidInput, "%s no puede ser negativo", field)
	case v.GreaterThanOrEqual(maxPrice):
		return domain.Errorf(domain.ErrInvalidInput, "%s debe ser menor que %s", field, maxPrice.String())
	case !v.Equal(v.Truncate(2)):
		return domain.Errorf(domain.ErrInvalidInput, "%s admite como máximo 2 decimales", field)
	}
	return nil
}

// checkCategories exige que todas las categorías referenciadas existan y estén
// activas. El mensaje indica cuántas fallan, no cuáles.
func checkCategories(ctx context.Context, categories repository.CategoryRepository, ids []string, invalid int) error {
	mismatches := invalid
	if len(ids) > 0 {
		active, err := categories.LockActiveByIDs(ctx, ids)
		if err != nil {
			return err
		}
		mismatches += len(ids) - len(active)
	}
	if mismatches > 0 {
		return domain.Errorf(domain.ErrInvalidInput, "%d categoría(s) inválida(s) o inactiva(s)", mismatches)
	}
	return nil
}

func toProductResponse(p *entity.Product, cats map[string]*entity.Category, seller *entity.User) dto.ProductResponse {
	out := dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Price:       p.Price,
		CostPrice:   p.CostPrice,
		Categories:  make([]dto.CategorySummary, 0, len(p.CategoryIDs)),
		Stock:       p.Stock,
		Seller:      dto.SellerSummary{ID: p.SellerID},
		SoldCount:   p.SoldCount,
		ViewCount:   p.ViewCount,
		AvgRating:   p.AvgRating,
		ReviewCount: p.ReviewCount,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	for _, id := range p.CategoryIDs {
		s := dto.CategorySummary{ID: id}
		if c, ok := cats[id]; ok {
			s.Name, s.Slug = c.Name, c.Slug
		}
		out.Categories = append(out.Categories, s)
	}
	if seller != nil {
		out.Seller.Username = seller.Username
		out.Seller.FullName = seller.FullName
		out.Seller.Email = seller.Email
	}
	return out
}
