package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// productColumns columnas de products con sus categorías en el orden guardado.
const productColumns = `p.id, p.name, p.slug, p.description, p.price, p.cost_price,
	COALESCE((SELECT array_agg(pc.category_id::text ORDER BY pc.position)
		FROM product_categories pc WHERE pc.product_id = p.id), '{}') AS category_ids,
	p.stock, p.seller_id, p.sold_count, p.view_count, p.avg_rating, p.review_count,
	p.is_active, p.created_at, p.updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	db Querier
}

// NewProductRepository construye el adaptador sobre el pool o una transacción.
func NewProductRepository(db Querier) *ProductRepo {
	return &ProductRepo{db: db}
}

// Create persiste un producto nuevo y sus categorías.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (id, name, slug, description, price, cost_price, stock, seller_id,
			sold_count, view_count, avg_rating, review_count, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.Name, p.Slug, p.Description, p.Price, p.CostPrice, p.Stock, p.SellerID,
		p.SoldCount, p.ViewCount, p.AvgRating, p.ReviewCount, p.IsActive, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Errorf(domain.ErrDuplicate, "ya existe un producto con ese nombre")
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return r.insertCategories(ctx, p.ID, p.CategoryIDs)
}

// GetByID obtiene un producto por ID, activo o no.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products p WHERE p.id = $1`
	p, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update guarda los campos editables y reemplaza las categorías.
// Vendedor, contadores e is_active no se tocan.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, slug = $3, description = $4, price = $5, cost_price = $6, stock = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		p.ID, p.Name, p.Slug, p.Description, p.Price, p.CostPrice, p.Stock, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Errorf(domain.ErrDuplicate, "ya existe un producto con ese nombre")
		}
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.Errorf(domain.ErrNotFound, "producto no encontrado")
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM product_categories WHERE product_id = $1`, p.ID); err != nil {
		return fmt.Errorf("delete product categories: %w", err)
	}
	return r.insertCategories(ctx, p.ID, p.CategoryIDs)
}

// SetActive activa o desactiva (borrado lógico) un producto.
func (r *ProductRepo) SetActive(ctx context.Context, id string, active bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE products SET is_active = $2, updated_at = NOW() WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("set product active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.Errorf(domain.ErrNotFound, "producto no encontrado")
	}
	return nil
}

// Search ejecuta la consulta del listado: un COUNT y una página con el mismo WHERE.
func (r *ProductRepo) Search(ctx context.Context, q catalog.ProductQuery) ([]*entity.Product, int, error) {
	where, args := searchFilter(q)

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products p WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}
	if total == 0 {
		return []*entity.Product{}, 0, nil
	}

	args = append(args, q.PageSize, q.Offset())
	query := fmt.Sprintf(`SELECT %s FROM products p WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		productColumns, where, orderBy(q.Sort), len(args)-1, len(args))
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Product, 0, q.PageSize)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("search products: %w", err)
	}
	return list, total, nil
}

func (r *ProductRepo) insertCategories(ctx context.Context, productID string, categoryIDs []string) error {
	if len(categoryIDs) == 0 {
		return nil
	}
	query := `
		INSERT INTO product_categories (product_id, category_id, position)
		SELECT $1, c.id::uuid, c.ord FROM unnest($2::text[]) WITH ORDINALITY AS c(id, ord)`
	if _, err := r.db.Exec(ctx, query, productID, categoryIDs); err != nil {
		return fmt.Errorf("insert product categories: %w", err)
	}
	return nil
}

// searchFilter traduce la consulta a un WHERE con parámetros posicionales.
// Solo se listan productos activos.
func searchFilter(q catalog.ProductQuery) (string, []any) {
	conds := []string{"p.is_active = TRUE"}
	var args []any
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if q.CategoryID != "" {
		add("EXISTS (SELECT 1 FROM product_categories pc WHERE pc.product_id = p.id AND pc.category_id = $%d::uuid)", q.CategoryID)
	}
	if q.Search != "" {
		add("p.name ILIKE $%d", "%"+escapeLike(q.Search)+"%")
	}
	if q.MinPrice != nil {
		add("p.price >= $%d", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		add("p.price <= $%d", *q.MaxPrice)
	}
	return strings.Join(conds, " AND "), args
}

func orderBy(s catalog.SortKey) string {
	switch s {
	case catalog.SortPriceAsc:
		return "p.price ASC, p.id ASC"
	case catalog.SortPriceDesc:
		return "p.price DESC, p.id ASC"
	case catalog.SortNameAsc:
		return "p.name ASC, p.id ASC"
	default:
		return "p.created_at DESC, p.id DESC"
	}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price, &p.CostPrice, &p.CategoryIDs,
		&p.Stock, &p.SellerID, &p.SoldCount, &p.ViewCount, &p.AvgRating, &p.ReviewCount,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
