package http_test

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// memStore guarda productos, categorías y usuarios en memoria para probar la
// API completa sin base de datos.
type memStore struct {
	mu         sync.Mutex
	products   map[string]entity.Product
	categories map[string]entity.Category
	users      map[string]entity.User
}

func newMemStore() *memStore {
	return &memStore{
		products:   map[string]entity.Product{},
		categories: map[string]entity.Category{},
		users:      map[string]entity.User{},
	}
}

type memProducts struct{ s *memStore }
type memCategories struct{ s *memStore }
type memUsers struct{ s *memStore }

func (r memProducts) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.products {
		if other.Slug == p.Slug {
			return domain.Errorf(domain.ErrDuplicate, "ya existe un producto con ese nombre")
		}
	}
	cp := *p
	cp.CategoryIDs = append([]string(nil), p.CategoryIDs...)
	r.s.products[p.ID] = cp
	return nil
}

func (r memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	p.CategoryIDs = append([]string(nil), p.CategoryIDs...)
	return &p, nil
}

func (r memProducts) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.products[p.ID]
	if !ok {
		return domain.Errorf(domain.ErrNotFound, "producto no encontrado")
	}
	cur.Name, cur.Slug, cur.Description = p.Name, p.Slug, p.Description
	cur.Price, cur.CostPrice, cur.Stock = p.Price, p.CostPrice, p.Stock
	cur.CategoryIDs = append([]string(nil), p.CategoryIDs...)
	cur.UpdatedAt = p.UpdatedAt
	r.s.products[p.ID] = cur
	return nil
}

func (r memProducts) SetActive(_ context.Context, id string, active bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return domain.Errorf(domain.ErrNotFound, "producto no encontrado")
	}
	p.IsActive = active
	r.s.products[id] = p
	return nil
}

func (r memProducts) Search(_ context.Context, q catalog.ProductQuery) ([]*entity.Product, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var matched []entity.Product
	for _, p := range r.s.products {
		if !p.IsActive {
			continue
		}
		if q.CategoryID != "" && !contains(p.CategoryIDs, q.CategoryID) {
			continue
		}
		if q.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(q.Search)) {
			continue
		}
		if q.MinPrice != nil && p.Price.LessThan(*q.MinPrice) {
			continue
		}
		if q.MaxPrice != nil && p.Price.GreaterThan(*q.MaxPrice) {
			continue
		}
		matched = append(matched, p)
	}
	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		switch q.Sort {
		case catalog.SortPriceAsc:
			if !a.Price.Equal(b.Price) {
				return a.Price.LessThan(b.Price)
			}
		case catalog.SortPriceDesc:
			if !a.Price.Equal(b.Price) {
				return a.Price.GreaterThan(b.Price)
			}
		case catalog.SortNameAsc:
			if a.Name != b.Name {
				return a.Name < b.Name
			}
		default:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
		}
		return a.ID < b.ID
	})

	total := len(matched)
	start := min(q.Offset(), total)
	end := min(start+q.PageSize, total)
	out := make([]*entity.Product, 0, end-start)
	for i := start; i < end; i++ {
		p := matched[i]
		out = append(out, &p)
	}
	return out, total, nil
}

func (r memCategories) Create(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.categories[c.ID] = *c
	return nil
}

func (r memCategories) GetByID(_ context.Context, id string) (*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r memCategories) ListActive(_ context.Context) ([]*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.Category{}
	for _, c := range r.s.categories {
		if c.IsActive {
			c := c
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r memCategories) ListByIDs(_ context.Context, ids []string) ([]*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.Category{}
	for _, id := range ids {
		if c, ok := r.s.categories[id]; ok {
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r memCategories) LockActiveByIDs(_ context.Context, ids []string) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []string{}
	for _, id := range ids {
		if c, ok := r.s.categories[id]; ok && c.IsActive {
			out = append(out, id)
		}
	}
	return out, nil
}

func (r memCategories) SetActive(_ context.Context, id string, active bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.categories[id]
	if !ok {
		return domain.Errorf(domain.ErrNotFound, "categoría no encontrada")
	}
	c.IsActive = active
	r.s.categories[id] = c
	return nil
}

func (r memUsers) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.users {
		if other.Email == u.Email {
			return domain.Errorf(domain.ErrDuplicate, "email ya registrado")
		}
		if other.Username == u.Username {
			return domain.Errorf(domain.ErrDuplicate, "username ya registrado")
		}
	}
	r.s.users[u.ID] = *u
	return nil
}

func (r memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r memUsers) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (r memUsers) Update(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.ID]; !ok {
		return domain.Errorf(domain.ErrNotFound, "usuario no encontrado")
	}
	r.s.users[u.ID] = *u
	return nil
}

// memTx ejecuta fn sobre el mismo store, sin aislamiento.
type memTx struct{ s *memStore }

func (t memTx) RunCatalog(_ context.Context, fn func(repository.ProductRepository, repository.CategoryRepository) error) error {
	return fn(memProducts{t.s}, memCategories{t.s})
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
