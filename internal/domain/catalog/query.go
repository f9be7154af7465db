// Package catalog contiene las reglas puras del catálogo: el objeto de consulta
// de productos (filtros, orden y paginación) y la generación de slugs.
package catalog

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Paginación por defecto del listado público.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
	// MaxPage acota la página para que el offset no desborde.
	MaxPage = math.MaxInt32
)

// SortKey orden del listado de productos.
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortNameAsc   SortKey = "name_asc"
)

// ParseSort traduce el parámetro sort. Valores desconocidos o vacíos -> SortNewest.
func ParseSort(s string) SortKey {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "price", "price_asc", "+price":
		return SortPriceAsc
	case "-price", "price_desc":
		return SortPriceDesc
	case "name", "name_asc", "+name":
		return SortNameAsc
	default:
		return SortNewest
	}
}

// RawQuery parámetros del listado tal como llegan en la URL.
type RawQuery struct {
	Category string
	Search   string
	MinPrice string
	MaxPrice string
	Sort     string
	Page     string
	Limit    string
}

// ProductQuery consulta tipada y ya validada del listado de productos.
// Solo se listan productos activos; ese filtro lo aplica siempre el repositorio.
type ProductQuery struct {
	CategoryID string // "" = todas
	Search     string // subcadena del nombre, sin distinguir mayúsculas
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Sort       SortKey
	Page       int
	PageSize   int
}

// ParseProductQuery valida los parámetros una sola vez. Nunca falla:
// página o límite inválidos toman el valor por defecto y los precios que no son
// números (o son negativos) se ignoran.
func ParseProductQuery(raw RawQuery) ProductQuery {
	q := ProductQuery{
		CategoryID: strings.TrimSpace(raw.Category),
		Search:     strings.TrimSpace(raw.Search),
		MinPrice:   parsePrice(raw.MinPrice),
		MaxPrice:   parsePrice(raw.MaxPrice),
		Sort:       ParseSort(raw.Sort),
		Page:       parsePositive(raw.Page, DefaultPage),
		PageSize:   parsePositive(raw.Limit, DefaultPageSize),
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	if q.Page > MaxPage {
		q.Page = MaxPage
	}
	return q
}

// Offset filas a saltar para la página pedida.
func (q ProductQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// CategoryMatchable indica si el filtro de categoría puede coincidir con algún
// producto. Un id que no es UUID nunca coincide.
func (q ProductQuery) CategoryMatchable() bool {
	if q.CategoryID == "" {
		return true
	}
	_, err := uuid.Parse(q.CategoryID)
	return err == nil
}

// TotalPages ceil(total/pageSize).
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// NormalizeIDs deja los ids de categoría en forma canónica, sin duplicados y en
// el orden recibido. invalid cuenta los ids que no son UUID.
func NormalizeIDs(ids []string) (valid []string, invalid int) {
	seen := make(map[string]struct{}, len(ids))
	valid = make([]string, 0, len(ids))
	for _, raw := range ids {
		u, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			invalid++
			continue
		}
		id := u.String()
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		valid = append(valid, id)
	}
	return valid, invalid
}

func parsePrice(s string) *decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return nil
	}
	return &d
}

func parsePositive(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return def
	}
	return n
}
