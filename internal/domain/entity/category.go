package entity

import "time"

// Category agrupa productos. El catálogo solo consulta existencia y si está activa.
type Category struct {
	ID          string
	Name        string
	Slug        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
