package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

func TestProduct_CanBeModifiedBy(t *testing.T) {
	p := &entity.Product{SellerID: "seller-a"}

	tests := []struct {
		name string
		id   entity.Identity
		want bool
	}{
		{"dueño", entity.Identity{UserID: "seller-a", Role: entity.RoleSale}, true},
		{"otro vendedor", entity.Identity{UserID: "seller-b", Role: entity.RoleSale}, false},
		{"admin", entity.Identity{UserID: "admin-1", Role: entity.RoleAdmin}, true},
		{"usuario sin id", entity.Identity{Role: entity.RoleSale}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.CanBeModifiedBy(tt.id))
		})
	}
}

func TestValidRole(t *testing.T) {
	assert.True(t, entity.ValidRole("user"))
	assert.True(t, entity.ValidRole("sale"))
	assert.True(t, entity.ValidRole("admin"))
	assert.False(t, entity.ValidRole("bodeguero"))
	assert.False(t, entity.ValidRole(""))
}
