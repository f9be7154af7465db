package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/pkg/config"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}

func TestSeedAdmin_CreaAdministrador(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByEmail", mock.Anything, "root@example.com").Return(nil, nil)
	var created *entity.User
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*entity.User) }).
		Return(nil)

	err := seedAdmin(context.Background(), repo, config.SeedConfig{
		AdminEmail: " Root@Example.com ", AdminPassword: "cambiar123",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, entity.RoleAdmin, created.Role)
	assert.Equal(t, "admin", created.Username)
	assert.True(t, created.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("cambiar123")))
	repo.AssertExpectations(t)
}

func TestSeedAdmin_PromueveUsuarioExistente(t *testing.T) {
	empID := "EMP-1"
	existing := &entity.User{ID: "u-1", Email: "root@example.com", Role: entity.RoleSale, EmployeeID: &empID, IsActive: true}
	repo := new(mockUserRepo)
	repo.On("GetByEmail", mock.Anything, "root@example.com").Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)

	err := seedAdmin(context.Background(), repo, config.SeedConfig{AdminEmail: "root@example.com", AdminPassword: "x"})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, existing.Role)
	assert.Nil(t, existing.EmployeeID)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSeedAdmin_YaEsAdmin(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByEmail", mock.Anything, "root@example.com").
		Return(&entity.User{Role: entity.RoleAdmin, IsActive: true}, nil)

	require.NoError(t, seedAdmin(context.Background(), repo, config.SeedConfig{AdminEmail: "root@example.com", AdminPassword: "x"}))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSeedAdmin_SinCredenciales(t *testing.T) {
	err := seedAdmin(context.Background(), new(mockUserRepo), config.SeedConfig{})
	assert.Error(t, err)
}
