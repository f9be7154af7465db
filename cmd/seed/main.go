// seed aplica las migraciones y deja la base lista para usar: crea (o promueve)
// el usuario administrador y las categorías base del catálogo.
//
// Uso: go run ./cmd/seed
// Lee SEED_ADMIN_EMAIL, SEED_ADMIN_PASSWORD y SEED_ADMIN_USERNAME además de la
// configuración de base de datos habitual.
package main

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/catalogo-api/pkg/config"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

var baseCategories = []dto.CreateCategoryRequest{
	{Name: "Ropa", Description: "Prendas de vestir"},
	{Name: "Calzado", Description: "Zapatos y zapatillas"},
	{Name: "Accesorios", Description: "Bolsos, relojes y complementos"},
	{Name: "Hogar", Description: "Artículos para el hogar"},
	{Name: "Electrónica", Description: "Dispositivos y accesorios electrónicos"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, log.Zerolog()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	if err := seedAdmin(ctx, postgres.NewUserRepository(pool), cfg.Seed); err != nil {
		log.Fatal().Err(err).Msg("usuario administrador")
	}
	log.Info().Str("email", cfg.Seed.AdminEmail).Msg("administrador listo")

	categoryUC := usecase.NewCategoryUseCase(postgres.NewCategoryRepository(pool))
	for _, in := range baseCategories {
		_, err := categoryUC.Create(ctx, in)
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			log.Debug().Str("category", in.Name).Msg("categoría ya existe")
		case err != nil:
			log.Fatal().Err(err).Str("category", in.Name).Msg("crear categoría")
		default:
			log.Info().Str("category", in.Name).Msg("categoría creada")
		}
	}
}

// seedAdmin crea el administrador o, si el email ya existe, le asigna el rol admin.
func seedAdmin(ctx context.Context, users repository.UserRepository, cfg config.SeedConfig) error {
	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))
	if email == "" || cfg.AdminPassword == "" {
		return errors.New("SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD son requeridos")
	}

	existing, err := users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	if existing != nil {
		if existing.Role == entity.RoleAdmin && existing.IsActive {
			return nil
		}
		existing.Role = entity.RoleAdmin
		existing.EmployeeID = nil
		existing.CommissionRate = decimal.Zero
		existing.IsActive = true
		existing.UpdatedAt = now
		return users.Update(ctx, existing)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	username := cfg.AdminUsername
	if username == "" {
		username = "admin"
	}
	return users.Create(ctx, &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "Administrador",
		Role:         entity.RoleAdmin,
		IsActive:     true,
		IsVerified:   true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}
