package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var maxCommission = decimal.NewFromInt(100)

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	repo repository.UserRepository
	now  func() time.Time
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo, now: time.Now}
}

// GetProfile devuelve el perfil del usuario autenticado.
func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ChangeRole cambia el rol de un usuario. EmployeeID y CommissionRate solo
// aplican a vendedores; al dejar de ser "sale" se limpian.
func (uc *UserUseCase) ChangeRole(ctx context.Context, id string, in dto.ChangeRoleRequest) (*dto.UserResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.CommissionRate != nil && (in.CommissionRate.IsNegative() || in.CommissionRate.GreaterThan(maxCommission)) {
		return nil, domain.Errorf(domain.ErrInvalidInput, "commissionRate debe estar entre 0 y 100")
	}
	user, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Role = in.Role
	if in.Role == entity.RoleSale {
		if in.EmployeeID != nil {
			employeeID := strings.TrimSpace(*in.EmployeeID)
			user.EmployeeID = &employeeID
			if employeeID == "" {
				user.EmployeeID = nil
			}
		}
		if in.CommissionRate != nil {
			user.CommissionRate = *in.CommissionRate
		}
	} else {
		user.EmployeeID = nil
		user.CommissionRate = decimal.Zero
	}
	user.UpdatedAt = uc.now()

	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func (uc *UserUseCase) get(ctx context.Context, id string) (*entity.User, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.Errorf(domain.ErrNotFound, "usuario no encontrado")
	}
	user, err := uc.repo.GetByID(ctx, u.String())
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.Errorf(domain.ErrNotFound, "usuario no encontrado")
	}
	return user, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		FullName:       u.FullName,
		Phone:          u.Phone,
		Address:        u.Address,
		Role:           u.Role,
		EmployeeID:     u.EmployeeID,
		CommissionRate: u.CommissionRate,
		TotalSales:     u.TotalSales,
		TotalOrders:    u.TotalOrders,
		IsActive:       u.IsActive,
		IsVerified:     u.IsVerified,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
