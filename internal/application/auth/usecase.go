package auth

import (
	"context"
	"strings"

	"github.com/tu-usuario/punto-venta/internal/application/dto"
	"github.com/tu-usuario/punto-venta/internal/domain"
	"github.com/tu-usuario/punto-venta/internal/domain/entity"
	"github.com/tu-usuario/punto-venta/internal/domain/repository"
	"github.com/tu-usuario/punto-venta/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación y cuentas: registro del dueño, login
// y gestión de cajeros. El rol se fija al crear la cuenta y nunca cambia.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// New construye el caso de uso de auth.
func New(userRepo repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// RegisterOwner auto-registro del dueño de la tienda. Devuelve
// ErrEmailAlreadyExists si el email ya está tomado.
func (uc *UseCase) RegisterOwner(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	return uc.createUser(ctx, in.Email, in.Password, in.Name, entity.RoleOwner)
}

// CreateCashier alta de cajero, solo invocable tras pasar el gate OWNER.
func (uc *UseCase) CreateCashier(ctx context.Context, in dto.CreateCashierRequest) (*dto.UserResponse, error) {
	return uc.createUser(ctx, in.Email, in.Password, in.Name, entity.RoleCashier)
}

func (uc *UseCase) createUser(ctx context.Context, email, password, name, role string) (*dto.UserResponse, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         friendlyName(name, email),
		Role:         role,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + rol + nombre.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Actor{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		Name:   user.Name,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Role: user.Role, Name: user.Name}, nil
}

// ListCashiers cajeros más recientes primero (pantalla del dueño).
func (uc *UseCase) ListCashiers(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.userRepo.ListCashiers(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return items, nil
}

// friendlyName devuelve el nombre dado o, si viene vacío, la parte local del email.
func friendlyName(name, email string) string {
	if n := strings.TrimSpace(name); n != "" {
		return n
	}
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
