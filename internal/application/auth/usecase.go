// Package auth implementa registro, login e emissão de JWT para as contas de
// acesso do sistema.
package auth

import (
	"strconv"

	"golang.org/x/crypto/bcrypt"

	"github.com/jcampos/gestor-api/internal/application/dto"
	"github.com/jcampos/gestor-api/internal/application/validation"
	"github.com/jcampos/gestor-api/internal/domain"
	"github.com/jcampos/gestor-api/internal/domain/access"
	"github.com/jcampos/gestor-api/internal/domain/entity"
	"github.com/jcampos/gestor-api/internal/domain/repository"
	"github.com/jcampos/gestor-api/pkg/jwt"
)

// JWTConfig parâmetros de emissão de token.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação.
type AuthUseCase struct {
	users    repository.UserRepository
	validate *validation.Validator
	cfg      JWTConfig
}

// NewAuthUseCase constrói o caso de uso.
func NewAuthUseCase(users repository.UserRepository, validate *validation.Validator, cfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, validate: validate, cfg: cfg}
}

// Register cria uma conta. Cargo ausente assume funcionario, o nível mais
// baixo da hierarquia.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}
	if in.Role == "" {
		in.Role = string(access.RoleFuncionario)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         access.Role(in.Role),
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login valida as credenciais e emite o token com o cargo embutido.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}

	user, err := uc.users.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.Generate(
		uc.cfg.Secret,
		strconv.FormatInt(user.ID, 10),
		user.Email,
		string(user.Role),
		uc.cfg.Issuer,
		uc.cfg.ExpMinutes,
	)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

// Bootstrap semeia a conta administradora quando configurada. Sem efeito se o
// email já existir ou se a configuração estiver vazia.
func (uc *AuthUseCase) Bootstrap(email, password, name string) error {
	if email == "" || password == "" {
		return nil
	}
	existing, err := uc.users.GetByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.users.Create(&entity.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         access.RoleAdmin,
	})
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}
