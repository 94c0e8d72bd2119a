package repository

import "github.com/jcampos/gestor-api/internal/domain/entity"

// UserRepository define o porto de armazenamento para contas de acesso.
type UserRepository interface {
	// GetByEmail busca a conta pelo email; (nil, nil) se não existir.
	GetByEmail(email string) (*entity.User, error)

	// Create armazena uma nova conta; domain.ErrEmailAlreadyExists se o email
	// já estiver cadastrado.
	Create(u *entity.User) error
}
