package entity

import "github.com/jcampos/gestor-api/internal/domain/access"

// User representa uma conta de acesso ao sistema.
type User struct {
	Base
	Email        string
	PasswordHash string // hash bcrypt, nunca a senha em claro
	Name         string
	Role         access.Role
}
