package entity

import "github.com/jcampos/gestor-api/internal/domain/access"

// Status possíveis de um funcionário.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Employee representa um funcionário da empresa.
type Employee struct {
	Base
	Name     string
	Position string // cargo descritivo, texto livre
	Email    string
	Phone    string
	Status   string      // active | inactive
	Role     access.Role // nível hierárquico, ver internal/domain/access
}
