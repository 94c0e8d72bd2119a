package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrEmailAlreadyExists = errors.New("o email já está cadastrado")
	ErrInvalidCredentials = errors.New("email ou senha incorretos")
)

// FieldViolation aponta o campo ofensor e a mensagem, para que o formulário
// possa destacá-lo.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError agrupa as violações de um payload. Nunca é fatal: o cliente
// corrige e reenvia.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return strings.Join(msgs, "; ")
}

// Add registra uma violação.
func (e *ValidationError) Add(field, message string) {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Message: message})
}

// HasViolations informa se alguma violação foi registrada.
func (e *ValidationError) HasViolations() bool {
	return len(e.Violations) > 0
}

// NewFieldError constrói um ValidationError de uma única violação.
func NewFieldError(field, message string) *ValidationError {
	return &ValidationError{Violations: []FieldViolation{{Field: field, Message: message}}}
}
