package dto

import "github.com/jcampos/gestor-api/internal/domain"

// ErrorResponse corpo de erro HTTP. Fields só aparece em erros de validação,
// para o formulário destacar os campos ofensores.
type ErrorResponse struct {
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Fields  []domain.FieldViolation `json:"fields,omitempty"`
}
