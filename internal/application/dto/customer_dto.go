package dto

import "time"

// CreateCustomerRequest entrada para criar um cliente. O documento aceita
// CPF ou CNPJ, com ou sem pontuação; é canonizado para apenas dígitos antes
// de armazenar.
type CreateCustomerRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Document string `json:"document" validate:"required,cpfcnpj"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,phonebr"`
}

// UpdateCustomerRequest atualização parcial: apenas os campos presentes no
// JSON são mesclados; os demais permanecem como estão.
type UpdateCustomerRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Document *string `json:"document" validate:"omitempty,cpfcnpj"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone" validate:"omitempty,phonebr"`
}

// CustomerResponse saída de um cliente.
type CustomerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}
