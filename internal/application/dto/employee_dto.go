package dto

import "time"

// CreateEmployeeRequest entrada para criar um funcionário.
type CreateEmployeeRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Position string `json:"position" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,phonebr"`
	Status   string `json:"status" validate:"omitempty,oneof=active inactive"`
	Role     string `json:"role" validate:"required,oneof=funcionario tecnico supervisor coordenador gerente diretor admin"`
}

// UpdateEmployeeRequest atualização parcial de um funcionário.
type UpdateEmployeeRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Position *string `json:"position" validate:"omitempty,min=1,max=200"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone" validate:"omitempty,phonebr"`
	Status   *string `json:"status" validate:"omitempty,oneof=active inactive"`
	Role     *string `json:"role" validate:"omitempty,oneof=funcionario tecnico supervisor coordenador gerente diretor admin"`
}

// EmployeeResponse saída de um funcionário.
type EmployeeResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
