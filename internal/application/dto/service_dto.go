package dto

import "time"

// CreateServiceRequest entrada para criar um serviço.
type CreateServiceRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=200"`
	Description   string `json:"description" validate:"omitempty,max=2000"`
	EstimatedTime int    `json:"estimated_time" validate:"required,gt=0"`
	TimeUnit      string `json:"time_unit" validate:"omitempty,oneof=hours days weeks"`
}

// UpdateServiceRequest atualização parcial de um serviço.
type UpdateServiceRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description   *string `json:"description" validate:"omitempty,max=2000"`
	EstimatedTime *int    `json:"estimated_time" validate:"omitempty,gt=0"`
	TimeUnit      *string `json:"time_unit" validate:"omitempty,oneof=hours days weeks"`
}

// ServiceResponse saída de um serviço.
type ServiceResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	EstimatedTime int       `json:"estimated_time"`
	TimeUnit      string    `json:"time_unit"`
	CreatedAt     time.Time `json:"created_at"`
}
