package repository

import "github.com/jcampos/gestor-api/internal/domain/entity"

// ServiceRepository define o porto de armazenamento para Service.
type ServiceRepository interface {
	List() ([]*entity.Service, error)
	GetByID(id int64) (*entity.Service, error)
	Create(s *entity.Service) error
	Update(id int64, apply func(*entity.Service)) (*entity.Service, error)
	Delete(id int64) (bool, error)
	Count() (int, error)
}
