package memory

import (
	"github.com/jcampos/gestor-api/internal/domain"
	"github.com/jcampos/gestor-api/internal/domain/entity"
	"github.com/jcampos/gestor-api/internal/domain/repository"
)

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo implementação em memória de ServiceRepository.
type ServiceRepo struct {
	col *Collection[entity.Service, *entity.Service]
}

// NewServiceRepository constrói o repositório com a coleção vazia.
func NewServiceRepository() *ServiceRepo {
	return &ServiceRepo{col: NewCollection[entity.Service]()}
}

func (r *ServiceRepo) List() ([]*entity.Service, error) {
	return r.col.List(), nil
}

func (r *ServiceRepo) GetByID(id int64) (*entity.Service, error) {
	s, ok := r.col.Get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (r *ServiceRepo) Create(s *entity.Service) error {
	*s = *r.col.Insert(s)
	return nil
}

func (r *ServiceRepo) Update(id int64, apply func(*entity.Service)) (*entity.Service, error) {
	s, ok := r.col.Apply(id, apply)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (r *ServiceRepo) Delete(id int64) (bool, error) {
	return r.col.Remove(id), nil
}

func (r *ServiceRepo) Count() (int, error) {
	return r.col.Len(), nil
}
