package memory

import (
	"github.com/jcampos/gestor-api/internal/domain"
	"github.com/jcampos/gestor-api/internal/domain/entity"
	"github.com/jcampos/gestor-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementação em memória de EmployeeRepository.
type EmployeeRepo struct {
	col *Collection[entity.Employee, *entity.Employee]
}

// NewEmployeeRepository constrói o repositório com a coleção vazia.
func NewEmployeeRepository() *EmployeeRepo {
	return &EmployeeRepo{col: NewCollection[entity.Employee]()}
}

func (r *EmployeeRepo) List() ([]*entity.Employee, error) {
	return r.col.List(), nil
}

func (r *EmployeeRepo) GetByID(id int64) (*entity.Employee, error) {
	e, ok := r.col.Get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (r *EmployeeRepo) Create(e *entity.Employee) error {
	*e = *r.col.Insert(e)
	return nil
}

func (r *EmployeeRepo) Update(id int64, apply func(*entity.Employee)) (*entity.Employee, error) {
	e, ok := r.col.Apply(id, apply)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (r *EmployeeRepo) Delete(id int64) (bool, error) {
	return r.col.Remove(id), nil
}

func (r *EmployeeRepo) Count() (int, error) {
	return r.col.Len(), nil
}
