package repository

import "github.com/jcampos/gestor-api/internal/domain/entity"

// EmployeeRepository define o porto de armazenamento para Employee.
// Mesmo contrato de CustomerRepository: IDs sequenciais por coleção,
// merge parcial atômico, ErrNotFound para IDs desconhecidos.
type EmployeeRepository interface {
	List() ([]*entity.Employee, error)
	GetByID(id int64) (*entity.Employee, error)
	Create(e *entity.Employee) error
	Update(id int64, apply func(*entity.Employee)) (*entity.Employee, error)
	Delete(id int64) (bool, error)
	Count() (int, error)
}
