package memory

import (
	"github.com/jcampos/gestor-api/internal/domain"
	"github.com/jcampos/gestor-api/internal/domain/entity"
	"github.com/jcampos/gestor-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementação em memória de CustomerRepository.
type CustomerRepo struct {
	col *Collection[entity.Customer, *entity.Customer]
}

// NewCustomerRepository constrói o repositório com a coleção vazia.
func NewCustomerRepository() *CustomerRepo {
	return &CustomerRepo{col: NewCollection[entity.Customer]()}
}

// List devolve todos os clientes em ordem de inserção.
func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	return r.col.List(), nil
}

// GetByID busca um cliente pelo ID.
func (r *CustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	c, ok := r.col.Get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// Create armazena um novo cliente, atribuindo ID e CreatedAt.
func (r *CustomerRepo) Create(c *entity.Customer) error {
	*c = *r.col.Insert(c)
	return nil
}

// Update aplica o merge ao cliente armazenado.
func (r *CustomerRepo) Update(id int64, apply func(*entity.Customer)) (*entity.Customer, error) {
	c, ok := r.col.Apply(id, apply)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// Delete remove o cliente; true se existia.
func (r *CustomerRepo) Delete(id int64) (bool, error) {
	return r.col.Remove(id), nil
}

// Count devolve o total de clientes.
func (r *CustomerRepo) Count() (int, error) {
	return r.col.Len(), nil
}
