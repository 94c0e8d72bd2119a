package repository

import "github.com/jcampos/gestor-api/internal/domain/entity"

// CustomerRepository define o porto de armazenamento para Customer.
//
// O contrato é satisfeito hoje pela implementação em memória
// (internal/infrastructure/memory); uma implementação durável pode substituí-la
// sem mudar os chamadores. Update recebe uma função de merge aplicada sob o
// mesmo escopo de exclusão mútua da escrita, porque o read-modify-write da
// atualização parcial não é decomponível.
type CustomerRepository interface {
	// List devolve todos os clientes em ordem de inserção.
	List() ([]*entity.Customer, error)

	// GetByID busca um cliente pelo ID; domain.ErrNotFound se ausente.
	GetByID(id int64) (*entity.Customer, error)

	// Create atribui o próximo ID, carimba CreatedAt e armazena.
	Create(c *entity.Customer) error

	// Update aplica o merge ao registro armazenado; ID e CreatedAt nunca são
	// alterados. Devolve o registro atualizado ou domain.ErrNotFound.
	Update(id int64, apply func(*entity.Customer)) (*entity.Customer, error)

	// Delete remove o registro. true se existia; o ID nunca é reemitido.
	Delete(id int64) (bool, error)

	// Count devolve a cardinalidade atual da coleção.
	Count() (int, error)
}
