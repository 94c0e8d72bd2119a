package usecase

import (
	"github.com/jcampos/gestor-api/internal/application/dto"
	"github.com/jcampos/gestor-api/internal/application/validation"
	"github.com/jcampos/gestor-api/internal/domain"
	"github.com/jcampos/gestor-api/internal/domain/entity"
	"github.com/jcampos/gestor-api/internal/domain/repository"
	"github.com/jcampos/gestor-api/pkg/brdoc"
)

// CustomerUseCase casos de uso CRUD para clientes. Toda escrita passa pelo
// validador de documento; o repositório só recebe drafts bem-formados.
type CustomerUseCase struct {
	repo     repository.CustomerRepository
	validate *validation.Validator
}

// NewCustomerUseCase constrói o caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, validate *validation.Validator) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, validate: validate}
}

// Create cria um novo cliente. O documento é armazenado na forma canônica
// (apenas dígitos), de modo que sempre revalida como verdadeiro.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}
	customer := &entity.Customer{
		Name:     in.Name,
		Document: brdoc.Clean(in.Document),
		Email:    in.Email,
		Phone:    in.Phone,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtém um cliente pelo ID.
func (uc *CustomerUseCase) GetByID(id int64) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List lista todos os clientes em ordem de inserção.
func (uc *CustomerUseCase) List() ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Update mescla apenas os campos presentes no request; os demais ficam como
// estão. ID e CreatedAt nunca mudam.
func (uc *CustomerUseCase) Update(id int64, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}
	customer, err := uc.repo.Update(id, func(c *entity.Customer) {
		if in.Name != nil {
			c.Name = *in.Name
		}
		if in.Document != nil {
			c.Document = brdoc.Clean(*in.Document)
		}
		if in.Email != nil {
			c.Email = *in.Email
		}
		if in.Phone != nil {
			c.Phone = *in.Phone
		}
	})
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete remove o cliente; domain.ErrNotFound se o ID não existir.
func (uc *CustomerUseCase) Delete(id int64) error {
	ok, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Document:  c.Document,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}
