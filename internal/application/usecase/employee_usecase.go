package usecase

import (
	"github.com/jcampos/gestor-api/internal/application/dto"
	"github.com/jcampos/gestor-api/internal/application/validation"
	"github.com/jcampos/gestor-api/internal/domain"
	"github.com/jcampos/gestor-api/internal/domain/access"
	"github.com/jcampos/gestor-api/internal/domain/entity"
	"github.com/jcampos/gestor-api/internal/domain/repository"
)

// EmployeeUseCase casos de uso CRUD para funcionários. Toda mutação passa
// pelo gate de acesso com o cargo do ator; leituras não são restritas.
type EmployeeUseCase struct {
	repo     repository.EmployeeRepository
	validate *validation.Validator
}

// NewEmployeeUseCase constrói o caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository, validate *validation.Validator) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, validate: validate}
}

// Create cria um funcionário. Exige ator supervisor ou acima; negações saem
// como domain.ErrForbidden, nunca silenciosas.
func (uc *EmployeeUseCase) Create(actor access.Role, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if !access.CanPerform(actor, access.ActionCreate) {
		return nil, domain.ErrForbidden
	}
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}
	if in.Status == "" {
		in.Status = entity.StatusActive
	}
	employee := &entity.Employee{
		Name:     in.Name,
		Position: in.Position,
		Email:    in.Email,
		Phone:    in.Phone,
		Status:   in.Status,
		Role:     access.Role(in.Role),
	}
	if err := uc.repo.Create(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// GetByID obtém um funcionário pelo ID.
func (uc *EmployeeUseCase) GetByID(id int64) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// List lista todos os funcionários em ordem de inserção.
func (uc *EmployeeUseCase) List() ([]*dto.EmployeeResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEmployeeResponse(e))
	}
	return out, nil
}

// Update mescla os campos presentes. Exige ator supervisor ou acima.
func (uc *EmployeeUseCase) Update(actor access.Role, id int64, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if !access.CanPerform(actor, access.ActionEdit) {
		return nil, domain.ErrForbidden
	}
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}
	employee, err := uc.repo.Update(id, func(e *entity.Employee) {
		if in.Name != nil {
			e.Name = *in.Name
		}
		if in.Position != nil {
			e.Position = *in.Position
		}
		if in.Email != nil {
			e.Email = *in.Email
		}
		if in.Phone != nil {
			e.Phone = *in.Phone
		}
		if in.Status != nil {
			e.Status = *in.Status
		}
		if in.Role != nil {
			e.Role = access.Role(*in.Role)
		}
	})
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// Delete remove o funcionário. Exige ator gerente ou acima.
func (uc *EmployeeUseCase) Delete(actor access.Role, id int64) error {
	if !access.CanPerform(actor, access.ActionDelete) {
		return domain.ErrForbidden
	}
	ok, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Position:  e.Position,
		Email:     e.Email,
		Phone:     e.Phone,
		Status:    e.Status,
		Role:      string(e.Role),
		CreatedAt: e.CreatedAt,
	}
}
