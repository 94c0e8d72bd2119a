package usecase

import (
	"github.com/jcampos/gestor-api/internal/application/dto"
	"github.com/jcampos/gestor-api/internal/application/validation"
	"github.com/jcampos/gestor-api/internal/domain"
	"github.com/jcampos/gestor-api/internal/domain/entity"
	"github.com/jcampos/gestor-api/internal/domain/repository"
)

// ServiceUseCase casos de uso CRUD para serviços.
type ServiceUseCase struct {
	repo     repository.ServiceRepository
	validate *validation.Validator
}

// NewServiceUseCase constrói o caso de uso.
func NewServiceUseCase(repo repository.ServiceRepository, validate *validation.Validator) *ServiceUseCase {
	return &ServiceUseCase{repo: repo, validate: validate}
}

// Create cria um serviço. TimeUnit ausente assume horas.
func (uc *ServiceUseCase) Create(in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}
	if in.TimeUnit == "" {
		in.TimeUnit = entity.TimeUnitHours
	}
	service := &entity.Service{
		Name:          in.Name,
		Description:   in.Description,
		EstimatedTime: in.EstimatedTime,
		TimeUnit:      in.TimeUnit,
	}
	if err := uc.repo.Create(service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// GetByID obtém um serviço pelo ID.
func (uc *ServiceUseCase) GetByID(id int64) (*dto.ServiceResponse, error) {
	service, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// List lista todos os serviços em ordem de inserção.
func (uc *ServiceUseCase) List() ([]*dto.ServiceResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ServiceResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toServiceResponse(s))
	}
	return out, nil
}

// Update mescla os campos presentes no request.
func (uc *ServiceUseCase) Update(id int64, in dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}
	service, err := uc.repo.Update(id, func(s *entity.Service) {
		if in.Name != nil {
			s.Name = *in.Name
		}
		if in.Description != nil {
			s.Description = *in.Description
		}
		if in.EstimatedTime != nil {
			s.EstimatedTime = *in.EstimatedTime
		}
		if in.TimeUnit != nil {
			s.TimeUnit = *in.TimeUnit
		}
	})
	if err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// Delete remove o serviço; domain.ErrNotFound se o ID não existir.
func (uc *ServiceUseCase) Delete(id int64) error {
	ok, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func toServiceResponse(s *entity.Service) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		ID:            s.ID,
		Name:          s.Name,
		Description:   s.Description,
		EstimatedTime: s.EstimatedTime,
		TimeUnit:      s.TimeUnit,
		CreatedAt:     s.CreatedAt,
	}
}
