package usecase

import (
	"github.com/jcampos/gestor-api/internal/application/dto"
	"github.com/jcampos/gestor-api/internal/domain/repository"
)

// StatsUseCase visão derivada somente-leitura: cardinalidade de cada coleção
// no instante da chamada, sem cache e sem efeito colateral.
type StatsUseCase struct {
	customers repository.CustomerRepository
	employees repository.EmployeeRepository
	services  repository.ServiceRepository
}

// NewStatsUseCase constrói o caso de uso.
func NewStatsUseCase(
	customers repository.CustomerRepository,
	employees repository.EmployeeRepository,
	services repository.ServiceRepository,
) *StatsUseCase {
	return &StatsUseCase{customers: customers, employees: employees, services: services}
}

// Compute devolve as contagens atuais de clientes, funcionários e serviços.
func (uc *StatsUseCase) Compute() (*dto.StatsResponse, error) {
	customers, err := uc.customers.Count()
	if err != nil {
		return nil, err
	}
	employees, err := uc.employees.Count()
	if err != nil {
		return nil, err
	}
	services, err := uc.services.Count()
	if err != nil {
		return nil, err
	}
	return &dto.StatsResponse{
		Customers: customers,
		Employees: employees,
		Services:  services,
	}, nil
}
