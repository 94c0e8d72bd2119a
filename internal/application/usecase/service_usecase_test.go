package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcampos/gestor-api/internal/application/dto"
	"github.com/jcampos/gestor-api/internal/application/usecase"
	"github.com/jcampos/gestor-api/internal/application/validation"
	"github.com/jcampos/gestor-api/internal/domain"
	"github.com/jcampos/gestor-api/internal/domain/entity"
	"github.com/jcampos/gestor-api/internal/infrastructure/memory"
)

func newServiceUC() *usecase.ServiceUseCase {
	return usecase.NewServiceUseCase(memory.NewServiceRepository(), validation.New())
}

func TestServiceCreate_UnidadePadraoHoras(t *testing.T) {
	uc := newServiceUC()

	out, err := uc.Create(dto.CreateServiceRequest{
		Name:          "Instalação elétrica",
		Description:   "Instalação residencial completa",
		EstimatedTime: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TimeUnitHours, out.TimeUnit)
}

func TestServiceCreate_EstimativaDeveSerPositiva(t *testing.T) {
	uc := newServiceUC()

	for _, est := range []int{0, -2} {
		_, err := uc.Create(dto.CreateServiceRequest{
			Name:          "Manutenção",
			EstimatedTime: est,
		})
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr, "estimativa %d deve ser rejeitada", est)
	}
}

func TestServiceCreate_UnidadeForaDoEnum(t *testing.T) {
	uc := newServiceUC()

	_, err := uc.Create(dto.CreateServiceRequest{
		Name:          "Manutenção",
		EstimatedTime: 1,
		TimeUnit:      "months",
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "time_unit", verr.Violations[0].Field)
}

func TestServiceUpdate_MergeParcial(t *testing.T) {
	uc := newServiceUC()
	created, err := uc.Create(dto.CreateServiceRequest{
		Name:          "Pintura",
		Description:   "Pintura interna",
		EstimatedTime: 2,
		TimeUnit:      entity.TimeUnitDays,
	})
	require.NoError(t, err)

	est := 5
	out, err := uc.Update(created.ID, dto.UpdateServiceRequest{EstimatedTime: &est})
	require.NoError(t, err)

	assert.Equal(t, 5, out.EstimatedTime)
	assert.Equal(t, created.Name, out.Name)
	assert.Equal(t, created.Description, out.Description)
	assert.Equal(t, created.TimeUnit, out.TimeUnit)
}

func TestServiceDelete_Semantica(t *testing.T) {
	uc := newServiceUC()
	created, err := uc.Create(dto.CreateServiceRequest{Name: "Limpeza", EstimatedTime: 1})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))
	assert.True(t, errors.Is(uc.Delete(created.ID), domain.ErrNotFound))
}
