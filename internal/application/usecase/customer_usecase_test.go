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
	"github.com/jcampos/gestor-api/internal/infrastructure/memory"
	"github.com/jcampos/gestor-api/pkg/brdoc"
)

func newCustomerUC() *usecase.CustomerUseCase {
	return usecase.NewCustomerUseCase(memory.NewCustomerRepository(), validation.New())
}

func strPtr(s string) *string { return &s }

func validCustomer() dto.CreateCustomerRequest {
	return dto.CreateCustomerRequest{
		Name:     "Maria Souza",
		Document: "111.444.777-35",
		Email:    "maria@example.com",
		Phone:    "(11) 99999-0000",
	}
}

func TestCustomerCreate_CanonizaDocumento(t *testing.T) {
	uc := newCustomerUC()

	out, err := uc.Create(validCustomer())
	require.NoError(t, err)

	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, "11144477735", out.Document, "documento deve ser armazenado só com dígitos")
	assert.True(t, brdoc.IsValidDocument(out.Document), "forma canônica deve revalidar")
	assert.False(t, out.CreatedAt.IsZero())
}

func TestCustomerCreate_DocumentoInvalido(t *testing.T) {
	uc := newCustomerUC()

	in := validCustomer()
	in.Document = "111.444.777-36" // DV perturbado

	_, err := uc.Create(in)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Violations, 1)
	assert.Equal(t, "document", verr.Violations[0].Field)
}

func TestCustomerCreate_AceitaCNPJ(t *testing.T) {
	uc := newCustomerUC()

	in := validCustomer()
	in.Document = "11.222.333/0001-81"

	out, err := uc.Create(in)
	require.NoError(t, err)
	assert.Equal(t, "11222333000181", out.Document)
}

func TestCustomerCreate_CamposObrigatorios(t *testing.T) {
	uc := newCustomerUC()

	_, err := uc.Create(dto.CreateCustomerRequest{})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	// name, document, email e phone ofensores, todos reportados de uma vez.
	assert.Len(t, verr.Violations, 4)
}

func TestCustomerCreate_TelefoneCurto(t *testing.T) {
	uc := newCustomerUC()

	in := validCustomer()
	in.Phone = "999-0000"

	_, err := uc.Create(in)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "phone", verr.Violations[0].Field)
}

func TestCustomerUpdate_MergeParcial(t *testing.T) {
	uc := newCustomerUC()
	created, err := uc.Create(validCustomer())
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateCustomerRequest{
		Phone: strPtr("21988887777"),
	})
	require.NoError(t, err)

	assert.Equal(t, "21988887777", out.Phone)
	assert.Equal(t, created.Name, out.Name)
	assert.Equal(t, created.Document, out.Document)
	assert.Equal(t, created.Email, out.Email)
	assert.Equal(t, created.CreatedAt, out.CreatedAt)
}

func TestCustomerUpdate_DocumentoInvalidoNaoTocaORegistro(t *testing.T) {
	uc := newCustomerUC()
	created, err := uc.Create(validCustomer())
	require.NoError(t, err)

	_, err = uc.Update(created.ID, dto.UpdateCustomerRequest{
		Document: strPtr("123"),
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)

	// O registro armazenado permanece com o documento original.
	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "11144477735", got.Document)
}

func TestCustomerUpdate_IDInexistente(t *testing.T) {
	uc := newCustomerUC()
	_, err := uc.Update(99, dto.UpdateCustomerRequest{Name: strPtr("X")})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestCustomerDelete_Semantica(t *testing.T) {
	uc := newCustomerUC()
	created, err := uc.Create(validCustomer())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))

	_, err = uc.GetByID(created.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	assert.True(t, errors.Is(uc.Delete(created.ID), domain.ErrNotFound))
	assert.True(t, errors.Is(uc.Delete(12345), domain.ErrNotFound))
}

func TestCustomerList_OrdemDeCadastro(t *testing.T) {
	uc := newCustomerUC()

	a, err := uc.Create(validCustomer())
	require.NoError(t, err)

	second := validCustomer()
	second.Name = "João Lima"
	second.Document = "11222333000181"
	b, err := uc.Create(second)
	require.NoError(t, err)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, a.ID, list[0].ID)
	assert.Equal(t, b.ID, list[1].ID)
}

func TestCustomerCreate_DocumentoDuplicadoPermitido(t *testing.T) {
	// Unicidade de documento não é imposta: dois clientes podem compartilhar
	// o mesmo CPF (intenção de negócio em aberto, mantida como está).
	uc := newCustomerUC()

	_, err := uc.Create(validCustomer())
	require.NoError(t, err)
	_, err = uc.Create(validCustomer())
	assert.NoError(t, err)
}
