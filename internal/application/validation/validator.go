// Package validation aplica as tags `validate` dos DTOs antes que qualquer
// draft chegue ao repositório, devolvendo um domain.ValidationError
// estruturado em vez de exceção.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/jcampos/gestor-api/internal/domain"
	"github.com/jcampos/gestor-api/pkg/brdoc"
)

// Validator envolve go-playground/validator com os predicados próprios do
// domínio (cpfcnpj, phonebr) registrados.
type Validator struct {
	v *validator.Validate
}

// New constrói o validador. Os nomes reportados nas violações seguem a tag
// json do campo, que é o nome que o formulário conhece.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// cpfcnpj: CPF ou CNPJ com dígitos verificadores corretos.
	_ = v.RegisterValidation("cpfcnpj", func(fl validator.FieldLevel) bool {
		return brdoc.IsValidDocument(fl.Field().String())
	})

	// phonebr: ao menos 10 dígitos, pontuação livre.
	_ = v.RegisterValidation("phonebr", func(fl validator.FieldLevel) bool {
		digits := 0
		for _, r := range fl.Field().String() {
			if unicode.IsDigit(r) {
				digits++
			}
		}
		return digits >= 10
	})

	return &Validator{v: v}
}

// Struct valida o DTO. Violações viram *domain.ValidationError com uma entrada
// por campo ofensor; qualquer outro erro do validador é repassado como está.
func (va *Validator) Struct(s any) error {
	err := va.v.Struct(s)
	if err == nil {
		return nil
	}

	var ferrs validator.ValidationErrors
	if !errors.As(err, &ferrs) {
		return err
	}

	out := &domain.ValidationError{}
	for _, fe := range ferrs {
		out.Add(fe.Field(), messageFor(fe))
	}
	return out
}

// messageFor traduz a tag violada em mensagem para o usuário.
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "email":
		return "email inválido"
	case "cpfcnpj":
		return "CPF ou CNPJ inválido"
	case "phonebr":
		return "telefone deve ter ao menos 10 dígitos"
	case "oneof":
		return "valor deve ser um de: " + fe.Param()
	case "gt":
		return "deve ser maior que " + fe.Param()
	case "min":
		return "tamanho mínimo: " + fe.Param()
	case "max":
		return "tamanho máximo: " + fe.Param()
	default:
		return fmt.Sprintf("falhou na regra %q", fe.Tag())
	}
}
