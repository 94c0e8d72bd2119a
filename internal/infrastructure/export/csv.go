// Package export serializa as coleções para CSV, no formato consumido pelas
// planilhas de gestão. Usa encoding/csv da biblioteca padrão.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jcampos/gestor-api/internal/application/dto"
)

const timeLayout = time.RFC3339

// WriteCustomersCSV escreve a listagem de clientes com cabeçalho.
func WriteCustomersCSV(w io.Writer, list []*dto.CustomerResponse) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "name", "document", "email", "phone", "created_at"}); err != nil {
		return fmt.Errorf("export: cabeçalho de clientes: %w", err)
	}
	for _, c := range list {
		row := []string{
			strconv.FormatInt(c.ID, 10), c.Name, c.Document, c.Email, c.Phone,
			c.CreatedAt.Format(timeLayout),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: cliente %d: %w", c.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteEmployeesCSV escreve a listagem de funcionários com cabeçalho.
func WriteEmployeesCSV(w io.Writer, list []*dto.EmployeeResponse) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "name", "position", "email", "phone", "status", "role", "created_at"}); err != nil {
		return fmt.Errorf("export: cabeçalho de funcionários: %w", err)
	}
	for _, e := range list {
		row := []string{
			strconv.FormatInt(e.ID, 10), e.Name, e.Position, e.Email, e.Phone,
			e.Status, e.Role, e.CreatedAt.Format(timeLayout),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: funcionário %d: %w", e.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteServicesCSV escreve a listagem de serviços com cabeçalho.
func WriteServicesCSV(w io.Writer, list []*dto.ServiceResponse) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "name", "description", "estimated_time", "time_unit", "created_at"}); err != nil {
		return fmt.Errorf("export: cabeçalho de serviços: %w", err)
	}
	for _, s := range list {
		row := []string{
			strconv.FormatInt(s.ID, 10), s.Name, s.Description,
			strconv.Itoa(s.EstimatedTime), s.TimeUnit,
			s.CreatedAt.Format(timeLayout),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: serviço %d: %w", s.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
