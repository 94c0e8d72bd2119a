package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/jcampos/gestor-api/internal/application/usecase"
	"github.com/jcampos/gestor-api/internal/infrastructure/export"
	"github.com/jcampos/gestor-api/internal/infrastructure/pdf"
)

// ReportHandler atende exportações CSV e o relatório gerencial em PDF
// (protegido). Lê via use cases, nunca direto dos repositórios.
type ReportHandler struct {
	customers *usecase.CustomerUseCase
	employees *usecase.EmployeeUseCase
	services  *usecase.ServiceUseCase
	stats     *usecase.StatsUseCase
	pdfGen    *pdf.SummaryReportGenerator
	appName   string
}

// NewReportHandler constrói o handler.
func NewReportHandler(
	customers *usecase.CustomerUseCase,
	employees *usecase.EmployeeUseCase,
	services *usecase.ServiceUseCase,
	stats *usecase.StatsUseCase,
	pdfGen *pdf.SummaryReportGenerator,
	appName string,
) *ReportHandler {
	return &ReportHandler{
		customers: customers,
		employees: employees,
		services:  services,
		stats:     stats,
		pdfGen:    pdfGen,
		appName:   appName,
	}
}

// ExportCustomers godoc
// @Summary      Exportar clientes em CSV
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Success      200
// @Router       /api/v1/export/customers [get]
func (h *ReportHandler) ExportCustomers(c *fiber.Ctx) error {
	list, err := h.customers.List()
	if err != nil {
		return respondError(c, err)
	}
	var buf bytes.Buffer
	if err := export.WriteCustomersCSV(&buf, list); err != nil {
		return respondError(c, err)
	}
	return sendCSV(c, "customers.csv", buf.Bytes())
}

// ExportEmployees godoc
// @Summary      Exportar funcionários em CSV
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Success      200
// @Router       /api/v1/export/employees [get]
func (h *ReportHandler) ExportEmployees(c *fiber.Ctx) error {
	list, err := h.employees.List()
	if err != nil {
		return respondError(c, err)
	}
	var buf bytes.Buffer
	if err := export.WriteEmployeesCSV(&buf, list); err != nil {
		return respondError(c, err)
	}
	return sendCSV(c, "employees.csv", buf.Bytes())
}

// ExportServices godoc
// @Summary      Exportar serviços em CSV
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Success      200
// @Router       /api/v1/export/services [get]
func (h *ReportHandler) ExportServices(c *fiber.Ctx) error {
	list, err := h.services.List()
	if err != nil {
		return respondError(c, err)
	}
	var buf bytes.Buffer
	if err := export.WriteServicesCSV(&buf, list); err != nil {
		return respondError(c, err)
	}
	return sendCSV(c, "services.csv", buf.Bytes())
}

// Summary godoc
// @Summary      Relatório gerencial em PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200
// @Router       /api/v1/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	stats, err := h.stats.Compute()
	if err != nil {
		return respondError(c, err)
	}
	customers, err := h.customers.List()
	if err != nil {
		return respondError(c, err)
	}
	employees, err := h.employees.List()
	if err != nil {
		return respondError(c, err)
	}
	services, err := h.services.List()
	if err != nil {
		return respondError(c, err)
	}

	doc, err := h.pdfGen.Generate(pdf.ReportData{
		AppName:   h.appName,
		Stats:     stats,
		Customers: customers,
		Employees: employees,
		Services:  services,
	})
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="summary.pdf"`)
	return c.Send(doc)
}

func sendCSV(c *fiber.Ctx, filename string, data []byte) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
