// Package pdf gera o relatório gerencial em PDF com Maroto v2.
//
// Layout da página A4:
//
//	┌──────────────────────────────────────────────┐
//	│ HEADER: nome da empresa + data de emissão    │
//	│ ──────────────────────────────────────────── │
//	│ TOTAIS: clientes | funcionários | serviços   │
//	│ ──────────────────────────────────────────── │
//	│ TABELA: clientes (nome, documento, contato)  │
//	│ TABELA: funcionários (nome, cargo, status)   │
//	│ TABELA: serviços (nome, estimativa)          │
//	└──────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jcampos/gestor-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// SummaryReportGenerator gera o relatório gerencial usando Maroto v2.
type SummaryReportGenerator struct{}

// NewSummaryReportGenerator constrói o gerador.
func NewSummaryReportGenerator() *SummaryReportGenerator { return &SummaryReportGenerator{} }

// ReportData dados agregados do relatório.
type ReportData struct {
	AppName   string
	Stats     *dto.StatsResponse
	Customers []*dto.CustomerResponse
	Employees []*dto.EmployeeResponse
	Services  []*dto.ServiceResponse
}

// Generate gera o PDF e devolve seus bytes.
func (g *SummaryReportGenerator) Generate(data ReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório Gerencial", true).
		WithAuthor(data.AppName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data.AppName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(totalsRow(data.Stats))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitleRow("Clientes"))
	m.AddRows(tableHeaderRow("Nome", "Documento", "Email", "Telefone"))
	for _, c := range data.Customers {
		m.AddRows(tableRow(c.Name, c.Document, c.Email, c.Phone))
	}

	m.AddRows(sectionTitleRow("Funcionários"))
	m.AddRows(tableHeaderRow("Nome", "Cargo", "Nível", "Status"))
	for _, e := range data.Employees {
		m.AddRows(tableRow(e.Name, e.Position, e.Role, e.Status))
	}

	m.AddRows(sectionTitleRow("Serviços"))
	m.AddRows(tableHeaderRow("Nome", "Descrição", "Estimativa", "Unidade"))
	for _, s := range data.Services {
		m.AddRows(tableRow(s.Name, s.Description, strconv.Itoa(s.EstimatedTime), s.TimeUnit))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nome da empresa (esq) e data de emissão (dir).
func headerRow(appName string) core.Row {
	emitted := time.Now().Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(8).Add(
			text.New(appName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Relatório Gerencial", props.Text{Size: 9, Top: 8, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Emitido em", props.Text{Size: 8, Align: align.Right, Color: colorGray}),
			text.New(emitted, props.Text{Size: 9, Top: 4, Align: align.Right}),
		),
	)
}

// totalsRow: contagens das três coleções lado a lado.
func totalsRow(stats *dto.StatsResponse) core.Row {
	return row.New(12).Add(
		totalCol("Clientes", stats.Customers),
		totalCol("Funcionários", stats.Employees),
		totalCol("Serviços", stats.Services),
	)
}

func totalCol(label string, count int) core.Col {
	return col.New(4).Add(
		text.New(label, props.Text{Size: 8, Align: align.Center, Color: colorGray}),
		text.New(strconv.Itoa(count), props.Text{
			Style: fontstyle.Bold, Size: 14, Top: 4, Align: align.Center, Color: colorPrimary,
		}),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 11, Top: 3, Color: colorPrimary}),
		),
	)
}

func tableHeaderRow(headers ...string) core.Row {
	cols := make([]core.Col, 0, len(headers))
	for _, h := range headers {
		cols = append(cols, col.New(3).Add(
			text.New(h, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray}),
		))
	}
	return row.New(6).Add(cols...)
}

func tableRow(values ...string) core.Row {
	cols := make([]core.Col, 0, len(values))
	for _, v := range values {
		cols = append(cols, col.New(3).Add(text.New(v, props.Text{Size: 8})))
	}
	return row.New(5).Add(cols...)
}
