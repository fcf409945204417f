// Package pdf genera la carta responsiva de herramientas en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Carta Responsiva │ Fecha de emisión                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  COLABORADOR: Nombre + N° empleado + puesto                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Herramienta | Marca | Modelo | Serie | Valor        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  LEYENDA + línea de firma                                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
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
	"github.com/shopspring/decimal"

	"github.com/tiservices/backoffice-api/internal/application/usecase"
	"github.com/tiservices/backoffice-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.ResponsivaGenerator = (*ResponsivaGenerator)(nil)

// ResponsivaGenerator implementa usecase.ResponsivaGenerator usando Maroto v2.
type ResponsivaGenerator struct {
	empresa string
}

// NewResponsivaGenerator construye el generador. empresa aparece en el
// encabezado del documento.
func NewResponsivaGenerator(empresa string) *ResponsivaGenerator {
	return &ResponsivaGenerator{empresa: empresa}
}

// Generate genera el PDF de la carta responsiva y devuelve sus bytes.
func (g *ResponsivaGenerator) Generate(colaborador *entity.Colaborador, herramientas []*entity.Herramienta) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Carta Responsiva de Herramientas", true).
		WithAuthor(g.empresa, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.empresa))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(colaboradorRow(colaborador))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	total := decimal.Zero
	for _, h := range herramientas {
		m.AddRows(herramientaRow(h))
		total = total.Add(h.Valor)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(total))
	m.AddRows(line.NewRow(4))
	for _, r := range firmaRows(colaborador) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar responsiva: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: empresa (izq) y título + fecha de emisión (der).
func headerRow(empresa string) core.Row {
	fecha := time.Now().Format("02/01/2006")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(empresa, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("CARTA RESPONSIVA DE HERRAMIENTAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha de emisión: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// colaboradorRow: datos del colaborador que recibe el equipo.
func colaboradorRow(c *entity.Colaborador) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("COLABORADOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(c.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("N° empleado: %d   |   Puesto: %s   |   NSS: %s",
				c.NumeroEmpleado, c.Puesto, c.NSS,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de herramientas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Herramienta", 4, align.Left),
		h("Marca", 2, align.Left),
		h("Modelo", 2, align.Left),
		h("N° Serie", 2, align.Center),
		h("Valor", 2, align.Right),
	)
}

// herramientaRow: una fila por herramienta asignada.
func herramientaRow(h *entity.Herramienta) core.Row {
	return row.New(7).Add(
		col.New(4).Add(text.New(h.Nombre, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
		col.New(2).Add(text.New(h.Marca, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
		col.New(2).Add(text.New(h.Modelo, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
		col.New(2).Add(text.New(h.SerialNumber, props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(2).Add(text.New("$"+h.Valor.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
	)
}

// totalRow: valor total del equipo bajo resguardo.
func totalRow(total decimal.Decimal) core.Row {
	return row.New(8).Add(
		col.New(8),
		col.New(2).Add(text.New("Valor total:", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Color: colorPrimary,
		})),
		col.New(2).Add(text.New("$"+total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 1, Color: colorPrimary,
		})),
	)
}

// firmaRows: leyenda de resguardo y línea de firma.
func firmaRows(c *entity.Colaborador) []core.Row {
	leyenda := "Declaro haber recibido las herramientas arriba listadas en buen estado y me " +
		"comprometo a resguardarlas, usarlas únicamente para las labores encomendadas y " +
		"devolverlas cuando la empresa lo requiera."
	return []core.Row{
		row.New(14).Add(
			col.New(12).Add(text.New(leyenda, props.Text{Size: 8, Color: colorGray, Top: 1})),
		),
		row.New(18).Add(
			col.New(3),
			col.New(6).Add(
				text.New("_________________________________", props.Text{Size: 9, Align: align.Center, Top: 8}),
				text.New(c.Nombre, props.Text{Size: 8, Align: align.Center, Top: 13, Color: colorGray}),
			),
			col.New(3),
		),
	}
}
