// Package pdf genera el reporte imprimible de un listado de entidades.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del listado   │  Fecha de generación        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  N° | Registro (titular + detalles)                          │
//	│  ...                                                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de registros + origen de los datos            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
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

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/ports"
)

// Verificar en tiempo de compilación que MarotoReportGenerator implementa ReportGenerator.
var _ ports.ReportGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa ports.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	source string
	now    func() time.Time
}

// NewMarotoReportGenerator construye el generador. source es la URL de la API
// que se imprime en el pie como origen de los datos.
func NewMarotoReportGenerator(source string) *MarotoReportGenerator {
	return &MarotoReportGenerator{source: source, now: time.Now}
}

// GenerateListReport genera el PDF del listado y devuelve sus bytes.
// Un listado sin registros produce un documento con el mensaje del estado.
func (g *MarotoReportGenerator) GenerateListReport(ctx context.Context, list dto.ListSnapshot) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de "+list.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(list.Title, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if len(list.Items) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New(nonEmpty(list.Message, "Sin registros."), props.Text{
				Size: 9, Top: 3, Color: colorGray, Align: align.Center,
			}),
		)))
	} else {
		m.AddRows(tableHeaderRow())
		m.AddRows(itemRows(list.Items)...)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(list.Items), g.source))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(title string, at time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(strings.ToUpper(title), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla con fondo azul.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("N°", 1, align.Center),
		h("Registro", 11, align.Left),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// itemRows: una fila por registro; la altura crece con las líneas de detalle.
func itemRows(items []dto.ListItem) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for i, it := range items {
		height := 6 + 4*float64(len(it.Details))
		body := col.New(11).Add(text.New(it.Headline, props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 1, Left: 1,
		}))
		for j, d := range it.Details {
			body.Add(text.New(d, props.Text{
				Size: 8, Top: 5.5 + 4*float64(j), Left: 2, Color: colorGray,
			}))
		}
		rows = append(rows, row.New(height).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", i+1), props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
			body,
		))
	}
	return rows
}

func footerRow(count int, source string) core.Row {
	return row.New(10).Add(
		col.New(6).Add(text.New(fmt.Sprintf("Total de registros: %d", count), props.Text{
			Style: fontstyle.Bold, Size: 8, Top: 2,
		})),
		col.New(6).Add(text.New("Origen: "+nonEmpty(source, "—"), props.Text{
			Size: 7, Align: align.Right, Top: 2, Color: colorGray,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
