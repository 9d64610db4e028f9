// Package pdf compone el documento imprimible del presupuesto, la réplica
// descargable que el cliente recibe por WhatsApp.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────┐
//	│  MEMBRETE: Taller + Tel/Ciudad │ Fecha       │
//	│  ─────────────────────────────────────────  │
//	│  CLIENTE                                    │
//	│  ─────────────────────────────────────────  │
//	│  Total Materiales / Total Mano de Obra      │
//	│  ─────────────────────────────────────────  │
//	│  TOTAL A PAGAR   (+ A cuenta | Saldo)       │
//	└─────────────────────────────────────────────┘
//
// Si el contenido supera una página, Maroto continúa en la siguiente: un
// presupuesto largo nunca queda recortado.
package pdf

import (
	"context"
	"fmt"
	"strings"

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

	"github.com/dcherreria/taller-api/internal/application/usecase"
	"github.com/dcherreria/taller-api/internal/domain/entity"
)

// ── Paleta ────────────────────────────────────────────────────────────────────

var (
	colorDark    = &props.Color{Red: 17, Green: 24, Blue: 39}
	colorGray    = &props.Color{Red: 120, Green: 120, Blue: 120}
	colorBlue    = &props.Color{Red: 29, Green: 78, Blue: 216}
	colorEmerald = &props.Color{Red: 5, Green: 150, Blue: 105}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ usecase.PresupuestoPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa usecase.PresupuestoPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerarPresupuestoPDF compone el documento y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerarPresupuestoPDF(
	_ context.Context,
	p *entity.Presupuesto,
	taller usecase.TallerInfo,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Presupuesto "+p.Cliente, true).
		WithAuthor(taller.Nombre, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(membreteRow(p, taller))
	m.AddRows(line.NewRow(2, props.Line{Color: colorDark, Thickness: 0.8}))
	m.AddRows(clienteRow(p))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalesRows(p)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalAPagarRow(p))
	if p.Anticipo.GreaterThan(decimal.Zero) {
		m.AddRows(anticipoRow(p))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// membreteRow: nombre del taller (izq) y fecha del presupuesto (der).
func membreteRow(p *entity.Presupuesto, taller usecase.TallerInfo) core.Row {
	contacto := taller.Telefono
	if taller.Ciudad != "" {
		contacto += " | " + taller.Ciudad
	}
	return row.New(22).Add(
		col.New(8).Add(
			text.New(strings.ToUpper(taller.Nombre), props.Text{
				Style: fontstyle.Bold, Size: 18, Color: colorDark, Top: 2,
			}),
			text.New(contacto, props.Text{
				Size: 8, Top: 13, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("PRESUPUESTO", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorGray, Top: 2,
			}),
			text.New(p.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// clienteRow: bloque del cliente.
func clienteRow(p *entity.Presupuesto) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 2,
			}),
			text.New(strings.ToUpper(p.Cliente), props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorDark, Top: 7,
			}),
		),
	)
}

// totalesRows: total de materiales y total de mano de obra.
func totalesRows(p *entity.Presupuesto) []core.Row {
	linea := func(label string, monto decimal.Decimal, color *props.Color) core.Row {
		return row.New(10).Add(
			col.New(8).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 11, Color: color, Top: 2,
			})),
			col.New(4).Add(text.New(plata(monto), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: color, Top: 2,
			})),
		)
	}
	return []core.Row{
		linea("Total Materiales:", p.TotalMateriales(), colorDark),
		linea("Total Mano de Obra:", p.ManoObra, colorBlue),
	}
}

// totalAPagarRow: el total final, destacado.
func totalAPagarRow(p *entity.Presupuesto) core.Row {
	return row.New(14).Add(
		col.New(7).Add(text.New("TOTAL A PAGAR:", props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorGray, Top: 4,
		})),
		col.New(5).Add(text.New(plata(p.TotalFinal), props.Text{
			Style: fontstyle.Bold, Size: 16, Align: align.Right, Color: colorDark, Top: 2,
		})),
	)
}

// anticipoRow: línea "A cuenta | Saldo", solo cuando hay pagos registrados.
func anticipoRow(p *entity.Presupuesto) core.Row {
	leyenda := fmt.Sprintf("A cuenta: %s   |   Saldo: %s", plata(p.Anticipo), plata(p.Saldo))
	return row.New(8).Add(
		col.New(12).Add(text.New(leyenda, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorEmerald, Top: 2,
		})),
	)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// plata formatea un monto con separador de miles: "$ 1.500".
func plata(d decimal.Decimal) string {
	s := d.Round(0).String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	out := "$ " + b.String()
	if neg {
		out = "$ -" + b.String()
	}
	return out
}
