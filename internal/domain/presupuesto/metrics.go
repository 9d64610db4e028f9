// Package presupuesto contiene los servicios de dominio puros del módulo:
// métricas de cartera del dashboard, filtrado del listado y la sugerencia
// de mano de obra por porcentaje.
package presupuesto

import (
	"github.com/shopspring/decimal"

	"github.com/dcherreria/taller-api/internal/domain/entity"
)

// Resumen métricas de cartera del dashboard. Los tres números parten el dinero
// recibido en "ganancia ya en mano" vs "destinado a material", y aparte lo que
// aún deben, sin contar nada dos veces: el anticipo de cada registro se aplica
// primero a materiales y solo el excedente cuenta como ganancia.
type Resumen struct {
	// GananciaEnMano: Σ max(0, anticipo − costo de materiales), todos los registros.
	GananciaEnMano decimal.Decimal
	// SaldoACobrar: Σ saldo, solo registros en estado trabajo.
	SaldoACobrar decimal.Decimal
	// MaterialPago: Σ min(anticipo, costo de materiales), todos los registros.
	MaterialPago decimal.Decimal
}

// CalcularResumen recorre la cartera completa y recalcula las tres métricas.
// Se recalcula en cada consulta (no se mantiene incrementalmente): la partición
// depende del anticipo y los items actuales, no de un campo guardado.
func CalcularResumen(list []*entity.Presupuesto) Resumen {
	r := Resumen{
		GananciaEnMano: decimal.Zero,
		SaldoACobrar:   decimal.Zero,
		MaterialPago:   decimal.Zero,
	}
	for _, p := range list {
		costoMaterial := p.TotalMateriales()

		sobrante := p.Anticipo.Sub(costoMaterial)
		if sobrante.IsNegative() {
			sobrante = decimal.Zero
		}
		r.GananciaEnMano = r.GananciaEnMano.Add(sobrante)

		pagadoMaterial := decimal.Min(p.Anticipo, costoMaterial)
		r.MaterialPago = r.MaterialPago.Add(pagadoMaterial)

		if p.Status == entity.StatusTrabajo {
			r.SaldoACobrar = r.SaldoACobrar.Add(p.Saldo)
		}
	}
	return r
}

// ManoObraSugerida calcula la mano de obra como porcentaje del total de
// materiales, redondeada a entero. Es una sugerencia de un solo uso: el campo
// queda editable después.
func ManoObraSugerida(items []entity.Item, pct int64) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Precio.Decimal)
	}
	return total.Mul(decimal.NewFromInt(pct)).Div(decimal.NewFromInt(100)).Round(0)
}
