package presupuesto_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dcherreria/taller-api/internal/domain/entity"
	"github.com/dcherreria/taller-api/internal/domain/presupuesto"
)

func registro(cliente string, precios []int64, manoObra, anticipo int64) *entity.Presupuesto {
	items := make([]entity.Item, 0, len(precios))
	for _, p := range precios {
		items = append(items, entity.Item{Nombre: "Material", Precio: entity.NuevoMonto(decimal.NewFromInt(p))})
	}
	return entity.NuevoPresupuesto(cliente, items, decimal.NewFromInt(manoObra), decimal.NewFromInt(anticipo))
}

// ──────────────────────────────────────────────────────────────────────────────
// CalcularResumen
// ──────────────────────────────────────────────────────────────────────────────

func TestCalcularResumen_CarteraVacia(t *testing.T) {
	r := presupuesto.CalcularResumen(nil)
	assert.Equal(t, "0", r.GananciaEnMano.String())
	assert.Equal(t, "0", r.SaldoACobrar.String())
	assert.Equal(t, "0", r.MaterialPago.String())
}

func TestCalcularResumen_AnticipoCubreSoloMaterial(t *testing.T) {
	// Material 150, mano de obra 80, anticipo 100: todo el anticipo va a material.
	r := presupuesto.CalcularResumen([]*entity.Presupuesto{
		registro("Juan", []int64{100, 50}, 80, 100),
	})
	assert.Equal(t, "0", r.GananciaEnMano.String(), "no sobra nada después del material")
	assert.Equal(t, "100", r.MaterialPago.String(), "el anticipo se aplica primero a material")
	assert.Equal(t, "130", r.SaldoACobrar.String())
}

func TestCalcularResumen_AnticipoSuperaMaterial(t *testing.T) {
	// Material 150, anticipo 200: 150 a material, 50 ya son ganancia en mano.
	r := presupuesto.CalcularResumen([]*entity.Presupuesto{
		registro("Ana", []int64{150}, 100, 200),
	})
	assert.Equal(t, "50", r.GananciaEnMano.String())
	assert.Equal(t, "150", r.MaterialPago.String(), "material pago tope en el costo de materiales")
	assert.Equal(t, "50", r.SaldoACobrar.String())
}

func TestCalcularResumen_SaldoSoloDeTrabajos(t *testing.T) {
	// Un presupuesto sin pagos no aporta al saldo a cobrar.
	r := presupuesto.CalcularResumen([]*entity.Presupuesto{
		registro("SinPago", []int64{100}, 50, 0),
		registro("ConPago", []int64{100}, 50, 30),
	})
	assert.Equal(t, "120", r.SaldoACobrar.String(), "solo cuenta el saldo de los trabajos")
}

func TestCalcularResumen_CotasPorRegistro(t *testing.T) {
	// Propiedades: la ganancia por registro nunca es negativa ni supera el
	// anticipo; el material pago queda en [0, costo de materiales].
	casos := []*entity.Presupuesto{
		registro("A", []int64{100}, 50, 0),
		registro("B", []int64{100}, 50, 60),
		registro("C", []int64{100}, 50, 100),
		registro("D", []int64{100}, 50, 500), // sobrepago
	}
	for _, p := range casos {
		r := presupuesto.CalcularResumen([]*entity.Presupuesto{p})
		costo := p.TotalMateriales()

		assert.False(t, r.GananciaEnMano.IsNegative(), "ganancia nunca negativa (%s)", p.Cliente)
		assert.True(t, r.GananciaEnMano.LessThanOrEqual(p.Anticipo), "ganancia acotada por el anticipo (%s)", p.Cliente)
		assert.False(t, r.MaterialPago.IsNegative(), "material pago nunca negativo (%s)", p.Cliente)
		assert.True(t, r.MaterialPago.LessThanOrEqual(costo), "material pago acotado por el costo (%s)", p.Cliente)

		// Partición sin doble conteo: ganancia + material pago == anticipo
		assert.True(t, r.GananciaEnMano.Add(r.MaterialPago).Equal(p.Anticipo),
			"el anticipo se parte exacto entre ganancia y material (%s)", p.Cliente)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ManoObraSugerida
// ──────────────────────────────────────────────────────────────────────────────

func TestManoObraSugerida(t *testing.T) {
	items := []entity.Item{
		{Nombre: "Caño", Precio: entity.NuevoMonto(decimal.NewFromInt(100))},
		{Nombre: "Hierro", Precio: entity.NuevoMonto(decimal.NewFromInt(50))},
	}

	assert.Equal(t, "75", presupuesto.ManoObraSugerida(items, 50).String(), "50% de 150")
	assert.Equal(t, "105", presupuesto.ManoObraSugerida(items, 70).String(), "70% de 150")
}

func TestManoObraSugerida_RedondeaAEntero(t *testing.T) {
	items := []entity.Item{{Nombre: "Caño", Precio: entity.NuevoMonto(decimal.NewFromInt(101))}}
	// 70% de 101 = 70.7 -> 71
	assert.Equal(t, "71", presupuesto.ManoObraSugerida(items, 70).String())
}

func TestManoObraSugerida_SinItems(t *testing.T) {
	assert.Equal(t, "0", presupuesto.ManoObraSugerida(nil, 50).String())
}
