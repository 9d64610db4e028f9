package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcherreria/taller-api/internal/domain/entity"
)

func item(nombre string, precio int64) entity.Item {
	return entity.Item{Nombre: nombre, Precio: entity.NuevoMonto(decimal.NewFromInt(precio))}
}

// ──────────────────────────────────────────────────────────────────────────────
// NuevoPresupuesto — campos derivados en la creación
// ──────────────────────────────────────────────────────────────────────────────

func TestNuevoPresupuesto_SinAnticipo(t *testing.T) {
	p := entity.NuevoPresupuesto("Juan",
		[]entity.Item{item("Caño 20x20", 100), item("Electrodo", 50)},
		decimal.NewFromInt(80), decimal.Zero)

	assert.Equal(t, "230", p.TotalFinal.String(), "total_final = materiales + mano de obra")
	assert.Equal(t, "230", p.Saldo.String(), "sin anticipo el saldo es el total")
	assert.Equal(t, entity.StatusPresupuesto, p.Status)
	assert.Equal(t, "150", p.TotalMateriales().String())
}

func TestNuevoPresupuesto_ConAnticipoInicial(t *testing.T) {
	p := entity.NuevoPresupuesto("Ana",
		[]entity.Item{item("Planchuela", 200)},
		decimal.NewFromInt(100), decimal.NewFromInt(50))

	assert.Equal(t, "300", p.TotalFinal.String())
	assert.Equal(t, "250", p.Saldo.String())
	assert.Equal(t, entity.StatusTrabajo, p.Status, "con anticipo > 0 nace como trabajo")
}

// ──────────────────────────────────────────────────────────────────────────────
// AplicarPago — transición de estado y saldo
// ──────────────────────────────────────────────────────────────────────────────

func TestAplicarPago_SecuenciaCompleta(t *testing.T) {
	p := entity.NuevoPresupuesto("Juan",
		[]entity.Item{item("Caño", 100), item("Hierro", 50)},
		decimal.NewFromInt(80), decimal.Zero)

	// Primer pago: pasa a trabajo
	p.AplicarPago(decimal.NewFromInt(100))
	assert.Equal(t, "100", p.Anticipo.String())
	assert.Equal(t, "130", p.Saldo.String())
	assert.Equal(t, entity.StatusTrabajo, p.Status)

	// Sobrepago: saldo negativo aceptado, sin recorte
	p.AplicarPago(decimal.NewFromInt(200))
	assert.Equal(t, "300", p.Anticipo.String())
	assert.Equal(t, "-70", p.Saldo.String())
	assert.Equal(t, entity.StatusTrabajo, p.Status)

	// Invariante: saldo == total_final - anticipo después de cada pago
	assert.True(t, p.Saldo.Equal(p.TotalFinal.Sub(p.Anticipo)))
}

func TestAplicarPago_MontoCero_NoTransiciona(t *testing.T) {
	p := entity.NuevoPresupuesto("Ana", []entity.Item{item("Caño", 100)}, decimal.NewFromInt(50), decimal.Zero)
	p.AplicarPago(decimal.Zero)

	assert.Equal(t, entity.StatusPresupuesto, p.Status, "pago de 0 no convierte en trabajo")
	assert.Equal(t, "150", p.Saldo.String())
}

func TestEstadoSegunAnticipo(t *testing.T) {
	assert.Equal(t, entity.StatusPresupuesto, entity.EstadoSegunAnticipo(decimal.Zero))
	assert.Equal(t, entity.StatusTrabajo, entity.EstadoSegunAnticipo(decimal.NewFromInt(1)))
	// Anticipo negativo no debería existir, pero la regla es anticipo > 0
	assert.Equal(t, entity.StatusPresupuesto, entity.EstadoSegunAnticipo(decimal.NewFromInt(-5)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Monto — coerción leniente del borde numérico
// ──────────────────────────────────────────────────────────────────────────────

func TestMonto_UnmarshalLeniente(t *testing.T) {
	cases := []struct {
		nombre string
		raw    string
		want   string
	}{
		{"número JSON", `1500`, "1500"},
		{"decimal", `99.5`, "99.5"},
		{"string numérico", `"1500"`, "1500"},
		{"string vacío", `""`, "0"},
		{"string basura", `"abc"`, "0"},
		{"null", `null`, "0"},
	}
	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			var m entity.Monto
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &m))
			assert.Equal(t, tc.want, m.String())
		})
	}
}

func TestMonto_MarshalComoNumero(t *testing.T) {
	b, err := json.Marshal(entity.NuevoMonto(decimal.NewFromInt(1500)))
	require.NoError(t, err)
	assert.Equal(t, "1500", string(b), "se guarda como número JSON, no como string")
}

func TestItem_UnmarshalPrecioBasura(t *testing.T) {
	var it entity.Item
	require.NoError(t, json.Unmarshal([]byte(`{"nombre":"Caño","precio":""}`), &it))
	assert.Equal(t, "Caño", it.Nombre)
	assert.Equal(t, "0", it.Precio.String(), "precio no numérico vale 0")
}
