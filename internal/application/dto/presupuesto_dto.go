package dto

import (
	"github.com/shopspring/decimal"

	"github.com/dcherreria/taller-api/internal/domain/entity"
)

// CrearPresupuestoRequest body para POST /api/presupuestos.
// Los montos usan entity.Monto: la entrada no numérica o vacía vale 0 (política
// de coerción del formulario, aplicada uniforme en todo borde numérico).
type CrearPresupuestoRequest struct {
	Cliente  string        `json:"cliente"`
	Items    []entity.Item `json:"items"`
	ManoObra entity.Monto  `json:"mano_obra"`
	Anticipo entity.Monto  `json:"anticipo"` // opcional; 0 si no viene
}

// RegistrarPagoRequest body para POST /api/presupuestos/:id/pagos.
// Monto 0 o vacío igual ejecuta la actualización (aporte nulo).
type RegistrarPagoRequest struct {
	Monto entity.Monto `json:"monto"`
}

// SugerenciaManoObraRequest body para POST /api/presupuestos/sugerencia-mano-obra.
// Pct se ofrece como 50 o 70 en el formulario; la sugerencia no es vinculante.
type SugerenciaManoObraRequest struct {
	Items []entity.Item `json:"items"`
	Pct   int64         `json:"pct"`
}

// SugerenciaManoObraResponse mano de obra sugerida (redondeada a entero).
type SugerenciaManoObraResponse struct {
	ManoObra decimal.Decimal `json:"mano_obra"`
}

// ItemResponse línea de material en respuestas.
type ItemResponse struct {
	Nombre string          `json:"nombre"`
	Precio decimal.Decimal `json:"precio"`
}

// PresupuestoResponse registro completo en respuestas.
type PresupuestoResponse struct {
	ID         string          `json:"id"`
	Cliente    string          `json:"cliente"`
	Items      []ItemResponse  `json:"items"`
	ManoObra   decimal.Decimal `json:"mano_obra"`
	Anticipo   decimal.Decimal `json:"anticipo"`
	TotalFinal decimal.Decimal `json:"total_final"`
	Saldo      decimal.Decimal `json:"saldo"`
	Status     string          `json:"status"`
	CreatedAt  string          `json:"created_at"`
}

// ResumenResponse métricas de cartera para el dashboard.
type ResumenResponse struct {
	GananciaEnMano decimal.Decimal `json:"ganancia_en_mano"`
	SaldoACobrar   decimal.Decimal `json:"saldo_a_cobrar"`
	MaterialPago   decimal.Decimal `json:"material_pago"`
}

// ListaPresupuestosResponse respuesta de GET /api/presupuestos: el resumen se
// calcula sobre la cartera completa; el listado viene ya filtrado por pestaña
// y búsqueda, ordenado por fecha de creación descendente.
type ListaPresupuestosResponse struct {
	Resumen      ResumenResponse        `json:"resumen"`
	Presupuestos []*PresupuestoResponse `json:"presupuestos"`
}
