package entity

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Status estado del registro: presupuesto (sin pagos) o trabajo (con al menos un pago).
type Status string

const (
	StatusPresupuesto Status = "presupuesto"
	StatusTrabajo     Status = "trabajo"
)

// Monto decimal tolerante a entradas sueltas del formulario: acepta número JSON,
// string numérico, string vacío o null. Lo que no se pueda interpretar vale 0.
// Es la política de coerción del sistema, no un error.
type Monto struct {
	decimal.Decimal
}

// NuevoMonto envuelve un decimal en un Monto.
func NuevoMonto(d decimal.Decimal) Monto { return Monto{Decimal: d} }

// UnmarshalJSON implementa la coerción leniente a 0.
func (m *Monto) UnmarshalJSON(data []byte) error {
	m.Decimal = decimalLeniente(data)
	return nil
}

// MarshalJSON serializa como número JSON (sin comillas), apto para la columna jsonb.
func (m Monto) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.String()), nil
}

// decimalLeniente interpreta un valor JSON crudo como decimal; devuelve 0 si no es numérico.
func decimalLeniente(raw []byte) decimal.Decimal {
	s := string(bytes.TrimSpace(raw))
	if s == "" || s == "null" {
		return decimal.Zero
	}
	// String numérico tipo "1500" o "" (input de formulario)
	if s[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return decimal.Zero
		}
		d, err := decimal.NewFromString(inner)
		if err != nil {
			return decimal.Zero
		}
		return d
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Item línea de material dentro de un presupuesto.
type Item struct {
	Nombre string `json:"nombre"`
	Precio Monto  `json:"precio"`
}

// Presupuesto es la única entidad persistida: un presupuesto que pasa a trabajo
// cuando recibe su primer pago. total_final, saldo y status se guardan
// desnormalizados y se recalculan en cada escritura que toca anticipo.
type Presupuesto struct {
	ID         string
	Cliente    string
	Items      []Item
	ManoObra   decimal.Decimal
	Anticipo   decimal.Decimal
	TotalFinal decimal.Decimal
	Saldo      decimal.Decimal
	Status     Status
	CreatedAt  time.Time
}

// NuevoPresupuesto construye el registro con todos los campos derivados calculados:
// total_final = materiales + mano de obra (fijo desde la creación), saldo = total − anticipo,
// status según el anticipo inicial.
func NuevoPresupuesto(cliente string, items []Item, manoObra, anticipo decimal.Decimal) *Presupuesto {
	p := &Presupuesto{
		Cliente:  cliente,
		Items:    items,
		ManoObra: manoObra,
		Anticipo: anticipo,
	}
	p.TotalFinal = p.TotalMateriales().Add(manoObra)
	p.Saldo = p.TotalFinal.Sub(anticipo)
	p.Status = EstadoSegunAnticipo(anticipo)
	return p
}

// TotalMateriales suma los precios de los items. Las entradas inválidas ya
// valen 0 por la coerción de Monto.
func (p *Presupuesto) TotalMateriales() decimal.Decimal {
	total := decimal.Zero
	for _, it := range p.Items {
		total = total.Add(it.Precio.Decimal)
	}
	return total
}

// AplicarPago acumula un pago y recalcula saldo y status en conjunto.
// El saldo puede quedar negativo (sobrepago aceptado, sin recorte).
func (p *Presupuesto) AplicarPago(monto decimal.Decimal) {
	p.Anticipo = p.Anticipo.Add(monto)
	p.Saldo = p.TotalFinal.Sub(p.Anticipo)
	p.Status = EstadoSegunAnticipo(p.Anticipo)
}

// EstadoSegunAnticipo: trabajo si y solo si anticipo > 0.
func EstadoSegunAnticipo(anticipo decimal.Decimal) Status {
	if anticipo.GreaterThan(decimal.Zero) {
		return StatusTrabajo
	}
	return StatusPresupuesto
}
