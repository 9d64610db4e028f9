package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/dcherreria/taller-api/internal/domain/entity"
)

// PresupuestoRepository define el puerto de persistencia para Presupuesto.
// GetByID devuelve (nil, nil) cuando no existe el registro.
type PresupuestoRepository interface {
	Create(ctx context.Context, p *entity.Presupuesto) error
	GetByID(ctx context.Context, id string) (*entity.Presupuesto, error)
	ListAll(ctx context.Context) ([]*entity.Presupuesto, error)
	// UpdatePago escribe anticipo, saldo y status en un único UPDATE parcial.
	UpdatePago(ctx context.Context, id string, anticipo, saldo decimal.Decimal, status entity.Status) error
	Delete(ctx context.Context, id string) error
}
