package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dcherreria/taller-api/internal/application/dto"
	"github.com/dcherreria/taller-api/internal/domain"
	"github.com/dcherreria/taller-api/internal/domain/entity"
	domainpres "github.com/dcherreria/taller-api/internal/domain/presupuesto"
	"github.com/dcherreria/taller-api/internal/domain/repository"
)

// PresupuestoUseCase casos de uso del ciclo de vida del presupuesto:
// creación, listado con filtros, detalle, registro de pagos y borrado.
type PresupuestoUseCase struct {
	repo repository.PresupuestoRepository
}

// NewPresupuestoUseCase construye el caso de uso.
func NewPresupuestoUseCase(repo repository.PresupuestoRepository) *PresupuestoUseCase {
	return &PresupuestoUseCase{repo: repo}
}

// Create valida y persiste un presupuesto nuevo con los campos derivados ya
// calculados (total_final, saldo, status). Si la escritura falla no queda nada
// persistido; el llamador conserva su estado para reintentar a mano.
func (uc *PresupuestoUseCase) Create(ctx context.Context, in dto.CrearPresupuestoRequest) (*dto.PresupuestoResponse, error) {
	if strings.TrimSpace(in.Cliente) == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, it := range in.Items {
		if strings.TrimSpace(it.Nombre) == "" || it.Precio.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}

	p := entity.NuevoPresupuesto(in.Cliente, in.Items, in.ManoObra.Decimal, in.Anticipo.Decimal)
	p.ID = uuid.New().String()
	p.CreatedAt = time.Now()

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toPresupuestoResponse(p), nil
}

// List devuelve la cartera ordenada por fecha descendente. El resumen se
// calcula sobre todos los registros; status y q filtran solo el listado.
func (uc *PresupuestoUseCase) List(ctx context.Context, status, q string) (*dto.ListaPresupuestosResponse, error) {
	all, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	resumen := domainpres.CalcularResumen(all)
	filtrados := domainpres.Filtrar(all, entity.Status(status), q)

	out := make([]*dto.PresupuestoResponse, 0, len(filtrados))
	for _, p := range filtrados {
		out = append(out, toPresupuestoResponse(p))
	}
	return &dto.ListaPresupuestosResponse{
		Resumen: dto.ResumenResponse{
			GananciaEnMano: resumen.GananciaEnMano,
			SaldoACobrar:   resumen.SaldoACobrar,
			MaterialPago:   resumen.MaterialPago,
		},
		Presupuestos: out,
	}, nil
}

// GetByID obtiene el detalle de un presupuesto.
func (uc *PresupuestoUseCase) GetByID(ctx context.Context, id string) (*dto.PresupuestoResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toPresupuestoResponse(p), nil
}

// RegistrarPago aplica un pago incremental: anticipo acumulado, saldo y status
// se recalculan y se escriben juntos en un único UPDATE parcial. Monto 0 sigue
// siendo una actualización (aporte nulo). El sobrepago deja saldo negativo y
// se acepta sin recorte. Devuelve el registro ya parcheado para que el cliente
// actualice su copia local sin re-consultar.
func (uc *PresupuestoUseCase) RegistrarPago(ctx context.Context, id string, in dto.RegistrarPagoRequest) (*dto.PresupuestoResponse, error) {
	if in.Monto.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	p.AplicarPago(in.Monto.Decimal)
	if err := uc.repo.UpdatePago(ctx, id, p.Anticipo, p.Saldo, p.Status); err != nil {
		return nil, err
	}
	return toPresupuestoResponse(p), nil
}

// Delete borra el presupuesto de forma definitiva (sin papelera ni deshacer).
func (uc *PresupuestoUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// SugerirManoObra calcula la sugerencia de mano de obra como porcentaje del
// total de materiales. Sugerencia de un solo uso; el campo sigue editable.
func (uc *PresupuestoUseCase) SugerirManoObra(in dto.SugerenciaManoObraRequest) (*dto.SugerenciaManoObraResponse, error) {
	if in.Pct <= 0 || in.Pct > 100 {
		return nil, domain.ErrInvalidInput
	}
	return &dto.SugerenciaManoObraResponse{
		ManoObra: domainpres.ManoObraSugerida(in.Items, in.Pct),
	}, nil
}

func toPresupuestoResponse(p *entity.Presupuesto) *dto.PresupuestoResponse {
	items := make([]dto.ItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, dto.ItemResponse{Nombre: it.Nombre, Precio: it.Precio.Decimal})
	}
	return &dto.PresupuestoResponse{
		ID:         p.ID,
		Cliente:    p.Cliente,
		Items:      items,
		ManoObra:   p.ManoObra,
		Anticipo:   p.Anticipo,
		TotalFinal: p.TotalFinal,
		Saldo:      p.Saldo,
		Status:     string(p.Status),
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
	}
}
