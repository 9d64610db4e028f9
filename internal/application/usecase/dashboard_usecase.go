package usecase

import (
	"context"
	"fmt"

	"github.com/dcherreria/taller-api/internal/application/dto"
	domainpres "github.com/dcherreria/taller-api/internal/domain/presupuesto"
	"github.com/dcherreria/taller-api/internal/domain/repository"
)

// DashboardUseCase arma el resumen financiero de la cartera.
//
// Las tres métricas se recalculan en cada consulta a partir de los registros
// actuales; no hay acumuladores guardados.
type DashboardUseCase struct {
	repo repository.PresupuestoRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.PresupuestoRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// GetResumen devuelve ganancia en mano, saldo a cobrar y material pago.
func (uc *DashboardUseCase) GetResumen(ctx context.Context) (*dto.ResumenResponse, error) {
	all, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: listar cartera: %w", err)
	}
	r := domainpres.CalcularResumen(all)
	return &dto.ResumenResponse{
		GananciaEnMano: r.GananciaEnMano,
		SaldoACobrar:   r.SaldoACobrar,
		MaterialPago:   r.MaterialPago,
	}, nil
}
