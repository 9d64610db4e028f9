package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcherreria/taller-api/internal/application/usecase"
)

func TestDashboard_GetResumen(t *testing.T) {
	repo := &fakeRepo{}
	presupuestoUC := usecase.NewPresupuestoUseCase(repo)
	dashboardUC := usecase.NewDashboardUseCase(repo)
	ctx := context.Background()

	crear(t, presupuestoUC, reqCrear("Juan", 80, 100, 100, 50)) // trabajo: material 150, anticipo 100
	crear(t, presupuestoUC, reqCrear("Ana", 100, 200, 150))     // trabajo: material 150, anticipo 200

	out, err := dashboardUC.GetResumen(ctx)
	require.NoError(t, err)

	// Juan: ganancia 0, material 100, saldo 130 | Ana: ganancia 50, material 150, saldo 50
	assert.Equal(t, "50", out.GananciaEnMano.String())
	assert.Equal(t, "250", out.MaterialPago.String())
	assert.Equal(t, "180", out.SaldoACobrar.String())
}

func TestDashboard_FalloDeLectura(t *testing.T) {
	dashboardUC := usecase.NewDashboardUseCase(&fakeRepo{failWith: errors.New("db caída")})
	_, err := dashboardUC.GetResumen(context.Background())
	assert.Error(t, err)
}
