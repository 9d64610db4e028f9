package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dcherreria/taller-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PresupuestoUC *usecase.PresupuestoUseCase
	DashboardUC   *usecase.DashboardUseCase
	PDFUC         *usecase.PDFUseCase
	APIKey        string
}

// Router registra las rutas de la API. Todo /api exige la credencial compartida.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", APIKeyMiddleware(deps.APIKey))

	// Presupuestos
	presupuestos := api.Group("/presupuestos")
	h := NewPresupuestoHandler(deps.PresupuestoUC, deps.PDFUC)
	presupuestos.Get("/", h.List)
	presupuestos.Post("/", h.Create)
	presupuestos.Post("/sugerencia-mano-obra", h.SugerirManoObra)
	presupuestos.Get("/:id", h.GetByID)
	presupuestos.Delete("/:id", h.Delete)
	presupuestos.Post("/:id/pagos", h.RegistrarPago)
	presupuestos.Get("/:id/pdf", h.DescargarPDF)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/resumen", dashboardHandler.GetResumen)

	// Catálogo de materiales del formulario de carga
	materiales := api.Group("/materiales")
	materiales.Get("/sugeridos", MaterialesSugeridosHandler)
}
