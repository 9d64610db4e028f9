package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dcherreria/taller-api/internal/application/dto"
	"github.com/dcherreria/taller-api/internal/application/usecase"
	"github.com/dcherreria/taller-api/internal/domain"
	domainpres "github.com/dcherreria/taller-api/internal/domain/presupuesto"
)

// PresupuestoHandler maneja las peticiones HTTP del ciclo de vida del presupuesto.
type PresupuestoHandler struct {
	uc    *usecase.PresupuestoUseCase
	pdfUC *usecase.PDFUseCase
}

// NewPresupuestoHandler construye el handler.
func NewPresupuestoHandler(uc *usecase.PresupuestoUseCase, pdfUC *usecase.PDFUseCase) *PresupuestoHandler {
	return &PresupuestoHandler{uc: uc, pdfUC: pdfUC}
}

// List lista la cartera con resumen financiero.
// GET /api/presupuestos?status=trabajo&q=garcia
func (h *PresupuestoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("status"), c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "LOAD_FAILED", Message: "no se pudo cargar el listado"})
	}
	return c.JSON(out)
}

// Create crea un presupuesto nuevo con sus campos derivados.
// POST /api/presupuestos
func (h *PresupuestoHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearPresupuestoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cliente y al menos un item con nombre y precio no negativo son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al guardar el presupuesto"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene el detalle de un presupuesto.
// GET /api/presupuestos/:id
func (h *PresupuestoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "presupuesto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "LOAD_FAILED", Message: "no se pudo cargar el presupuesto"})
	}
	return c.JSON(out)
}

// RegistrarPago aplica un pago acumulativo y devuelve el registro parcheado.
// POST /api/presupuestos/:id/pagos
func (h *PresupuestoHandler) RegistrarPago(c *fiber.Ctx) error {
	var in dto.RegistrarPagoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegistrarPago(c.Context(), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el monto no puede ser negativo"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "presupuesto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al registrar el pago"})
	}
	return c.JSON(out)
}

// Delete borra el presupuesto. Es definitivo: no hay papelera ni deshacer; la
// confirmación es responsabilidad de la app.
// DELETE /api/presupuestos/:id
func (h *PresupuestoHandler) Delete(c *fiber.Ctx) error {
	err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "presupuesto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al borrar el presupuesto"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SugerirManoObra calcula la sugerencia de mano de obra (50% o 70% del material).
// POST /api/presupuestos/sugerencia-mano-obra
func (h *PresupuestoHandler) SugerirManoObra(c *fiber.Ctx) error {
	var in dto.SugerenciaManoObraRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SugerirManoObra(in)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "pct debe estar entre 1 y 100"})
	}
	return c.JSON(out)
}

// DescargarPDF genera y descarga el documento imprimible del presupuesto.
// GET /api/presupuestos/:id/pdf
func (h *PresupuestoHandler) DescargarPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdfUC.DescargarPresupuestoPDF(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "presupuesto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al generar el PDF"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// MaterialesSugeridosHandler devuelve el catálogo fijo de materiales frecuentes.
// GET /api/materiales/sugeridos
func MaterialesSugeridosHandler(c *fiber.Ctx) error {
	return c.JSON(domainpres.MaterialesSugeridos)
}
