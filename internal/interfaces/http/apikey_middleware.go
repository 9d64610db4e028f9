package http

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"github.com/dcherreria/taller-api/internal/application/dto"
)

// HeaderAPIKey header donde la app móvil manda la credencial compartida.
const HeaderAPIKey = "X-API-Key"

// APIKeyMiddleware valida la credencial compartida preconfigurada del cliente.
// No hay cuentas de usuario: una sola clave para toda la app. La comparación es
// en tiempo constante. Con la clave vacía la API queda abierta (desarrollo local).
func APIKeyMiddleware(apiKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if apiKey == "" {
			return c.Next()
		}
		got := c.Get(HeaderAPIKey)
		if got == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_KEY", Message: "header " + HeaderAPIKey + " requerido"})
		}
		if subtle.ConstantTimeCompare([]byte(got), []byte(apiKey)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_KEY", Message: "credencial inválida"})
		}
		return c.Next()
	}
}
