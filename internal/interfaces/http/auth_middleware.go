package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/kiranapos/pos-api/internal/application/dto"
	"github.com/kiranapos/pos-api/pkg/jwt"
)

// Locals keys para los datos del cajero autenticado en Fiber.
const (
	LocalBillerID = "biller_id"
	LocalUsername = "username"
	LocalFullName = "full_name"
)

// AuthMiddleware valida el Bearer Token JWT y extrae los datos del cajero a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		billerID, username, fullName, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalBillerID, billerID)
		c.Locals(LocalUsername, username)
		c.Locals(LocalFullName, fullName)
		return c.Next()
	}
}

// GetBillerID devuelve el BillerID del contexto (después del middleware de auth).
func GetBillerID(c *fiber.Ctx) string {
	v := c.Locals(LocalBillerID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetUsername devuelve el Username del contexto.
func GetUsername(c *fiber.Ctx) string {
	v := c.Locals(LocalUsername)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetFullName devuelve el FullName del contexto; lo usa la bitácora de gastos.
func GetFullName(c *fiber.Ctx) string {
	v := c.Locals(LocalFullName)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
