package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/talentbridge/ats-api/internal/application/dto"
	"github.com/talentbridge/ats-api/internal/domain/entity"
)

// roleLookup contrato mínimo para resolver permisos de un rol.
// Lo implementa repository.RoleRepository.
type roleLookup interface {
	GetByName(ctx context.Context, name string) (*entity.Role, error)
}

// RequireRole devuelve 403 salvo que el rol del principal esté en el conjunto
// permitido. Comparación exacta por nombre, sin herencia entre roles. Debe
// usarse DESPUÉS de AuthMiddleware.
func RequireRole(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		for _, name := range allowed {
			if role == name {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "el rol '" + role + "' no puede acceder a este recurso",
		})
	}
}

// RequirePermissions devuelve 403 salvo que el rol del principal contenga
// TODOS los permisos requeridos (chequeo de subconjunto sobre la lista del
// catálogo de roles; no hay comodines ni herencia).
func RequirePermissions(roles roleLookup, perms ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, err := roles.GetByName(c.Context(), GetRole(c))
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "PERMISSION_CHECK_FAILED",
				Message: "no se pudieron verificar los permisos, intente más tarde",
			})
		}
		if role == nil || !role.HasPermissions(perms...) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "permisos insuficientes para este recurso",
			})
		}
		return c.Next()
	}
}

// RequireCompanyPath devuelve 403 cuando la company del path no coincide con la
// del token. Protege las rutas anidadas bajo /companies/:companyId.
func RequireCompanyPath(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Params(param) != GetCompanyID(c) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "COMPANY_MISMATCH",
				Message: "la company del path no corresponde al token",
			})
		}
		return c.Next()
	}
}
