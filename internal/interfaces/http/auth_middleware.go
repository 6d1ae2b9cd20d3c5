package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/talentbridge/ats-api/internal/application/dto"
	"github.com/talentbridge/ats-api/internal/domain/entity"
	"github.com/talentbridge/ats-api/pkg/jwt"
)

// Locals keys que deja el middleware de auth en Fiber.
const (
	LocalUserID      = "user_id"
	LocalCompanyID   = "company_id"
	LocalRole        = "role"
	LocalCandidateID = "candidate_id"
	LocalEmail       = "email"
)

// userLookup contrato mínimo para revalidar el principal del token.
// Lo implementa repository.UserRepository; la interfaz evita el import circular.
type userLookup interface {
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

// AuthMiddleware valida el Bearer Token y revalida el principal contra la DB:
// un usuario borrado, o cuyo tenant actual ya no coincide con el claim del
// token, recibe 401 aunque el token siga criptográficamente vigente.
func AuthMiddleware(jwtSecret string, users userLookup) fiber.Handler {
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
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}

		user, err := users.GetByEmail(c.Context(), claims.Subject)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "AUTH_CHECK_FAILED", Message: "no se pudo validar el token, intente más tarde"})
		}
		if user == nil || user.TenantID() != claims.CompanyID {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "STALE_TOKEN", Message: "el token ya no corresponde a un usuario vigente"})
		}

		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalCompanyID, user.TenantID())
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalEmail, user.Email)
		if user.CandidateID != nil {
			c.Locals(LocalCandidateID, *user.CandidateID)
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetCompanyID devuelve el CompanyID del contexto ("" para candidatos).
func GetCompanyID(c *fiber.Ctx) string {
	return localString(c, LocalCompanyID)
}

// GetRole devuelve el nombre del rol del principal autenticado.
func GetRole(c *fiber.Ctx) string {
	return localString(c, LocalRole)
}

// GetCandidateID devuelve el candidate_id del principal ("" si no es candidato).
func GetCandidateID(c *fiber.Ctx) string {
	return localString(c, LocalCandidateID)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
