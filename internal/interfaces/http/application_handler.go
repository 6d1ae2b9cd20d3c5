package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/talentbridge/ats-api/internal/application/dto"
	"github.com/talentbridge/ats-api/internal/application/usecase"
)

// ApplicationHandler maneja las postulaciones del tenant autenticado.
type ApplicationHandler struct {
	uc *usecase.ApplicationUseCase
}

// NewApplicationHandler construye el handler de applications.
func NewApplicationHandler(uc *usecase.ApplicationUseCase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

// Create godoc
// @Summary      Crear postulación
// @Tags         applications
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateApplicationRequest  true  "job_id, candidate_id"
// @Success      201   {object}  dto.ApplicationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/v1/applications [post]
func (h *ApplicationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateApplicationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetCompanyID(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener postulación por ID
// @Tags         applications
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la postulación"
// @Success      200  {object}  dto.ApplicationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/applications/{id} [get]
func (h *ApplicationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar postulaciones del tenant
// @Tags         applications
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.ApplicationListResponse
// @Router       /api/v1/applications [get]
func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetCompanyID(c), parsePage(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar postulación
// @Tags         applications
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID de la postulación"
// @Param        body  body  dto.UpdateApplicationRequest  true  "Cambios"
// @Success      200   {object}  dto.ApplicationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/applications/{id} [put]
func (h *ApplicationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateApplicationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Registrar cambio de estado de la postulación
// @Tags         applications
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                              true  "ID de la postulación"
// @Param        body  body  dto.UpdateApplicationStatusRequest  true  "Estado nuevo"
// @Success      200   {object}  dto.ApplicationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/v1/applications/{id}/status [post]
func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateApplicationStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateStatus(c.Context(), GetCompanyID(c), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar postulación
// @Tags         applications
// @Security     Bearer
// @Param        id  path  string  true  "ID de la postulación"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/applications/{id} [delete]
func (h *ApplicationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetCompanyID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
