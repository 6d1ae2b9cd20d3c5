package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/talentbridge/ats-api/internal/application/dto"
	"github.com/talentbridge/ats-api/internal/application/usecase"
)

// CandidateHandler maneja los candidatos visibles para el tenant autenticado.
type CandidateHandler struct {
	uc       *usecase.CandidateUseCase
	resumeUC *usecase.ResumeUseCase
}

// NewCandidateHandler construye el handler de candidates.
func NewCandidateHandler(uc *usecase.CandidateUseCase, resumeUC *usecase.ResumeUseCase) *CandidateHandler {
	return &CandidateHandler{uc: uc, resumeUC: resumeUC}
}

// Create godoc
// @Summary      Crear candidato (idempotente por email)
// @Tags         candidates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCandidateRequest  true  "Datos del candidato"
// @Success      201   {object}  dto.CandidateResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/v1/candidates [post]
func (h *CandidateHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCandidateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener candidato por ID
// @Tags         candidates
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del candidato"
// @Success      200  {object}  dto.CandidateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/candidates/{id} [get]
func (h *CandidateHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar candidatos con postulaciones a jobs del tenant
// @Tags         candidates
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.CandidateListResponse
// @Router       /api/v1/candidates [get]
func (h *CandidateHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetCompanyID(c), parsePage(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar perfil de candidato
// @Tags         candidates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID del candidato"
// @Param        body  body  dto.UpdateCandidateRequest  true  "Cambios"
// @Success      200   {object}  dto.CandidateResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/candidates/{id} [put]
func (h *CandidateHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCandidateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar candidato
// @Tags         candidates
// @Security     Bearer
// @Param        id  path  string  true  "ID del candidato"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/candidates/{id} [delete]
func (h *CandidateHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetCompanyID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListResumes godoc
// @Summary      Listar hojas de vida de un candidato
// @Tags         candidates
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del candidato"
// @Success      200  {object}  dto.ResumeListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/candidates/{id}/resumes [get]
func (h *CandidateHandler) ListResumes(c *fiber.Ctx) error {
	out, err := h.resumeUC.ListByCandidate(c.Context(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
