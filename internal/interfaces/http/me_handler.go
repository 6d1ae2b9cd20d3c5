package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/talentbridge/ats-api/internal/application/dto"
	"github.com/talentbridge/ats-api/internal/application/usecase"
)

// MeHandler autoservicio del candidato autenticado: su perfil, sus
// postulaciones, sus entrevistas y sus hojas de vida.
type MeHandler struct {
	candidateUC *usecase.CandidateUseCase
	resumeUC    *usecase.ResumeUseCase
}

// NewMeHandler construye el handler de autoservicio.
func NewMeHandler(candidateUC *usecase.CandidateUseCase, resumeUC *usecase.ResumeUseCase) *MeHandler {
	return &MeHandler{candidateUC: candidateUC, resumeUC: resumeUC}
}

// GetProfile godoc
// @Summary      Perfil del candidato autenticado
// @Tags         me
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CandidateResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/me/profile [get]
func (h *MeHandler) GetProfile(c *fiber.Ctx) error {
	candidateID := GetCandidateID(c)
	if candidateID == "" {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la cuenta no está ligada a un candidato"})
	}
	out, err := h.candidateUC.GetProfile(c.Context(), candidateID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateProfile godoc
// @Summary      Actualizar el perfil propio
// @Tags         me
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateCandidateRequest  true  "Cambios"
// @Success      200   {object}  dto.CandidateResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/v1/me/profile [put]
func (h *MeHandler) UpdateProfile(c *fiber.Ctx) error {
	candidateID := GetCandidateID(c)
	if candidateID == "" {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la cuenta no está ligada a un candidato"})
	}
	var in dto.UpdateCandidateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.candidateUC.UpdateProfile(c.Context(), candidateID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListApplications godoc
// @Summary      Postulaciones del candidato autenticado
// @Tags         me
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ApplicationResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/me/applications [get]
func (h *MeHandler) ListApplications(c *fiber.Ctx) error {
	candidateID := GetCandidateID(c)
	if candidateID == "" {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la cuenta no está ligada a un candidato"})
	}
	out, err := h.candidateUC.ListOwnApplications(c.Context(), candidateID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListInterviews godoc
// @Summary      Entrevistas del candidato autenticado
// @Tags         me
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.InterviewResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/me/interviews [get]
func (h *MeHandler) ListInterviews(c *fiber.Ctx) error {
	candidateID := GetCandidateID(c)
	if candidateID == "" {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la cuenta no está ligada a un candidato"})
	}
	out, err := h.candidateUC.ListOwnInterviews(c.Context(), candidateID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListResumes godoc
// @Summary      Hojas de vida del candidato autenticado
// @Tags         me
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ResumeListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/me/resumes [get]
func (h *MeHandler) ListResumes(c *fiber.Ctx) error {
	candidateID := GetCandidateID(c)
	if candidateID == "" {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la cuenta no está ligada a un candidato"})
	}
	out, err := h.resumeUC.ListOwn(c.Context(), candidateID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
