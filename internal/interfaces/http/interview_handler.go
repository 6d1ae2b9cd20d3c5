package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/talentbridge/ats-api/internal/application/dto"
	"github.com/talentbridge/ats-api/internal/application/usecase"
)

// InterviewHandler maneja entrevistas y evaluaciones del tenant autenticado.
type InterviewHandler struct {
	uc *usecase.InterviewUseCase
}

// NewInterviewHandler construye el handler de interviews.
func NewInterviewHandler(uc *usecase.InterviewUseCase) *InterviewHandler {
	return &InterviewHandler{uc: uc}
}

// Create godoc
// @Summary      Agendar entrevista para una postulación
// @Tags         interviews
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID de la postulación"
// @Param        body  body  dto.CreateInterviewRequest  true  "Datos de la entrevista"
// @Success      201   {object}  dto.InterviewResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/v1/applications/{id}/interviews [post]
func (h *InterviewHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInterviewRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.ApplicationID = c.Params("id")
	out, err := h.uc.Create(c.Context(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener entrevista por ID
// @Tags         interviews
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la entrevista"
// @Success      200  {object}  dto.InterviewResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/interviews/{id} [get]
func (h *InterviewHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateEvaluation godoc
// @Summary      Registrar evaluación de una entrevista
// @Tags         interviews
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID de la entrevista"
// @Param        body  body  dto.CreateEvaluationRequest  true  "interviewer_id, rating, feedback"
// @Success      201   {object}  dto.EvaluationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/v1/interviews/{id}/evaluations [post]
func (h *InterviewHandler) CreateEvaluation(c *fiber.Ctx) error {
	var in dto.CreateEvaluationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateEvaluation(c.Context(), GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
