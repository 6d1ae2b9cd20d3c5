package http

import (
	"encoding/json"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/talentbridge/ats-api/internal/application/dto"
	"github.com/talentbridge/ats-api/internal/application/usecase"
	"github.com/talentbridge/ats-api/internal/domain/entity"
)

// ResumeHandler maneja hojas de vida: payload estructurado + archivo multipart.
type ResumeHandler struct {
	uc *usecase.ResumeUseCase
}

// NewResumeHandler construye el handler de resumes.
func NewResumeHandler(uc *usecase.ResumeUseCase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

// resumeUpload es el campo JSON del multipart (resume_data).
type resumeUpload struct {
	CandidateID string            `json:"candidate_id"`
	Data        entity.ResumeData `json:"data"`
}

// Create godoc
// @Summary      Subir hoja de vida (multipart: resume_data + file)
// @Tags         resumes
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        resume_data  formData  string  true   "JSON con candidate_id y payload"
// @Param        file         formData  file    false  "Archivo PDF"
// @Success      201  {object}  dto.ResumeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/v1/resumes [post]
func (h *ResumeHandler) Create(c *fiber.Ctx) error {
	raw := c.FormValue("resume_data")
	if raw == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "resume_data es requerido"})
	}
	var in resumeUpload
	if err := json.Unmarshal([]byte(raw), &in); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "resume_data inválido"})
	}
	if in.CandidateID == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "candidate_id es requerido"})
	}

	filename := ""
	var file io.Reader
	if fh, err := c.FormFile("file"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo leer el archivo"})
		}
		defer f.Close()
		filename = fh.Filename
		file = f
	}

	out, err := h.uc.Upload(c.Context(), GetCompanyID(c), in.CandidateID, filename, file, in.Data)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener hoja de vida por ID
// @Tags         resumes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la hoja de vida"
// @Success      200  {object}  dto.ResumeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/resumes/{id} [get]
func (h *ResumeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Download godoc
// @Summary      Descargar el archivo original de la hoja de vida
// @Tags         resumes
// @Security     Bearer
// @Produce      octet-stream
// @Param        id  path  string  true  "ID de la hoja de vida"
// @Success      200
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/resumes/{id}/download [get]
func (h *ResumeHandler) Download(c *fiber.Ctx) error {
	path, err := h.uc.FilePath(c.Context(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/octet-stream")
	return c.SendFile(path)
}

// Update godoc
// @Summary      Reemplazar payload de la hoja de vida
// @Tags         resumes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "ID de la hoja de vida"
// @Param        body  body  entity.ResumeData  true  "Payload nuevo"
// @Success      200   {object}  dto.ResumeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/resumes/{id} [put]
func (h *ResumeHandler) Update(c *fiber.Ctx) error {
	var data entity.ResumeData
	if err := c.BodyParser(&data); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), GetCompanyID(c), c.Params("id"), data)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar hoja de vida y su archivo
// @Tags         resumes
// @Security     Bearer
// @Param        id  path  string  true  "ID de la hoja de vida"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/resumes/{id} [delete]
func (h *ResumeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetCompanyID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
