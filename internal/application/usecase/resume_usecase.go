package usecase

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/talentbridge/ats-api/internal/application/dto"
	"github.com/talentbridge/ats-api/internal/domain"
	"github.com/talentbridge/ats-api/internal/domain/entity"
	"github.com/talentbridge/ats-api/internal/domain/repository"
)

// ResumeUseCase casos de uso de hojas de vida: payload estructurado + archivo
// subido. El acceso por tenant se hereda del candidato dueño.
type ResumeUseCase struct {
	resumeRepo    repository.ResumeRepository
	candidateRepo repository.CandidateRepository
	store         FileStore
	extractor     TextExtractor
}

// NewResumeUseCase construye el caso de uso de resumes.
func NewResumeUseCase(
	resumeRepo repository.ResumeRepository,
	candidateRepo repository.CandidateRepository,
	store FileStore,
	extractor TextExtractor,
) *ResumeUseCase {
	return &ResumeUseCase{
		resumeRepo:    resumeRepo,
		candidateRepo: candidateRepo,
		store:         store,
		extractor:     extractor,
	}
}

// Upload guarda el archivo bajo nombre UUID y crea la hoja de vida. Si el
// archivo es un PDF legible su texto se agrega al payload y el parse_status
// queda en valid; un PDF ilegible queda en invalid y una subida sin archivo
// (solo payload estructurado) queda en pending. file puede ser nil.
func (uc *ResumeUseCase) Upload(ctx context.Context, companyID, candidateID, filename string, file io.Reader, data entity.ResumeData) (*dto.ResumeResponse, error) {
	if err := uc.gate(ctx, companyID, candidateID); err != nil {
		return nil, err
	}
	resume := &entity.Resume{
		ID:          uuid.New().String(),
		CandidateID: candidateID,
		ParseStatus: entity.ResumeParsePending,
		ParsedData:  data,
		DateCreated: time.Now(),
	}
	if file != nil {
		location, err := uc.store.Save(filename, file)
		if err != nil {
			return nil, err
		}
		resume.FileLocation = location
		if strings.EqualFold(filepath.Ext(filename), ".pdf") {
			if path, err := uc.store.Resolve(location); err == nil {
				if text, err := uc.extractor.ExtractText(path); err == nil {
					resume.ParsedData.RawText = text
					resume.ParseStatus = entity.ResumeParseValid
				} else {
					resume.ParseStatus = entity.ResumeParseInvalid
				}
			}
		}
	}
	if err := uc.resumeRepo.Create(ctx, resume); err != nil {
		return nil, err
	}
	return toResumeResponse(resume), nil
}

// Get obtiene una hoja de vida cuyo candidato es visible para el tenant.
func (uc *ResumeUseCase) Get(ctx context.Context, companyID, resumeID string) (*dto.ResumeResponse, error) {
	resume, err := uc.find(ctx, companyID, resumeID)
	if err != nil {
		return nil, err
	}
	return toResumeResponse(resume), nil
}

// ListByCandidate devuelve las hojas de vida de un candidato visible.
func (uc *ResumeUseCase) ListByCandidate(ctx context.Context, companyID, candidateID string) (*dto.ResumeListResponse, error) {
	if err := uc.gate(ctx, companyID, candidateID); err != nil {
		return nil, err
	}
	resumes, err := uc.resumeRepo.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	out := &dto.ResumeListResponse{Items: make([]dto.ResumeResponse, 0, len(resumes))}
	for _, resume := range resumes {
		out.Items = append(out.Items, *toResumeResponse(resume))
	}
	return out, nil
}

// ListOwn autoservicio: hojas de vida del candidato autenticado, sin gate de
// tenant.
func (uc *ResumeUseCase) ListOwn(ctx context.Context, candidateID string) (*dto.ResumeListResponse, error) {
	resumes, err := uc.resumeRepo.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	out := &dto.ResumeListResponse{Items: make([]dto.ResumeResponse, 0, len(resumes))}
	for _, resume := range resumes {
		out.Items = append(out.Items, *toResumeResponse(resume))
	}
	return out, nil
}

// Update reemplaza el payload estructurado conservando el texto extraído del
// archivo original y su ubicación.
func (uc *ResumeUseCase) Update(ctx context.Context, companyID, resumeID string, data entity.ResumeData) (*dto.ResumeResponse, error) {
	resume, err := uc.find(ctx, companyID, resumeID)
	if err != nil {
		return nil, err
	}
	if data.RawText == "" {
		data.RawText = resume.ParsedData.RawText
	}
	resume.ParsedData = data
	if err := uc.resumeRepo.Update(ctx, resume); err != nil {
		return nil, err
	}
	return toResumeResponse(resume), nil
}

// FilePath resuelve la ruta absoluta del archivo para servir la descarga. Una
// file_location manipulada que intente salirse del directorio de uploads
// devuelve domain.ErrForbidden.
func (uc *ResumeUseCase) FilePath(ctx context.Context, companyID, resumeID string) (string, error) {
	resume, err := uc.find(ctx, companyID, resumeID)
	if err != nil {
		return "", err
	}
	if resume.FileLocation == "" {
		return "", domain.ErrNotFound
	}
	return uc.store.Resolve(resume.FileLocation)
}

// Delete elimina la hoja de vida y su archivo en disco.
func (uc *ResumeUseCase) Delete(ctx context.Context, companyID, resumeID string) error {
	resume, err := uc.find(ctx, companyID, resumeID)
	if err != nil {
		return err
	}
	if err := uc.resumeRepo.Delete(ctx, resume.ID); err != nil {
		return err
	}
	if resume.FileLocation != "" {
		if err := uc.store.Remove(resume.FileLocation); err != nil {
			return err
		}
	}
	return nil
}

func (uc *ResumeUseCase) find(ctx context.Context, companyID, resumeID string) (*entity.Resume, error) {
	resume, err := uc.resumeRepo.GetByID(ctx, resumeID)
	if err != nil {
		return nil, err
	}
	if resume == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.gate(ctx, companyID, resume.CandidateID); err != nil {
		return nil, err
	}
	return resume, nil
}

func (uc *ResumeUseCase) gate(ctx context.Context, companyID, candidateID string) error {
	ok, err := uc.candidateRepo.IsAccessible(ctx, candidateID, companyID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func toResumeResponse(r *entity.Resume) *dto.ResumeResponse {
	return &dto.ResumeResponse{
		ResumeID:     r.ID,
		CandidateID:  r.CandidateID,
		FileLocation: r.FileLocation,
		ParseStatus:  r.ParseStatus,
		ParsedData:   r.ParsedData,
		DateCreated:  r.DateCreated,
	}
}
