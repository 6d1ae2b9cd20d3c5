package usecase

import (
	"context"
	"io"

	"github.com/talentbridge/ats-api/internal/domain/repository"
)

// TxRunner ejecuta callbacks con repositorios atados a una transacción. Las
// operaciones multi-escritura (vacante + evento inicial, entrevista +
// interviewers, candidato + postulación) se confirman o revierten juntas.
type TxRunner interface {
	RunInterview(ctx context.Context, fn func(ivRepo repository.InterviewRepository) error) error
	RunJob(ctx context.Context, fn func(jobRepo repository.JobRepository) error) error
	RunApplication(ctx context.Context, fn func(
		appRepo repository.ApplicationRepository,
		candRepo repository.CandidateRepository,
	) error) error
}

// FileStore puerto de almacenamiento de archivos subidos.
type FileStore interface {
	Save(originalName string, r io.Reader) (string, error)
	Resolve(location string) (string, error)
	Remove(location string) error
}

// TextExtractor puerto de extracción de texto de documentos.
type TextExtractor interface {
	ExtractText(path string) (string, error)
}
