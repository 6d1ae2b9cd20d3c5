package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentbridge/ats-api/internal/application/dto"
	"github.com/talentbridge/ats-api/internal/application/usecase"
	"github.com/talentbridge/ats-api/internal/domain"
	"github.com/talentbridge/ats-api/internal/domain/entity"
)

func newApplicationFixture() (*usecase.ApplicationUseCase, *fakeApplicationRepo, *fakeJobRepo, *fakeCandidateRepo) {
	jobs := newFakeJobRepo()
	candidates := newFakeCandidateRepo()
	apps := newFakeApplicationRepo(jobs)
	tx := &fakeTx{jobs: jobs, candidates: candidates, apps: apps}
	return usecase.NewApplicationUseCase(apps, jobs, candidates, tx), apps, jobs, candidates
}

// Crear una postulación registra el evento inicial applied.
func TestApplicationCreate_EventoInicialApplied(t *testing.T) {
	uc, apps, jobs, candidates := newApplicationFixture()
	jobs.jobs["job-1"] = &entity.Job{ID: "job-1", CompanyID: "company-1"}
	candidates.candidates["cand-1"] = &entity.Candidate{ID: "cand-1", Email: "ana@mail.com"}

	out, err := uc.Create(context.Background(), "company-1", "user-1", dto.CreateApplicationRequest{
		JobID:       "job-1",
		CandidateID: "cand-1",
		Source:      "referral",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ApplicationStatusApplied, out.Status)
	require.Len(t, out.StatusHistory, 1)
	assert.Equal(t, "user-1", out.StatusHistory[0].ChangedByUserID)
	assert.Len(t, apps.events[out.ApplicationID], 1)
}

// Postulación y evento inicial son una sola unidad: si el evento no se puede
// persistir, la postulación tampoco queda escrita.
func TestApplicationCreate_EventoFallaNoPersiste(t *testing.T) {
	uc, apps, jobs, candidates := newApplicationFixture()
	jobs.jobs["job-1"] = &entity.Job{ID: "job-1", CompanyID: "company-1"}
	candidates.candidates["cand-1"] = &entity.Candidate{ID: "cand-1", Email: "ana@mail.com"}
	apps.appendErr = errors.New("insert application status event: connection reset")

	_, err := uc.Create(context.Background(), "company-1", "user-1", dto.CreateApplicationRequest{
		JobID:       "job-1",
		CandidateID: "cand-1",
	})
	require.Error(t, err)
	assert.Empty(t, apps.apps, "la fila de la postulación no debe quedar escrita")
}

// Postularse a un job de otra company es ErrNotFound: el job ajeno no existe
// para el tenant actuante.
func TestApplicationCreate_JobDeOtraCompany(t *testing.T) {
	uc, _, jobs, candidates := newApplicationFixture()
	jobs.jobs["job-1"] = &entity.Job{ID: "job-1", CompanyID: "company-1"}
	candidates.candidates["cand-1"] = &entity.Candidate{ID: "cand-1", Email: "ana@mail.com"}

	_, err := uc.Create(context.Background(), "company-2", "user-1", dto.CreateApplicationRequest{
		JobID:       "job-1",
		CandidateID: "cand-1",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// job_id y candidate_id son obligatorios.
func TestApplicationCreate_CamposObligatorios(t *testing.T) {
	uc, _, _, _ := newApplicationFixture()

	_, err := uc.Create(context.Background(), "company-1", "user-1", dto.CreateApplicationRequest{JobID: "job-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Mover la postulación a un job requiere que el nuevo job pertenezca al tenant.
func TestApplicationUpdate_MoverAJobAjeno(t *testing.T) {
	uc, apps, jobs, _ := newApplicationFixture()
	jobs.jobs["job-1"] = &entity.Job{ID: "job-1", CompanyID: "company-1"}
	jobs.jobs["job-ajeno"] = &entity.Job{ID: "job-ajeno", CompanyID: "company-2"}
	apps.apps["app-1"] = &entity.Application{ID: "app-1", JobID: "job-1", CandidateID: "cand-1"}

	otherJob := "job-ajeno"
	_, err := uc.Update(context.Background(), "company-1", "app-1", dto.UpdateApplicationRequest{JobID: &otherJob})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "job-1", apps.apps["app-1"].JobID, "la postulación no debe moverse")
}

// Un estado desconocido es entrada inválida.
func TestApplicationUpdateStatus_EstadoInvalido(t *testing.T) {
	uc, apps, jobs, _ := newApplicationFixture()
	jobs.jobs["job-1"] = &entity.Job{ID: "job-1", CompanyID: "company-1"}
	apps.apps["app-1"] = &entity.Application{ID: "app-1", JobID: "job-1", CandidateID: "cand-1"}

	_, err := uc.UpdateStatus(context.Background(), "company-1", "app-1", "user-1",
		dto.UpdateApplicationStatusRequest{Status: "ghosted"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Cambiar el estado agrega un evento; el anterior sigue en el historial.
func TestApplicationUpdateStatus_AgregaEvento(t *testing.T) {
	uc, _, jobs, candidates := newApplicationFixture()
	jobs.jobs["job-1"] = &entity.Job{ID: "job-1", CompanyID: "company-1"}
	candidates.candidates["cand-1"] = &entity.Candidate{ID: "cand-1", Email: "ana@mail.com"}

	created, err := uc.Create(context.Background(), "company-1", "user-1", dto.CreateApplicationRequest{
		JobID:       "job-1",
		CandidateID: "cand-1",
	})
	require.NoError(t, err)

	out, err := uc.UpdateStatus(context.Background(), "company-1", created.ApplicationID, "user-1",
		dto.UpdateApplicationStatusRequest{Status: entity.ApplicationStatusScreening, Reason: "pasa filtro"})
	require.NoError(t, err)

	assert.Equal(t, entity.ApplicationStatusScreening, out.Status)
	require.Len(t, out.StatusHistory, 2)
	assert.Equal(t, entity.ApplicationStatusApplied, out.StatusHistory[0].Status)
}

// Una postulación a un job de otra company no se puede leer ni borrar.
func TestApplicationDelete_TenantAjeno(t *testing.T) {
	uc, apps, jobs, _ := newApplicationFixture()
	jobs.jobs["job-1"] = &entity.Job{ID: "job-1", CompanyID: "company-1"}
	apps.apps["app-1"] = &entity.Application{ID: "app-1", JobID: "job-1", CandidateID: "cand-1"}

	err := uc.Delete(context.Background(), "company-2", "app-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, apps.apps, "app-1")
}
