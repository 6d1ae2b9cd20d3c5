package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentbridge/ats-api/internal/application/dto"
	"github.com/talentbridge/ats-api/internal/application/usecase"
	"github.com/talentbridge/ats-api/internal/domain"
	"github.com/talentbridge/ats-api/internal/domain/entity"
)

func newInterviewFixture() (*usecase.InterviewUseCase, *fakeInterviewRepo, *fakeApplicationRepo, *fakeJobRepo, *fakeUserRepo) {
	jobs := newFakeJobRepo()
	apps := newFakeApplicationRepo(jobs)
	interviews := newFakeInterviewRepo(apps)
	users := newFakeUserRepo(&entity.User{ID: "user-1", Email: "recruiter@acme.com"})
	tx := &fakeTx{jobs: jobs, apps: apps, interviews: interviews}
	uc := usecase.NewInterviewUseCase(interviews, apps, users, tx)
	return uc, interviews, apps, jobs, users
}

func seedApplication(jobs *fakeJobRepo, apps *fakeApplicationRepo, companyID string) {
	jobs.jobs["job-1"] = &entity.Job{ID: "job-1", CompanyID: companyID}
	apps.apps["app-1"] = &entity.Application{ID: "app-1", JobID: "job-1", CandidateID: "cand-1"}
}

func validInterviewRequest() dto.CreateInterviewRequest {
	return dto.CreateInterviewRequest{
		ApplicationID:      "app-1",
		ScheduledAt:        time.Now().Add(48 * time.Hour),
		DurationMinutes:    60,
		InterviewType:      entity.InterviewTypeVideo,
		InterviewerUserIDs: []string{"user-1"},
	}
}

// Crear agenda la entrevista con sus entrevistadores.
func TestInterviewCreate_ConEntrevistadores(t *testing.T) {
	uc, interviews, apps, jobs, _ := newInterviewFixture()
	seedApplication(jobs, apps, "company-1")

	out, err := uc.Create(context.Background(), "company-1", validInterviewRequest())
	require.NoError(t, err)

	require.Len(t, out.Interviewers, 1)
	assert.Equal(t, "user-1", out.Interviewers[0].UserID)

	stored := interviews.interviews[out.InterviewID]
	require.NotNil(t, stored)
	assert.Len(t, stored.Interviewers, 1)
}

// Sin entrevistadores la entrevista es inválida.
func TestInterviewCreate_SinEntrevistadores(t *testing.T) {
	uc, _, apps, jobs, _ := newInterviewFixture()
	seedApplication(jobs, apps, "company-1")

	in := validInterviewRequest()
	in.InterviewerUserIDs = nil
	_, err := uc.Create(context.Background(), "company-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un tipo de entrevista desconocido es inválido.
func TestInterviewCreate_TipoInvalido(t *testing.T) {
	uc, _, apps, jobs, _ := newInterviewFixture()
	seedApplication(jobs, apps, "company-1")

	in := validInterviewRequest()
	in.InterviewType = "telepathy"
	_, err := uc.Create(context.Background(), "company-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Agendar sobre una postulación de otra company es ErrNotFound.
func TestInterviewCreate_PostulacionAjena(t *testing.T) {
	uc, _, apps, jobs, _ := newInterviewFixture()
	seedApplication(jobs, apps, "company-1")

	_, err := uc.Create(context.Background(), "company-2", validInterviewRequest())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Un entrevistador que no existe como usuario es inválido.
func TestInterviewCreate_EntrevistadorInexistente(t *testing.T) {
	uc, _, apps, jobs, _ := newInterviewFixture()
	seedApplication(jobs, apps, "company-1")

	in := validInterviewRequest()
	in.InterviewerUserIDs = []string{"user-fantasma"}
	_, err := uc.Create(context.Background(), "company-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La evaluación se registra contra un entrevistador asignado.
func TestCreateEvaluation_OK(t *testing.T) {
	uc, interviews, apps, jobs, _ := newInterviewFixture()
	seedApplication(jobs, apps, "company-1")
	created, err := uc.Create(context.Background(), "company-1", validInterviewRequest())
	require.NoError(t, err)
	interviewerID := created.Interviewers[0].InterviewerID

	out, err := uc.CreateEvaluation(context.Background(), "company-1", created.InterviewID, dto.CreateEvaluationRequest{
		InterviewerID: interviewerID,
		Rating:        4,
		Feedback:      "buena comunicación",
	})
	require.NoError(t, err)

	assert.Equal(t, 4, out.Rating)
	assert.Len(t, interviews.interviews[created.InterviewID].Evaluations, 1)
}

// Un interviewer_id que no pertenece a la entrevista es inválido, aunque el
// usuario exista.
func TestCreateEvaluation_EntrevistadorNoAsignado(t *testing.T) {
	uc, _, apps, jobs, _ := newInterviewFixture()
	seedApplication(jobs, apps, "company-1")
	created, err := uc.Create(context.Background(), "company-1", validInterviewRequest())
	require.NoError(t, err)

	_, err = uc.CreateEvaluation(context.Background(), "company-1", created.InterviewID, dto.CreateEvaluationRequest{
		InterviewerID: "otro-interviewer",
		Rating:        3,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El rating válido va de 1 a 5.
func TestCreateEvaluation_RatingFueraDeRango(t *testing.T) {
	uc, _, apps, jobs, _ := newInterviewFixture()
	seedApplication(jobs, apps, "company-1")
	created, err := uc.Create(context.Background(), "company-1", validInterviewRequest())
	require.NoError(t, err)

	_, err = uc.CreateEvaluation(context.Background(), "company-1", created.InterviewID, dto.CreateEvaluationRequest{
		InterviewerID: created.Interviewers[0].InterviewerID,
		Rating:        6,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Una entrevista de otra company es indistinguible de una inexistente.
func TestInterviewGet_TenantAjeno(t *testing.T) {
	uc, _, apps, jobs, _ := newInterviewFixture()
	seedApplication(jobs, apps, "company-1")
	created, err := uc.Create(context.Background(), "company-1", validInterviewRequest())
	require.NoError(t, err)

	_, err = uc.Get(context.Background(), "company-2", created.InterviewID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
