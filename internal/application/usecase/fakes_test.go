package usecase_test

import (
	"context"
	"errors"
	"io"
	"maps"

	"github.com/talentbridge/ats-api/internal/application/usecase"
	"github.com/talentbridge/ats-api/internal/domain/entity"
	"github.com/talentbridge/ats-api/internal/domain/repository"
)

// Fakes en memoria para los puertos de persistencia. Reproducen las reglas de
// scoping de los repositorios reales (miss de tenant → nil, nil) para que los
// casos de uso se prueben sin base de datos.

var (
	_ repository.CandidateRepository   = (*fakeCandidateRepo)(nil)
	_ repository.JobRepository         = (*fakeJobRepo)(nil)
	_ repository.ApplicationRepository = (*fakeApplicationRepo)(nil)
	_ repository.InterviewRepository   = (*fakeInterviewRepo)(nil)
	_ repository.ResumeRepository      = (*fakeResumeRepo)(nil)
	_ repository.UserRepository        = (*fakeUserRepo)(nil)
)

// ──────────────────────────────────────────────────────────────────────────────

type fakeCandidateRepo struct {
	candidates map[string]*entity.Candidate
	// accessible simula la regla derivada: candidateID+"|"+companyID → visible.
	accessible map[string]bool
	// listed simula la rama Application→Job del listado scoped.
	listed  map[string][]string
	creates int
	updates int
	deletes int
}

func newFakeCandidateRepo() *fakeCandidateRepo {
	return &fakeCandidateRepo{
		candidates: map[string]*entity.Candidate{},
		accessible: map[string]bool{},
		listed:     map[string][]string{},
	}
}

func (f *fakeCandidateRepo) grantAccess(candidateID, companyID string) {
	f.accessible[candidateID+"|"+companyID] = true
}

func (f *fakeCandidateRepo) Create(_ context.Context, c *entity.Candidate) error {
	f.creates++
	f.candidates[c.ID] = c
	return nil
}

func (f *fakeCandidateRepo) GetByID(_ context.Context, id string) (*entity.Candidate, error) {
	return f.candidates[id], nil
}

func (f *fakeCandidateRepo) GetByEmail(_ context.Context, email string) (*entity.Candidate, error) {
	for _, c := range f.candidates {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCandidateRepo) IsAccessible(_ context.Context, candidateID, companyID string) (bool, error) {
	return f.accessible[candidateID+"|"+companyID], nil
}

func (f *fakeCandidateRepo) ListByCompany(_ context.Context, companyID string, _, _ int) ([]*entity.Candidate, error) {
	var out []*entity.Candidate
	for _, id := range f.listed[companyID] {
		out = append(out, f.candidates[id])
	}
	return out, nil
}

func (f *fakeCandidateRepo) Update(_ context.Context, c *entity.Candidate) error {
	f.updates++
	f.candidates[c.ID] = c
	return nil
}

func (f *fakeCandidateRepo) Delete(_ context.Context, id string) error {
	f.deletes++
	delete(f.candidates, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────

type fakeJobRepo struct {
	jobs   map[string]*entity.Job
	events map[string][]entity.JobStatusEvent
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[string]*entity.Job{}, events: map[string][]entity.JobStatusEvent{}}
}

func (f *fakeJobRepo) Create(_ context.Context, job *entity.Job) error {
	f.jobs[job.ID] = job
	return nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id, companyID string) (*entity.Job, error) {
	job, ok := f.jobs[id]
	if !ok || job.CompanyID != companyID {
		return nil, nil
	}
	copied := *job
	copied.StatusHistory = append([]entity.JobStatusEvent(nil), f.events[id]...)
	return &copied, nil
}

func (f *fakeJobRepo) ListByCompany(_ context.Context, companyID string, _, _ int) ([]*entity.Job, error) {
	var out []*entity.Job
	for _, job := range f.jobs {
		if job.CompanyID == companyID {
			out = append(out, job)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) Update(_ context.Context, job *entity.Job) error {
	f.jobs[job.ID] = job
	return nil
}

func (f *fakeJobRepo) Delete(_ context.Context, id, companyID string) error {
	job, ok := f.jobs[id]
	if ok && job.CompanyID == companyID {
		delete(f.jobs, id)
	}
	return nil
}

func (f *fakeJobRepo) AppendStatusEvent(_ context.Context, event *entity.JobStatusEvent) error {
	f.events[event.JobID] = append(f.events[event.JobID], *event)
	return nil
}

func (f *fakeJobRepo) ListStatusEvents(_ context.Context, jobID string) ([]entity.JobStatusEvent, error) {
	return f.events[jobID], nil
}

// ──────────────────────────────────────────────────────────────────────────────

type fakeApplicationRepo struct {
	apps   map[string]*entity.Application
	events map[string][]entity.ApplicationStatusEvent
	// jobs resuelve el tenant de cada postulación, como el join real.
	jobs      *fakeJobRepo
	appendErr error
}

func newFakeApplicationRepo(jobs *fakeJobRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{
		apps:   map[string]*entity.Application{},
		events: map[string][]entity.ApplicationStatusEvent{},
		jobs:   jobs,
	}
}

func (f *fakeApplicationRepo) Create(_ context.Context, app *entity.Application) error {
	f.apps[app.ID] = app
	return nil
}

func (f *fakeApplicationRepo) GetByID(_ context.Context, id, companyID string) (*entity.Application, error) {
	app, ok := f.apps[id]
	if !ok {
		return nil, nil
	}
	job, ok := f.jobs.jobs[app.JobID]
	if !ok || job.CompanyID != companyID {
		return nil, nil
	}
	copied := *app
	copied.StatusHistory = append([]entity.ApplicationStatusEvent(nil), f.events[id]...)
	return &copied, nil
}

func (f *fakeApplicationRepo) ListByCompany(_ context.Context, companyID string, _, _ int) ([]*entity.Application, error) {
	var out []*entity.Application
	for _, app := range f.apps {
		if job, ok := f.jobs.jobs[app.JobID]; ok && job.CompanyID == companyID {
			out = append(out, app)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) ListByCandidate(_ context.Context, candidateID string) ([]*entity.Application, error) {
	var out []*entity.Application
	for _, app := range f.apps {
		if app.CandidateID == candidateID {
			out = append(out, app)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) Update(_ context.Context, app *entity.Application) error {
	f.apps[app.ID] = app
	return nil
}

func (f *fakeApplicationRepo) Delete(_ context.Context, id string) error {
	delete(f.apps, id)
	return nil
}

func (f *fakeApplicationRepo) AppendStatusEvent(_ context.Context, event *entity.ApplicationStatusEvent) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.events[event.ApplicationID] = append(f.events[event.ApplicationID], *event)
	return nil
}

func (f *fakeApplicationRepo) ListStatusEvents(_ context.Context, applicationID string) ([]entity.ApplicationStatusEvent, error) {
	return f.events[applicationID], nil
}

// ──────────────────────────────────────────────────────────────────────────────

type fakeInterviewRepo struct {
	interviews map[string]*entity.Interview
	apps       *fakeApplicationRepo
	createErr  error
}

func newFakeInterviewRepo(apps *fakeApplicationRepo) *fakeInterviewRepo {
	return &fakeInterviewRepo{interviews: map[string]*entity.Interview{}, apps: apps}
}

func (f *fakeInterviewRepo) Create(_ context.Context, iv *entity.Interview) error {
	if f.createErr != nil {
		return f.createErr
	}
	stored := *iv
	stored.Interviewers = nil
	stored.Evaluations = nil
	f.interviews[iv.ID] = &stored
	return nil
}

func (f *fakeInterviewRepo) AddInterviewer(_ context.Context, p *entity.Interviewer) error {
	iv, ok := f.interviews[p.InterviewID]
	if !ok {
		return errors.New("entrevista inexistente")
	}
	iv.Interviewers = append(iv.Interviewers, *p)
	return nil
}

func (f *fakeInterviewRepo) GetByID(_ context.Context, id, companyID string) (*entity.Interview, error) {
	iv, ok := f.interviews[id]
	if !ok {
		return nil, nil
	}
	app, ok := f.apps.apps[iv.ApplicationID]
	if !ok {
		return nil, nil
	}
	job, ok := f.apps.jobs.jobs[app.JobID]
	if !ok || job.CompanyID != companyID {
		return nil, nil
	}
	return iv, nil
}

func (f *fakeInterviewRepo) ListByCandidate(_ context.Context, candidateID string) ([]*entity.Interview, error) {
	var out []*entity.Interview
	for _, iv := range f.interviews {
		if app, ok := f.apps.apps[iv.ApplicationID]; ok && app.CandidateID == candidateID {
			out = append(out, iv)
		}
	}
	return out, nil
}

func (f *fakeInterviewRepo) CreateEvaluation(_ context.Context, ev *entity.Evaluation) error {
	iv, ok := f.interviews[ev.InterviewID]
	if !ok {
		return errors.New("entrevista inexistente")
	}
	iv.Evaluations = append(iv.Evaluations, *ev)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────

type fakeResumeRepo struct {
	resumes map[string]*entity.Resume
	deletes int
}

func newFakeResumeRepo() *fakeResumeRepo {
	return &fakeResumeRepo{resumes: map[string]*entity.Resume{}}
}

func (f *fakeResumeRepo) Create(_ context.Context, r *entity.Resume) error {
	f.resumes[r.ID] = r
	return nil
}

func (f *fakeResumeRepo) GetByID(_ context.Context, id string) (*entity.Resume, error) {
	return f.resumes[id], nil
}

func (f *fakeResumeRepo) ListByCandidate(_ context.Context, candidateID string) ([]*entity.Resume, error) {
	var out []*entity.Resume
	for _, r := range f.resumes {
		if r.CandidateID == candidateID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeResumeRepo) Update(_ context.Context, r *entity.Resume) error {
	f.resumes[r.ID] = r
	return nil
}

func (f *fakeResumeRepo) Delete(_ context.Context, id string) error {
	f.deletes++
	delete(f.resumes, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	f := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	f.users[u.ID] = u
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────

// fakeTx ejecuta los callbacks sobre los fakes emulando la semántica
// transaccional: si el callback falla, el estado vuelve al snapshot previo.
type fakeTx struct {
	jobs       *fakeJobRepo
	candidates *fakeCandidateRepo
	apps       *fakeApplicationRepo
	interviews *fakeInterviewRepo
}

var _ usecase.TxRunner = (*fakeTx)(nil)

func (f *fakeTx) RunInterview(_ context.Context, fn func(repository.InterviewRepository) error) error {
	snapshot := maps.Clone(f.interviews.interviews)
	if err := fn(f.interviews); err != nil {
		f.interviews.interviews = snapshot
		return err
	}
	return nil
}

func (f *fakeTx) RunJob(_ context.Context, fn func(repository.JobRepository) error) error {
	jobsSnap := maps.Clone(f.jobs.jobs)
	eventsSnap := maps.Clone(f.jobs.events)
	if err := fn(f.jobs); err != nil {
		f.jobs.jobs = jobsSnap
		f.jobs.events = eventsSnap
		return err
	}
	return nil
}

func (f *fakeTx) RunApplication(_ context.Context, fn func(repository.ApplicationRepository, repository.CandidateRepository) error) error {
	appsSnap := maps.Clone(f.apps.apps)
	eventsSnap := maps.Clone(f.apps.events)
	if err := fn(f.apps, f.candidates); err != nil {
		f.apps.apps = appsSnap
		f.apps.events = eventsSnap
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────

// fakeStore almacenamiento de archivos en memoria.
type fakeStore struct {
	saved   map[string][]byte
	removed []string
}

var _ usecase.FileStore = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{saved: map[string][]byte{}}
}

func (f *fakeStore) Save(originalName string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	location := "stored-" + originalName
	f.saved[location] = data
	return location, nil
}

func (f *fakeStore) Resolve(location string) (string, error) {
	if _, ok := f.saved[location]; !ok {
		return "", errors.New("archivo inexistente")
	}
	return "/uploads/" + location, nil
}

func (f *fakeStore) Remove(location string) error {
	f.removed = append(f.removed, location)
	delete(f.saved, location)
	return nil
}

// fakeExtractor extractor de texto configurable.
type fakeExtractor struct {
	text string
	err  error
}

var _ usecase.TextExtractor = (*fakeExtractor)(nil)

func (f *fakeExtractor) ExtractText(string) (string, error) {
	return f.text, f.err
}
