package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentbridge/ats-api/internal/application/usecase"
	"github.com/talentbridge/ats-api/internal/domain"
	"github.com/talentbridge/ats-api/internal/domain/entity"
)

func newResumeFixture(extractor *fakeExtractor) (*usecase.ResumeUseCase, *fakeResumeRepo, *fakeCandidateRepo, *fakeStore) {
	resumes := newFakeResumeRepo()
	candidates := newFakeCandidateRepo()
	store := newFakeStore()
	uc := usecase.NewResumeUseCase(resumes, candidates, store, extractor)
	return uc, resumes, candidates, store
}

// Subir un PDF legible guarda el archivo, extrae el texto y marca valid.
func TestResumeUpload_PDFExtraeTexto(t *testing.T) {
	uc, _, candidates, store := newResumeFixture(&fakeExtractor{text: "experiencia en Go"})
	candidates.grantAccess("cand-1", "company-1")

	out, err := uc.Upload(context.Background(), "company-1", "cand-1", "cv.pdf",
		strings.NewReader("%PDF-1.4"), entity.ResumeData{})
	require.NoError(t, err)

	assert.Equal(t, entity.ResumeParseValid, out.ParseStatus)
	assert.Equal(t, "experiencia en Go", out.ParsedData.RawText)
	assert.NotEmpty(t, out.FileLocation)
	assert.Contains(t, store.saved, out.FileLocation)
}

// Un PDF que no se puede extraer queda marcado invalid, con el archivo
// guardado igualmente.
func TestResumeUpload_ExtraccionFalla(t *testing.T) {
	uc, _, candidates, _ := newResumeFixture(&fakeExtractor{err: errors.New("pdf corrupto")})
	candidates.grantAccess("cand-1", "company-1")

	out, err := uc.Upload(context.Background(), "company-1", "cand-1", "cv.pdf",
		strings.NewReader("garbage"), entity.ResumeData{})
	require.NoError(t, err)

	assert.Equal(t, entity.ResumeParseInvalid, out.ParseStatus)
	assert.Empty(t, out.ParsedData.RawText)
	assert.NotEmpty(t, out.FileLocation)
}

// Solo payload estructurado, sin archivo: pending y sin file_location.
func TestResumeUpload_SinArchivo(t *testing.T) {
	uc, _, candidates, _ := newResumeFixture(&fakeExtractor{})
	candidates.grantAccess("cand-1", "company-1")

	out, err := uc.Upload(context.Background(), "company-1", "cand-1", "", nil, entity.ResumeData{
		Basics: entity.ResumeBasics{Name: "Ana García", Email: "ana@mail.com"},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ResumeParsePending, out.ParseStatus)
	assert.Empty(t, out.FileLocation)
	assert.Equal(t, "Ana García", out.ParsedData.Basics.Name)
}

// El acceso se hereda del candidato: uno fuera de alcance es ErrNotFound.
func TestResumeUpload_CandidatoFueraDeAlcance(t *testing.T) {
	uc, _, _, _ := newResumeFixture(&fakeExtractor{})

	_, err := uc.Upload(context.Background(), "company-1", "cand-1", "", nil, entity.ResumeData{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Leer una hoja de vida de un candidato ajeno también es ErrNotFound.
func TestResumeGet_CandidatoAjeno(t *testing.T) {
	uc, resumes, candidates, _ := newResumeFixture(&fakeExtractor{})
	resumes.resumes["res-1"] = &entity.Resume{ID: "res-1", CandidateID: "cand-1"}
	candidates.grantAccess("cand-1", "company-1")

	_, err := uc.Get(context.Background(), "company-2", "res-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Update reemplaza el payload pero conserva el texto extraído del archivo.
func TestResumeUpdate_ConservaRawText(t *testing.T) {
	uc, resumes, candidates, _ := newResumeFixture(&fakeExtractor{})
	resumes.resumes["res-1"] = &entity.Resume{
		ID:          "res-1",
		CandidateID: "cand-1",
		ParseStatus: entity.ResumeParseValid,
		ParsedData:  entity.ResumeData{RawText: "texto extraído del pdf"},
	}
	candidates.grantAccess("cand-1", "company-1")

	out, err := uc.Update(context.Background(), "company-1", "res-1", entity.ResumeData{
		Basics: entity.ResumeBasics{Name: "Ana García"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana García", out.ParsedData.Basics.Name)
	assert.Equal(t, "texto extraído del pdf", out.ParsedData.RawText)
}

// Delete elimina el registro y el archivo en disco.
func TestResumeDelete_BorraArchivo(t *testing.T) {
	uc, resumes, candidates, store := newResumeFixture(&fakeExtractor{text: "cv"})
	candidates.grantAccess("cand-1", "company-1")

	out, err := uc.Upload(context.Background(), "company-1", "cand-1", "cv.pdf",
		strings.NewReader("%PDF-1.4"), entity.ResumeData{})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), "company-1", out.ResumeID))
	assert.Equal(t, 1, resumes.deletes)
	assert.Contains(t, store.removed, out.FileLocation)
}

// Autoservicio: el candidato lista sus hojas de vida sin gate de tenant.
func TestResumeListOwn_SinGate(t *testing.T) {
	uc, resumes, _, _ := newResumeFixture(&fakeExtractor{})
	resumes.resumes["res-1"] = &entity.Resume{ID: "res-1", CandidateID: "cand-1"}
	resumes.resumes["res-2"] = &entity.Resume{ID: "res-2", CandidateID: "otro-cand"}

	out, err := uc.ListOwn(context.Background(), "cand-1")
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "res-1", out.Items[0].ResumeID)
}
