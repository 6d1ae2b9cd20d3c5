package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/talentbridge/ats-api/internal/domain"
	"github.com/talentbridge/ats-api/internal/domain/entity"
)

// stubQuerier responde a Exec con el error configurado; suficiente para probar
// la traducción de errores de Postgres sin una base de datos.
type stubQuerier struct {
	execErr error
}

func (s *stubQuerier) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, s.execErr
}

func (s *stubQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("no implementado")
}

func (s *stubQuerier) QueryRow(context.Context, string, ...any) pgx.Row {
	panic("no implementado")
}

func testCandidate() *entity.Candidate {
	return &entity.Candidate{
		ID:          "cand-1",
		FirstName:   "Ana",
		Email:       "ana@mail.com",
		DateCreated: time.Now(),
	}
}

// Dos creates concurrentes con el mismo email: el que pierde la carrera choca
// con el constraint único (23505) y debe salir como ErrEmailAlreadyExists, no
// como error genérico.
func TestCandidateCreate_EmailDuplicado(t *testing.T) {
	repo := NewCandidateRepository(&stubQuerier{execErr: &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "candidates_email_key",
	}})

	err := repo.Create(context.Background(), testCandidate())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// Cualquier otro error de Postgres se envuelve sin traducir.
func TestCandidateCreate_ErrorGenerico(t *testing.T) {
	repo := NewCandidateRepository(&stubQuerier{execErr: errors.New("connection reset")})

	err := repo.Create(context.Background(), testCandidate())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Contains(t, err.Error(), "insert candidate")
}
