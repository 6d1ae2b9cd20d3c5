package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/talentbridge/ats-api/internal/application/auth"
	"github.com/talentbridge/ats-api/internal/application/dto"
	"github.com/talentbridge/ats-api/internal/domain"
	"github.com/talentbridge/ats-api/internal/domain/entity"
	"github.com/talentbridge/ats-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

// Fakes en memoria de los puertos que usa auth.

type memUserRepo struct {
	users map[string]*entity.User
}

func (m *memUserRepo) Create(_ context.Context, u *entity.User) error {
	m.users[u.ID] = u
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return m.users[id], nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) Update(_ context.Context, u *entity.User) error {
	m.users[u.ID] = u
	return nil
}

type memCompanyRepo struct {
	companies map[string]*entity.Company
}

func (m *memCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	m.companies[c.ID] = c
	return nil
}

func (m *memCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return m.companies[id], nil
}

func (m *memCompanyRepo) List(_ context.Context, _, _ int) ([]*entity.Company, error) {
	return nil, nil
}

type memRoleRepo struct {
	roles map[string]*entity.Role
}

func (m *memRoleRepo) Create(_ context.Context, r *entity.Role) error {
	m.roles[r.ID] = r
	return nil
}

func (m *memRoleRepo) GetByID(_ context.Context, id string) (*entity.Role, error) {
	return m.roles[id], nil
}

func (m *memRoleRepo) GetByName(_ context.Context, name string) (*entity.Role, error) {
	for _, r := range m.roles {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, nil
}

func (m *memRoleRepo) List(_ context.Context, _, _ int) ([]*entity.Role, error) {
	return nil, nil
}

func (m *memRoleRepo) Update(_ context.Context, r *entity.Role) error {
	m.roles[r.ID] = r
	return nil
}

func (m *memRoleRepo) Delete(_ context.Context, id string) error {
	delete(m.roles, id)
	return nil
}

type memCandidateRepo struct {
	candidates map[string]*entity.Candidate
}

func (m *memCandidateRepo) Create(_ context.Context, c *entity.Candidate) error {
	m.candidates[c.ID] = c
	return nil
}

func (m *memCandidateRepo) GetByID(_ context.Context, id string) (*entity.Candidate, error) {
	return m.candidates[id], nil
}

func (m *memCandidateRepo) GetByEmail(_ context.Context, email string) (*entity.Candidate, error) {
	for _, c := range m.candidates {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memCandidateRepo) IsAccessible(_ context.Context, _, _ string) (bool, error) {
	return false, nil
}

func (m *memCandidateRepo) ListByCompany(_ context.Context, _ string, _, _ int) ([]*entity.Candidate, error) {
	return nil, nil
}

func (m *memCandidateRepo) Update(_ context.Context, c *entity.Candidate) error {
	m.candidates[c.ID] = c
	return nil
}

func (m *memCandidateRepo) Delete(_ context.Context, id string) error {
	delete(m.candidates, id)
	return nil
}

type authFixture struct {
	uc         *auth.UseCase
	users      *memUserRepo
	companies  *memCompanyRepo
	roles      *memRoleRepo
	candidates *memCandidateRepo
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		users:      &memUserRepo{users: map[string]*entity.User{}},
		companies:  &memCompanyRepo{companies: map[string]*entity.Company{}},
		roles:      &memRoleRepo{roles: map[string]*entity.Role{}},
		candidates: &memCandidateRepo{candidates: map[string]*entity.Candidate{}},
	}
	f.companies.companies["company-1"] = &entity.Company{ID: "company-1", Name: "Acme", CreatedAt: time.Now()}
	f.roles.roles["role-recruiter"] = &entity.Role{ID: "role-recruiter", Name: entity.RoleRecruiter}
	f.roles.roles["role-candidate"] = &entity.Role{ID: "role-candidate", Name: entity.RoleCandidate}
	f.uc = auth.NewUseCase(f.users, f.companies, f.roles, f.candidates, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "ats-test",
	})
	return f
}

// El registro emite un token con la identidad y el tenant del nuevo usuario.
func TestRegisterUser_EmiteToken(t *testing.T) {
	f := newAuthFixture()

	out, err := f.uc.RegisterUser(context.Background(), dto.RegisterUserRequest{
		Email:     "ana@acme.com",
		Password:  "password123",
		FirstName: "Ana",
		CompanyID: "company-1",
		RoleName:  entity.RoleRecruiter,
	})
	require.NoError(t, err)
	assert.Equal(t, "bearer", out.TokenType)

	claims, err := jwt.Parse(testSecret, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "ana@acme.com", claims.Subject)
	assert.Equal(t, "company-1", claims.CompanyID)
	assert.Equal(t, entity.RoleRecruiter, claims.Role)

	user, err := f.users.GetByEmail(context.Background(), "ana@acme.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEqual(t, "password123", user.PasswordHash, "el password nunca se persiste en claro")
}

// Una company inexistente invalida el registro.
func TestRegisterUser_CompanyInexistente(t *testing.T) {
	f := newAuthFixture()

	_, err := f.uc.RegisterUser(context.Background(), dto.RegisterUserRequest{
		Email:     "ana@acme.com",
		Password:  "password123",
		CompanyID: "company-fantasma",
		RoleName:  entity.RoleRecruiter,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El autoregistro de candidato crea perfil y cuenta enlazados, con token sin
// company.
func TestRegisterCandidate_CreaPerfilYCuenta(t *testing.T) {
	f := newAuthFixture()

	out, err := f.uc.RegisterCandidate(context.Background(), dto.RegisterCandidateRequest{
		Email:     "cand@mail.com",
		Password:  "password123",
		FirstName: "Carlos",
	})
	require.NoError(t, err)

	claims, err := jwt.Parse(testSecret, out.AccessToken)
	require.NoError(t, err)
	assert.Empty(t, claims.CompanyID, "las cuentas de candidato no tienen tenant")
	assert.Equal(t, entity.RoleCandidate, claims.Role)

	user, err := f.users.GetByEmail(context.Background(), "cand@mail.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.NotNil(t, user.CandidateID)
	assert.Contains(t, f.candidates.candidates, *user.CandidateID)
}

// Si ya existe un Candidate con ese email (p.ej. creado por un recruiter), el
// autoregistro enlaza la cuenta nueva con el perfil existente.
func TestRegisterCandidate_ReutilizaPerfilExistente(t *testing.T) {
	f := newAuthFixture()
	f.candidates.candidates["cand-1"] = &entity.Candidate{ID: "cand-1", Email: "cand@mail.com"}

	_, err := f.uc.RegisterCandidate(context.Background(), dto.RegisterCandidateRequest{
		Email:    "cand@mail.com",
		Password: "password123",
	})
	require.NoError(t, err)

	user, err := f.users.GetByEmail(context.Background(), "cand@mail.com")
	require.NoError(t, err)
	require.NotNil(t, user.CandidateID)
	assert.Equal(t, "cand-1", *user.CandidateID)
	assert.Len(t, f.candidates.candidates, 1, "no debe duplicarse el perfil")
}

// Login correcto devuelve un token con el rol resuelto desde el catálogo.
func TestLogin_OK(t *testing.T) {
	f := newAuthFixture()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	companyID := "company-1"
	f.users.users["user-1"] = &entity.User{
		ID:           "user-1",
		CompanyID:    &companyID,
		Email:        "ana@acme.com",
		PasswordHash: string(hash),
		RoleID:       "role-recruiter",
	}

	out, err := f.uc.Login(context.Background(), dto.LoginRequest{Email: "ana@acme.com", Password: "password123"})
	require.NoError(t, err)

	claims, err := jwt.Parse(testSecret, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, entity.RoleRecruiter, claims.Role)
}

// Email inexistente y password incorrecto responden igual: ErrUnauthorized.
func TestLogin_CredencialesMalas(t *testing.T) {
	f := newAuthFixture()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	f.users.users["user-1"] = &entity.User{
		ID:           "user-1",
		Email:        "ana@acme.com",
		PasswordHash: string(hash),
		RoleID:       "role-recruiter",
	}

	_, err = f.uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@acme.com", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.uc.Login(context.Background(), dto.LoginRequest{Email: "ana@acme.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
