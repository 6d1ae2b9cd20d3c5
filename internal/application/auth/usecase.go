package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/talentbridge/ats-api/internal/application/dto"
	"github.com/talentbridge/ats-api/internal/domain"
	"github.com/talentbridge/ats-api/internal/domain/entity"
	"github.com/talentbridge/ats-api/internal/domain/repository"
	"github.com/talentbridge/ats-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación: registro de usuarios de company,
// autoregistro de candidatos y login.
type UseCase struct {
	userRepo      repository.UserRepository
	companyRepo   repository.CompanyRepository
	roleRepo      repository.RoleRepository
	candidateRepo repository.CandidateRepository
	jwtCfg        JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
	roleRepo repository.RoleRepository,
	candidateRepo repository.CandidateRepository,
	jwtCfg JWTConfig,
) *UseCase {
	return &UseCase{
		userRepo:      userRepo,
		companyRepo:   companyRepo,
		roleRepo:      roleRepo,
		candidateRepo: candidateRepo,
		jwtCfg:        jwtCfg,
	}
}

// RegisterUser crea un usuario de company: valida que existan la company y el
// rol, hashea el password con bcrypt, persiste y emite el token de sesión. Un
// email duplicado devuelve domain.ErrEmailAlreadyExists (constraint único, el
// repo lo traduce).
func (uc *UseCase) RegisterUser(ctx context.Context, in dto.RegisterUserRequest) (*dto.TokenResponse, error) {
	if in.Email == "" || in.Password == "" || in.CompanyID == "" || in.RoleName == "" {
		return nil, fmt.Errorf("%w: email, password, company_id y role_name son obligatorios", domain.ErrInvalidInput)
	}
	company, err := uc.companyRepo.GetByID(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("%w: company %s", domain.ErrInvalidInput, in.CompanyID)
	}
	role, err := uc.roleRepo.GetByName(ctx, in.RoleName)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, fmt.Errorf("%w: rol %s", domain.ErrInvalidInput, in.RoleName)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    &in.CompanyID,
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		RoleID:       role.ID,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return uc.issueToken(user, role.Name)
}

// RegisterCandidate autoregistro de un candidato: crea (o reutiliza, si el
// email ya existe) el Candidate y le crea su cuenta User con rol candidate y
// sin company. La cuenta enlaza al perfil vía candidate_id.
func (uc *UseCase) RegisterCandidate(ctx context.Context, in dto.RegisterCandidateRequest) (*dto.TokenResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email y password son obligatorios", domain.ErrInvalidInput)
	}
	role, err := uc.roleRepo.GetByName(ctx, entity.RoleCandidate)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, fmt.Errorf("rol %s no provisionado", entity.RoleCandidate)
	}

	candidate, err := uc.candidateRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		candidate = &entity.Candidate{
			ID:          uuid.New().String(),
			FirstName:   in.FirstName,
			LastName:    in.LastName,
			Email:       in.Email,
			Phone:       in.Phone,
			JobTitle:    in.JobTitle,
			DateCreated: time.Now(),
		}
		if err := uc.candidateRepo.Create(ctx, candidate); err != nil {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		RoleID:       role.ID,
		CandidateID:  &candidate.ID,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return uc.issueToken(user, role.Name)
}

// Login verifica email/password y emite el JWT (sub=email, claims user_id,
// company_id y role). Credenciales malas devuelven domain.ErrUnauthorized sin
// distinguir email inexistente de password incorrecto.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	role, err := uc.roleRepo.GetByID(ctx, user.RoleID)
	if err != nil {
		return nil, err
	}
	roleName := ""
	if role != nil {
		roleName = role.Name
	}
	return uc.issueToken(user, roleName)
}

func (uc *UseCase) issueToken(user *entity.User, roleName string) (*dto.TokenResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Email, user.ID, user.TenantID(), roleName, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &dto.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}
