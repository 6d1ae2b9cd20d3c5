package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/talentbridge/ats-api/internal/application/auth"
	"github.com/talentbridge/ats-api/internal/application/usecase"
	"github.com/talentbridge/ats-api/internal/infrastructure/parser"
	"github.com/talentbridge/ats-api/internal/infrastructure/postgres"
	"github.com/talentbridge/ats-api/internal/infrastructure/storage"
	httpRouter "github.com/talentbridge/ats-api/internal/interfaces/http"
	"github.com/talentbridge/ats-api/pkg/config"
	"github.com/talentbridge/ats-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	store, err := storage.NewLocalStore(cfg.Storage.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("directorio de uploads")
	}

	companyRepo := postgres.NewCompanyRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	jobRepo := postgres.NewJobRepository(pool)
	candidateRepo := postgres.NewCandidateRepository(pool)
	applicationRepo := postgres.NewApplicationRepository(pool)
	interviewRepo := postgres.NewInterviewRepository(pool)
	resumeRepo := postgres.NewResumeRepository(pool)
	departmentRepo := postgres.NewDepartmentRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, companyRepo, roleRepo, candidateRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	roleUC := usecase.NewRoleUseCase(roleRepo)
	jobUC := usecase.NewJobUseCase(jobRepo, txRunner)
	candidateUC := usecase.NewCandidateUseCase(candidateRepo, applicationRepo, interviewRepo)
	applicationUC := usecase.NewApplicationUseCase(applicationRepo, jobRepo, candidateRepo, txRunner)
	interviewUC := usecase.NewInterviewUseCase(interviewRepo, applicationRepo, userRepo, txRunner)
	resumeUC := usecase.NewResumeUseCase(resumeRepo, candidateRepo, store, parser.NewPDFExtractor())
	departmentUC := usecase.NewDepartmentUseCase(departmentRepo)
	contactUC := usecase.NewContactUseCase(contactRepo, departmentRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "TalentBridge ATS API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CompanyUC:     companyUC,
		RoleUC:        roleUC,
		JobUC:         jobUC,
		CandidateUC:   candidateUC,
		ApplicationUC: applicationUC,
		InterviewUC:   interviewUC,
		ResumeUC:      resumeUC,
		DepartmentUC:  departmentUC,
		ContactUC:     contactUC,
		UserRepo:      userRepo,
		RoleRepo:      roleRepo,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
