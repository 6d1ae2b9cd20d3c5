package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/talentbridge/ats-api/internal/application/auth"
	"github.com/talentbridge/ats-api/internal/application/usecase"
	"github.com/talentbridge/ats-api/internal/domain/entity"
	"github.com/talentbridge/ats-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	CompanyUC     *usecase.CompanyUseCase
	RoleUC        *usecase.RoleUseCase
	JobUC         *usecase.JobUseCase
	CandidateUC   *usecase.CandidateUseCase
	ApplicationUC *usecase.ApplicationUseCase
	InterviewUC   *usecase.InterviewUseCase
	ResumeUC      *usecase.ResumeUseCase
	DepartmentUC  *usecase.DepartmentUseCase
	ContactUC     *usecase.ContactUseCase
	UserRepo      repository.UserRepository
	RoleRepo      repository.RoleRepository
	JWTSecret     string
}

// Router registra las rutas de la API bajo /api/v1.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/candidate/register", authHandler.RegisterCandidate)
	authGroup.Post("/login", authHandler.Login)

	// Companies (público: se necesita para el registro)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies := api.Group("/companies")
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas protegidas: token válido + principal revalidado contra la DB.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.UserRepo))

	// Gates por rol. staff = cualquier rol de company; writer = puede escribir
	// sobre pipeline de contratación.
	staff := RequireRole(entity.RoleAdministrator, entity.RoleRecruiter, entity.RoleHiringManager)
	writer := RequireRole(entity.RoleAdministrator, entity.RoleRecruiter)

	// Jobs
	jobHandler := NewJobHandler(deps.JobUC)
	jobs := protected.Group("/jobs", staff)
	jobs.Post("/", writer, jobHandler.Create)
	jobs.Get("/", jobHandler.List)
	jobs.Get("/:id", jobHandler.GetByID)
	jobs.Put("/:id", writer, jobHandler.Update)
	jobs.Post("/:id/status", writer, jobHandler.UpdateStatus)
	jobs.Delete("/:id", writer, jobHandler.Delete)

	// Candidates
	candidateHandler := NewCandidateHandler(deps.CandidateUC, deps.ResumeUC)
	candidates := protected.Group("/candidates", staff)
	candidates.Post("/", writer, candidateHandler.Create)
	candidates.Get("/", candidateHandler.List)
	candidates.Get("/:id", candidateHandler.GetByID)
	candidates.Put("/:id", writer, candidateHandler.Update)
	candidates.Delete("/:id", writer, candidateHandler.Delete)
	candidates.Get("/:id/resumes", candidateHandler.ListResumes)

	// Applications (+ entrevistas anidadas)
	applicationHandler := NewApplicationHandler(deps.ApplicationUC)
	interviewHandler := NewInterviewHandler(deps.InterviewUC)
	applications := protected.Group("/applications", staff)
	applications.Post("/", writer, applicationHandler.Create)
	applications.Get("/", applicationHandler.List)
	applications.Get("/:id", applicationHandler.GetByID)
	applications.Put("/:id", writer, applicationHandler.Update)
	applications.Post("/:id/status", writer, applicationHandler.UpdateStatus)
	applications.Delete("/:id", writer, applicationHandler.Delete)
	applications.Post("/:id/interviews", writer, interviewHandler.Create)

	// Interviews: los hiring managers también evalúan.
	interviews := protected.Group("/interviews", staff)
	interviews.Get("/:id", interviewHandler.GetByID)
	interviews.Post("/:id/evaluations", interviewHandler.CreateEvaluation)

	// Resumes
	resumeHandler := NewResumeHandler(deps.ResumeUC)
	resumes := protected.Group("/resumes", staff)
	resumes.Post("/", writer, resumeHandler.Create)
	resumes.Get("/:id", resumeHandler.GetByID)
	resumes.Get("/:id/download", resumeHandler.Download)
	resumes.Put("/:id", writer, resumeHandler.Update)
	resumes.Delete("/:id", writer, resumeHandler.Delete)

	// Roles: catálogo global, solo administradores con el permiso explícito.
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles := protected.Group("/roles", RequireRole(entity.RoleAdministrator))
	roles.Get("/", roleHandler.List)
	roles.Get("/:id", roleHandler.GetByID)
	roles.Post("/", RequirePermissions(deps.RoleRepo, "roles:manage"), roleHandler.Create)
	roles.Put("/:id", RequirePermissions(deps.RoleRepo, "roles:manage"), roleHandler.Update)
	roles.Delete("/:id", RequirePermissions(deps.RoleRepo, "roles:manage"), roleHandler.Delete)

	// Departments: rutas de colección anidadas bajo la company del path.
	departmentHandler := NewDepartmentHandler(deps.DepartmentUC)
	companyScoped := protected.Group("/companies/:companyId", staff, RequireCompanyPath("companyId"))
	companyScoped.Post("/departments", departmentHandler.Create)
	companyScoped.Get("/departments", departmentHandler.List)
	departments := protected.Group("/departments", staff)
	departments.Get("/:id", departmentHandler.GetByID)
	departments.Put("/:id", departmentHandler.Update)
	departments.Delete("/:id", departmentHandler.Delete)

	// Contacts
	contactHandler := NewContactHandler(deps.ContactUC)
	companyScoped.Get("/contacts", contactHandler.List)
	contacts := protected.Group("/contacts", staff)
	contacts.Post("/", contactHandler.Create)
	contacts.Get("/:id", contactHandler.GetByID)
	contacts.Put("/:id", contactHandler.Update)
	contacts.Delete("/:id", contactHandler.Delete)

	// Autoservicio del candidato
	meHandler := NewMeHandler(deps.CandidateUC, deps.ResumeUC)
	me := protected.Group("/me", RequireRole(entity.RoleCandidate))
	me.Get("/profile", meHandler.GetProfile)
	me.Put("/profile", meHandler.UpdateProfile)
	me.Get("/applications", meHandler.ListApplications)
	me.Get("/interviews", meHandler.ListInterviews)
	me.Get("/resumes", meHandler.ListResumes)
}
