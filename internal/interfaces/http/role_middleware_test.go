package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentbridge/ats-api/internal/domain/entity"
	apphttp "github.com/talentbridge/ats-api/internal/interfaces/http"
)

// fakeRoleLookup catálogo de roles en memoria para los gates de permisos.
type fakeRoleLookup struct {
	roles map[string]*entity.Role
	err   error
}

func (f *fakeRoleLookup) GetByName(_ context.Context, name string) (*entity.Role, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.roles[name], nil
}

func buildPermissionApp(roles *fakeRoleLookup, perms ...string) *fiber.App {
	users := &fakeUserLookup{users: map[string]*entity.User{
		testEmail: staffUser(testCompanyID),
	}}
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, users),
		apphttp.RequirePermissions(roles, perms...),
		func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		},
	)
	return app
}

// El rol del principal contiene todos los permisos requeridos → pasa.
func TestRequirePermissions_SubconjuntoCompleto(t *testing.T) {
	roles := &fakeRoleLookup{roles: map[string]*entity.Role{
		entity.RoleAdministrator: {
			ID:          "r-1",
			Name:        entity.RoleAdministrator,
			Permissions: []string{"roles:manage", "jobs:manage"},
		},
	}}
	app := buildPermissionApp(roles, "roles:manage")

	resp := doRequest(t, app, tokenFor(t, testCompanyID, entity.RoleAdministrator))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Falta al menos un permiso → 403.
func TestRequirePermissions_PermisoFaltante(t *testing.T) {
	roles := &fakeRoleLookup{roles: map[string]*entity.Role{
		entity.RoleRecruiter: {
			ID:          "r-2",
			Name:        entity.RoleRecruiter,
			Permissions: []string{"jobs:manage"},
		},
	}}
	app := buildPermissionApp(roles, "roles:manage")

	resp := doRequest(t, app, tokenFor(t, testCompanyID, entity.RoleRecruiter))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", decodeBody(t, resp)["code"])
}

// El rol del token ya no existe en el catálogo → 403, no 500.
func TestRequirePermissions_RolDesconocido(t *testing.T) {
	roles := &fakeRoleLookup{roles: map[string]*entity.Role{}}
	app := buildPermissionApp(roles, "roles:manage")

	resp := doRequest(t, app, tokenFor(t, testCompanyID, "RolFantasma"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// El catálogo no responde → 503, el gate nunca abre por error de infra.
func TestRequirePermissions_ErrorDeCatalogo(t *testing.T) {
	roles := &fakeRoleLookup{err: errors.New("connection refused")}
	app := buildPermissionApp(roles, "roles:manage")

	resp := doRequest(t, app, tokenFor(t, testCompanyID, entity.RoleAdministrator))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "PERMISSION_CHECK_FAILED", decodeBody(t, resp)["code"])
}

func buildCompanyPathApp() *fiber.App {
	users := &fakeUserLookup{users: map[string]*entity.User{
		testEmail: staffUser(testCompanyID),
	}}
	app := fiber.New()
	app.Get("/companies/:companyId/departments",
		apphttp.AuthMiddleware(testJWTSecret, users),
		apphttp.RequireCompanyPath("companyId"),
		func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		},
	)
	return app
}

// La company del path coincide con la del token → pasa.
func TestRequireCompanyPath_CompanyPropia(t *testing.T) {
	app := buildCompanyPathApp()

	req := httptest.NewRequest(http.MethodGet, "/companies/"+testCompanyID+"/departments", nil)
	req.Header.Set("Authorization", tokenFor(t, testCompanyID, entity.RoleRecruiter))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Intento de leer recursos anidados de otra company → 403 COMPANY_MISMATCH.
func TestRequireCompanyPath_CompanyAjena(t *testing.T) {
	app := buildCompanyPathApp()

	req := httptest.NewRequest(http.MethodGet, "/companies/otra-company/departments", nil)
	req.Header.Set("Authorization", tokenFor(t, testCompanyID, entity.RoleRecruiter))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "COMPANY_MISMATCH", decodeBody(t, resp)["code"])
}
