package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/talentbridge/ats-api/internal/domain/entity"
)

// El estado actual de una vacante se deriva del último evento del historial;
// sin historial es la cadena vacía.
func TestJobCurrentStatus(t *testing.T) {
	job := &entity.Job{ID: "job-1"}
	assert.Empty(t, job.CurrentStatus())

	now := time.Now()
	job.StatusHistory = []entity.JobStatusEvent{
		{ID: "ev-1", Status: entity.JobStatusDraft, CreatedAt: now},
		{ID: "ev-2", Status: entity.JobStatusOpen, CreatedAt: now.Add(time.Minute)},
		{ID: "ev-3", Status: entity.JobStatusPaused, CreatedAt: now.Add(2 * time.Minute)},
	}
	assert.Equal(t, entity.JobStatusPaused, job.CurrentStatus())
}

func TestApplicationCurrentStatus(t *testing.T) {
	app := &entity.Application{ID: "app-1"}
	assert.Empty(t, app.CurrentStatus())

	app.StatusHistory = []entity.ApplicationStatusEvent{
		{ID: "ev-1", Status: entity.ApplicationStatusApplied},
		{ID: "ev-2", Status: entity.ApplicationStatusRejected},
	}
	assert.Equal(t, entity.ApplicationStatusRejected, app.CurrentStatus())
}

func TestValidJobStatus(t *testing.T) {
	assert.True(t, entity.ValidJobStatus(entity.JobStatusOpen))
	assert.True(t, entity.ValidJobStatus(entity.JobStatusFilled))
	assert.False(t, entity.ValidJobStatus("archived"))
	assert.False(t, entity.ValidJobStatus(""))
}

func TestValidApplicationStatus(t *testing.T) {
	assert.True(t, entity.ValidApplicationStatus(entity.ApplicationStatusHired))
	assert.False(t, entity.ValidApplicationStatus("ghosted"))
}

// HasPermissions es un chequeo de subconjunto: todos los requeridos deben
// estar en la lista plana del rol.
func TestRoleHasPermissions(t *testing.T) {
	role := &entity.Role{
		Name:        entity.RoleRecruiter,
		Permissions: []string{"jobs:manage", "candidates:manage"},
	}

	assert.True(t, role.HasPermissions("jobs:manage"))
	assert.True(t, role.HasPermissions("jobs:manage", "candidates:manage"))
	assert.False(t, role.HasPermissions("roles:manage"))
	assert.False(t, role.HasPermissions("jobs:manage", "roles:manage"))

	var nilRole *entity.Role
	assert.False(t, nilRole.HasPermissions("jobs:manage"))
	assert.True(t, role.HasPermissions(), "sin requisitos el chequeo pasa")
}

// TenantID de un usuario sin company (cuenta de candidato) es la cadena vacía.
func TestUserTenantID(t *testing.T) {
	companyID := "company-1"
	staff := &entity.User{ID: "u1", CompanyID: &companyID}
	assert.Equal(t, "company-1", staff.TenantID())

	candidate := &entity.User{ID: "u2"}
	assert.Empty(t, candidate.TenantID())

	var nobody *entity.User
	assert.Empty(t, nobody.TenantID())
}
