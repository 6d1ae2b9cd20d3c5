package entity

// Nombres de rol conocidos por los middlewares de autorización.
const (
	RoleAdministrator = "Administrator"
	RoleRecruiter     = "Recruiter"
	RoleHiringManager = "HiringManager"
	RoleCandidate     = "Candidate"
)

// Role conjunto de permisos con nombre. Catálogo global, NO está scoped por tenant.
type Role struct {
	ID          string
	Name        string
	Permissions []string
}

// HasPermissions informa si el rol contiene todos los permisos requeridos
// (chequeo de subconjunto, sin herencia entre roles).
func (r *Role) HasPermissions(required ...string) bool {
	if r == nil {
		return false
	}
	for _, want := range required {
		found := false
		for _, p := range r.Permissions {
			if p == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
