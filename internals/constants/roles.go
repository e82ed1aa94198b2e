package constants

// Role di claim "role" token Supabase.
const (
	RoleAuthenticated = "authenticated"
	RoleServiceRole   = "service_role"
	RoleAnon          = "anon"
)

// APIRoles boleh memanggil /api kalau verifikasi JWT aktif.
var APIRoles = []string{RoleAuthenticated, RoleServiceRole}
