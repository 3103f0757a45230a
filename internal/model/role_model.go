package model

// Role is the closed set of actor roles. Guest is never stored; it names the
// absence of an authenticated actor in responses and logs.
type Role string

const (
	RoleAdmin             Role = "admin"
	RoleClient            Role = "client"
	RoleClientCoordinator Role = "client_coordinator"
	RoleSuperCoordinator  Role = "super_coordinator"
	RoleInterviewer       Role = "interviewer"
	RoleCandidate         Role = "candidate"
	RoleAccountant        Role = "accountant"
	RoleGuest             Role = "guest"
)

// roleAliases remaps historical role names to their successors. Applied
// exactly once, at the session-ingestion boundary; nothing downstream ever
// sees an alias.
var roleAliases = map[string]Role{
	"interviewee": RoleCandidate,
}

var assignableRoles = map[Role]bool{
	RoleAdmin:             true,
	RoleClient:            true,
	RoleClientCoordinator: true,
	RoleSuperCoordinator:  true,
	RoleInterviewer:       true,
	RoleCandidate:         true,
	RoleAccountant:        true,
}

// CanonicalRole maps a raw role claim to the closed set. The boolean is false
// for anything outside the set, guest included: guests are modeled as the
// absence of an actor, not as an assignable role.
func CanonicalRole(raw string) (Role, bool) {
	if r, ok := roleAliases[raw]; ok {
		return r, true
	}
	r := Role(raw)
	if assignableRoles[r] {
		return r, true
	}
	return RoleGuest, false
}

// Member reports whether r is in the given required set. An empty set means
// any authenticated role.
func (r Role) Member(required []Role) bool {
	if len(required) == 0 {
		return true
	}
	for _, want := range required {
		if r == want {
			return true
		}
	}
	return false
}

// DashboardPath returns the landing route for a role. Pure; the handler layer
// owns the actual redirect.
func DashboardPath(r Role) string {
	switch r {
	case RoleAdmin:
		return "/dashboard/admin/companies"
	case RoleInterviewer:
		return "/interviewer"
	case RoleCandidate:
		return "/candidate"
	case RoleClient, RoleClientCoordinator:
		return "/organization"
	default:
		return "/dashboard"
	}
}
