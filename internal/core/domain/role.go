package domain

// Role identifies a case-worker viewpoint. Each role receives its own
// prioritised lens over the same underlying domain summaries. The set is
// closed: adding a role means extending AllRoles and every table keyed by it.
type Role string

const (
	// RoleParalegal works the file day to day: chasing records,
	// assembling bundles.
	RoleParalegal Role = "paralegal"

	// RoleSolicitor runs the matter and owns strategy on the file.
	RoleSolicitor Role = "solicitor"

	// RoleSupervisor oversees the file: risk, deadlines, spend.
	RoleSupervisor Role = "supervisor"

	// RoleCounsel is instructed advocacy counsel preparing for hearings.
	RoleCounsel Role = "counsel"

	// RoleCosts prepares schedules and negotiates recoverable costs.
	RoleCosts Role = "costs"

	// RoleClientCare keeps the client informed in plain terms.
	RoleClientCare Role = "client_care"
)

// AllRoles lists every role in fixed order. A layered summary always carries
// exactly one lens per entry.
var AllRoles = []Role{
	RoleParalegal,
	RoleSolicitor,
	RoleSupervisor,
	RoleCounsel,
	RoleCosts,
	RoleClientCare,
}

// Title returns the human-readable display title for a role.
func (r Role) Title() string {
	switch r {
	case RoleParalegal:
		return "Paralegal"
	case RoleSolicitor:
		return "Solicitor"
	case RoleSupervisor:
		return "Supervisor"
	case RoleCounsel:
		return "Counsel"
	case RoleCosts:
		return "Costs Drafter"
	case RoleClientCare:
		return "Client Care"
	}
	return string(r)
}
