package user

type Role string

const (
	RoleOwner      Role = "owner"      // Administrative superuser - full access
	RoleManager    Role = "manager"    // Approves submitted monthly reports
	RoleAccounting Role = "accounting" // Finalizes approved monthly reports
	RoleEmployee   Role = "employee"   // Records their own work time
)

// ValidRoles lists every role accepted from requests and token claims.
var ValidRoles = []Role{RoleOwner, RoleManager, RoleAccounting, RoleEmployee}

// Actor is the identity every state-changing call is made on behalf of. It is built from
// the verified access token and passed explicitly; nothing is read from ambient state.
type Actor struct {
	EmployeeID string
	Role       Role
}

// Can checks if the actor's role grants a permission
func (a Actor) Can(permission Permission) bool {
	return HasPermission(a.Role, permission)
}

// Owns reports whether the actor is the employee the data belongs to.
func (a Actor) Owns(employeeID string) bool {
	return a.EmployeeID != "" && a.EmployeeID == employeeID
}

// IsPrivileged checks if actor may act on other employees' reports
func (a Actor) IsPrivileged() bool {
	return a.Can(PermissionReportViewAll)
}

// ParseRole returns the role and whether it is known.
func ParseRole(s string) (Role, bool) {
	for _, r := range ValidRoles {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}
