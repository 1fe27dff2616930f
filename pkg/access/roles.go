package access

// Role identifies a user's privilege tier within an agency workspace.
type Role string

// Workspace roles, ordered by privilege from highest to lowest.
const (
	RoleAgencyAdmin   Role = "agency_admin"
	RoleManager       Role = "manager"
	RoleLeadRecruiter Role = "lead_recruiter"
	RoleAssociate     Role = "associate"
)

// roleRanks orders roles by privilege; higher rank means more privilege.
var roleRanks = map[Role]int{
	RoleAgencyAdmin:   3,
	RoleManager:       2,
	RoleLeadRecruiter: 1,
	RoleAssociate:     0,
}

// Valid reports whether the role is part of the known hierarchy.
func (r Role) Valid() bool {
	_, ok := roleRanks[r]
	return ok
}

// Privileged reports whether the role bypasses fine-grained permission
// checks. Every role above Associate holds every capability unconditionally;
// there is no way to restrict a privileged role.
func (r Role) Privileged() bool {
	return r.Valid() && r != RoleAssociate
}

// AllRoles returns the role hierarchy from highest to lowest privilege.
func AllRoles() []Role {
	return []Role{RoleAgencyAdmin, RoleManager, RoleLeadRecruiter, RoleAssociate}
}

// ParseRole converts a raw string into a Role.
// Returns ErrUnknownRole for anything outside the hierarchy.
func ParseRole(raw string) (Role, error) {
	r := Role(raw)
	if !r.Valid() {
		return "", ErrUnknownRole
	}
	return r, nil
}
