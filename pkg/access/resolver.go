package access

// Allowed is the single decision point for every capability check in the
// application. Funneling all checks through one function keeps call sites
// from duplicating (and diverging on) the resolution rules.
//
// Resolution order:
//
//  1. Capabilities outside the schema are never granted, to any role.
//  2. Privileged roles (everything above Associate) hold every capability
//     unconditionally.
//  3. An Associate is granted exactly what its config grants. A missing
//     config is an empty grant set, not an error: absence fails closed.
//
// Allowed has no side effects and never mutates the user.
func Allowed(u User, cap Capability) bool {
	if !cap.Valid() {
		return false
	}
	if u.Role.Privileged() {
		return true
	}
	if u.Permissions == nil {
		return false
	}
	return u.Permissions.Allowed(cap)
}
