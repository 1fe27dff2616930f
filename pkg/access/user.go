package access

import "github.com/google/uuid"

// User is a workspace member: identity, role, and, for Associates only, a
// fine-grained permission config.
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	AvatarURL string
	Role      Role

	// ParentID is the user that provisioned this one. It records lineage
	// only and never affects permission resolution.
	ParentID *uuid.UUID

	// Permissions is present if and only if Role is RoleAssociate. Privileged
	// roles derive their access from the role alone and must not carry a
	// config.
	Permissions Config
}

// NewUser constructs a user with a freshly generated identity.
//
// For an Associate, cfg is attached as an independent copy; passing nil
// attaches the all-denied default. For every other role the cfg argument is
// discarded, enforcing the role/config invariant at the construction boundary
// instead of trusting callers. Returns ErrUnknownRole for roles outside the
// hierarchy.
func NewUser(name, email string, role Role, cfg Config) (User, error) {
	if !role.Valid() {
		return User{}, ErrUnknownRole
	}

	u := User{
		ID:    uuid.New(),
		Name:  name,
		Email: email,
		Role:  role,
	}

	if role == RoleAssociate {
		if cfg == nil {
			cfg = NewConfig()
		}
		u.Permissions = cfg.Clone()
	}

	return u, nil
}
