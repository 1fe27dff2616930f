package roster

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/scoutdeck/scoutdeck/pkg/access"
)

// CreateUser provisions a new workspace member and registers it. The config
// argument is honored only for Associates; access.NewUser discards it for
// privileged roles. When a current user is selected, it is recorded as the
// new user's provisioning parent.
func (r *Registry) CreateUser(name, email string, role access.Role, cfg access.Config) (access.User, error) {
	u, err := access.NewUser(name, email, role, cfg)
	if err != nil {
		return access.User{}, err
	}

	r.mu.Lock()
	if i, ok := r.index[r.current]; ok {
		parentID := r.users[i].ID
		u.ParentID = &parentID
	}
	r.append(u)
	r.mu.Unlock()

	r.logger.Debug("user provisioned",
		slog.String("user_id", u.ID.String()),
		slog.String("role", string(u.Role)))

	return snapshot(u), nil
}

// SetPermissions replaces an Associate's permission config with an
// independent copy of cfg. A nil cfg detaches the config entirely, which
// resolves as deny-all. Privileged users are rejected with ErrNotConfigurable.
func (r *Registry) SetPermissions(id uuid.UUID, cfg access.Config) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return ErrUserNotFound
	}
	if r.users[i].Role != access.RoleAssociate {
		return ErrNotConfigurable
	}

	r.users[i].Permissions = cfg.Clone()
	return nil
}

// Toggle flips a single capability on an Associate's config. The
// read-modify-write runs under the registry lock, so concurrent toggles on
// the same user cannot lose updates. An Associate without a config starts
// from the all-denied default.
func (r *Registry) Toggle(id uuid.UUID, cap access.Capability) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return ErrUserNotFound
	}
	if r.users[i].Role != access.RoleAssociate {
		return ErrNotConfigurable
	}

	next, err := r.users[i].Permissions.Toggle(cap)
	if err != nil {
		return err
	}
	r.users[i].Permissions = next
	return nil
}
