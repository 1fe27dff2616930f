package roster

import (
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/scoutdeck/scoutdeck/pkg/access"
)

// Registry holds every user in the workspace plus the current-user selection.
// It is safe for concurrent use and hands out snapshot copies, so callers can
// never mutate registry state through a returned value.
type Registry struct {
	mu      sync.RWMutex
	users   []access.User
	index   map[uuid.UUID]int
	current uuid.UUID
	logger  *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger for provisioning events.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		index:  make(map[uuid.UUID]int),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Append adds a user to the registry. The registry is append-only and does
// not deduplicate names or emails.
func (r *Registry) Append(u access.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.append(u)
}

// append must be called with the write lock held.
func (r *Registry) append(u access.User) {
	u.Permissions = u.Permissions.Clone()
	r.users = append(r.users, u)
	r.index[u.ID] = len(r.users) - 1
}

// Len returns the number of registered users.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

// Users returns a snapshot of all users in registration order.
func (r *Registry) Users() []access.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]access.User, len(r.users))
	for i, u := range r.users {
		out[i] = snapshot(u)
	}
	return out
}

// ByID returns a snapshot of the user with the given ID.
func (r *Registry) ByID(id uuid.UUID) (access.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return access.User{}, false
	}
	return snapshot(r.users[i]), true
}

// Current returns a snapshot of the currently selected user.
func (r *Registry) Current() (access.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[r.current]
	if !ok {
		return access.User{}, false
	}
	return snapshot(r.users[i]), true
}

// SetCurrent selects the acting user. Returns ErrUserNotFound when the ID is
// not registered.
func (r *Registry) SetCurrent(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[id]; !ok {
		return ErrUserNotFound
	}
	r.current = id
	return nil
}

// snapshot returns a copy of u whose permission config is independent of
// registry state.
func snapshot(u access.User) access.User {
	u.Permissions = u.Permissions.Clone()
	return u
}
