package roster

import "errors"

// Domain errors for registry operations.
var (
	// ErrUserNotFound is returned when the referenced user is not in the
	// registry.
	ErrUserNotFound = errors.New("roster.user_not_found")

	// ErrNotConfigurable is returned when a permission write targets a
	// privileged user. Privileged roles derive access from the role alone.
	ErrNotConfigurable = errors.New("roster.user_not_configurable")

	// ErrSeedConfig is returned when the seed configuration cannot be read
	// from the environment.
	ErrSeedConfig = errors.New("roster.invalid_seed_config")
)
