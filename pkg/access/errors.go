package access

import "errors"

// Domain errors for permission model operations.
var (
	// ErrUnknownRole is returned when a role is outside the known hierarchy.
	ErrUnknownRole = errors.New("access.unknown_role")

	// ErrUnknownSection is returned when a section name is not part of the
	// permission schema.
	ErrUnknownSection = errors.New("access.unknown_section")

	// ErrUnknownCapability is returned when a capability key is not part of
	// the permission schema. Boundary code should surface it instead of
	// treating the lookup as a denial, so misuse is caught in testing.
	ErrUnknownCapability = errors.New("access.unknown_capability")

	// ErrUnknownPreset is returned when a preset name has no definition.
	ErrUnknownPreset = errors.New("access.unknown_preset")
)
