package access

import "maps"

// Config is the fine-grained permission set of an Associate: a total mapping
// from every capability in the schema to a grant flag. A nil Config means "no
// config attached" and resolves to deny-all; a fresh config from NewConfig
// carries every capability explicitly set to false.
type Config map[Capability]bool

// NewConfig returns a config with every capability in the schema explicitly
// denied. There is no "unset" state: the config is total by construction.
func NewConfig() Config {
	cfg := make(Config, len(capabilitySections))
	for c := range capabilitySections {
		cfg[c] = false
	}
	return cfg
}

// Clone returns an independent copy of the config. Cloning nil returns nil.
func (c Config) Clone() Config {
	if c == nil {
		return nil
	}
	out := make(Config, len(c))
	maps.Copy(out, c)
	return out
}

// Allowed reports whether the capability is granted. A missing entry and a
// nil config both read as denied.
func (c Config) Allowed(cap Capability) bool {
	return c[cap]
}

// Toggle flips exactly one capability and returns the result as a new value,
// leaving the receiver untouched. Toggling on a nil config starts from the
// all-denied default. Returns ErrUnknownCapability for capabilities outside
// the schema.
func (c Config) Toggle(cap Capability) (Config, error) {
	if !cap.Valid() {
		return nil, ErrUnknownCapability
	}
	out := c.Clone()
	if out == nil {
		out = NewConfig()
	}
	out[cap] = !out[cap]
	return out, nil
}
