package access

// Preset is a named capability bundle applied in one step when provisioning
// an Associate.
type Preset string

// Provisioning presets.
const (
	// PresetSourcing enables both sourcing capabilities.
	PresetSourcing Preset = "sourcing"

	// PresetReviewer enables the evaluation summary and deep analytics
	// capabilities. PII stays denied.
	PresetReviewer Preset = "reviewer"

	// PresetCustom denotes manual toggling; applying it leaves the config
	// as-is.
	PresetCustom Preset = "custom"
)

// presetGrants lists the capabilities each preset enables on top of the
// all-denied default.
var presetGrants = map[Preset][]Capability{
	PresetSourcing: {CapCreateLists, CapViewListAnalytics},
	PresetReviewer: {CapViewResultsSummary, CapViewDeepAnalytics},
}

// Valid reports whether the preset is defined.
func (p Preset) Valid() bool {
	if p == PresetCustom {
		return true
	}
	_, ok := presetGrants[p]
	return ok
}

// AllPresets returns every defined preset.
func AllPresets() []Preset {
	return []Preset{PresetSourcing, PresetReviewer, PresetCustom}
}

// ParsePreset converts a raw string into a Preset.
// Returns ErrUnknownPreset for anything undefined.
func ParsePreset(raw string) (Preset, error) {
	p := Preset(raw)
	if !p.Valid() {
		return "", ErrUnknownPreset
	}
	return p, nil
}

// Apply returns the config produced by the preset. Sourcing and Reviewer
// derive from the all-denied default, discarding any prior manual toggles in
// cfg. Custom is an identity transform and returns an independent copy of
// cfg. The input is never mutated.
func (p Preset) Apply(cfg Config) (Config, error) {
	if p == PresetCustom {
		return cfg.Clone(), nil
	}
	grants, ok := presetGrants[p]
	if !ok {
		return nil, ErrUnknownPreset
	}
	out := NewConfig()
	for _, c := range grants {
		out[c] = true
	}
	return out, nil
}
