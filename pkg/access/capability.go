package access

import "strings"

// capabilityDelimiter separates the section prefix from the capability key.
const capabilityDelimiter = "."

// Section groups related capabilities of the recruiting workflow.
type Section string

// Permission schema sections.
const (
	SectionSourcing   Section = "sourcing"
	SectionOperations Section = "operations"
	SectionEvaluation Section = "evaluation"
	SectionAction     Section = "action"
)

// Capability is a single named boolean permission. The value is a dotted
// "section.key" scope, so the capability itself carries its section and a
// mismatched (section, capability) pair cannot be expressed with the typed
// constants below.
type Capability string

// The closed capability vocabulary. Capabilities are fixed at build time and
// never read from user data.
const (
	CapCreateLists            Capability = "sourcing.can_create_lists"
	CapViewListAnalytics      Capability = "sourcing.can_view_list_analytics"
	CapCreateInterviews       Capability = "operations.can_create_interviews"
	CapManageActiveInterviews Capability = "operations.can_manage_active_interviews"
	CapInviteCandidates       Capability = "operations.can_invite_candidates"
	CapViewResultsSummary     Capability = "evaluation.can_view_results_summary"
	CapViewDeepAnalytics      Capability = "evaluation.can_view_deep_analytics"
	CapViewPII                Capability = "evaluation.can_view_pii"
	CapHireReject             Capability = "action.can_hire_reject"
)

// sectionCapabilities fixes the schema layout and the enumeration order.
var sectionCapabilities = map[Section][]Capability{
	SectionSourcing:   {CapCreateLists, CapViewListAnalytics},
	SectionOperations: {CapCreateInterviews, CapManageActiveInterviews, CapInviteCandidates},
	SectionEvaluation: {CapViewResultsSummary, CapViewDeepAnalytics, CapViewPII},
	SectionAction:     {CapHireReject},
}

// capabilitySections is the reverse index from capability to owning section.
var capabilitySections = func() map[Capability]Section {
	index := make(map[Capability]Section)
	for section, caps := range sectionCapabilities {
		for _, c := range caps {
			index[c] = section
		}
	}
	return index
}()

// Valid reports whether the section is part of the permission schema.
func (s Section) Valid() bool {
	_, ok := sectionCapabilities[s]
	return ok
}

// AllSections returns the schema sections in declaration order.
func AllSections() []Section {
	return []Section{SectionSourcing, SectionOperations, SectionEvaluation, SectionAction}
}

// ParseSection converts a raw string into a Section.
// Returns ErrUnknownSection for anything outside the schema.
func ParseSection(raw string) (Section, error) {
	s := Section(raw)
	if !s.Valid() {
		return "", ErrUnknownSection
	}
	return s, nil
}

// Valid reports whether the capability is part of the permission schema.
func (c Capability) Valid() bool {
	_, ok := capabilitySections[c]
	return ok
}

// Section returns the section the capability belongs to.
// Returns the empty section for capabilities outside the schema.
func (c Capability) Section() Section {
	return capabilitySections[c]
}

// Key returns the bare capability key without the section prefix,
// e.g. "can_hire_reject" for CapHireReject.
func (c Capability) Key() string {
	_, key, _ := strings.Cut(string(c), capabilityDelimiter)
	return key
}

// AllCapabilities returns every capability in the schema, grouped by section
// in declaration order.
func AllCapabilities() []Capability {
	all := make([]Capability, 0, len(capabilitySections))
	for _, section := range AllSections() {
		all = append(all, sectionCapabilities[section]...)
	}
	return all
}

// SectionCapabilities returns the capabilities owned by the given section.
// The returned slice is a copy and safe to modify.
func SectionCapabilities(s Section) []Capability {
	caps, ok := sectionCapabilities[s]
	if !ok {
		return nil
	}
	out := make([]Capability, len(caps))
	copy(out, caps)
	return out
}

// ParseCapability converts a raw dotted scope into a Capability.
// Returns ErrUnknownCapability for anything outside the schema, so boundary
// code can distinguish misuse from a legitimate denial.
func ParseCapability(raw string) (Capability, error) {
	c := Capability(raw)
	if !c.Valid() {
		return "", ErrUnknownCapability
	}
	return c, nil
}
