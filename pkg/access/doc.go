// Package access implements the permission model of a multi-tenant recruiting
// workspace: a small role hierarchy layered over fine-grained, per-user
// capability grants.
//
// Key concepts:
//
//   - Role: a privilege tier. Every role above Associate is granted every
//     capability unconditionally; only Associates are subject to fine-grained
//     checks.
//   - Capability: a single named boolean permission, expressed as a dotted
//     "section.key" constant (e.g. access.CapHireReject). The vocabulary is
//     closed and known at build time, so a (section, capability) pair that
//     does not exist cannot be constructed from the typed constants.
//   - Config: the total set of capability grants for an Associate. A fresh
//     config denies everything; absence of a config also denies everything.
//   - Preset: a named capability bundle (Sourcing, Reviewer) applied in one
//     step when provisioning an Associate.
//
// Every capability check in the application funnels through Allowed:
//
//	user, _ := access.NewUser("Jane", "jane@agency.test", access.RoleAssociate, nil)
//	if access.Allowed(user, access.CapViewPII) {
//	    // show candidate contact details
//	}
//
// Config values are immutable in use: Toggle and Preset.Apply return new
// values and never mutate their input, so two users can never silently share
// grant state.
//
//	cfg, _ := access.PresetSourcing.Apply(nil)
//	cfg, _ = cfg.Toggle(access.CapInviteCandidates)
package access
