// Package roster owns the shared mutable state around the access core: the
// list of workspace users and the "current user" selection that drives the
// UI. The pure operations in pkg/access produce new permission values; the
// registry is the collaborator that commits them, serializing every
// read-modify-write under its lock so embedded concurrent use cannot lose
// updates.
//
// The registry is append-only and deliberately performs no uniqueness
// validation on names or emails.
//
//	reg := roster.New()
//	if err := roster.Seed(reg); err != nil {
//	    // handle bootstrap failure
//	}
//
//	cfg, _ := access.PresetSourcing.Apply(nil)
//	u, _ := reg.CreateUser("Sam", "sam@agency.test", access.RoleAssociate, cfg)
//	_ = reg.Toggle(u.ID, access.CapInviteCandidates)
package roster
