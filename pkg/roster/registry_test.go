package roster_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoutdeck/scoutdeck/pkg/access"
	"github.com/scoutdeck/scoutdeck/pkg/roster"
)

func newAssociate(t *testing.T, reg *roster.Registry, cfg access.Config) access.User {
	t.Helper()
	u, err := reg.CreateUser("Sam", "sam@agency.test", access.RoleAssociate, cfg)
	require.NoError(t, err)
	return u
}

func TestRegistryAppendAndLookup(t *testing.T) {
	t.Parallel()

	reg := roster.New()
	u, err := access.NewUser("Jane", "jane@agency.test", access.RoleManager, nil)
	require.NoError(t, err)

	reg.Append(u)
	assert.Equal(t, 1, reg.Len())

	got, ok := reg.ByID(u.ID)
	require.True(t, ok)
	assert.Equal(t, u, got)

	_, ok = reg.ByID(uuid.New())
	assert.False(t, ok)
}

func TestRegistryAllowsDuplicates(t *testing.T) {
	t.Parallel()

	reg := roster.New()
	for range 2 {
		_, err := reg.CreateUser("Jane", "jane@agency.test", access.RoleManager, nil)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, reg.Len())
}

func TestRegistryCurrentSelection(t *testing.T) {
	t.Parallel()

	reg := roster.New()
	_, ok := reg.Current()
	assert.False(t, ok, "empty registry has no current user")

	assert.True(t, errors.Is(reg.SetCurrent(uuid.New()), roster.ErrUserNotFound))

	u, err := reg.CreateUser("Jane", "jane@agency.test", access.RoleManager, nil)
	require.NoError(t, err)
	require.NoError(t, reg.SetCurrent(u.ID))

	cur, ok := reg.Current()
	require.True(t, ok)
	assert.Equal(t, u.ID, cur.ID)
}

func TestCreateUserRecordsLineage(t *testing.T) {
	t.Parallel()

	reg := roster.New()

	orphan, err := reg.CreateUser("Root", "root@agency.test", access.RoleAgencyAdmin, nil)
	require.NoError(t, err)
	assert.Nil(t, orphan.ParentID, "no current user means no parent")

	require.NoError(t, reg.SetCurrent(orphan.ID))
	child := newAssociate(t, reg, nil)
	require.NotNil(t, child.ParentID)
	assert.Equal(t, orphan.ID, *child.ParentID)
}

func TestCreateUserDiscardsConfigForPrivileged(t *testing.T) {
	t.Parallel()

	reg := roster.New()
	cfg, err := access.PresetSourcing.Apply(nil)
	require.NoError(t, err)

	u, err := reg.CreateUser("Jane", "jane@agency.test", access.RoleManager, cfg)
	require.NoError(t, err)
	assert.Nil(t, u.Permissions)
}

func TestRegistrySnapshots(t *testing.T) {
	t.Parallel()

	reg := roster.New()
	u := newAssociate(t, reg, access.NewConfig())

	// Mutating a returned snapshot must not leak into registry state.
	got, ok := reg.ByID(u.ID)
	require.True(t, ok)
	got.Permissions[access.CapHireReject] = true

	fresh, ok := reg.ByID(u.ID)
	require.True(t, ok)
	assert.False(t, fresh.Permissions.Allowed(access.CapHireReject))

	users := reg.Users()
	require.Len(t, users, 1)
	users[0].Permissions[access.CapHireReject] = true

	fresh, _ = reg.ByID(u.ID)
	assert.False(t, fresh.Permissions.Allowed(access.CapHireReject))
}

func TestToggleCommitsNewConfig(t *testing.T) {
	t.Parallel()

	reg := roster.New()
	u := newAssociate(t, reg, nil)

	require.NoError(t, reg.Toggle(u.ID, access.CapViewPII))
	got, _ := reg.ByID(u.ID)
	assert.True(t, got.Permissions.Allowed(access.CapViewPII))

	require.NoError(t, reg.Toggle(u.ID, access.CapViewPII))
	got, _ = reg.ByID(u.ID)
	assert.False(t, got.Permissions.Allowed(access.CapViewPII))
}

func TestToggleStartsFromDefaultWithoutConfig(t *testing.T) {
	t.Parallel()

	reg := roster.New()
	u := newAssociate(t, reg, nil)
	require.NoError(t, reg.SetPermissions(u.ID, nil))

	require.NoError(t, reg.Toggle(u.ID, access.CapCreateLists))
	got, _ := reg.ByID(u.ID)
	require.NotNil(t, got.Permissions)
	assert.True(t, got.Permissions.Allowed(access.CapCreateLists))
	assert.Len(t, got.Permissions, len(access.AllCapabilities()))
}

func TestToggleErrors(t *testing.T) {
	t.Parallel()

	reg := roster.New()
	admin, err := reg.CreateUser("Root", "root@agency.test", access.RoleAgencyAdmin, nil)
	require.NoError(t, err)
	u := newAssociate(t, reg, nil)

	assert.True(t, errors.Is(reg.Toggle(uuid.New(), access.CapViewPII), roster.ErrUserNotFound))
	assert.True(t, errors.Is(reg.Toggle(admin.ID, access.CapViewPII), roster.ErrNotConfigurable))
	assert.True(t, errors.Is(reg.Toggle(u.ID, access.Capability("action.can_fire")), access.ErrUnknownCapability))
}

func TestSetPermissionsErrors(t *testing.T) {
	t.Parallel()

	reg := roster.New()
	admin, err := reg.CreateUser("Root", "root@agency.test", access.RoleAgencyAdmin, nil)
	require.NoError(t, err)

	assert.True(t, errors.Is(reg.SetPermissions(uuid.New(), access.NewConfig()), roster.ErrUserNotFound))
	assert.True(t, errors.Is(reg.SetPermissions(admin.ID, access.NewConfig()), roster.ErrNotConfigurable))
}

func TestSetPermissionsClonesInput(t *testing.T) {
	t.Parallel()

	reg := roster.New()
	u := newAssociate(t, reg, nil)

	cfg, err := access.PresetReviewer.Apply(nil)
	require.NoError(t, err)
	require.NoError(t, reg.SetPermissions(u.ID, cfg))

	cfg[access.CapViewPII] = true
	got, _ := reg.ByID(u.ID)
	assert.False(t, got.Permissions.Allowed(access.CapViewPII))
}

func TestToggleConcurrent(t *testing.T) {
	t.Parallel()

	reg := roster.New()
	u := newAssociate(t, reg, nil)

	// An even number of toggles per capability must land back on denied.
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, reg.Toggle(u.ID, access.CapInviteCandidates))
			assert.NoError(t, reg.Toggle(u.ID, access.CapInviteCandidates))
		}()
	}
	wg.Wait()

	got, _ := reg.ByID(u.ID)
	assert.False(t, got.Permissions.Allowed(access.CapInviteCandidates))
}
