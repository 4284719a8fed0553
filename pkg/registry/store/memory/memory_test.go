package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqvault/seqvault/pkg/registry/models"
	"github.com/seqvault/seqvault/pkg/registry/store"
)

var _ store.Store = (*Store)(nil)

func TestMemoryStoreLifecycle(t *testing.T) {
	s := New()
	ctx := context.Background()

	org := &models.Organization{Slug: "pdb", DisplayName: "Protein Data Bank"}
	orgID, err := s.CreateOrganization(ctx, org)
	require.NoError(t, err)

	_, err = s.CreateOrganization(ctx, &models.Organization{Slug: "pdb", DisplayName: "dup"})
	assert.ErrorIs(t, err, models.ErrDuplicateOrganization)

	entry := &models.RegistryEntry{
		OrganizationID:      orgID,
		Slug:                "structures",
		EntryType:           models.EntryTypeDataSource,
		Name:                "Structures",
		SingleActiveVersion: true,
	}
	entryID, err := s.CreateEntry(ctx, entry)
	require.NoError(t, err)

	v1 := &models.Version{EntryID: entryID, Label: "2026-01"}
	_, err = s.CreateVersion(ctx, v1)
	require.NoError(t, err)
	v2 := &models.Version{EntryID: entryID, Label: "2026-02"}
	_, err = s.CreateVersion(ctx, v2)
	require.NoError(t, err)

	require.NoError(t, s.UpdateVersionStatus(ctx, v1.ID, models.VersionPublished))
	assert.ErrorIs(t, s.UpdateVersionStatus(ctx, v2.ID, models.VersionPublished),
		models.ErrVersionAlreadyPublished)
	assert.ErrorIs(t, s.UpdateVersionStatus(ctx, v1.ID, models.VersionDraft),
		models.ErrInvalidStatusTransition)

	ref := models.BlobRef{Key: "pdb/structures/" + v1.ID + "/content", Size: 7, Checksum: "aa", ContentType: "text/plain"}
	require.NoError(t, s.SetVersionBlob(ctx, v1.ID, ref))
	got, err := s.GetVersion(ctx, v1.ID)
	require.NoError(t, err)
	assert.Equal(t, ref, got.Ref())

	assert.ErrorIs(t, s.DeleteEntry(ctx, entryID), models.ErrEntryHasVersions)

	require.NoError(t, s.DeleteVersion(ctx, v1.ID))
	require.NoError(t, s.DeleteVersion(ctx, v2.ID))
	require.NoError(t, s.DeleteEntry(ctx, entryID))

	require.NoError(t, s.DeleteOrganization(ctx, "pdb"))
	deleted, err := s.GetOrganization(ctx, "pdb")
	require.NoError(t, err)
	assert.True(t, deleted.IsDeleted())
}

func TestMemoryStoreMutationsDoNotLeak(t *testing.T) {
	s := New()
	ctx := context.Background()

	org := &models.Organization{Slug: "leak", DisplayName: "Leak Check"}
	_, err := s.CreateOrganization(ctx, org)
	require.NoError(t, err)

	// Mutating a returned copy must not affect the stored row.
	fetched, err := s.GetOrganization(ctx, "leak")
	require.NoError(t, err)
	fetched.DisplayName = "mutated"

	again, err := s.GetOrganization(ctx, "leak")
	require.NoError(t, err)
	assert.Equal(t, "Leak Check", again.DisplayName)
}
