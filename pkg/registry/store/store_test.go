package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqvault/seqvault/pkg/registry/models"
)

// createTestStore creates an in-memory SQLite store for testing.
func createTestStore(t *testing.T) *GORMStore {
	t.Helper()
	store, err := New(&Config{
		Type: DatabaseTypeSQLite,
		SQLite: SQLiteConfig{
			Path: ":memory:",
		},
	})
	require.NoError(t, err, "failed to create test store")

	// Every pooled connection to :memory: would get its own database, so
	// pin the pool to a single connection.
	sqlDB, err := store.DB().DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() { _ = store.Close() })
	return store
}

func createTestOrg(t *testing.T, store *GORMStore, slug string) *models.Organization {
	t.Helper()
	org := &models.Organization{Slug: slug, DisplayName: "Org " + slug}
	_, err := store.CreateOrganization(context.Background(), org)
	require.NoError(t, err)
	return org
}

func createTestEntry(t *testing.T, store *GORMStore, orgID, slug string) *models.RegistryEntry {
	t.Helper()
	entry := &models.RegistryEntry{
		OrganizationID:      orgID,
		Slug:                slug,
		EntryType:           models.EntryTypeDataSource,
		Name:                "Entry " + slug,
		SingleActiveVersion: true,
	}
	_, err := store.CreateEntry(context.Background(), entry)
	require.NoError(t, err)
	return entry
}

func createTestVersion(t *testing.T, store *GORMStore, entryID, label string) *models.Version {
	t.Helper()
	version := &models.Version{EntryID: entryID, Label: label}
	_, err := store.CreateVersion(context.Background(), version)
	require.NoError(t, err)
	return version
}

func TestNew(t *testing.T) {
	t.Run("default config uses sqlite", func(t *testing.T) {
		config := &Config{}
		config.ApplyDefaults()
		assert.Equal(t, DatabaseTypeSQLite, config.Type)
	})

	t.Run("invalid config returns error", func(t *testing.T) {
		_, err := New(&Config{Type: "invalid"})
		assert.Error(t, err)
	})

	t.Run("creates in-memory store", func(t *testing.T) {
		store := createTestStore(t)
		assert.NoError(t, store.Ping(context.Background()))
	})
}

func TestOrganizationOperations(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	t.Run("create organization", func(t *testing.T) {
		org := &models.Organization{Slug: "uniprot", DisplayName: "UniProt Consortium"}
		id, err := store.CreateOrganization(ctx, org)
		require.NoError(t, err)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, org.ID)
	})

	t.Run("duplicate slug fails", func(t *testing.T) {
		org := &models.Organization{Slug: "uniprot", DisplayName: "Other"}
		_, err := store.CreateOrganization(ctx, org)
		assert.ErrorIs(t, err, models.ErrDuplicateOrganization)
	})

	t.Run("invalid slug fails", func(t *testing.T) {
		org := &models.Organization{Slug: "Not A Slug", DisplayName: "x"}
		_, err := store.CreateOrganization(ctx, org)
		assert.Error(t, err)
	})

	t.Run("get organization", func(t *testing.T) {
		org, err := store.GetOrganization(ctx, "uniprot")
		require.NoError(t, err)
		assert.Equal(t, "UniProt Consortium", org.DisplayName)
		assert.Equal(t, models.OrganizationActive, org.Status)
	})

	t.Run("get organization not found", func(t *testing.T) {
		_, err := store.GetOrganization(ctx, "nonexistent")
		assert.ErrorIs(t, err, models.ErrOrganizationNotFound)
	})

	t.Run("update organization", func(t *testing.T) {
		org, err := store.GetOrganization(ctx, "uniprot")
		require.NoError(t, err)

		org.DisplayName = "UniProt"
		org.Website = "https://www.uniprot.org"
		require.NoError(t, store.UpdateOrganization(ctx, org))

		updated, err := store.GetOrganization(ctx, "uniprot")
		require.NoError(t, err)
		assert.Equal(t, "UniProt", updated.DisplayName)
		assert.Equal(t, "https://www.uniprot.org", updated.Website)
	})

	t.Run("soft delete keeps the row", func(t *testing.T) {
		createTestOrg(t, store, "ensembl")
		require.NoError(t, store.DeleteOrganization(ctx, "ensembl"))

		org, err := store.GetOrganization(ctx, "ensembl")
		require.NoError(t, err, "soft-deleted organizations stay readable")
		assert.True(t, org.IsDeleted())

		// Idempotent: deleting again is a no-op.
		assert.NoError(t, store.DeleteOrganization(ctx, "ensembl"))
	})

	t.Run("update after delete fails", func(t *testing.T) {
		org, err := store.GetOrganization(ctx, "ensembl")
		require.NoError(t, err)

		org.DisplayName = "Ensembl Genomes"
		err = store.UpdateOrganization(ctx, org)
		assert.ErrorIs(t, err, models.ErrOrganizationDeleted)
	})

	t.Run("list excludes deleted by default", func(t *testing.T) {
		orgs, err := store.ListOrganizations(ctx, false)
		require.NoError(t, err)
		for _, org := range orgs {
			assert.False(t, org.IsDeleted())
		}

		all, err := store.ListOrganizations(ctx, true)
		require.NoError(t, err)
		assert.Greater(t, len(all), len(orgs))
	})
}

func TestEntryOperations(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()
	org := createTestOrg(t, store, "ebi")

	t.Run("create entry", func(t *testing.T) {
		entry := &models.RegistryEntry{
			OrganizationID: org.ID,
			Slug:           "swissprot",
			EntryType:      models.EntryTypeDataSource,
			Name:           "Swiss-Prot",
		}
		id, err := store.CreateEntry(ctx, entry)
		require.NoError(t, err)
		assert.NotEmpty(t, id)
	})

	t.Run("duplicate slug within organization fails", func(t *testing.T) {
		entry := &models.RegistryEntry{
			OrganizationID: org.ID,
			Slug:           "swissprot",
			EntryType:      models.EntryTypeTool,
			Name:           "Other",
		}
		_, err := store.CreateEntry(ctx, entry)
		assert.ErrorIs(t, err, models.ErrDuplicateEntry)
	})

	t.Run("same slug in another organization succeeds", func(t *testing.T) {
		other := createTestOrg(t, store, "mirror")
		entry := &models.RegistryEntry{
			OrganizationID: other.ID,
			Slug:           "swissprot",
			EntryType:      models.EntryTypeDataSource,
			Name:           "Swiss-Prot Mirror",
		}
		_, err := store.CreateEntry(ctx, entry)
		assert.NoError(t, err)
	})

	t.Run("create under unknown organization fails", func(t *testing.T) {
		entry := &models.RegistryEntry{
			OrganizationID: "no-such-org",
			Slug:           "orphan",
			EntryType:      models.EntryTypeTool,
			Name:           "Orphan",
		}
		_, err := store.CreateEntry(ctx, entry)
		assert.ErrorIs(t, err, models.ErrOrganizationNotFound)
	})

	t.Run("create under deleted organization fails", func(t *testing.T) {
		gone := createTestOrg(t, store, "defunct")
		require.NoError(t, store.DeleteOrganization(ctx, "defunct"))

		entry := &models.RegistryEntry{
			OrganizationID: gone.ID,
			Slug:           "late",
			EntryType:      models.EntryTypeTool,
			Name:           "Late",
		}
		_, err := store.CreateEntry(ctx, entry)
		assert.ErrorIs(t, err, models.ErrOrganizationDeleted)
	})

	t.Run("get entry by organization and slug", func(t *testing.T) {
		entry, err := store.GetEntry(ctx, org.ID, "swissprot")
		require.NoError(t, err)
		assert.Equal(t, "Swiss-Prot", entry.Name)

		_, err = store.GetEntry(ctx, org.ID, "nonexistent")
		assert.ErrorIs(t, err, models.ErrEntryNotFound)
	})

	t.Run("update mutable fields", func(t *testing.T) {
		entry, err := store.GetEntry(ctx, org.ID, "swissprot")
		require.NoError(t, err)

		entry.Name = "UniProtKB/Swiss-Prot"
		entry.Description = "manually annotated protein sequences"
		entry.SingleActiveVersion = false
		require.NoError(t, store.UpdateEntry(ctx, entry))

		updated, err := store.GetEntryByID(ctx, entry.ID)
		require.NoError(t, err)
		assert.Equal(t, "UniProtKB/Swiss-Prot", updated.Name)
		assert.False(t, updated.SingleActiveVersion)
	})

	t.Run("delete entry with versions fails", func(t *testing.T) {
		entry := createTestEntry(t, store, org.ID, "blast")
		createTestVersion(t, store, entry.ID, "2.14.0")

		err := store.DeleteEntry(ctx, entry.ID)
		assert.ErrorIs(t, err, models.ErrEntryHasVersions)
	})

	t.Run("delete entry without versions", func(t *testing.T) {
		entry := createTestEntry(t, store, org.ID, "hmmer")
		require.NoError(t, store.DeleteEntry(ctx, entry.ID))

		_, err := store.GetEntryByID(ctx, entry.ID)
		assert.ErrorIs(t, err, models.ErrEntryNotFound)
	})

	t.Run("list entries ordered by slug", func(t *testing.T) {
		entries, err := store.ListEntries(ctx, org.ID)
		require.NoError(t, err)
		require.NotEmpty(t, entries)
		for i := 1; i < len(entries); i++ {
			assert.LessOrEqual(t, entries[i-1].Slug, entries[i].Slug)
		}
	})
}

func TestVersionOperations(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()
	org := createTestOrg(t, store, "ncbi")
	entry := createTestEntry(t, store, org.ID, "genbank")

	t.Run("create version defaults to draft", func(t *testing.T) {
		version := &models.Version{EntryID: entry.ID, Label: "release-259"}
		id, err := store.CreateVersion(ctx, version)
		require.NoError(t, err)
		assert.NotEmpty(t, id)
		assert.Equal(t, models.VersionDraft, version.Status)
	})

	t.Run("duplicate label within entry fails", func(t *testing.T) {
		version := &models.Version{EntryID: entry.ID, Label: "release-259"}
		_, err := store.CreateVersion(ctx, version)
		assert.ErrorIs(t, err, models.ErrDuplicateVersion)
	})

	t.Run("create for unknown entry fails", func(t *testing.T) {
		version := &models.Version{EntryID: "no-such-entry", Label: "v1"}
		_, err := store.CreateVersion(ctx, version)
		assert.ErrorIs(t, err, models.ErrEntryNotFound)
	})

	t.Run("get by label", func(t *testing.T) {
		version, err := store.GetVersionByLabel(ctx, entry.ID, "release-259")
		require.NoError(t, err)
		assert.Equal(t, models.VersionDraft, version.Status)

		_, err = store.GetVersionByLabel(ctx, entry.ID, "release-0")
		assert.ErrorIs(t, err, models.ErrVersionNotFound)
	})

	t.Run("publish draft", func(t *testing.T) {
		version, err := store.GetVersionByLabel(ctx, entry.ID, "release-259")
		require.NoError(t, err)

		require.NoError(t, store.UpdateVersionStatus(ctx, version.ID, models.VersionPublished))

		published, err := store.GetVersion(ctx, version.ID)
		require.NoError(t, err)
		assert.Equal(t, models.VersionPublished, published.Status)
	})

	t.Run("second publish conflicts under single-active-version", func(t *testing.T) {
		second := createTestVersion(t, store, entry.ID, "release-260")

		err := store.UpdateVersionStatus(ctx, second.ID, models.VersionPublished)
		assert.ErrorIs(t, err, models.ErrVersionAlreadyPublished)
		assert.True(t, models.IsConflict(err))
	})

	t.Run("publish succeeds after deprecating the active version", func(t *testing.T) {
		active, err := store.GetVersionByLabel(ctx, entry.ID, "release-259")
		require.NoError(t, err)
		require.NoError(t, store.UpdateVersionStatus(ctx, active.ID, models.VersionDeprecated))

		next, err := store.GetVersionByLabel(ctx, entry.ID, "release-260")
		require.NoError(t, err)
		assert.NoError(t, store.UpdateVersionStatus(ctx, next.ID, models.VersionPublished))
	})

	t.Run("backward transition fails", func(t *testing.T) {
		version, err := store.GetVersionByLabel(ctx, entry.ID, "release-260")
		require.NoError(t, err)

		err = store.UpdateVersionStatus(ctx, version.ID, models.VersionDraft)
		assert.ErrorIs(t, err, models.ErrInvalidStatusTransition)
	})

	t.Run("archived is terminal", func(t *testing.T) {
		version, err := store.GetVersionByLabel(ctx, entry.ID, "release-259")
		require.NoError(t, err)
		require.NoError(t, store.UpdateVersionStatus(ctx, version.ID, models.VersionArchived))

		err = store.UpdateVersionStatus(ctx, version.ID, models.VersionPublished)
		assert.ErrorIs(t, err, models.ErrInvalidStatusTransition)
	})

	t.Run("multiple published without single-active-version", func(t *testing.T) {
		multi := createTestEntry(t, store, org.ID, "refseq")
		multi.SingleActiveVersion = false
		require.NoError(t, store.UpdateEntry(ctx, multi))

		v1 := createTestVersion(t, store, multi.ID, "release-1")
		v2 := createTestVersion(t, store, multi.ID, "release-2")
		assert.NoError(t, store.UpdateVersionStatus(ctx, v1.ID, models.VersionPublished))
		assert.NoError(t, store.UpdateVersionStatus(ctx, v2.ID, models.VersionPublished))
	})

	t.Run("set and clear blob coordinates", func(t *testing.T) {
		version, err := store.GetVersionByLabel(ctx, entry.ID, "release-260")
		require.NoError(t, err)

		ref := models.BlobRef{
			Key:         "ncbi/genbank/" + version.ID + "/content",
			Size:        1024,
			Checksum:    "deadbeef",
			ContentType: "application/gzip",
		}
		require.NoError(t, store.SetVersionBlob(ctx, version.ID, ref))

		stored, err := store.GetVersion(ctx, version.ID)
		require.NoError(t, err)
		assert.True(t, stored.HasBlob())
		assert.Equal(t, ref, stored.Ref())

		require.NoError(t, store.ClearVersionBlob(ctx, version.ID))
		cleared, err := store.GetVersion(ctx, version.ID)
		require.NoError(t, err)
		assert.False(t, cleared.HasBlob())
	})

	t.Run("set blob on unknown version fails", func(t *testing.T) {
		err := store.SetVersionBlob(ctx, "no-such-version", models.BlobRef{Key: "k"})
		assert.ErrorIs(t, err, models.ErrVersionNotFound)
	})

	t.Run("list versions ordered by creation time", func(t *testing.T) {
		versions, err := store.ListVersions(ctx, entry.ID)
		require.NoError(t, err)
		require.Len(t, versions, 2)
		for i := 1; i < len(versions); i++ {
			assert.False(t, versions[i].CreatedAt.Before(versions[i-1].CreatedAt))
		}
	})

	t.Run("delete version", func(t *testing.T) {
		victim := createTestVersion(t, store, entry.ID, "release-261")
		require.NoError(t, store.DeleteVersion(ctx, victim.ID))
		assert.ErrorIs(t, store.DeleteVersion(ctx, victim.ID), models.ErrVersionNotFound)
	})
}

// TestConcurrentPublish exercises the single-active-version race: two
// publishers, one winner. The loser may fail with the conflict sentinel or
// with a backend serialization error, but never succeed.
func TestConcurrentPublish(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()
	org := createTestOrg(t, store, "race")
	entry := createTestEntry(t, store, org.ID, "contested")

	a := createTestVersion(t, store, entry.ID, "v1")
	b := createTestVersion(t, store, entry.ID, "v2")

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, id := range []string{a.ID, b.ID} {
		wg.Add(1)
		go func(slot int, versionID string) {
			defer wg.Done()
			errs[slot] = store.UpdateVersionStatus(ctx, versionID, models.VersionPublished)
		}(i, id)
	}
	wg.Wait()

	var published int
	for _, id := range []string{a.ID, b.ID} {
		version, err := store.GetVersion(ctx, id)
		require.NoError(t, err)
		if version.Status == models.VersionPublished {
			published++
		}
	}
	assert.Equal(t, 1, published, "exactly one version may win the publish race")

	failures := 0
	for _, err := range errs {
		if err != nil {
			failures++
		}
	}
	assert.Equal(t, 1, failures, "exactly one publisher must fail")
}

func TestSearchEntries(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()
	org := createTestOrg(t, store, "search")

	seed := []struct {
		slug, name, description string
	}{
		{"blast", "BLAST", "basic local alignment search tool for protein sequences"},
		{"protein-db", "Protein Atlas", "tissue-level protein expression"},
		{"genome-viz", "Genome Browser", "interactive genome visualization"},
		{"uniprot-sync", "UniProt Sync", "mirrors protein annotations nightly"},
	}
	for _, row := range seed {
		entry := &models.RegistryEntry{
			OrganizationID: org.ID,
			Slug:           row.slug,
			EntryType:      models.EntryTypeTool,
			Name:           row.name,
			Description:    row.description,
		}
		_, err := store.CreateEntry(ctx, entry)
		require.NoError(t, err)
		// Spread creation times so tie-breaking is deterministic.
		time.Sleep(5 * time.Millisecond)
	}

	t.Run("name match outranks description match", func(t *testing.T) {
		results, err := store.SearchEntries(ctx, "protein", 0)
		require.NoError(t, err)
		require.NotEmpty(t, results)

		assert.Equal(t, "Protein Atlas", results[0].Entry.Name,
			"name-prefix match ranks first")
		for i := 1; i < len(results); i++ {
			assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
		}
	})

	t.Run("exact name match ranks highest", func(t *testing.T) {
		results, err := store.SearchEntries(ctx, "blast", 0)
		require.NoError(t, err)
		require.NotEmpty(t, results)
		assert.Equal(t, "BLAST", results[0].Entry.Name)
	})

	t.Run("ties break newest first", func(t *testing.T) {
		results, err := store.SearchEntries(ctx, "genome", 0)
		require.NoError(t, err)
		for i := 1; i < len(results); i++ {
			if results[i].Score == results[i-1].Score {
				assert.False(t, results[i-1].Entry.CreatedAt.Before(results[i].Entry.CreatedAt))
			}
		}
	})

	t.Run("limit truncates", func(t *testing.T) {
		results, err := store.SearchEntries(ctx, "protein", 1)
		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("empty query returns nothing", func(t *testing.T) {
		results, err := store.SearchEntries(ctx, "   ", 0)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("like metacharacters are literal", func(t *testing.T) {
		results, err := store.SearchEntries(ctx, "%", 0)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestIsUniqueConstraintError(t *testing.T) {
	assert.False(t, isUniqueConstraintError(nil))
	assert.True(t, isUniqueConstraintError(errors.New("UNIQUE constraint failed: organizations.slug")))
	assert.True(t, isUniqueConstraintError(errors.New(`duplicate key value violates unique constraint "idx_entry_org_slug"`)))
	assert.False(t, isUniqueConstraintError(errors.New("connection refused")))
}
