package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrganizationValidate(t *testing.T) {
	org := &Organization{Slug: "uniprot", DisplayName: "UniProt Consortium"}
	assert.NoError(t, org.Validate())

	tests := []struct {
		name string
		org  Organization
	}{
		{"empty slug", Organization{DisplayName: "x"}},
		{"uppercase slug", Organization{Slug: "UniProt", DisplayName: "x"}},
		{"spaces in slug", Organization{Slug: "uni prot", DisplayName: "x"}},
		{"trailing dash", Organization{Slug: "uniprot-", DisplayName: "x"}},
		{"missing display name", Organization{Slug: "uniprot"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.org.Validate())
		})
	}
}

func TestEntryValidate(t *testing.T) {
	entry := &RegistryEntry{
		OrganizationID: "org-1",
		Slug:           "swissprot",
		EntryType:      EntryTypeDataSource,
		Name:           "Swiss-Prot",
	}
	assert.NoError(t, entry.Validate())

	bad := *entry
	bad.EntryType = "pipeline"
	assert.Error(t, bad.Validate(), "entry type enumeration is closed")

	bad = *entry
	bad.OrganizationID = ""
	assert.Error(t, bad.Validate())
}

func TestVersionStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to VersionStatus
		allowed  bool
	}{
		{VersionDraft, VersionPublished, true},
		{VersionDraft, VersionDeprecated, true},
		{VersionDraft, VersionArchived, true},
		{VersionPublished, VersionDeprecated, true},
		{VersionPublished, VersionArchived, true},
		{VersionDeprecated, VersionArchived, true},
		{VersionPublished, VersionDraft, false},
		{VersionDeprecated, VersionPublished, false},
		{VersionArchived, VersionDraft, false},
		{VersionArchived, VersionPublished, false},
		{VersionArchived, VersionDeprecated, false},
		{VersionDraft, VersionDraft, false},
		{VersionArchived, VersionArchived, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestVersionStatusValid(t *testing.T) {
	assert.True(t, VersionDraft.Valid())
	assert.True(t, VersionArchived.Valid())
	assert.False(t, VersionStatus("released").Valid())
}

func TestIsConflictAndIsNotFound(t *testing.T) {
	assert.True(t, IsConflict(ErrDuplicateEntry))
	assert.True(t, IsConflict(ErrVersionAlreadyPublished))
	assert.True(t, IsConflict(ErrInvalidStatusTransition))
	assert.False(t, IsConflict(ErrEntryNotFound))

	assert.True(t, IsNotFound(ErrVersionNotFound))
	assert.False(t, IsNotFound(ErrDuplicateOrganization))
}
