// Package store provides the registry metadata persistence layer.
//
// This package implements the Store interface for managing registry metadata:
// organizations, registry entries, and versions.
//
// Two backends are supported:
//   - SQLite (single-node, default)
//   - PostgreSQL (HA-capable)
package store

import (
	"context"

	"github.com/seqvault/seqvault/pkg/registry/models"
)

// Store provides the registry metadata persistence interface.
//
// Thread Safety: Implementations must be safe for concurrent use from multiple
// goroutines. All multi-statement mutations run inside a transaction; a
// concurrent reader never observes a partially-applied operation.
type Store interface {
	// ============================================
	// ORGANIZATION OPERATIONS
	// ============================================

	// CreateOrganization creates a new organization.
	// The ID will be generated if empty. Returns the generated ID.
	// Returns models.ErrDuplicateOrganization if the slug is taken.
	CreateOrganization(ctx context.Context, org *models.Organization) (string, error)

	// GetOrganization returns an organization by slug, including soft-deleted
	// ones. Returns models.ErrOrganizationNotFound if the slug is unknown.
	GetOrganization(ctx context.Context, slug string) (*models.Organization, error)

	// GetOrganizationByID returns an organization by its unique ID.
	// Returns models.ErrOrganizationNotFound if no organization has this ID.
	GetOrganizationByID(ctx context.Context, id string) (*models.Organization, error)

	// ListOrganizations returns all organizations, ordered by slug.
	// Soft-deleted organizations are excluded unless includeDeleted is set.
	ListOrganizations(ctx context.Context, includeDeleted bool) ([]*models.Organization, error)

	// UpdateOrganization updates an organization's mutable fields (display
	// name, website, description). The slug is immutable.
	// Returns models.ErrOrganizationNotFound if the organization doesn't exist.
	// Returns models.ErrOrganizationDeleted if it has been soft-deleted.
	UpdateOrganization(ctx context.Context, org *models.Organization) error

	// DeleteOrganization soft-deletes an organization by slug. Entries keep
	// their owner reference; the row is never removed. Deleting an already
	// deleted organization is a no-op.
	// Returns models.ErrOrganizationNotFound if the slug is unknown.
	DeleteOrganization(ctx context.Context, slug string) error

	// ============================================
	// REGISTRY ENTRY OPERATIONS
	// ============================================

	// CreateEntry creates a new registry entry under its organization.
	// The ID will be generated if empty. Returns the generated ID.
	// Returns models.ErrOrganizationNotFound if the owning organization
	// doesn't exist, models.ErrOrganizationDeleted if it is soft-deleted,
	// and models.ErrDuplicateEntry if the slug is taken within the
	// organization.
	CreateEntry(ctx context.Context, entry *models.RegistryEntry) (string, error)

	// GetEntry returns an entry by organization ID and slug.
	// Returns models.ErrEntryNotFound if it doesn't exist.
	GetEntry(ctx context.Context, orgID, slug string) (*models.RegistryEntry, error)

	// GetEntryByID returns an entry by its unique ID.
	// Returns models.ErrEntryNotFound if no entry has this ID.
	GetEntryByID(ctx context.Context, id string) (*models.RegistryEntry, error)

	// ListEntries returns all entries of an organization, ordered by slug.
	ListEntries(ctx context.Context, orgID string) ([]*models.RegistryEntry, error)

	// UpdateEntry updates an entry's mutable fields (name, description,
	// single-active-version flag). Slug and entry type are immutable.
	// Returns models.ErrEntryNotFound if the entry doesn't exist.
	UpdateEntry(ctx context.Context, entry *models.RegistryEntry) error

	// DeleteEntry deletes an entry by ID.
	// Returns models.ErrEntryNotFound if the entry doesn't exist and
	// models.ErrEntryHasVersions while any version still references it.
	DeleteEntry(ctx context.Context, id string) error

	// SearchEntries performs a ranked search over entry names and
	// descriptions. Results are ordered by descending relevance score, ties
	// broken by most-recent-creation-first. limit <= 0 means no limit.
	SearchEntries(ctx context.Context, query string, limit int) ([]models.SearchResult, error)

	// ============================================
	// VERSION OPERATIONS
	// ============================================

	// CreateVersion creates a new version in draft status.
	// The ID will be generated if empty. Returns the generated ID.
	// Returns models.ErrEntryNotFound if the entry doesn't exist and
	// models.ErrDuplicateVersion if the label is taken within the entry.
	CreateVersion(ctx context.Context, version *models.Version) (string, error)

	// GetVersion returns a version by its unique ID.
	// Returns models.ErrVersionNotFound if no version has this ID.
	GetVersion(ctx context.Context, id string) (*models.Version, error)

	// GetVersionByLabel returns a version by entry ID and label.
	// Returns models.ErrVersionNotFound if it doesn't exist.
	GetVersionByLabel(ctx context.Context, entryID, label string) (*models.Version, error)

	// ListVersions returns all versions of an entry, ordered by creation
	// time (oldest first).
	ListVersions(ctx context.Context, entryID string) ([]*models.Version, error)

	// UpdateVersionStatus moves a version to the next lifecycle status
	// inside a single transaction. Transitions are forward-only; returns
	// models.ErrInvalidStatusTransition for anything else. When the target
	// status is "published" and the owning entry enforces single-active-
	// version semantics, the transaction verifies no sibling is published
	// and fails with models.ErrVersionAlreadyPublished if one is. Exactly
	// one of two concurrent publish attempts succeeds.
	// Returns models.ErrVersionNotFound if the version doesn't exist.
	UpdateVersionStatus(ctx context.Context, id string, next models.VersionStatus) error

	// SetVersionBlob records the blob coordinates of a version's payload.
	// Called only after the blob itself is durable in object storage.
	// Returns models.ErrVersionNotFound if the version doesn't exist.
	SetVersionBlob(ctx context.Context, id string, ref models.BlobRef) error

	// ClearVersionBlob removes the blob coordinates from a version.
	// Returns models.ErrVersionNotFound if the version doesn't exist.
	ClearVersionBlob(ctx context.Context, id string) error

	// DeleteVersion deletes a version by ID. Any attached blob is the
	// caller's responsibility; the store only removes the metadata row.
	// Returns models.ErrVersionNotFound if the version doesn't exist.
	DeleteVersion(ctx context.Context, id string) error

	// ============================================
	// LIFECYCLE
	// ============================================

	// Ping verifies the backend connection is alive.
	Ping(ctx context.Context) error

	// Close releases the underlying database connection.
	Close() error
}
