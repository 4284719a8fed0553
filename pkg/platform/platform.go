// Package platform composes the registry metadata store and the blob store
// behind one entity-oriented API. It owns the cross-reference invariant
// between them: a version row that references a blob key is written only
// after the blob itself is durable, so any reader that follows the
// reference may assume the object exists and is checksum-valid.
package platform

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/seqvault/seqvault/internal/logger"
	"github.com/seqvault/seqvault/pkg/blob"
	"github.com/seqvault/seqvault/pkg/checksum"
	"github.com/seqvault/seqvault/pkg/registry/models"
	"github.com/seqvault/seqvault/pkg/registry/store"
)

// ErrNoBlobAttached is returned by blob read operations on a version that
// has no payload attached.
var ErrNoBlobAttached = errors.New("version has no blob attached")

// Platform is the storage facade. It is safe for concurrent use; it holds
// no cross-request locks — races on the same entity are resolved by the
// registry store's transaction isolation.
type Platform struct {
	registry store.Store
	blobs    blob.Store
}

// New creates a storage facade over the given backends.
func New(registry store.Store, blobs blob.Store) *Platform {
	return &Platform{
		registry: registry,
		blobs:    blobs,
	}
}

// Registry exposes the metadata store for pass-through entity operations.
func (p *Platform) Registry() store.Store {
	return p.registry
}

// Blobs exposes the object storage gateway for direct key-level access.
func (p *Platform) Blobs() blob.Store {
	return p.blobs
}

// BlobKey derives the deterministic storage key for a version's payload
// from its ownership path.
func BlobKey(orgSlug, entrySlug, versionID string) string {
	return fmt.Sprintf("%s/%s/%s/content", orgSlug, entrySlug, versionID)
}

// resolveOwnership walks a version up to its entry and organization.
func (p *Platform) resolveOwnership(ctx context.Context, versionID string) (*models.Version, *models.RegistryEntry, *models.Organization, error) {
	version, err := p.registry.GetVersion(ctx, versionID)
	if err != nil {
		return nil, nil, nil, err
	}
	entry, err := p.registry.GetEntryByID(ctx, version.EntryID)
	if err != nil {
		return nil, nil, nil, err
	}
	org, err := p.registry.GetOrganizationByID(ctx, entry.OrganizationID)
	if err != nil {
		return nil, nil, nil, err
	}
	return version, entry, org, nil
}

// ResolveVersion finds a version by its human-addressable path
// (organization slug, entry slug, version label).
func (p *Platform) ResolveVersion(ctx context.Context, orgSlug, entrySlug, label string) (*models.Version, error) {
	org, err := p.registry.GetOrganization(ctx, orgSlug)
	if err != nil {
		return nil, err
	}
	entry, err := p.registry.GetEntry(ctx, org.ID, entrySlug)
	if err != nil {
		return nil, err
	}
	return p.registry.GetVersionByLabel(ctx, entry.ID, label)
}

// AttachBlobToVersion uploads a version's payload and records its
// coordinates on the metadata row.
//
// The blob write happens first. If it fails, nothing is written to the
// registry. If the metadata update fails afterwards, the blob stays behind
// as an orphan — accepted, because the reverse (a metadata row pointing at
// a missing blob) would break every reader.
func (p *Platform) AttachBlobToVersion(ctx context.Context, versionID string, data []byte, contentType string) (models.BlobRef, error) {
	version, entry, org, err := p.resolveOwnership(ctx, versionID)
	if err != nil {
		return models.BlobRef{}, err
	}

	key := BlobKey(org.Slug, entry.Slug, version.ID)
	meta, err := p.blobs.Put(ctx, key, data, contentType)
	if err != nil {
		return models.BlobRef{}, fmt.Errorf("blob upload failed: %w", err)
	}

	ref := models.BlobRef{
		Key:         key,
		Size:        meta.Size,
		Checksum:    meta.Checksum.String(),
		ContentType: meta.ContentType,
	}
	if err := p.registry.SetVersionBlob(ctx, versionID, ref); err != nil {
		logger.Warn("blob attached but metadata update failed, object orphaned",
			logger.Key(key),
			logger.Version(versionID),
			logger.Err(err))
		return models.BlobRef{}, fmt.Errorf("metadata update failed: %w", err)
	}

	logger.Info("blob attached to version",
		logger.Organization(org.Slug),
		logger.Entry(entry.Slug),
		logger.Version(versionID),
		logger.Key(key),
		logger.Size(meta.Size))
	return ref, nil
}

// FetchVersionBlob downloads a version's payload and verifies it against
// the checksum recorded on the metadata row. The returned ref carries the
// row's blob coordinates.
func (p *Platform) FetchVersionBlob(ctx context.Context, versionID string) ([]byte, models.BlobRef, error) {
	version, err := p.registry.GetVersion(ctx, versionID)
	if err != nil {
		return nil, models.BlobRef{}, err
	}
	if !version.HasBlob() {
		return nil, models.BlobRef{}, ErrNoBlobAttached
	}

	data, err := p.blobs.Get(ctx, version.BlobKey)
	if err != nil {
		return nil, models.BlobRef{}, err
	}

	// The gateway verified the bytes against the checksum stored with the
	// object. Cross-check against the metadata row too: a divergence means
	// the row and the object no longer describe the same content.
	if version.BlobChecksum != "" {
		sum := checksum.Sum(data)
		if sum.String() != version.BlobChecksum {
			expected, _ := checksum.Parse(version.BlobChecksum)
			return nil, models.BlobRef{}, &blob.IntegrityError{
				Key:      version.BlobKey,
				Expected: expected,
				Actual:   sum,
			}
		}
	}
	return data, version.Ref(), nil
}

// VersionBlobURL issues a presigned, time-bounded download URL for a
// version's payload.
func (p *Platform) VersionBlobURL(ctx context.Context, versionID string, ttl time.Duration) (string, error) {
	version, err := p.registry.GetVersion(ctx, versionID)
	if err != nil {
		return "", err
	}
	if !version.HasBlob() {
		return "", ErrNoBlobAttached
	}
	return p.blobs.Presign(ctx, version.BlobKey, ttl)
}

// DetachVersionBlob removes a version's payload. The metadata reference is
// cleared first so no reader can follow it to a half-deleted object; the
// blob delete after that is idempotent, and a failure there leaves an
// orphan at worst.
func (p *Platform) DetachVersionBlob(ctx context.Context, versionID string) error {
	version, err := p.registry.GetVersion(ctx, versionID)
	if err != nil {
		return err
	}
	if !version.HasBlob() {
		return ErrNoBlobAttached
	}

	if err := p.registry.ClearVersionBlob(ctx, versionID); err != nil {
		return fmt.Errorf("metadata update failed: %w", err)
	}
	if err := p.blobs.Delete(ctx, version.BlobKey); err != nil {
		logger.Warn("metadata cleared but blob delete failed, object orphaned",
			logger.Key(version.BlobKey),
			logger.Version(versionID),
			logger.Err(err))
		return fmt.Errorf("blob delete failed: %w", err)
	}

	logger.Info("blob detached from version",
		logger.Version(versionID),
		logger.Key(version.BlobKey))
	return nil
}

// DeleteVersion removes a version row together with its payload, if any.
func (p *Platform) DeleteVersion(ctx context.Context, versionID string) error {
	version, err := p.registry.GetVersion(ctx, versionID)
	if err != nil {
		return err
	}
	if version.HasBlob() {
		if err := p.DetachVersionBlob(ctx, versionID); err != nil {
			return err
		}
	}
	return p.registry.DeleteVersion(ctx, versionID)
}
