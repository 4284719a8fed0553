package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/seqvault/seqvault/pkg/registry/models"
)

// ============================================
// VERSION OPERATIONS
// ============================================

func (s *GORMStore) CreateVersion(ctx context.Context, version *models.Version) (string, error) {
	if version.Status == "" {
		version.Status = models.VersionDraft
	}
	if err := version.Validate(); err != nil {
		return "", err
	}

	var id string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entry models.RegistryEntry
		if err := tx.Where("id = ?", version.EntryID).First(&entry).Error; err != nil {
			return convertNotFoundError(err, models.ErrEntryNotFound)
		}

		created, err := createWithID(tx, ctx, version, func(v *models.Version, id string) { v.ID = id }, version.ID, models.ErrDuplicateVersion)
		if err != nil {
			return err
		}
		id = created
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *GORMStore) GetVersion(ctx context.Context, id string) (*models.Version, error) {
	return getByField[models.Version](s.db, ctx, "id", id, models.ErrVersionNotFound)
}

func (s *GORMStore) GetVersionByLabel(ctx context.Context, entryID, label string) (*models.Version, error) {
	var version models.Version
	err := s.db.WithContext(ctx).
		Where("entry_id = ? AND label = ?", entryID, label).
		First(&version).Error
	if err != nil {
		return nil, convertNotFoundError(err, models.ErrVersionNotFound)
	}
	return &version, nil
}

func (s *GORMStore) ListVersions(ctx context.Context, entryID string) ([]*models.Version, error) {
	var versions []*models.Version
	err := s.db.WithContext(ctx).
		Where("entry_id = ?", entryID).
		Order("created_at").
		Find(&versions).Error
	if err != nil {
		return nil, err
	}
	return versions, nil
}

// UpdateVersionStatus moves a version forward through its lifecycle. The
// whole check-and-update runs in one transaction so two concurrent publish
// attempts on the same entry serialize on the row update: the loser re-reads
// a published sibling and rolls back with ErrVersionAlreadyPublished.
func (s *GORMStore) UpdateVersionStatus(ctx context.Context, id string, next models.VersionStatus) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var version models.Version
		if err := tx.Where("id = ?", id).First(&version).Error; err != nil {
			return convertNotFoundError(err, models.ErrVersionNotFound)
		}

		if !version.Status.CanTransitionTo(next) {
			return models.ErrInvalidStatusTransition
		}

		if next == models.VersionPublished {
			// On PostgreSQL, concurrent publishers serialize on the parent
			// entry row via FOR UPDATE. SQLite has no row locks but allows
			// only one writer, which serializes the transactions instead.
			entryQuery := tx.Where("id = ?", version.EntryID)
			if s.config != nil && s.config.Type == DatabaseTypePostgres {
				entryQuery = entryQuery.Clauses(clause.Locking{Strength: "UPDATE"})
			}

			var entry models.RegistryEntry
			if err := entryQuery.First(&entry).Error; err != nil {
				return convertNotFoundError(err, models.ErrEntryNotFound)
			}

			if entry.SingleActiveVersion {
				var published int64
				err := tx.Model(&models.Version{}).
					Where("entry_id = ? AND status = ? AND id <> ?",
						version.EntryID, models.VersionPublished, version.ID).
					Count(&published).Error
				if err != nil {
					return err
				}
				if published > 0 {
					return models.ErrVersionAlreadyPublished
				}
			}
		}

		result := tx.Model(&models.Version{}).
			Where("id = ? AND status = ?", version.ID, version.Status).
			Update("status", next)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// Lost a race with a concurrent transition on the same row.
			return models.ErrInvalidStatusTransition
		}
		return nil
	})
}

func (s *GORMStore) SetVersionBlob(ctx context.Context, id string, ref models.BlobRef) error {
	result := s.db.WithContext(ctx).
		Model(&models.Version{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"blob_key":          ref.Key,
			"blob_size":         ref.Size,
			"blob_checksum":     ref.Checksum,
			"blob_content_type": ref.ContentType,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrVersionNotFound
	}
	return nil
}

func (s *GORMStore) ClearVersionBlob(ctx context.Context, id string) error {
	return s.SetVersionBlob(ctx, id, models.BlobRef{})
}

func (s *GORMStore) DeleteVersion(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Version{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrVersionNotFound
	}
	return nil
}
