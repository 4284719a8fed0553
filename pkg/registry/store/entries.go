package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/seqvault/seqvault/pkg/registry/models"
)

// ============================================
// REGISTRY ENTRY OPERATIONS
// ============================================

func (s *GORMStore) CreateEntry(ctx context.Context, entry *models.RegistryEntry) (string, error) {
	if err := entry.Validate(); err != nil {
		return "", err
	}

	var id string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var org models.Organization
		if err := tx.Where("id = ?", entry.OrganizationID).First(&org).Error; err != nil {
			return convertNotFoundError(err, models.ErrOrganizationNotFound)
		}
		if org.IsDeleted() {
			return models.ErrOrganizationDeleted
		}

		created, err := createWithID(tx, ctx, entry, func(e *models.RegistryEntry, id string) { e.ID = id }, entry.ID, models.ErrDuplicateEntry)
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

func (s *GORMStore) GetEntry(ctx context.Context, orgID, slug string) (*models.RegistryEntry, error) {
	var entry models.RegistryEntry
	err := s.db.WithContext(ctx).
		Where("organization_id = ? AND slug = ?", orgID, slug).
		First(&entry).Error
	if err != nil {
		return nil, convertNotFoundError(err, models.ErrEntryNotFound)
	}
	return &entry, nil
}

func (s *GORMStore) GetEntryByID(ctx context.Context, id string) (*models.RegistryEntry, error) {
	return getByField[models.RegistryEntry](s.db, ctx, "id", id, models.ErrEntryNotFound)
}

func (s *GORMStore) ListEntries(ctx context.Context, orgID string) ([]*models.RegistryEntry, error) {
	var entries []*models.RegistryEntry
	err := s.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("slug").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *GORMStore) UpdateEntry(ctx context.Context, entry *models.RegistryEntry) error {
	var existing models.RegistryEntry
	if err := s.db.WithContext(ctx).Where("id = ?", entry.ID).First(&existing).Error; err != nil {
		return convertNotFoundError(err, models.ErrEntryNotFound)
	}

	// Slug, type and owner are immutable through this path. A plain map
	// update is used so that false and empty values are written as given.
	return s.db.WithContext(ctx).
		Model(&existing).
		Updates(map[string]any{
			"name":                  entry.Name,
			"description":           entry.Description,
			"single_active_version": entry.SingleActiveVersion,
		}).Error
}

func (s *GORMStore) DeleteEntry(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entry models.RegistryEntry
		if err := tx.Where("id = ?", id).First(&entry).Error; err != nil {
			return convertNotFoundError(err, models.ErrEntryNotFound)
		}

		var versionCount int64
		if err := tx.Model(&models.Version{}).Where("entry_id = ?", id).Count(&versionCount).Error; err != nil {
			return err
		}
		if versionCount > 0 {
			return models.ErrEntryHasVersions
		}

		return tx.Delete(&entry).Error
	})
}
