package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/seqvault/seqvault/pkg/registry/models"
)

// ============================================
// ORGANIZATION OPERATIONS
// ============================================

func (s *GORMStore) CreateOrganization(ctx context.Context, org *models.Organization) (string, error) {
	if err := org.Validate(); err != nil {
		return "", err
	}
	if org.Status == "" {
		org.Status = models.OrganizationActive
	}
	return createWithID(s.db, ctx, org, func(o *models.Organization, id string) { o.ID = id }, org.ID, models.ErrDuplicateOrganization)
}

func (s *GORMStore) GetOrganization(ctx context.Context, slug string) (*models.Organization, error) {
	return getByField[models.Organization](s.db, ctx, "slug", slug, models.ErrOrganizationNotFound)
}

func (s *GORMStore) GetOrganizationByID(ctx context.Context, id string) (*models.Organization, error) {
	return getByField[models.Organization](s.db, ctx, "id", id, models.ErrOrganizationNotFound)
}

func (s *GORMStore) ListOrganizations(ctx context.Context, includeDeleted bool) ([]*models.Organization, error) {
	q := s.db.WithContext(ctx).Order("slug")
	if !includeDeleted {
		q = q.Where("status = ?", models.OrganizationActive)
	}

	var orgs []*models.Organization
	if err := q.Find(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}

func (s *GORMStore) UpdateOrganization(ctx context.Context, org *models.Organization) error {
	var existing models.Organization
	if err := s.db.WithContext(ctx).Where("id = ?", org.ID).First(&existing).Error; err != nil {
		return convertNotFoundError(err, models.ErrOrganizationNotFound)
	}
	if existing.IsDeleted() {
		return models.ErrOrganizationDeleted
	}

	// Slug, system flag and status are immutable through this path.
	return s.db.WithContext(ctx).
		Model(&existing).
		Select("DisplayName", "Website", "Description").
		Updates(org).Error
}

func (s *GORMStore) DeleteOrganization(ctx context.Context, slug string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var org models.Organization
		if err := tx.Where("slug = ?", slug).First(&org).Error; err != nil {
			return convertNotFoundError(err, models.ErrOrganizationNotFound)
		}
		if org.IsDeleted() {
			return nil
		}

		// Soft delete: entries keep a valid owner reference.
		return tx.Model(&org).Update("status", models.OrganizationDeleted).Error
	})
}
