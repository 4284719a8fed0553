package models

import (
	"fmt"
	"regexp"
	"time"
)

// OrganizationStatus is the soft-delete lifecycle flag. Organizations are
// never hard-deleted so that registry entries keep a valid owner reference.
type OrganizationStatus string

const (
	OrganizationActive  OrganizationStatus = "active"
	OrganizationDeleted OrganizationStatus = "deleted"
)

// slugPattern constrains slugs to lowercase URL-safe identifiers.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:[-_][a-z0-9]+)*$`)

// Organization owns registry entries. The slug is the public immutable
// identifier; it never changes after creation.
type Organization struct {
	ID          string             `gorm:"primaryKey;size:36" json:"id"`
	Slug        string             `gorm:"uniqueIndex;not null;size:255" json:"slug"`
	DisplayName string             `gorm:"not null;size:255" json:"display_name"`
	IsSystem    bool               `gorm:"not null;default:false" json:"is_system"`
	Website     string             `gorm:"size:512" json:"website,omitempty"`
	Description string             `gorm:"size:2048" json:"description,omitempty"`
	Status      OrganizationStatus `gorm:"not null;default:active;size:16" json:"status"`
	CreatedAt   time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time          `gorm:"autoUpdateTime" json:"updated_at"`

	Entries []RegistryEntry `gorm:"foreignKey:OrganizationID" json:"entries,omitempty"`
}

// TableName returns the table name for Organization.
func (Organization) TableName() string {
	return "organizations"
}

// Validate checks the organization's fields.
func (o *Organization) Validate() error {
	if !slugPattern.MatchString(o.Slug) {
		return fmt.Errorf("invalid organization slug %q", o.Slug)
	}
	if o.DisplayName == "" {
		return fmt.Errorf("organization display name is required")
	}
	return nil
}

// IsDeleted reports whether the organization has been soft-deleted.
func (o *Organization) IsDeleted() bool {
	return o.Status == OrganizationDeleted
}
