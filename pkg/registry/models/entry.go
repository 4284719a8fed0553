package models

import (
	"fmt"
	"time"
)

// EntryType is the closed enumeration of registrable things.
type EntryType string

const (
	EntryTypeDataSource EntryType = "data_source"
	EntryTypeTool       EntryType = "tool"
)

// Valid reports whether t is a known entry type.
func (t EntryType) Valid() bool {
	return t == EntryTypeDataSource || t == EntryTypeTool
}

// RegistryEntry is a cataloged data source or tool owned by exactly one
// organization. The slug is unique within the owning organization's
// namespace. Name and description are editable; the slug and type are not.
type RegistryEntry struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	OrganizationID string    `gorm:"not null;size:36;uniqueIndex:idx_entry_org_slug" json:"organization_id"`
	Slug           string    `gorm:"not null;size:255;uniqueIndex:idx_entry_org_slug" json:"slug"`
	EntryType      EntryType `gorm:"not null;size:32" json:"entry_type"`
	Name           string    `gorm:"not null;size:255;index" json:"name"`
	Description    string    `gorm:"size:4096;index" json:"description,omitempty"`

	// SingleActiveVersion enforces at-most-one published version per entry.
	// Checked transactionally on publish.
	SingleActiveVersion bool `gorm:"not null;default:true" json:"single_active_version"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	Versions     []Version     `gorm:"foreignKey:EntryID" json:"versions,omitempty"`
}

// TableName returns the table name for RegistryEntry.
func (RegistryEntry) TableName() string {
	return "registry_entries"
}

// Validate checks the entry's fields.
func (e *RegistryEntry) Validate() error {
	if !slugPattern.MatchString(e.Slug) {
		return fmt.Errorf("invalid entry slug %q", e.Slug)
	}
	if e.OrganizationID == "" {
		return fmt.Errorf("entry organization is required")
	}
	if !e.EntryType.Valid() {
		return fmt.Errorf("invalid entry type %q", e.EntryType)
	}
	if e.Name == "" {
		return fmt.Errorf("entry name is required")
	}
	return nil
}

// SearchResult pairs an entry with its relevance score for ranked search.
type SearchResult struct {
	Entry RegistryEntry
	Score float64
}
