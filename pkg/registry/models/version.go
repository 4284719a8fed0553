package models

import (
	"fmt"
	"time"
)

// VersionStatus is the version lifecycle state. Transitions are monotonic
// forward only: a version never moves back toward draft, and nothing leaves
// archived.
type VersionStatus string

const (
	VersionDraft      VersionStatus = "draft"
	VersionPublished  VersionStatus = "published"
	VersionDeprecated VersionStatus = "deprecated"
	VersionArchived   VersionStatus = "archived"
)

// statusRank orders the lifecycle for monotonicity checks.
var statusRank = map[VersionStatus]int{
	VersionDraft:      0,
	VersionPublished:  1,
	VersionDeprecated: 2,
	VersionArchived:   3,
}

// Valid reports whether s is a known status.
func (s VersionStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is a forward
// transition.
func (s VersionStatus) CanTransitionTo(next VersionStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to > from
}

// Version is one independently-lifecycled release of a registry entry's
// content. Versions are ordered by creation time within their entry.
//
// The Blob* columns reference the payload in the object storage backend.
// They are written only after the blob itself is durable, so a populated
// BlobKey always points at an existing, checksum-valid object.
type Version struct {
	ID      string        `gorm:"primaryKey;size:36" json:"id"`
	EntryID string        `gorm:"not null;size:36;uniqueIndex:idx_version_entry_label" json:"entry_id"`
	Label   string        `gorm:"not null;size:128;uniqueIndex:idx_version_entry_label" json:"label"`
	Status  VersionStatus `gorm:"not null;default:draft;size:16;index" json:"status"`

	BlobKey         string `gorm:"size:1024" json:"blob_key,omitempty"`
	BlobSize        int64  `json:"blob_size,omitempty"`
	BlobChecksum    string `gorm:"size:64" json:"blob_checksum,omitempty"`
	BlobContentType string `gorm:"size:255" json:"blob_content_type,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Entry *RegistryEntry `gorm:"foreignKey:EntryID" json:"entry,omitempty"`
}

// TableName returns the table name for Version.
func (Version) TableName() string {
	return "versions"
}

// Validate checks the version's fields.
func (v *Version) Validate() error {
	if v.EntryID == "" {
		return fmt.Errorf("version entry is required")
	}
	if v.Label == "" {
		return fmt.Errorf("version label is required")
	}
	if !v.Status.Valid() {
		return fmt.Errorf("invalid version status %q", v.Status)
	}
	return nil
}

// HasBlob reports whether a payload has been attached to this version.
func (v *Version) HasBlob() bool {
	return v.BlobKey != ""
}

// BlobRef is the set of blob coordinates recorded on a version once its
// payload is durable in object storage.
type BlobRef struct {
	Key         string `json:"key"`
	Size        int64  `json:"size"`
	Checksum    string `json:"checksum"`
	ContentType string `json:"content_type"`
}

// Ref returns the version's blob coordinates. Only meaningful when HasBlob
// reports true.
func (v *Version) Ref() BlobRef {
	return BlobRef{
		Key:         v.BlobKey,
		Size:        v.BlobSize,
		Checksum:    v.BlobChecksum,
		ContentType: v.BlobContentType,
	}
}
