package models

import "errors"

// Domain errors for registry metadata operations.
//
// NotFound and conflict errors are expected outcomes that callers branch on
// explicitly; everything else surfacing from a repository is a backend
// failure.
var (
	// Organization errors
	ErrOrganizationNotFound  = errors.New("organization not found")
	ErrDuplicateOrganization = errors.New("organization already exists")
	ErrOrganizationDeleted   = errors.New("organization is deleted")

	// Registry entry errors
	ErrEntryNotFound    = errors.New("registry entry not found")
	ErrDuplicateEntry   = errors.New("registry entry already exists")
	ErrEntryHasVersions = errors.New("registry entry still has versions")

	// Version errors
	ErrVersionNotFound         = errors.New("version not found")
	ErrDuplicateVersion        = errors.New("version label already exists")
	ErrInvalidStatusTransition = errors.New("invalid version status transition")
	ErrVersionAlreadyPublished = errors.New("entry already has a published version")
)

// IsConflict reports whether err is a uniqueness or state-transition
// violation, as opposed to a not-found or backend failure.
func IsConflict(err error) bool {
	return errors.Is(err, ErrDuplicateOrganization) ||
		errors.Is(err, ErrDuplicateEntry) ||
		errors.Is(err, ErrDuplicateVersion) ||
		errors.Is(err, ErrEntryHasVersions) ||
		errors.Is(err, ErrInvalidStatusTransition) ||
		errors.Is(err, ErrVersionAlreadyPublished)
}

// IsNotFound reports whether err is an absent-entity error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrOrganizationNotFound) ||
		errors.Is(err, ErrEntryNotFound) ||
		errors.Is(err, ErrVersionNotFound)
}
