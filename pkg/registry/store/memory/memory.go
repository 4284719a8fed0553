// Package memory provides an in-memory implementation of the registry
// store interface. It keeps every row in process-local maps guarded by a
// single mutex, which makes whole-operation atomicity trivial. Intended for
// tests and ephemeral tooling; nothing survives a restart.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/seqvault/seqvault/pkg/registry/models"
)

// Store is an in-memory registry store.
type Store struct {
	mu            sync.Mutex
	organizations map[string]*models.Organization
	entries       map[string]*models.RegistryEntry
	versions      map[string]*models.Version
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		organizations: make(map[string]*models.Organization),
		entries:       make(map[string]*models.RegistryEntry),
		versions:      make(map[string]*models.Version),
	}
}

// ============================================
// ORGANIZATION OPERATIONS
// ============================================

func (s *Store) CreateOrganization(_ context.Context, org *models.Organization) (string, error) {
	if err := org.Validate(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.organizations {
		if existing.Slug == org.Slug {
			return "", models.ErrDuplicateOrganization
		}
	}

	if org.ID == "" {
		org.ID = uuid.New().String()
	}
	if org.Status == "" {
		org.Status = models.OrganizationActive
	}
	now := time.Now()
	org.CreatedAt = now
	org.UpdatedAt = now

	stored := *org
	s.organizations[org.ID] = &stored
	return org.ID, nil
}

func (s *Store) GetOrganization(_ context.Context, slug string) (*models.Organization, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, org := range s.organizations {
		if org.Slug == slug {
			copied := *org
			return &copied, nil
		}
	}
	return nil, models.ErrOrganizationNotFound
}

func (s *Store) GetOrganizationByID(_ context.Context, id string) (*models.Organization, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	org, ok := s.organizations[id]
	if !ok {
		return nil, models.ErrOrganizationNotFound
	}
	copied := *org
	return &copied, nil
}

func (s *Store) ListOrganizations(_ context.Context, includeDeleted bool) ([]*models.Organization, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orgs := make([]*models.Organization, 0, len(s.organizations))
	for _, org := range s.organizations {
		if !includeDeleted && org.IsDeleted() {
			continue
		}
		copied := *org
		orgs = append(orgs, &copied)
	}
	sort.Slice(orgs, func(i, j int) bool { return orgs[i].Slug < orgs[j].Slug })
	return orgs, nil
}

func (s *Store) UpdateOrganization(_ context.Context, org *models.Organization) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.organizations[org.ID]
	if !ok {
		return models.ErrOrganizationNotFound
	}
	if existing.IsDeleted() {
		return models.ErrOrganizationDeleted
	}

	existing.DisplayName = org.DisplayName
	existing.Website = org.Website
	existing.Description = org.Description
	existing.UpdatedAt = time.Now()
	return nil
}

func (s *Store) DeleteOrganization(_ context.Context, slug string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, org := range s.organizations {
		if org.Slug == slug {
			org.Status = models.OrganizationDeleted
			org.UpdatedAt = time.Now()
			return nil
		}
	}
	return models.ErrOrganizationNotFound
}

// ============================================
// REGISTRY ENTRY OPERATIONS
// ============================================

func (s *Store) CreateEntry(_ context.Context, entry *models.RegistryEntry) (string, error) {
	if err := entry.Validate(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	org, ok := s.organizations[entry.OrganizationID]
	if !ok {
		return "", models.ErrOrganizationNotFound
	}
	if org.IsDeleted() {
		return "", models.ErrOrganizationDeleted
	}

	for _, existing := range s.entries {
		if existing.OrganizationID == entry.OrganizationID && existing.Slug == entry.Slug {
			return "", models.ErrDuplicateEntry
		}
	}

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	stored := *entry
	s.entries[entry.ID] = &stored
	return entry.ID, nil
}

func (s *Store) GetEntry(_ context.Context, orgID, slug string) (*models.RegistryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range s.entries {
		if entry.OrganizationID == orgID && entry.Slug == slug {
			copied := *entry
			return &copied, nil
		}
	}
	return nil, models.ErrEntryNotFound
}

func (s *Store) GetEntryByID(_ context.Context, id string) (*models.RegistryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok {
		return nil, models.ErrEntryNotFound
	}
	copied := *entry
	return &copied, nil
}

func (s *Store) ListEntries(_ context.Context, orgID string) ([]*models.RegistryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]*models.RegistryEntry, 0)
	for _, entry := range s.entries {
		if entry.OrganizationID == orgID {
			copied := *entry
			entries = append(entries, &copied)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Slug < entries[j].Slug })
	return entries, nil
}

func (s *Store) UpdateEntry(_ context.Context, entry *models.RegistryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.entries[entry.ID]
	if !ok {
		return models.ErrEntryNotFound
	}

	existing.Name = entry.Name
	existing.Description = entry.Description
	existing.SingleActiveVersion = entry.SingleActiveVersion
	existing.UpdatedAt = time.Now()
	return nil
}

func (s *Store) DeleteEntry(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[id]; !ok {
		return models.ErrEntryNotFound
	}
	for _, version := range s.versions {
		if version.EntryID == id {
			return models.ErrEntryHasVersions
		}
	}
	delete(s.entries, id)
	return nil
}

func (s *Store) SearchEntries(_ context.Context, query string, limit int) ([]models.SearchResult, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []models.SearchResult{}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]models.SearchResult, 0)
	for _, entry := range s.entries {
		score := scoreEntry(entry, query)
		if score <= 0 {
			continue
		}
		results = append(results, models.SearchResult{Entry: *entry, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Entry.CreatedAt.After(results[j].Entry.CreatedAt)
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// scoreEntry mirrors the relational backend's ranking so tests against the
// fake see the same ordering.
func scoreEntry(entry *models.RegistryEntry, query string) float64 {
	name := strings.ToLower(entry.Name)
	slug := strings.ToLower(entry.Slug)
	desc := strings.ToLower(entry.Description)

	var score float64
	switch {
	case name == query:
		score += 100
	case strings.HasPrefix(name, query):
		score += 50
	case strings.Contains(name, query):
		score += 25
	}
	if strings.Contains(slug, query) {
		score += 20
	}
	if strings.Contains(desc, query) {
		score += 10
	}
	return score
}

// ============================================
// VERSION OPERATIONS
// ============================================

func (s *Store) CreateVersion(_ context.Context, version *models.Version) (string, error) {
	if version.Status == "" {
		version.Status = models.VersionDraft
	}
	if err := version.Validate(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[version.EntryID]; !ok {
		return "", models.ErrEntryNotFound
	}
	for _, existing := range s.versions {
		if existing.EntryID == version.EntryID && existing.Label == version.Label {
			return "", models.ErrDuplicateVersion
		}
	}

	if version.ID == "" {
		version.ID = uuid.New().String()
	}
	now := time.Now()
	version.CreatedAt = now
	version.UpdatedAt = now

	stored := *version
	s.versions[version.ID] = &stored
	return version.ID, nil
}

func (s *Store) GetVersion(_ context.Context, id string) (*models.Version, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	version, ok := s.versions[id]
	if !ok {
		return nil, models.ErrVersionNotFound
	}
	copied := *version
	return &copied, nil
}

func (s *Store) GetVersionByLabel(_ context.Context, entryID, label string) (*models.Version, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, version := range s.versions {
		if version.EntryID == entryID && version.Label == label {
			copied := *version
			return &copied, nil
		}
	}
	return nil, models.ErrVersionNotFound
}

func (s *Store) ListVersions(_ context.Context, entryID string) ([]*models.Version, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	versions := make([]*models.Version, 0)
	for _, version := range s.versions {
		if version.EntryID == entryID {
			copied := *version
			versions = append(versions, &copied)
		}
	}
	sort.Slice(versions, func(i, j int) bool {
		return versions[i].CreatedAt.Before(versions[j].CreatedAt)
	})
	return versions, nil
}

func (s *Store) UpdateVersionStatus(_ context.Context, id string, next models.VersionStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	version, ok := s.versions[id]
	if !ok {
		return models.ErrVersionNotFound
	}
	if !version.Status.CanTransitionTo(next) {
		return models.ErrInvalidStatusTransition
	}

	if next == models.VersionPublished {
		entry, ok := s.entries[version.EntryID]
		if !ok {
			return models.ErrEntryNotFound
		}
		if entry.SingleActiveVersion {
			for _, sibling := range s.versions {
				if sibling.EntryID == version.EntryID &&
					sibling.ID != version.ID &&
					sibling.Status == models.VersionPublished {
					return models.ErrVersionAlreadyPublished
				}
			}
		}
	}

	version.Status = next
	version.UpdatedAt = time.Now()
	return nil
}

func (s *Store) SetVersionBlob(_ context.Context, id string, ref models.BlobRef) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	version, ok := s.versions[id]
	if !ok {
		return models.ErrVersionNotFound
	}
	version.BlobKey = ref.Key
	version.BlobSize = ref.Size
	version.BlobChecksum = ref.Checksum
	version.BlobContentType = ref.ContentType
	version.UpdatedAt = time.Now()
	return nil
}

func (s *Store) ClearVersionBlob(ctx context.Context, id string) error {
	return s.SetVersionBlob(ctx, id, models.BlobRef{})
}

func (s *Store) DeleteVersion(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.versions[id]; !ok {
		return models.ErrVersionNotFound
	}
	delete(s.versions, id)
	return nil
}

// ============================================
// LIFECYCLE
// ============================================

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Close() error { return nil }
