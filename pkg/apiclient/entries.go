package apiclient

import (
	"net/url"
	"strconv"
	"time"
)

// Entry represents a registry entry: a cataloged data source or tool.
type Entry struct {
	ID                  string    `json:"id"`
	OrganizationID      string    `json:"organization_id"`
	Slug                string    `json:"slug"`
	EntryType           string    `json:"entry_type"`
	Name                string    `json:"name"`
	Description         string    `json:"description,omitempty"`
	SingleActiveVersion bool      `json:"single_active_version"`
	CreatedAt           time.Time `json:"created_at,omitempty"`
	UpdatedAt           time.Time `json:"updated_at,omitempty"`
}

// SearchResult is an entry paired with its relevance score.
type SearchResult struct {
	Entry Entry   `json:"entry"`
	Score float64 `json:"score"`
}

// CreateEntryRequest is the request to create a registry entry.
type CreateEntryRequest struct {
	Slug                string `json:"slug"`
	EntryType           string `json:"entry_type"`
	Name                string `json:"name"`
	Description         string `json:"description,omitempty"`
	SingleActiveVersion *bool  `json:"single_active_version,omitempty"`
}

// UpdateEntryRequest is the request to update a registry entry. Slug and
// entry type are immutable and cannot appear here.
type UpdateEntryRequest struct {
	Name                *string `json:"name,omitempty"`
	Description         *string `json:"description,omitempty"`
	SingleActiveVersion *bool   `json:"single_active_version,omitempty"`
}

// ListEntries returns all entries owned by an organization.
func (c *Client) ListEntries(org string) ([]Entry, error) {
	return listResources[Entry](c, resourcePath("/api/v1/orgs/%s/entries", org))
}

// GetEntry returns an entry by organization and slug.
func (c *Client) GetEntry(org, entry string) (*Entry, error) {
	return getResource[Entry](c, resourcePath("/api/v1/orgs/%s/entries/%s", org, entry))
}

// CreateEntry creates a new registry entry under an organization.
func (c *Client) CreateEntry(org string, req *CreateEntryRequest) (*Entry, error) {
	return createResource[Entry](c, resourcePath("/api/v1/orgs/%s/entries", org), req)
}

// UpdateEntry updates an entry's editable fields.
func (c *Client) UpdateEntry(org, entry string, req *UpdateEntryRequest) (*Entry, error) {
	return updateResource[Entry](c, resourcePath("/api/v1/orgs/%s/entries/%s", org, entry), req)
}

// DeleteEntry deletes an entry. Fails with a conflict while the entry
// still has versions.
func (c *Client) DeleteEntry(org, entry string) error {
	return deleteResource(c, resourcePath("/api/v1/orgs/%s/entries/%s", org, entry))
}

// SearchEntries returns entries matching the query, ranked by relevance.
// A limit of zero leaves truncation to the server's default.
func (c *Client) SearchEntries(query string, limit int) ([]SearchResult, error) {
	params := url.Values{"q": {query}}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	return listResources[SearchResult](c, "/api/v1/entries/search?"+params.Encode())
}
