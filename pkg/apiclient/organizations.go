package apiclient

import "time"

// Organization represents an organization in the registry.
type Organization struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	DisplayName string    `json:"display_name"`
	IsSystem    bool      `json:"is_system"`
	Website     string    `json:"website,omitempty"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

// CreateOrganizationRequest is the request to create an organization.
type CreateOrganizationRequest struct {
	Slug        string `json:"slug"`
	DisplayName string `json:"display_name"`
	Website     string `json:"website,omitempty"`
	Description string `json:"description,omitempty"`
}

// UpdateOrganizationRequest is the request to update an organization.
// The slug is immutable and cannot appear here.
type UpdateOrganizationRequest struct {
	DisplayName *string `json:"display_name,omitempty"`
	Website     *string `json:"website,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ListOrganizations returns all active organizations. Soft-deleted
// organizations are included when includeDeleted is set.
func (c *Client) ListOrganizations(includeDeleted bool) ([]Organization, error) {
	path := "/api/v1/orgs"
	if includeDeleted {
		path += "?include_deleted=true"
	}
	return listResources[Organization](c, path)
}

// GetOrganization returns an organization by slug.
func (c *Client) GetOrganization(slug string) (*Organization, error) {
	return getResource[Organization](c, resourcePath("/api/v1/orgs/%s", slug))
}

// CreateOrganization creates a new organization.
func (c *Client) CreateOrganization(req *CreateOrganizationRequest) (*Organization, error) {
	return createResource[Organization](c, "/api/v1/orgs", req)
}

// UpdateOrganization updates an organization's editable fields.
func (c *Client) UpdateOrganization(slug string, req *UpdateOrganizationRequest) (*Organization, error) {
	return updateResource[Organization](c, resourcePath("/api/v1/orgs/%s", slug), req)
}

// DeleteOrganization soft-deletes an organization. Deleting an already
// deleted organization succeeds.
func (c *Client) DeleteOrganization(slug string) error {
	return deleteResource(c, resourcePath("/api/v1/orgs/%s", slug))
}
