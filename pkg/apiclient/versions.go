package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Version represents one release of an entry's content.
type Version struct {
	ID      string `json:"id"`
	EntryID string `json:"entry_id"`
	Label   string `json:"label"`
	Status  string `json:"status"`

	BlobKey         string `json:"blob_key,omitempty"`
	BlobSize        int64  `json:"blob_size,omitempty"`
	BlobChecksum    string `json:"blob_checksum,omitempty"`
	BlobContentType string `json:"blob_content_type,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// HasBlob reports whether a payload is attached to this version.
func (v *Version) HasBlob() bool {
	return v.BlobKey != ""
}

// CreateVersionRequest is the request to create a version.
type CreateVersionRequest struct {
	Label string `json:"label"`
}

// UpdateVersionStatusRequest advances a version's lifecycle status.
type UpdateVersionStatusRequest struct {
	Status string `json:"status"`
}

// BlobURLResponse carries a presigned download URL for a version's blob.
type BlobURLResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ListVersions returns all versions of an entry, newest first.
func (c *Client) ListVersions(org, entry string) ([]Version, error) {
	return listResources[Version](c, resourcePath("/api/v1/orgs/%s/entries/%s/versions", org, entry))
}

// GetVersion returns a version by its label.
func (c *Client) GetVersion(org, entry, label string) (*Version, error) {
	return getResource[Version](c, versionPath(org, entry, label))
}

// CreateVersion creates a new draft version of an entry.
func (c *Client) CreateVersion(org, entry string, req *CreateVersionRequest) (*Version, error) {
	return createResource[Version](c, resourcePath("/api/v1/orgs/%s/entries/%s/versions", org, entry), req)
}

// UpdateVersionStatus advances a version to the given lifecycle status.
// Backward transitions are rejected; publishing can fail with a conflict
// when the entry allows a single active version and another one is
// already published.
func (c *Client) UpdateVersionStatus(org, entry, label, status string) (*Version, error) {
	req := &UpdateVersionStatusRequest{Status: status}
	var version Version
	if err := c.post(versionPath(org, entry, label)+"/status", req, &version); err != nil {
		return nil, err
	}
	return &version, nil
}

// PublishVersion advances a version to published.
func (c *Client) PublishVersion(org, entry, label string) (*Version, error) {
	return c.UpdateVersionStatus(org, entry, label, "published")
}

// DeleteVersion deletes a version and its attached blob, if any.
func (c *Client) DeleteVersion(org, entry, label string) error {
	return deleteResource(c, versionPath(org, entry, label))
}

// AttachVersionBlob uploads a payload as the version's content. The server
// records the blob coordinates on the version only once the payload is
// durable in object storage.
func (c *Client) AttachVersionBlob(ctx context.Context, org, entry, label string, payload []byte, contentType string) (*Version, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	body, err := c.doRaw(ctx, http.MethodPut, versionPath(org, entry, label)+"/blob", contentType, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	var version Version
	if err := json.Unmarshal(body, &version); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &version, nil
}

// FetchVersionBlob downloads the version's payload. The server verifies
// the payload against the recorded checksum before serving it.
func (c *Client) FetchVersionBlob(ctx context.Context, org, entry, label string) ([]byte, error) {
	return c.doRaw(ctx, http.MethodGet, versionPath(org, entry, label)+"/blob", "", nil)
}

// DetachVersionBlob removes the version's payload and clears its blob
// coordinates.
func (c *Client) DetachVersionBlob(org, entry, label string) error {
	return deleteResource(c, versionPath(org, entry, label)+"/blob")
}

// VersionBlobURL returns a presigned, read-only download URL for the
// version's blob, valid for the given duration.
func (c *Client) VersionBlobURL(org, entry, label string, ttl time.Duration) (*BlobURLResponse, error) {
	params := url.Values{}
	if ttl > 0 {
		params.Set("ttl_seconds", strconv.Itoa(int(ttl.Seconds())))
	}
	path := versionPath(org, entry, label) + "/blob-url"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}
	return getResource[BlobURLResponse](c, path)
}

func versionPath(org, entry, label string) string {
	return resourcePath("/api/v1/orgs/%s/entries/%s/versions/%s", org, entry, label)
}
