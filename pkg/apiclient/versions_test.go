package apiclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListVersions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/orgs/uniprot/entries/swissprot/versions", r.URL.Path)

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode([]Version{
			{ID: "v2", Label: "2026-03", Status: "published"},
			{ID: "v1", Label: "2026-01", Status: "deprecated"},
		})
	}))
	defer server.Close()

	client := New(server.URL)
	versions, err := client.ListVersions("uniprot", "swissprot")

	require.NoError(t, err)
	assert.Len(t, versions, 2)
	assert.Equal(t, "2026-03", versions[0].Label)
}

func TestGetVersion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/orgs/uniprot/entries/swissprot/versions/2026-03", r.URL.Path)

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(Version{
			ID:              "v-123",
			Label:           "2026-03",
			Status:          "published",
			BlobKey:         "uniprot/swissprot/v-123/content",
			BlobSize:        1024,
			BlobChecksum:    "abc123",
			BlobContentType: "text/x-fasta",
		})
	}))
	defer server.Close()

	client := New(server.URL)
	version, err := client.GetVersion("uniprot", "swissprot", "2026-03")

	require.NoError(t, err)
	assert.Equal(t, "v-123", version.ID)
	assert.True(t, version.HasBlob())
	assert.Equal(t, int64(1024), version.BlobSize)
}

func TestCreateVersion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/orgs/uniprot/entries/swissprot/versions", r.URL.Path)

		var req CreateVersionRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)
		assert.Equal(t, "2026-04", req.Label)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(Version{
			ID:     "new-version-123",
			Label:  req.Label,
			Status: "draft",
		})
	}))
	defer server.Close()

	client := New(server.URL)
	version, err := client.CreateVersion("uniprot", "swissprot", &CreateVersionRequest{Label: "2026-04"})

	require.NoError(t, err)
	assert.Equal(t, "new-version-123", version.ID)
	assert.Equal(t, "draft", version.Status)
}

func TestPublishVersion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/orgs/uniprot/entries/swissprot/versions/2026-03/status", r.URL.Path)

		var req UpdateVersionStatusRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)
		assert.Equal(t, "published", req.Status)

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(Version{
			ID:     "v-123",
			Label:  "2026-03",
			Status: "published",
		})
	}))
	defer server.Close()

	client := New(server.URL)
	version, err := client.PublishVersion("uniprot", "swissprot", "2026-03")

	require.NoError(t, err)
	assert.Equal(t, "published", version.Status)
}

func TestPublishVersion_LosesRace(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(APIError{
			Code:    "CONFLICT",
			Message: "Another version is already published",
		})
	}))
	defer server.Close()

	client := New(server.URL)
	version, err := client.PublishVersion("uniprot", "swissprot", "2026-03")

	assert.Nil(t, version)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.True(t, apiErr.IsConflict())
}

func TestDeleteVersion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/orgs/uniprot/entries/swissprot/versions/2026-03", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := New(server.URL)
	err := client.DeleteVersion("uniprot", "swissprot", "2026-03")

	require.NoError(t, err)
}

func TestAttachVersionBlob(t *testing.T) {
	payload := []byte(">sp|P12345|TEST\nMKTAYIAKQR")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/orgs/uniprot/entries/swissprot/versions/2026-03/blob", r.URL.Path)
		assert.Equal(t, "text/x-fasta", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, payload, body)

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(Version{
			ID:              "v-123",
			Label:           "2026-03",
			Status:          "draft",
			BlobKey:         "uniprot/swissprot/v-123/content",
			BlobSize:        int64(len(payload)),
			BlobContentType: "text/x-fasta",
		})
	}))
	defer server.Close()

	client := New(server.URL)
	version, err := client.AttachVersionBlob(context.Background(), "uniprot", "swissprot", "2026-03", payload, "text/x-fasta")

	require.NoError(t, err)
	assert.True(t, version.HasBlob())
	assert.Equal(t, int64(len(payload)), version.BlobSize)
}

func TestFetchVersionBlob(t *testing.T) {
	payload := []byte("raw sequence bytes")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/orgs/uniprot/entries/swissprot/versions/2026-03/blob", r.URL.Path)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(payload)
	}))
	defer server.Close()

	client := New(server.URL)
	data, err := client.FetchVersionBlob(context.Background(), "uniprot", "swissprot", "2026-03")

	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestFetchVersionBlob_NoAttachment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(APIError{
			Code:    "NOT_FOUND",
			Message: "Version has no blob attached",
		})
	}))
	defer server.Close()

	client := New(server.URL)
	data, err := client.FetchVersionBlob(context.Background(), "uniprot", "swissprot", "2026-03")

	assert.Nil(t, data)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.True(t, apiErr.IsNotFound())
}

func TestDetachVersionBlob(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/orgs/uniprot/entries/swissprot/versions/2026-03/blob", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := New(server.URL)
	err := client.DetachVersionBlob("uniprot", "swissprot", "2026-03")

	require.NoError(t, err)
}

func TestVersionBlobURL(t *testing.T) {
	expires := time.Now().Add(15 * time.Minute).UTC().Truncate(time.Second)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/orgs/uniprot/entries/swissprot/versions/2026-03/blob-url", r.URL.Path)
		assert.Equal(t, "900", r.URL.Query().Get("ttl_seconds"))

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(BlobURLResponse{
			URL:       "https://blobs.example.com/uniprot/swissprot/v-123/content?signature=abc",
			ExpiresAt: expires,
		})
	}))
	defer server.Close()

	client := New(server.URL)
	resp, err := client.VersionBlobURL("uniprot", "swissprot", "2026-03", 15*time.Minute)

	require.NoError(t, err)
	assert.Contains(t, resp.URL, "signature=")
	assert.Equal(t, expires, resp.ExpiresAt)
}
