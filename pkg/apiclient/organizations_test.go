package apiclient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOrganizations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/orgs", r.URL.Path)
		assert.Empty(t, r.URL.Query().Get("include_deleted"))

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode([]Organization{
			{ID: "1", Slug: "uniprot", DisplayName: "UniProt", Status: "active"},
			{ID: "2", Slug: "ensembl", DisplayName: "Ensembl", Status: "active"},
		})
	}))
	defer server.Close()

	client := New(server.URL)
	orgs, err := client.ListOrganizations(false)

	require.NoError(t, err)
	assert.Len(t, orgs, 2)
	assert.Equal(t, "uniprot", orgs[0].Slug)
	assert.Equal(t, "ensembl", orgs[1].Slug)
}

func TestListOrganizations_IncludeDeleted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("include_deleted"))
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode([]Organization{
			{ID: "1", Slug: "retired-db", DisplayName: "Retired DB", Status: "deleted"},
		})
	}))
	defer server.Close()

	client := New(server.URL)
	orgs, err := client.ListOrganizations(true)

	require.NoError(t, err)
	require.Len(t, orgs, 1)
	assert.Equal(t, "deleted", orgs[0].Status)
}

func TestGetOrganization(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/orgs/uniprot", r.URL.Path)

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(Organization{
			ID:          "org-123",
			Slug:        "uniprot",
			DisplayName: "UniProt Consortium",
			Website:     "https://www.uniprot.org",
			Status:      "active",
		})
	}))
	defer server.Close()

	client := New(server.URL)
	org, err := client.GetOrganization("uniprot")

	require.NoError(t, err)
	assert.Equal(t, "org-123", org.ID)
	assert.Equal(t, "UniProt Consortium", org.DisplayName)
}

func TestGetOrganization_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(APIError{
			Code:    "NOT_FOUND",
			Message: "Organization not found",
		})
	}))
	defer server.Close()

	client := New(server.URL)
	org, err := client.GetOrganization("nonexistent")

	assert.Nil(t, org)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.True(t, apiErr.IsNotFound())
}

func TestCreateOrganization(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/orgs", r.URL.Path)

		var req CreateOrganizationRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)
		assert.Equal(t, "ensembl", req.Slug)
		assert.Equal(t, "Ensembl", req.DisplayName)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(Organization{
			ID:          "new-org-123",
			Slug:        req.Slug,
			DisplayName: req.DisplayName,
			Status:      "active",
		})
	}))
	defer server.Close()

	client := New(server.URL)
	org, err := client.CreateOrganization(&CreateOrganizationRequest{
		Slug:        "ensembl",
		DisplayName: "Ensembl",
	})

	require.NoError(t, err)
	assert.Equal(t, "new-org-123", org.ID)
	assert.Equal(t, "ensembl", org.Slug)
}

func TestCreateOrganization_Duplicate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(APIError{
			Code:    "CONFLICT",
			Message: "Organization already exists",
		})
	}))
	defer server.Close()

	client := New(server.URL)
	org, err := client.CreateOrganization(&CreateOrganizationRequest{
		Slug:        "uniprot",
		DisplayName: "UniProt",
	})

	assert.Nil(t, org)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.True(t, apiErr.IsConflict())
}

func TestUpdateOrganization(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/v1/orgs/uniprot", r.URL.Path)

		var req UpdateOrganizationRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)
		require.NotNil(t, req.DisplayName)
		assert.Equal(t, "UniProt Knowledgebase", *req.DisplayName)
		assert.Nil(t, req.Website)

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(Organization{
			ID:          "org-123",
			Slug:        "uniprot",
			DisplayName: *req.DisplayName,
			Status:      "active",
		})
	}))
	defer server.Close()

	client := New(server.URL)
	name := "UniProt Knowledgebase"
	org, err := client.UpdateOrganization("uniprot", &UpdateOrganizationRequest{
		DisplayName: &name,
	})

	require.NoError(t, err)
	assert.Equal(t, "UniProt Knowledgebase", org.DisplayName)
}

func TestDeleteOrganization(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/orgs/uniprot", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := New(server.URL)
	err := client.DeleteOrganization("uniprot")

	require.NoError(t, err)
}
