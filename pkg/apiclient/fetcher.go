package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/seqvault/seqvault/pkg/clientcache"
)

// Cacheable read operations, matching what CacheFetch dispatches on.
const (
	OpListOrganizations = "list_organizations"
	OpGetOrganization   = "get_organization"
	OpListEntries       = "list_entries"
	OpGetEntry          = "get_entry"
	OpSearchEntries     = "search_entries"
	OpListVersions      = "list_versions"
	OpGetVersion        = "get_version"
	OpFetchBlob         = "fetch_blob"
)

// CacheFetch is the production fetch source for the client cache: it maps
// a cache request onto the corresponding read endpoint and returns the raw
// response body, which the cache stores verbatim. Write operations are
// deliberately absent.
func (c *Client) CacheFetch(ctx context.Context, req clientcache.Request) ([]byte, error) {
	path, err := cachePath(req)
	if err != nil {
		return nil, err
	}
	return c.doRaw(ctx, http.MethodGet, path, "", nil)
}

func cachePath(req clientcache.Request) (string, error) {
	p := req.Params
	switch req.Operation {
	case OpListOrganizations:
		return "/api/v1/orgs", nil
	case OpGetOrganization:
		return resourcePath("/api/v1/orgs/%s", p["org"]), nil
	case OpListEntries:
		return resourcePath("/api/v1/orgs/%s/entries", p["org"]), nil
	case OpGetEntry:
		return resourcePath("/api/v1/orgs/%s/entries/%s", p["org"], p["entry"]), nil
	case OpSearchEntries:
		params := url.Values{"q": {p["q"]}}
		if limit := p["limit"]; limit != "" {
			params.Set("limit", limit)
		}
		return "/api/v1/entries/search?" + params.Encode(), nil
	case OpListVersions:
		return resourcePath("/api/v1/orgs/%s/entries/%s/versions", p["org"], p["entry"]), nil
	case OpGetVersion:
		return versionPath(p["org"], p["entry"], p["label"]), nil
	case OpFetchBlob:
		return versionPath(p["org"], p["entry"], p["label"]) + "/blob", nil
	default:
		return "", fmt.Errorf("operation %q is not cacheable", req.Operation)
	}
}
