package clientcache

import (
	"sort"
	"strings"

	"github.com/seqvault/seqvault/pkg/checksum"
)

// Request identifies one cacheable read operation. Two requests with the
// same operation and parameters produce the same fingerprint regardless of
// parameter insertion order.
type Request struct {
	// Operation is the read operation name, e.g. "get_entry" or
	// "fetch_blob".
	Operation string

	// Params are the operation's parameters.
	Params map[string]string
}

// Fingerprint returns the request's cache key: a hex digest over the
// canonical serialization of operation and sorted parameters. The digest
// form keeps keys filename-safe for the disk tier.
func (r Request) Fingerprint() string {
	var b strings.Builder
	b.WriteString(r.Operation)

	keys := make([]string, 0, len(r.Params))
	for k := range r.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		b.WriteByte(0)
		b.WriteString(k)
		b.WriteByte(0)
		b.WriteString(r.Params[k])
	}
	return checksum.Sum([]byte(b.String())).String()
}
