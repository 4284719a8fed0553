package store

import (
	"context"
	"sort"
	"strings"

	"github.com/seqvault/seqvault/pkg/registry/models"
)

// Relevance weights for search scoring. Name matches outrank description
// matches; exact and prefix matches outrank substring matches.
const (
	scoreNameExact   = 100.0
	scoreNamePrefix  = 50.0
	scoreNameSub     = 25.0
	scoreSlugSub     = 20.0
	scoreDescription = 10.0
)

// SearchEntries performs a ranked substring search over entry slugs, names
// and descriptions. Candidate rows are selected with LIKE filters; scoring
// and ordering happen in-process so both backends rank identically. Results
// are ordered by descending score, ties broken by most recent creation.
func (s *GORMStore) SearchEntries(ctx context.Context, query string, limit int) ([]models.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.SearchResult{}, nil
	}

	pattern := "%" + escapeLike(query) + "%"
	var candidates []models.RegistryEntry
	err := s.db.WithContext(ctx).
		Where("lower(name) LIKE ? ESCAPE '\\' OR lower(slug) LIKE ? ESCAPE '\\' OR lower(description) LIKE ? ESCAPE '\\'",
			pattern, pattern, pattern).
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}

	results := make([]models.SearchResult, 0, len(candidates))
	for _, entry := range candidates {
		score := scoreEntry(&entry, query)
		if score <= 0 {
			continue
		}
		results = append(results, models.SearchResult{Entry: entry, Score: score})
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

// scoreEntry computes the relevance of an entry for a query. Weights are
// additive so an entry matching in both name and description outranks one
// matching in the description alone.
func scoreEntry(entry *models.RegistryEntry, query string) float64 {
	q := strings.ToLower(query)
	name := strings.ToLower(entry.Name)
	slug := strings.ToLower(entry.Slug)
	desc := strings.ToLower(entry.Description)

	var score float64
	switch {
	case name == q:
		score += scoreNameExact
	case strings.HasPrefix(name, q):
		score += scoreNamePrefix
	case strings.Contains(name, q):
		score += scoreNameSub
	}
	if strings.Contains(slug, q) {
		score += scoreSlugSub
	}
	if strings.Contains(desc, q) {
		score += scoreDescription
	}
	return score
}

// escapeLike escapes LIKE metacharacters in a user query and lowercases it
// so the filter matches the lower() columns.
func escapeLike(query string) string {
	query = strings.ToLower(query)
	query = strings.ReplaceAll(query, `\`, `\\`)
	query = strings.ReplaceAll(query, `%`, `\%`)
	query = strings.ReplaceAll(query, `_`, `\_`)
	return query
}
