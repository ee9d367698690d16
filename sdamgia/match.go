package sdamgia

import (
	"github.com/dinaprk/sdamgia-api/lib/textutil"

	"github.com/antzucaro/matchr"
)

// FilterCatalog keeps the entries whose topic name contains at least
// one of the given keywords, compared case- and whitespace-insensitively.
// No keywords means nothing matches.
func FilterCatalog(catalog []CatalogEntry, keywords []string) []CatalogEntry {
	matchers := make([]string, 0, len(keywords))
	for _, k := range keywords {
		matchers = append(matchers, textutil.NormalizeName(k))
	}

	filtered := []CatalogEntry{}
	for _, entry := range catalog {
		if textutil.MatchName(entry.TopicName, matchers) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// MatchTopic finds the catalog entry whose display name is closest to
// name, comparing canonicalized names by Jaro-Winkler similarity. The
// second return is false when nothing scores above zero.
func MatchTopic(catalog []CatalogEntry, name string) (CatalogEntry, bool) {
	target := textutil.NormalizeName(name)

	var best CatalogEntry
	var bestScore float64
	for _, entry := range catalog {
		score := matchr.JaroWinkler(textutil.NormalizeName(entry.TopicName), target, false)
		if score > bestScore {
			bestScore = score
			best = entry
		}
	}
	return best, bestScore > 0
}
