package places

import "strings"

// Filter returns the subsequence of catalog matching the category and query,
// preserving catalog order. category must be a key from the closed set; "all"
// matches everything. The query is trimmed and matched case-insensitively as
// a plain substring against the name and summary in both languages — no
// tokenising, no ranking.
func Filter(catalog []*Place, category, query string) []*Place {
	q := strings.ToLower(strings.TrimSpace(query))

	var out []*Place
	for _, p := range catalog {
		if category != "all" && p.Category != category {
			continue
		}
		if q != "" && !matches(p, q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matches(p *Place, q string) bool {
	for _, code := range []string{"ko", "en"} {
		if strings.Contains(strings.ToLower(p.Name[code]), q) {
			return true
		}
		if strings.Contains(strings.ToLower(p.Summary[code]), q) {
			return true
		}
	}
	return false
}
