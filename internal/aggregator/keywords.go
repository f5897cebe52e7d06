package aggregator

import "strings"

// keywordExpansions widens common search terms with related ones so the
// pre-filter stays recall-oriented. A search for "data" should not drop an
// "Analytics Engineer" posting before the scorer ever sees it.
var keywordExpansions = map[string][]string{
	"social media": {"social", "media", "content", "marketing", "community", "digital"},
	"data":         {"data", "analyst", "analytics", "scientist", "engineer"},
	"developer":    {"developer", "engineer", "software", "frontend", "backend", "fullstack"},
	"engineer":     {"developer", "engineer", "software", "frontend", "backend", "fullstack"},
}

// ExpandKeywords lowercases the keywords and adds category expansions for
// every keyword containing a known seed term.
func ExpandKeywords(keywords []string) []string {
	seen := make(map[string]struct{})
	var expanded []string

	add := func(kw string) {
		kw = strings.TrimSpace(strings.ToLower(kw))
		if kw == "" {
			return
		}
		if _, ok := seen[kw]; ok {
			return
		}
		seen[kw] = struct{}{}
		expanded = append(expanded, kw)
	}

	for _, kw := range keywords {
		add(kw)
	}
	for _, kw := range keywords {
		lower := strings.ToLower(kw)
		for seed, related := range keywordExpansions {
			if strings.Contains(lower, seed) {
				for _, r := range related {
					add(r)
				}
			}
		}
	}

	return expanded
}
