package domain

import "strings"

// DefaultPlaceVariants maps canonical route keys to accepted free-text
// spellings of the same destination. Admins type city names by hand, so the
// table absorbs the common variants; keys without an entry match only their
// own normalized form. New destinations are added here (or via a custom
// matcher), not as code branches.
var DefaultPlaceVariants = map[string][]string{
	"coxsbazar":   {"cox's bazar", "coxs bazar", "cox bazar", "cox's bazaar"},
	"saintmartin": {"saint martin", "st martin", "st. martin", "saint martin's island"},
	"sundarban":   {"sundarbans", "the sundarbans"},
	"srimangal":   {"sreemangal", "sri mangal"},
	"chittagong":  {"chattogram"},
	"barishal":    {"barisal"},
}

// PlaceMatcher reconciles free-text city/country values against canonical
// URL route segments.
type PlaceMatcher struct {
	variants map[string]map[string]struct{}
}

// NewPlaceMatcher builds a matcher from a canonical-key -> variants table.
func NewPlaceMatcher(table map[string][]string) PlaceMatcher {
	m := PlaceMatcher{variants: make(map[string]map[string]struct{}, len(table))}
	for key, list := range table {
		norm := normalizePlace(key)
		set := make(map[string]struct{}, len(list)+1)
		set[norm] = struct{}{}
		for _, v := range list {
			set[normalizePlace(v)] = struct{}{}
		}
		m.variants[norm] = set
	}
	return m
}

// Empty reports whether the matcher was built without a table.
func (m PlaceMatcher) Empty() bool {
	return len(m.variants) == 0
}

// Matches reports whether the free-text place names the route key's
// destination. No match is not an error; it simply yields an empty listing.
func (m PlaceMatcher) Matches(freeText, routeKey string) bool {
	text := normalizePlace(freeText)
	key := normalizePlace(routeKey)
	if text == "" || key == "" {
		return false
	}
	if set, ok := m.variants[key]; ok {
		_, hit := set[text]
		return hit
	}
	return text == key
}

// MatchesPlace matches against the default variants table.
func MatchesPlace(freeText, routeKey string) bool {
	return defaultMatcher.Matches(freeText, routeKey)
}

var defaultMatcher = NewPlaceMatcher(DefaultPlaceVariants)

// normalizePlace lowercases and strips everything non-alphabetic, so
// "Cox's Bazar" and "coxs bazar" collapse to the same form.
func normalizePlace(s string) string {
	var out strings.Builder
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' {
			out.WriteRune(r)
		}
	}
	return out.String()
}
