package domain

import (
	"sort"
	"strings"
)

// Filter narrows a catalog by type and free-text query. The zero value
// matches everything.
type Filter struct {
	Type  *AttractionType
	Query string
}

func (f Filter) Matches(a Attraction) bool {
	if f.Type != nil && a.Type != *f.Type {
		return false
	}

	query := strings.ToLower(strings.TrimSpace(f.Query))
	if query == "" {
		return true
	}

	return strings.Contains(strings.ToLower(a.Name), query) ||
		strings.Contains(strings.ToLower(a.Description), query) ||
		strings.Contains(strings.ToLower(string(a.Type)), query)
}

// Apply returns the matching attractions in their original order.
func (f Filter) Apply(attractions []Attraction) []Attraction {
	matched := make([]Attraction, 0, len(attractions))
	for _, a := range attractions {
		if f.Matches(a) {
			matched = append(matched, a)
		}
	}
	return matched
}

// DistinctTypes lists the types present in attractions, sorted by name.
func DistinctTypes(attractions []Attraction) []AttractionType {
	seen := make(map[AttractionType]struct{})
	var types []AttractionType
	for _, a := range attractions {
		if _, ok := seen[a.Type]; ok {
			continue
		}
		seen[a.Type] = struct{}{}
		types = append(types, a.Type)
	}

	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
