package browse

import "github.com/redreamality/benchmark-papers/internal/domain/paper"

// Matcher resolves a free-text query to the matching paper IDs.
// Implementations must be deterministic for a fixed catalog and return
// only IDs present in it. Result order is relevance order, but the
// engine uses membership only.
type Matcher interface {
	Search(query string) []int
}

// Apply narrows the catalog through every active restriction of the
// state and returns the filtered papers in catalog order. Semantics:
// values combine with OR within a dimension, dimensions combine with
// AND, and a non-empty query restricts to the matcher's result set. An
// empty state returns the catalog unchanged; a query that matches
// nothing yields an empty result regardless of facet selections.
//
// Results are never re-sorted by relevance so that downstream
// sort/paginate stays deterministic.
func Apply(s *State, papers []paper.Paper, m Matcher) []paper.Paper {
	var matched map[int]struct{}
	if s.Query() != "" {
		matched = map[int]struct{}{}
		if m != nil {
			for _, id := range m.Search(s.Query()) {
				matched[id] = struct{}{}
			}
		}
	}

	out := make([]paper.Paper, 0, len(papers))
	for _, p := range papers {
		if matched != nil {
			if _, ok := matched[p.ID]; !ok {
				continue
			}
		}
		if !matchesFacets(s, p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// matchesFacets reports whether the paper passes every active facet
// restriction.
func matchesFacets(s *State, p paper.Paper) bool {
	for _, d := range Dimensions {
		sel := s.selections[d]
		if len(sel) == 0 {
			continue
		}
		if !anySelected(sel, d.Values(p)) {
			return false
		}
	}
	return true
}

func anySelected(sel map[string]struct{}, values []string) bool {
	for _, v := range values {
		if _, ok := sel[v]; ok {
			return true
		}
	}
	return false
}
