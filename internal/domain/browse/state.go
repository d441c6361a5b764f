// Package browse implements faceted filtering over the paper catalog:
// the filter state, the combination engine, facet counting and the
// query-string codec for shareable URLs.
package browse

import "sort"

// State holds the active free-text query plus one selection set per
// facet dimension. An empty query and empty selection sets mean the
// dimension imposes no restriction. Selection sets never contain
// duplicates; values absent from the catalog may appear (restored from
// a stale URL) and simply match nothing.
type State struct {
	query      string
	selections [numDimensions]map[string]struct{}
}

// NewState creates an empty state: no query, no selections.
func NewState() *State {
	return &State{}
}

// Query returns the free-text query. Empty means inactive.
func (s *State) Query() string { return s.query }

// SetQuery replaces the free-text query atomically. Any string,
// including empty, is valid.
func (s *State) SetQuery(q string) { s.query = q }

// Toggle adds value to the dimension's selection if absent, removes it
// if present. Toggling twice is a no-op.
func (s *State) Toggle(d Dimension, value string) {
	sel := s.selections[d]
	if sel == nil {
		sel = make(map[string]struct{})
		s.selections[d] = sel
	}
	if _, ok := sel[value]; ok {
		delete(sel, value)
		return
	}
	sel[value] = struct{}{}
}

// Selected reports whether value is in the dimension's selection.
func (s *State) Selected(d Dimension, value string) bool {
	_, ok := s.selections[d][value]
	return ok
}

// Selection returns the dimension's selected values, sorted. The slice
// is a copy; mutating it does not affect the state.
func (s *State) Selection(d Dimension) []string {
	sel := s.selections[d]
	if len(sel) == 0 {
		return nil
	}
	values := make([]string, 0, len(sel))
	for v := range sel {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// HasSelection reports whether the dimension has at least one selected
// value, i.e. whether it restricts the result set.
func (s *State) HasSelection(d Dimension) bool {
	return len(s.selections[d]) > 0
}

// Reset clears the query and all five selection sets, returning the
// state to the unfiltered catalog.
func (s *State) Reset() {
	s.query = ""
	s.selections = [numDimensions]map[string]struct{}{}
}

// IsEmpty reports whether the state imposes no restriction at all.
func (s *State) IsEmpty() bool {
	if s.query != "" {
		return false
	}
	for _, sel := range s.selections {
		if len(sel) > 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	c := &State{query: s.query}
	for d, sel := range s.selections {
		if len(sel) == 0 {
			continue
		}
		cp := make(map[string]struct{}, len(sel))
		for v := range sel {
			cp[v] = struct{}{}
		}
		c.selections[d] = cp
	}
	return c
}

// Equal reports whether two states select the same query and the same
// value sets, ignoring selection order.
func (s *State) Equal(o *State) bool {
	if s.query != o.query {
		return false
	}
	for _, d := range Dimensions {
		a, b := s.selections[d], o.selections[d]
		if len(a) != len(b) {
			return false
		}
		for v := range a {
			if _, ok := b[v]; !ok {
				return false
			}
		}
	}
	return true
}
