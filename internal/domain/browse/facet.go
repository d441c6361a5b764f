package browse

import (
	"sort"
	"strconv"

	"github.com/redreamality/benchmark-papers/internal/domain/paper"
)

// CountBy computes per-value occurrence counts for one dimension over
// the given papers in a single pass. For the keyword dimension a paper
// contributes once per tag; papers with an empty value for a
// single-valued dimension are excluded from that dimension's counts.
// The map is unordered and untruncated; ordering and display limits are
// the caller's concern.
func CountBy(papers []paper.Paper, d Dimension) map[string]int {
	counts := make(map[string]int)
	for _, p := range papers {
		for _, v := range d.Values(p) {
			counts[v]++
		}
	}
	return counts
}

// ValueCount is one facet value with its occurrence count, used for
// chip rendering.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// SortedByCount orders a count map by count descending, breaking ties
// by value ascending so the ordering is stable across runs.
func SortedByCount(counts map[string]int) []ValueCount {
	out := collect(counts)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out
}

// SortedNumeric orders a count map by its values interpreted as
// integers, ascending. Non-numeric values sort after numeric ones, by
// string. Used for the year dimension.
func SortedNumeric(counts map[string]int) []ValueCount {
	out := collect(counts)
	sort.Slice(out, func(i, j int) bool {
		a, aok := atoi(out[i].Value)
		b, bok := atoi(out[j].Value)
		switch {
		case aok && bok:
			return a < b
		case aok != bok:
			return aok
		default:
			return out[i].Value < out[j].Value
		}
	})
	return out
}

func collect(counts map[string]int) []ValueCount {
	out := make([]ValueCount, 0, len(counts))
	for v, c := range counts {
		out = append(out, ValueCount{Value: v, Count: c})
	}
	return out
}

func atoi(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	return n, err == nil
}
