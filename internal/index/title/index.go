// Package title provides the fuzzy text index over paper titles.
package title

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/xrash/smetrics"

	"github.com/redreamality/benchmark-papers/internal/domain/paper"
	"github.com/redreamality/benchmark-papers/internal/metrics"
)

// Matching parameters. The similarity threshold is fixed at build time
// (configurable via Config) so that identical query and catalog always
// produce identical results.
const (
	DefaultMinQueryLen = 2
	DefaultThreshold   = 0.84

	// Jaro-Winkler standard parameters.
	jwBoostThreshold = 0.7
	jwPrefixSize     = 4
)

// Config tunes the index. Zero values fall back to the defaults.
type Config struct {
	MinQueryLen int
	Threshold   float64
}

// Index is an immutable fuzzy search index over paper titles, built
// once from the full catalog.
type Index struct {
	minQueryLen int
	threshold   float64
	entries     []entry
}

type entry struct {
	id     int
	title  string // case-folded
	tokens []string
}

// New builds an index over the titles of the given papers.
func New(papers []paper.Paper, cfg Config) *Index {
	if cfg.MinQueryLen <= 0 {
		cfg.MinQueryLen = DefaultMinQueryLen
	}
	if cfg.Threshold <= 0 {
		cfg.Threshold = DefaultThreshold
	}
	ix := &Index{
		minQueryLen: cfg.MinQueryLen,
		threshold:   cfg.Threshold,
		entries:     make([]entry, 0, len(papers)),
	}
	for _, p := range papers {
		folded := strings.ToLower(p.Title)
		ix.entries = append(ix.entries, entry{
			id:     p.ID,
			title:  folded,
			tokens: tokenize(folded),
		})
	}
	return ix
}

// Search returns the IDs of papers whose title matches the query,
// typo-tolerantly, ordered by match quality (ties by ID). Queries
// shorter than the minimum length return no matches; the empty-query
// "no restriction" semantics belong to the filter engine, not here.
func (ix *Index) Search(query string) []int {
	q := strings.ToLower(strings.TrimSpace(query))
	if utf8.RuneCountInString(q) < ix.minQueryLen {
		return nil
	}
	qTokens := tokenize(q)
	if len(qTokens) == 0 {
		return nil
	}
	metrics.SearchQueriesTotal.Inc()

	type hit struct {
		id    int
		score float64
	}
	hits := make([]hit, 0, 16)
	for _, e := range ix.entries {
		if score := ix.score(e, q, qTokens); score > 0 {
			hits = append(hits, hit{id: e.id, score: score})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].id < hits[j].id
	})

	ids := make([]int, len(hits))
	for i, h := range hits {
		ids[i] = h.id
	}
	return ids
}

// score rates how well the query matches one title. A whole-query
// substring hit scores highest; otherwise every query token must find a
// title token at or above the similarity threshold, and the score is
// the mean token similarity. Zero means no match.
func (ix *Index) score(e entry, q string, qTokens []string) float64 {
	if strings.Contains(e.title, q) {
		// Favor titles where the query covers more of the text.
		return 2 + float64(len(q))/float64(len(e.title))
	}

	var total float64
	for _, qt := range qTokens {
		best := 0.0
		for _, tt := range e.tokens {
			var s float64
			if strings.Contains(tt, qt) {
				s = 0.95 + 0.05*float64(len(qt))/float64(len(tt))
			} else {
				s = smetrics.JaroWinkler(qt, tt, jwBoostThreshold, jwPrefixSize)
			}
			if s > best {
				best = s
			}
		}
		if best < ix.threshold {
			return 0
		}
		total += best
	}
	return total / float64(len(qTokens))
}

func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
