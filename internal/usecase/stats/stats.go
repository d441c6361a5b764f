// Package stats computes the chart aggregations over a filtered result
// set (papers per year, papers per domain).
package stats

import (
	"github.com/redreamality/benchmark-papers/internal/domain/browse"
	"github.com/redreamality/benchmark-papers/internal/domain/paper"
)

// Bucket is one chart bar: a label with its paper count.
type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// ByYear counts papers per publication year, ordered ascending by year.
func ByYear(papers []paper.Paper) []Bucket {
	return buckets(browse.SortedNumeric(browse.CountBy(papers, browse.DimYear)))
}

// ByDomain counts papers per domain, ordered by count descending.
func ByDomain(papers []paper.Paper) []Bucket {
	return buckets(browse.SortedByCount(browse.CountBy(papers, browse.DimDomain)))
}

// ByConference counts papers per conference, ordered by count descending.
func ByConference(papers []paper.Paper) []Bucket {
	return buckets(browse.SortedByCount(browse.CountBy(papers, browse.DimConference)))
}

func buckets(vc []browse.ValueCount) []Bucket {
	out := make([]Bucket, len(vc))
	for i, v := range vc {
		out[i] = Bucket{Label: v.Value, Count: v.Count}
	}
	return out
}
