package browse

import (
	"strconv"

	"github.com/redreamality/benchmark-papers/internal/domain/paper"
)

// Dimension identifies one facet of the catalog. Using a closed enum
// instead of string keys makes an invalid dimension a compile-time
// impossibility.
type Dimension int

// The five facet dimensions, in canonical order.
const (
	DimDomain Dimension = iota
	DimCategory
	DimConference
	DimYear
	DimKeyword

	numDimensions
)

// Dimensions lists every facet dimension in canonical order.
var Dimensions = [numDimensions]Dimension{
	DimDomain, DimCategory, DimConference, DimYear, DimKeyword,
}

// String returns the dimension name used in API responses and logs.
func (d Dimension) String() string {
	switch d {
	case DimDomain:
		return "domain"
	case DimCategory:
		return "category"
	case DimConference:
		return "conference"
	case DimYear:
		return "year"
	case DimKeyword:
		return "keyword"
	}
	return "unknown"
}

// Param returns the query-string key the dimension serializes under.
func (d Dimension) Param() string {
	switch d {
	case DimDomain:
		return "domain"
	case DimCategory:
		return "cat"
	case DimConference:
		return "conf"
	case DimYear:
		return "year"
	case DimKeyword:
		return "kw"
	}
	return ""
}

// Values returns the facet values a paper exhibits for the dimension.
// Single-valued dimensions yield zero or one value (zero when the field
// is empty); the keyword dimension yields one value per tag. Years are
// compared as strings throughout the filter layer.
func (d Dimension) Values(p paper.Paper) []string {
	switch d {
	case DimDomain:
		return singleValue(p.Domain)
	case DimCategory:
		return singleValue(p.Category)
	case DimConference:
		return singleValue(p.Conference)
	case DimYear:
		if p.Year == 0 {
			return nil
		}
		return []string{strconv.Itoa(p.Year)}
	case DimKeyword:
		return p.Keywords()
	}
	return nil
}

func singleValue(v string) []string {
	if v == "" {
		return nil
	}
	return []string{v}
}
