package prepare

import "regexp"

// benchmarkKeywords select papers from the raw conference lists. A
// title is kept when at least one keyword matches on a word boundary,
// case-insensitively; the matches become the paper's keyword tags.
var benchmarkKeywords = []string{
	"benchmark",
	"dataset",
	"evaluation",
	"leaderboard",
	"testbed",
	"test bed",
	"test suite",
	"corpus",
	"survey",
}

var keywordPatterns = compileKeywordPatterns()

type keywordPattern struct {
	keyword string
	re      *regexp.Regexp
}

func compileKeywordPatterns() []keywordPattern {
	patterns := make([]keywordPattern, 0, len(benchmarkKeywords))
	for _, kw := range benchmarkKeywords {
		patterns = append(patterns, keywordPattern{
			keyword: kw,
			re:      regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`),
		})
	}
	return patterns
}

// MatchKeywords returns the benchmark keywords found in the title, in
// canonical keyword order. Empty means the title is not kept.
func MatchKeywords(title string) []string {
	var matched []string
	for _, p := range keywordPatterns {
		if p.re.MatchString(title) {
			matched = append(matched, p.keyword)
		}
	}
	return matched
}
