// Package paper defines the catalog record type.
package paper

// Paper is one catalog record. Papers are loaded once at startup and
// never mutated afterwards; identity is the integer ID.
type Paper struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	Conference      string   `json:"conference"`
	Year            int      `json:"year"`
	Domain          string   `json:"domain"`
	Category        string   `json:"category"`
	Subcategory     string   `json:"subcategory"`
	URL             string   `json:"url,omitempty"`
	Abstract        string   `json:"abstract,omitempty"`
	MatchedKeywords []string `json:"matchedKeywords,omitempty"`
}

// Keywords returns the matched-keyword tags. A missing matchedKeywords
// field decodes as nil, which callers treat as an empty tag set.
func (p Paper) Keywords() []string { return p.MatchedKeywords }
