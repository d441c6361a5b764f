package title

import (
	"testing"

	"github.com/redreamality/benchmark-papers/internal/domain/paper"
)

func testPapers() []paper.Paper {
	return []paper.Paper{
		{ID: 1, Title: "A Benchmark for Transformer Reasoning"},
		{ID: 2, Title: "ImageNet: A Large-Scale Image Dataset"},
		{ID: 3, Title: "Evaluating Code Generation Models"},
		{ID: 4, Title: "Transformers for Tabular Data: A Survey"},
	}
}

func contains(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func TestSearch_ShortQueryReturnsNothing(t *testing.T) {
	ix := New(testPapers(), Config{})

	for _, q := range []string{"", "a", " b "} {
		if got := ix.Search(q); len(got) != 0 {
			t.Errorf("Search(%q) = %v, want empty", q, got)
		}
	}
}

func TestSearch_ExactSubstring(t *testing.T) {
	ix := New(testPapers(), Config{})

	got := ix.Search("image dataset")
	if !contains(got, 2) {
		t.Fatalf("Search(\"image dataset\") = %v, want to include 2", got)
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	ix := New(testPapers(), Config{})

	got := ix.Search("IMAGENET")
	if !contains(got, 2) {
		t.Fatalf("Search(\"IMAGENET\") = %v, want to include 2", got)
	}
}

func TestSearch_TypoTolerant(t *testing.T) {
	ix := New(testPapers(), Config{})

	tests := []struct {
		query  string
		wantID int
	}{
		{"trasformer", 1}, // dropped letter
		{"benchmrak", 1},  // transposition
		{"evaluating", 3}, // exact token, different casing in title
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := ix.Search(tt.query)
			if !contains(got, tt.wantID) {
				t.Errorf("Search(%q) = %v, want to include %d", tt.query, got, tt.wantID)
			}
		})
	}
}

func TestSearch_NoMatch(t *testing.T) {
	ix := New(testPapers(), Config{})

	if got := ix.Search("quantum cryptography"); len(got) != 0 {
		t.Fatalf("Search for unrelated terms = %v, want empty", got)
	}
}

func TestSearch_Deterministic(t *testing.T) {
	ix := New(testPapers(), Config{})

	first := ix.Search("transformer")
	for i := 0; i < 5; i++ {
		again := ix.Search("transformer")
		if len(again) != len(first) {
			t.Fatalf("run %d returned %v, first run %v", i, again, first)
		}
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("run %d returned %v, first run %v", i, again, first)
			}
		}
	}
}

func TestSearch_OnlyValidIDs(t *testing.T) {
	papers := testPapers()
	ix := New(papers, Config{})

	valid := make(map[int]bool, len(papers))
	for _, p := range papers {
		valid[p.ID] = true
	}

	for _, q := range []string{"transformer", "survey", "dataset", "model"} {
		for _, id := range ix.Search(q) {
			if !valid[id] {
				t.Fatalf("Search(%q) returned unknown id %d", q, id)
			}
		}
	}
}

func TestSearch_AllTokensRequired(t *testing.T) {
	ix := New(testPapers(), Config{})

	// "transformer dataset" matches no single title: 1 has transformer
	// but no dataset token, 2 has dataset but no transformer.
	if got := ix.Search("transformer imagenet"); len(got) != 0 {
		t.Fatalf("multi-token query must require every token, got %v", got)
	}
}

func TestNew_ConfigOverrides(t *testing.T) {
	ix := New(testPapers(), Config{MinQueryLen: 5})

	if got := ix.Search("data"); len(got) != 0 {
		t.Fatalf("4-rune query should be under the 5-rune minimum, got %v", got)
	}
}
