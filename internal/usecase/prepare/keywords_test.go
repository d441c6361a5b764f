package prepare

import "testing"

func TestMatchKeywords(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  []string
	}{
		{"single match", "A Benchmark for Reasoning", []string{"benchmark"}},
		{"case insensitive", "A BENCHMARK for Reasoning", []string{"benchmark"}},
		{"multiple matches", "Benchmark and Dataset for QA Evaluation", []string{"benchmark", "dataset", "evaluation"}},
		{"word boundary", "Benchmarking Large Models", nil},
		{"plural not matched", "Three Benchmarks Compared", nil},
		{"two-word keyword", "A Test Bed for Agents", []string{"test bed"}},
		{"no match", "Attention Is All You Need", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchKeywords(tt.title)
			if len(got) != len(tt.want) {
				t.Fatalf("MatchKeywords(%q) = %v, want %v", tt.title, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("MatchKeywords(%q) = %v, want %v", tt.title, got, tt.want)
				}
			}
		})
	}
}
