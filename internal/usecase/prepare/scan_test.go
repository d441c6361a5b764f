package prepare

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/redreamality/benchmark-papers/internal/domain/paper"
)

func TestParseListName(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantConf string
		wantYear int
		wantErr  bool
	}{
		{"simple", "neurips_2024.txt", "neurips", 2024, false},
		{"with path", "/lists/cvpr_2023.txt", "cvpr", 2023, false},
		{"underscore in name", "test_bed_2022.txt", "test_bed", 2022, false},
		{"uppercase", "ACL_2021.txt", "acl", 2021, false},
		{"no year", "neurips.txt", "", 0, true},
		{"bad year", "acl_twenty.txt", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf, year, err := ParseListName(tt.filename)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.filename)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if conf != tt.wantConf || year != tt.wantYear {
				t.Errorf("got (%q, %d), want (%q, %d)", conf, year, tt.wantConf, tt.wantYear)
			}
		})
	}
}

func TestDomainFor(t *testing.T) {
	tests := []struct {
		conference string
		want       string
	}{
		{"neurips", "AI/ML"},
		{"NEURIPS", "AI/ML"},
		{"cvpr", "CV"},
		{"acl", "NLP"},
		{"icse", "SE"},
		{"sigir", "DB/IR"},
		{"www", "Unknown"},
	}

	for _, tt := range tests {
		if got := DomainFor(tt.conference); got != tt.want {
			t.Errorf("DomainFor(%q) = %q, want %q", tt.conference, got, tt.want)
		}
	}
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	write("neurips_2023.txt", "A Benchmark for Reasoning\nAttention Is All You Need\n\n  A Dataset of Proofs  \n")
	write("sigir_2024.txt", "A Survey of Dense Retrieval\n")
	write("notes.md", "ignored, not a txt list")

	papers, err := ScanDir(dir)
	if err != nil {
		t.Fatalf("ScanDir: %v", err)
	}

	// Only keyword-matching titles are kept.
	if len(papers) != 3 {
		t.Fatalf("got %d papers, want 3: %+v", len(papers), papers)
	}

	first := papers[0]
	if first.Conference != "NEURIPS" || first.Year != 2023 || first.Domain != "AI/ML" {
		t.Errorf("paper = %+v", first)
	}
	if len(first.MatchedKeywords) == 0 {
		t.Error("kept paper should carry its matched keywords")
	}
	if first.Category != "" || first.Subcategory != "" {
		t.Error("categories are assigned by the classification step, not the scan")
	}
}

func TestFinalize(t *testing.T) {
	papers := []paper.Paper{
		{ID: 9, Title: "B", Domain: "CV", Conference: "CVPR", Year: 2023},
		{ID: 7, Title: "A", Domain: "AI/ML", Conference: "NEURIPS", Year: 2024},
		{ID: 8, Title: "A", Domain: "AI/ML", Conference: "ICML", Year: 2022},
		{ID: 5, Title: "C", Domain: "AI/ML", Conference: "ICML", Year: 2022},
	}

	got := Finalize(papers)

	wantTitles := []string{"A", "C", "A", "B"} // ICML/A, ICML/C, NEURIPS/A, CVPR/B
	for i, want := range wantTitles {
		if got[i].Title != want {
			t.Fatalf("order[%d] = %q, want %q (full: %+v)", i, got[i].Title, want, got)
		}
	}
	for i, p := range got {
		if p.ID != i+1 {
			t.Fatalf("IDs should be reassigned sequentially from 1, got %d at %d", p.ID, i)
		}
	}
}
