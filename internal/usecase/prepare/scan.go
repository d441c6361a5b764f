// Package prepare builds the paper catalog from raw conference title
// lists: scan and keyword-filter, classify, then merge into the frozen
// papers.json the server loads.
package prepare

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/redreamality/benchmark-papers/internal/domain/paper"
)

// conferenceDomains maps a conference to its research domain.
// Conferences outside the map land in "Unknown".
var conferenceDomains = map[string]string{
	"neurips": "AI/ML", "icml": "AI/ML", "iclr": "AI/ML", "aaai": "AI/ML", "ijcai": "AI/ML",
	"cvpr": "CV", "iccv": "CV", "eccv": "CV",
	"acl": "NLP", "emnlp": "NLP", "naacl": "NLP",
	"icse": "SE", "fse": "SE", "ase": "SE",
	"sigmod": "DB/IR", "vldb": "DB/IR", "cikm": "DB/IR", "sigir": "DB/IR",
}

// DomainFor returns the research domain for a conference name
// (case-insensitive), or "Unknown".
func DomainFor(conference string) string {
	if d, ok := conferenceDomains[strings.ToLower(conference)]; ok {
		return d
	}
	return "Unknown"
}

// ParseListName splits a title-list filename like "neurips_2024.txt"
// into conference and year.
func ParseListName(filename string) (string, int, error) {
	stem := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	i := strings.LastIndex(stem, "_")
	if i < 0 {
		return "", 0, fmt.Errorf("list filename %q: want <conference>_<year>", filename)
	}
	year, err := strconv.Atoi(stem[i+1:])
	if err != nil {
		return "", 0, fmt.Errorf("list filename %q: bad year: %w", filename, err)
	}
	return strings.ToLower(stem[:i]), year, nil
}

// ScanDir reads every *.txt title list in dir and returns the papers
// whose titles match a benchmark keyword. Conference names are
// upper-cased for display; category and subcategory are left empty for
// the classification step. IDs are provisional until Finalize.
func ScanDir(dir string) ([]paper.Paper, error) {
	entries, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	sort.Strings(entries)

	var papers []paper.Paper
	for _, path := range entries {
		conference, year, err := ParseListName(path)
		if err != nil {
			return nil, err
		}
		titles, err := readTitles(path)
		if err != nil {
			return nil, err
		}
		for _, title := range titles {
			matched := MatchKeywords(title)
			if len(matched) == 0 {
				continue
			}
			papers = append(papers, paper.Paper{
				ID:              len(papers) + 1,
				Title:           title,
				Conference:      strings.ToUpper(conference),
				Year:            year,
				Domain:          DomainFor(conference),
				MatchedKeywords: matched,
			})
		}
	}
	return papers, nil
}

func readTitles(path string) ([]string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var titles []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			titles = append(titles, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return titles, nil
}

// Finalize sorts the catalog by (domain, conference, year, title) and
// reassigns sequential IDs from 1, producing the canonical catalog
// order the browse engine preserves.
func Finalize(papers []paper.Paper) []paper.Paper {
	sort.SliceStable(papers, func(i, j int) bool {
		a, b := papers[i], papers[j]
		if a.Domain != b.Domain {
			return a.Domain < b.Domain
		}
		if a.Conference != b.Conference {
			return a.Conference < b.Conference
		}
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		return a.Title < b.Title
	})
	for i := range papers {
		papers[i].ID = i + 1
	}
	return papers
}
