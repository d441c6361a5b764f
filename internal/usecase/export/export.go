// Package export formats the current filtered sequence for download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/redreamality/benchmark-papers/internal/domain/paper"
	"github.com/redreamality/benchmark-papers/internal/metrics"
)

var csvHeader = []string{
	"id", "title", "conference", "year",
	"domain", "category", "subcategory", "url", "keywords",
}

// CSV writes the papers as CSV: a header row, then one row per paper in
// the order given (the engine's catalog order). Keyword tags are joined
// with "; " inside one cell.
func CSV(w io.Writer, papers []paper.Paper) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, p := range papers {
		row := []string{
			strconv.Itoa(p.ID),
			p.Title,
			p.Conference,
			strconv.Itoa(p.Year),
			p.Domain,
			p.Category,
			p.Subcategory,
			p.URL,
			strings.Join(p.Keywords(), "; "),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %d: %w", p.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	metrics.ExportsTotal.Inc()
	return nil
}
