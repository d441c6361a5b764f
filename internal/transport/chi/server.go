// Package chi exposes the browse engine over HTTP. The request query
// string is exactly the shareable-URL state: handlers decode it with
// the browse codec, run the engine over the frozen catalog, and echo
// the canonical encoding back so clients can persist it.
package chi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/redreamality/benchmark-papers/internal/domain/browse"
	"github.com/redreamality/benchmark-papers/internal/domain/paper"
	"github.com/redreamality/benchmark-papers/internal/repository/catalog"
	"github.com/redreamality/benchmark-papers/internal/usecase/export"
	"github.com/redreamality/benchmark-papers/internal/usecase/stats"
)

// Server serves the browse API over the frozen catalog.
type Server struct {
	store  *catalog.Store
	index  browse.Matcher
	logger *zap.Logger
}

// NewServer creates the browse API server.
func NewServer(store *catalog.Store, index browse.Matcher, logger *zap.Logger) *Server {
	return &Server{store: store, index: index, logger: logger}
}

// Routes mounts the API onto the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/api/papers", s.ListPapers)
	r.Get("/api/facets", s.Facets)
	r.Get("/api/stats", s.Stats)
	r.Get("/api/export", s.Export)
	r.Get("/health", s.Health)
	r.Handle("/metrics", promhttp.Handler())
}

// papersResponse is the filtered result set plus the canonical state
// encoding for the shareable URL.
type papersResponse struct {
	Total  int           `json:"total"`
	State  string        `json:"state"`
	Papers []paper.Paper `json:"papers"`
}

// ListPapers handles GET /api/papers?q=&domain=&cat=&conf=&year=&kw=.
// Malformed or unknown parameters are tolerated, never an error: the
// worst case is an empty result set with an accurate zero count.
func (s *Server) ListPapers(w http.ResponseWriter, r *http.Request) {
	state := browse.DecodeValues(r.URL.Query())
	filtered := browse.Apply(state, s.store.All(), s.index)

	writeJSON(w, http.StatusOK, papersResponse{
		Total:  len(filtered),
		State:  browse.Encode(state),
		Papers: filtered,
	})
}

// facetsResponse maps dimension names to their selectable values with
// full-catalog counts, pre-ordered for chip rendering.
type facetsResponse map[string][]browse.ValueCount

// Facets handles GET /api/facets. Counts always come from the full
// catalog, not the filtered subset, so chip counts stay stable while
// the user explores.
func (s *Server) Facets(w http.ResponseWriter, r *http.Request) {
	resp := make(facetsResponse, len(browse.Dimensions))
	for _, d := range browse.Dimensions {
		counts := browse.CountBy(s.store.All(), d)
		if d == browse.DimYear {
			resp[d.String()] = browse.SortedNumeric(counts)
			continue
		}
		resp[d.String()] = browse.SortedByCount(counts)
	}
	writeJSON(w, http.StatusOK, resp)
}

// statsResponse carries the chart aggregations over the filtered set.
type statsResponse struct {
	Total        int            `json:"total"`
	ByYear       []stats.Bucket `json:"byYear"`
	ByDomain     []stats.Bucket `json:"byDomain"`
	ByConference []stats.Bucket `json:"byConference"`
}

// Stats handles GET /api/stats with the same query parameters as
// /api/papers, aggregating the filtered set for the charts.
func (s *Server) Stats(w http.ResponseWriter, r *http.Request) {
	state := browse.DecodeValues(r.URL.Query())
	filtered := browse.Apply(state, s.store.All(), s.index)

	writeJSON(w, http.StatusOK, statsResponse{
		Total:        len(filtered),
		ByYear:       stats.ByYear(filtered),
		ByDomain:     stats.ByDomain(filtered),
		ByConference: stats.ByConference(filtered),
	})
}

// Export handles GET /api/export, streaming the current filtered
// sequence as a CSV attachment.
func (s *Server) Export(w http.ResponseWriter, r *http.Request) {
	state := browse.DecodeValues(r.URL.Query())
	filtered := browse.Apply(state, s.store.All(), s.index)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="papers.csv"`)
	if err := export.CSV(w, filtered); err != nil {
		s.logger.Error("csv export failed", zap.Error(err))
	}
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"papers": s.store.Len(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{
		"code":    code,
		"message": message,
	})
}
