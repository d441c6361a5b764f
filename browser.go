// Package benchmarkpapers is the embeddable browse engine: fuzzy title
// search combined with facet filters over a frozen paper catalog, with
// the filter state kept in sync with a shareable query string.
//
// A Browser owns one filter state (one UI session). Every mutation
// re-runs the filter engine, re-encodes the URL state and synchronously
// notifies the registered change callback, so by the time a mutation
// returns, results, counts and URL are consistent.
package benchmarkpapers

import (
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/redreamality/benchmark-papers/internal/domain/browse"
	"github.com/redreamality/benchmark-papers/internal/domain/paper"
	"github.com/redreamality/benchmark-papers/internal/index/title"
	"github.com/redreamality/benchmark-papers/internal/repository/catalog"
	browseuc "github.com/redreamality/benchmark-papers/internal/usecase/browse"
	"github.com/redreamality/benchmark-papers/internal/usecase/export"
)

// Paper is one catalog record.
type Paper = paper.Paper

// Dimension identifies one facet of the catalog.
type Dimension = browse.Dimension

// The five facet dimensions.
const (
	DimDomain     = browse.DimDomain
	DimCategory   = browse.DimCategory
	DimConference = browse.DimConference
	DimYear       = browse.DimYear
	DimKeyword    = browse.DimKeyword
)

// Snapshot is the change-callback payload: filtered papers in catalog
// order, their count, and the encoded query string.
type Snapshot = browseuc.Snapshot

// ValueCount is one facet value with its full-catalog count.
type ValueCount = browse.ValueCount

// Option configures a Browser.
type Option func(*options)

type options struct {
	logger      *zap.Logger
	debounce    time.Duration
	minQueryLen int
	threshold   float64
}

// WithLogger sets a custom logger. Default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithDebounce overrides the search-input quiescence delay.
func WithDebounce(d time.Duration) Option {
	return func(o *options) { o.debounce = d }
}

// WithFuzzyMatching tunes the title index. Zero values keep the
// defaults.
func WithFuzzyMatching(minQueryLen int, threshold float64) Option {
	return func(o *options) {
		o.minQueryLen = minQueryLen
		o.threshold = threshold
	}
}

// Browser is the embeddable faceted browse session.
type Browser struct {
	store *catalog.Store
	ctrl  *browseuc.Controller
}

// Open loads the catalog file and builds a browser with an empty
// filter state.
func Open(catalogPath string, opts ...Option) (*Browser, error) {
	store, err := catalog.Load(catalogPath)
	if err != nil {
		return nil, err
	}
	return NewBrowser(store.All(), opts...), nil
}

// NewBrowser builds a browser over an already-loaded catalog.
func NewBrowser(papers []Paper, opts ...Option) *Browser {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	store := catalog.New(papers)
	index := title.New(store.All(), title.Config{
		MinQueryLen: o.minQueryLen,
		Threshold:   o.threshold,
	})
	ctrl := browseuc.New(store, index, o.logger)
	if o.debounce > 0 {
		ctrl.WithDebounce(o.debounce)
	}
	return &Browser{store: store, ctrl: ctrl}
}

// OnChange registers the single change callback; registering replaces
// any previous one. The callback runs synchronously inside every
// mutating operation.
func (b *Browser) OnChange(fn func(Snapshot)) { b.ctrl.OnChange(browseuc.ChangeFunc(fn)) }

// ToggleFacet flips the value in the dimension's selection.
func (b *Browser) ToggleFacet(d Dimension, value string) Snapshot {
	return b.ctrl.ToggleFacet(d, value)
}

// SetSearch replaces the free-text query and re-evaluates immediately.
func (b *Browser) SetSearch(query string) Snapshot { return b.ctrl.SetSearch(query) }

// SetSearchDebounced schedules SetSearch after the quiescence delay,
// cancelling any pending evaluation.
func (b *Browser) SetSearchDebounced(query string) { b.ctrl.SetSearchDebounced(query) }

// Reset clears the query and all selections.
func (b *Browser) Reset() Snapshot { return b.ctrl.Reset() }

// Restore replaces the state from a shared URL's raw query string.
func (b *Browser) Restore(rawQuery string) Snapshot { return b.ctrl.Restore(rawQuery) }

// Current returns the result set for the current state without
// mutating or notifying.
func (b *Browser) Current() Snapshot { return b.ctrl.Current() }

// Counts returns the dimension's facet counts over the full catalog,
// ordered for chip rendering (years numerically ascending, other
// dimensions by count descending).
func (b *Browser) Counts(d Dimension) []ValueCount {
	counts := b.ctrl.Counts(d)
	if d == DimYear {
		return browse.SortedNumeric(counts)
	}
	return browse.SortedByCount(counts)
}

// Selected reports whether the value is currently selected.
func (b *Browser) Selected(d Dimension, value string) bool {
	return b.ctrl.State().Selected(d, value)
}

// ExportCSV writes the current filtered sequence as CSV.
func (b *Browser) ExportCSV(w io.Writer) error {
	return export.CSV(w, b.Current().Papers)
}

// Len returns the catalog size.
func (b *Browser) Len() int { return b.store.Len() }
