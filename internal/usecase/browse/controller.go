// Package browse owns the single mutable filter state and drives the
// filter engine on every mutation.
package browse

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/redreamality/benchmark-papers/internal/domain/browse"
	"github.com/redreamality/benchmark-papers/internal/domain/paper"
	"github.com/redreamality/benchmark-papers/internal/metrics"
	"github.com/redreamality/benchmark-papers/internal/repository/catalog"
)

// DefaultDebounce is the quiescence delay for debounced search input.
const DefaultDebounce = 250 * time.Millisecond

// Snapshot is the payload delivered to the change callback after each
// mutation: the filtered papers in catalog order, their count, and the
// encoded query string for the shareable URL. All three are consistent
// with the state that produced them.
type Snapshot struct {
	Papers []paper.Paper
	Total  int
	Query  string
}

// ChangeFunc is the single registered change callback. It runs
// synchronously, to completion, before the mutating operation returns.
type ChangeFunc func(Snapshot)

// Controller holds the filter state for one browse session. All
// mutations re-run the engine, re-encode the URL state and notify the
// registered callback before returning, so grid, charts and URL are
// never observed mid-update.
type Controller struct {
	store  *catalog.Store
	index  browse.Matcher
	logger *zap.Logger

	mu       sync.Mutex
	state    *browse.State
	onChange ChangeFunc

	debounce time.Duration
	timer    *time.Timer
}

// New creates a controller with an empty filter state.
func New(store *catalog.Store, index browse.Matcher, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		store:    store,
		index:    index,
		logger:   logger,
		state:    browse.NewState(),
		debounce: DefaultDebounce,
	}
}

// WithDebounce overrides the search input quiescence delay.
func (c *Controller) WithDebounce(d time.Duration) *Controller {
	if d > 0 {
		c.debounce = d
	}
	return c
}

// OnChange registers the change callback. Exactly one callback is
// supported; registering replaces any previous one.
func (c *Controller) OnChange(fn ChangeFunc) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// ToggleFacet adds the value to the dimension's selection if absent,
// removes it if present. Toggling twice restores the prior selection.
func (c *Controller) ToggleFacet(d browse.Dimension, value string) Snapshot {
	return c.mutate(func(s *browse.State) {
		s.Toggle(d, value)
	})
}

// SetSearch replaces the free-text query and re-evaluates immediately.
func (c *Controller) SetSearch(query string) Snapshot {
	return c.mutate(func(s *browse.State) {
		s.SetQuery(query)
	})
}

// SetSearchDebounced schedules SetSearch after the quiescence delay.
// Each call cancels the prior pending evaluation and reschedules, so
// only the final value after a pause is applied.
func (c *Controller) SetSearchDebounced(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.debounce, func() {
		c.SetSearch(query)
	})
}

// Reset clears the query and every selection, returning to the full
// unfiltered catalog.
func (c *Controller) Reset() Snapshot {
	return c.mutate(func(s *browse.State) {
		s.Reset()
	})
}

// Restore replaces the whole state from a raw query string, used at
// startup to honor a shared URL. Unknown keys and stale values are
// tolerated per the codec's rules.
func (c *Controller) Restore(rawQuery string) Snapshot {
	restored := browse.Decode(rawQuery)
	return c.mutate(func(s *browse.State) {
		*s = *restored
	})
}

// Current re-evaluates the engine against the current state without
// mutating it or notifying.
func (c *Controller) Current() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// State returns a copy of the current filter state.
func (c *Controller) State() *browse.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// Counts returns the dimension's facet counts over the FULL catalog,
// not the filtered subset, so chip counts stay stable while the user
// explores. Recomputed on every call; the catalog is small enough that
// caching would buy nothing.
func (c *Controller) Counts(d browse.Dimension) map[string]int {
	return browse.CountBy(c.store.All(), d)
}

func (c *Controller) mutate(fn func(*browse.State)) Snapshot {
	c.mu.Lock()
	fn(c.state)
	snap := c.snapshotLocked()
	cb := c.onChange
	c.mu.Unlock()

	c.logger.Debug("filter state changed",
		zap.String("url_state", snap.Query),
		zap.Int("total", snap.Total),
	)
	if cb != nil {
		cb(snap)
	}
	return snap
}

func (c *Controller) snapshotLocked() Snapshot {
	filtered := browse.Apply(c.state, c.store.All(), c.index)
	metrics.FilterEvaluationsTotal.Inc()
	return Snapshot{
		Papers: filtered,
		Total:  len(filtered),
		Query:  browse.Encode(c.state),
	}
}
