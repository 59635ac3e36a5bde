// Package selector implements an asynchronous, searchable, paginated selection control
// that is independent of any UI toolkit.
//
// Load replaces the option list with page 1 of a search term, LoadMore appends the next
// page, Search debounces Load, and Select resolves committed identifiers against the
// loaded options. Responses that belong to a superseded Load are discarded.
package selector

import (
	"context"
	"sync"
)

// Selector holds the state of one remote select control.
type Selector[T any] struct {
	fetcher  Fetcher[T]
	cfg      settings
	debounce *debouncer

	mu             sync.Mutex
	loading        bool
	contentLoading bool
	options        []Option[T]
	byValue        map[string]int
	page           int
	term           string
	paging         Paging
	values         []string
	selected       []T
	gen            uint64
	cancelLoad     context.CancelFunc
	closed         bool
}

var _ Selectable[struct{}] = (*Selector[struct{}])(nil)

// New returns a Selector reading from f.
func New[T any](f Fetcher[T], opts ...Setting) *Selector[T] {
	cfg := defaultSettings()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Selector[T]{
		fetcher:  f,
		cfg:      cfg,
		debounce: newDebouncer(cfg.debounce),
		byValue:  map[string]int{},
		page:     1,
		values:   append([]string(nil), cfg.defaults...),
	}
}

// Mode returns the configured selection mode.
func (s *Selector[T]) Mode() Mode { return s.cfg.mode }

// Focus loads the unfiltered first page.
func (s *Selector[T]) Focus(ctx context.Context) {
	s.Load(ctx, "")
}

// Load clears the options and fetches page 1 of term. It blocks until the fetch returns.
// Failures go to the notifier; the option list then stays empty.
func (s *Selector[T]) Load(ctx context.Context, term string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if s.cancelLoad != nil {
		s.cancelLoad()
	}
	s.gen++
	gen := s.gen
	ctx, cancel := context.WithCancel(ctx)
	s.cancelLoad = cancel
	s.options = nil
	s.byValue = map[string]int{}
	s.loading = true
	s.mu.Unlock()
	s.changed()

	page, err := s.fetcher.Fetch(ctx, term, 1)
	cancel()

	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		s.cfg.logger.Debug("discarding superseded load", "term", term)
		return
	}
	s.loading = false
	s.cancelLoad = nil
	if err != nil {
		s.mu.Unlock()
		s.notify(&FetchError{Op: OpLoad, Term: term, Page: 1, Err: err})
		s.changed()
		return
	}
	s.options = append([]Option[T](nil), page.Data...)
	s.reindexLocked()
	s.paging = page.Paging
	s.term = term
	s.page = 1
	s.mu.Unlock()
	s.changed()
}

// Search schedules a Load of term once the debounce interval passes with no newer term.
func (s *Selector[T]) Search(ctx context.Context, term string) error {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return ErrClosed
	}
	if !s.debounce.Call(func() { s.Load(ctx, term) }) {
		return ErrClosed
	}
	return nil
}

// LoadMore appends the next page of the current term. It does nothing when every match is
// already loaded, when a Load or another LoadMore is in flight, or after Close.
func (s *Selector[T]) LoadMore(ctx context.Context) {
	s.mu.Lock()
	if s.closed || s.loading || s.contentLoading || len(s.options) >= s.paging.Total {
		s.mu.Unlock()
		return
	}
	s.contentLoading = true
	gen := s.gen
	term := s.term
	next := s.page + 1
	s.mu.Unlock()
	s.changed()

	page, err := s.fetcher.Fetch(ctx, term, next)

	s.mu.Lock()
	s.contentLoading = false
	if gen != s.gen {
		s.mu.Unlock()
		s.cfg.logger.Debug("discarding page from superseded load", "term", term, "page", next)
		s.changed()
		return
	}
	if err != nil {
		s.mu.Unlock()
		s.notify(&FetchError{Op: OpLoadMore, Term: term, Page: next, Err: err})
		s.changed()
		return
	}
	start := len(s.options)
	s.options = append(s.options, page.Data...)
	for i := start; i < len(s.options); i++ {
		if _, ok := s.byValue[s.options[i].Value]; !ok {
			s.byValue[s.options[i].Value] = i
		}
	}
	s.paging = page.Paging
	s.page = next
	s.mu.Unlock()
	s.changed()
}

// AtBottom is the scroll-reached-bottom trigger.
func (s *Selector[T]) AtBottom(ctx context.Context) {
	s.LoadMore(ctx)
}

// Select commits values, resolving each against the loaded options in order. Values with
// no loaded option are dropped from the resolved selection. In single mode only the last
// value counts.
func (s *Selector[T]) Select(values []string) {
	if s.cfg.mode == ModeSingle && len(values) > 1 {
		values = values[len(values)-1:]
	}
	s.mu.Lock()
	s.values = append([]string(nil), values...)
	s.selected = s.resolveLocked(s.values)
	s.mu.Unlock()
	s.changed()
}

// SelectLabels commits the first loaded option matching each label.
func (s *Selector[T]) SelectLabels(labels []string) {
	s.mu.Lock()
	values := make([]string, 0, len(labels))
	for _, label := range labels {
		for _, opt := range s.options {
			if opt.Label == label {
				values = append(values, opt.Value)
				break
			}
		}
	}
	s.mu.Unlock()
	s.Select(values)
}

// Toggle adds or removes value from the committed values. In single mode it replaces them.
func (s *Selector[T]) Toggle(value string) {
	s.mu.Lock()
	next := make([]string, 0, len(s.values)+1)
	found := false
	for _, v := range s.values {
		if v == value {
			found = true
			continue
		}
		next = append(next, v)
	}
	s.mu.Unlock()
	switch {
	case s.cfg.mode == ModeSingle && found:
		s.Select(nil)
	case s.cfg.mode == ModeSingle:
		s.Select([]string{value})
	case found:
		s.Select(next)
	default:
		s.Select(append(next, value))
	}
}

// CurrentSelection returns the items resolved by the last Select.
func (s *Selector[T]) CurrentSelection() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]T(nil), s.selected...)
}

// Values returns the committed identifiers, including defaults not yet resolved.
func (s *Selector[T]) Values() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.values...)
}

// Snapshot copies the current state.
func (s *Selector[T]) Snapshot() Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot[T]{
		Loading:        s.loading,
		ContentLoading: s.contentLoading,
		Options:        append([]Option[T](nil), s.options...),
		CurrentPage:    s.page,
		SearchTerm:     s.term,
		Paging:         s.paging,
		Values:         append([]string(nil), s.values...),
		Selected:       append([]T(nil), s.selected...),
	}
}

// Close cancels the active load, drops a pending search and waits for a search that
// already started. Later calls are no-ops.
func (s *Selector[T]) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	if s.cancelLoad != nil {
		s.cancelLoad()
	}
	s.mu.Unlock()
	s.debounce.Stop()
}

func (s *Selector[T]) reindexLocked() {
	s.byValue = make(map[string]int, len(s.options))
	for i, opt := range s.options {
		if _, ok := s.byValue[opt.Value]; !ok {
			s.byValue[opt.Value] = i
		}
	}
}

func (s *Selector[T]) resolveLocked(values []string) []T {
	out := make([]T, 0, len(values))
	for _, v := range values {
		if i, ok := s.byValue[v]; ok {
			out = append(out, s.options[i].Item)
		}
	}
	return out
}

func (s *Selector[T]) notify(err error) {
	if s.cfg.notifier != nil {
		s.cfg.notifier.Notify(err)
		return
	}
	s.cfg.logger.Error("fetch options", "err", err)
}

func (s *Selector[T]) changed() {
	if s.cfg.onChange != nil {
		s.cfg.onChange()
	}
}
