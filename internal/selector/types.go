package selector

import (
	"context"
	"fmt"
	"strings"
)

// Mode controls how many values a selector commits.
type Mode int

const (
	ModeMultiple Mode = iota
	ModeSingle
)

func (m Mode) String() string {
	if m == ModeSingle {
		return "single"
	}
	return "multiple"
}

// ParseMode maps a config string to a Mode. Empty means multiple.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "multiple", "multi":
		return ModeMultiple, nil
	case "single":
		return ModeSingle, nil
	default:
		return ModeMultiple, fmt.Errorf("unknown selector mode %q", s)
	}
}

// Option is a display-ready projection of a source item.
type Option[T any] struct {
	Label   string // visible and searchable text
	Value   string // unique identifier, used for selection
	Context string // parent-context line rendered above the label
	Item    T
}

// Paging is the server-reported size of a result set.
type Paging struct {
	Total int
}

// Page is one fetched page of options.
type Page[T any] struct {
	Data   []Option[T]
	Paging Paging
}

// Fetcher is the only data source of a Selector. Pages are 1-based and Total counts
// every match for searchTerm across all pages.
type Fetcher[T any] interface {
	Fetch(ctx context.Context, searchTerm string, page int) (Page[T], error)
}

// FetchFunc adapts a function to Fetcher.
type FetchFunc[T any] func(ctx context.Context, searchTerm string, page int) (Page[T], error)

func (f FetchFunc[T]) Fetch(ctx context.Context, searchTerm string, page int) (Page[T], error) {
	return f(ctx, searchTerm, page)
}

// Notifier receives fetch failures for display. It must not block.
type Notifier interface {
	Notify(err error)
}

// NotifyFunc adapts a function to Notifier.
type NotifyFunc func(err error)

func (f NotifyFunc) Notify(err error) { f(err) }

// Selectable is implemented by anything that can report its committed selection.
type Selectable[T any] interface {
	CurrentSelection() []T
}

// Snapshot is a copy of selector state taken under lock.
type Snapshot[T any] struct {
	Loading        bool
	ContentLoading bool
	Options        []Option[T]
	CurrentPage    int
	SearchTerm     string
	Paging         Paging
	Values         []string
	Selected       []T
}

// HasMore reports whether another page exists for the current search term.
func (s Snapshot[T]) HasMore() bool {
	return len(s.Options) < s.Paging.Total
}

// IsSelected reports whether value is among the committed values.
func (s Snapshot[T]) IsSelected(value string) bool {
	for _, v := range s.Values {
		if v == value {
			return true
		}
	}
	return false
}
