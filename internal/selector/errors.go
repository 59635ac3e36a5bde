package selector

import (
	"errors"
	"fmt"
)

// ErrClosed is returned by Search after Close.
var ErrClosed = errors.New("selector closed")

// Fetch operations reported in FetchError.Op.
const (
	OpLoad     = "load"
	OpLoadMore = "load-more"
)

// FetchError wraps a failed fetch. Network, server and decoding failures all arrive here.
type FetchError struct {
	Op   string
	Term string
	Page int
	Err  error
}

func (e *FetchError) Error() string {
	if e.Term == "" {
		return fmt.Sprintf("%s page %d: %v", e.Op, e.Page, e.Err)
	}
	return fmt.Sprintf("%s %q page %d: %v", e.Op, e.Term, e.Page, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
