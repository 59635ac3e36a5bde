package tui

import (
	"github.com/jask/dpselect/internal/selector"
)

// Events carries selector notifications into the bubbletea loop. Changes coalesce: any
// number of Changed calls before the loop drains the channel produce one redraw.
type Events struct {
	changes chan struct{}
	errs    chan error
}

func NewEvents() *Events {
	return &Events{
		changes: make(chan struct{}, 1),
		errs:    make(chan error, 8),
	}
}

// Changed signals a state change. It never blocks.
func (e *Events) Changed() {
	select {
	case e.changes <- struct{}{}:
	default:
	}
}

// Notify queues err for the status line. Errors beyond the buffer are dropped.
func (e *Events) Notify(err error) {
	select {
	case e.errs <- err:
	default:
	}
}

// Settings wires e into a selector.
func (e *Events) Settings() []selector.Setting {
	return []selector.Setting{
		selector.WithOnChange(e.Changed),
		selector.WithNotifier(e),
	}
}
