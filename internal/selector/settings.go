package selector

import (
	"time"

	"github.com/charmbracelet/log"
)

// DefaultDebounce is the quiet interval before a search term is loaded.
const DefaultDebounce = 800 * time.Millisecond

type settings struct {
	mode     Mode
	debounce time.Duration
	defaults []string
	notifier Notifier
	onChange func()
	logger   *log.Logger
}

// Setting configures a Selector.
type Setting func(*settings)

// WithMode sets single or multiple selection.
func WithMode(m Mode) Setting {
	return func(s *settings) {
		s.mode = m
	}
}

// WithDebounce sets the search debounce interval. Non-positive values keep the default.
func WithDebounce(d time.Duration) Setting {
	return func(s *settings) {
		if d > 0 {
			s.debounce = d
		}
	}
}

// WithDefaultValue sets the initially committed identifiers.
func WithDefaultValue(values ...string) Setting {
	return func(s *settings) {
		s.defaults = append([]string(nil), values...)
	}
}

// WithNotifier routes fetch failures to n instead of the logger.
func WithNotifier(n Notifier) Setting {
	return func(s *settings) {
		s.notifier = n
	}
}

// WithOnChange registers fn to run after every state change, outside the lock.
// fn must not call Close.
func WithOnChange(fn func()) Setting {
	return func(s *settings) {
		s.onChange = fn
	}
}

// WithLogger sets the logger used for debug traces and the fallback notifier.
func WithLogger(l *log.Logger) Setting {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

func defaultSettings() settings {
	return settings{
		mode:     ModeMultiple,
		debounce: DefaultDebounce,
		logger:   log.Default(),
	}
}
