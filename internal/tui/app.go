package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/dpselect/internal/selector"
)

// TagRenderer turns a committed value into its tag text.
type TagRenderer func(label, value string) string

// Options configures an App.
type Options struct {
	Title       string
	Placeholder string
	MaxRows     int // visible options; each takes two lines
	TagRenderer TagRenderer
}

// App is a picker over a remote selector.
type App[T any] struct {
	ctx       context.Context
	sel       *selector.Selector[T]
	events    *Events
	input     textinput.Model
	spin      spinner.Model
	styles    styles
	title     string
	maxRows   int
	renderTag TagRenderer

	cursor    int
	status    string
	width     int
	confirmed bool
	cancelled bool
}

// New builds an App. events must be the Events passed to the selector's settings.
func New[T any](ctx context.Context, sel *selector.Selector[T], events *Events, opts Options) *App[T] {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = opts.Placeholder
	if ti.Placeholder == "" {
		ti.Placeholder = "Search..."
	}
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	a := &App[T]{
		ctx:       ctx,
		sel:       sel,
		events:    events,
		input:     ti,
		spin:      sp,
		styles:    defaultStyles(),
		title:     strings.TrimSpace(opts.Title),
		maxRows:   opts.MaxRows,
		renderTag: opts.TagRenderer,
	}
	if a.title == "" {
		a.title = "Select"
	}
	if a.maxRows <= 0 {
		a.maxRows = 8
	}
	if a.renderTag == nil {
		a.renderTag = func(label, _ string) string { return a.styles.tag.Render(label) }
	}
	return a
}

func (a *App[T]) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, a.spin.Tick, a.waitForEvent(), a.focusCmd())
}

// focusCmd loads the unfiltered list, as acquiring focus does.
func (a *App[T]) focusCmd() tea.Cmd {
	return func() tea.Msg {
		a.sel.Focus(a.ctx)
		return nil
	}
}

func (a *App[T]) loadMoreCmd() tea.Cmd {
	return func() tea.Msg {
		a.sel.AtBottom(a.ctx)
		return nil
	}
}

func (a *App[T]) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-a.events.changes:
			return changedMsg{}
		case err := <-a.events.errs:
			return errMsg{err}
		case <-a.ctx.Done():
			return nil
		}
	}
}

func (a *App[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(m)
	case tea.WindowSizeMsg:
		a.width = m.Width
		if m.Width > 6 {
			a.input.Width = m.Width - 6
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(m)
		return a, cmd
	case changedMsg:
		a.clampCursor(len(a.sel.Snapshot().Options))
		return a, a.waitForEvent()
	case errMsg:
		a.status = "error: " + m.Error()
		return a, a.waitForEvent()
	}
	return a, nil
}

func (a *App[T]) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "ctrl+c", "esc":
		a.cancelled = true
		return a, tea.Quit
	case "enter":
		a.confirmed = true
		return a, tea.Quit
	case "up", "ctrl+p":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "down", "ctrl+n":
		if a.cursor < len(a.sel.Snapshot().Options)-1 {
			a.cursor++
			return a, nil
		}
		// moving past the last row is the scroll-to-bottom trigger
		return a, a.loadMoreCmd()
	case "tab":
		snap := a.sel.Snapshot()
		if a.cursor < len(snap.Options) {
			a.sel.Toggle(snap.Options[a.cursor].Value)
		}
		return a, nil
	}

	before := a.input.Value()
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(m)
	if term := a.input.Value(); term != before {
		a.status = ""
		a.cursor = 0
		if err := a.sel.Search(a.ctx, term); err != nil {
			a.status = "error: " + err.Error()
		}
	}
	return a, cmd
}

func (a *App[T]) clampCursor(n int) {
	if a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// Confirmed reports whether the user accepted the selection with enter.
func (a *App[T]) Confirmed() bool { return a.confirmed && !a.cancelled }

// Selection returns the committed items.
func (a *App[T]) Selection() []T { return a.sel.CurrentSelection() }

type changedMsg struct{}

type errMsg struct{ error }
