package tui

import (
	"fmt"
	"strings"

	"github.com/jask/dpselect/internal/selector"
)

func (a *App[T]) View() string {
	snap := a.sel.Snapshot()
	var b strings.Builder

	b.WriteString(a.styles.title.Render(a.title))
	if snap.Paging.Total > 0 {
		b.WriteString(a.styles.help.Render(fmt.Sprintf("  %d of %d", len(snap.Options), snap.Paging.Total)))
	}
	b.WriteString("\n")
	b.WriteString(a.input.View())
	b.WriteString("\n\n")

	b.WriteString(a.renderOptions(snap))

	if tags := a.renderTags(snap); tags != "" {
		b.WriteString("\n")
		b.WriteString(tags)
		b.WriteString("\n")
	}
	if a.status != "" {
		b.WriteString("\n")
		b.WriteString(a.styles.status.Render(a.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	toggle := "tab toggle"
	if a.sel.Mode() == selector.ModeSingle {
		toggle = "tab select"
	}
	b.WriteString(a.styles.help.Render("↑/↓ move • " + toggle + " • enter confirm • esc cancel"))
	return b.String()
}

func (a *App[T]) renderOptions(snap selector.Snapshot[T]) string {
	if len(snap.Options) == 0 {
		if snap.Loading {
			return a.spin.View() + " Loading...\n"
		}
		return a.styles.empty.Render("No results") + "\n"
	}

	start := 0
	if a.cursor >= a.maxRows {
		start = a.cursor - a.maxRows + 1
	}
	end := start + a.maxRows
	if end > len(snap.Options) {
		end = len(snap.Options)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		opt := snap.Options[i]
		mark := "[ ]"
		if snap.IsSelected(opt.Value) {
			mark = a.styles.check.Render("[x]")
		}
		pointer := "  "
		label := a.styles.item.Render(opt.Label)
		if i == a.cursor {
			pointer = a.styles.cursor.Render("> ")
			label = a.styles.cursor.Render(opt.Label)
		}
		fmt.Fprintf(&b, "%s    %s\n", pointer, a.styles.context.Render(opt.Context))
		fmt.Fprintf(&b, "%s%s %s\n", pointer, mark, label)
	}
	if snap.ContentLoading {
		b.WriteString(a.spin.View() + " Loading more...\n")
	}
	if a.cursor < len(snap.Options) {
		opt := snap.Options[a.cursor]
		b.WriteString(a.styles.tooltip.Render(opt.Label + " (" + opt.Value + ")"))
		b.WriteString("\n")
	}
	return b.String()
}

func (a *App[T]) renderTags(snap selector.Snapshot[T]) string {
	if len(snap.Values) == 0 {
		return ""
	}
	labels := make(map[string]string, len(snap.Options))
	for _, opt := range snap.Options {
		if _, ok := labels[opt.Value]; !ok {
			labels[opt.Value] = opt.Label
		}
	}
	tags := make([]string, 0, len(snap.Values))
	for _, v := range snap.Values {
		label, ok := labels[v]
		if !ok {
			label = v
		}
		tags = append(tags, a.renderTag(label, v))
	}
	return strings.Join(tags, " ")
}
