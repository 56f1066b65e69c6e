package styles

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PickerItem is one row of the action picker: a category, an app or the
// custom script entry.
type PickerItem struct {
	Label   string
	Detail  string
	Command string
}

// FilterValue implements list.Item.
func (i PickerItem) FilterValue() string {
	return i.Label
}

// PickerDelegate renders picker items on a single line.
type PickerDelegate struct {
	Theme *Theme
}

// Height returns the height of each item.
func (d PickerDelegate) Height() int {
	return 1
}

// Spacing returns the spacing between items.
func (d PickerDelegate) Spacing() int {
	return 0
}

// Update handles item-level events.
func (d PickerDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders a single list item.
func (d PickerDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	pi, ok := item.(PickerItem)
	if !ok {
		return
	}

	t := d.Theme
	cursor := cursorEmpty
	style := t.ListItem
	if index == m.Index() {
		cursor = cursorSelected
		style = t.ListItemSelected
	}

	line := lipgloss.JoinHorizontal(
		lipgloss.Left,
		t.Highlight.Render(cursor),
		style.Render(pi.Label),
	)
	if pi.Detail != "" {
		line = lipgloss.JoinHorizontal(lipgloss.Left, line, " ", t.Subtle.Render(pi.Detail))
	}

	_, _ = fmt.Fprint(w, line)
}

// NewPickerList creates a themed list for picker items.
func NewPickerList(theme *Theme, items []PickerItem, width, height int) list.Model {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}

	l := list.New(listItems, PickerDelegate{Theme: theme}, width, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowFilter(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)

	l.Styles.PaginationStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	l.Styles.ActivePaginationDot = lipgloss.NewStyle().Foreground(theme.Accent)
	l.Styles.InactivePaginationDot = lipgloss.NewStyle().Foreground(theme.Muted)

	return l
}
