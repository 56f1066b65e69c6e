package model

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/synapse/internal/application/usecase"
	"github.com/bnema/synapse/internal/cli/styles"
	"github.com/bnema/synapse/internal/domain/entity"
)

const customScriptLabel = "Custom script..."

var errEmptyScript = errors.New("script is empty")

// AppSearcher finds applications for the picker.
type AppSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]entity.AppEntry, error)
}

type pickerStage int

const (
	stageCategories pickerStage = iota
	stageApps
	stageScript
)

// pickerDoneMsg ends the picker. Cancelled pickers carry no action.
type pickerDoneMsg struct {
	code      entity.EventCode
	name      string
	content   string
	cancelled bool
}

// appsLoadedMsg is sent when a search completes.
type appsLoadedMsg struct {
	query   string
	entries []entity.AppEntry
	err     error
}

// PickerModel chooses the action for a freshly learned key: an application
// from the catalog or a custom script.
type PickerModel struct {
	ctx      context.Context
	theme    *styles.Theme
	keys     styles.PickerKeyMap
	help     help.Model
	searcher AppSearcher

	key  entity.BindingKey
	code entity.EventCode

	stage    pickerStage
	apps     []entity.AppEntry
	results  []entity.AppEntry
	category string
	query    string

	list   list.Model
	search textinput.Model
	script textarea.Model

	width  int
	height int
	err    error
}

// NewPickerModel creates a picker for the binding key → code.
func NewPickerModel(
	ctx context.Context,
	theme *styles.Theme,
	searcher AppSearcher,
	bindingKey entity.BindingKey,
	code entity.EventCode,
	width, height int,
) *PickerModel {
	m := &PickerModel{
		ctx:      ctx,
		theme:    theme,
		keys:     styles.DefaultPickerKeyMap(),
		help:     styles.NewStyledHelp(theme),
		searcher: searcher,
		key:      bindingKey,
		code:     code,
		search:   styles.NewSearchInput(theme),
		width:    width,
		height:   height,
	}
	m.script = styles.NewScriptArea(theme, width-4, m.bodyHeight())
	m.showCategories()
	return m
}

// Init loads the full catalog.
func (m *PickerModel) Init() tea.Cmd {
	return m.searchCmd("")
}

func (m *PickerModel) searchCmd(query string) tea.Cmd {
	ctx, searcher := m.ctx, m.searcher
	return func() tea.Msg {
		entries, err := searcher.Search(ctx, query, 0)
		return appsLoadedMsg{query: query, entries: entries, err: err}
	}
}

func done(msg pickerDoneMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// Update handles picker input. It returns the picker itself so the deck can
// keep a pointer to it.
func (m *PickerModel) Update(msg tea.Msg) (*PickerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.script.SetWidth(msg.Width - 4)
		m.script.SetHeight(m.bodyHeight())
		m.list.SetSize(msg.Width, m.bodyHeight())
		return m, nil

	case appsLoadedMsg:
		m.handleLoaded(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *PickerModel) handleLoaded(msg appsLoadedMsg) {
	if msg.err != nil {
		m.err = msg.err
		return
	}
	if msg.query == "" {
		m.apps = msg.entries
		if m.stage == stageCategories {
			m.showCategories()
		}
		return
	}
	// Results for a query the user already changed are stale.
	if msg.query != m.query {
		return
	}
	m.results = msg.entries
	m.showApps()
}

func (m *PickerModel) handleKey(msg tea.KeyMsg) (*PickerModel, tea.Cmd) {
	m.err = nil

	switch m.stage {
	case stageScript:
		switch {
		case key.Matches(msg, m.keys.Back):
			m.script.Blur()
			m.stage = stageCategories
			m.showCategories()
			return m, nil
		case key.Matches(msg, m.keys.Save):
			content := m.script.Value()
			if strings.TrimSpace(content) == "" {
				m.err = errEmptyScript
				return m, nil
			}
			return m, done(pickerDoneMsg{
				code:    m.code,
				name:    usecase.CustomActionName(m.code),
				content: content,
			})
		}
		var cmd tea.Cmd
		m.script, cmd = m.script.Update(msg)
		return m, cmd

	case stageApps:
		switch {
		case key.Matches(msg, m.keys.Back):
			m.search.Blur()
			m.search.SetValue("")
			m.query, m.results = "", nil
			m.stage = stageCategories
			m.showCategories()
			return m, nil
		case key.Matches(msg, m.keys.Select):
			item, ok := m.list.SelectedItem().(styles.PickerItem)
			if !ok {
				return m, nil
			}
			return m, done(pickerDoneMsg{
				code:    m.code,
				name:    usecase.AppActionName(item.Label),
				content: usecase.AppActionContent(item.Command),
			})
		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m, cmd
		}

		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if q := m.search.Value(); q != m.query {
			m.query = q
			if q == "" {
				m.results = nil
				m.showApps()
				return m, cmd
			}
			return m, tea.Batch(cmd, m.searchCmd(q))
		}
		return m, cmd

	default:
		switch {
		case key.Matches(msg, m.keys.Back):
			return m, done(pickerDoneMsg{code: m.code, cancelled: true})
		case key.Matches(msg, m.keys.Select):
			item, ok := m.list.SelectedItem().(styles.PickerItem)
			if !ok {
				return m, nil
			}
			if item.Label == customScriptLabel {
				m.stage = stageScript
				return m, m.script.Focus()
			}
			m.category = item.Label
			m.stage = stageApps
			m.showApps()
			return m, m.search.Focus()
		}
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
}

// showCategories lists the categories present in the catalog, then the custom entry.
func (m *PickerModel) showCategories() {
	counts := map[string]int{}
	for _, a := range m.apps {
		counts[a.Category]++
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	items := make([]styles.PickerItem, 0, len(names)+1)
	for _, name := range names {
		items = append(items, styles.PickerItem{Label: name, Detail: pluralApps(counts[name])})
	}
	items = append(items, styles.PickerItem{Label: customScriptLabel})
	m.list = styles.NewPickerList(m.theme, items, m.width, m.bodyHeight())
}

// showApps lists search results when a query is active, else the chosen category.
func (m *PickerModel) showApps() {
	var items []styles.PickerItem
	if m.query != "" {
		for _, a := range m.results {
			items = append(items, styles.PickerItem{Label: a.Name, Detail: a.Category, Command: a.Command})
		}
	} else {
		for _, a := range m.apps {
			if a.Category == m.category {
				items = append(items, styles.PickerItem{Label: a.Name, Detail: a.Command, Command: a.Command})
			}
		}
	}
	m.list = styles.NewPickerList(m.theme, items, m.width, m.bodyHeight())
}

func (m *PickerModel) bodyHeight() int {
	h := m.height - 8
	if h < 5 {
		h = 5
	}
	return h
}

func pluralApps(n int) string {
	if n == 1 {
		return "1 app"
	}
	return fmt.Sprintf("%d apps", n)
}

// View implements tea.Model.
func (m *PickerModel) View() string {
	t := m.theme

	header := t.Title.Render("Assign action") + " " +
		t.AccentBadge(string(m.key)) + " " +
		t.MutedBadge("code "+m.code.String())

	var body string
	switch m.stage {
	case stageScript:
		body = lipgloss.JoinVertical(
			lipgloss.Left,
			t.Subtitle.Render("Script body (a session preamble is added unless it starts with #!)"),
			m.script.View(),
		)
	case stageApps:
		title := t.Subtitle.Render(m.category)
		if m.query != "" {
			title = t.Subtitle.Render("All categories")
		}
		body = lipgloss.JoinVertical(
			lipgloss.Left,
			t.InputBox(m.search.View(), true),
			title,
			m.list.View(),
		)
	default:
		body = m.list.View()
	}

	parts := []string{header, "", body}
	if m.err != nil {
		parts = append(parts, t.ErrorStyle.Render("Error: "+m.err.Error()))
	}
	parts = append(parts, "", m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
