// Package model holds the Bubble Tea models of the synapse TUI.
package model

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/synapse/internal/cli/styles"
	"github.com/bnema/synapse/internal/domain/entity"
)

// DeckController is the part of the binding controller the deck drives.
type DeckController interface {
	Deck() *entity.Deck
	Status() entity.Status
	Learning() (entity.BindingKey, bool)
	RequestLearn(ctx context.Context, key entity.BindingKey) error
	CancelLearn(ctx context.Context) error
	ClearBinding(ctx context.Context, key entity.BindingKey) error
	AssignAction(ctx context.Context, code entity.EventCode, name, content string) (entity.Action, error)
}

// DeckModelConfig holds the deck dependencies.
type DeckModelConfig struct {
	Controller DeckController
	Searcher   AppSearcher
	Bridge     *Bridge
	DevicePath string
}

// opResultMsg reports the outcome of a controller call.
type opResultMsg struct {
	err error
}

// assignedMsg reports the outcome of AssignAction.
type assignedMsg struct {
	action entity.Action
	err    error
}

// DeckModel shows the deck grid and the controller status, and drives learning.
type DeckModel struct {
	ctx    context.Context
	theme  *styles.Theme
	keys   styles.DeckKeyMap
	help   help.Model
	cfg    DeckModelConfig
	picker *PickerModel

	cursor   int
	status   entity.Status
	learning entity.BindingKey
	notice   string
	err      error
	width    int
	height   int
}

// NewDeckModel creates the deck model.
func NewDeckModel(ctx context.Context, theme *styles.Theme, cfg DeckModelConfig) DeckModel {
	m := DeckModel{
		ctx:    ctx,
		theme:  theme,
		keys:   styles.DefaultDeckKeyMap(),
		help:   styles.NewStyledHelp(theme),
		cfg:    cfg,
		status: cfg.Controller.Status(),
		width:  80,
		height: 24,
	}
	m.refreshLearning()
	return m
}

// Init implements tea.Model.
func (m DeckModel) Init() tea.Cmd {
	return tea.Batch(m.cfg.Bridge.waitStatus(), m.cfg.Bridge.waitCapture())
}

func (m DeckModel) controllerCmd(op func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return opResultMsg{err: op(ctx)}
	}
}

func (m DeckModel) assignCmd(msg pickerDoneMsg) tea.Cmd {
	ctx, ctrl := m.ctx, m.cfg.Controller
	return func() tea.Msg {
		action, err := ctrl.AssignAction(ctx, msg.code, msg.name, msg.content)
		return assignedMsg{action: action, err: err}
	}
}

// Update implements tea.Model.
func (m DeckModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		if m.picker != nil {
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(msg)
			return m, cmd
		}
		return m, nil

	case statusMsg:
		m.status = entity.Status(msg)
		m.refreshLearning()
		return m, m.cfg.Bridge.waitStatus()

	case captureMsg:
		m.picker = NewPickerModel(m.ctx, m.theme, m.cfg.Searcher, msg.key, msg.code, m.width, m.height)
		return m, tea.Batch(m.picker.Init(), m.cfg.Bridge.waitCapture())

	case pickerDoneMsg:
		m.picker = nil
		if msg.cancelled {
			m.notice = "binding kept without an action"
			return m, nil
		}
		return m, m.assignCmd(msg)

	case assignedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.notice = "assigned " + styles.ActionLabel(&msg.action)
		}
		return m, nil

	case opResultMsg:
		m.err = msg.err
		m.status = m.cfg.Controller.Status()
		m.refreshLearning()
		return m, nil

	case appsLoadedMsg:
		if m.picker != nil {
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if m.picker != nil {
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m DeckModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	layout := m.cfg.Controller.Deck().Layout()
	m.err, m.notice = nil, ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.learning != "" {
			_ = m.cfg.Controller.CancelLearn(m.ctx)
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Left):
		m.cursor = moveCursor(m.cursor, len(layout), -1)
	case key.Matches(msg, m.keys.Right):
		m.cursor = moveCursor(m.cursor, len(layout), 1)
	case key.Matches(msg, m.keys.Up):
		m.cursor = moveCursor(m.cursor, len(layout), -entity.GridCols)
	case key.Matches(msg, m.keys.Down):
		m.cursor = moveCursor(m.cursor, len(layout), entity.GridCols)

	case key.Matches(msg, m.keys.Learn):
		slot := layout[m.cursor]
		return m, m.controllerCmd(func(ctx context.Context) error {
			return m.cfg.Controller.RequestLearn(ctx, slot)
		})

	case key.Matches(msg, m.keys.Cancel):
		return m, m.controllerCmd(func(ctx context.Context) error {
			if err := m.cfg.Controller.CancelLearn(ctx); err != nil && !errors.Is(err, entity.ErrNotLearning) {
				return err
			}
			return nil
		})

	case key.Matches(msg, m.keys.Clear):
		slot := layout[m.cursor]
		return m, m.controllerCmd(func(ctx context.Context) error {
			return m.cfg.Controller.ClearBinding(ctx, slot)
		})
	}

	return m, nil
}

// moveCursor moves by delta, staying on the grid. A vertical move past the
// last row lands on the last slot.
func moveCursor(cursor, n, delta int) int {
	next := cursor + delta
	switch {
	case next < 0:
		return cursor
	case next >= n:
		if delta > 1 && cursor < n-1 && cursor/entity.GridCols < (n-1)/entity.GridCols {
			return n - 1
		}
		return cursor
	}
	return next
}

func (m *DeckModel) refreshLearning() {
	m.learning = ""
	if k, ok := m.cfg.Controller.Learning(); ok {
		m.learning = k
	}
}

// View implements tea.Model.
func (m DeckModel) View() string {
	if m.picker != nil {
		return m.picker.View()
	}

	t := m.theme
	header := lipgloss.JoinHorizontal(
		lipgloss.Center,
		t.Title.Render("SYNAPSE"),
		"  ",
		t.StatusBadge(m.status),
	)
	device := t.Subtle.Render(m.cfg.DevicePath)

	grid := t.RenderGrid(m.cfg.Controller.Deck().Slots(), entity.GridCols, func(i int) styles.SlotState {
		slots := m.cfg.Controller.Deck().Layout()
		switch {
		case m.learning != "" && slots[i] == m.learning:
			return styles.SlotLearning
		case i == m.cursor:
			return styles.SlotSelected
		default:
			return styles.SlotNormal
		}
	})

	parts := []string{header, device, "", grid, ""}
	switch {
	case m.err != nil:
		parts = append(parts, t.ErrorStyle.Render("Error: "+m.err.Error()))
	case m.notice != "":
		parts = append(parts, t.SuccessStyle.Render(m.notice))
	}
	parts = append(parts, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Ensure interface compliance.
var _ tea.Model = (*DeckModel)(nil)
