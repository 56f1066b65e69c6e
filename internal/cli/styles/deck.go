package styles

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/synapse/internal/domain/entity"
)

const (
	slotWidth  = 14
	slotHeight = 3
)

// SlotState selects how a deck slot is drawn.
type SlotState int

const (
	SlotNormal SlotState = iota
	SlotSelected
	SlotLearning
)

// ActionLabel returns a short name for an action: its script name without
// extension.
func ActionLabel(a *entity.Action) string {
	if a == nil || a.Path == "" {
		return ""
	}
	base := filepath.Base(a.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// RenderSlot draws one deck button.
func (t *Theme) RenderSlot(s entity.Slot, state SlotState) string {
	style := t.Slot
	switch state {
	case SlotSelected:
		style = t.SlotSelected
	case SlotLearning:
		style = t.SlotLearning
	}

	code := iconUnbound
	if s.Bound {
		code = s.Code.String()
	}
	label := ActionLabel(s.Action)
	if runes := []rune(label); len(runes) > slotWidth-2 {
		label = string(runes[:slotWidth-3]) + "…"
	}
	if label == "" {
		label = t.Subtle.Render("no action")
	}

	return style.Render(fmt.Sprintf("%s  %s\n%s", string(s.Key), code, label))
}

// RenderGrid lays slots out as rows of cols, with any remainder on a last row.
// stateOf is called for each slot index.
func (t *Theme) RenderGrid(slots []entity.Slot, cols int, stateOf func(int) SlotState) string {
	if cols <= 0 {
		cols = 1
	}
	var rows []string
	for start := 0; start < len(slots); start += cols {
		end := start + cols
		if end > len(slots) {
			end = len(slots)
		}
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cells = append(cells, t.RenderSlot(slots[i], stateOf(i)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
