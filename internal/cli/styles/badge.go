package styles

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/synapse/internal/domain/entity"
)

// AccentBadge renders a badge with accent color.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// ColorBadge renders a badge with custom colors.
func (t *Theme) ColorBadge(text string, fg, bg lipgloss.Color) string {
	style := lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Padding(0, 1)
	return style.Render(text)
}

// StatusBadge renders the controller status line.
func (t *Theme) StatusBadge(s entity.Status) string {
	switch s.Kind {
	case entity.StatusWaitingForInput:
		return t.ColorBadge(s.String(), t.Background, t.Warning)
	case entity.StatusCommandAssigned:
		return t.AccentBadge(s.String())
	case entity.StatusNoDevice:
		return t.ColorBadge(s.String(), t.Text, t.Error)
	default:
		return t.MutedBadge(s.String())
	}
}

// ActivityBadge renders the kind of an activity entry.
func (t *Theme) ActivityBadge(kind entity.ActivityKind) string {
	switch kind {
	case entity.ActivityDispatchFailed:
		return t.ColorBadge(string(kind), t.Text, t.Error)
	case entity.ActivityLearned, entity.ActivityAssigned:
		return t.AccentBadge(string(kind))
	default:
		return t.MutedBadge(string(kind))
	}
}

// RelativeTime formats a time as a human-readable relative string.
func RelativeTime(tm time.Time) string {
	diff := time.Since(tm)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		mins := int(diff.Minutes())
		if mins == 1 {
			return "1m ago"
		}
		return fmt.Sprintf("%dm ago", mins)
	case diff < 24*time.Hour:
		hours := int(diff.Hours())
		if hours == 1 {
			return "1h ago"
		}
		return fmt.Sprintf("%dh ago", hours)
	default:
		days := int(diff.Hours() / 24)
		if days == 1 {
			return "1d ago"
		}
		return fmt.Sprintf("%dd ago", days)
	}
}
