package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/synapse/internal/domain/entity"
)

// CLIRenderer renders non-interactive output for the synapse subcommands.
type CLIRenderer struct {
	theme *Theme
}

func NewCLIRenderer(theme *Theme) *CLIRenderer {
	return &CLIRenderer{theme: theme}
}

func (r *CLIRenderer) RenderBindings(slots []entity.Slot) string {
	var b strings.Builder
	b.WriteString(r.theme.Title.Render("Bindings"))
	b.WriteString("\n\n")

	for _, s := range slots {
		key := r.theme.Highlight.Render(fmt.Sprintf("%-9s", s.Key))
		switch {
		case !s.Bound:
			fmt.Fprintf(&b, "%s %s\n", key, r.theme.Subtle.Render("unbound"))
		case s.Action == nil:
			fmt.Fprintf(&b, "%s %-5s %s\n", key, s.Code, r.theme.Subtle.Render("no action"))
		default:
			fmt.Fprintf(&b, "%s %-5s %s\n", key, s.Code, r.theme.Normal.Render(s.Action.Path))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *CLIRenderer) RenderActivity(entries []*entity.Activity) string {
	if len(entries) == 0 {
		return r.theme.Subtle.Render("No activity recorded yet.")
	}

	var b strings.Builder
	for _, e := range entries {
		when := r.theme.Subtle.Render(fmt.Sprintf("%-9s", RelativeTime(e.CreatedAt)))
		line := fmt.Sprintf("%s %s code=%s", when, r.theme.ActivityBadge(e.Kind), e.EventCode)
		if e.BindingKey != "" {
			line += " key=" + string(e.BindingKey)
		}
		if e.ActionPath != "" {
			line += " " + r.theme.Normal.Render(e.ActionPath)
		}
		if e.Error != "" {
			line += " " + r.theme.ErrorStyle.Render(e.Error)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *CLIRenderer) RenderApps(apps []entity.AppEntry) string {
	if len(apps) == 0 {
		return r.theme.Subtle.Render("No applications found.")
	}

	var b strings.Builder
	for _, a := range apps {
		fmt.Fprintf(&b, "%s %s %s\n",
			r.theme.Highlight.Render(a.Name),
			r.theme.MutedBadge(a.Category),
			r.theme.Subtle.Render(a.Command))
	}
	return strings.TrimRight(b.String(), "\n")
}

// DeviceRow is one input device as shown by the devices command.
type DeviceRow struct {
	Path       string
	Name       string
	Links      []string
	Configured bool
}

func (r *CLIRenderer) RenderDevices(rows []DeviceRow) string {
	if len(rows) == 0 {
		return r.theme.Subtle.Render("No input devices readable. Try running as root or joining the input group.")
	}

	var b strings.Builder
	for _, d := range rows {
		mark := " "
		if d.Configured {
			mark = r.theme.SuccessStyle.Render(iconCheck)
		}
		fmt.Fprintf(&b, "%s %s %s\n", mark, r.theme.Highlight.Render(d.Path), r.theme.Normal.Render(d.Name))
		for _, l := range d.Links {
			fmt.Fprintf(&b, "    %s\n", r.theme.Subtle.Render(l))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *CLIRenderer) RenderSettings(path string, s entity.Settings) string {
	codes := make([]string, 0, len(s.IgnoredKeys))
	for _, c := range s.IgnoredKeys {
		codes = append(codes, c.String())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", r.theme.Title.Render("Settings"), r.theme.Subtle.Render(path))
	fmt.Fprintf(&b, "%s %s\n", r.theme.Subtitle.Render("device_path: "), s.DevicePath)
	fmt.Fprintf(&b, "%s %s", r.theme.Subtitle.Render("ignored_keys:"), strings.Join(codes, ", "))
	return b.String()
}

// RenderResult renders a one-line success or failure message.
func (r *CLIRenderer) RenderResult(ok bool, msg string) string {
	if ok {
		return r.theme.SuccessStyle.Render(iconCheck) + " " + msg
	}
	return r.theme.ErrorStyle.Render(iconCross) + " " + msg
}

// RenderPurgeTargets lists what purge would remove.
func (r *CLIRenderer) RenderPurgeTargets(targets []entity.PurgeTarget) string {
	var b strings.Builder
	b.WriteString(r.theme.Title.Render("Purge targets"))
	b.WriteString("\n\n")

	for _, t := range targets {
		name := r.theme.Highlight.Render(fmt.Sprintf("%-8s", t.Type))
		if !t.Exists {
			fmt.Fprintf(&b, "%s %s\n", name, r.theme.Subtle.Render("(nothing) "+t.Description))
			continue
		}
		fmt.Fprintf(&b, "%s %9s  %s\n", name, FormatSize(t.Size), r.theme.Normal.Render(t.Description))
		for _, p := range t.Paths {
			fmt.Fprintf(&b, "         %s\n", r.theme.Subtle.Render(p))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatSize renders a byte count with a binary unit.
func FormatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
