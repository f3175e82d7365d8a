// Package display renders a collected snapshot as the classic fetch
// layout: an ASCII logo beside aligned, colored field lines.
package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/casually-blue/mirafetch/pkg/config"
	"github.com/casually-blue/mirafetch/pkg/sysinfo"
	"github.com/casually-blue/mirafetch/pkg/theme"
)

// Field is one rendered snapshot line.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Snapshot queries every capability and keeps the fields that resolved.
// Absent scalars and empty lists simply produce no line; configured-hidden
// labels are skipped without being queried for lists that are expensive.
func Snapshot(p sysinfo.Prober, cfg config.DisplayConfig) []Field {
	var fields []Field
	add := func(label, value string) {
		if value == "" || cfg.Hidden(label) {
			return
		}
		fields = append(fields, Field{Label: label, Value: value})
	}

	add("OS", p.OS())
	add("Host", p.Machine())
	add("Kernel", p.Kernel())
	add("Uptime", p.Uptime())
	add("Shell", p.Shell())
	add("Locale", p.Locale())
	add("CPU", p.CPU())
	for _, gpu := range p.GPUs() {
		add("GPU", gpu)
	}
	add("Memory", p.Memory())
	if !cfg.Hidden("Disk") {
		for _, d := range p.Disks() {
			add(d.Label(), d.String())
		}
	}
	for _, ip := range p.IPs() {
		add("Local IP", ip)
	}
	add("Battery", p.Battery())
	for _, mode := range p.Displays() {
		add("Display", mode)
	}
	return fields
}

// Renderer draws fields and a logo with a theme's palette.
type Renderer struct {
	Theme theme.Theme

	// NoColor strips all styling; set when stdout is not a terminal or
	// color is configured off.
	NoColor bool
}

// Render produces the full output: title, separator, and field lines
// joined beside the logo.
func (r Renderer) Render(logo []string, username, hostname string, fields []Field) string {
	var lines []string
	if title := r.title(username, hostname); title != "" {
		lines = append(lines, title, r.styled(r.Theme.Separator, strings.Repeat("-", len(username)+len(hostname)+1)))
	}
	for _, f := range fields {
		lines = append(lines,
			r.styled(r.Theme.Key, f.Label)+
				r.styled(r.Theme.Separator, ": ")+
				r.styled(r.Theme.Value, f.Value))
	}

	left := r.renderLogo(logo)
	right := strings.Join(lines, "\n")
	if left == "" {
		return right + "\n"
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "   ", right) + "\n"
}

func (r Renderer) title(username, hostname string) string {
	if username == "" || hostname == "" {
		return ""
	}
	return r.styled(r.Theme.Title, username) +
		r.styled(r.Theme.Separator, "@") +
		r.styled(r.Theme.Title, hostname)
}

// renderLogo applies the theme's gradient across the logo's lines, top to
// bottom.
func (r Renderer) renderLogo(logo []string) string {
	if len(logo) == 0 {
		return ""
	}
	colors := r.Theme.Logo
	if len(colors) == 0 {
		colors = []string{r.Theme.Key}
	}
	out := make([]string, len(logo))
	for i, line := range logo {
		color := colors[i*len(colors)/len(logo)]
		out[i] = r.styled(color, line)
	}
	return strings.Join(out, "\n")
}

func (r Renderer) styled(color, text string) string {
	if r.NoColor || color == "" {
		return text
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
}
