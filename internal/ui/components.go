package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/rope/internal/carousel"
	"github.com/olivier-w/rope/internal/catalog"
	"github.com/olivier-w/rope/internal/config"
)

func renderTopBar(width int, pulse bool) string {
	core := logoAccentStyle.Render("core")
	if pulse {
		core = logoDimStyle.Render("core")
	}
	logo := logoStyle.Render("rope") +
		logoAccentStyle.Render("/") +
		logoStyle.Render("{") + core + logoStyle.Render("}")

	dot := logoAccentStyle.Render("●")
	if pulse {
		dot = logoDimStyle.Render("●")
	}
	live := dot + " " + statusStyle.Render("live")

	gap := width - lipgloss.Width(logo) - lipgloss.Width(live) - 4
	if gap < 2 {
		gap = 2
	}
	return logo + strings.Repeat(" ", gap) + live
}

func renderNav(active Tab, alerts int) string {
	parts := make([]string, 0, tabCount)
	for t := TabHome; t < tabCount; t++ {
		label := t.Icon() + " " + t.String()
		if t == TabAlerts && alerts > 0 {
			label += " " + strconv.Itoa(alerts)
		}
		if t == active {
			parts = append(parts, navActiveStyle.Render(label))
		} else {
			parts = append(parts, navIdleStyle.Render(label))
		}
	}
	return strings.Join(parts, "   ")
}

func renderChips(chips *carousel.State) string {
	colors := make(map[string]string)
	for _, p := range catalog.Primaries() {
		colors[p.Key] = p.Color
	}
	parts := make([]string, 0, chips.Len())
	for i, sys := range chips.Systems() {
		label := sys.Icon + " " + sys.Label
		if i == chips.ActiveIndex() {
			parts = append(parts, chipActiveStyle(colors[sys.ID]).Render(label))
		} else {
			parts = append(parts, chipIdleStyle.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

// percentValue extracts a gauge reading from values like "87%".
func percentValue(v string) (float64, bool) {
	v = strings.TrimSpace(v)
	if !strings.HasSuffix(v, "%") {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64)
	if err != nil || f < 0 || f > 100 {
		return 0, false
	}
	return f / 100, true
}

func renderDetail(sys carousel.System, gauge progress.Model, notes string) string {
	head := titleStyle.Render(sys.Label)
	if sys.Status != "" {
		style := statusStyle
		if catalog.IsAlert(sys.Status) {
			style = errorStyle
		}
		head += "  " + style.Render(sys.Status)
	}
	if sys.Value != "" {
		head += "  " + labelStyle.Render(sys.Value)
	}

	lines := []string{head}
	if pct, ok := percentValue(sys.Value); ok {
		lines = append(lines, gauge.ViewAs(pct))
	}
	if notes != "" {
		lines = append(lines, notes)
	}
	return strings.Join(lines, "\n")
}

func indentBlock(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

// clipLines keeps at most n lines of s.
func clipLines(s string, n int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}

// renderSettings lists the effective session settings. They are read-only;
// changing them means restarting with other flags or another config file.
func renderSettings(cfg config.Config) string {
	orDefault := func(v, fallback string) string {
		if v == "" {
			return fallback
		}
		return v
	}
	onOff := "off"
	if cfg.Chime {
		onOff = "on"
	}
	rows := [][2]string{
		{"Interaction", string(cfg.Interaction)},
		{"Chime", onOff},
		{"Systems", orDefault(cfg.SystemsPath, "built-in")},
		{"Default system", orDefault(cfg.DefaultSystem, "catalog default")},
		{"Model load", cfg.ModelLoadDelay.String()},
		{"Reveal interval", cfg.RevealInterval.String()},
		{"Log file", orDefault(cfg.Logging.File, "off")},
		{"Log level", orDefault(cfg.Logging.Level, "info")},
	}

	var b strings.Builder
	b.WriteString("  " + headerStyle.Render("Settings") + "\n\n")
	for _, r := range rows {
		b.WriteString("  " + labelStyle.Width(18).Render(r[0]) + statusStyle.Render(r[1]) + "\n")
	}
	return b.String()
}
