package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/spicylist/internal/liststate"
	"github.com/jask/spicylist/internal/tui/widgets"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	cuisineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	hotStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#585b70"))
)

func (a *App) View() string {
	title := titleStyle.Render("Spicy Foods")
	header := fmt.Sprintf("%s  %s", title, dimStyle.Render(fmt.Sprintf("(%d total, filter: %s)", a.count, a.filter.Current())))
	out := header + "\n"

	if a.searching {
		out += a.searchInput.View() + "\n"
	} else if a.query != "" {
		out += dimStyle.Render("search: "+a.query) + "\n"
	}

	rows := a.visibleRows()
	if len(rows) == 0 {
		out += dimStyle.Render("  (no foods match)") + "\n"
	}
	for i, r := range rows {
		marker := " "
		if i == a.cursor {
			marker = "▶"
		}
		line := fmt.Sprintf("%s %-28s %s %s", marker, r.Name, cuisineStyle.Render(fmt.Sprintf("%-10s", r.Cuisine)), a.heatLabel(r.HeatLevel))
		if a.width > 0 {
			line = ansi.Truncate(line, a.width, "…")
		}
		out += line + "\n"
	}

	if a.showChart {
		chart := widgets.HeatChart(liststate.Project(a.store.Records(), a.filter.Current()), a.chartWidth(), 8)
		if chart != "" {
			out += "\n" + chart + "\n"
		}
	}

	out += dimStyle.Render("[a] Add  [d] Remove  [+/-] Heat  [f] Filter  [/] Search  [c] Chart  [q] Quit")
	if a.status != "" {
		out += "\n" + a.status
	}
	return out
}

func (a *App) heatLabel(level int) string {
	if level <= 0 {
		return dimStyle.Render("mild")
	}
	label := strings.Repeat(a.glyph, level)
	if level >= 7 {
		return hotStyle.Render(label)
	}
	return label
}

func (a *App) chartWidth() int {
	if a.width > 20 && a.width < 60 {
		return a.width - 4
	}
	return 56
}
