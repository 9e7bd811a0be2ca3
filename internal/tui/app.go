// Package tui is the Bubble Tea front end over the list state. All mutation
// goes through Store and Filter; the view is recomputed from their current
// snapshots on every render.
package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/spicylist/internal/config"
	"github.com/jask/spicylist/internal/liststate"
	"github.com/jask/spicylist/internal/source"
)

// App ties the controllers to the terminal.
type App struct {
	store  *liststate.Store
	filter *liststate.Filter
	src    source.Source

	cursor      int
	count       int
	searching   bool
	searchInput textinput.Model
	query       string
	showChart   bool
	status      string
	glyph       string
	width       int
	height      int
}

func New(store *liststate.Store, filter *liststate.Filter, src source.Source, cfg config.Config) *App {
	inp := textinput.New()
	inp.Placeholder = "search foods"
	inp.Prompt = "/ "
	inp.CharLimit = 40

	a := &App{
		store:       store,
		filter:      filter,
		src:         src,
		count:       store.Len(),
		searchInput: inp,
		showChart:   cfg.UI.ShowChart,
		glyph:       cfg.UI.HeatGlyph,
	}
	if a.glyph == "" {
		a.glyph = "🌶"
	}

	// The controllers are the single source of truth; the app just tracks
	// enough of each publish to keep its cursor and header honest.
	store.Subscribe(func(rows []liststate.Record) {
		a.count = len(rows)
		a.clampCursor()
	})
	filter.Subscribe(func(string) {
		a.cursor = 0
	})
	return a
}

func (a *App) Init() tea.Cmd {
	return nil
}

// visibleRows is the derived view: current collection, narrowed by the
// cuisine filter, then by the search query. Recomputed on every call.
func (a *App) visibleRows() []liststate.Record {
	rows := liststate.Project(a.store.Records(), a.filter.Current())
	return searchRows(rows, a.query)
}

func (a *App) clampCursor() {
	visible := len(a.visibleRows())
	if a.cursor >= visible {
		a.cursor = visible - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
	case tea.KeyMsg:
		if a.searching {
			return a.handleSearchKey(m)
		}
		return a.handleKey(m)
	}
	return a, nil
}

func (a *App) handleSearchKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "esc":
		a.searching = false
		a.searchInput.SetValue("")
		a.query = ""
		a.clampCursor()
		return a, nil
	case "enter":
		a.searching = false
		return a, nil
	}
	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(m)
	a.query = a.searchInput.Value()
	a.clampCursor()
	return a, cmd
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, keys.Quit):
		return a, tea.Quit
	case key.Matches(m, keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(m, keys.Down):
		if a.cursor < len(a.visibleRows())-1 {
			a.cursor++
		}
	case key.Matches(m, keys.Add):
		a.addFromSource()
	case key.Matches(m, keys.Remove):
		if rows := a.visibleRows(); len(rows) > 0 {
			removed := rows[a.cursor]
			a.store.Remove(removed.ID)
			a.status = fmt.Sprintf("removed %s", removed.Name)
		}
	case key.Matches(m, keys.HeatUp):
		a.adjustHeat(1)
	case key.Matches(m, keys.HeatDown):
		a.adjustHeat(-1)
	case key.Matches(m, keys.Cycle):
		a.cycleFilter()
	case key.Matches(m, keys.Search):
		a.searching = true
		a.searchInput.Focus()
		return a, textinput.Blink
	case key.Matches(m, keys.Chart):
		a.showChart = !a.showChart
	}
	return a, nil
}

func (a *App) addFromSource() {
	r, err := a.src.Next()
	if errors.Is(err, source.ErrExhausted) {
		a.status = "nothing left to add"
		return
	}
	if err != nil {
		a.status = "error: " + err.Error()
		return
	}
	if err := a.store.Add(r); err != nil {
		a.status = "error: " + err.Error()
		return
	}
	a.status = fmt.Sprintf("added %s", r.Name)
}

func (a *App) adjustHeat(delta int) {
	rows := a.visibleRows()
	if len(rows) == 0 {
		return
	}
	target := rows[a.cursor]
	err := a.store.Update(target.ID, func(r liststate.Record) liststate.Record {
		r.HeatLevel += delta
		if r.HeatLevel < 0 {
			r.HeatLevel = 0
		}
		if r.HeatLevel > 10 {
			r.HeatLevel = 10
		}
		return r
	})
	if err != nil {
		a.status = "error: " + err.Error()
		return
	}
	a.status = fmt.Sprintf("%s heat adjusted", target.Name)
}

func (a *App) cycleFilter() {
	tags := append([]string{liststate.CuisineAll}, liststate.Cuisines(a.store.Records())...)
	current := a.filter.Current()
	next := tags[0]
	for i, tag := range tags {
		if tag == current {
			next = tags[(i+1)%len(tags)]
			break
		}
	}
	if err := a.filter.Set(next); err != nil {
		a.status = "error: " + err.Error()
		return
	}
	a.status = "filter: " + next
}
