package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/rope/internal/carousel"
	"github.com/olivier-w/rope/internal/catalog"
)

type systemItem struct {
	sys carousel.System
}

func (i systemItem) Title() string {
	if i.sys.Icon == "" {
		return i.sys.Label
	}
	return i.sys.Icon + " " + i.sys.Label
}

func (i systemItem) Description() string {
	d := i.sys.Status
	if i.sys.Value != "" {
		if d != "" {
			d += " · "
		}
		d += i.sys.Value
	}
	return d
}

func (i systemItem) FilterValue() string { return i.sys.ID + " " + i.sys.Label }

// systemsList is the filterable list of every system on the ring, or of the
// alerting ones.
type systemsList struct {
	list list.Model
}

func newSystemsList(title string, systems []carousel.System) systemsList {
	items := make([]list.Item, len(systems))
	for i, s := range systems {
		items[i] = systemItem{sys: s}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.Color(focusHex)).
		BorderLeftForeground(lipgloss.Color(accentHex))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"}).
		BorderLeftForeground(lipgloss.Color(accentHex))

	l := list.New(items, delegate, 80, 20)
	l.Title = title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.Styles.Title = headerStyle
	l.SetStatusBarItemName("system", "systems")
	return systemsList{list: l}
}

func newAlertsList(systems []carousel.System) systemsList {
	return newSystemsList("Alerts", catalog.Alerting(systems))
}

// filtering reports whether the list is capturing keys for its filter.
func (s systemsList) filtering() bool {
	return s.list.FilterState() == list.Filtering
}

// selectedID returns the id under the cursor.
func (s systemsList) selectedID() (string, bool) {
	item, ok := s.list.SelectedItem().(systemItem)
	if !ok {
		return "", false
	}
	return item.sys.ID, true
}

// point moves the cursor onto id when it is listed.
func (s *systemsList) point(id string) {
	for i, it := range s.list.Items() {
		if item, ok := it.(systemItem); ok && item.sys.ID == id {
			s.list.Select(i)
			return
		}
	}
}

func (s *systemsList) setSize(w, h int) {
	s.list.SetSize(w, h)
}

func (s systemsList) update(msg tea.Msg) (systemsList, tea.Cmd) {
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

func (s systemsList) empty() bool {
	return len(s.list.Items()) == 0
}

func (s systemsList) View() string {
	return s.list.View()
}

func (s systemsList) count() int {
	return len(s.list.Items())
}
