package ui

// Tab is a section of the bottom navigation.
type Tab int

const (
	TabHome Tab = iota
	TabSystems
	TabAlerts
	TabLogs
	TabSettings
	tabCount
)

// Next cycles to the following tab.
func (t Tab) Next() Tab {
	return (t + 1) % tabCount
}

// Prev cycles to the preceding tab.
func (t Tab) Prev() Tab {
	return (t + tabCount - 1) % tabCount
}

// String returns the tab's label.
func (t Tab) String() string {
	switch t {
	case TabSystems:
		return "Systems"
	case TabAlerts:
		return "Alerts"
	case TabLogs:
		return "Logs"
	case TabSettings:
		return "Settings"
	default:
		return "Home"
	}
}

// Icon returns the glyph shown next to the label.
func (t Tab) Icon() string {
	switch t {
	case TabSystems:
		return "◎"
	case TabAlerts:
		return "△"
	case TabLogs:
		return "≡"
	case TabSettings:
		return "⚙"
	default:
		return "⌂"
	}
}
