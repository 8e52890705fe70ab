package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/rope/internal/carousel"
)

func listSystems() []carousel.System {
	return []carousel.System{
		{ID: "bilge", Label: "BILGE", Status: "Normal", Value: "87%", Icon: "≋"},
		{ID: "fire", Label: "FIRE", Status: "Alarm", Icon: "▲"},
		{ID: "hvac", Label: "HVAC", Status: "Auto"},
	}
}

func TestSystemsListPointAndSelect(t *testing.T) {
	l := newSystemsList("Systems", listSystems())
	if l.count() != 3 {
		t.Fatalf("expected 3 items, got %d", l.count())
	}

	l.point("hvac")
	id, ok := l.selectedID()
	if !ok || id != "hvac" {
		t.Fatalf("expected hvac, got %q", id)
	}

	l.point("missing")
	if id, _ := l.selectedID(); id != "hvac" {
		t.Fatalf("expected cursor to stay on hvac, got %q", id)
	}

	l, _ = l.update(tea.KeyMsg{Type: tea.KeyUp})
	if id, _ := l.selectedID(); id != "fire" {
		t.Fatalf("expected fire, got %q", id)
	}
}

func TestAlertsListKeepsAlertingOnly(t *testing.T) {
	l := newAlertsList(listSystems())
	if l.count() != 1 {
		t.Fatalf("expected 1 alert, got %d", l.count())
	}
	if id, _ := l.selectedID(); id != "fire" {
		t.Fatalf("expected fire, got %q", id)
	}

	empty := newAlertsList(nil)
	if !empty.empty() {
		t.Fatal("expected empty alerts list")
	}
	if _, ok := empty.selectedID(); ok {
		t.Fatal("expected no selection in empty list")
	}
}

func TestSystemItemText(t *testing.T) {
	item := systemItem{sys: listSystems()[0]}
	if got := item.Title(); got != "≋ BILGE" {
		t.Fatalf("unexpected title %q", got)
	}
	if got := item.Description(); got != "Normal · 87%" {
		t.Fatalf("unexpected description %q", got)
	}
	if got := item.FilterValue(); got != "bilge BILGE" {
		t.Fatalf("unexpected filter value %q", got)
	}

	bare := systemItem{sys: carousel.System{ID: "x", Label: "X"}}
	if bare.Title() != "X" || bare.Description() != "" {
		t.Fatalf("unexpected bare item %q / %q", bare.Title(), bare.Description())
	}
}
