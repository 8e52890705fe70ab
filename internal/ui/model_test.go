package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/rope/internal/carousel"
	"github.com/olivier-w/rope/internal/config"
)

type countingChime struct {
	n int
}

func (c *countingChime) Play() { c.n++ }

func testRing(t *testing.T, ids ...string) *carousel.State {
	t.Helper()
	systems := make([]carousel.System, len(ids))
	for i, id := range ids {
		systems[i] = carousel.System{ID: id, Label: id, Status: "Normal", Value: "ok", Icon: "◉"}
	}
	s, err := carousel.New(systems, "")
	if err != nil {
		t.Fatalf("carousel.New: %v", err)
	}
	return s
}

func newTestModel(t *testing.T, mode config.Interaction) (Model, *countingChime) {
	t.Helper()
	chime := &countingChime{}
	m := New(testRing(t, "A", "B", "C", "D", "E", "F"), testRing(t, "energy", "tanks"), Options{
		Interaction: mode,
		Chime:       chime,
	})
	return m, chime
}

func send(m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = m.handleMsg(msg)
	}
	return m, cmd
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(x int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

func TestArrowKeysNavigateRing(t *testing.T) {
	m, chime := newTestModel(t, config.InteractionSwipe)

	m, cmd := send(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.ActiveID() != "B" {
		t.Fatalf("expected B, got %q", m.ActiveID())
	}
	if cmd == nil {
		t.Fatal("expected animation command after focus change")
	}

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft})
	if m.ActiveID() != "F" {
		t.Fatalf("expected F after wrapping, got %q", m.ActiveID())
	}
	if chime.n != 3 {
		t.Fatalf("expected 3 chimes, got %d", chime.n)
	}
	if m.events.count() != 3 {
		t.Fatalf("expected 3 logged changes, got %d", m.events.count())
	}
}

func TestVimKeysNavigateRing(t *testing.T) {
	m, _ := newTestModel(t, config.InteractionSwipe)
	m, _ = send(m, keyRunes("l"), keyRunes("l"), keyRunes("h"))
	if m.ActiveID() != "B" {
		t.Fatalf("expected B, got %q", m.ActiveID())
	}
}

func TestSwipeLeftSelectsNext(t *testing.T) {
	m, _ := newTestModel(t, config.InteractionSwipe)
	m, _ = send(m, press(40), motion(30), motion(20), release(20))
	if m.ActiveID() != "B" {
		t.Fatalf("expected B, got %q", m.ActiveID())
	}
}

func TestSwipeRightSelectsPrevious(t *testing.T) {
	m, _ := newTestModel(t, config.InteractionSwipe)
	m, _ = send(m, press(20), motion(40), release(40))
	if m.ActiveID() != "F" {
		t.Fatalf("expected F, got %q", m.ActiveID())
	}
}

func TestShortDragIsIgnored(t *testing.T) {
	m, chime := newTestModel(t, config.InteractionSwipe)
	// 4 columns is 32px, under the swipe threshold.
	m, cmd := send(m, press(40), motion(36), release(36))
	if m.ActiveID() != "A" {
		t.Fatalf("expected A, got %q", m.ActiveID())
	}
	if cmd != nil || chime.n != 0 {
		t.Fatal("expected no focus change side effects")
	}
}

func TestMotionAfterReleaseIsIgnored(t *testing.T) {
	m, _ := newTestModel(t, config.InteractionSwipe)
	m, _ = send(m, press(40), release(40), motion(0), release(0))
	if m.ActiveID() != "A" {
		t.Fatalf("expected A, got %q", m.ActiveID())
	}
}

func TestBlurCancelsGestureLikeRelease(t *testing.T) {
	m, _ := newTestModel(t, config.InteractionSwipe)
	m, _ = send(m, press(10), motion(30), tea.BlurMsg{})
	if m.ActiveID() != "F" {
		t.Fatalf("expected F, got %q", m.ActiveID())
	}
	if m.tracker.Dragging() {
		t.Fatal("expected gesture to be finalized")
	}
}

func TestWheelDoesNotStartGesture(t *testing.T) {
	m, _ := newTestModel(t, config.InteractionSwipe)
	wheel := tea.MouseMsg{X: 40, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}
	m, _ = send(m, wheel, motion(0), release(0))
	if m.ActiveID() != "A" {
		t.Fatalf("expected A, got %q", m.ActiveID())
	}
}

func TestOrbitDragSnapsToNearest(t *testing.T) {
	m, _ := newTestModel(t, config.InteractionOrbit)

	m, _ = send(m, press(50), motion(43), motion(36))
	if !m.animating {
		t.Fatal("expected animation while dragging")
	}
	if m.ring.RotationOffset() <= 0 {
		t.Fatalf("expected leftward drag to advance rotation, got %v", m.ring.RotationOffset())
	}
	if m.ActiveID() != "A" {
		t.Fatalf("expected focus to hold during drag, got %q", m.ActiveID())
	}

	m, _ = send(m, release(36))
	if m.ActiveID() != "B" {
		t.Fatalf("expected B after snap, got %q", m.ActiveID())
	}
	step := carousel.AngleStep(6)
	if got := m.ring.RotationOffset(); got != step {
		t.Fatalf("expected rotation %v, got %v", step, got)
	}
}

func TestOrbitShortDragSnapsBack(t *testing.T) {
	m, _ := newTestModel(t, config.InteractionOrbit)
	m, _ = send(m, press(50), motion(48), release(48))
	if m.ActiveID() != "A" || m.ring.RotationOffset() != 0 {
		t.Fatalf("expected A at rest, got %q at %v", m.ActiveID(), m.ring.RotationOffset())
	}
}

func TestOrbitDragStartsFromFocusedSlot(t *testing.T) {
	m, _ := newTestModel(t, config.InteractionOrbit)
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = send(m, press(50), motion(49), release(49))
	if m.ActiveID() != "C" {
		t.Fatalf("expected keyboard focus to survive a tap, got %q", m.ActiveID())
	}
}

func TestOrbitDragOnEmptyRing(t *testing.T) {
	m := New(testRing(t), testRing(t), Options{Interaction: config.InteractionOrbit})
	m, _ = send(m, press(50), motion(30), release(30))
	if m.ActiveID() != "" || m.tracker.Dragging() {
		t.Fatalf("expected no selection and no live drag, got %q", m.ActiveID())
	}
}

func TestLeavingHomeFinishesOrbitDrag(t *testing.T) {
	m, _ := newTestModel(t, config.InteractionOrbit)
	m, _ = send(m, press(50), motion(43), motion(38), tea.KeyMsg{Type: tea.KeyTab})
	if m.tracker.Dragging() {
		t.Fatal("expected tab switch to end the drag")
	}
	if m.ActiveID() != "B" {
		t.Fatalf("expected B after snap, got %q", m.ActiveID())
	}
	if got, step := m.ring.RotationOffset(), carousel.AngleStep(6); got != step {
		t.Fatalf("expected snapped rotation %v, got %v", step, got)
	}

	m, _ = send(m, release(38), tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.ActiveID() != "B" || m.ring.RotationOffset() != carousel.AngleStep(6) {
		t.Fatalf("expected late release to change nothing, got %q at %v", m.ActiveID(), m.ring.RotationOffset())
	}
}

func TestJumpPromptFinishesSwipe(t *testing.T) {
	m, chime := newTestModel(t, config.InteractionSwipe)
	m, _ = send(m, press(40), motion(20), keyRunes(":"))
	if m.tracker.Dragging() {
		t.Fatal("expected jump prompt to end the drag")
	}
	if m.ActiveID() != "B" {
		t.Fatalf("expected accumulated swipe to select B, got %q", m.ActiveID())
	}

	m, _ = send(m, release(20), tea.KeyMsg{Type: tea.KeyEsc})
	if m.ActiveID() != "B" || chime.n != 1 {
		t.Fatalf("expected one focus change, got %q with %d chimes", m.ActiveID(), chime.n)
	}
}

func TestReleaseOffHomeEndsDrag(t *testing.T) {
	m, _ := newTestModel(t, config.InteractionSwipe)
	m, _ = send(m, press(40), motion(30))
	m.tab = TabLogs
	m, _ = send(m, motion(0), release(0))
	if m.tracker.Dragging() {
		t.Fatal("expected release to end the drag")
	}
	// Motion off Home is ignored, so only the 10 columns on Home count.
	if m.ActiveID() != "B" {
		t.Fatalf("expected B, got %q", m.ActiveID())
	}
}

func TestSettingsTabShowsEffectiveConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Interaction = config.InteractionOrbit
	cfg.Chime = true
	cfg.Logging.File = "/tmp/rope.log"
	m := New(testRing(t, "A"), testRing(t), Options{Interaction: cfg.Interaction, Config: cfg})
	m.setTab(TabSettings)

	view := m.View()
	for _, want := range []string{"Settings", "orbit", "on", "/tmp/rope.log", "2s"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in settings view", want)
		}
	}
}

func TestHotspotsFollowFocusAndChip(t *testing.T) {
	ring, err := carousel.New([]carousel.System{
		{ID: "ok", Status: "Normal", Anchor: [3]float64{0.1, 0, 0}},
		{ID: "bad", Status: "Fault", Anchor: [3]float64{0.2, 0, 0}},
	}, "bad")
	if err != nil {
		t.Fatalf("carousel.New: %v", err)
	}
	chips, err := carousel.New([]carousel.System{{ID: "tanks", Anchor: [3]float64{0, -0.08, 0.02}}}, "")
	if err != nil {
		t.Fatalf("carousel.New: %v", err)
	}
	m := New(ring, chips, Options{})

	hs := m.hotspots()
	if len(hs) != 2 {
		t.Fatalf("expected 2 hotspots, got %d", len(hs))
	}
	if hs[0].anchor != [3]float64{0, -0.08, 0.02} || hs[0].color != "#23D6C4" {
		t.Fatalf("unexpected chip hotspot %+v", hs[0])
	}
	if hs[1].anchor != [3]float64{0.2, 0, 0} || hs[1].color != alertHex {
		t.Fatalf("unexpected focus hotspot %+v", hs[1])
	}
}

func TestJumpToUnknownSystemShowsError(t *testing.T) {
	m, _ := newTestModel(t, config.InteractionSwipe)
	m, _ = send(m, keyRunes(":"))
	if !m.jumping {
		t.Fatal("expected jump prompt")
	}
	m, cmd := send(m, keyRunes("does-not-exist"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.ActiveID() != "A" {
		t.Fatalf("expected A, got %q", m.ActiveID())
	}
	if !m.statusErr || !strings.Contains(m.statusMsg, "does-not-exist") {
		t.Fatalf("expected error status, got %q", m.statusMsg)
	}
	if cmd == nil {
		t.Fatal("expected status expiry command")
	}
	if m.jumping {
		t.Fatal("expected prompt to close")
	}
}

func TestJumpToKnownSystem(t *testing.T) {
	m, _ := newTestModel(t, config.InteractionSwipe)
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyTab}, keyRunes(":"), keyRunes("D"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.ActiveID() != "D" {
		t.Fatalf("expected D, got %q", m.ActiveID())
	}
	if m.Tab() != TabHome {
		t.Fatalf("expected Home tab, got %v", m.Tab())
	}
}

func TestJumpEscCancels(t *testing.T) {
	m, _ := newTestModel(t, config.InteractionSwipe)
	m, _ = send(m, keyRunes(":"), keyRunes("D"), tea.KeyMsg{Type: tea.KeyEsc})
	if m.jumping || m.quitting {
		t.Fatal("expected esc to close the prompt only")
	}
	if m.ActiveID() != "A" {
		t.Fatalf("expected A, got %q", m.ActiveID())
	}
}

func TestStatusExpiryIgnoresStaleSeq(t *testing.T) {
	m, _ := newTestModel(t, config.InteractionSwipe)
	m.statusMsg = "unknown system"
	m.statusSeq = 2

	m, _ = send(m, statusExpiredMsg{seq: 1})
	if m.statusMsg == "" {
		t.Fatal("expected stale expiry to keep the message")
	}
	m, _ = send(m, statusExpiredMsg{seq: 2})
	if m.statusMsg != "" {
		t.Fatal("expected current expiry to clear the message")
	}
}

func TestSystemsTabSelectsByID(t *testing.T) {
	m, _ := newTestModel(t, config.InteractionSwipe)
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Tab() != TabSystems {
		t.Fatalf("expected Systems tab, got %v", m.Tab())
	}
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.ActiveID() != "C" {
		t.Fatalf("expected C, got %q", m.ActiveID())
	}
	if m.Tab() != TabHome {
		t.Fatalf("expected Home tab, got %v", m.Tab())
	}
}

func TestArrowsDoNotMoveRingOffHome(t *testing.T) {
	m, _ := newTestModel(t, config.InteractionSwipe)
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyRight}, press(40), release(0))
	if m.Tab() != TabSettings {
		t.Fatalf("expected Settings tab, got %v", m.Tab())
	}
	if m.ActiveID() != "A" {
		t.Fatalf("expected A, got %q", m.ActiveID())
	}
}

func TestChipKeysMoveChipRow(t *testing.T) {
	m, _ := newTestModel(t, config.InteractionSwipe)
	m, _ = send(m, keyRunes("]"))
	if m.chips.ActiveID() != "tanks" {
		t.Fatalf("expected tanks, got %q", m.chips.ActiveID())
	}
	if m.ActiveID() != "A" {
		t.Fatal("expected ring focus untouched by chips")
	}
}

func TestRevealAndAnimationSettle(t *testing.T) {
	m, _ := newTestModel(t, config.InteractionSwipe)

	m, cmd := send(m, modelLoadedMsg{})
	if !m.loaded || cmd == nil {
		t.Fatal("expected load to schedule the first reveal")
	}
	for range m.ring.Len() {
		m, _ = send(m, revealMsg{})
	}
	if m.visible != m.ring.Len() {
		t.Fatalf("expected all cards visible, got %d", m.visible)
	}
	if cmd := m.revealNext(); cmd != nil {
		t.Fatal("expected reveals to stop once every card is shown")
	}

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyRight})
	frames := 0
	for m.animating {
		m, _ = send(m, frameMsg(time.Now()))
		frames++
		if frames > 10*60 {
			t.Fatal("animation never settled")
		}
	}
	targets := m.ring.Positions()
	for i, p := range m.positions() {
		if p != targets[i] {
			t.Fatalf("card %d rests at %v, want %v", i, p, targets[i])
		}
	}
}

func TestQuitDisablesMouseAndClearsView(t *testing.T) {
	m, _ := newTestModel(t, config.InteractionSwipe)
	m, _ = send(m, press(40))
	m, cmd := send(m, keyRunes("q"))
	if !m.quitting || cmd == nil {
		t.Fatal("expected quit command")
	}
	if m.tracker.Dragging() {
		t.Fatal("expected live gesture to be dropped on quit")
	}
	if m.View() != "" {
		t.Fatal("expected empty view after quit")
	}
}

func TestViewPadsToWindowHeight(t *testing.T) {
	m, _ := newTestModel(t, config.InteractionSwipe)
	m, _ = send(m, tea.WindowSizeMsg{Width: 100, Height: 40}, modelLoadedMsg{}, revealMsg{}, revealMsg{})

	view := m.View()
	if lipgloss.Height(view) < 40 {
		t.Fatalf("expected padded view height >= 40, got %d", lipgloss.Height(view))
	}
	for _, want := range []string{"rope", "live", "Home", "Normal"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view", want)
		}
	}
}

func TestViewRendersEveryTab(t *testing.T) {
	m, _ := newTestModel(t, config.InteractionSwipe)
	m, _ = send(m, tea.WindowSizeMsg{Width: 100, Height: 40}, tea.KeyMsg{Type: tea.KeyRight})

	want := map[Tab]string{
		TabSystems:  "Systems",
		TabAlerts:   "All systems nominal",
		TabLogs:     "key",
		TabSettings: "built-in",
	}
	for tab, text := range want {
		m.setTab(tab)
		if view := m.View(); !strings.Contains(view, text) {
			t.Fatalf("%v: expected %q in view", tab, text)
		}
	}
}

func TestEmptyRingIsSafe(t *testing.T) {
	m := New(testRing(t), testRing(t), Options{})
	m, _ = send(m,
		tea.KeyMsg{Type: tea.KeyRight},
		press(40), release(0),
		modelLoadedMsg{}, revealMsg{}, frameMsg(time.Now()),
	)
	if m.ActiveID() != "" {
		t.Fatalf("expected no selection, got %q", m.ActiveID())
	}
	if view := m.View(); !strings.Contains(view, "no systems") {
		t.Fatal("expected empty-ring placeholder")
	}
}

func TestNotesRenderInDetail(t *testing.T) {
	systems := []carousel.System{{ID: "bilge", Label: "BILGE", Status: "Normal", Value: "87%", Notes: "Pump **idle**"}}
	ring, err := carousel.New(systems, "")
	if err != nil {
		t.Fatalf("carousel.New: %v", err)
	}
	m := New(ring, testRing(t), Options{})
	m, _ = send(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if view := m.View(); !strings.Contains(view, "idle") {
		t.Fatal("expected rendered notes in view")
	}
}
