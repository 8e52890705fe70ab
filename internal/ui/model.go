package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/rope/internal/anim"
	"github.com/olivier-w/rope/internal/carousel"
	"github.com/olivier-w/rope/internal/catalog"
	"github.com/olivier-w/rope/internal/config"
	"github.com/olivier-w/rope/internal/gesture"
	"github.com/olivier-w/rope/internal/sound"
	"github.com/olivier-w/rope/internal/util"
	"go.uber.org/zap"
)

// RadiansPerPixel converts horizontal drag travel into ring rotation in orbit mode.
const RadiansPerPixel = 0.01

const (
	eventLogSize    = 64
	springFrequency = 6.0
	springDamping   = 0.9
)

// Options configures a Model.
type Options struct {
	Interaction    config.Interaction
	ModelLoadDelay time.Duration
	RevealInterval time.Duration
	Chime          sound.Chime
	Logger         *zap.Logger
	// Config is shown on the Settings tab. When nil it is derived from the
	// fields above.
	Config *config.Config
}

// Model is the Bubbletea model for the rope dashboard.
type Model struct {
	ring  *carousel.State
	chips *carousel.State
	opts  Options
	keys  keyMap
	help  help.Model

	tracker   gesture.Tracker
	dragStart float64 // ring rotation when an orbit drag began

	springs   anim.SpringField
	animating bool // a frame tick is in flight

	loaded  bool
	visible int // cards revealed so far
	spinner spinner.Model
	gauge   progress.Model

	tab     Tab
	systems systemsList
	alerts  systemsList
	jump    textinput.Model
	jumping bool

	events *eventLog
	notes  *notesRenderer

	statusMsg string
	statusErr bool
	statusSeq int

	pulse    bool
	width    int
	height   int
	quitting bool
}

// New creates a Model over ring, with chips driving the primary-system row.
func New(ring, chips *carousel.State, opts Options) Model {
	if opts.Chime == nil {
		opts.Chime = sound.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Interaction == "" {
		opts.Interaction = config.InteractionSwipe
	}
	if opts.Config == nil {
		cfg := config.DefaultConfig()
		cfg.Interaction = opts.Interaction
		cfg.ModelLoadDelay = opts.ModelLoadDelay
		cfg.RevealInterval = opts.RevealInterval
		opts.Config = cfg
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(accentHex))

	g := progress.New(
		progress.WithScaledGradient(accentHex, focusHex),
		progress.WithoutPercentage(),
	)
	g.Width = 30

	ti := textinput.New()
	ti.Placeholder = "system id"
	ti.CharLimit = 64
	ti.Width = 24
	ti.Prompt = ": "

	systems := ring.Systems()
	m := Model{
		ring:    ring,
		chips:   chips,
		opts:    opts,
		keys:    defaultKeyMap(),
		help:    help.New(),
		springs: anim.NewSpringField(anim.FPS, springFrequency, springDamping),
		spinner: s,
		gauge:   g,
		systems: newSystemsList("Systems", systems),
		alerts:  newAlertsList(systems),
		jump:    ti,
		events:  newEventLog(eventLogSize),
		notes:   newNotesRenderer(),
	}
	m.springs.Resize(ring.Len())
	m.systems.point(ring.ActiveID())
	return m
}

// ActiveID returns the focused system id.
func (m Model) ActiveID() string {
	return m.ring.ActiveID()
}

// Tab returns the visible section.
func (m Model) Tab() Tab {
	return m.tab
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		tea.SetWindowTitle("rope.core"),
		m.spinner.Tick,
		afterCmd(m.opts.ModelLoadDelay, modelLoadedMsg{}),
		pulseCmd(),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleMsg(msg)
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.BlurMsg:
		// Losing focus mid-drag ends the gesture like a pointer cancel.
		return m.applyGesture(gesture.Event{Kind: gesture.Cancel})

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.systems.setSize(msg.Width, msg.Height-6)
		m.alerts.setSize(msg.Width, msg.Height-6)
		m.gauge.Width = min(max(msg.Width-12, 10), 40)
		return m, nil

	case spinner.TickMsg:
		if m.loaded {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case modelLoadedMsg:
		m.loaded = true
		m.opts.Logger.Debug("model loaded", zap.Int("systems", m.ring.Len()))
		return m, m.revealNext()

	case revealMsg:
		if m.visible < m.ring.Len() {
			// New cards spring out from the hull.
			m.springs.Place(m.visible, carousel.Vec3{Y: carousel.VerticalBand(m.visible)})
			m.visible++
		}
		return m, tea.Batch(m.revealNext(), m.animate())

	case frameMsg:
		m.animating = false
		if m.step() {
			return m, m.animate()
		}
		return m, nil

	case pulseMsg:
		m.pulse = !m.pulse
		return m, pulseCmd()

	case statusExpiredMsg:
		if msg.seq == m.statusSeq {
			m.statusMsg = ""
			m.statusErr = false
		}
		return m, nil
	}

	return m.forward(msg)
}

// forward hands messages the dashboard does not handle to the active widget.
func (m Model) forward(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.jumping:
		m.jump, cmd = m.jump.Update(msg)
	case m.tab == TabSystems:
		m.systems, cmd = m.systems.update(msg)
	case m.tab == TabAlerts:
		m.alerts, cmd = m.alerts.update(msg)
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.jumping {
		return m.handleJumpKey(msg)
	}
	if (m.tab == TabSystems && m.systems.filtering()) || (m.tab == TabAlerts && m.alerts.filtering()) {
		return m.forward(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.NextTab):
		cmd := m.finishGesture()
		m.setTab(m.tab.Next())
		return m, cmd
	case key.Matches(msg, m.keys.PrevTab):
		cmd := m.finishGesture()
		m.setTab(m.tab.Prev())
		return m, cmd
	case key.Matches(msg, m.keys.Jump):
		cmd := m.finishGesture()
		m.jumping = true
		m.jump.Reset()
		return m, tea.Batch(cmd, m.jump.Focus(), textinput.Blink)
	}

	switch m.tab {
	case TabHome:
		before := m.ring.ActiveID()
		switch {
		case key.Matches(msg, m.keys.Prev):
			m.ring.SelectPrevious()
			return m, m.focusChanged(before, "key")
		case key.Matches(msg, m.keys.Next):
			m.ring.SelectNext()
			return m, m.focusChanged(before, "key")
		case key.Matches(msg, m.keys.ChipPrev):
			m.chips.SelectPrevious()
		case key.Matches(msg, m.keys.ChipNext):
			m.chips.SelectNext()
		}
		return m, nil

	case TabSystems, TabAlerts:
		list := m.systems
		if m.tab == TabAlerts {
			list = m.alerts
		}
		if key.Matches(msg, m.keys.Select) {
			id, ok := list.selectedID()
			if !ok {
				return m, nil
			}
			before := m.ring.ActiveID()
			if err := m.selectByID(id); err != nil {
				return m, m.setStatus(err.Error(), true)
			}
			m.tab = TabHome
			return m, m.focusChanged(before, "list")
		}
		return m.forward(msg)
	}

	return m, nil
}

func (m Model) handleJumpKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		id := strings.TrimSpace(m.jump.Value())
		m.jumping = false
		m.jump.Blur()
		if id == "" {
			return m, nil
		}
		before := m.ring.ActiveID()
		if err := m.selectByID(id); err != nil {
			m.opts.Logger.Warn("jump rejected", zap.String("id", id), zap.Error(err))
			return m, m.setStatus(fmt.Sprintf("unknown system %q", id), true)
		}
		m.tab = TabHome
		return m, m.focusChanged(before, "jump")
	case tea.KeyEsc:
		m.jumping = false
		m.jump.Blur()
		return m, nil
	case tea.KeyCtrlC:
		return m.quit()
	}

	var cmd tea.Cmd
	m.jump, cmd = m.jump.Update(msg)
	return m, cmd
}

// selectByID focuses id. In orbit mode the ring turns with it so the next
// drag starts from the focused slot.
func (m *Model) selectByID(id string) error {
	if m.opts.Interaction == config.InteractionOrbit {
		return m.ring.RotateTo(id)
	}
	return m.ring.SelectByID(id)
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	ev, ok := pointerEvent(msg)
	if !ok {
		return m, nil
	}
	// Off the ring only a release may still land, ending a drag begun on Home.
	if (m.tab != TabHome || m.jumping) && ev.Kind != gesture.Up {
		return m, nil
	}
	return m.applyGesture(ev)
}

func pointerEvent(msg tea.MouseMsg) (gesture.Event, bool) {
	ev := gesture.Event{X: gesture.CellsToPx(msg.X), Y: gesture.CellsToPx(msg.Y)}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return gesture.Event{}, false
		}
		ev.Kind = gesture.Down
	case tea.MouseActionMotion:
		ev.Kind = gesture.Move
	case tea.MouseActionRelease:
		ev.Kind = gesture.Up
	default:
		return gesture.Event{}, false
	}
	return ev, true
}

func (m Model) applyGesture(ev gesture.Event) (Model, tea.Cmd) {
	res := m.tracker.Handle(ev)

	if m.opts.Interaction == config.InteractionOrbit {
		switch {
		case res.Started:
			if m.ring.Len() > 0 {
				if err := m.ring.RotateTo(m.ring.ActiveID()); err != nil {
					m.opts.Logger.Warn("orbit drag start", zap.Error(err))
				}
			}
			m.dragStart = m.ring.RotationOffset()
			return m, nil
		case res.Ended:
			before := m.ring.ActiveID()
			m.ring.SnapToNearest()
			return m, tea.Batch(m.focusChanged(before, "orbit"), m.animate())
		case m.tracker.Dragging():
			// Dragging right pulls the previous card toward the front.
			m.ring.SetRotation(m.dragStart - m.tracker.Delta()*RadiansPerPixel)
			return m, m.animate()
		}
		return m, nil
	}

	if res.Ended {
		m.opts.Logger.Debug("gesture ended", zap.Float64("dx", res.DeltaX))
		before := m.ring.ActiveID()
		m.ring.OnGestureEnd(res.DeltaX, carousel.SwipeThresholdPx)
		return m, m.focusChanged(before, "swipe")
	}
	return m, nil
}

// finishGesture ends a live drag as if the pointer had been released, so
// leaving the ring never strands a gesture or an unsnapped rotation.
func (m *Model) finishGesture() tea.Cmd {
	if !m.tracker.Dragging() {
		return nil
	}
	var cmd tea.Cmd
	*m, cmd = m.applyGesture(gesture.Event{Kind: gesture.Cancel})
	return cmd
}

// focusChanged records a move away from before and starts the animation.
func (m *Model) focusChanged(before, cause string) tea.Cmd {
	after := m.ring.ActiveID()
	if after == before {
		return nil
	}
	m.events.add(logEntry{At: time.Now(), From: before, To: after, Cause: cause})
	m.opts.Logger.Info("focus changed",
		zap.String("from", before),
		zap.String("to", after),
		zap.String("cause", cause),
	)
	m.opts.Chime.Play()
	m.systems.point(after)
	return m.animate()
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.statusMsg = text
	m.statusErr = isErr
	return statusExpiryCmd(m.statusSeq)
}

func (m *Model) setTab(t Tab) {
	m.tab = t
	if t == TabSystems {
		m.systems.point(m.ring.ActiveID())
	}
}

func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	m.tracker.Reset()
	return m, tea.Sequence(tea.DisableMouse, tea.SetWindowTitle(""), tea.Quit)
}

// animate schedules a frame unless one is already pending.
func (m *Model) animate() tea.Cmd {
	if m.animating {
		return nil
	}
	m.animating = true
	return frameCmd()
}

// revealNext schedules the next card reveal.
func (m Model) revealNext() tea.Cmd {
	if m.visible >= m.ring.Len() {
		return nil
	}
	return afterCmd(m.opts.RevealInterval, revealMsg{})
}

// step advances every revealed card one frame and reports whether any is
// still moving.
func (m *Model) step() bool {
	targets := m.ring.Positions()
	m.springs.Resize(len(targets))
	moving := false
	for i := 0; i < m.visible && i < len(targets); i++ {
		m.springs.Step(i, targets[i])
		if m.springs.Settled(i, targets[i]) {
			m.springs.Snap(i, targets[i])
			continue
		}
		moving = true
	}
	return moving
}

// positions returns where each card is drawn this frame: its animated
// position once placed, its layout target otherwise.
func (m Model) positions() []carousel.Vec3 {
	out := m.ring.Positions()
	if m.springs.Len() != len(out) {
		return out
	}
	for i := range out {
		if m.springs.Placed(i) {
			out[i] = m.springs.At(i)
		}
	}
	return out
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w := m.width
	if w < 40 {
		w = 80
	}
	h := m.height
	if h < 20 {
		h = 24
	}

	top := "\n  " + renderTopBar(w-4, m.pulse) + "\n\n"

	var body string
	switch m.tab {
	case TabSystems:
		body = m.systems.View()
	case TabAlerts:
		if m.alerts.empty() {
			body = "  " + headerStyle.Render("Alerts") + "\n\n  " + statusStyle.Render("All systems nominal")
		} else {
			body = m.alerts.View()
		}
	case TabLogs:
		body = m.renderLogs(h - 10)
	case TabSettings:
		body = renderSettings(*m.opts.Config)
	default:
		body = m.renderHome(w, h)
	}

	var footer strings.Builder
	if m.jumping {
		footer.WriteString("  " + m.jump.View() + "\n")
	}
	if m.statusMsg != "" {
		style := helpStyle
		if m.statusErr {
			style = errorStyle
		}
		footer.WriteString("  " + style.Render(m.statusMsg) + "\n")
	}
	footer.WriteString("\n  " + renderNav(m.tab, m.alerts.count()) + "\n")
	footer.WriteString("  " + m.help.View(m.keys) + "\n")

	content := top + body + "\n"
	if gap := h - lipgloss.Height(content) - lipgloss.Height(footer.String()) + 1; gap > 0 {
		content += strings.Repeat("\n", gap)
	}
	return content + footer.String()
}

func (m Model) renderHome(w, h int) string {
	canvasH := max(h-16, 8)
	ring := ringView{
		width:     w - 4,
		height:    canvasH,
		systems:   m.ring.Systems(),
		positions: m.positions(),
		active:    m.ring.ActiveIndex(),
		visible:   m.visible,
		hotspots:  m.hotspots(),
		pulse:     m.pulse,
	}

	var b strings.Builder
	b.WriteString(indentBlock(ring.View(), "  "))
	b.WriteString("\n")
	if !m.loaded {
		b.WriteString("  " + m.spinner.View() + " " + statusStyle.Render("loading model...") + "\n")
	}
	if sys, ok := m.ring.Active(); ok {
		notes := clipLines(m.notes.render(sys.Notes, w-6), 4)
		b.WriteString("\n" + indentBlock(renderDetail(sys, m.gauge, notes), "  ") + "\n")
	} else {
		b.WriteString("\n  " + helpStyle.Render("no systems") + "\n")
	}
	if m.chips != nil && m.chips.Len() > 0 {
		b.WriteString("\n  " + renderChips(m.chips) + "\n")
	}
	return b.String()
}

// hotspots marks the selected chip and the focused system on the hull, the
// focused one drawn last.
func (m Model) hotspots() []hotspot {
	var out []hotspot
	if m.chips != nil {
		if chip, ok := m.chips.Active(); ok {
			color := accentHex
			for _, p := range catalog.Primaries() {
				if p.Key == chip.ID {
					color = p.Color
				}
			}
			out = append(out, hotspot{anchor: chip.Anchor, color: color})
		}
	}
	if sys, ok := m.ring.Active(); ok {
		color := focusHex
		if catalog.IsAlert(sys.Status) {
			color = alertHex
		}
		out = append(out, hotspot{anchor: sys.Anchor, color: color})
	}
	return out
}

func (m Model) renderLogs(rows int) string {
	var b strings.Builder
	b.WriteString("  " + headerStyle.Render("Logs") + "\n\n")
	entries := m.events.recent(max(rows, 1))
	if len(entries) == 0 {
		b.WriteString("  " + helpStyle.Render("no focus changes yet"))
		return b.String()
	}
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		age := util.FormatAge(time.Since(e.At))
		line := fmt.Sprintf("%s  %6s ago  %-12s → %-12s  %s", e.At.Format("15:04:05"), age, e.From, e.To, e.Cause)
		b.WriteString("  " + statusStyle.Render(line) + "\n")
	}
	return b.String()
}
