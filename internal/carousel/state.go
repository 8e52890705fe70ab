package carousel

import (
	"errors"
	"fmt"
	"math"
)

// SwipeThresholdPx is the minimum horizontal travel of a gesture, in pixels,
// before it counts as a swipe rather than a tap.
const SwipeThresholdPx = 50

var (
	// ErrInvalidSelection is returned when an id does not name a system in the ring.
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrDuplicateID is returned when two systems share an id.
	ErrDuplicateID = errors.New("duplicate system id")
	// ErrEmptyID is returned when a system has no id.
	ErrEmptyID = errors.New("empty system id")
)

// System is one onboard subsystem shown as a card on the ring.
type System struct {
	ID     string
	Label  string
	Status string
	Value  string
	Icon   string
	Notes  string
	Anchor [3]float64
}

// State holds the focused system and the ring rotation.
// It is only mutated from Bubbletea's single-threaded Update loop.
type State struct {
	systems  []System
	index    map[string]int
	activeID string
	rotation float64 // radians, not normalized
}

// New creates a State over systems focused on defaultID, or on the first
// system when defaultID is empty. An empty list yields a State whose
// navigation operations are no-ops.
func New(systems []System, defaultID string) (*State, error) {
	if err := Validate(systems); err != nil {
		return nil, err
	}

	s := &State{
		systems: append([]System(nil), systems...),
		index:   make(map[string]int, len(systems)),
	}
	for i, sys := range s.systems {
		s.index[sys.ID] = i
	}

	switch {
	case defaultID != "":
		if _, ok := s.index[defaultID]; !ok {
			return nil, fmt.Errorf("default system %q: %w", defaultID, ErrInvalidSelection)
		}
		s.activeID = defaultID
	case len(s.systems) > 0:
		s.activeID = s.systems[0].ID
	}
	return s, nil
}

// Validate reports whether systems can form a ring: every id non-empty and unique.
func Validate(systems []System) error {
	seen := make(map[string]struct{}, len(systems))
	for i, sys := range systems {
		if sys.ID == "" {
			return fmt.Errorf("system %d: %w", i, ErrEmptyID)
		}
		if _, dup := seen[sys.ID]; dup {
			return fmt.Errorf("system %q: %w", sys.ID, ErrDuplicateID)
		}
		seen[sys.ID] = struct{}{}
	}
	return nil
}

// Len returns the number of systems on the ring.
func (s *State) Len() int {
	return len(s.systems)
}

// Systems returns a copy of the ring in order.
func (s *State) Systems() []System {
	return append([]System(nil), s.systems...)
}

// System returns the system at index i.
func (s *State) System(i int) (System, bool) {
	if i < 0 || i >= len(s.systems) {
		return System{}, false
	}
	return s.systems[i], true
}

// IndexOf returns the ring index of id, or -1.
func (s *State) IndexOf(id string) int {
	if i, ok := s.index[id]; ok {
		return i
	}
	return -1
}

// ActiveID returns the focused system id, or "" when the ring is empty.
func (s *State) ActiveID() string {
	return s.activeID
}

// ActiveIndex returns the ring index of the focused system, or -1 when the ring is empty.
func (s *State) ActiveIndex() int {
	return s.IndexOf(s.activeID)
}

// Active returns the focused system.
func (s *State) Active() (System, bool) {
	return s.System(s.ActiveIndex())
}

// RotationOffset returns the ring rotation in radians.
func (s *State) RotationOffset() float64 {
	return s.rotation
}

// AngleStep returns the angle between neighbouring ring slots.
func (s *State) AngleStep() float64 {
	return AngleStep(len(s.systems))
}

// SelectNext focuses the following system, wrapping at the end of the ring.
func (s *State) SelectNext() {
	s.step(1)
}

// SelectPrevious focuses the preceding system, wrapping at the start of the ring.
func (s *State) SelectPrevious() {
	s.step(-1)
}

func (s *State) step(delta int) {
	n := len(s.systems)
	if n == 0 {
		return
	}
	i := s.ActiveIndex()
	s.activeID = s.systems[wrap(i+delta, n)].ID
}

// SelectByID focuses id. Unknown ids leave the state untouched.
func (s *State) SelectByID(id string) error {
	if _, ok := s.index[id]; !ok {
		return fmt.Errorf("select %q: %w", id, ErrInvalidSelection)
	}
	s.activeID = id
	return nil
}

// OnGestureEnd applies a finished horizontal gesture. Travel below thresholdPx
// is ignored; otherwise a rightward swipe focuses the previous system and a
// leftward swipe the next one, one step regardless of distance. It reports
// whether the focus moved.
func (s *State) OnGestureEnd(deltaX, thresholdPx float64) bool {
	if len(s.systems) == 0 || math.Abs(deltaX) < thresholdPx {
		return false
	}
	before := s.activeID
	if deltaX > 0 {
		s.SelectPrevious()
	} else {
		s.SelectNext()
	}
	return s.activeID != before
}

// SetRotation sets the ring rotation while a drag is in progress.
func (s *State) SetRotation(radians float64) {
	if math.IsNaN(radians) || math.IsInf(radians, 0) {
		return
	}
	s.rotation = radians
}

// SnapToNearest rounds the rotation to the closest ring slot (halves away
// from zero) and focuses the system in that slot. The rotation keeps its
// winding so an animated ring does not jump a full turn.
func (s *State) SnapToNearest() {
	n := len(s.systems)
	if n == 0 {
		return
	}
	step := AngleStep(n)
	k := math.Round(s.rotation / step)
	s.rotation = k * step
	s.activeID = s.systems[wrap(int(k), n)].ID
}

// RotateTo turns the ring so id sits in its home slot and focuses it.
func (s *State) RotateTo(id string) error {
	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("rotate to %q: %w", id, ErrInvalidSelection)
	}
	s.rotation = float64(i) * s.AngleStep()
	s.activeID = id
	return nil
}

// AngleStep returns 2π/n, or 0 for an empty ring.
func AngleStep(n int) float64 {
	if n <= 0 {
		return 0
	}
	return 2 * math.Pi / float64(n)
}

// wrap maps i into [0, n).
func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
