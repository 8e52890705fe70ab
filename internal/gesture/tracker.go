// Package gesture turns raw pointer events into finished horizontal gestures.
//
// At most one gesture is tracked at a time. A Down while a gesture is live
// restarts tracking from the new point. Up and Cancel finalize the gesture
// the same way, and Move events that arrive after finalization are dropped,
// so the reported DeltaX always reflects exactly the moves of one gesture.
package gesture

// CellWidthPx approximates the pixel width of one terminal column.
const CellWidthPx = 8

// Kind identifies a pointer event.
type Kind uint8

const (
	Down Kind = iota
	Move
	Up
	Cancel
)

func (k Kind) String() string {
	switch k {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	case Cancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Event is a pointer event in pixels.
type Event struct {
	Kind Kind
	X, Y float64
}

// Result describes what an event did to the tracker.
type Result struct {
	Started bool
	Ended   bool
	DeltaX  float64 // net horizontal travel, valid when Ended
}

// Tracker follows a single pointer gesture.
type Tracker struct {
	dragging bool
	startX   float64
	lastX    float64
}

// Handle feeds one event to the tracker.
func (t *Tracker) Handle(ev Event) Result {
	switch ev.Kind {
	case Down:
		t.dragging = true
		t.startX = ev.X
		t.lastX = ev.X
		return Result{Started: true}
	case Move:
		if t.dragging {
			t.lastX = ev.X
		}
	case Up, Cancel:
		if !t.dragging {
			return Result{}
		}
		t.dragging = false
		return Result{Ended: true, DeltaX: t.lastX - t.startX}
	}
	return Result{}
}

// Dragging reports whether a gesture is live.
func (t *Tracker) Dragging() bool {
	return t.dragging
}

// Delta returns the horizontal travel of the live gesture so far.
func (t *Tracker) Delta() float64 {
	if !t.dragging {
		return 0
	}
	return t.lastX - t.startX
}

// Reset drops any live gesture without reporting it.
func (t *Tracker) Reset() {
	*t = Tracker{}
}

// CellsToPx converts a terminal column to pixels.
func CellsToPx(col int) float64 {
	return float64(col * CellWidthPx)
}
