package carousel

import "math"

// Ring geometry, in scene units.
const (
	RingRadius    = 1.5
	FocusDistance = 1.8
	BandCount     = 3
	BandBase      = 0.3
	BandSpacing   = 0.4
)

// Vec3 is a point in scene space. X grows to the right, Y up and Z toward the viewer.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Len returns the Euclidean length of a.
func (a Vec3) Len() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
}

// Layout places the cards of a ring with Count systems.
type Layout struct {
	Count int
}

// Position returns where the card at index sits. The focused card is pulled
// out of the ring to a fixed spot in front of the viewer.
func (l Layout) Position(index, activeIndex int, rotationOffset, ringRadius float64) Vec3 {
	if index == activeIndex {
		return Vec3{0, 0, FocusDistance}
	}
	angle := float64(index)*AngleStep(l.Count) + rotationOffset
	return Vec3{
		X: math.Cos(angle) * ringRadius,
		Y: VerticalBand(index),
		Z: math.Sin(angle) * ringRadius,
	}
}

// VerticalBand staggers neighbouring cards over BandCount heights.
func VerticalBand(index int) float64 {
	return BandBase + float64(wrap(index, BandCount))*BandSpacing - BandSpacing
}

// LayoutPosition returns the layout position of the card at index for the
// current state.
func (s *State) LayoutPosition(index int) Vec3 {
	return Layout{Count: len(s.systems)}.Position(index, s.ActiveIndex(), s.rotation, RingRadius)
}

// Positions returns the layout position of every card, in ring order.
func (s *State) Positions() []Vec3 {
	l := Layout{Count: len(s.systems)}
	active := s.ActiveIndex()
	out := make([]Vec3, len(s.systems))
	for i := range out {
		out[i] = l.Position(i, active, s.rotation, RingRadius)
	}
	return out
}
