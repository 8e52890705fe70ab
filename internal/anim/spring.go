package anim

import (
	"github.com/charmbracelet/harmonica"
	"github.com/olivier-w/rope/internal/carousel"
)

// FPS is the frame rate card animation is stepped at.
const FPS = 60

// settleEps is how close, in scene units, a card must be to its target and
// how slow it must be moving before it counts as settled.
const settleEps = 1e-3

// SpringField eases a set of points toward their targets.
type SpringField struct {
	spring harmonica.Spring
	pos    []carousel.Vec3
	vel    []carousel.Vec3
	placed []bool
}

// NewSpringField creates a field stepped at fps.
func NewSpringField(fps int, frequency, damping float64) SpringField {
	return SpringField{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// Resize sets the number of points, dropping all state when it changes.
func (s *SpringField) Resize(n int) {
	if len(s.pos) == n {
		return
	}
	s.pos = make([]carousel.Vec3, n)
	s.vel = make([]carousel.Vec3, n)
	s.placed = make([]bool, n)
}

// Len returns the number of points.
func (s *SpringField) Len() int {
	return len(s.pos)
}

// Place puts point i at p with no velocity.
func (s *SpringField) Place(i int, p carousel.Vec3) {
	s.pos[i] = p
	s.vel[i] = carousel.Vec3{}
	s.placed[i] = true
}

// Placed reports whether point i has a position yet.
func (s *SpringField) Placed(i int) bool {
	return s.placed[i]
}

// Step advances point i one frame toward target. A point that has never been
// placed jumps straight to its target.
func (s *SpringField) Step(i int, target carousel.Vec3) carousel.Vec3 {
	if !s.placed[i] {
		s.Place(i, target)
		return target
	}
	p, v := s.pos[i], s.vel[i]
	p.X, v.X = s.spring.Update(p.X, v.X, target.X)
	p.Y, v.Y = s.spring.Update(p.Y, v.Y, target.Y)
	p.Z, v.Z = s.spring.Update(p.Z, v.Z, target.Z)
	s.pos[i], s.vel[i] = p, v
	return p
}

// At returns the current position of point i.
func (s *SpringField) At(i int) carousel.Vec3 {
	return s.pos[i]
}

// Settled reports whether point i is resting at target.
func (s *SpringField) Settled(i int, target carousel.Vec3) bool {
	if !s.placed[i] {
		return false
	}
	return s.pos[i].Sub(target).Len() < settleEps && s.vel[i].Len() < settleEps
}

// Snap moves point i onto target and stops it. Used once a point has settled
// so float residue never keeps a frame loop alive.
func (s *SpringField) Snap(i int, target carousel.Vec3) {
	s.Place(i, target)
}
