// SPDX-License-Identifier: Unlicense OR MIT

// Package sim implements the bouncing-box simulation behind the widget
// spam demo: axis-aligned boxes moving inside a rectangular container,
// reflected elastically at its edges.
package sim

import (
	"image/color"
	"math/rand"

	"gioui.org/f32"
)

// TickRate is the nominal simulation rate in ticks per second.
// Velocities are expressed in pixels per tick.
const TickRate = 60

// An Entity is one moving box.
type Entity struct {
	Pos   f32.Point
	Vel   f32.Point
	Size  f32.Point
	Color color.RGBA
}

// A Space holds the container bounds and the entities moving inside them.
// The zero value is an empty space.
type Space struct {
	Bounds   f32.Point
	Entities []*Entity
}

// Spawn adds n entities with randomized size, position, velocity and
// color. Positions are uniform over [0, bounds-size], so new entities
// start fully inside the container. Velocity components are uniform in
// (-1, 1). The process-wide random source is used, unseeded.
func (s *Space) Spawn(n int) {
	for i := 0; i < n; i++ {
		size := f32.Point{
			X: 20 * (rand.Float32() + 1),
			Y: 20 * (rand.Float32() + 1),
		}
		s.Entities = append(s.Entities, &Entity{
			Pos: f32.Point{
				X: randUpto(s.Bounds.X - size.X),
				Y: randUpto(s.Bounds.Y - size.Y),
			},
			Vel: f32.Point{
				X: 2 * (0.5 - rand.Float32()),
				Y: 2 * (0.5 - rand.Float32()),
			},
			Size: size,
			Color: color.RGBA{
				R: uint8(rand.Intn(256)),
				G: uint8(rand.Intn(256)),
				B: uint8(rand.Intn(256)),
				A: 0xff,
			},
		})
	}
}

func randUpto(max float32) float32 {
	if max <= 0 {
		return 0
	}
	return rand.Float32() * max
}

// Step advances the simulation by one tick. Every entity moves by its
// velocity; then, per axis independently, the velocity component is
// negated if the entity's leading edge passed the far bound or its
// trailing edge passed zero. There is no clamping and no entity-entity
// collision, so update order does not matter.
func (s *Space) Step() {
	for _, e := range s.Entities {
		e.Pos = e.Pos.Add(e.Vel)
		if e.Pos.X < 0 || e.Pos.X+e.Size.X > s.Bounds.X {
			e.Vel.X = -e.Vel.X
		}
		if e.Pos.Y < 0 || e.Pos.Y+e.Size.Y > s.Bounds.Y {
			e.Vel.Y = -e.Vel.Y
		}
	}
}

// Remove deletes e from the space. Removing an entity that is not
// present is a no-op.
func (s *Space) Remove(e *Entity) {
	for i, x := range s.Entities {
		if x == e {
			s.Entities = append(s.Entities[:i], s.Entities[i+1:]...)
			return
		}
	}
}

// Clear removes every entity.
func (s *Space) Clear() {
	s.Entities = nil
}
