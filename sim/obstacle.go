package sim

import "github.com/jakecoffman/cp"

// An Obstacle is anything a particle can be in contact with: a wall or
// another particle. Escape directions are only meaningful while the
// overlap holds.
type Obstacle interface {
	// Overlaps reports whether this obstacle and the given particle overlap.
	Overlaps(p *Particle) bool

	// EscapeDirection returns the unit vector that pushes the given
	// particle out of this obstacle. Panics if the particle does not
	// overlap this obstacle.
	EscapeDirection(p *Particle) cp.Vector
}
