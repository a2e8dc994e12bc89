package sim

import "github.com/jakecoffman/cp"

// A Wall is a static, infinitely rigid line segment. Walls never move;
// they are built once by the layout package and read by every particle
// on every step.
type Wall struct {
	InitialPoint cp.Vector
	FinalPoint   cp.Vector
}

// NewWall creates a wall between the two given points.
func NewWall(initial, final cp.Vector) Wall {
	return Wall{InitialPoint: initial, FinalPoint: final}
}

// Overlaps reports whether the particle's disk overlaps this segment.
// The particle's center is projected onto the segment's direction
// vector; a particle that overlaps the infinite line but whose
// projection falls outside the segment's extent does not count as
// colliding with this wall. Boundary comparisons at the endpoints are
// strict.
func (w Wall) Overlaps(p *Particle) bool {
	projection := w.projection(p.Position())
	direction := w.direction()
	argCosine := projection.Dot(direction) / (projection.Length() * direction.Length())
	return !(projection.Length() > direction.Length()) &&
		argCosine != -1 &&
		p.Radius()-projection.Add(w.InitialPoint).Distance(p.Position()) > 0
}

// EscapeDirection returns the unit vector from the particle's projected
// point on the segment toward the particle's center. Panics if the
// particle does not overlap this wall.
func (w Wall) EscapeDirection(p *Particle) cp.Vector {
	if !w.Overlaps(p) {
		panic("sim: escape direction requested for a particle that does not overlap the wall")
	}
	return p.Position().Sub(w.projection(p.Position()).Add(w.InitialPoint)).Normalize()
}

func (w Wall) direction() cp.Vector {
	return w.FinalPoint.Sub(w.InitialPoint)
}

// projection is the unclamped projection of pos onto the segment's
// direction vector, relative to the initial point. Dividing by the
// squared norm avoids a separate normalize step. The result may be
// longer than the segment or point against it.
func (w Wall) projection(pos cp.Vector) cp.Vector {
	direction := w.direction()
	fromInitial := pos.Sub(w.InitialPoint)
	return direction.Mult(fromInitial.Dot(direction)).Mult(1 / direction.LengthSq())
}
