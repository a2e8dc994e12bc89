package sim

import "github.com/jakecoffman/cp"

// ParticleState is a read-only copy of one particle's observable state.
type ParticleState struct {
	Radius   float64
	Position cp.Vector
	Velocity cp.Vector
	Seated   bool
}

// WallState is a read-only copy of one wall's endpoints.
type WallState struct {
	InitialPoint cp.Vector
	FinalPoint   cp.Vector
}

// A Frame captures everything an output writer or viewer needs about
// one step, with no reference back into the live scene.
type Frame struct {
	Elapsed   float64
	TimeStep  float64
	Particles []ParticleState
	Walls     []WallState
}

// Snapshot copies the scene's current state into a Frame.
func (s *Scene) Snapshot() Frame {
	frame := Frame{
		Elapsed:   s.elapsed,
		TimeStep:  s.cfg.TimeStep,
		Particles: make([]ParticleState, len(s.particles)),
		Walls:     make([]WallState, len(s.walls)),
	}
	for i, p := range s.particles {
		frame.Particles[i] = ParticleState{
			Radius:   p.Radius(),
			Position: p.Position(),
			Velocity: p.Velocity(),
			Seated:   p.Seated(),
		}
	}
	for i, w := range s.walls {
		frame.Walls[i] = WallState{InitialPoint: w.InitialPoint, FinalPoint: w.FinalPoint}
	}
	return frame
}
