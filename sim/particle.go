package sim

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

// A Particle is a disk-shaped agent with a dynamic radius: its personal
// space contracts instantly under contact and relaxes back while free,
// and its speed scales with how much of that space it currently has
// (contractile-particle model).
//
// Updates are two-phase: PrepareMove computes the next radius and
// velocity from a frozen view of the world, Move commits them. All
// particles of a step must be prepared before any of them moves, so
// results never depend on iteration order.
type Particle struct {
	radius   float64
	position cp.Vector
	velocity cp.Vector
	goal     *Goal

	minRadius float64
	maxRadius float64
	tao       float64
	beta      float64
	maxSpeed  float64

	// callUp is the batch calling number assigned at population setup;
	// the scene's hold policies read it, the dynamics ignore it.
	callUp int

	stagedRadius   float64
	stagedVelocity cp.Vector
	prepared       bool
}

// NewParticle validates and creates an agent. A validation failure
// means the scenario is misconfigured and is not recoverable.
func NewParticle(radius float64, position, velocity cp.Vector, goal *Goal,
	minRadius, maxRadius, tao, beta, maxSpeed float64, callUp int) (*Particle, error) {
	switch {
	case radius <= 0 || minRadius <= 0 || maxRadius <= 0:
		return nil, fmt.Errorf("sim: radii must be positive (radius=%g min=%g max=%g)", radius, minRadius, maxRadius)
	case minRadius >= maxRadius:
		return nil, fmt.Errorf("sim: min radius %g must be below max radius %g", minRadius, maxRadius)
	case radius < minRadius || radius > maxRadius:
		return nil, fmt.Errorf("sim: radius %g outside [%g, %g]", radius, minRadius, maxRadius)
	case goal == nil:
		return nil, fmt.Errorf("sim: particle needs a goal")
	case tao <= 0:
		return nil, fmt.Errorf("sim: tao must be positive, got %g", tao)
	case beta <= 0:
		return nil, fmt.Errorf("sim: beta must be positive, got %g", beta)
	case maxSpeed <= 0:
		return nil, fmt.Errorf("sim: max speed must be positive, got %g", maxSpeed)
	}
	return &Particle{
		radius:    radius,
		position:  position,
		velocity:  velocity,
		goal:      goal,
		minRadius: minRadius,
		maxRadius: maxRadius,
		tao:       tao,
		beta:      beta,
		maxSpeed:  maxSpeed,
		callUp:    callUp,
	}, nil
}

// Radius returns the particle's current radius.
func (p *Particle) Radius() float64 { return p.radius }

// Position returns the particle's current position.
func (p *Particle) Position() cp.Vector { return p.position }

// Velocity returns the particle's current velocity.
func (p *Particle) Velocity() cp.Vector { return p.velocity }

// Goal returns the particle's route.
func (p *Particle) Goal() *Goal { return p.goal }

// CallUp returns the batch calling number assigned at setup.
func (p *Particle) CallUp() int { return p.callUp }

// Seated reports whether the particle's route is exhausted. Seated
// particles keep occupying space as obstacles.
func (p *Particle) Seated() bool { return p.goal.Reached() }

// PrepareMove stages the particle's next radius and velocity without
// mutating its observable state, so every other particle prepared in
// the same step still sees the pre-step snapshot.
//
// Free of contacts, the radius relaxes linearly toward the maximum with
// time constant tao and the particle heads for its current target at a
// speed coupled to how much it has re-expanded. Under contact the
// radius drops straight to the minimum and the particle escapes at full
// speed along the combined push of everything it overlaps.
func (p *Particle) PrepareMove(inContact []Obstacle, dt float64) {
	if len(inContact) == 0 {
		grown := p.radius + p.maxRadius/(p.tao/dt)
		if grown > p.maxRadius {
			grown = p.maxRadius
		}
		p.stagedRadius = grown
		speed := p.maxSpeed * math.Pow((grown-p.minRadius)/(p.maxRadius-p.minRadius), p.beta)
		direction := cp.Vector{}
		if target, ok := p.goal.Target(); ok {
			direction = target.Sub(p.position).Normalize()
		}
		p.stagedVelocity = direction.Mult(speed)
	} else {
		p.stagedRadius = p.minRadius
		escape := cp.Vector{}
		for _, obstacle := range inContact {
			escape = escape.Add(obstacle.EscapeDirection(p))
		}
		// A sum that cancels exactly normalizes to zero: the particle
		// stays put for this step.
		p.stagedVelocity = escape.Normalize().Mult(p.maxSpeed)
	}
	p.prepared = true
}

// Move commits the staged state, advances the position and notifies the
// goal so its state machine can react to the new position. Panics if
// the particle was not prepared this step; moving an unprepared
// particle would corrupt the simultaneous-update discipline.
func (p *Particle) Move(dt float64) {
	if !p.prepared {
		panic("sim: particle moved without being prepared; call PrepareMove before each Move")
	}
	p.radius = p.stagedRadius
	p.velocity = p.stagedVelocity
	p.position = p.position.Add(p.velocity.Mult(dt))
	p.goal.NotifyMove(p.position)
	p.prepared = false
	p.stagedRadius = 0
	p.stagedVelocity = cp.Vector{}
}

// Overlaps reports disk-disk overlap with another particle.
func (p *Particle) Overlaps(other *Particle) bool {
	return p.OverlapsDisk(other.position, other.radius)
}

// OverlapsDisk reports whether a disk at the given position with the
// given radius would overlap this particle. Population setup uses it to
// keep spawn positions apart.
func (p *Particle) OverlapsDisk(position cp.Vector, radius float64) bool {
	return p.radius+radius-p.position.Distance(position) > 0
}

// EscapeDirection returns the unit vector pushing the other particle
// away from this one. Panics if the two do not overlap.
func (p *Particle) EscapeDirection(other *Particle) cp.Vector {
	if !p.Overlaps(other) {
		panic("sim: escape direction requested for particles that do not overlap")
	}
	return other.position.Sub(p.position).Normalize()
}
