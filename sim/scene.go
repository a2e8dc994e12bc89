package sim

import (
	"fmt"
	"math/rand"
)

// A Hold decides whether a particle must wait this step instead of
// moving. Held particles still occupy space as obstacles. Call-up
// batching plugs in here; the dynamics themselves never change.
type Hold func(p *Particle, elapsed float64) bool

// SceneConfig carries the per-run parameters of the orchestration loop.
type SceneConfig struct {
	TimeStep    float64
	MaxDuration float64

	// GracePeriod keeps the clock running after every particle is
	// seated, so trailing frames show the settled crowd.
	GracePeriod float64

	// StowMinTime and StowMaxTime bound the uniform random luggage-stow
	// hold applied when a particle first reaches its seat row. Both
	// zero disables stowing.
	StowMinTime float64
	StowMaxTime float64

	// StowProbability gates stowing per particle; 1 means everyone
	// stows.
	StowProbability float64

	// Holds are extra per-particle wait predicates, evaluated before
	// each particle is prepared.
	Holds []Hold

	// Rand drives stow timing. Required when stowing is enabled.
	Rand *rand.Rand
}

// Scene owns the particles and walls of one run and drives the
// two-phase step: gather contacts and prepare every movable particle
// against the frozen current state, then commit every move at once,
// then advance the clock. Single-threaded by design.
type Scene struct {
	walls     []Wall
	particles []*Particle
	cfg       SceneConfig

	elapsed  float64
	seatedAt float64 // time all particles were first seated; -1 before

	stowLeft    map[*Particle]float64
	stowStarted map[*Particle]bool
}

// NewScene validates the configuration and assembles a scene.
func NewScene(walls []Wall, particles []*Particle, cfg SceneConfig) (*Scene, error) {
	switch {
	case cfg.TimeStep <= 0:
		return nil, fmt.Errorf("sim: time step must be positive, got %g", cfg.TimeStep)
	case cfg.MaxDuration <= 0:
		return nil, fmt.Errorf("sim: max duration must be positive, got %g", cfg.MaxDuration)
	case cfg.GracePeriod < 0:
		return nil, fmt.Errorf("sim: grace period must not be negative, got %g", cfg.GracePeriod)
	case cfg.StowMinTime < 0 || cfg.StowMaxTime < cfg.StowMinTime:
		return nil, fmt.Errorf("sim: stow time bounds [%g, %g] are inverted", cfg.StowMinTime, cfg.StowMaxTime)
	case cfg.StowProbability < 0 || cfg.StowProbability > 1:
		return nil, fmt.Errorf("sim: stow probability %g outside [0, 1]", cfg.StowProbability)
	case cfg.StowMaxTime > 0 && cfg.Rand == nil:
		return nil, fmt.Errorf("sim: stowing needs a random source")
	}
	return &Scene{
		walls:       walls,
		particles:   particles,
		cfg:         cfg,
		seatedAt:    -1,
		stowLeft:    make(map[*Particle]float64),
		stowStarted: make(map[*Particle]bool),
	}, nil
}

// Elapsed returns the simulation clock.
func (s *Scene) Elapsed() float64 { return s.elapsed }

// TimeStep returns the fixed step duration.
func (s *Scene) TimeStep() float64 { return s.cfg.TimeStep }

// Particles returns the live particle slice; callers must treat it as
// read-only.
func (s *Scene) Particles() []*Particle { return s.particles }

// Walls returns the static wall slice; callers must treat it as
// read-only.
func (s *Scene) Walls() []Wall { return s.walls }

// Step advances the simulation by one time step.
func (s *Scene) Step() {
	movable := s.movable()

	// Prepare everything first: contact queries must observe the
	// pre-step snapshot of every particle.
	for _, p := range movable {
		p.PrepareMove(s.contacts(p), s.cfg.TimeStep)
	}
	for _, p := range movable {
		p.Move(s.cfg.TimeStep)
	}

	s.updateStowing()

	s.elapsed += s.cfg.TimeStep
	if s.seatedAt < 0 && s.allSeated() {
		s.seatedAt = s.elapsed
	}
}

// ShouldStop reports whether the driving loop should end the run:
// either the configured duration ran out, or everyone is seated and the
// grace period has passed.
func (s *Scene) ShouldStop() bool {
	if s.elapsed >= s.cfg.MaxDuration {
		return true
	}
	return s.seatedAt >= 0 && s.elapsed-s.seatedAt >= s.cfg.GracePeriod
}

// contacts gathers every obstacle currently overlapping p: all walls
// plus all other particles. No spatial index; crowd sizes stay in the
// low hundreds.
func (s *Scene) contacts(p *Particle) []Obstacle {
	var inContact []Obstacle
	for _, w := range s.walls {
		if w.Overlaps(p) {
			inContact = append(inContact, w)
		}
	}
	for _, other := range s.particles {
		if other != p && other.Overlaps(p) {
			inContact = append(inContact, other)
		}
	}
	return inContact
}

// movable filters out particles held by stow timers or hold policies.
func (s *Scene) movable() []*Particle {
	movable := make([]*Particle, 0, len(s.particles))
	for _, p := range s.particles {
		if s.stowLeft[p] > 0 {
			continue
		}
		held := false
		for _, hold := range s.cfg.Holds {
			if hold(p, s.elapsed) {
				held = true
				break
			}
		}
		if !held {
			movable = append(movable, p)
		}
	}
	return movable
}

// updateStowing runs down active stow timers and starts one for every
// particle that has just reached its seat row.
func (s *Scene) updateStowing() {
	if s.cfg.StowMaxTime <= 0 {
		return
	}
	for p, left := range s.stowLeft {
		if left > 0 {
			s.stowLeft[p] = left - s.cfg.TimeStep
		}
	}
	for _, p := range s.particles {
		if s.stowStarted[p] || !p.Goal().OnLastTarget() {
			continue
		}
		s.stowStarted[p] = true
		if s.cfg.Rand.Float64() >= s.cfg.StowProbability {
			continue
		}
		s.stowLeft[p] = s.cfg.StowMinTime + s.cfg.Rand.Float64()*(s.cfg.StowMaxTime-s.cfg.StowMinTime)
	}
}

func (s *Scene) allSeated() bool {
	for _, p := range s.particles {
		if !p.Seated() {
			return false
		}
	}
	return true
}
