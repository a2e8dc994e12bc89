package scenario

import (
	"fmt"
	"math/rand"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/boarding/layout"
	"github.com/milk9111/boarding/sim"
)

// Walls builds the complete static world for the scenario: airplane,
// jet bridge and waiting room.
func Walls(spec *Spec) []sim.Wall {
	a, j := spec.Airplane, spec.JetBridge
	airplaneWidth := layout.AirplaneWidth(a.Columns, a.CentralHallWidth, a.SeatWidth)

	walls := layout.Airplane(a.Rows, a.Columns, a.CentralHallWidth, a.FrontHallLength,
		a.SeatWidth, a.SeatSeparation, a.DoorLength)
	walls = append(walls, layout.JetBridge(j.Width, j.Length, airplaneWidth)...)

	sep := spawnSeparation(spec)
	roomWidth := float64(spec.Boarding.Batch+1) * 2 * sep
	roomLength := startingY(spec) +
		float64(2*a.Rows*a.Columns)*2*sep/float64(spec.Boarding.Batch)
	walls = append(walls, layout.WaitingRoom(roomWidth, roomLength, airplaneWidth, j.Width, j.Length)...)
	return walls
}

// Population creates every passenger: a goal per seat in strategy
// order, spawned on a staggered grid in the waiting room, at full
// radius with zero velocity.
func Population(spec *Spec, rng *rand.Rand) ([]*sim.Particle, error) {
	seats, err := SeatOrder(spec, rng)
	if err != nil {
		return nil, err
	}

	a, j, p := spec.Airplane, spec.JetBridge, spec.Particle
	airplaneWidth := layout.AirplaneWidth(a.Columns, a.CentralHallWidth, a.SeatWidth)
	sep := spawnSeparation(spec)
	startX := 2*sep + airplaneWidth/2 + p.MaxRadius + j.Length
	startY := startingY(spec)
	batch := spec.Boarding.Batch

	particles := make([]*sim.Particle, 0, len(seats))
	for idx, seat := range seats {
		callUp := idx / batch
		position := cp.Vector{
			X: startX + 2*sep*float64(idx%batch),
			Y: startY + float64(callUp)*2*sep,
		}
		goal, err := sim.NewGoal(sim.GoalSpec{
			FrontHallLength:  a.FrontHallLength,
			CentralHallWidth: a.CentralHallWidth,
			DoorLength:       a.DoorLength,
			SeatWidth:        a.SeatWidth,
			SeatSeparation:   a.SeatSeparation,
			JetBridgeWidth:   j.Width,
			Columns:          a.Columns,
			Margin:           p.MinRadius,
			SpawnX:           position.X,
			TargetRow:        seat.Row,
			TargetColumn:     seat.Column,
			TargetSide:       seat.Side,
		}, rng)
		if err != nil {
			return nil, fmt.Errorf("scenario: goal for seat %+v: %w", seat, err)
		}
		particle, err := sim.NewParticle(p.MaxRadius, position, cp.Vector{}, goal,
			p.MinRadius, p.MaxRadius, p.Tao, p.Beta, p.MaxSpeed, callUp)
		if err != nil {
			return nil, fmt.Errorf("scenario: particle for seat %+v: %w", seat, err)
		}
		particles = append(particles, particle)
	}
	return particles, nil
}

// SceneConfig translates the scenario into the core's orchestration
// parameters, including the call-up hold policy.
func SceneConfig(spec *Spec, rng *rand.Rand) sim.SceneConfig {
	cfg := sim.SceneConfig{
		TimeStep:        spec.Simulation.TimeStep,
		MaxDuration:     spec.Simulation.MaxDuration,
		GracePeriod:     spec.Simulation.GracePeriod,
		StowMinTime:     spec.Boarding.StowMinTime,
		StowMaxTime:     spec.Boarding.StowMaxTime,
		StowProbability: spec.Boarding.StowProbability,
		Rand:            rng,
	}
	if interval := spec.Boarding.CallUpInterval; interval > 0 {
		cfg.Holds = append(cfg.Holds, CallUpHold(interval))
	}
	return cfg
}

// CallUpHold keeps a passenger in the waiting room until its batch has
// been called: batch k is released at k*interval.
func CallUpHold(interval float64) sim.Hold {
	return func(p *sim.Particle, elapsed float64) bool {
		return elapsed < float64(p.CallUp())*interval
	}
}

// spawnSeparation is the pitch of the waiting room grid; generous so
// the queue does not start congested.
func spawnSeparation(spec *Spec) float64 {
	return 5 * spec.Particle.MaxRadius
}

// startingY is where the first batch row sits in the waiting room.
func startingY(spec *Spec) float64 {
	return spec.JetBridge.Width + 3*spawnSeparation(spec)
}
