package sim

import (
	"fmt"
	"math/rand"

	"github.com/jakecoffman/cp"
)

// AirplaneSide tells which side of the central hall a seat is on. Its
// numeric value is the sign applied to every lateral target offset, so
// the same stage logic serves both sides.
type AirplaneSide int

const (
	SideLeft  AirplaneSide = -1
	SideRight AirplaneSide = 1
)

func (s AirplaneSide) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return fmt.Sprintf("AirplaneSide(%d)", int(s))
}

// GoalSpec carries the dimensional constants and the seat assignment a
// goal needs to compute every stage of the route.
type GoalSpec struct {
	FrontHallLength  float64
	CentralHallWidth float64
	DoorLength       float64
	SeatWidth        float64
	SeatSeparation   float64
	JetBridgeWidth   float64

	// Columns is the amount of seats per side on each row; needed to
	// know the lateral extent of a seat row.
	Columns int

	// Margin is the positional tolerance used by arrival predicates and
	// as the bound for random lateral jitter along the hall.
	Margin float64

	// SpawnX is the particle's starting x position; the first stage's
	// capture region is centered on it.
	SpawnX float64

	TargetRow    int
	TargetColumn int
	TargetSide   AirplaneSide
}

func (s GoalSpec) validate() error {
	switch {
	case s.FrontHallLength <= 0 || s.CentralHallWidth <= 0 || s.DoorLength <= 0 ||
		s.SeatWidth <= 0 || s.SeatSeparation <= 0 || s.JetBridgeWidth <= 0:
		return fmt.Errorf("sim: goal dimensions must all be positive: %+v", s)
	case s.Columns <= 0:
		return fmt.Errorf("sim: goal needs a positive seat column count, got %d", s.Columns)
	case s.Margin <= 0:
		return fmt.Errorf("sim: goal margin must be positive, got %g", s.Margin)
	case s.TargetRow < 0:
		return fmt.Errorf("sim: target row must not be negative, got %d", s.TargetRow)
	case s.TargetColumn < 0 || s.TargetColumn >= s.Columns:
		return fmt.Errorf("sim: target column %d outside [0, %d)", s.TargetColumn, s.Columns)
	case s.TargetSide != SideLeft && s.TargetSide != SideRight:
		return fmt.Errorf("sim: target side must be left or right, got %d", int(s.TargetSide))
	}
	return nil
}

// halfWidth is the lateral extent of the airplane from the hall axis to
// a side wall.
func (s GoalSpec) halfWidth() float64 {
	return s.CentralHallWidth/2 + float64(s.Columns)*s.SeatWidth
}

// rowBoundary is the y coordinate of the wall at the far edge of the
// given seat row.
func (s GoalSpec) rowBoundary(row int) float64 {
	return s.FrontHallLength + float64(row+1)*s.SeatSeparation
}

// seatCenter is the exact position of the assigned seat.
func (s GoalSpec) seatCenter() cp.Vector {
	x := float64(s.TargetSide) * (s.CentralHallWidth/2 + (float64(s.TargetColumn)+0.5)*s.SeatWidth)
	y := s.FrontHallLength + float64(s.TargetRow)*s.SeatSeparation + s.SeatSeparation/2
	return cp.Vector{X: x, Y: y}
}

// stageKind enumerates the legs of the route. Stages advance strictly
// forward; the last one is absorbing.
type stageKind int

const (
	stageApproachJetBridge stageKind = iota
	stageReachDoor
	stageFrontHall
	stageMiddle
	stageLastMiddle
	stageFinal
	stageReached
)

func (k stageKind) String() string {
	switch k {
	case stageApproachJetBridge:
		return "approach-jet-bridge"
	case stageReachDoor:
		return "reach-door"
	case stageFrontHall:
		return "front-hall"
	case stageMiddle:
		return "middle"
	case stageLastMiddle:
		return "last-middle"
	case stageFinal:
		return "final"
	case stageReached:
		return "reached"
	}
	return fmt.Sprintf("stageKind(%d)", int(k))
}

// stage is one leg of the route: its kind, its precomputed target (any
// random jitter is sampled once, on entry) and the data its arrival
// predicate needs. Region stages use region, line-crossing stages use
// crossY, the final stage uses point distance to target.
type stage struct {
	kind   stageKind
	row    int
	target cp.Vector
	region cp.BB
	crossY float64
}

// A Goal sequences the waypoints that route one particle from the
// waiting area to its assigned seat. Each particle owns exactly one
// Goal; the stage chain is fixed at construction and only the current
// stage advances, monotonically, as arrival predicates fire.
type Goal struct {
	spec    GoalSpec
	rng     *rand.Rand
	current stage
	inside  bool
}

// NewGoal builds the goal for the given seat assignment. The rng drives
// the per-stage lateral jitter along the hall and must not be nil.
func NewGoal(spec GoalSpec, rng *rand.Rand) (*Goal, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("sim: goal needs a random source")
	}
	g := &Goal{spec: spec, rng: rng}
	g.current = g.approachJetBridgeStage()
	return g, nil
}

// Target returns the current stage's target position. The second value
// is always true: the terminal stage keeps returning the seat center.
func (g *Goal) Target() (cp.Vector, bool) {
	return g.current.target, true
}

// NotifyMove evaluates the current stage's arrival predicate against
// the given position and, if it fires, advances to the next stage.
// Exactly one transition can happen per call. The terminal stage
// ignores further notifications.
func (g *Goal) NotifyMove(position cp.Vector) {
	if !g.arrived(position) {
		return
	}
	if g.current.kind == stageLastMiddle {
		g.inside = true
	}
	g.current = g.nextStage()
}

// Reached reports whether the route is exhausted (the particle is
// considered seated).
func (g *Goal) Reached() bool {
	return g.current.kind == stageReached
}

// Inside reports whether the particle has entered its seat-row region.
// It stays true from that point on.
func (g *Goal) Inside() bool {
	return g.inside
}

// OnLastTarget reports whether the current leg is the precise seat
// approach. The scene uses it to trigger luggage stowing.
func (g *Goal) OnLastTarget() bool {
	return g.current.kind == stageFinal
}

func (g *Goal) arrived(position cp.Vector) bool {
	switch g.current.kind {
	case stageApproachJetBridge, stageReachDoor, stageLastMiddle:
		return g.current.region.ContainsVect(position)
	case stageFrontHall, stageMiddle:
		return position.Y > g.current.crossY+g.spec.Margin
	case stageFinal:
		return position.Distance(g.current.target) < g.spec.Margin
	}
	return false
}

// nextStage computes the successor of the current stage. The chain is
// linear with two express edges: front hall skips straight to the seat
// row when the target row is 0, and the middle chain skips to the seat
// row when the next row would be the target row.
func (g *Goal) nextStage() stage {
	spec := g.spec
	switch g.current.kind {
	case stageApproachJetBridge:
		return g.reachDoorStage()
	case stageFrontHall:
		if spec.TargetRow == 0 {
			return g.lastMiddleStage()
		}
		return g.middleStage(0)
	case stageReachDoor:
		return g.frontHallStage()
	case stageMiddle:
		if g.current.row+1 == spec.TargetRow {
			return g.lastMiddleStage()
		}
		return g.middleStage(g.current.row + 1)
	case stageLastMiddle:
		return g.finalStage()
	case stageFinal:
		return g.reachedStage()
	}
	return g.current // absorbing
}

// approachJetBridgeStage targets the mouth of the jet bridge: a capture
// rectangle centered on the spawn x position spanning the jet bridge
// width in y, inset by the margin.
func (g *Goal) approachJetBridgeStage() stage {
	spec := g.spec
	region := cp.BB{
		L: spec.SpawnX - spec.Margin,
		B: spec.Margin,
		R: spec.SpawnX + spec.Margin,
		T: spec.JetBridgeWidth - spec.Margin,
	}
	return stage{kind: stageApproachJetBridge, target: region.Center(), region: region}
}

// reachDoorStage targets the hall mouth just past the central hall's
// half width, within the door's y span.
func (g *Goal) reachDoorStage() stage {
	spec := g.spec
	region := cp.BB{
		L: spec.CentralHallWidth/2 - spec.Margin,
		B: spec.Margin,
		R: spec.CentralHallWidth/2 + spec.Margin,
		T: spec.DoorLength - spec.Margin,
	}
	return stage{kind: stageReachDoor, target: region.Center(), region: region}
}

// frontHallStage heads down the hall to the front of the seating area.
// Arrival is a line crossing: the particle only has to get past the
// boundary, not hit a point.
func (g *Goal) frontHallStage() stage {
	return stage{
		kind:   stageFrontHall,
		target: cp.Vector{X: g.hallJitter(), Y: g.spec.DoorLength},
		crossY: g.spec.DoorLength,
	}
}

// middleStage advances past one seat row, again with line-crossing
// arrival and fresh lateral jitter.
func (g *Goal) middleStage(row int) stage {
	boundary := g.spec.rowBoundary(row)
	return stage{
		kind:   stageMiddle,
		row:    row,
		target: cp.Vector{X: g.hallJitter(), Y: boundary},
		crossY: boundary,
	}
}

// lastMiddleStage targets the target row itself: the full half width of
// the assigned side over exactly the row's y span.
func (g *Goal) lastMiddleStage() stage {
	spec := g.spec
	yLow := spec.FrontHallLength + float64(spec.TargetRow)*spec.SeatSeparation
	region := cp.BB{B: yLow, T: yLow + spec.SeatSeparation}
	if spec.TargetSide == SideLeft {
		region.L, region.R = -spec.halfWidth(), 0
	} else {
		region.L, region.R = 0, spec.halfWidth()
	}
	return stage{kind: stageLastMiddle, target: region.Center(), region: region}
}

// finalStage targets the exact seat center; arrival needs point
// precision because overshooting a seat has nowhere to recover to.
func (g *Goal) finalStage() stage {
	return stage{kind: stageFinal, target: g.spec.seatCenter()}
}

func (g *Goal) reachedStage() stage {
	return stage{kind: stageReached, target: g.spec.seatCenter()}
}

// hallJitter samples a lateral offset within the central hall, signed
// toward the particle's seat side. Sampled once per stage entry.
func (g *Goal) hallJitter() float64 {
	return float64(g.spec.TargetSide) * g.rng.Float64() * (g.spec.CentralHallWidth/2 - g.spec.Margin)
}
