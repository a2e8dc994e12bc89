package scenario

import (
	"fmt"
	"math/rand"

	"github.com/milk9111/boarding/sim"
)

// A Seat names one assignable seat.
type Seat struct {
	Row    int
	Column int
	Side   sim.AirplaneSide
}

const (
	strategyBackToFront = "back_to_front"
	strategyFrontToBack = "front_to_back"
	strategyOutsideIn   = "outside_in"
	strategyInsideOut   = "inside_out"
	strategyRandom      = "random"
	strategyScript      = "script"
)

type orderFunc func(spec *Spec, rng *rand.Rand) ([]Seat, error)

func strategyFor(name string) (orderFunc, error) {
	switch name {
	case strategyBackToFront:
		return backToFrontOrder, nil
	case strategyFrontToBack:
		return frontToBackOrder, nil
	case strategyOutsideIn:
		return outsideInOrder, nil
	case strategyInsideOut:
		return insideOutOrder, nil
	case strategyRandom:
		return randomOrder, nil
	case strategyScript:
		return scriptedOrder, nil
	}
	return nil, fmt.Errorf("scenario: unknown boarding strategy %q", name)
}

// SeatOrder computes the boarding order for the scenario: the i-th seat
// belongs to the i-th passenger to be called up.
func SeatOrder(spec *Spec, rng *rand.Rand) ([]Seat, error) {
	order, err := strategyFor(spec.Boarding.Strategy)
	if err != nil {
		return nil, err
	}
	return order(spec, rng)
}

// bothSides appends the left and right seat for one (row, column).
func bothSides(seats []Seat, row, column int) []Seat {
	return append(seats,
		Seat{Row: row, Column: column, Side: sim.SideLeft},
		Seat{Row: row, Column: column, Side: sim.SideRight},
	)
}

// backToFrontOrder fills rows rear first, windows first within a row.
func backToFrontOrder(spec *Spec, _ *rand.Rand) ([]Seat, error) {
	var seats []Seat
	for row := spec.Airplane.Rows - 1; row >= 0; row-- {
		for column := spec.Airplane.Columns - 1; column >= 0; column-- {
			seats = bothSides(seats, row, column)
		}
	}
	return seats, nil
}

// frontToBackOrder fills rows front first, windows first within a row.
func frontToBackOrder(spec *Spec, _ *rand.Rand) ([]Seat, error) {
	var seats []Seat
	for row := 0; row < spec.Airplane.Rows; row++ {
		for column := spec.Airplane.Columns - 1; column >= 0; column-- {
			seats = bothSides(seats, row, column)
		}
	}
	return seats, nil
}

// outsideInOrder boards all window seats first, working inward column
// by column, rear to front within a column.
func outsideInOrder(spec *Spec, _ *rand.Rand) ([]Seat, error) {
	var seats []Seat
	for column := spec.Airplane.Columns - 1; column >= 0; column-- {
		for row := spec.Airplane.Rows - 1; row >= 0; row-- {
			seats = bothSides(seats, row, column)
		}
	}
	return seats, nil
}

// insideOutOrder boards aisle seats first, working outward.
func insideOutOrder(spec *Spec, _ *rand.Rand) ([]Seat, error) {
	var seats []Seat
	for column := 0; column < spec.Airplane.Columns; column++ {
		for row := spec.Airplane.Rows - 1; row >= 0; row-- {
			seats = bothSides(seats, row, column)
		}
	}
	return seats, nil
}

// randomOrder shuffles every seat uniformly.
func randomOrder(spec *Spec, rng *rand.Rand) ([]Seat, error) {
	seats, err := backToFrontOrder(spec, rng)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("scenario: random strategy needs a random source")
	}
	rng.Shuffle(len(seats), func(i, j int) {
		seats[i], seats[j] = seats[j], seats[i]
	})
	return seats, nil
}
