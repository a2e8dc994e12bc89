package scenario

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/boarding/sim"
)

// scriptedOrder runs a tengo script that computes a custom boarding
// order. The script sees the globals __rows and __columns and must set
// a global `order`: an array whose elements are either [row, column]
// pairs (expanded to the left and right seat, in that order) or
// [row, column, side] triples with side -1 (left) or 1 (right).
func scriptedOrder(spec *Spec, _ *rand.Rand) ([]Seat, error) {
	src, err := os.ReadFile(spec.Boarding.ScriptPath)
	if err != nil {
		return nil, fmt.Errorf("scenario: read strategy script: %w", err)
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	if err := script.Add("__rows", spec.Airplane.Rows); err != nil {
		return nil, fmt.Errorf("scenario: strategy script setup: %w", err)
	}
	if err := script.Add("__columns", spec.Airplane.Columns); err != nil {
		return nil, fmt.Errorf("scenario: strategy script setup: %w", err)
	}

	compiled, err := script.Run()
	if err != nil {
		return nil, fmt.Errorf("scenario: strategy script %s: %w", spec.Boarding.ScriptPath, err)
	}

	raw := compiled.Get("order")
	if raw == nil || raw.IsUndefined() {
		return nil, fmt.Errorf("scenario: strategy script %s did not set `order`", spec.Boarding.ScriptPath)
	}

	arr, ok := raw.Object().(*tengo.Array)
	if !ok {
		return nil, fmt.Errorf("scenario: strategy script `order` must be an array, got %s", raw.Object().TypeName())
	}

	var seats []Seat
	for i, entry := range arr.Value {
		row, column, side, err := decodeOrderEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("scenario: strategy script `order[%d]`: %w", i, err)
		}
		if row < 0 || row >= spec.Airplane.Rows || column < 0 || column >= spec.Airplane.Columns {
			return nil, fmt.Errorf("scenario: strategy script `order[%d]` seat (%d, %d) out of bounds", i, row, column)
		}
		if side == 0 {
			seats = bothSides(seats, row, column)
		} else {
			seats = append(seats, Seat{Row: row, Column: column, Side: sim.AirplaneSide(side)})
		}
	}
	if len(seats) == 0 {
		return nil, fmt.Errorf("scenario: strategy script produced an empty order")
	}
	return seats, nil
}

// decodeOrderEntry unpacks one [row, column] or [row, column, side]
// element. A zero side means "both sides".
func decodeOrderEntry(obj tengo.Object) (row, column, side int, err error) {
	entry, ok := obj.(*tengo.Array)
	if !ok {
		return 0, 0, 0, fmt.Errorf("expected [row, column] array, got %s", obj.TypeName())
	}
	if len(entry.Value) != 2 && len(entry.Value) != 3 {
		return 0, 0, 0, fmt.Errorf("expected 2 or 3 elements, got %d", len(entry.Value))
	}
	values := make([]int, len(entry.Value))
	for i, v := range entry.Value {
		n, ok := v.(*tengo.Int)
		if !ok {
			return 0, 0, 0, fmt.Errorf("expected int element, got %s", v.TypeName())
		}
		values[i] = int(n.Value)
	}
	row, column = values[0], values[1]
	if len(values) == 3 {
		side = values[2]
		if side != int(sim.SideLeft) && side != int(sim.SideRight) {
			return 0, 0, 0, fmt.Errorf("side must be -1 or 1, got %d", side)
		}
	}
	return row, column, side, nil
}
