// Package layout builds the static wall geometry of the boarding world:
// the airplane hull and seat rows, the jet bridge connecting the door to
// the terminal, and the waiting room where passengers queue.
//
// The origin sits with x on the airplane's central hall axis and y on
// the airplane's front wall. The door is a gap at the bottom of the
// right wall; the jet bridge runs along the x axis from there to the
// waiting room.
package layout

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/boarding/sim"
)

// AirplaneWidth is the full lateral extent of the cabin.
func AirplaneWidth(columns int, centralHallWidth, seatWidth float64) float64 {
	return centralHallWidth + 2*float64(columns)*seatWidth
}

// Airplane builds the cabin: the hull (with a door gap on the right
// wall below doorLength and a nose below the front wall) plus one wall
// per seat semi-row.
func Airplane(rows, columns int, centralHallWidth, frontHallLength,
	seatWidth, seatSeparation, doorLength float64) []sim.Wall {

	seatsWidth := float64(columns) * seatWidth
	width := AirplaneWidth(columns, centralHallWidth, seatWidth)
	length := float64(rows)*seatSeparation + frontHallLength
	leftAxis := -width / 2
	rightAxis := width / 2

	walls := []sim.Wall{
		// Hull: the right wall starts at doorLength, leaving the door gap.
		sim.NewWall(cp.Vector{X: leftAxis, Y: 0}, cp.Vector{X: rightAxis, Y: 0}),
		sim.NewWall(cp.Vector{X: leftAxis, Y: length}, cp.Vector{X: rightAxis, Y: length}),
		sim.NewWall(cp.Vector{X: leftAxis, Y: 0}, cp.Vector{X: leftAxis, Y: length}),
		sim.NewWall(cp.Vector{X: rightAxis, Y: doorLength}, cp.Vector{X: rightAxis, Y: length}),
		// Nose, closing the shape below the front wall.
		sim.NewWall(cp.Vector{X: leftAxis, Y: 0}, cp.Vector{X: leftAxis, Y: -5}),
		sim.NewWall(cp.Vector{X: rightAxis, Y: 0}, cp.Vector{X: rightAxis, Y: -5}),
		sim.NewWall(cp.Vector{X: leftAxis, Y: -5}, cp.Vector{X: 0, Y: -7}),
		sim.NewWall(cp.Vector{X: rightAxis, Y: -5}, cp.Vector{X: 0, Y: -7}),
	}

	for i := 0; i < rows; i++ {
		y := frontHallLength + seatSeparation*float64(i+1)
		walls = append(walls,
			sim.NewWall(cp.Vector{X: leftAxis, Y: y}, cp.Vector{X: leftAxis + seatsWidth, Y: y}),
			sim.NewWall(cp.Vector{X: rightAxis - seatsWidth, Y: y}, cp.Vector{X: rightAxis, Y: y}),
		)
	}
	return walls
}

// JetBridge builds the two walls of the corridor from the airplane door
// to the waiting room. It runs along the x axis, starting flush with
// the airplane's right wall.
func JetBridge(width, length, airplaneWidth float64) []sim.Wall {
	startX := airplaneWidth / 2
	return []sim.Wall{
		sim.NewWall(cp.Vector{X: startX, Y: 0}, cp.Vector{X: startX + length, Y: 0}),
		sim.NewWall(cp.Vector{X: startX, Y: width}, cp.Vector{X: startX + length, Y: width}),
	}
}

// WaitingRoom builds the room beyond the jet bridge. Its left wall has
// an opening of jetBridgeWidth at the bottom, where the jet bridge
// meets it.
func WaitingRoom(width, length, airplaneWidth, jetBridgeWidth, jetBridgeLength float64) []sim.Wall {
	startX := airplaneWidth/2 + jetBridgeLength
	return []sim.Wall{
		sim.NewWall(cp.Vector{X: startX, Y: 0}, cp.Vector{X: startX + width, Y: 0}),
		sim.NewWall(cp.Vector{X: startX, Y: length}, cp.Vector{X: startX + width, Y: length}),
		sim.NewWall(cp.Vector{X: startX, Y: jetBridgeWidth}, cp.Vector{X: startX, Y: length}),
		sim.NewWall(cp.Vector{X: startX + width, Y: 0}, cp.Vector{X: startX + width, Y: length}),
	}
}
