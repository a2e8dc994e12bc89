package layout

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/boarding/sim"
)

func TestAirplaneWidth(t *testing.T) {
	if got, want := AirplaneWidth(3, 1.2, 0.6), 4.8; got != want {
		t.Errorf("AirplaneWidth(3, 1.2, 0.6) = %g, want %g", got, want)
	}
}

func TestAirplaneWallCount(t *testing.T) {
	walls := Airplane(12, 3, 1.2, 4, 0.6, 1, 1.6)
	// 4 hull walls, 4 nose walls, 2 per seat row.
	if got, want := len(walls), 8+2*12; got != want {
		t.Errorf("len(walls) = %d, want %d", got, want)
	}
}

func TestAirplaneDoorGap(t *testing.T) {
	const (
		doorLength = 1.6
		width      = 4.8 // 1.2 + 2*3*0.6
	)
	walls := Airplane(12, 3, 1.2, 4, 0.6, 1, doorLength)

	for _, w := range walls {
		if w.InitialPoint.X != width/2 || w.FinalPoint.X != width/2 {
			continue
		}
		// The only right-axis wall must start above the door gap.
		low := w.InitialPoint.Y
		if w.FinalPoint.Y < low {
			low = w.FinalPoint.Y
		}
		if low != doorLength {
			t.Errorf("right wall starts at y=%g, want the door gap to end at %g", low, doorLength)
		}
		return
	}
	t.Fatal("no right-axis wall found")
}

func TestAirplaneSeatRowWalls(t *testing.T) {
	const (
		rows            = 3
		frontHallLength = 4.0
		seatSeparation  = 1.0
	)
	walls := Airplane(rows, 3, 1.2, frontHallLength, 0.6, seatSeparation, 1.6)

	for row := 0; row < rows; row++ {
		wantY := frontHallLength + seatSeparation*float64(row+1)
		count := 0
		for _, w := range walls {
			if w.InitialPoint.Y == wantY && w.FinalPoint.Y == wantY {
				count++
			}
		}
		if count != 2 {
			t.Errorf("row %d: found %d walls at y=%g, want 2", row, count, wantY)
		}
	}
}

// Seat row walls must leave the central hall open: no wall may cross
// the hall axis between the front and rear hull walls.
func TestAirplaneHallStaysOpen(t *testing.T) {
	walls := Airplane(12, 3, 1.2, 4, 0.6, 1, 1.6)
	length := 12*1.0 + 4.0

	for _, w := range walls {
		if w.InitialPoint.Y <= 0 || w.InitialPoint.Y >= length {
			continue // hull and nose walls
		}
		minX := math.Min(w.InitialPoint.X, w.FinalPoint.X)
		maxX := math.Max(w.InitialPoint.X, w.FinalPoint.X)
		if maxX > -0.6 && minX < 0.6 {
			t.Errorf("wall %v-%v reaches into the central hall", w.InitialPoint, w.FinalPoint)
		}
	}
}

func TestJetBridge(t *testing.T) {
	walls := JetBridge(2, 10, 4.8)
	if len(walls) != 2 {
		t.Fatalf("len(walls) = %d, want 2", len(walls))
	}

	want := []sim.Wall{
		sim.NewWall(cp.Vector{X: 2.4, Y: 0}, cp.Vector{X: 12.4, Y: 0}),
		sim.NewWall(cp.Vector{X: 2.4, Y: 2}, cp.Vector{X: 12.4, Y: 2}),
	}
	for i := range want {
		if walls[i] != want[i] {
			t.Errorf("walls[%d] = %+v, want %+v", i, walls[i], want[i])
		}
	}
}

func TestWaitingRoomOpening(t *testing.T) {
	const (
		jetBridgeWidth  = 2.0
		jetBridgeLength = 10.0
		airplaneWidth   = 4.8
		length          = 20.0
	)
	walls := WaitingRoom(8, length, airplaneWidth, jetBridgeWidth, jetBridgeLength)
	if len(walls) != 4 {
		t.Fatalf("len(walls) = %d, want 4", len(walls))
	}

	startX := airplaneWidth/2 + jetBridgeLength
	found := false
	for _, w := range walls {
		if w.InitialPoint.X != startX || w.FinalPoint.X != startX {
			continue
		}
		found = true
		low := w.InitialPoint.Y
		if w.FinalPoint.Y < low {
			low = w.FinalPoint.Y
		}
		if low != jetBridgeWidth {
			t.Errorf("left wall starts at y=%g, want an opening below %g", low, jetBridgeWidth)
		}
	}
	if !found {
		t.Fatal("no left wall found at the jet bridge junction")
	}
}
