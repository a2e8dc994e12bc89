package sim

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestWallOverlaps(t *testing.T) {
	wall := NewWall(cp.Vector{X: 0, Y: 0}, cp.Vector{X: 10, Y: 0})

	tests := []struct {
		name     string
		position cp.Vector
		radius   float64
		want     bool
	}{
		{
			name:     "disk straddling the segment",
			position: cp.Vector{X: 5, Y: 0.2},
			radius:   0.3,
			want:     true,
		},
		{
			name:     "disk clear of the segment",
			position: cp.Vector{X: 5, Y: 2},
			radius:   0.3,
			want:     false,
		},
		{
			name:     "touching exactly does not overlap",
			position: cp.Vector{X: 5, Y: 0.25},
			radius:   0.25,
			want:     false,
		},
		{
			name:     "projection beyond the final point",
			position: cp.Vector{X: 10.5, Y: 0.2},
			radius:   0.3,
			want:     false,
		},
		{
			name:     "projection behind the initial point",
			position: cp.Vector{X: -0.5, Y: 0.2},
			radius:   0.3,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testParticle(t, tt.position, tt.radius)
			if got := wall.Overlaps(p); got != tt.want {
				t.Errorf("Overlaps(%v, r=%g) = %t, want %t", tt.position, tt.radius, got, tt.want)
			}
		})
	}
}

func TestWallOverlapsZeroLength(t *testing.T) {
	wall := NewWall(cp.Vector{X: 3, Y: 3}, cp.Vector{X: 3, Y: 3})
	p := testParticle(t, cp.Vector{X: 3, Y: 3.1}, 0.3)
	if wall.Overlaps(p) {
		t.Error("degenerate zero-length wall reported an overlap")
	}
}

func TestWallEscapeDirection(t *testing.T) {
	wall := NewWall(cp.Vector{X: 0, Y: 0}, cp.Vector{X: 10, Y: 0})
	p := testParticle(t, cp.Vector{X: 5, Y: 0.2}, 0.3)

	got := wall.EscapeDirection(p)
	want := cp.Vector{X: 0, Y: 1}
	if got.Distance(want) > 1e-12 {
		t.Errorf("EscapeDirection = %v, want %v", got, want)
	}
}

func TestWallEscapeDirectionVertical(t *testing.T) {
	wall := NewWall(cp.Vector{X: 2, Y: 0}, cp.Vector{X: 2, Y: 8})
	p := testParticle(t, cp.Vector{X: 1.8, Y: 4}, 0.3)

	got := wall.EscapeDirection(p)
	want := cp.Vector{X: -1, Y: 0}
	if got.Distance(want) > 1e-12 {
		t.Errorf("EscapeDirection = %v, want %v", got, want)
	}
}

func TestWallEscapeDirectionPanicsWithoutOverlap(t *testing.T) {
	wall := NewWall(cp.Vector{X: 0, Y: 0}, cp.Vector{X: 10, Y: 0})
	p := testParticle(t, cp.Vector{X: 5, Y: 5}, 0.3)

	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a non-overlapping particle")
		}
	}()
	wall.EscapeDirection(p)
}
