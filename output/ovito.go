// Package output serializes recorded simulation frames for external
// tools. The core never depends on these formats; writers consume the
// read-only frames the scene exposes.
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/milk9111/boarding/sim"
)

const wallPointRadius = 0.05

// OvitoWriter renders frames in the XYZ-per-frame layout Ovito loads:
// a count line, a frame index line, then one row per particle and two
// endpoint rows per wall. Particle color encodes compression (red when
// squeezed, green when at full radius, blue once seated).
type OvitoWriter struct {
	minRadius float64
	maxRadius float64
}

// NewOvitoWriter needs the particle radius bounds to scale colors.
func NewOvitoWriter(minRadius, maxRadius float64) *OvitoWriter {
	return &OvitoWriter{minRadius: minRadius, maxRadius: maxRadius}
}

// Save writes all frames to a file.
func (o *OvitoWriter) Save(path string, frames []sim.Frame) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := o.Write(w, frames); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("output: flush %s: %w", path, err)
	}
	return nil
}

// Write streams all frames to w.
func (o *OvitoWriter) Write(w io.Writer, frames []sim.Frame) error {
	for i, frame := range frames {
		if err := o.writeFrame(w, frame, i); err != nil {
			return fmt.Errorf("output: frame %d: %w", i, err)
		}
	}
	return nil
}

func (o *OvitoWriter) writeFrame(w io.Writer, frame sim.Frame, index int) error {
	count := len(frame.Particles) + 2*len(frame.Walls)
	if _, err := fmt.Fprintf(w, "%d\n%d\n", count, index); err != nil {
		return err
	}
	id := 0
	for _, p := range frame.Particles {
		r, g, b := o.particleColor(p)
		if _, err := fmt.Fprintf(w, "%g %g %g %g %g %g %g %g %d\n",
			p.Position.X, p.Position.Y, p.Velocity.X, p.Velocity.Y, p.Radius, r, g, b, id); err != nil {
			return err
		}
		id++
	}
	for _, wall := range frame.Walls {
		for _, point := range [2]struct{ X, Y float64 }{
			{wall.InitialPoint.X, wall.InitialPoint.Y},
			{wall.FinalPoint.X, wall.FinalPoint.Y},
		} {
			if _, err := fmt.Fprintf(w, "%g %g 0 0 %g 1 1 1 %d\n",
				point.X, point.Y, wallPointRadius, id); err != nil {
				return err
			}
		}
		id++
	}
	return nil
}

// particleColor fades from red (fully compressed) to green (full
// personal space); seated particles turn blue.
func (o *OvitoWriter) particleColor(p sim.ParticleState) (r, g, b float64) {
	if p.Seated {
		return 0, 0, 1
	}
	span := o.maxRadius - o.minRadius
	return (o.maxRadius - p.Radius) / span, (p.Radius - o.minRadius) / span, 0
}
