package output

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/milk9111/boarding/sim"
)

// WriteOctave emits the run summary the analysis scripts load: the
// total boarding duration and the time step, as Octave assignments.
func WriteOctave(w io.Writer, frames []sim.Frame) error {
	if len(frames) == 0 {
		return fmt.Errorf("output: no frames to summarize")
	}
	last := frames[len(frames)-1]
	if _, err := fmt.Fprintf(w, "duration = %g;\ndt = %g;\n", last.Elapsed, last.TimeStep); err != nil {
		return fmt.Errorf("output: write octave summary: %w", err)
	}
	return nil
}

// SaveOctave writes the summary to a file.
func SaveOctave(path string, frames []sim.Frame) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := WriteOctave(w, frames); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("output: flush %s: %w", path, err)
	}
	return nil
}
