// Command viewer runs a boarding simulation live in a window: walls as
// lines, passengers as disks colored by compression. The scenario file
// is watched, so edits rebuild the world on save.
//
// Controls: space pauses, R restarts, up/down arrows change the
// simulation speed.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/boarding/scenario"
	"github.com/milk9111/boarding/sim"
)

const (
	screenWidth  = 1280
	screenHeight = 720
	screenPad    = 24
)

type viewer struct {
	scenarioPath string
	spec         *scenario.Spec
	scene        *sim.Scene

	// world-to-screen transform, fitted to the wall extents on rebuild
	scale          float64
	worldMinX      float64
	worldMinY      float64
	worldMaxY      float64
	screenOffsetX  float64
	screenOffsetY  float64

	paused bool
	speed  float64
	accum  float64

	reload  chan string
	loadErr error
}

func newViewer(scenarioPath string) (*viewer, error) {
	v := &viewer{
		scenarioPath: scenarioPath,
		speed:        1,
		reload:       make(chan string, 1),
	}
	if err := v.rebuild(); err != nil {
		return nil, err
	}
	return v, nil
}

// rebuild reloads the scenario and starts a fresh run.
func (v *viewer) rebuild() error {
	spec, err := scenario.Load(v.scenarioPath)
	if err != nil {
		return err
	}

	seed := spec.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	walls := scenario.Walls(spec)
	particles, err := scenario.Population(spec, rng)
	if err != nil {
		return err
	}
	scene, err := sim.NewScene(walls, particles, scenario.SceneConfig(spec, rng))
	if err != nil {
		return err
	}

	v.spec = spec
	v.scene = scene
	v.accum = 0
	v.fitView(walls)
	return nil
}

// fitView fits the wall extents into the screen, y up.
func (v *viewer) fitView(walls []sim.Wall) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, w := range walls {
		for _, p := range [2]struct{ X, Y float64 }{
			{w.InitialPoint.X, w.InitialPoint.Y},
			{w.FinalPoint.X, w.FinalPoint.Y},
		} {
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
	}
	spanX, spanY := maxX-minX, maxY-minY
	v.scale = math.Min(
		(screenWidth-2*screenPad)/spanX,
		(screenHeight-2*screenPad)/spanY,
	)
	v.worldMinX, v.worldMinY, v.worldMaxY = minX, minY, maxY
	v.screenOffsetX = (screenWidth - spanX*v.scale) / 2
	v.screenOffsetY = (screenHeight - spanY*v.scale) / 2
}

func (v *viewer) toScreen(x, y float64) (float32, float32) {
	sx := (x-v.worldMinX)*v.scale + v.screenOffsetX
	sy := (v.worldMaxY-y)*v.scale + v.screenOffsetY
	return float32(sx), float32(sy)
}

func (v *viewer) Update() error {
	select {
	case path := <-v.reload:
		log.Printf("viewer: %s changed, rebuilding", path)
		v.loadErr = v.rebuild()
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.paused = !v.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.loadErr = v.rebuild()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		v.speed *= 2
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && v.speed > 0.25 {
		v.speed /= 2
	}

	if v.paused || v.loadErr != nil || v.scene.ShouldStop() {
		return nil
	}

	v.accum += v.speed / float64(ebiten.TPS())
	dt := v.scene.TimeStep()
	for v.accum >= dt && !v.scene.ShouldStop() {
		v.scene.Step()
		v.accum -= dt
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)

	frame := v.scene.Snapshot()
	for _, w := range frame.Walls {
		x0, y0 := v.toScreen(w.InitialPoint.X, w.InitialPoint.Y)
		x1, y1 := v.toScreen(w.FinalPoint.X, w.FinalPoint.Y)
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, colornames.Lightgrey, true)
	}
	for _, p := range frame.Particles {
		cx, cy := v.toScreen(p.Position.X, p.Position.Y)
		vector.DrawFilledCircle(screen, cx, cy, float32(p.Radius*v.scale), v.particleColor(p), true)
	}

	status := fmt.Sprintf("t=%.1fs  speed=%gx  seated=%d/%d  FPS=%.0f",
		frame.Elapsed, v.speed, seatedCount(frame), len(frame.Particles), ebiten.ActualFPS())
	if v.paused {
		status += "  [paused]"
	}
	if v.scene.ShouldStop() {
		status += "  [done]"
	}
	if v.loadErr != nil {
		status += "\nscenario error: " + v.loadErr.Error()
	}
	ebitenutil.DebugPrint(screen, status)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// particleColor fades red (compressed) to green (relaxed); seated
// passengers turn blue.
func (v *viewer) particleColor(p sim.ParticleState) color.Color {
	if p.Seated {
		return colornames.Dodgerblue
	}
	span := v.spec.Particle.MaxRadius - v.spec.Particle.MinRadius
	t := (p.Radius - v.spec.Particle.MinRadius) / span
	return color.RGBA{
		R: uint8(255 * (1 - t)),
		G: uint8(255 * t),
		A: 255,
	}
}

func seatedCount(frame sim.Frame) int {
	n := 0
	for _, p := range frame.Particles {
		if p.Seated {
			n++
		}
	}
	return n
}

func main() {
	scenarioPath := flag.String("scenario", "scenarios/default.yaml", "path to the scenario YAML file")
	flag.Parse()

	v, err := newViewer(*scenarioPath)
	if err != nil {
		log.Fatal(err)
	}

	watcher, err := scenario.NewWatcher(*scenarioPath)
	if err != nil {
		log.Printf("viewer: scenario watch disabled: %v", err)
	} else {
		defer watcher.Close()
		go func() {
			for path := range watcher.Events {
				select {
				case v.reload <- path:
				default:
				}
			}
		}()
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("boarding viewer")
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
