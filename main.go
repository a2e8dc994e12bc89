// Command boarding runs a headless airplane-boarding simulation from a
// YAML scenario and writes Ovito and Octave outputs for visualization
// and analysis.
package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/milk9111/boarding/output"
	"github.com/milk9111/boarding/scenario"
	"github.com/milk9111/boarding/sim"
)

func main() {
	scenarioPath := flag.String("scenario", "scenarios/default.yaml", "path to the scenario YAML file")
	ovitoPath := flag.String("ovito", "boarding.xyz", "path for the Ovito frame output")
	octavePath := flag.String("octave", "boarding.m", "path for the Octave summary output")
	flag.Parse()

	spec, err := scenario.Load(*scenarioPath)
	if err != nil {
		log.Fatal(err)
	}

	seed := spec.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	walls := scenario.Walls(spec)
	particles, err := scenario.Population(spec, rng)
	if err != nil {
		log.Fatal(err)
	}

	scene, err := sim.NewScene(walls, particles, scenario.SceneConfig(spec, rng))
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("boarding: %d passengers, %d walls, dt=%g, seed=%d",
		len(particles), len(walls), spec.Simulation.TimeStep, seed)

	start := time.Now()
	frames := []sim.Frame{scene.Snapshot()}
	for !scene.ShouldStop() {
		scene.Step()
		frames = append(frames, scene.Snapshot())
	}
	log.Printf("boarding: simulated %gs in %d steps (%s wall time)",
		scene.Elapsed(), len(frames)-1, time.Since(start).Round(time.Millisecond))

	ovito := output.NewOvitoWriter(spec.Particle.MinRadius, spec.Particle.MaxRadius)
	if err := ovito.Save(*ovitoPath, frames); err != nil {
		log.Fatal(err)
	}
	if err := output.SaveOctave(*octavePath, frames); err != nil {
		log.Fatal(err)
	}
	log.Printf("boarding: wrote %s and %s", *ovitoPath, *octavePath)
}
