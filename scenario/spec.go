// Package scenario loads simulation scenarios from YAML and turns them
// into a populated world: walls, particles with seat assignments, and
// the orchestration parameters.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Spec is the full YAML scenario file.
type Spec struct {
	Airplane   AirplaneSpec   `yaml:"airplane"`
	JetBridge  JetBridgeSpec  `yaml:"jet_bridge"`
	Particle   ParticleSpec   `yaml:"particle"`
	Boarding   BoardingSpec   `yaml:"boarding"`
	Simulation SimulationSpec `yaml:"simulation"`
}

// AirplaneSpec sizes the cabin.
type AirplaneSpec struct {
	Rows             int     `yaml:"rows"`
	Columns          int     `yaml:"columns"`
	CentralHallWidth float64 `yaml:"central_hall_width"`
	FrontHallLength  float64 `yaml:"front_hall_length"`
	SeatWidth        float64 `yaml:"seat_width"`
	SeatSeparation   float64 `yaml:"seat_separation"`
	DoorLength       float64 `yaml:"door_length"`
}

// JetBridgeSpec sizes the corridor between door and waiting room.
type JetBridgeSpec struct {
	Width  float64 `yaml:"width"`
	Length float64 `yaml:"length"`
}

// ParticleSpec holds the contractile-particle parameters shared by all
// passengers.
type ParticleSpec struct {
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`
	Tao       float64 `yaml:"tao"`
	Beta      float64 `yaml:"beta"`
	MaxSpeed  float64 `yaml:"max_speed"`
}

// BoardingSpec selects the boarding order and the scheduling policy
// layered on top of the dynamics.
type BoardingSpec struct {
	// Strategy is one of back_to_front, front_to_back, outside_in,
	// inside_out, random, or script.
	Strategy string `yaml:"strategy"`

	// ScriptPath points at a tengo script computing a custom seat
	// order; only read when Strategy is "script".
	ScriptPath string `yaml:"script_path"`

	// Batch is how many passengers are called up at once.
	Batch int `yaml:"batch"`

	// CallUpInterval spaces consecutive batches in simulation seconds;
	// 0 releases everyone immediately.
	CallUpInterval float64 `yaml:"call_up_interval"`

	StowMinTime     float64 `yaml:"stow_min_time"`
	StowMaxTime     float64 `yaml:"stow_max_time"`
	StowProbability float64 `yaml:"stow_probability"`
}

// SimulationSpec holds clock and reproducibility parameters.
type SimulationSpec struct {
	TimeStep    float64 `yaml:"time_step"`
	MaxDuration float64 `yaml:"max_duration"`
	GracePeriod float64 `yaml:"grace_period"`
	Seed        int64   `yaml:"seed"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates scenario YAML.
func Parse(data []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("scenario: unmarshal: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate checks the positivity and ordering constraints the core
// assumes hold by construction time.
func (s *Spec) Validate() error {
	a, j, p, b, sim := s.Airplane, s.JetBridge, s.Particle, s.Boarding, s.Simulation
	switch {
	case a.Rows <= 0 || a.Columns <= 0:
		return fmt.Errorf("scenario: rows and columns must be positive, got %dx%d", a.Rows, a.Columns)
	case a.CentralHallWidth <= 0 || a.FrontHallLength <= 0 || a.SeatWidth <= 0 ||
		a.SeatSeparation <= 0 || a.DoorLength <= 0:
		return fmt.Errorf("scenario: airplane dimensions must all be positive: %+v", a)
	case j.Width <= 0 || j.Length <= 0:
		return fmt.Errorf("scenario: jet bridge dimensions must be positive: %+v", j)
	case p.MinRadius <= 0 || p.MaxRadius <= p.MinRadius:
		return fmt.Errorf("scenario: need 0 < min_radius < max_radius, got [%g, %g]", p.MinRadius, p.MaxRadius)
	case p.Tao <= 0 || p.Beta <= 0 || p.MaxSpeed <= 0:
		return fmt.Errorf("scenario: tao, beta and max_speed must be positive: %+v", p)
	case b.Batch <= 0:
		return fmt.Errorf("scenario: batch must be positive, got %d", b.Batch)
	case b.CallUpInterval < 0:
		return fmt.Errorf("scenario: call_up_interval must not be negative, got %g", b.CallUpInterval)
	case b.StowMinTime < 0 || b.StowMaxTime < b.StowMinTime:
		return fmt.Errorf("scenario: stow time bounds [%g, %g] are inverted", b.StowMinTime, b.StowMaxTime)
	case b.StowProbability < 0 || b.StowProbability > 1:
		return fmt.Errorf("scenario: stow_probability %g outside [0, 1]", b.StowProbability)
	case sim.TimeStep <= 0 || sim.MaxDuration <= 0:
		return fmt.Errorf("scenario: time_step and max_duration must be positive: %+v", sim)
	case sim.GracePeriod < 0:
		return fmt.Errorf("scenario: grace_period must not be negative, got %g", sim.GracePeriod)
	}
	if _, err := strategyFor(b.Strategy); err != nil {
		return err
	}
	if b.Strategy == strategyScript && b.ScriptPath == "" {
		return fmt.Errorf("scenario: script strategy needs script_path")
	}
	return nil
}
