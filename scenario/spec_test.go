package scenario

import (
	"strings"
	"testing"
)

func validSpec() *Spec {
	return &Spec{
		Airplane: AirplaneSpec{
			Rows:             2,
			Columns:          2,
			CentralHallWidth: 1.2,
			FrontHallLength:  4,
			SeatWidth:        0.6,
			SeatSeparation:   1,
			DoorLength:       1.6,
		},
		JetBridge: JetBridgeSpec{Width: 2, Length: 10},
		Particle: ParticleSpec{
			MinRadius: 0.25,
			MaxRadius: 0.4,
			Tao:       0.5,
			Beta:      0.9,
			MaxSpeed:  1,
		},
		Boarding: BoardingSpec{
			Strategy:        strategyBackToFront,
			Batch:           3,
			CallUpInterval:  15,
			StowMinTime:     30,
			StowMaxTime:     45,
			StowProbability: 1,
		},
		Simulation: SimulationSpec{
			TimeStep:    0.05,
			MaxDuration: 1800,
			GracePeriod: 5,
			Seed:        42,
		},
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
airplane:
  rows: 12
  columns: 3
  central_hall_width: 1.2
  front_hall_length: 4.0
  seat_width: 0.6
  seat_separation: 1.0
  door_length: 1.6
jet_bridge:
  width: 2.0
  length: 10.0
particle:
  min_radius: 0.25
  max_radius: 0.4
  tao: 0.5
  beta: 0.9
  max_speed: 1.0
boarding:
  strategy: outside_in
  batch: 4
  call_up_interval: 15.0
  stow_min_time: 30.0
  stow_max_time: 45.0
  stow_probability: 0.95
simulation:
  time_step: 0.05
  max_duration: 1800.0
  grace_period: 5.0
  seed: 7
`)

	spec, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if spec.Airplane.Rows != 12 || spec.Airplane.Columns != 3 {
		t.Errorf("airplane = %dx%d, want 12x3", spec.Airplane.Rows, spec.Airplane.Columns)
	}
	if spec.Boarding.Strategy != strategyOutsideIn {
		t.Errorf("strategy = %q, want %q", spec.Boarding.Strategy, strategyOutsideIn)
	}
	if spec.Particle.MaxRadius != 0.4 {
		t.Errorf("max_radius = %g, want 0.4", spec.Particle.MaxRadius)
	}
	if spec.Simulation.Seed != 7 {
		t.Errorf("seed = %d, want 7", spec.Simulation.Seed)
	}
}

func TestParseMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("airplane: [")); err == nil {
		t.Error("expected an unmarshal error")
	}
}

func TestValidate(t *testing.T) {
	if err := validSpec().Validate(); err != nil {
		t.Fatalf("valid spec rejected: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(*Spec)
		wantErr string
	}{
		{"zero rows", func(s *Spec) { s.Airplane.Rows = 0 }, "rows"},
		{"zero seat width", func(s *Spec) { s.Airplane.SeatWidth = 0 }, "airplane dimensions"},
		{"zero jet bridge", func(s *Spec) { s.JetBridge.Length = 0 }, "jet bridge"},
		{"radii inverted", func(s *Spec) { s.Particle.MinRadius = 0.5 }, "min_radius"},
		{"zero beta", func(s *Spec) { s.Particle.Beta = 0 }, "beta"},
		{"zero batch", func(s *Spec) { s.Boarding.Batch = 0 }, "batch"},
		{"negative call-up", func(s *Spec) { s.Boarding.CallUpInterval = -1 }, "call_up_interval"},
		{"stow bounds inverted", func(s *Spec) { s.Boarding.StowMaxTime = 1 }, "stow time bounds"},
		{"stow probability", func(s *Spec) { s.Boarding.StowProbability = 2 }, "stow_probability"},
		{"zero time step", func(s *Spec) { s.Simulation.TimeStep = 0 }, "time_step"},
		{"negative grace", func(s *Spec) { s.Simulation.GracePeriod = -1 }, "grace_period"},
		{"unknown strategy", func(s *Spec) { s.Boarding.Strategy = "by_zodiac_sign" }, "unknown boarding strategy"},
		{"script without path", func(s *Spec) { s.Boarding.Strategy = strategyScript }, "script_path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := validSpec()
			tt.mutate(spec)
			err := spec.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("does/not/exist.yaml"); err == nil {
		t.Error("expected an error for a missing file")
	}
}
