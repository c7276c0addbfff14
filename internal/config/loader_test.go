package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/arcadelab/platkit/internal/sim"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg ParamsFile
	if err := yaml.Unmarshal(defaultParamsYAML, &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg.ToParams() != sim.DefaultParams() {
		t.Errorf("embedded default = %+v, want %+v", cfg.ToParams(), sim.DefaultParams())
	}
}

func TestLoadParamsCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	body := "jump_velocity: 600\nworld_wrap_mode: 2\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadParams(path)
	if err != nil {
		t.Fatalf("LoadParams() failed: %v", err)
	}
	if p.JumpVelocity != 600 {
		t.Errorf("jump_velocity = %v, want 600", p.JumpVelocity)
	}
	if p.WorldWrapMode != sim.WrapTorus {
		t.Errorf("world_wrap_mode = %v, want torus", p.WorldWrapMode)
	}
	// Keys the file does not name keep their defaults.
	if p.GroundMaxSpeed != sim.DefaultParams().GroundMaxSpeed {
		t.Errorf("ground_max_speed = %v, want default", p.GroundMaxSpeed)
	}
}

func TestLoadParamsCustomPathErrors(t *testing.T) {
	if _, err := LoadParams(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing explicit file should fail")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("jump_velocity: [not a number"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadParams(path); err == nil || !strings.Contains(err.Error(), "parse") {
		t.Errorf("broken explicit file should fail to parse, got %v", err)
	}
}

func TestParamsFileRoundTrip(t *testing.T) {
	want := sim.MinimalParams(200, 1600, 1800, 500, 640)
	got := FromParams(want).ToParams()
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}
