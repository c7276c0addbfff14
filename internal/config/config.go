// Package config provides YAML-based loading of kernel tuning files for the
// platkit toolchain.
package config

import "github.com/arcadelab/platkit/internal/sim"

// ParamsFile is the YAML shape of a tuning file. Keys match the replay
// document's params section field-for-field, so overrides move between the
// two formats verbatim.
type ParamsFile struct {
	GroundMaxSpeed float32 `yaml:"ground_max_speed"`
	GroundAccel    float32 `yaml:"ground_accel"`
	GroundDecel    float32 `yaml:"ground_decel"`
	GroundFriction float32 `yaml:"ground_friction"`
	RunMultiplier  float32 `yaml:"run_multiplier"`

	AirMaxSpeed float32 `yaml:"air_max_speed"`
	AirAccel    float32 `yaml:"air_accel"`
	AirDecel    float32 `yaml:"air_decel"`
	AirDrag     float32 `yaml:"air_drag"`

	GravityUp          float32 `yaml:"gravity_up"`
	GravityDown        float32 `yaml:"gravity_down"`
	TerminalVelocity   float32 `yaml:"terminal_velocity"`
	FastFallMultiplier float32 `yaml:"fast_fall_multiplier"`

	JumpVelocity      float32 `yaml:"jump_velocity"`
	JumpCutMultiplier float32 `yaml:"jump_cut_multiplier"`
	CoyoteTime        float32 `yaml:"coyote_time"`
	JumpBuffer        float32 `yaml:"jump_buffer"`

	SnapToGround float32 `yaml:"snap_to_ground"`
	MaxStepPx    float32 `yaml:"max_step_px"`

	WorldW        float32 `yaml:"world_w"`
	WorldWrapMode float32 `yaml:"world_wrap_mode"`
}

// FromParams converts a kernel parameter record into the file shape.
func FromParams(p sim.Params) ParamsFile {
	return ParamsFile{
		GroundMaxSpeed: p.GroundMaxSpeed,
		GroundAccel:    p.GroundAccel,
		GroundDecel:    p.GroundDecel,
		GroundFriction: p.GroundFriction,
		RunMultiplier:  p.RunMultiplier,

		AirMaxSpeed: p.AirMaxSpeed,
		AirAccel:    p.AirAccel,
		AirDecel:    p.AirDecel,
		AirDrag:     p.AirDrag,

		GravityUp:          p.GravityUp,
		GravityDown:        p.GravityDown,
		TerminalVelocity:   p.TerminalVelocity,
		FastFallMultiplier: p.FastFallMultiplier,

		JumpVelocity:      p.JumpVelocity,
		JumpCutMultiplier: p.JumpCutMultiplier,
		CoyoteTime:        p.CoyoteTime,
		JumpBuffer:        p.JumpBuffer,

		SnapToGround: p.SnapToGround,
		MaxStepPx:    p.MaxStepPx,

		WorldW:        p.WorldW,
		WorldWrapMode: p.WorldWrapMode,
	}
}

// ToParams converts the file shape into the kernel's parameter record.
func (f ParamsFile) ToParams() sim.Params {
	return sim.Params{
		GroundMaxSpeed: f.GroundMaxSpeed,
		GroundAccel:    f.GroundAccel,
		GroundDecel:    f.GroundDecel,
		GroundFriction: f.GroundFriction,
		RunMultiplier:  f.RunMultiplier,

		AirMaxSpeed: f.AirMaxSpeed,
		AirAccel:    f.AirAccel,
		AirDecel:    f.AirDecel,
		AirDrag:     f.AirDrag,

		GravityUp:          f.GravityUp,
		GravityDown:        f.GravityDown,
		TerminalVelocity:   f.TerminalVelocity,
		FastFallMultiplier: f.FastFallMultiplier,

		JumpVelocity:      f.JumpVelocity,
		JumpCutMultiplier: f.JumpCutMultiplier,
		CoyoteTime:        f.CoyoteTime,
		JumpBuffer:        f.JumpBuffer,

		SnapToGround: f.SnapToGround,
		MaxStepPx:    f.MaxStepPx,

		WorldW:        f.WorldW,
		WorldWrapMode: f.WorldWrapMode,
	}
}
