// Package config holds the gizmo settings and logging setup, with defaults
// and file loading.
package config

import (
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// Config holds all settings.
type Config struct {
	Gizmo   Gizmo   `yaml:"gizmo" toml:"gizmo"`
	Logging Logging `yaml:"logging" toml:"logging"`
}

// Box is an explicit bounding box in the target's object space.
type Box struct {
	Center mgl32.Vec3 `yaml:"center" toml:"center"`
	Size   mgl32.Vec3 `yaml:"size" toml:"size"`
}

// Gizmo holds the bounding-box rig options.
type Gizmo struct {
	BoundsOverride *Box `yaml:"bounds_override,omitempty" toml:"bounds_override,omitempty"`

	ScaleMinimum float32 `yaml:"scale_minimum" toml:"scale_minimum"`
	ScaleMaximum float32 `yaml:"scale_maximum" toml:"scale_maximum"`

	WireframeOnly     bool `yaml:"wireframe_only" toml:"wireframe_only"`
	ShowScaleHandles  bool `yaml:"show_scale_handles" toml:"show_scale_handles"`
	ShowRotateHandles bool `yaml:"show_rotate_handles" toml:"show_rotate_handles"`

	FlattenAxis    string `yaml:"flatten_axis" toml:"flatten_axis"`       // none, x, y, z, auto
	WireframeShape string `yaml:"wireframe_shape" toml:"wireframe_shape"` // cubes, cylinders

	LinkRadius           float32    `yaml:"link_radius" toml:"link_radius"`
	ScaleHandleSize      float32    `yaml:"scale_handle_size" toml:"scale_handle_size"`
	RotateHandleDiameter float32    `yaml:"rotate_handle_diameter" toml:"rotate_handle_diameter"`
	WireframePadding     mgl32.Vec3 `yaml:"wireframe_padding" toml:"wireframe_padding"`

	ActivateOnStart  bool `yaml:"activate_on_start" toml:"activate_on_start"`
	UseLockedCorners bool `yaml:"use_locked_corners" toml:"use_locked_corners"`
}

// Logging holds logger settings.
type Logging struct {
	Backend    string `yaml:"backend" toml:"backend"` // zap, std, nop
	Level      string `yaml:"level" toml:"level"`
	Prefix     string `yaml:"prefix" toml:"prefix"`
	File       string `yaml:"file" toml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" toml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days" toml:"max_age_days"`
	Compress   bool   `yaml:"compress" toml:"compress"`
	Quiet      bool   `yaml:"quiet" toml:"quiet"` // disables console output
}

const (
	FlattenNone = "none"
	FlattenX    = "x"
	FlattenY    = "y"
	FlattenZ    = "z"
	FlattenAuto = "auto"

	ShapeCubes     = "cubes"
	ShapeCylinders = "cylinders"

	BackendZap = "zap"
	BackendStd = "std"
	BackendNop = "nop"
)

// Default returns a Config with the stock gizmo look and behaviour.
func Default() *Config {
	return &Config{
		Gizmo: DefaultGizmo(),
		Logging: Logging{
			Backend:    BackendZap,
			Level:      "info",
			Prefix:     "boundsbox",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}

func DefaultGizmo() Gizmo {
	return Gizmo{
		ScaleMinimum:         0.2,
		ScaleMaximum:         2.0,
		ShowScaleHandles:     true,
		ShowRotateHandles:    true,
		FlattenAxis:          FlattenNone,
		WireframeShape:       ShapeCubes,
		LinkRadius:           0.005,
		ScaleHandleSize:      0.04,
		RotateHandleDiameter: 0.035,
	}
}

// Validate normalises enum strings in place and rejects unknown values.
func (c *Config) Validate() error {
	g := &c.Gizmo
	g.FlattenAxis = strings.ToLower(strings.TrimSpace(g.FlattenAxis))
	if g.FlattenAxis == "" {
		g.FlattenAxis = FlattenNone
	}
	switch g.FlattenAxis {
	case FlattenNone, FlattenX, FlattenY, FlattenZ, FlattenAuto:
	default:
		return errors.Errorf("unknown flatten_axis %q", g.FlattenAxis)
	}

	g.WireframeShape = strings.ToLower(strings.TrimSpace(g.WireframeShape))
	if g.WireframeShape == "" {
		g.WireframeShape = ShapeCubes
	}
	switch g.WireframeShape {
	case ShapeCubes, ShapeCylinders:
	default:
		return errors.Errorf("unknown wireframe_shape %q", g.WireframeShape)
	}

	if g.ScaleMinimum < 0 || g.ScaleMaximum < 0 {
		return errors.New("scale limits must not be negative")
	}
	if g.LinkRadius < 0 || g.ScaleHandleSize < 0 || g.RotateHandleDiameter < 0 {
		return errors.New("radii must not be negative")
	}

	l := &c.Logging
	l.Backend = strings.ToLower(strings.TrimSpace(l.Backend))
	if l.Backend == "" {
		l.Backend = BackendZap
	}
	switch l.Backend {
	case BackendZap, BackendStd, BackendNop:
	default:
		return errors.Errorf("unknown logging backend %q", l.Backend)
	}
	return nil
}
