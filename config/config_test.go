package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Gizmo.ScaleMinimum != 0.2 {
		t.Errorf("expected scale minimum 0.2, got %f", cfg.Gizmo.ScaleMinimum)
	}
	if cfg.Gizmo.ScaleMaximum != 2.0 {
		t.Errorf("expected scale maximum 2.0, got %f", cfg.Gizmo.ScaleMaximum)
	}
	if !cfg.Gizmo.ShowScaleHandles || !cfg.Gizmo.ShowRotateHandles {
		t.Error("expected both handle kinds shown by default")
	}
	if cfg.Gizmo.WireframeOnly {
		t.Error("expected wireframe_only to be false by default")
	}
	if cfg.Gizmo.UseLockedCorners {
		t.Error("expected locked corners to be off by default")
	}
	if cfg.Gizmo.BoundsOverride != nil {
		t.Error("expected no bounds override by default")
	}
	assert.Equal(t, FlattenNone, cfg.Gizmo.FlattenAxis)
	assert.Equal(t, ShapeCubes, cfg.Gizmo.WireframeShape)
	assert.Equal(t, BackendZap, cfg.Logging.Backend)
	require.NoError(t, cfg.Validate())
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gizmo.yaml")
	content := `
gizmo:
  scale_maximum: 4
  flatten_axis: " Auto "
  wireframe_shape: cylinders
  wireframe_padding: [0.1, 0.2, 0.3]
  bounds_override:
    center: [0, 1, 0]
    size: [2, 2, 2]
logging:
  backend: std
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, float32(4), cfg.Gizmo.ScaleMaximum)
	assert.Equal(t, float32(0.2), cfg.Gizmo.ScaleMinimum, "unset values keep defaults")
	assert.Equal(t, FlattenAuto, cfg.Gizmo.FlattenAxis)
	assert.Equal(t, ShapeCylinders, cfg.Gizmo.WireframeShape)
	assert.Equal(t, mgl32.Vec3{0.1, 0.2, 0.3}, cfg.Gizmo.WireframePadding)
	require.NotNil(t, cfg.Gizmo.BoundsOverride)
	assert.Equal(t, mgl32.Vec3{2, 2, 2}, cfg.Gizmo.BoundsOverride.Size)
	assert.Equal(t, BackendStd, cfg.Logging.Backend)
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gizmo.toml")
	content := `
[gizmo]
scale_minimum = 0.5
show_rotate_handles = false
flatten_axis = "z"

[logging]
backend = "nop"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), cfg.Gizmo.ScaleMinimum)
	assert.False(t, cfg.Gizmo.ShowRotateHandles)
	assert.True(t, cfg.Gizmo.ShowScaleHandles)
	assert.Equal(t, FlattenZ, cfg.Gizmo.FlattenAxis)
	assert.Equal(t, BackendNop, cfg.Logging.Backend)
}

func TestLoadRejectsUnknownEnums(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gizmo:\n  flatten_axis: w\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flatten_axis")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"out.yaml", "out.toml"} {
		cfg := Default()
		cfg.Gizmo.ScaleMaximum = 3
		cfg.Gizmo.FlattenAxis = FlattenY
		path := filepath.Join(dir, name)
		require.NoError(t, Save(cfg, path))

		loaded, err := Load(path)
		require.NoError(t, err, name)
		assert.Equal(t, float32(3), loaded.Gizmo.ScaleMaximum, name)
		assert.Equal(t, FlattenY, loaded.Gizmo.FlattenAxis, name)
	}
}
