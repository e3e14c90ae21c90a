package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/float-bubble/parameter"
	"github.com/lixenwraith/float-bubble/vmath"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 800.0, cfg.Physics.VelocityLimit)
	assert.Equal(t, "normal", cfg.Physics.Deceleration)
	assert.Equal(t, time.Second, cfg.Animation.Duration)
	assert.Equal(t, 0.98, cfg.Animation.DampingRatio)
	assert.Equal(t, 60, cfg.Animation.FrameRate)
	assert.Equal(t, vmath.Insets{Top: 120, Left: 42, Bottom: 120, Right: 42}, cfg.Padding())
	assert.Equal(t, vmath.Size{W: 8, H: 16}, cfg.CellSize())
	assert.Equal(t, vmath.Size{W: 64, H: 64}, cfg.BubbleSize())
	assert.False(t, cfg.Sound.Enabled)

	p := cfg.Projector()
	assert.Equal(t, parameter.DecelerationRateNormal, p.DecelerationRate)
	assert.Equal(t, 800.0, p.VelocityLimit)

	assert.Equal(t, time.Second/60, cfg.FrameInterval())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
physics:
  velocity_limit: 600
  deceleration: fast
animation:
  duration: 750ms
layout:
  horizontal_padding: 10
  safe_area:
    top: 0
bubble:
  label: "B"
sound:
  enabled: true
  volume: 0.25
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 600.0, cfg.Physics.VelocityLimit)
	assert.Equal(t, parameter.DecelerationRateFast, cfg.Projector().DecelerationRate)
	assert.Equal(t, 750*time.Millisecond, cfg.AnimationConfig().Duration)
	assert.Equal(t, 10.0, cfg.Padding().Left)
	assert.Equal(t, 120.0, cfg.Padding().Top, "unset keys keep defaults")
	assert.Equal(t, 0.0, cfg.SafeAreaInsets().Top)
	assert.Equal(t, 32.0, cfg.SafeAreaInsets().Bottom)
	assert.Equal(t, "B", cfg.Bubble.Label)
	assert.True(t, cfg.Sound.Enabled)
	assert.Equal(t, 0.25, cfg.Sound.Volume)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadNoFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadSearchPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "configs"), 0755))
	writeConfig(t, filepath.Join(dir, "configs"), "bubble:\n  width: 80\n")
	t.Chdir(dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 80.0, cfg.Bubble.Width)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("FLOAT_BUBBLE_SOUND_ENABLED", "true")
	t.Setenv("FLOAT_BUBBLE_PHYSICS_VELOCITY_LIMIT", "400")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Sound.Enabled)
	assert.Equal(t, 400.0, cfg.Physics.VelocityLimit)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative limit", "physics:\n  velocity_limit: -1\n"},
		{"unknown deceleration", "physics:\n  deceleration: slow\n"},
		{"damping above one", "animation:\n  damping_ratio: 1.5\n"},
		{"zero frame rate", "animation:\n  frame_rate: 0\n"},
		{"zero cell", "layout:\n  cell_width: 0\n"},
		{"loud", "sound:\n  volume: 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, t.TempDir(), tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
		})
	}
}

func TestValidateReportsAllFields(t *testing.T) {
	cfg := Default()
	cfg.Bubble.Width = 0
	cfg.Bubble.Height = -1

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bubble.Width")
	assert.Contains(t, err.Error(), "Bubble.Height")
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, Default()))

	out := buf.String()
	assert.Contains(t, out, "velocity_limit: 800")
	assert.Contains(t, out, "duration: 1s")

	var back Config
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, *Default(), back)
}
