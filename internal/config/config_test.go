package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	s, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, "", s.LogFile)
	assert.Equal(t, uint64(0), s.Seed)
	assert.Equal(t, FrontendDesktop, s.Frontend)
	assert.Equal(t, 1000, s.Window.Width)
	assert.Equal(t, 700, s.Window.Height)
	assert.Equal(t, "Fireworks", s.Window.Title)
	assert.True(t, s.Audio.Enabled)
	assert.InDelta(t, 0.58, s.Audio.Volume, 1e-9)
	assert.Equal(t, 20000, s.Sim.MaxParticles)
	assert.False(t, s.Telemetry.Enabled)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"seed": 1234,
		"frontend": "terminal",
		"audio": { "enabled": false },
		"sim": { "maxParticles": 500 }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(cfg), 0644))

	s, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, uint64(1234), s.Seed)
	assert.Equal(t, FrontendTerminal, s.Frontend)
	assert.False(t, s.Audio.Enabled)
	assert.Equal(t, 500, s.Sim.MaxParticles)
	assert.Equal(t, 1000, s.Window.Width, "unset keys keep defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{"seed": 1}`), 0644))
	t.Setenv("FIREWORKS_SEED", "99")
	t.Setenv("FIREWORKS_AUDIO_ENABLED", "false")

	s, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, uint64(99), s.Seed)
	assert.False(t, s.Audio.Enabled)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{"seed": `), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_RejectsInvalidSettings(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{"frontend": "vr"}`), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown frontend")
}

func TestValidate(t *testing.T) {
	base := Settings{
		Frontend: FrontendDesktop,
		Window:   WindowConfig{Width: 10, Height: 10},
		Audio:    AudioConfig{Volume: 0.5},
		Sim:      SimConfig{MaxParticles: 1},
	}
	require.NoError(t, base.Validate())

	bad := base
	bad.Audio.Volume = 1.5
	assert.Error(t, bad.Validate())

	bad = base
	bad.Window.Height = 0
	assert.Error(t, bad.Validate())

	bad = base
	bad.Sim.MaxParticles = 0
	assert.Error(t, bad.Validate())
}
