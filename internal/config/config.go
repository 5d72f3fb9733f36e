package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the config file looked up in the config directory.
const FileName = "fireworks.json"

// EnvPrefix namespaces environment overrides, e.g. FIREWORKS_SEED or
// FIREWORKS_AUDIO_ENABLED.
const EnvPrefix = "FIREWORKS"

const (
	FrontendDesktop  = "desktop"
	FrontendTerminal = "terminal"
)

// WindowConfig holds desktop window settings.
type WindowConfig struct {
	Width  int    `json:"width" mapstructure:"width"`
	Height int    `json:"height" mapstructure:"height"`
	Title  string `json:"title" mapstructure:"title"`
}

// AudioConfig holds sound effect settings.
type AudioConfig struct {
	Enabled bool    `json:"enabled" mapstructure:"enabled"`
	Volume  float64 `json:"volume" mapstructure:"volume"`
}

// SimConfig holds the resource limits of the simulation. Physics constants
// are fixed and not read from here.
type SimConfig struct {
	MaxParticles int `json:"maxParticles" mapstructure:"maxParticles"`
}

// TelemetryConfig toggles OpenTelemetry instruments.
type TelemetryConfig struct {
	Enabled bool `json:"enabled" mapstructure:"enabled"`
}

type Settings struct {
	LogLevel  string          `json:"logLevel" mapstructure:"logLevel"`
	LogFile   string          `json:"logFile" mapstructure:"logFile"`
	Seed      uint64          `json:"seed" mapstructure:"seed"`
	Frontend  string          `json:"frontend" mapstructure:"frontend"`
	Window    WindowConfig    `json:"window" mapstructure:"window"`
	Audio     AudioConfig     `json:"audio" mapstructure:"audio"`
	Sim       SimConfig       `json:"sim" mapstructure:"sim"`
	Telemetry TelemetryConfig `json:"telemetry" mapstructure:"telemetry"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "")
	v.SetDefault("seed", 0)
	v.SetDefault("frontend", FrontendDesktop)

	v.SetDefault("window.width", 1000)
	v.SetDefault("window.height", 700)
	v.SetDefault("window.title", "Fireworks")

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.58)

	v.SetDefault("sim.maxParticles", 20000)

	v.SetDefault("telemetry.enabled", false)
}

// Load reads fireworks.json from configDir on top of the defaults, then
// applies FIREWORKS_* environment overrides. A missing file is not an error.
func Load(configDir string) (Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(FileName)
	v.SetConfigType("json")
	if configDir != "" {
		v.AddConfigPath(configDir)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects settings the front ends cannot run with.
func (s Settings) Validate() error {
	switch s.Frontend {
	case FrontendDesktop, FrontendTerminal:
	default:
		return fmt.Errorf("unknown frontend %q", s.Frontend)
	}
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", s.Window.Width, s.Window.Height)
	}
	if s.Audio.Volume < 0 || s.Audio.Volume > 1 {
		return fmt.Errorf("audio volume %.2f outside [0,1]", s.Audio.Volume)
	}
	if s.Sim.MaxParticles <= 0 {
		return fmt.Errorf("sim.maxParticles must be positive, got %d", s.Sim.MaxParticles)
	}
	return nil
}
