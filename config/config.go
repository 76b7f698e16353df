package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/xRyann2255/ICHack26-sub001/engine/camera"
	"github.com/xRyann2255/ICHack26-sub001/engine/ease"
	"github.com/xRyann2255/ICHack26-sub001/engine/environment"
)

// Config is the top-level flyover viewer configuration loaded from YAML.
type Config struct {
	Window      WindowConfig      `yaml:"window"`
	Environment EnvironmentConfig `yaml:"environment"`
	Tour        TourConfig        `yaml:"tour"`
	Heatmap     HeatmapConfig     `yaml:"heatmap"`
	Zoom        float32           `yaml:"zoom"`
}

// WindowConfig configures the viewer window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// EnvironmentConfig selects a mood preset and optional atmosphere tweaks.
type EnvironmentConfig struct {
	Mood string `yaml:"mood"`

	// FogDensity scales the preset fog distances; nil means the preset
	// default of 1, while an explicit 0 or negative value disables fog.
	FogDensity *float32 `yaml:"fogDensity"`

	// Optional color overrides; nil leaves the preset value untouched.
	Background *[3]float32 `yaml:"background"`
	FogColor   *[3]float32 `yaml:"fogColor"`
}

// TourConfig describes the keyframed camera tour.
type TourConfig struct {
	Loop      bool             `yaml:"loop"`
	Keyframes []KeyframeConfig `yaml:"keyframes"`
}

// KeyframeConfig is one stop on the camera tour.
type KeyframeConfig struct {
	Position [3]float32 `yaml:"position"`
	LookAt   [3]float32 `yaml:"lookAt"`
	Duration float32    `yaml:"duration"`
	Easing   string     `yaml:"easing"`
}

// HeatmapConfig configures the synthetic heatmap grid.
type HeatmapConfig struct {
	CenterLon   float64 `yaml:"centerLon"`
	CenterLat   float64 `yaml:"centerLat"`
	GridSize    int     `yaml:"gridSize"`
	SpreadDeg   float64 `yaml:"spreadDeg"`
	Seed        int64   `yaml:"seed"`
	TextureSize int     `yaml:"textureSize"`
}

// Load reads and validates a viewer configuration from the given path.
//
// Parameters:
//   - path: path to the YAML configuration file
//
// Returns:
//   - *Config: the loaded configuration
//   - error: error if the file cannot be read, parsed, or validated
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration for values that would fail later, so a
// bad file is rejected at startup rather than mid-tour.
//
// Returns:
//   - error: the first problem found, or nil
func (c *Config) Validate() error {
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("window size must not be negative, got %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.Environment.Mood != "" {
		if _, err := environment.ParseMood(c.Environment.Mood); err != nil {
			return err
		}
	}

	if len(c.Tour.Keyframes) == 0 {
		return fmt.Errorf("tour must define at least one keyframe")
	}
	for i, kf := range c.Tour.Keyframes {
		if kf.Duration <= 0 {
			return fmt.Errorf("tour keyframe %d duration must be positive, got %f", i, kf.Duration)
		}
		if kf.Easing != "" {
			if _, err := ease.ParseCurve(kf.Easing); err != nil {
				return fmt.Errorf("tour keyframe %d: %w", i, err)
			}
		}
	}

	if c.Heatmap.GridSize < 0 {
		return fmt.Errorf("heatmap grid size must not be negative, got %d", c.Heatmap.GridSize)
	}
	if c.Heatmap.SpreadDeg < 0 {
		return fmt.Errorf("heatmap spread must not be negative, got %f", c.Heatmap.SpreadDeg)
	}

	return nil
}

// Settings resolves the environment section into concrete scene settings.
//
// Returns:
//   - environment.Settings: the resolved preset with overrides applied
//   - error: error if the mood name is unknown
func (c *EnvironmentConfig) Settings() (environment.Settings, error) {
	mood := environment.MoodDay
	if c.Mood != "" {
		parsed, err := environment.ParseMood(c.Mood)
		if err != nil {
			return environment.Settings{}, err
		}
		mood = parsed
	}

	density := float32(1)
	if c.FogDensity != nil {
		density = *c.FogDensity
	}

	var opts []environment.ResolveOption
	if c.Background != nil {
		opts = append(opts, environment.WithBackgroundOverride(c.Background[0], c.Background[1], c.Background[2]))
	}
	if c.FogColor != nil {
		opts = append(opts, environment.WithFogColorOverride(c.FogColor[0], c.FogColor[1], c.FogColor[2]))
	}

	return environment.Resolve(mood, density, opts...), nil
}

// CameraKeyframes converts the tour section into sequencer keyframes.
// Keyframes with no easing name default to the linear curve.
//
// Returns:
//   - []camera.Keyframe: the converted keyframes
//   - error: error if an easing name is unknown
func (c *TourConfig) CameraKeyframes() ([]camera.Keyframe, error) {
	frames := make([]camera.Keyframe, 0, len(c.Keyframes))
	for i, kf := range c.Keyframes {
		curve := ease.CurveLinear
		if kf.Easing != "" {
			parsed, err := ease.ParseCurve(kf.Easing)
			if err != nil {
				return nil, fmt.Errorf("tour keyframe %d: %w", i, err)
			}
			curve = parsed
		}
		frames = append(frames, camera.Keyframe{
			Position: kf.Position,
			LookAt:   kf.LookAt,
			Duration: kf.Duration,
			Curve:    curve,
		})
	}
	return frames, nil
}
