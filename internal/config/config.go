// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/roomview/internal/engine/texture"
)

// Config holds all viewer settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics" toml:"graphics"`
	Navigation NavigationConfig `yaml:"navigation" toml:"navigation"`
	Video      VideoConfig      `yaml:"video" toml:"video"`
	Assets     AssetsConfig     `yaml:"assets" toml:"assets"`
	Scene      SceneConfig      `yaml:"scene" toml:"scene"`
	Logging    LoggingConfig    `yaml:"logging" toml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width" toml:"width"`
	Height     int  `yaml:"height" toml:"height"`
	Fullscreen bool `yaml:"fullscreen" toml:"fullscreen"`
	VSync      bool `yaml:"vsync" toml:"vsync"`
	MSAA       int  `yaml:"msaa_samples" toml:"msaa_samples"` // 0 disables multisampling
	// Texture filters by name, e.g. "linear_mipmap_linear" or "nearest".
	MinFilter string `yaml:"min_filter" toml:"min_filter"`
	MagFilter string `yaml:"mag_filter" toml:"mag_filter"`
}

// NavigationConfig holds mouse and keyboard navigation settings.
type NavigationConfig struct {
	Velocity     float32 `yaml:"velocity" toml:"velocity"`
	VelocityStep float32 `yaml:"velocity_step" toml:"velocity_step"`
	MinVelocity  float32 `yaml:"min_velocity" toml:"min_velocity"`
	CameraRate   float64 `yaml:"camera_rate" toml:"camera_rate"` // Hz while a mouse button is held
	KeyStep      float32 `yaml:"key_step" toml:"key_step"`
	KeyAngle     float32 `yaml:"key_angle" toml:"key_angle"`
}

// VideoConfig describes the TV animation frames.
type VideoConfig struct {
	FrameRate float64 `yaml:"frame_rate" toml:"frame_rate"`
	Frames    int     `yaml:"frames" toml:"frames"`
	Base      string  `yaml:"base" toml:"base"`
	Ext       string  `yaml:"ext" toml:"ext"`
}

// AssetsConfig holds file locations.
type AssetsConfig struct {
	TexturePaths  []string `yaml:"texture_paths" toml:"texture_paths"`
	ShaderDir     string   `yaml:"shader_dir" toml:"shader_dir"` // empty uses the built-in shaders
	WatchShaders  bool     `yaml:"watch_shaders" toml:"watch_shaders"`
	ScreenshotDir string   `yaml:"screenshot_dir" toml:"screenshot_dir"`
}

// SceneConfig holds tessellation and the initial render modes.
type SceneConfig struct {
	Subdivisions       int     `yaml:"subdivisions" toml:"subdivisions"`
	ScreenSubdivisions int     `yaml:"screen_subdivisions" toml:"screen_subdivisions"`
	GlobalAmbient      float32 `yaml:"global_ambient" toml:"global_ambient"`
	Textures           bool    `yaml:"textures" toml:"textures"`
	NormalMaps         bool    `yaml:"normal_maps" toml:"normal_maps"`
	Outlines           bool    `yaml:"outlines" toml:"outlines"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:     800,
			Height:    600,
			VSync:     true,
			MSAA:      4,
			MinFilter: "linear_mipmap_linear",
			MagFilter: "linear",
		},
		Navigation: NavigationConfig{
			Velocity:     1,
			VelocityStep: 0.2,
			MinVelocity:  0.1,
			CameraRate:   72,
			KeyStep:      5,
			KeyAngle:     5,
		},
		Video: VideoConfig{
			FrameRate: 21,
			Frames:    336,
			Base:      "Video/futurama00",
			Ext:       ".jpg",
		},
		Assets: AssetsConfig{
			TexturePaths:  []string{"."},
			ScreenshotDir: "screenshots",
		},
		Scene: SceneConfig{
			Subdivisions:       2,
			ScreenSubdivisions: 1,
			GlobalAmbient:      0.4,
			Textures:           true,
			NormalMaps:         true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports settings the viewer cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.MSAA < 0 {
		errs = append(errs, fmt.Errorf("graphics: msaa_samples %d is negative", c.Graphics.MSAA))
	}
	if _, err := texture.ParseFilter(c.Graphics.MinFilter); err != nil {
		errs = append(errs, fmt.Errorf("graphics: min_filter: %w", err))
	}
	if _, err := texture.ParseFilter(c.Graphics.MagFilter); err != nil {
		errs = append(errs, fmt.Errorf("graphics: mag_filter: %w", err))
	}
	if c.Navigation.CameraRate <= 0 {
		errs = append(errs, fmt.Errorf("navigation: camera_rate %v must be positive", c.Navigation.CameraRate))
	}
	if c.Navigation.MinVelocity <= 0 || c.Navigation.VelocityStep <= 0 {
		errs = append(errs, errors.New("navigation: velocity_step and min_velocity must be positive"))
	}
	if c.Video.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("video: frame_rate %v must be positive", c.Video.FrameRate))
	}
	if c.Video.Frames < 0 {
		errs = append(errs, fmt.Errorf("video: frames %d is negative", c.Video.Frames))
	}
	if c.Scene.Subdivisions < 1 || c.Scene.ScreenSubdivisions < 1 {
		errs = append(errs, errors.New("scene: subdivisions must be at least 1"))
	}
	return errors.Join(errs...)
}
