package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test graphics defaults
	if cfg.Graphics.Width != 800 {
		t.Errorf("expected width 800, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 600 {
		t.Errorf("expected height 600, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if cfg.Graphics.MSAA != 4 {
		t.Errorf("expected 4 msaa samples, got %d", cfg.Graphics.MSAA)
	}

	// Test navigation defaults
	if cfg.Navigation.Velocity != 1 || cfg.Navigation.CameraRate != 72 {
		t.Errorf("expected velocity 1 at 72 Hz, got %v at %v", cfg.Navigation.Velocity, cfg.Navigation.CameraRate)
	}

	// Test video defaults
	if cfg.Video.FrameRate != 21 || cfg.Video.Frames != 336 {
		t.Errorf("expected 336 frames at 21 Hz, got %d at %v", cfg.Video.Frames, cfg.Video.FrameRate)
	}

	// Test scene defaults
	if !cfg.Scene.Textures || !cfg.Scene.NormalMaps || cfg.Scene.Outlines {
		t.Errorf("unexpected initial modes: %+v", cfg.Scene)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Graphics.Width = 0
	cfg.Graphics.MinFilter = "bilinear"
	cfg.Video.FrameRate = 0
	cfg.Scene.Subdivisions = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"graphics: size", "min_filter", "frame_rate", "subdivisions"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  msaa_samples: 0

navigation:
  velocity: 2.5
  camera_rate: 60

video:
  base: "Clips/show"
  frames: 12

assets:
  texture_paths: ["assets", "/usr/share/roomview"]
  watch_shaders: true

scene:
  outlines: true

logging:
  level: "debug"
  log_file: "roomview.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.MSAA != 0 {
		t.Errorf("expected msaa 0, got %d", cfg.Graphics.MSAA)
	}
	if cfg.Navigation.Velocity != 2.5 || cfg.Navigation.CameraRate != 60 {
		t.Errorf("navigation: got %+v", cfg.Navigation)
	}
	// Unset keys keep their defaults
	if cfg.Navigation.KeyStep != 5 {
		t.Errorf("expected key step 5 from defaults, got %v", cfg.Navigation.KeyStep)
	}
	if cfg.Video.Base != "Clips/show" || cfg.Video.Frames != 12 || cfg.Video.Ext != ".jpg" {
		t.Errorf("video: got %+v", cfg.Video)
	}
	if !reflect.DeepEqual(cfg.Assets.TexturePaths, []string{"assets", "/usr/share/roomview"}) {
		t.Errorf("texture paths: got %v", cfg.Assets.TexturePaths)
	}
	if !cfg.Assets.WatchShaders {
		t.Error("expected watch_shaders to be true")
	}
	if !cfg.Scene.Outlines || !cfg.Scene.Textures {
		t.Errorf("scene: got %+v", cfg.Scene)
	}
	if cfg.Logging.LogFile != "roomview.log" {
		t.Errorf("expected log file 'roomview.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	tomlContent := `
[graphics]
width = 1024
mag_filter = "nearest"

[video]
frame_rate = 30.0

[assets]
shader_dir = "shaders"
`
	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Graphics.Width != 1024 || cfg.Graphics.Height != 600 {
		t.Errorf("expected 1024x600, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Graphics.MagFilter != "nearest" {
		t.Errorf("expected mag filter nearest, got %s", cfg.Graphics.MagFilter)
	}
	if cfg.Video.FrameRate != 30 {
		t.Errorf("expected frame rate 30, got %v", cfg.Video.FrameRate)
	}
	if cfg.Assets.ShaderDir != "shaders" {
		t.Errorf("expected shader dir 'shaders', got %s", cfg.Assets.ShaderDir)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()

	files := map[string]string{
		"invalid.yaml": "graphics:\n  width: not a number\n  invalid syntax here\n",
		"invalid.toml": "[graphics\nwidth = \n",
	}
	for name, content := range files {
		configPath := filepath.Join(tmpDir, name)
		if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}
		if err := loadFromFile(Default(), configPath); err == nil {
			t.Errorf("%s: expected error, got nil", name)
		}
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	// Save current directory
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", filepath.Join(tmpDir, "home"))

	// No config file exists - should return empty
	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	// A TOML file in the current directory is found
	if err := os.WriteFile("config.toml", []byte("[graphics]\nwidth = 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path := findConfigFile(); filepath.Base(path) != "config.toml" {
		t.Errorf("expected config.toml, got %q", path)
	}

	// YAML wins when both exist
	if err := os.WriteFile("config.yaml", []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path := findConfigFile(); filepath.Base(path) != "config.yaml" {
		t.Errorf("expected config.yaml, got %q", path)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "fullscreen flag",
			setup: func() {
				*flagFullscreen = true
			},
			verify: func(cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() {
				*flagFullscreen = false
			},
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Graphics.Width)
				}
				if cfg.Graphics.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "no-msaa flag",
			setup: func() {
				*flagNoMSAA = true
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.MSAA != 0 {
					t.Errorf("expected msaa 0, got %d", cfg.Graphics.MSAA)
				}
			},
			teardown: func() {
				*flagNoMSAA = false
			},
		},
		{
			name: "asset flags",
			setup: func() {
				*flagTextures = "a" + string(filepath.ListSeparator) + "b"
				*flagShaders = "glsl"
				*flagWatch = true
			},
			verify: func(cfg *Config) {
				if !reflect.DeepEqual(cfg.Assets.TexturePaths, []string{"a", "b"}) {
					t.Errorf("expected texture paths [a b], got %v", cfg.Assets.TexturePaths)
				}
				if cfg.Assets.ShaderDir != "glsl" || !cfg.Assets.WatchShaders {
					t.Errorf("shader flags not applied: %+v", cfg.Assets)
				}
			},
			teardown: func() {
				*flagTextures = ""
				*flagShaders = ""
				*flagWatch = false
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}

	// Height should be from file (900) since no flag override
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("video:\n  frame_rate: 0\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "frame_rate") {
		t.Errorf("expected frame_rate error, got %v", err)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"out/config.yaml", "out/config.toml"} {
		want := Default()
		want.Graphics.Width = 1234
		want.Assets.TexturePaths = []string{"x", "y"}

		path := filepath.Join(tmpDir, name)
		if err := want.SaveTo(path); err != nil {
			t.Fatalf("%s: SaveTo: %v", name, err)
		}
		got := &Config{}
		if err := loadFromFile(got, path); err != nil {
			t.Fatalf("%s: reload: %v", name, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%s: got %+v, want %+v", name, got, want)
		}
	}
}
