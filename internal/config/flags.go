package config

import (
	"flag"
	"path/filepath"
	"strings"
)

var (
	flagConfig     = flag.String("config", "", "Path to config file (.yaml or .toml)")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagNoMSAA     = flag.Bool("no-msaa", false, "Disable multisampling")
	flagTextures   = flag.String("textures", "", "Texture search paths, separated by the OS list separator")
	flagShaders    = flag.String("shaders", "", "Load shaders from this directory instead of the built-in ones")
	flagWatch      = flag.Bool("watch-shaders", false, "Recompile shaders when files in the shader directory change")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagNoMSAA {
		cfg.Graphics.MSAA = 0
	}
	if *flagTextures != "" {
		cfg.Assets.TexturePaths = strings.Split(*flagTextures, string(filepath.ListSeparator))
	}
	if *flagShaders != "" {
		cfg.Assets.ShaderDir = *flagShaders
	}
	if *flagWatch {
		cfg.Assets.WatchShaders = true
	}
}
