// Package app implements the viewer main loop and owns every runtime
// object: window, renderer, camera, room, render modes and timers.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/roomview/internal/config"
	"github.com/Faultbox/roomview/internal/controls"
	"github.com/Faultbox/roomview/internal/engine/camera"
	"github.com/Faultbox/roomview/internal/engine/debug"
	"github.com/Faultbox/roomview/internal/engine/input"
	"github.com/Faultbox/roomview/internal/engine/renderer"
	"github.com/Faultbox/roomview/internal/engine/scene"
	"github.com/Faultbox/roomview/internal/engine/shader"
	"github.com/Faultbox/roomview/internal/engine/shader/shaders"
	"github.com/Faultbox/roomview/internal/engine/texture"
	"github.com/Faultbox/roomview/internal/engine/ticker"
	"github.com/Faultbox/roomview/internal/engine/window"
	"github.com/Faultbox/roomview/internal/logger"
	"github.com/Faultbox/roomview/internal/room"
	"github.com/Faultbox/roomview/pkg/math"
)

// Title is the window title.
const Title = "Room View"

// App is the viewer instance.
type App struct {
	config  *config.Config
	log     *zap.Logger
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	viewer   *camera.Camera
	room     *room.Room
	state    *scene.State
	controls *controls.Controls

	cameraTimer *ticker.Ticker
	videoTimer  *ticker.Ticker

	shots          *debug.ScreenshotCapture
	wantScreenshot bool
	watcher        *shaders.Watcher
}

// New creates the window and GL context, compiles the shaders and builds
// the room.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		config: cfg,
		log:    logger.Named("app"),
		input:  input.New(),
		viewer: camera.New(),
		shots:  debug.NewScreenshotCapture(cfg.Assets.ScreenshotDir, "roomview"),
	}
	a.log.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	var err error
	if a.cameraTimer, err = ticker.New(cfg.Navigation.CameraRate); err != nil {
		return nil, fmt.Errorf("camera timer: %w", err)
	}
	if a.videoTimer, err = ticker.New(cfg.Video.FrameRate); err != nil {
		return nil, fmt.Errorf("video timer: %w", err)
	}

	// Create window (this also creates OpenGL context)
	a.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		Samples:    cfg.Graphics.MSAA,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	width, height := a.window.GetSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:       width,
		Height:      height,
		ClearColor:  math.Color4{},
		Multisample: a.window.Multisampled(),
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	if err := a.buildScene(width, height); err != nil {
		a.Close()
		return nil, err
	}

	if cfg.Assets.WatchShaders {
		a.watchShaders()
	}

	a.log.Info("viewer initialized")
	return a, nil
}

// buildScene compiles the program, places the camera and builds the room.
func (a *App) buildScene(width, height int) error {
	cfg := a.config

	src, err := shaders.Load(cfg.Assets.ShaderDir)
	if err != nil {
		return fmt.Errorf("failed to load shaders: %w", err)
	}
	program, err := shader.Compile(src)
	if err != nil {
		return fmt.Errorf("failed to compile shaders: %w", err)
	}

	room.ResetView(a.viewer)
	a.viewer.SetPerspective(room.FieldOfView, float32(width)/float32(height), room.Near, room.Far)

	a.room, err = room.Build(a.renderer, texture.NewLoader(cfg.Assets.TexturePaths...), program, a.viewer, room.Config{
		Subdivisions:       cfg.Scene.Subdivisions,
		ScreenSubdivisions: cfg.Scene.ScreenSubdivisions,
		VideoBase:          cfg.Video.Base,
		VideoExt:           cfg.Video.Ext,
		VideoFrames:        cfg.Video.Frames,
		GlobalAmbient:      cfg.Scene.GlobalAmbient,
	})
	if err != nil {
		shader.Delete(program)
		return fmt.Errorf("failed to build room: %w", err)
	}

	// Both names were checked by config validation.
	minFilter, _ := texture.ParseFilter(cfg.Graphics.MinFilter)
	magFilter, _ := texture.ParseFilter(cfg.Graphics.MagFilter)
	a.room.UpdateTextureFilters(a.renderer, minFilter, magFilter)

	a.state = scene.NewState(a.renderer)
	a.state.Modes = scene.Modes{
		Textures:   cfg.Scene.Textures,
		NormalMaps: cfg.Scene.NormalMaps,
		Outlines:   cfg.Scene.Outlines,
	}

	winW, winH := a.window.WindowSize()
	a.controls = controls.New(a.viewer, controls.Settings{
		Velocity:     cfg.Navigation.Velocity,
		VelocityStep: cfg.Navigation.VelocityStep,
		MinVelocity:  cfg.Navigation.MinVelocity,
		KeyStep:      cfg.Navigation.KeyStep,
		KeyAngle:     cfg.Navigation.KeyAngle,
	}, winW, winH)

	if a.room.Video.Animated() && a.room.Video.PoweredOn() {
		a.videoTimer.Start(time.Now())
	}
	return a.renderer.CheckError("scene setup")
}

// watchShaders starts the hot-reload watcher. Without a shader directory
// there is nothing on disk to watch.
func (a *App) watchShaders() {
	dir := a.config.Assets.ShaderDir
	if dir == "" {
		a.log.Warn("watch_shaders needs assets.shader_dir; using built-in shaders without reload")
		return
	}
	w, err := shaders.NewWatcher(dir)
	if err != nil {
		a.log.Warn("shader watcher unavailable", zap.String("dir", dir), zap.Error(err))
		return
	}
	a.watcher = w
	a.log.Info("watching shaders", zap.String("dir", dir))
}

// Run starts the main loop and returns when the window closes or Esc is
// pressed.
func (a *App) Run() error {
	a.running = true

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting main loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		// 1. Process input
		if a.input.Update() {
			a.running = false
			break
		}
		for _, event := range a.input.Events() {
			a.handleEvent(event, now)
		}

		// 2. Advance timers and reload edited shaders
		a.update(now)

		// 3. Render
		a.renderer.Clear()
		a.room.Draw(a.state, a.renderer)
		if a.wantScreenshot {
			a.wantScreenshot = false
			a.screenshot()
		}

		// 4. Present (swap buffers)
		a.window.SwapBuffers()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frameCount), zap.Duration("dt", dt))
			a.renderer.CheckError("frame")
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// update runs the timer callbacks that came due since the last frame.
func (a *App) update(now time.Time) {
	for n := a.cameraTimer.Poll(now); n > 0; n-- {
		a.controls.Step()
	}
	for n := a.videoTimer.Poll(now); n > 0; n-- {
		a.room.Video.UpdateFrame()
	}

	if a.watcher == nil {
		return
	}
	select {
	case name := <-a.watcher.Changed():
		a.reloadShaders(name)
	default:
	}
}

// reloadShaders recompiles the program from the shader directory. A
// program that fails to build is reported and the current one stays.
func (a *App) reloadShaders(changed string) {
	src, err := shaders.Load(a.config.Assets.ShaderDir)
	if err == nil {
		var program uint32
		if program, err = shader.Compile(src); err == nil {
			old := a.room.Program()
			a.room.SetProgram(program)
			a.renderer.ForgetProgram(old)
			shader.Delete(old)
			a.log.Info("shaders reloaded", zap.String("changed", changed), zap.Uint32("program", program))
			return
		}
	}
	a.log.Warn("shader reload failed, keeping current program", zap.String("changed", changed), zap.Error(err))
}

// screenshot saves the back buffer.
func (a *App) screenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases every resource the viewer created.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.watcher != nil {
		a.watcher.Close()
	}
	if a.room != nil {
		shader.Delete(a.room.Program())
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
