package app

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/roomview/internal/controls"
	"github.com/Faultbox/roomview/internal/engine/input"
	"github.com/Faultbox/roomview/internal/room"
)

func (a *App) handleEvent(e input.Event, now time.Time) {
	switch e.Type {
	case input.EventWindowResize:
		a.resize(e.Width, e.Height)

	case input.EventKeyDown:
		switch e.Key {
		case input.KeyEscape:
			a.running = false
		case input.KeyF12:
			if !e.Repeat {
				a.wantScreenshot = true
			}
		default:
			if e.Rune != 0 {
				a.apply(a.controls.Key(e.Rune), now)
			}
		}

	case input.EventMouseDown:
		if e.Button != input.ButtonLeft && e.Button != input.ButtonRight {
			return
		}
		a.controls.Press(e.MouseX, e.MouseY, e.Button == input.ButtonLeft)
		a.cameraTimer.Start(now)

	case input.EventMouseUp:
		if !a.controls.Dragging() {
			return
		}
		a.controls.Release()
		a.cameraTimer.Stop()

	case input.EventMouseMove:
		a.controls.Move(e.MouseX, e.MouseY)
	}
}

// apply carries out the toggles the controls hand back.
func (a *App) apply(action controls.Action, now time.Time) {
	modes := &a.state.Modes
	switch action {
	case controls.None:
		return
	case controls.ResetView:
		room.ResetView(a.viewer)
	case controls.TogglePower:
		video := a.room.Video
		video.TogglePower()
		if video.PoweredOn() && video.Animated() {
			a.videoTimer.Start(now)
		} else {
			a.videoTimer.Stop()
		}
	case controls.ToggleTextures:
		modes.Textures = !modes.Textures
	case controls.ToggleOutlines:
		modes.Outlines = !modes.Outlines
	case controls.ToggleNormalMaps:
		modes.NormalMaps = !modes.NormalMaps
	}
	a.log.Debug("key action",
		zap.Stringer("action", action),
		zap.Bool("textures", modes.Textures),
		zap.Bool("normal_maps", modes.NormalMaps),
		zap.Bool("outlines", modes.Outlines),
		zap.Bool("tv_on", a.room.Video.PoweredOn()),
	)
}

// resize follows a window size change: the viewport uses drawable pixels,
// mouse navigation uses window coordinates.
func (a *App) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	dw, dh := a.window.GetSize()
	a.renderer.Resize(dw, dh)
	a.viewer.ChangeAspectRatio(float32(dw) / float32(dh))
	a.controls.Resize(width, height)
}
