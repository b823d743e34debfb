// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
)

// Key names the non-character keys the viewer reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyF12
)

// Mouse buttons.
const (
	ButtonLeft  = uint8(sdl.BUTTON_LEFT)
	ButtonRight = uint8(sdl.BUTTON_RIGHT)
)

// Event represents a processed input event.
type Event struct {
	Type EventType
	// Rune is the character of a key event with shift applied, or 0.
	Rune   rune
	Key    Key
	Repeat bool
	Width  int
	Height int
	MouseX int
	MouseY int
	Button uint8
}

// Input handles all input processing.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to viewer events.
// Returns true if the window was asked to close.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			t := EventKeyDown
			if e.Type == sdl.KEYUP {
				t = EventKeyUp
			}
			i.events = append(i.events, Event{
				Type:   t,
				Rune:   keyRune(e.Keysym.Sym, e.Keysym.Mod),
				Key:    namedKey(e.Keysym.Sym),
				Repeat: e.Repeat != 0,
			})

		case *sdl.MouseMotionEvent:
			i.events = append(i.events, Event{
				Type:   EventMouseMove,
				MouseX: int(e.X),
				MouseY: int(e.Y),
			})

		case *sdl.MouseButtonEvent:
			t := EventMouseDown
			if e.Type == sdl.MOUSEBUTTONUP {
				t = EventMouseUp
			}
			i.events = append(i.events, Event{
				Type:   t,
				MouseX: int(e.X),
				MouseY: int(e.Y),
				Button: e.Button,
			})
		}
	}

	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// keyRune maps letters, digits and punctuation to the character they type,
// upper-casing letters when exactly one of shift and caps lock is active.
func keyRune(sym sdl.Keycode, mod uint16) rune {
	if sym < 0x20 || sym > 0x7e {
		return 0
	}
	r := rune(sym)
	if r >= 'a' && r <= 'z' {
		shift := mod&uint16(sdl.KMOD_SHIFT) != 0
		caps := mod&uint16(sdl.KMOD_CAPS) != 0
		if shift != caps {
			r -= 'a' - 'A'
		}
	}
	return r
}

func namedKey(sym sdl.Keycode) Key {
	switch sym {
	case sdl.K_ESCAPE:
		return KeyEscape
	case sdl.K_F12:
		return KeyF12
	default:
		return KeyNone
	}
}
