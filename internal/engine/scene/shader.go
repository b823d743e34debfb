package scene

import "github.com/Faultbox/roomview/pkg/math"

// Shader selects the lighting program for its subtree and publishes the
// global ambient light and the render modes.
type Shader struct {
	children
	Program       uint32
	GlobalAmbient math.Color4
}

// NewShader returns a node for program.
func NewShader(program uint32) *Shader {
	return &Shader{Program: program, GlobalAmbient: math.RGB(0.2, 0.2, 0.2)}
}

// Draw binds the program, emits modes and ambient, then draws children.
func (sh *Shader) Draw(s *State) {
	prevProgram, prevAmbient := s.Program, s.GlobalAmbient

	s.Program = sh.Program
	s.GlobalAmbient = sh.GlobalAmbient
	s.Renderer.UseProgram(sh.Program)
	s.Renderer.SetModes(s.Modes)
	s.Renderer.SetGlobalAmbient(sh.GlobalAmbient)

	sh.drawChildren(s)

	s.Program, s.GlobalAmbient = prevProgram, prevAmbient
	if prevProgram != 0 && prevProgram != sh.Program {
		s.Renderer.UseProgram(prevProgram)
		s.Renderer.SetGlobalAmbient(prevAmbient)
	}
}
