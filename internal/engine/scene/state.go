package scene

import (
	"github.com/Faultbox/roomview/internal/engine/lighting"
	"github.com/Faultbox/roomview/pkg/math"
)

// State is the traversal context threaded through Draw. Nodes change it
// for their subtree and put back what they changed before returning.
type State struct {
	Renderer Renderer

	// Modes survive Init; the application owns them.
	Modes Modes

	Program uint32

	Model      math.Mat4
	View       math.Mat4
	Projection math.Mat4
	Eye        math.Vec3

	GlobalAmbient math.Color4
	Material      Material
	Texture       Binding
	NormalMap     Binding
	Lights        [lighting.MaxLights]lighting.Light

	stack []math.Mat4
}

// NewState returns an initialized state that emits to r.
func NewState(r Renderer) *State {
	s := &State{Renderer: r}
	s.Init()
	return s
}

// Init resets everything but the renderer and the modes. It runs at the
// start of every pass.
func (s *State) Init() {
	s.Program = 0
	s.Model = math.Identity()
	s.View = math.Identity()
	s.Projection = math.Identity()
	s.Eye = math.Vec3{}
	s.GlobalAmbient = math.Color4{}
	s.Material = DefaultMaterial()
	s.Texture = Binding{}
	s.NormalMap = Binding{}
	for i := range s.Lights {
		s.Lights[i] = lighting.NewLight()
	}
	s.stack = s.stack[:0]
}

// PushModel saves the model matrix.
func (s *State) PushModel() {
	s.stack = append(s.stack, s.Model)
}

// PopModel restores the last saved model matrix.
func (s *State) PopModel() {
	if len(s.stack) == 0 {
		panic("scene: PopModel without PushModel")
	}
	s.Model = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

// Depth returns the number of saved model matrices.
func (s *State) Depth() int { return len(s.stack) }

// Translate post-multiplies a translation into the model matrix.
func (s *State) Translate(x, y, z float32) {
	s.Model = s.Model.Mul(math.Translate(x, y, z))
}

// Scale post-multiplies a scale into the model matrix.
func (s *State) Scale(x, y, z float32) {
	s.Model = s.Model.Mul(math.Scale(x, y, z))
}

// RotateX post-multiplies a rotation about x, in degrees.
func (s *State) RotateX(deg float32) {
	s.Model = s.Model.Mul(math.RotateX(math.DegToRad(deg)))
}

// RotateY post-multiplies a rotation about y, in degrees.
func (s *State) RotateY(deg float32) {
	s.Model = s.Model.Mul(math.RotateY(math.DegToRad(deg)))
}

// RotateZ post-multiplies a rotation about z, in degrees.
func (s *State) RotateZ(deg float32) {
	s.Model = s.Model.Mul(math.RotateZ(math.DegToRad(deg)))
}
