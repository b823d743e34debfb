package scene

import (
	"github.com/Faultbox/roomview/internal/engine/lighting"
)

// Light places a light in a shader slot. The position is carried through
// the model matrix at the node, so a light under a transform moves with it.
type Light struct {
	children
	index int
	Light lighting.Light
}

// NewLight returns a node for slot index holding a default light.
func NewLight(index int) (*Light, error) {
	if err := lighting.CheckSlot(index); err != nil {
		return nil, err
	}
	return &Light{index: index, Light: lighting.NewLight()}, nil
}

// Index returns the shader slot.
func (l *Light) Index() int { return l.index }

// Draw emits the light for the subtree and restores the slot afterwards.
func (l *Light) Draw(s *State) {
	prev := s.Lights[l.index]

	lit := l.Light.Transformed(s.Model)
	s.Lights[l.index] = lit
	s.Renderer.SetLight(l.index, lit)

	l.drawChildren(s)

	s.Lights[l.index] = prev
	s.Renderer.SetLight(l.index, prev)
}
