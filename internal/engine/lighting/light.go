// Package lighting holds the light parameters shared by the scene graph
// and the renderer.
package lighting

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/Faultbox/roomview/pkg/math"
)

// MaxLights is the number of light slots supported by the lighting shader.
const MaxLights = 8

// ErrSlotOutOfRange is returned for a light index outside [0, MaxLights).
var ErrSlotOutOfRange = errors.New("light slot out of range")

// Light is a positional (Position.W == 1) or directional (W == 0) light.
// A positional light becomes a spotlight when Spot is set.
type Light struct {
	Enabled  bool
	Position math.Vec4

	Ambient  math.Color4
	Diffuse  math.Color4
	Specular math.Color4

	// Distance attenuation 1 / (c + l*d + q*d*d), positional lights only.
	ConstantAttenuation  float32
	LinearAttenuation    float32
	QuadraticAttenuation float32

	Spot          bool
	SpotDirection math.Vec3
	SpotExponent  float32
	SpotCutoff    float32 // degrees
}

// NewLight returns a disabled white light at the origin with no
// attenuation.
func NewLight() Light {
	return Light{
		Position:            math.Point(0, 0, 0),
		Ambient:             math.RGB(0, 0, 0),
		Diffuse:             math.RGB(1, 1, 1),
		Specular:            math.RGB(1, 1, 1),
		ConstantAttenuation: 1,
		SpotDirection:       math.Vec3{Z: -1},
		SpotCutoff:          180,
	}
}

// Transformed returns the light with its position and spot direction
// carried through the model matrix m.
func (l Light) Transformed(m math.Mat4) Light {
	l.Position = m.MulVec4(l.Position)
	if l.Spot {
		l.SpotDirection = m.TransformDirection(l.SpotDirection).Normalize()
	}
	return l
}

// CheckSlot validates a light index.
func CheckSlot(index int) error {
	if index < 0 || index >= MaxLights {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrSlotOutOfRange, index, MaxLights)
	}
	return nil
}

func cosDeg(deg float32) float32 {
	return float32(gomath.Cos(float64(math.DegToRad(deg))))
}
