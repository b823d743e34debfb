package lighting

import "github.com/Faultbox/roomview/pkg/math"

// Set holds the lights emitted during one traversal, indexed by slot.
type Set struct {
	Lights        [MaxLights]Light
	GlobalAmbient math.Color4
}

// Clear disables every slot.
func (s *Set) Clear() {
	for i := range s.Lights {
		s.Lights[i] = NewLight()
	}
}

// Put stores a light in its slot.
func (s *Set) Put(index int, l Light) error {
	if err := CheckSlot(index); err != nil {
		return err
	}
	s.Lights[index] = l
	return nil
}

// EnabledCount returns how many slots hold an enabled light.
func (s *Set) EnabledCount() int {
	n := 0
	for _, l := range s.Lights {
		if l.Enabled {
			n++
		}
	}
	return n
}

// Positions returns homogeneous positions as a flat slice for GPU upload.
// Format: [x0, y0, z0, w0, x1, ...]
func (s *Set) Positions() []float32 {
	result := make([]float32, 0, MaxLights*4)
	for _, l := range s.Lights {
		result = append(result, l.Position[:]...)
	}
	return result
}

// Colors returns the ambient, diffuse and specular colors as flat RGBA slices.
func (s *Set) Colors() (ambient, diffuse, specular []float32) {
	ambient = make([]float32, 0, MaxLights*4)
	diffuse = make([]float32, 0, MaxLights*4)
	specular = make([]float32, 0, MaxLights*4)
	for _, l := range s.Lights {
		a, d, sp := l.Ambient.Array(), l.Diffuse.Array(), l.Specular.Array()
		ambient = append(ambient, a[:]...)
		diffuse = append(diffuse, d[:]...)
		specular = append(specular, sp[:]...)
	}
	return ambient, diffuse, specular
}

// Attenuations returns (constant, linear, quadratic) triples.
func (s *Set) Attenuations() []float32 {
	result := make([]float32, 0, MaxLights*3)
	for _, l := range s.Lights {
		result = append(result, l.ConstantAttenuation, l.LinearAttenuation, l.QuadraticAttenuation)
	}
	return result
}

// Spots returns spot directions as xyz triples and (exponent, cosine of
// cutoff) pairs. Lights without a spot get a cutoff cosine of -1, which
// lights the full sphere.
func (s *Set) Spots() (directions, params []float32) {
	directions = make([]float32, 0, MaxLights*3)
	params = make([]float32, 0, MaxLights*2)
	for _, l := range s.Lights {
		d := l.SpotDirection.Array()
		directions = append(directions, d[:]...)
		if !l.Spot {
			params = append(params, 0, -1)
			continue
		}
		params = append(params, l.SpotExponent, cosDeg(l.SpotCutoff))
	}
	return directions, params
}

// EnabledFlags returns 1 for enabled slots and 0 otherwise.
func (s *Set) EnabledFlags() []int32 {
	result := make([]int32, MaxLights)
	for i, l := range s.Lights {
		if l.Enabled {
			result[i] = 1
		}
	}
	return result
}
