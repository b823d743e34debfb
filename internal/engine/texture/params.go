package texture

import "fmt"

// Wrap is a texture coordinate wrapping mode.
type Wrap int

const (
	Repeat Wrap = iota
	ClampToEdge
	MirroredRepeat
)

// Filter is a texture sampling filter.
type Filter int

const (
	Linear Filter = iota
	Nearest
	LinearMipmapLinear
	LinearMipmapNearest
	NearestMipmapNearest
)

// Mipmapped reports whether the filter samples mipmap levels.
func (f Filter) Mipmapped() bool {
	return f == LinearMipmapLinear || f == LinearMipmapNearest || f == NearestMipmapNearest
}

// Params describes how an uploaded texture is sampled.
type Params struct {
	WrapS, WrapT Wrap
	Min, Mag     Filter
}

// RepeatParams tiles the image with trilinear minification.
func RepeatParams() Params {
	return Params{WrapS: Repeat, WrapT: Repeat, Min: LinearMipmapLinear, Mag: Linear}
}

// ClampParams stretches the image once across the surface.
func ClampParams() Params {
	return Params{WrapS: ClampToEdge, WrapT: ClampToEdge, Min: LinearMipmapLinear, Mag: Linear}
}

var filterNames = map[string]Filter{
	"linear":                 Linear,
	"nearest":                Nearest,
	"linear_mipmap_linear":   LinearMipmapLinear,
	"linear_mipmap_nearest":  LinearMipmapNearest,
	"nearest_mipmap_nearest": NearestMipmapNearest,
}

// ParseFilter maps a config name such as "linear_mipmap_linear" to a Filter.
func ParseFilter(name string) (Filter, error) {
	f, ok := filterNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown texture filter %q", name)
	}
	return f, nil
}
