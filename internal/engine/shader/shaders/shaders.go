// Package shaders holds the GLSL sources of the lighting program: the
// embedded default, loading from a directory, and watching that directory
// for edits.
package shaders

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed lighting.vert
var lightingVertex string

//go:embed lighting.frag
var lightingFragment string

// Shader file names inside a shader directory.
const (
	VertexFile   = "lighting.vert"
	FragmentFile = "lighting.frag"
)

// Source holds the GLSL text of a program.
type Source struct {
	Vertex   string
	Fragment string
}

// Embedded returns the lighting program compiled into the binary.
func Embedded() Source {
	return Source{Vertex: lightingVertex, Fragment: lightingFragment}
}

// Load reads the lighting program from dir. An empty dir selects the
// embedded program.
func Load(dir string) (Source, error) {
	if dir == "" {
		return Embedded(), nil
	}
	vert, err := os.ReadFile(filepath.Join(dir, VertexFile))
	if err != nil {
		return Source{}, fmt.Errorf("read vertex shader: %w", err)
	}
	frag, err := os.ReadFile(filepath.Join(dir, FragmentFile))
	if err != nil {
		return Source{}, fmt.Errorf("read fragment shader: %w", err)
	}
	return Source{Vertex: string(vert), Fragment: string(frag)}, nil
}
