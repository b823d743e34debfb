// Package shader compiles the lighting program and looks up its attribute
// and uniform locations.
package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/roomview/internal/engine/shader/shaders"
)

type stage struct {
	kind   uint32
	file   string
	source string
}

// Compile builds and links the program described by src. Errors carry the
// driver's info log and name the stage file that failed.
func Compile(src shaders.Source) (uint32, error) {
	stages := []stage{
		{gl.VERTEX_SHADER, shaders.VertexFile, src.Vertex},
		{gl.FRAGMENT_SHADER, shaders.FragmentFile, src.Fragment},
	}

	program := gl.CreateProgram()
	for _, st := range stages {
		id, err := st.compile()
		if err != nil {
			gl.DeleteProgram(program)
			return 0, err
		}
		gl.AttachShader(program, id)
		// Flagged for deletion; freed together with the program.
		gl.DeleteShader(id)
	}
	gl.LinkProgram(program)

	var ok int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		var n int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
		msg := infoLog(n, func(buf *uint8) { gl.GetProgramInfoLog(program, n, nil, buf) })
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", msg)
	}
	return program, nil
}

func (st stage) compile() (uint32, error) {
	id := gl.CreateShader(st.kind)
	csrc, free := gl.Strs(st.source + "\x00")
	gl.ShaderSource(id, 1, csrc, nil)
	free()
	gl.CompileShader(id)

	var ok int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &ok)
	if ok == gl.FALSE {
		var n int32
		gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &n)
		msg := infoLog(n, func(buf *uint8) { gl.GetShaderInfoLog(id, n, nil, buf) })
		gl.DeleteShader(id)
		return 0, fmt.Errorf("compile %s: %s", st.file, msg)
	}
	return id, nil
}

// infoLog reads a NUL-terminated driver log of n bytes.
func infoLog(n int32, read func(buf *uint8)) string {
	if n <= 1 {
		return "(no log)"
	}
	buf := make([]byte, n)
	read(&buf[0])
	return strings.TrimSpace(string(buf[:n-1]))
}

// Delete releases a program. Zero is ignored.
func Delete(program uint32) {
	if program != 0 {
		gl.DeleteProgram(program)
	}
}

func uniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func attrib(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}
