// Package shaders compiles GLSL programs and sets their uniforms.
package shaders

import (
	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program is a linked GL program. The zero value is not usable; obtain
// one from NewProgram or NewComputeProgram.
type Program struct {
	id        uint32
	locations map[string]int32
}

func newProgram(id uint32) *Program {
	return &Program{id: id, locations: make(map[string]int32)}
}

// NewProgram compiles and links a vertex/fragment pair.
func NewProgram(vertexSource, fragmentSource string) (*Program, error) {
	id, err := compileStages(
		[]string{vertexSource, fragmentSource},
		[]uint32{gl.VERTEX_SHADER, gl.FRAGMENT_SHADER},
	)
	if err != nil {
		return nil, err
	}
	return newProgram(id), nil
}

// NewComputeProgram compiles and links a single compute stage.
func NewComputeProgram(computeSource string) (*Program, error) {
	id, err := compileStages([]string{computeSource}, []uint32{gl.COMPUTE_SHADER})
	if err != nil {
		return nil, err
	}
	return newProgram(id), nil
}

// NewProgramFromFiles reads and builds a vertex/fragment program.
func NewProgramFromFiles(vertexPath, fragmentPath string) (*Program, error) {
	vert, err := ReadSource("vertex", vertexPath)
	if err != nil {
		return nil, err
	}
	frag, err := ReadSource("fragment", fragmentPath)
	if err != nil {
		return nil, err
	}
	return NewProgram(vert, frag)
}

// NewComputeProgramFromFile reads and builds a compute program.
func NewComputeProgramFromFile(computePath string) (*Program, error) {
	src, err := ReadSource("compute", computePath)
	if err != nil {
		return nil, err
	}
	return NewComputeProgram(src)
}

func (p *Program) Use() { gl.UseProgram(p.id) }

func (p *Program) Unuse() { gl.UseProgram(0) }

// Delete releases the GL program. The Program must not be used afterwards.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

// location caches uniform lookups; -1 (inactive uniform) is cached too
// and makes the setters no-ops, as in GL.
func (p *Program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.locations[name] = loc
	return loc
}

// The setters write to the program's uniforms; Use must have been called
// on p first.

func (p *Program) SetInt(name string, v int32) {
	gl.Uniform1i(p.location(name), v)
}

func (p *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(p.location(name), v)
}

func (p *Program) SetVec2(name string, v mgl32.Vec2) {
	gl.Uniform2fv(p.location(name), 1, &v[0])
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3fv(p.location(name), 1, &v[0])
}

func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	gl.Uniform4fv(p.location(name), 1, &v[0])
}

func (p *Program) SetIVec2(name string, v [2]int32) {
	gl.Uniform2iv(p.location(name), 1, &v[0])
}

func (p *Program) SetIVec3(name string, v [3]int32) {
	gl.Uniform3iv(p.location(name), 1, &v[0])
}

func (p *Program) SetIVec4(name string, v [4]int32) {
	gl.Uniform4iv(p.location(name), 1, &v[0])
}

// SetMat4 uploads m column-major (transpose=false), mgl32's native order.
func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, &m[0])
}
