package shaders

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.3-core/gl"
)

// stageName labels a shader stage in diagnostics.
func stageName(shaderType uint32) string {
	switch shaderType {
	case gl.VERTEX_SHADER:
		return "VERTEX"
	case gl.FRAGMENT_SHADER:
		return "FRAGMENT"
	case gl.COMPUTE_SHADER:
		return "COMPUTE"
	default:
		return fmt.Sprintf("STAGE_0x%X", shaderType)
	}
}

// ReadSource loads a whole shader file. stage only labels the error.
func ReadSource(stage, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%s_SHADER_FILE [ %s ] NOT_FOUND: %w", strings.ToUpper(stage), path, err)
	}
	return string(data), nil
}

// compileShader compiles a single shader
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("SHADER_%s_COMPILATION_FAILED | %s", stageName(shaderType), trimLog(log))
	}

	return shader, nil
}

// linkProgram links compiled stages into a program. The stages are
// deleted whether or not linking succeeds.
func linkProgram(stages ...uint32) (uint32, error) {
	program := gl.CreateProgram()
	for _, s := range stages {
		gl.AttachShader(program, s)
	}
	gl.LinkProgram(program)

	for _, s := range stages {
		gl.DetachShader(program, s)
		gl.DeleteShader(s)
	}

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("SHADER_LINKING_FAILED | %s", trimLog(log))
	}

	return program, nil
}

// compileStages compiles each source with its type and links the result.
func compileStages(sources []string, types []uint32) (uint32, error) {
	compiled := make([]uint32, 0, len(sources))
	for i, src := range sources {
		s, err := compileShader(src, types[i])
		if err != nil {
			for _, c := range compiled {
				gl.DeleteShader(c)
			}
			return 0, err
		}
		compiled = append(compiled, s)
	}
	return linkProgram(compiled...)
}

func trimLog(log []byte) string {
	return strings.TrimRight(string(log), "\x00\r\n ")
}
