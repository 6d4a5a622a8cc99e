package shaders

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bloeys/glpyramid/assert"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type ShaderProgram struct {
	Id           uint32
	VertShaderId uint32
	FragShaderId uint32
}

func (sp *ShaderProgram) AttachShader(shader Shader) {

	gl.AttachShader(sp.Id, shader.Id)
	switch shader.Type {
	case ShaderType_Vertex:
		sp.VertShaderId = shader.Id
	case ShaderType_Fragment:
		sp.FragShaderId = shader.Id
	default:
		assert.T(false, "Unknown shader type '%d' for shader id '%d'", shader.Type, shader.Id)
	}
}

// Link links the attached shaders and deletes them afterwards, whether linking worked or not.
func (sp *ShaderProgram) Link() error {

	gl.LinkProgram(sp.Id)

	if sp.VertShaderId != 0 {
		gl.DeleteShader(sp.VertShaderId)
		sp.VertShaderId = 0
	}

	if sp.FragShaderId != 0 {
		gl.DeleteShader(sp.FragShaderId)
		sp.FragShaderId = 0
	}

	var linkedSuccessfully int32
	gl.GetProgramiv(sp.Id, gl.LINK_STATUS, &linkedSuccessfully)
	if linkedSuccessfully == gl.TRUE {
		return nil
	}

	var logLength int32
	gl.GetProgramiv(sp.Id, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return fmt.Errorf("linking of shader program with id %d failed", sp.Id)
	}

	log := gl.Str(strings.Repeat("\x00", int(logLength)))
	gl.GetProgramInfoLog(sp.Id, logLength, nil, log)

	return errors.New("linking shader program failed: " + gl.GoStr(log))
}

func (s *ShaderProgram) Bind() {
	gl.UseProgram(s.Id)
}

func (s *ShaderProgram) UnBind() {
	gl.UseProgram(0)
}

// Delete releases the program. Safe on a zero ShaderProgram
func (s *ShaderProgram) Delete() {

	if s.Id == 0 {
		return
	}

	gl.DeleteProgram(s.Id)
	s.Id = 0
}
