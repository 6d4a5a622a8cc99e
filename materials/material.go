package materials

import (
	"fmt"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glpyramid/assert"
	"github.com/bloeys/glpyramid/shaders"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var (
	lastMatId uint32
)

// TextureSlot is the texture unit a material samples from
type TextureSlot uint32

const (
	TextureSlot_Diffuse TextureSlot = 0
)

type Material struct {
	Id         uint32
	Name       string
	ShaderProg shaders.ShaderProgram

	UnifLocs   map[string]int32
	AttribLocs map[string]int32

	DiffuseTex uint32
}

func (m *Material) Bind() {

	m.ShaderProg.Bind()

	if m.DiffuseTex != 0 {
		gl.ActiveTexture(uint32(gl.TEXTURE0 + TextureSlot_Diffuse))
		gl.BindTexture(gl.TEXTURE_2D, m.DiffuseTex)
	}
}

// LookupAttribLoc returns the location of attribName, or false if the program has no such active attribute
func (m *Material) LookupAttribLoc(attribName string) (int32, bool) {

	loc, ok := m.AttribLocs[attribName]
	if ok {
		return loc, loc != -1
	}

	name := gl.Str(attribName + "\x00")
	loc = gl.GetAttribLocation(m.ShaderProg.Id, name)
	m.AttribLocs[attribName] = loc
	return loc, loc != -1
}

// LookupUnifLoc returns the location of uniformName, or false if the program has no such active uniform
func (m *Material) LookupUnifLoc(uniformName string) (int32, bool) {

	loc, ok := m.UnifLocs[uniformName]
	if ok {
		return loc, loc != -1
	}

	name := gl.Str(uniformName + "\x00")
	loc = gl.GetUniformLocation(m.ShaderProg.Id, name)
	m.UnifLocs[uniformName] = loc
	return loc, loc != -1
}

func (m *Material) GetAttribLoc(attribName string) int32 {
	loc, ok := m.LookupAttribLoc(attribName)
	assert.T(ok, "Attribute '"+attribName+"' doesn't exist on material "+m.Name)
	return loc
}

func (m *Material) GetUnifLoc(uniformName string) int32 {
	loc, ok := m.LookupUnifLoc(uniformName)
	assert.T(ok, "Uniform '"+uniformName+"' doesn't exist on material "+m.Name)
	return loc
}

func (m *Material) EnableAttribute(attribName string) {
	gl.EnableVertexAttribArray(uint32(m.GetAttribLoc(attribName)))
}

func (m *Material) SetUnifInt32(uniformName string, val int32) {
	gl.ProgramUniform1i(m.ShaderProg.Id, m.GetUnifLoc(uniformName), val)
}

func SetUnifVec4(shaderProgId uint32, unifLoc int32, vec4 *gglm.Vec4) {
	gl.ProgramUniform4fv(shaderProgId, unifLoc, 1, &vec4.Data[0])
}

func (m *Material) SetUnifMat4(uniformName string, mat4 *gglm.Mat4) {
	SetUnifMat4(m.ShaderProg.Id, m.GetUnifLoc(uniformName), mat4)
}

func SetUnifMat4(shaderProgId uint32, unifLoc int32, mat4 *gglm.Mat4) {
	gl.ProgramUniformMatrix4fv(shaderProgId, unifLoc, 1, false, &mat4.Data[0][0])
}

func (m *Material) Delete() {
	m.ShaderProg.Delete()
}

func getNewMatId() uint32 {
	lastMatId++
	return lastMatId
}

func newMaterial(matName string, shdrProg shaders.ShaderProgram) Material {
	return Material{
		Id:         getNewMatId(),
		Name:       matName,
		ShaderProg: shdrProg,
		UnifLocs:   make(map[string]int32),
		AttribLocs: make(map[string]int32),
	}
}

// NewMaterial creates a material from a combined shader file
func NewMaterial(matName, shaderPath string) (Material, error) {

	shdrProg, err := shaders.LoadAndCompileCombinedShader(shaderPath)
	if err != nil {
		return Material{}, fmt.Errorf("failed to create new material '%s': %w", matName, err)
	}

	return newMaterial(matName, shdrProg), nil
}

// NewMaterialSrc creates a material from separate vertex and fragment sources
func NewMaterialSrc(matName string, vertSrc, fragSrc []byte) (Material, error) {

	shdrProg, err := shaders.CompileProgram(
		shaders.Source{Type: shaders.ShaderType_Vertex, Src: vertSrc},
		shaders.Source{Type: shaders.ShaderType_Fragment, Src: fragSrc},
	)
	if err != nil {
		return Material{}, fmt.Errorf("failed to create new material '%s': %w", matName, err)
	}

	return newMaterial(matName, shdrProg), nil
}
