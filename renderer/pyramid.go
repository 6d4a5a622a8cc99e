package renderer

import (
	"errors"
	"fmt"
	"os"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glpyramid/assert"
	"github.com/bloeys/glpyramid/controller"
	"github.com/bloeys/glpyramid/logging"
	"github.com/bloeys/glpyramid/meshes"
)

const (
	PositionAttribName = "a_position"
)

type uniform int

const (
	uniformColor uniform = iota
	uniformMvpMatrix
	uniformCount
)

var uniformNames = [uniformCount]string{
	uniformColor:     "color",
	uniformMvpMatrix: "mvp_matrix",
}

// ShaderSources holds the GLSL of the pyramid program
type ShaderSources struct {
	Vert []byte
	Frag []byte
}

// LoadShaderSources reads the vertex and fragment shader files
func LoadShaderSources(vertPath, fragPath string) (ShaderSources, error) {

	vert, err := os.ReadFile(vertPath)
	if err != nil {
		return ShaderSources{}, fmt.Errorf("failed to read vertex shader: %w", err)
	}

	frag, err := os.ReadFile(fragPath)
	if err != nil {
		return ShaderSources{}, fmt.Errorf("failed to read fragment shader: %w", err)
	}

	return ShaderSources{Vert: vert, Frag: frag}, nil
}

type Options struct {
	// ApplyZRotation adds the z angle to the model matrix. Off by default, the z angle is
	// then only tracked and reported.
	ApplyZRotation bool
	Primitive      Primitive
	ClearColor     gglm.Vec4
}

func DefaultOptions() Options {
	return Options{
		Primitive:  Primitive_Triangles,
		ClearColor: gglm.NewVec4(0, 0, 0.3, 0),
	}
}

// programInfo is a linked program with its locations resolved once after linking
type programInfo struct {
	id        uint32
	posAttrib int32
	unifLocs  [uniformCount]int32
}

// Pyramid owns the pyramid mesh buffers and shader program.
type Pyramid struct {
	dev  Device
	opts Options

	mesh meshes.Mesh
	bufs MeshBuffers
	prog programInfo

	projection gglm.Mat4
	lastMVP    gglm.Mat4

	isInited bool
}

func NewPyramid(dev Device, opts Options) *Pyramid {
	return &Pyramid{
		dev:        dev,
		opts:       opts,
		mesh:       meshes.Pyramid(),
		projection: Projection(1, 1),
		lastMVP:    gglm.NewMat4Diag(1),
	}
}

// Initialize allocates the mesh buffers, compiles and links the program and uploads
// the mesh. Any error leaves the renderer unusable; call Delete to release what was allocated.
func (p *Pyramid) Initialize(src ShaderSources) error {

	assert.T(!p.isInited, "Pyramid renderer initialized twice")

	p.dev.SetupFrameState(&p.opts.ClearColor)

	var err error
	p.bufs, err = p.dev.NewMeshBuffers()
	if err != nil {
		return fmt.Errorf("failed to create pyramid buffers: %w", err)
	}

	p.prog, err = p.buildProgram(src)
	if err != nil {
		return err
	}

	p.dev.UploadMesh(&p.bufs, &p.mesh, uint32(p.prog.posAttrib))

	p.isInited = true
	logging.InfoLog.With("pyramid renderer initialized", "vertices", p.mesh.VertexCount(), "indices", p.mesh.IndexCount())
	return nil
}

func (p *Pyramid) buildProgram(src ShaderSources) (programInfo, error) {

	id, err := p.dev.CompileProgram(src.Vert, src.Frag)
	if err != nil {
		return programInfo{}, fmt.Errorf("failed to build pyramid shader program: %w", err)
	}

	info := programInfo{id: id}

	info.posAttrib = p.dev.AttribLocation(id, PositionAttribName)
	if info.posAttrib < 0 {
		p.dev.DeleteProgram(id)
		return programInfo{}, fmt.Errorf("pyramid shader program has no '%s' attribute", PositionAttribName)
	}

	for u := uniform(0); u < uniformCount; u++ {

		loc := p.dev.UniformLocation(id, uniformNames[u])
		if loc < 0 {
			p.dev.DeleteProgram(id)
			return programInfo{}, fmt.Errorf("pyramid shader program has no '%s' uniform", uniformNames[u])
		}

		info.unifLocs[u] = loc
	}

	return info, nil
}

// ReloadShaders swaps in a program built from src. On failure the current program is kept.
func (p *Pyramid) ReloadShaders(src ShaderSources) error {

	if !p.isInited {
		return errors.New("pyramid renderer is not initialized")
	}

	info, err := p.buildProgram(src)
	if err != nil {
		return err
	}

	if info.posAttrib != p.prog.posAttrib {
		p.dev.UploadMesh(&p.bufs, &p.mesh, uint32(info.posAttrib))
	}

	p.dev.DeleteProgram(p.prog.id)
	p.prog = info
	return nil
}

// Resize recomputes the projection for the viewport size
func (p *Pyramid) Resize(width, height int32) {
	p.projection = Projection(width, height)
}

func (p *Pyramid) Projection() gglm.Mat4 {
	return p.projection
}

// LastMVP is the matrix sent with the latest Draw
func (p *Pyramid) LastMVP() gglm.Mat4 {
	return p.lastMVP
}

func (p *Pyramid) IsInitialized() bool {
	return p.isInited
}

// Draw clears the frame and draws the pyramid with the given rotation, zoom and color.
func (p *Pyramid) Draw(state controller.DrawState) {

	assert.T(p.isInited, "Pyramid.Draw called before a successful Initialize")
	if !p.isInited {
		logging.WarnLog.Println("Skipping pyramid draw because the renderer is not initialized")
		return
	}

	model := ModelMatrix(state.XRot, state.YRot, state.ZRot, state.Zoom, p.opts.ApplyZRotation)
	p.lastMVP = MVP(&p.projection, &model)

	p.dev.Clear()

	p.dev.UseProgram(p.prog.id)
	p.dev.SetUniformVec4(p.prog.id, p.prog.unifLocs[uniformColor], &state.Color)
	p.dev.SetUniformMat4(p.prog.id, p.prog.unifLocs[uniformMvpMatrix], &p.lastMVP)

	p.dev.DrawIndexed(&p.bufs, p.opts.Primitive, p.mesh.IndexCount())
}

// Delete releases the buffers and program. Safe after a failed Initialize and when called more than once.
func (p *Pyramid) Delete() {

	if !p.bufs.IsZero() {
		p.dev.DeleteMeshBuffers(&p.bufs)
		p.bufs = MeshBuffers{}
	}

	if p.prog.id != 0 {
		p.dev.DeleteProgram(p.prog.id)
		p.prog = programInfo{}
	}

	p.isInited = false
}
