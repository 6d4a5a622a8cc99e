package rend3dgl

import (
	"fmt"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glpyramid/assert"
	"github.com/bloeys/glpyramid/buffers"
	"github.com/bloeys/glpyramid/materials"
	"github.com/bloeys/glpyramid/meshes"
	"github.com/bloeys/glpyramid/renderer"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var _ renderer.Device = &Rend3DGL{}

// Rend3DGL implements renderer.Device on an OpenGL 4.1 core context.
// It must only be used on the thread owning the context.
type Rend3DGL struct {
	BoundVaoId  uint32
	BoundProgId uint32

	mats   map[uint32]*materials.Material
	meshes map[uint32]*glMesh
}

type glMesh struct {
	vao buffers.VertexArray
	vbo buffers.VertexBuffer
	ibo buffers.IndexBuffer
}

func (r *Rend3DGL) SetupFrameState(clearColor *gglm.Vec4) {

	gl.ClearColor(clearColor.Data[0], clearColor.Data[1], clearColor.Data[2], clearColor.Data[3])

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
}

func (r *Rend3DGL) NewMeshBuffers() (renderer.MeshBuffers, error) {

	m := &glMesh{}

	var err error
	m.vao, err = buffers.NewVertexArray()
	if err != nil {
		return renderer.MeshBuffers{}, err
	}
	r.meshes[m.vao.Id] = m
	out := renderer.MeshBuffers{VaoId: m.vao.Id}

	m.vbo, err = buffers.NewVertexBuffer(buffers.Element{ElementType: buffers.DataTypeVec3})
	if err != nil {
		return out, err
	}
	out.VboId = m.vbo.Id

	m.ibo, err = buffers.NewIndexBuffer()
	if err != nil {
		return out, err
	}
	out.IboId = m.ibo.Id

	return out, nil
}

func (r *Rend3DGL) UploadMesh(bufs *renderer.MeshBuffers, mesh *meshes.Mesh, posAttribLoc uint32) {

	m, ok := r.meshes[bufs.VaoId]
	assert.T(ok, "UploadMesh called with unknown vao '%d'", bufs.VaoId)
	if !ok {
		return
	}

	m.vbo.SetData(mesh.Positions, buffers.BufUsage_Static_Draw)
	m.ibo.SetData(mesh.Indices, buffers.BufUsage_Static_Draw)

	m.vao.Vbos = m.vao.Vbos[:0]
	m.vao.AddVertexBuffer(m.vbo, posAttribLoc)
	m.vao.SetIndexBuffer(m.ibo)

	// Following vao setup must not attach to this one
	m.vao.UnBind()
	r.BoundVaoId = 0

	bufs.IndexCount = m.ibo.IndexBufCount
}

func (r *Rend3DGL) DeleteMeshBuffers(bufs *renderer.MeshBuffers) {

	m, ok := r.meshes[bufs.VaoId]
	if !ok {
		return
	}

	if r.BoundVaoId == m.vao.Id {
		r.BoundVaoId = 0
	}

	delete(r.meshes, bufs.VaoId)
	m.ibo.Delete()
	m.vbo.Delete()
	m.vao.Delete()
}

func (r *Rend3DGL) CompileProgram(vertSrc, fragSrc []byte) (uint32, error) {

	mat, err := materials.NewMaterialSrc(fmt.Sprintf("program-%d", len(r.mats)), vertSrc, fragSrc)
	if err != nil {
		return 0, err
	}

	r.mats[mat.ShaderProg.Id] = &mat
	return mat.ShaderProg.Id, nil
}

func (r *Rend3DGL) AttribLocation(progId uint32, name string) int32 {

	mat, ok := r.mats[progId]
	if !ok {
		return -1
	}

	loc, _ := mat.LookupAttribLoc(name)
	return loc
}

func (r *Rend3DGL) UniformLocation(progId uint32, name string) int32 {

	mat, ok := r.mats[progId]
	if !ok {
		return -1
	}

	loc, _ := mat.LookupUnifLoc(name)
	return loc
}

func (r *Rend3DGL) DeleteProgram(progId uint32) {

	mat, ok := r.mats[progId]
	if !ok {
		return
	}

	if r.BoundProgId == progId {
		r.BoundProgId = 0
	}

	delete(r.mats, progId)
	mat.Delete()
}

func (r *Rend3DGL) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *Rend3DGL) UseProgram(progId uint32) {

	if progId == r.BoundProgId {
		return
	}

	if mat, ok := r.mats[progId]; ok {
		mat.Bind()
	} else {
		gl.UseProgram(progId)
	}

	r.BoundProgId = progId
}

func (r *Rend3DGL) SetUniformVec4(progId uint32, loc int32, v *gglm.Vec4) {
	materials.SetUnifVec4(progId, loc, v)
}

func (r *Rend3DGL) SetUniformMat4(progId uint32, loc int32, m *gglm.Mat4) {
	materials.SetUnifMat4(progId, loc, m)
}

func (r *Rend3DGL) DrawIndexed(bufs *renderer.MeshBuffers, mode renderer.Primitive, count int32) {

	m, ok := r.meshes[bufs.VaoId]
	assert.T(ok, "DrawIndexed called with unknown vao '%d'", bufs.VaoId)
	if !ok {
		return
	}

	if m.vao.Id != r.BoundVaoId {
		m.vao.Bind()
		r.BoundVaoId = m.vao.Id
	}

	gl.DrawElementsWithOffset(primitiveToGL(mode), count, m.ibo.GLType(), 0)
}

// FrameEnd forgets cached bindings, since other code (e.g. the UI) binds its own state between frames
func (r *Rend3DGL) FrameEnd() {
	r.BoundVaoId = 0
	r.BoundProgId = 0
}

func primitiveToGL(p renderer.Primitive) uint32 {

	switch p {
	case renderer.Primitive_Triangles:
		return gl.TRIANGLES
	case renderer.Primitive_TriangleStrip:
		return gl.TRIANGLE_STRIP
	}

	assert.T(false, "Unknown primitive '%d'", p)
	return gl.TRIANGLES
}

func NewRend3DGL() *Rend3DGL {
	return &Rend3DGL{
		mats:   make(map[uint32]*materials.Material),
		meshes: make(map[uint32]*glMesh),
	}
}
