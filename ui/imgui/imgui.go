package nmageimgui

import (
	"fmt"

	imgui "github.com/AllenDang/cimgui-go"
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glpyramid/buffers"
	"github.com/bloeys/glpyramid/materials"
	"github.com/bloeys/glpyramid/timing"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
)

type ImguiInfo struct {
	Mat        *materials.Material
	VaoID      uint32
	VboID      uint32
	IndexBufID uint32
}

func (i *ImguiInfo) FrameStart(winWidth, winHeight float32) {

	imIO := imgui.CurrentIO()
	imIO.SetDisplaySize(imgui.Vec2{X: winWidth, Y: winHeight})
	imIO.SetDeltaTime(timing.DT())

	imgui.NewFrame()
}

// Render draws the UI built since FrameStart. Window sizes are in screen coordinates,
// framebuffer sizes in pixels (they differ on high dpi displays).
func (i *ImguiInfo) Render(winWidth, winHeight float32, fbWidth, fbHeight int32) {

	imgui.Render()

	// Minimized
	if fbWidth <= 0 || fbHeight <= 0 || winWidth <= 0 || winHeight <= 0 {
		return
	}

	scaleX := float32(fbWidth) / winWidth
	scaleY := float32(fbHeight) / winHeight

	drawData := imgui.CurrentDrawData()

	// Alpha blending, no culling, no depth, scissor on
	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)

	gl.Viewport(0, 0, fbWidth, fbHeight)

	orthoProj := OrthoProjection(winWidth, winHeight)

	i.Mat.Bind()
	i.Mat.SetUnifInt32("Texture", int32(materials.TextureSlot_Diffuse))
	i.Mat.SetUnifMat4("ProjMtx", &orthoProj)
	gl.BindSampler(0, 0)

	gl.BindVertexArray(i.VaoID)
	gl.BindBuffer(gl.ARRAY_BUFFER, i.VboID)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, i.IndexBufID)

	vertexSize, vertexOffsetPos, vertexOffsetUv, vertexOffsetCol := imgui.VertexBufferLayout()
	i.Mat.EnableAttribute("Position")
	i.Mat.EnableAttribute("UV")
	i.Mat.EnableAttribute("Color")
	gl.VertexAttribPointerWithOffset(uint32(i.Mat.GetAttribLoc("Position")), 2, gl.FLOAT, false, int32(vertexSize), uintptr(vertexOffsetPos))
	gl.VertexAttribPointerWithOffset(uint32(i.Mat.GetAttribLoc("UV")), 2, gl.FLOAT, false, int32(vertexSize), uintptr(vertexOffsetUv))
	gl.VertexAttribPointerWithOffset(uint32(i.Mat.GetAttribLoc("Color")), 4, gl.UNSIGNED_BYTE, true, int32(vertexSize), uintptr(vertexOffsetCol))

	indexSize := imgui.IndexBufferLayout()
	drawType := gl.UNSIGNED_SHORT
	if indexSize == 4 {
		drawType = gl.UNSIGNED_INT
	}

	for _, list := range drawData.CommandLists() {

		vertexBuffer, vertexBufferSize := list.GetVertexBuffer()
		gl.BufferData(gl.ARRAY_BUFFER, vertexBufferSize, vertexBuffer, buffers.BufUsage_Stream_Draw.ToGL())

		indexBuffer, indexBufferSize := list.GetIndexBuffer()
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, indexBufferSize, indexBuffer, buffers.BufUsage_Stream_Draw.ToGL())

		for _, cmd := range list.Commands() {

			clipRect := cmd.ClipRect()
			x, y, w, h := ScissorRect(clipRect.X, clipRect.Y, clipRect.Z, clipRect.W, scaleX, scaleY, fbHeight)
			if w <= 0 || h <= 0 {
				continue
			}

			gl.Scissor(x, y, w, h)
			gl.DrawElementsBaseVertexWithOffset(gl.TRIANGLES, int32(cmd.ElemCount()), uint32(drawType), uintptr(int(cmd.IdxOffset())*indexSize), int32(cmd.VtxOffset()))
		}
	}

	// Restore what the scene expects
	gl.Disable(gl.SCISSOR_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.DEPTH_TEST)
	gl.BindVertexArray(0)
}

// OrthoProjection maps imgui's top-left origin screen space to clip space
func OrthoProjection(width, height float32) gglm.Mat4 {

	m := gglm.NewMat4Diag(1)
	m.Data[0][0] = 2 / width
	m.Data[1][1] = -2 / height
	m.Data[2][2] = -1
	m.Data[3][0] = -1
	m.Data[3][1] = 1
	return m
}

// ScissorRect converts an imgui clip rect (minX, minY, maxX, maxY in screen space)
// into a GL scissor box in framebuffer pixels with a bottom-left origin.
func ScissorRect(minX, minY, maxX, maxY, scaleX, scaleY float32, fbHeight int32) (x, y, w, h int32) {

	x = int32(minX * scaleX)
	y = fbHeight - int32(maxY*scaleY)
	w = int32((maxX - minX) * scaleX)
	h = int32((maxY - minY) * scaleY)
	return x, y, w, h
}

func (i *ImguiInfo) Delete() {

	if i.Mat != nil {
		gl.DeleteTextures(1, &i.Mat.DiffuseTex)
		i.Mat.Delete()
		i.Mat = nil
	}

	gl.DeleteBuffers(1, &i.VboID)
	gl.DeleteBuffers(1, &i.IndexBufID)
	gl.DeleteVertexArrays(1, &i.VaoID)

	imgui.DestroyContext()
}

func NewImGui(shaderPath string) (ImguiInfo, error) {

	imguiMat, err := materials.NewMaterial("ImGUI Mat", shaderPath)
	if err != nil {
		return ImguiInfo{}, fmt.Errorf("failed to create imgui material: %w", err)
	}

	imgui.CreateContext()
	imguiInfo := ImguiInfo{
		Mat: &imguiMat,
	}

	io := imgui.CurrentIO()
	io.SetBackendFlags(io.BackendFlags() | imgui.BackendFlagsRendererHasVtxOffset)

	// Don't write imgui.ini next to the binary
	io.SetIniFilename("")

	gl.GenVertexArrays(1, &imguiInfo.VaoID)
	gl.GenBuffers(1, &imguiInfo.VboID)
	gl.GenBuffers(1, &imguiInfo.IndexBufID)

	// Upload the font atlas. It is the only texture the UI draws with, so it lives in the material's diffuse slot.
	gl.GenTextures(1, &imguiMat.DiffuseTex)
	gl.BindTexture(gl.TEXTURE_2D, imguiMat.DiffuseTex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	pixels, width, height, _ := io.Fonts().GetTextureDataAsRGBA32()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, pixels)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	imgui.StyleColorsDark()

	return imguiInfo, nil
}

func SdlScancodeToImGuiKey(scancode sdl.Scancode) imgui.Key {

	if scancode >= sdl.SCANCODE_A && scancode <= sdl.SCANCODE_Z {
		return imgui.KeyA + imgui.Key(scancode-sdl.SCANCODE_A)
	}

	switch scancode {
	case sdl.SCANCODE_TAB:
		return imgui.KeyTab
	case sdl.SCANCODE_LEFT:
		return imgui.KeyLeftArrow
	case sdl.SCANCODE_RIGHT:
		return imgui.KeyRightArrow
	case sdl.SCANCODE_UP:
		return imgui.KeyUpArrow
	case sdl.SCANCODE_DOWN:
		return imgui.KeyDownArrow
	case sdl.SCANCODE_PAGEUP:
		return imgui.KeyPageUp
	case sdl.SCANCODE_PAGEDOWN:
		return imgui.KeyPageDown
	case sdl.SCANCODE_HOME:
		return imgui.KeyHome
	case sdl.SCANCODE_END:
		return imgui.KeyEnd
	case sdl.SCANCODE_INSERT:
		return imgui.KeyInsert
	case sdl.SCANCODE_DELETE:
		return imgui.KeyDelete
	case sdl.SCANCODE_BACKSPACE:
		return imgui.KeyBackspace
	case sdl.SCANCODE_SPACE:
		return imgui.KeySpace
	case sdl.SCANCODE_RETURN:
		return imgui.KeyEnter
	case sdl.SCANCODE_ESCAPE:
		return imgui.KeyEscape
	case sdl.SCANCODE_MINUS:
		return imgui.KeyMinus
	case sdl.SCANCODE_PERIOD:
		return imgui.KeyPeriod
	case sdl.SCANCODE_0:
		return imgui.Key0
	case sdl.SCANCODE_1:
		return imgui.Key1
	case sdl.SCANCODE_2:
		return imgui.Key2
	case sdl.SCANCODE_3:
		return imgui.Key3
	case sdl.SCANCODE_4:
		return imgui.Key4
	case sdl.SCANCODE_5:
		return imgui.Key5
	case sdl.SCANCODE_6:
		return imgui.Key6
	case sdl.SCANCODE_7:
		return imgui.Key7
	case sdl.SCANCODE_8:
		return imgui.Key8
	case sdl.SCANCODE_9:
		return imgui.Key9
	case sdl.SCANCODE_KP_ENTER:
		return imgui.KeyKeypadEnter
	case sdl.SCANCODE_LCTRL:
		return imgui.KeyLeftCtrl
	case sdl.SCANCODE_RCTRL:
		return imgui.KeyRightCtrl
	case sdl.SCANCODE_LSHIFT:
		return imgui.KeyLeftShift
	case sdl.SCANCODE_RSHIFT:
		return imgui.KeyRightShift
	case sdl.SCANCODE_LALT:
		return imgui.KeyLeftAlt
	case sdl.SCANCODE_RALT:
		return imgui.KeyRightAlt
	case sdl.SCANCODE_LGUI:
		return imgui.KeyLeftSuper
	case sdl.SCANCODE_RGUI:
		return imgui.KeyRightSuper
	default:
		return imgui.KeyNone
	}
}
