package opengl

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"voxelrenderer/config"
	"voxelrenderer/gpu"
	"voxelrenderer/logging"
	"voxelrenderer/rendering/opengl/shaders"
)

// workGroupSize matches local_size_x/y in default.comp.
const workGroupSize = 16

// quadVertices is a fullscreen quad as two triangles: vec2 position, vec2 uv.
var quadVertices = []float32{
	1, -1, 1, 0,
	-1, -1, 0, 0,
	-1, 1, 0, 1,
	1, -1, 1, 0,
	-1, 1, 0, 1,
	1, 1, 1, 1,
}

const (
	quadStride      = 4 * 4 // 4 float32 per vertex
	quadVertexCount = 6
)

// FrameUniforms is the per-frame input to the raymarch pass.
type FrameUniforms struct {
	ClipToCamera    mgl32.Mat4
	CameraToWorld   mgl32.Mat4
	Time            float32
	VolumeDimension mgl32.Vec3
}

// VoxelRenderer owns the window, the GL context and every GPU object of
// the raymarch pipeline. All methods must run on the thread that created it.
type VoxelRenderer struct {
	window *glfw.Window
	log    *logging.Logger

	width, height int

	// Shader programs
	quadProgram    *shaders.Program
	computeProgram *shaders.Program

	// Vertex array for fullscreen quad
	quadVAO uint32

	voxelSSBO     uint32
	outputTexture uint32
}

// NewVoxelRenderer opens the window and creates the GL context. Any
// failure leaves GLFW terminated.
func NewVoxelRenderer(s config.WindowSettings, log *logging.Logger) (*VoxelRenderer, error) {
	runtime.LockOSThread()

	// Initialize GLFW
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// Configure OpenGL context
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	// Create window
	window, err := glfw.CreateWindow(s.Width, s.Height, s.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	window.MakeContextCurrent()
	if s.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	log.Infof("OpenGL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))
	log.Infof("Renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))

	r := &VoxelRenderer{
		window: window,
		log:    log,
		width:  s.Width,
		height: s.Height,
	}

	if !r.HasComputeShaderSupport() {
		r.Terminate()
		return nil, fmt.Errorf("compute shaders need OpenGL 4.3, context is %s", gl.GoStr(gl.GetString(gl.VERSION)))
	}

	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		r.onKey(key, action)
	})

	r.createQuad()
	r.createOutputTexture()
	r.logComputeLimits()

	return r, nil
}

// HasComputeShaderSupport checks if compute shaders are available
func (r *VoxelRenderer) HasComputeShaderSupport() bool {
	var major, minor int32
	gl.GetIntegerv(gl.MAJOR_VERSION, &major)
	gl.GetIntegerv(gl.MINOR_VERSION, &minor)
	return major > 4 || (major == 4 && minor >= 3)
}

// LoadShaders builds the display and compute programs. Either failure
// is returned; the renderer has no fallback path.
func (r *VoxelRenderer) LoadShaders(s config.ShaderSettings) error {
	quad, err := shaders.NewProgramFromFiles(s.Vertex, s.Fragment)
	if err != nil {
		return fmt.Errorf("display program: %w", err)
	}

	compute, err := shaders.NewComputeProgramFromFile(s.Compute)
	if err != nil {
		quad.Delete()
		return fmt.Errorf("compute program: %w", err)
	}

	r.quadProgram, r.computeProgram = quad, compute
	r.log.Debugf("Shaders compiled: %s, %s, %s", s.Vertex, s.Fragment, s.Compute)
	return nil
}

// createQuad uploads the fullscreen quad. The VBO is released right away;
// the VAO keeps it alive.
func (r *VoxelRenderer) createQuad() {
	gl.GenVertexArrays(1, &r.quadVAO)
	gl.BindVertexArray(r.quadVAO)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, quadStride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, quadStride, 2*4)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.DeleteBuffers(1, &vbo)
}

// createOutputTexture allocates the window-sized image the compute pass
// writes and the display pass samples.
func (r *VoxelRenderer) createOutputTexture() {
	gl.GenTextures(1, &r.outputTexture)
	gl.BindTexture(gl.TEXTURE_2D, r.outputTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA32F, int32(r.width), int32(r.height), 0, gl.RGBA, gl.FLOAT, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.BindImageTexture(gpu.OutputImageUnit, r.outputTexture, 0, false, 0, gl.WRITE_ONLY, gl.RGBA32F)
}

func (r *VoxelRenderer) logComputeLimits() {
	var count, size [3]int32
	for i := uint32(0); i < 3; i++ {
		gl.GetIntegeri_v(gl.MAX_COMPUTE_WORK_GROUP_COUNT, i, &count[i])
		gl.GetIntegeri_v(gl.MAX_COMPUTE_WORK_GROUP_SIZE, i, &size[i])
	}
	r.log.Infof("GL_MAX_COMPUTE_WORK_GROUP_COUNT | [ %d, %d, %d ]", count[0], count[1], count[2])
	r.log.Infof("GL_MAX_COMPUTE_WORK_GROUP_SIZE | [ %d, %d, %d ]", size[0], size[1], size[2])
}

// CreateBuffers uploads the voxel colors into the shader-storage buffer.
// The volume is immutable afterwards.
func (r *VoxelRenderer) CreateBuffers(buffer *gpu.VoxelBuffer) {
	data := buffer.Bytes()

	gl.GenBuffers(1, &r.voxelSSBO)
	gl.BindBuffer(gl.SHADER_STORAGE_BUFFER, r.voxelSSBO)
	gl.BufferData(gl.SHADER_STORAGE_BUFFER, len(data), gl.Ptr(data), gl.STATIC_DRAW)
	gl.BindBufferBase(gl.SHADER_STORAGE_BUFFER, gpu.VoxelBinding, r.voxelSSBO)
	gl.BindBuffer(gl.SHADER_STORAGE_BUFFER, 0)

	r.log.Debugf("Voxel buffer: %d cells, %d bytes", buffer.Cells(), len(data))
}

// DispatchGroups is the compute grid for a width x height image.
func DispatchGroups(width, height int) (x, y uint32) {
	return uint32((width + workGroupSize - 1) / workGroupSize),
		uint32((height + workGroupSize - 1) / workGroupSize)
}

// Render runs the raymarch pass into the output image, then draws the
// image to the default framebuffer and swaps.
func (r *VoxelRenderer) Render(u FrameUniforms) {
	fbWidth, fbHeight := r.window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	r.computeProgram.Use()
	r.computeProgram.SetMat4("uClipToCamera", u.ClipToCamera)
	r.computeProgram.SetMat4("uCameraToWorld", u.CameraToWorld)
	r.computeProgram.SetFloat("uTime", u.Time)
	r.computeProgram.SetVec3("uVolumeDimension", u.VolumeDimension)

	gl.BindBufferBase(gl.SHADER_STORAGE_BUFFER, gpu.VoxelBinding, r.voxelSSBO)
	groupsX, groupsY := DispatchGroups(r.width, r.height)
	gl.DispatchCompute(groupsX, groupsY, 1)

	// make sure writing to image has finished before read
	gl.MemoryBarrier(gl.SHADER_IMAGE_ACCESS_BARRIER_BIT)

	gl.BindVertexArray(r.quadVAO)
	r.quadProgram.Use()
	r.quadProgram.SetInt("u_texture", gpu.DisplayTextureUnit)

	gl.ActiveTexture(gl.TEXTURE0 + gpu.DisplayTextureUnit)
	gl.BindTexture(gl.TEXTURE_2D, r.outputTexture)
	gl.DrawArrays(gl.TRIANGLES, 0, quadVertexCount)

	gl.BindVertexArray(0)
	r.window.SwapBuffers()
}

func (r *VoxelRenderer) onKey(key glfw.Key, action glfw.Action) {
	if key == glfw.KeyEscape && action == glfw.Press {
		r.window.SetShouldClose(true)
	}
}

func (r *VoxelRenderer) ShouldClose() bool {
	return r.window.ShouldClose()
}

func (r *VoxelRenderer) PollEvents() {
	glfw.PollEvents()
}

// Time is the GLFW clock in seconds since initialization.
func (r *VoxelRenderer) Time() float64 {
	return glfw.GetTime()
}

func (r *VoxelRenderer) CursorPos() (x, y float64) {
	return r.window.GetCursorPos()
}

// Terminate releases GPU objects, then the window, then GLFW.
func (r *VoxelRenderer) Terminate() {
	if r.computeProgram != nil {
		r.computeProgram.Delete()
	}
	if r.quadProgram != nil {
		r.quadProgram.Delete()
	}
	if r.outputTexture != 0 {
		gl.DeleteTextures(1, &r.outputTexture)
	}
	if r.voxelSSBO != 0 {
		gl.DeleteBuffers(1, &r.voxelSSBO)
	}
	if r.quadVAO != 0 {
		gl.DeleteVertexArrays(1, &r.quadVAO)
	}
	r.window.Destroy()
	glfw.Terminate()
}
