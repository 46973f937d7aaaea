package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ProjectionKind selects how the camera builds its projection matrix.
type ProjectionKind int

const (
	// ProjectionUninitialized is the zero value; Update leaves the
	// projection untouched and warns until a Set* call picks a kind.
	ProjectionUninitialized ProjectionKind = iota
	ProjectionPerspective
	ProjectionOrthographic
)

func (k ProjectionKind) String() string {
	switch k {
	case ProjectionPerspective:
		return "perspective"
	case ProjectionOrthographic:
		return "orthographic"
	default:
		return "uninitialized"
	}
}

// Warner receives soft failures. *logging.Logger satisfies it.
type Warner interface {
	Warnf(format string, args ...interface{})
}

// Camera derives view and projection matrices. The projection is cached
// and rebuilt only after SetPerspective or SetOrthogonal; the view is
// rebuilt on every Update.
type Camera struct {
	// frustum is the vertical fov in radians for perspective, or the
	// box edge length for orthographic.
	frustum   float32
	near, far float32
	aspect    float32

	kind  ProjectionKind
	dirty bool

	view       mgl32.Mat4
	projection mgl32.Mat4

	log Warner
}

// NewCamera returns a camera with identity matrices and no projection.
// log may be nil.
func NewCamera(aspect float32, log Warner) *Camera {
	return &Camera{
		aspect:     aspect,
		view:       mgl32.Ident4(),
		projection: mgl32.Ident4(),
		log:        log,
	}
}

func (c *Camera) SetPerspective(fov, near, far float32) {
	c.kind = ProjectionPerspective
	c.frustum, c.near, c.far = fov, near, far
	c.dirty = true
}

// SetOrthogonal configures a symmetric box of edge length size.
func (c *Camera) SetOrthogonal(size, near, far float32) {
	c.kind = ProjectionOrthographic
	c.frustum, c.near, c.far = size, near, far
	c.dirty = true
}

// SetAspect changes the perspective aspect ratio and marks the projection dirty.
func (c *Camera) SetAspect(aspect float32) {
	if aspect == c.aspect {
		return
	}
	c.aspect = aspect
	c.dirty = true
}

// Update rebuilds the projection if dirty, and always rebuilds the view
// looking from eye at target.
func (c *Camera) Update(eye, target, up mgl32.Vec3) {
	if c.dirty {
		switch c.kind {
		case ProjectionPerspective:
			c.projection = mgl32.Perspective(c.frustum, c.aspect, c.near, c.far)
			c.dirty = false
		case ProjectionOrthographic:
			half := c.frustum * 0.5
			c.projection = mgl32.Ortho(-half, half, -half, half, c.near, c.far)
			c.dirty = false
		}
	}
	if c.kind == ProjectionUninitialized && c.log != nil {
		c.log.Warnf("Camera projection not initialized!")
	}

	c.view = mgl32.LookAtV(eye, target, up)
}

func (c *Camera) Kind() ProjectionKind { return c.kind }

// View returns the column-major world-to-camera matrix.
func (c *Camera) View() mgl32.Mat4 { return c.view }

// Projection returns the column-major camera-to-clip matrix.
func (c *Camera) Projection() mgl32.Mat4 { return c.projection }

// Inverses returns the clip-to-camera and camera-to-world matrices the
// raymarch pass consumes. Singular matrices are not detected.
func (c *Camera) Inverses() (clipToCamera, cameraToWorld mgl32.Mat4) {
	return c.projection.Inv(), c.view.Inv()
}
