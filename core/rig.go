package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// FrameState is what one frame of the orbit rig hands to the raymarch pass.
type FrameState struct {
	Delta         float32 // seconds since the previous frame
	Eye           mgl32.Vec3
	ClipToCamera  mgl32.Mat4
	CameraToWorld mgl32.Mat4
}

// OrbitRig drives a Camera around the volume from cursor input.
type OrbitRig struct {
	Camera *Camera
	Orbit  *Orbit
	Mouse  MouseTracker

	lastTime float64
}

func NewOrbitRig(cam *Camera, orbit *Orbit) *OrbitRig {
	return &OrbitRig{Camera: cam, Orbit: orbit}
}

// Step advances one frame given the current clock (seconds) and cursor
// position. The first step measures time from zero, as the window clock
// starts at initialization.
func (r *OrbitRig) Step(now, cursorX, cursorY float64) FrameState {
	dt := float32(now - r.lastTime)
	r.lastTime = now

	dx, dy := r.Mouse.Delta(cursorX, cursorY)
	r.Orbit.Advance(dx, dy, dt)

	eye := r.Orbit.Position()
	r.Camera.Update(eye, OrbitTarget, OrbitUp)
	clipToCamera, cameraToWorld := r.Camera.Inverses()

	return FrameState{
		Delta:         dt,
		Eye:           eye,
		ClipToCamera:  clipToCamera,
		CameraToWorld: cameraToWorld,
	}
}
