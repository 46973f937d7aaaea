package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func newTestRig() *OrbitRig {
	cam := NewCamera(16.0/9.0, nil)
	cam.SetPerspective(mgl32.DegToRad(45), 0.1, 100)
	return NewOrbitRig(cam, NewOrbit(315, 60, 320, 4))
}

func TestOrbitRigFirstFrameDoesNotJump(t *testing.T) {
	rig := newTestRig()
	frame := rig.Step(0.25, 900, 100)

	if rig.Orbit.Yaw != 315 || rig.Orbit.Pitch != 60 {
		t.Errorf("first frame moved orbit to (%g, %g)", rig.Orbit.Yaw, rig.Orbit.Pitch)
	}
	if frame.Delta != 0.25 {
		t.Errorf("delta = %g, want 0.25", frame.Delta)
	}
	if mgl32.Abs(frame.Eye.Len()-320) > 1e-2 {
		t.Errorf("|eye| = %g, want 320", frame.Eye.Len())
	}
}

func TestOrbitRigAppliesMouseDelta(t *testing.T) {
	rig := newTestRig()
	rig.Step(1.0, 100, 100)
	frame := rig.Step(1.5, 110, 95)

	// dx=10, dy=5, dt=0.5, sensitivity 4
	if rig.Orbit.Yaw != 335 {
		t.Errorf("yaw = %g, want 335", rig.Orbit.Yaw)
	}
	if rig.Orbit.Pitch != 70 {
		t.Errorf("pitch = %g, want 70", rig.Orbit.Pitch)
	}
	if frame.Delta != 0.5 {
		t.Errorf("delta = %g, want 0.5", frame.Delta)
	}
}

func TestOrbitRigInversesTrackEye(t *testing.T) {
	rig := newTestRig()
	for i, now := range []float64{0.1, 0.2, 0.3, 0.4} {
		frame := rig.Step(now, float64(i*40), float64(i*-25))

		origin := frame.CameraToWorld.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
		if !approxVec(origin, frame.Eye, 1e-2) {
			t.Errorf("frame %d: inverse view origin %v, eye %v", i, origin, frame.Eye)
		}

		// The view direction through the screen center hits the origin.
		center := frame.ClipToCamera.Mul4x1(mgl32.Vec4{0, 0, 1, 1})
		dir := frame.CameraToWorld.Mul4x1(center.Vec3().Mul(1 / center.W()).Vec4(0)).Vec3().Normalize()
		toTarget := OrbitTarget.Sub(frame.Eye).Normalize()
		if !approxVec(dir, toTarget, 1e-3) {
			t.Errorf("frame %d: center ray %v, want %v", i, dir, toTarget)
		}
	}
}
