package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Pitch limits keep the orbit away from the poles, where the look-at
// basis degenerates against the Y-up vector.
const (
	MinPitch = 5.0
	MaxPitch = 105.0
)

var (
	// OrbitTarget is the point the orbit camera looks at: the volume center.
	OrbitTarget = mgl32.Vec3{0, 0, 0}
	OrbitUp     = mgl32.Vec3{0, 1, 0}
)

// Orbit places a camera on a sphere around the origin. Yaw and Pitch are
// in degrees; pitch is measured from the +Y axis.
type Orbit struct {
	Yaw, Pitch  float32
	Radius      float32
	Sensitivity float32
}

func NewOrbit(yaw, pitch, radius, sensitivity float32) *Orbit {
	return &Orbit{
		Yaw:         WrapYaw(yaw),
		Pitch:       ClampPitch(pitch),
		Radius:      radius,
		Sensitivity: sensitivity,
	}
}

// Advance applies a mouse delta scaled by the frame time.
func (o *Orbit) Advance(dx, dy, dt float32) {
	o.Yaw = WrapYaw(o.Yaw + dx*dt*o.Sensitivity)
	o.Pitch = ClampPitch(o.Pitch + dy*dt*o.Sensitivity)
}

// Position converts the orbit angles to a Cartesian eye position.
func (o *Orbit) Position() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(o.Yaw))
	pitch := float64(mgl32.DegToRad(o.Pitch))
	r := float64(o.Radius)

	sinPitch := math.Sin(pitch)
	return mgl32.Vec3{
		float32(r * math.Cos(yaw) * sinPitch),
		float32(r * math.Cos(pitch)),
		float32(r * math.Sin(yaw) * sinPitch),
	}
}

// WrapYaw maps any angle into [0, 360).
func WrapYaw(yaw float32) float32 {
	w := math.Mod(float64(yaw), 360)
	if w < 0 {
		w += 360
	}
	// float32 rounding can turn 359.99999 into 360
	if float32(w) >= 360 {
		return 0
	}
	return float32(w)
}

func ClampPitch(pitch float32) float32 {
	return mgl32.Clamp(pitch, MinPitch, MaxPitch)
}
