package core

import (
	"encoding/binary"

	"github.com/go-gl/mathgl/mgl32"
)

// Color is one voxel's RGBA value. Channels hold 0-255 but are stored as
// 32-bit fields to match the shader's uvec4 layout.
type Color struct {
	R, G, B, A uint32
}

// ColorBytes is the encoded size of a Color.
const ColorBytes = 16

var (
	// SphereColor fills cells inside the generated sphere.
	SphereColor = Color{R: 255, G: 128, B: 64, A: 255}
	Empty       = Color{}
)

func (c Color) Red() uint32   { return c.R }
func (c Color) Green() uint32 { return c.G }
func (c Color) Blue() uint32  { return c.B }
func (c Color) Alpha() uint32 { return c.A }

func (c Color) IsEmpty() bool { return c == Empty }

// Words returns the channels in shader order.
func (c Color) Words() [4]uint32 {
	return [4]uint32{c.R, c.G, c.B, c.A}
}

// AppendBytes appends the little-endian encoding of c to b.
func (c Color) AppendBytes(b []byte) []byte {
	for _, w := range c.Words() {
		b = binary.LittleEndian.AppendUint32(b, w)
	}
	return b
}

// Volume is a dense cubic grid of colors indexed x-fastest.
type Volume struct {
	Size  int
	Cells []Color
}

func NewVolume(size int) *Volume {
	return &Volume{
		Size:  size,
		Cells: make([]Color, size*size*size),
	}
}

func (v *Volume) Index(x, y, z int) int {
	return x + y*v.Size + z*v.Size*v.Size
}

func (v *Volume) At(x, y, z int) Color {
	return v.Cells[v.Index(x, y, z)]
}

func (v *Volume) Set(x, y, z int, c Color) {
	v.Cells[v.Index(x, y, z)] = c
}

// Dimension is the grid extent per axis as uploaded to uVolumeDimension.
func (v *Volume) Dimension() mgl32.Vec3 {
	n := float32(v.Size)
	return mgl32.Vec3{n, n, n}
}

// Count returns how many cells satisfy pred.
func (v *Volume) Count(pred func(Color) bool) int {
	n := 0
	for _, c := range v.Cells {
		if pred(c) {
			n++
		}
	}
	return n
}

// Bytes encodes every cell for a GPU buffer upload.
func (v *Volume) Bytes() []byte {
	b := make([]byte, 0, len(v.Cells)*ColorBytes)
	for _, c := range v.Cells {
		b = c.AppendBytes(b)
	}
	return b
}

// sphereEpsilon tightens the inside test slightly.
const sphereEpsilon = 0.1

// InSphere reports whether cell (x, y, z) of an n-sized grid lies inside
// the sphere of radius n/2 centered in the grid.
func InSphere(x, y, z, n int) bool {
	radius := float32(n) / 2
	delta := mgl32.Vec3{
		float32(x) + 0.5 - radius,
		float32(y) + 0.5 - radius,
		float32(z) + 0.5 - radius,
	}
	return delta.Dot(delta)-sphereEpsilon <= radius*radius
}

// GenerateSphere overwrites every cell of v with SphereColor or Empty.
func GenerateSphere(v *Volume) {
	n := v.Size
	for z := 0; z < n; z++ {
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				if InSphere(x, y, z, n) {
					v.Set(x, y, z, SphereColor)
				} else {
					v.Set(x, y, z, Empty)
				}
			}
		}
	}
}

// NewSphereVolume builds the sphere test pattern at edge length n.
func NewSphereVolume(n int) *Volume {
	v := NewVolume(n)
	GenerateSphere(v)
	return v
}
