package gpu

import (
	"encoding/binary"

	"github.com/go-gl/mathgl/mgl32"

	"voxelrenderer/core"
)

// Binding points shared between the renderer and assets/shaders/default.comp.
const (
	VoxelBinding       = 1 // layout(std430, binding = 1) buffer of uvec4 colors
	OutputImageUnit    = 0 // layout(rgba32f, binding = 0) image2D
	DisplayTextureUnit = 0 // u_texture sampler unit
)

// VoxelBuffer is the CPU-side copy of the shader-storage buffer: one
// uvec4 per cell, in core.Volume index order.
type VoxelBuffer struct {
	Words     []uint32
	Dimension mgl32.Vec3
}

// NewVoxelBuffer allocates a buffer sized for v and fills it.
func NewVoxelBuffer(v *core.Volume) *VoxelBuffer {
	b := &VoxelBuffer{
		Words: make([]uint32, len(v.Cells)*4),
	}
	b.UpdateFromVolume(v)
	return b
}

// UpdateFromVolume copies every cell of v. v must have the size the
// buffer was created with.
func (b *VoxelBuffer) UpdateFromVolume(v *core.Volume) {
	for i, c := range v.Cells {
		w := c.Words()
		copy(b.Words[i*4:i*4+4], w[:])
	}
	b.Dimension = v.Dimension()
}

// Cells is the number of voxels held.
func (b *VoxelBuffer) Cells() int { return len(b.Words) / 4 }

// SizeBytes is the byte length passed to glBufferData.
func (b *VoxelBuffer) SizeBytes() int { return len(b.Words) * 4 }

// Bytes returns the little-endian upload image of the buffer.
func (b *VoxelBuffer) Bytes() []byte {
	out := make([]byte, 0, b.SizeBytes())
	for _, w := range b.Words {
		out = binary.LittleEndian.AppendUint32(out, w)
	}
	return out
}
