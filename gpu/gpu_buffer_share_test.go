package gpu

import (
	"bytes"
	"testing"

	"voxelrenderer/core"
)

func TestVoxelBufferLayout(t *testing.T) {
	v := core.NewSphereVolume(64)
	b := NewVoxelBuffer(v)

	if b.Cells() != 64*64*64 {
		t.Fatalf("cells = %d, want %d", b.Cells(), 64*64*64)
	}
	if b.SizeBytes() != 64*64*64*core.ColorBytes {
		t.Errorf("size = %d bytes", b.SizeBytes())
	}
	if b.Dimension.X() != 64 || b.Dimension.Y() != 64 || b.Dimension.Z() != 64 {
		t.Errorf("dimension = %v", b.Dimension)
	}

	center := v.Index(32, 32, 32)
	got := [4]uint32{b.Words[center*4], b.Words[center*4+1], b.Words[center*4+2], b.Words[center*4+3]}
	if got != core.SphereColor.Words() {
		t.Errorf("center words = %v, want %v", got, core.SphereColor.Words())
	}
	for i := 0; i < 4; i++ {
		if b.Words[i] != 0 {
			t.Errorf("corner word %d = %d, want 0", i, b.Words[i])
		}
	}
}

func TestVoxelBufferBytesMatchVolume(t *testing.T) {
	v := core.NewSphereVolume(8)
	b := NewVoxelBuffer(v)
	if !bytes.Equal(b.Bytes(), v.Bytes()) {
		t.Error("buffer bytes differ from volume encoding")
	}
}

func TestVoxelBufferUpdate(t *testing.T) {
	v := core.NewVolume(2)
	b := NewVoxelBuffer(v)
	if b.Words[4] != 0 {
		t.Fatalf("fresh buffer not empty")
	}

	v.Set(1, 0, 0, core.Color{R: 9, G: 8, B: 7, A: 6})
	b.UpdateFromVolume(v)
	if b.Words[4] != 9 || b.Words[7] != 6 {
		t.Errorf("updated words = %v", b.Words[4:8])
	}
}
