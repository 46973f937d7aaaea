package opengl

import "testing"

func TestDispatchGroups(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantX, wantY  uint32
	}{
		{"reference window", 1280, 720, 80, 45},
		{"partial tiles", 1366, 768, 86, 48},
		{"single pixel", 1, 1, 1, 1},
		{"exact tile", 16, 16, 1, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := DispatchGroups(tc.width, tc.height)
			if x != tc.wantX || y != tc.wantY {
				t.Errorf("DispatchGroups(%d, %d) = (%d, %d), want (%d, %d)",
					tc.width, tc.height, x, y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestQuadCoversScreen(t *testing.T) {
	if len(quadVertices) != quadVertexCount*quadStride/4 {
		t.Fatalf("quad has %d floats, want %d", len(quadVertices), quadVertexCount*quadStride/4)
	}

	for i := 0; i < quadVertexCount; i++ {
		v := quadVertices[i*4 : i*4+4]
		x, y, u, w := v[0], v[1], v[2], v[3]
		if (x+1)/2 != u || (y+1)/2 != w {
			t.Errorf("vertex %d: uv (%g, %g) does not match position (%g, %g)", i, u, w, x, y)
		}
	}
}
