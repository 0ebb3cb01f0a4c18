package astra

import (
	"testing"

	"github.com/beorn7/floats"
)

func screenVertex(x, y, z float64) Vertex {
	return Vertex{
		Screen:      Vector{x, y, z},
		WorldNormal: Vector{0, 0, 1},
		Color:       White,
	}
}

func TestRasterizeStaysInBoundingBox(t *testing.T) {
	v0 := screenVertex(10, 10, 0.5)
	v1 := screenVertex(20, 10, 0.5)
	v2 := screenVertex(10, 20, 0.5)

	frags := Rasterize(v0, v1, v2, 100, 100, nil)
	if len(frags) == 0 {
		t.Fatal("no fragments for an on-screen triangle")
	}
	for _, f := range frags {
		if f.X < 10 || f.X > 20 || f.Y < 10 || f.Y > 20 {
			t.Fatalf("fragment (%d,%d) outside bounding box", f.X, f.Y)
		}
		if !floats.AlmostEqual(f.Depth, 0.5, 1e-12) {
			t.Fatalf("fragment depth %v, want 0.5", f.Depth)
		}
	}
}

func TestRasterizeOffscreenTriangleYieldsNothing(t *testing.T) {
	v0 := screenVertex(200, 200, 0.5)
	v1 := screenVertex(220, 200, 0.5)
	v2 := screenVertex(200, 220, 0.5)

	if frags := Rasterize(v0, v1, v2, 100, 100, nil); len(frags) != 0 {
		t.Fatalf("%d fragments for a fully offscreen triangle", len(frags))
	}
}

func TestRasterizeDegenerateTriangle(t *testing.T) {
	v := screenVertex(10, 10, 0.5)
	if frags := Rasterize(v, v, v, 100, 100, nil); len(frags) != 0 {
		t.Fatalf("%d fragments for a zero-area triangle", len(frags))
	}
	// Collinear vertices are also zero-area.
	a := screenVertex(0, 0, 0)
	b := screenVertex(10, 10, 0)
	c := screenVertex(20, 20, 0)
	if frags := Rasterize(a, b, c, 100, 100, nil); len(frags) != 0 {
		t.Fatal("fragments for a collinear triangle")
	}
}

func TestRasterizeFillsBothWindings(t *testing.T) {
	v0 := screenVertex(10, 10, 0.5)
	v1 := screenVertex(30, 10, 0.5)
	v2 := screenVertex(10, 30, 0.5)

	cw := Rasterize(v0, v1, v2, 100, 100, nil)
	ccw := Rasterize(v0, v2, v1, 100, 100, nil)
	if len(cw) == 0 || len(cw) != len(ccw) {
		t.Fatalf("winding changes coverage: %d vs %d", len(cw), len(ccw))
	}
}

func TestRasterizeInterpolatesDepth(t *testing.T) {
	v0 := screenVertex(0, 0, 0)
	v1 := screenVertex(40, 0, 1)
	v2 := screenVertex(0, 40, 1)

	frags := Rasterize(v0, v1, v2, 100, 100, nil)
	for _, f := range frags {
		if f.Depth < -1e-9 || f.Depth > 1+1e-9 {
			t.Fatalf("interpolated depth %v outside vertex range", f.Depth)
		}
	}
}

func TestRasterizeReusesScratch(t *testing.T) {
	buf := make([]Fragment, 0, 1024)
	v0 := screenVertex(10, 10, 0.5)
	v1 := screenVertex(20, 10, 0.5)
	v2 := screenVertex(10, 20, 0.5)

	out := Rasterize(v0, v1, v2, 100, 100, buf[:0])
	if cap(out) != cap(buf) {
		t.Fatal("small triangle should not grow the scratch buffer")
	}
}
