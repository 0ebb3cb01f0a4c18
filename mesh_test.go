package astra

import (
	"strings"
	"testing"

	"github.com/beorn7/floats"
)

func TestSphereIsTriangleList(t *testing.T) {
	m := NewSphere(8, 12)
	if len(m.Vertices) == 0 || len(m.Vertices)%3 != 0 {
		t.Fatalf("sphere has %d vertices", len(m.Vertices))
	}
	for _, v := range m.Vertices {
		if !floats.AlmostEqual(v.Position.Length(), 1, 1e-9) {
			t.Fatalf("sphere vertex %v off the unit sphere", v.Position)
		}
		if !floats.AlmostEqual(v.Normal.Length(), 1, 1e-9) {
			t.Fatalf("sphere normal %v not unit", v.Normal)
		}
	}
}

func TestSphereClampsDegenerateArguments(t *testing.T) {
	m := NewSphere(0, 0)
	if len(m.Vertices) == 0 || len(m.Vertices)%3 != 0 {
		t.Fatalf("clamped sphere has %d vertices", len(m.Vertices))
	}
}

func TestShipMeshIsTriangleList(t *testing.T) {
	m := NewShipMesh()
	if len(m.Vertices)%3 != 0 {
		t.Fatalf("ship mesh has %d vertices", len(m.Vertices))
	}
	for _, v := range m.Vertices {
		if !floats.AlmostEqual(v.Normal.Length(), 1, 1e-9) {
			t.Fatalf("ship normal %v not unit", v.Normal)
		}
	}
}

func TestLevelOfDetailIsStub(t *testing.T) {
	m := NewSphere(4, 6)
	for _, d := range []float64{0, 1, 100, 1e6} {
		if m.LevelOfDetail(d) != m {
			t.Fatal("LevelOfDetail must return the same mesh")
		}
	}
}

func TestNewMeshDropsPartialTriple(t *testing.T) {
	m := NewMesh(make([]Vertex, 7))
	if len(m.Vertices) != 6 {
		t.Fatalf("kept %d vertices, want 6", len(m.Vertices))
	}
}

const quadOBJ = `
# unit quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`

func TestLoadOBJFanTriangulates(t *testing.T) {
	m, err := LoadOBJFromReader(strings.NewReader(quadOBJ))
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Vertices) != 6 {
		t.Fatalf("quad produced %d vertices, want 6", len(m.Vertices))
	}
	// No vn records: normals derived from the face plane.
	for _, v := range m.Vertices {
		if !floats.AlmostEqual(v.Normal.Z, 1, 1e-9) {
			t.Fatalf("derived normal = %v, want +Z", v.Normal)
		}
	}
}

func TestLoadOBJNegativeIndices(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`
	m, err := LoadOBJFromReader(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Vertices) != 3 {
		t.Fatalf("got %d vertices", len(m.Vertices))
	}
	if m.Vertices[1].Position != (Vector{1, 0, 0}) {
		t.Fatalf("negative index resolved to %v", m.Vertices[1].Position)
	}
}

func TestSimplifyKeepsTriangleList(t *testing.T) {
	m := NewSphere(12, 16)
	s := m.Simplify(0.5)
	if len(s.Vertices)%3 != 0 {
		t.Fatalf("simplified mesh has %d vertices", len(s.Vertices))
	}
	if s.TriangleCount() == 0 || s.TriangleCount() >= m.TriangleCount() {
		t.Fatalf("simplify %d -> %d triangles", m.TriangleCount(), s.TriangleCount())
	}
}
