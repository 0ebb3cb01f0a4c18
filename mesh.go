package astra

import (
	"math"

	"github.com/fogleman/simplify"
)

// Mesh is a flat vertex array; consecutive triples form triangles. Every
// constructor and loader keeps the length a multiple of 3, which is all the
// pipeline requires.
type Mesh struct {
	Vertices []Vertex
}

func NewMesh(vertices []Vertex) *Mesh {
	return &Mesh{Vertices: vertices[:len(vertices)-len(vertices)%3]}
}

func (m *Mesh) TriangleCount() int {
	return len(m.Vertices) / 3
}

// NewSphere builds a unit UV sphere with the given ring and segment counts.
// Normals equal positions on a unit sphere.
func NewSphere(rings, segments int) *Mesh {
	if rings < 2 {
		rings = 2
	}
	if segments < 3 {
		segments = 3
	}
	point := func(ring, seg int) Vertex {
		theta := float64(ring) * math.Pi / float64(rings)
		phi := float64(seg) * 2 * math.Pi / float64(segments)
		p := Vector{
			math.Sin(theta) * math.Cos(phi),
			math.Cos(theta),
			math.Sin(theta) * math.Sin(phi),
		}
		return Vertex{
			Position: p,
			Normal:   p,
			Texture:  Vector{float64(seg) / float64(segments), float64(ring) / float64(rings), 0},
			Color:    White,
		}
	}
	var vertices []Vertex
	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			v00 := point(ring, seg)
			v01 := point(ring, seg+1)
			v10 := point(ring+1, seg)
			v11 := point(ring+1, seg+1)
			vertices = append(vertices, v00, v10, v11)
			vertices = append(vertices, v00, v11, v01)
		}
	}
	return &Mesh{Vertices: vertices}
}

// Simplify decimates the mesh to roughly factor of its triangles using
// quadric edge collapse. Normals are rebuilt from the collapsed faces;
// texture coordinates and vertex colors do not survive decimation.
func (m *Mesh) Simplify(factor float64) *Mesh {
	triangles := make([]*simplify.Triangle, 0, m.TriangleCount())
	for i := 0; i+2 < len(m.Vertices); i += 3 {
		triangles = append(triangles, simplify.NewTriangle(
			simplifyVector(m.Vertices[i].Position),
			simplifyVector(m.Vertices[i+1].Position),
			simplifyVector(m.Vertices[i+2].Position),
		))
	}
	simplified := simplify.NewMesh(triangles).Simplify(factor)

	vertices := make([]Vertex, 0, len(simplified.Triangles)*3)
	for _, t := range simplified.Triangles {
		p1 := Vector{t.V1.X, t.V1.Y, t.V1.Z}
		p2 := Vector{t.V2.X, t.V2.Y, t.V2.Z}
		p3 := Vector{t.V3.X, t.V3.Y, t.V3.Z}
		n := p2.Sub(p1).Cross(p3.Sub(p1)).Normalize()
		vertices = append(vertices,
			Vertex{Position: p1, Normal: n, Color: White},
			Vertex{Position: p2, Normal: n, Color: White},
			Vertex{Position: p3, Normal: n, Color: White},
		)
	}
	return &Mesh{Vertices: vertices}
}

func simplifyVector(v Vector) simplify.Vector {
	return simplify.Vector{X: v.X, Y: v.Y, Z: v.Z}
}

// LevelOfDetail returns the mesh to use at the given camera distance.
// Distance-based LOD is out of scope; this always returns the same mesh.
func (m *Mesh) LevelOfDetail(distance float64) *Mesh {
	return m
}
