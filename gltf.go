package astra

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTF loads a .gltf or .glb file into a flat triangle vertex array.
func LoadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, err
	}

	var vertices []Vertex

	for _, mesh := range doc.Meshes {
		for _, primitive := range mesh.Primitives {
			// Only triangle primitives (mode 4).
			if primitive.Mode != gltf.PrimitiveTriangles {
				continue
			}

			posIdx, ok := primitive.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
			if err != nil {
				return nil, err
			}

			var normals [][3]float32
			if normIdx, ok := primitive.Attributes[gltf.NORMAL]; ok {
				normals, _ = modeler.ReadNormal(doc, doc.Accessors[normIdx], nil)
			}

			var texCoords [][2]float32
			if texIdx, ok := primitive.Attributes[gltf.TEXCOORD_0]; ok {
				texCoords, _ = modeler.ReadTextureCoord(doc, doc.Accessors[texIdx], nil)
			}

			var indices []uint32
			if primitive.Indices != nil {
				indices, err = modeler.ReadIndices(doc, doc.Accessors[*primitive.Indices], nil)
				if err != nil {
					return nil, err
				}
			} else {
				indices = make([]uint32, len(positions))
				for k := range indices {
					indices[k] = uint32(k)
				}
			}

			pick := func(i uint32) Vertex {
				v := Vertex{
					Position: Vector{float64(positions[i][0]), float64(positions[i][1]), float64(positions[i][2])},
					Color:    White,
				}
				if int(i) < len(normals) {
					v.Normal = Vector{float64(normals[i][0]), float64(normals[i][1]), float64(normals[i][2])}
				}
				if int(i) < len(texCoords) {
					v.Texture = Vector{float64(texCoords[i][0]), float64(texCoords[i][1]), 0}
				}
				return v
			}

			for i := 0; i+2 < len(indices); i += 3 {
				v1 := pick(indices[i])
				v2 := pick(indices[i+1])
				v3 := pick(indices[i+2])
				if v1.Normal == (Vector{}) {
					n := v2.Position.Sub(v1.Position).
						Cross(v3.Position.Sub(v1.Position)).Normalize()
					v1.Normal, v2.Normal, v3.Normal = n, n, n
				}
				vertices = append(vertices, v1, v2, v3)
			}
		}
	}

	if len(vertices) == 0 {
		return nil, fmt.Errorf("no triangles found in gltf")
	}
	return &Mesh{Vertices: vertices}, nil
}
