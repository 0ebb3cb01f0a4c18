package astra

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadOBJ parses a Wavefront OBJ file into a flat triangle vertex array.
func LoadOBJ(path string) (*Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return LoadOBJFromReader(file)
}

func LoadOBJFromBytes(b []byte) (*Mesh, error) {
	return LoadOBJFromReader(bytes.NewReader(b))
}

func LoadOBJFromReader(r io.Reader) (*Mesh, error) {
	vs := make([]Vector, 1, 1024)
	vts := make([]Vector, 1, 1024)
	vns := make([]Vector, 1, 1024)

	var vertices []Vertex
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 2 || line[0] == '#' {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			vs = append(vs, Vector{pf(fields[1]), pf(fields[2]), pf(fields[3])})
		case "vt":
			vts = append(vts, Vector{pf(fields[1]), pf(fields[2]), 0})
		case "vn":
			vns = append(vns, Vector{pf(fields[1]), pf(fields[2]), pf(fields[3])})
		case "f":
			args := fields[1:]
			fvs := make([]int, len(args))
			fvts := make([]int, len(args))
			fvns := make([]int, len(args))

			for i, arg := range args {
				vertex := strings.Split(arg+"//", "/")
				fvs[i] = fixIndex(vertex[0], len(vs))
				fvts[i] = fixIndex(vertex[1], len(vts))
				fvns[i] = fixIndex(vertex[2], len(vns))
			}

			// Fan-triangulate the face.
			for i := 1; i < len(fvs)-1; i++ {
				corners := [3]int{0, i, i + 1}
				var tri [3]Vertex
				for j, k := range corners {
					v := Vertex{Position: vs[fvs[k]], Color: White}
					if fvns[k] > 0 {
						v.Normal = vns[fvns[k]]
					}
					if fvts[k] > 0 {
						v.Texture = vts[fvts[k]]
					}
					tri[j] = v
				}
				if tri[0].Normal == (Vector{}) {
					n := tri[1].Position.Sub(tri[0].Position).
						Cross(tri[2].Position.Sub(tri[0].Position)).Normalize()
					tri[0].Normal = n
					tri[1].Normal = n
					tri[2].Normal = n
				}
				vertices = append(vertices, tri[0], tri[1], tri[2])
			}
		}
	}
	return &Mesh{Vertices: vertices}, scanner.Err()
}

func pf(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

// fixIndex resolves OBJ 1-based and negative indices.
func fixIndex(value string, length int) int {
	if value == "" {
		return 0
	}
	parsed, _ := strconv.Atoi(value)
	if parsed < 0 {
		return parsed + length
	}
	return parsed
}
