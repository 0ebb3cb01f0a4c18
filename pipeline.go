package astra

import "math"

// Uniforms is the read-only per-frame parameter bundle shared by every
// shading call in a frame.
type Uniforms struct {
	Model          Matrix
	View           Matrix
	Projection     Matrix
	Viewport       Matrix
	Time           int
	Noise          Noise
	CameraPosition Vector
}

// nearestDepth is forced onto foreground-model fragments so the viewpoint
// model always renders in front of the scene.
var nearestDepth = math.Inf(-1)

// Renderer runs the software pipeline. It owns a fragment scratch buffer
// that is reused across triangles and frames.
type Renderer struct {
	scratch []Fragment
}

func NewRenderer() *Renderer {
	return &Renderer{scratch: make([]Fragment, 0, 4096)}
}

// shadeVertex transforms one vertex through model/view/projection and the
// viewport map. The returned flag is false for vertices that project behind
// the camera; triangles touching such a vertex are skipped.
func shadeVertex(v Vertex, u *Uniforms) (Vertex, bool) {
	mvp := u.Projection.Mul(u.View).Mul(u.Model)
	clip := mvp.MulPositionW(v.Position)
	if clip.W <= 0 {
		return v, false
	}
	ndc := clip.DivScalar(clip.W).Vector()
	v.Screen = u.Viewport.MulPosition(ndc)

	// Normal by the inverse transpose of the model's rotation/scale block;
	// Inverse already degrades to the identity when the block is singular.
	nm, _ := u.Model.Mat3().Transpose().Inverse()
	v.WorldNormal = nm.MulDirection(v.Normal).Normalize()
	return v, true
}

// Render draws a vertex array as consecutive triangles into fb. The input
// length should be a multiple of 3; a trailing partial triple is silently
// dropped. Malformed or degenerate geometry degrades to fewer fragments,
// never an error.
func (r *Renderer) Render(fb *Framebuffer, u *Uniforms, vertices []Vertex, kind Kind) {
	n := len(vertices) - len(vertices)%3
	for i := 0; i < n; i += 3 {
		v0, ok0 := shadeVertex(vertices[i], u)
		v1, ok1 := shadeVertex(vertices[i+1], u)
		v2, ok2 := shadeVertex(vertices[i+2], u)
		if !ok0 || !ok1 || !ok2 {
			continue
		}

		r.scratch = Rasterize(v0, v1, v2, fb.Width, fb.Height, r.scratch[:0])

		for _, f := range r.scratch {
			d := f.Depth
			if kind == Spaceship {
				d = nearestDepth
			}
			if fb.ShouldDraw(f.X, f.Y, d) {
				fb.Point(f.X, f.Y, d, Shade(f, u, kind))
			}
		}
	}
}
