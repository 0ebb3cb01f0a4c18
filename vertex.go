package astra

// Vertex is one mesh vertex. Position, Normal, Texture and Color come from
// the loader; Screen and WorldNormal are filled in by the vertex stage and
// never mutated in place on the input slice.
type Vertex struct {
	Position    Vector
	Normal      Vector
	Texture     Vector
	Color       Color
	Screen      Vector
	WorldNormal Vector
}

// Fragment is a candidate pixel produced by the rasterizer.
type Fragment struct {
	X, Y      int
	Depth     float64
	Normal    Vector
	Position  Vector // interpolated model-space position, stable under camera motion
	Color     Color
	Intensity float64
}

// LightDirection is the fixed scene light used for fragment intensity.
var LightDirection = Vector{0, 0, 1}
