package astra

import "math"

// Body is one celestial object in the scene.
type Body struct {
	Position    Vector
	Scale       float64
	Rotation    Vector
	Kind        Kind
	OrbitRadius float64
	OrbitSpeed  float64
	OrbitAngle  float64
	Parent      *Body // body orbited around; nil orbits the origin
	Trail       *Trail
}

func NewBody(kind Kind, position Vector, scale float64) *Body {
	return &Body{
		Position: position,
		Scale:    scale,
		Kind:     kind,
		Trail:    NewTrail(64),
	}
}

// ModelMatrix composes translation, uniform scale and the ZYX rotation for
// this body.
func (b *Body) ModelMatrix() Matrix {
	return Translate(b.Position).
		Mul(Scale(Vector{b.Scale, b.Scale, b.Scale})).
		Mul(RotateZ(b.Rotation.Z)).
		Mul(RotateY(b.Rotation.Y)).
		Mul(RotateX(b.Rotation.X))
}

// Update advances orbital motion and spin by one frame and records the new
// position on the trail.
func (b *Body) Update() {
	b.Rotation.Y += 0.01
	if b.OrbitRadius > 0 {
		b.OrbitAngle += b.OrbitSpeed
		center := Vector{}
		if b.Parent != nil {
			center = b.Parent.Position
		}
		b.Position = center.Add(Vector{
			b.OrbitRadius * math.Cos(b.OrbitAngle),
			0,
			b.OrbitRadius * math.Sin(b.OrbitAngle),
		})
	}
	if b.Trail != nil {
		b.Trail.Push(b.Position, trailColor(b.Kind))
	}
}

func trailColor(k Kind) Color {
	switch k {
	case Sun:
		return Color{255, 200, 80}
	case BlackHole:
		return Color{147, 0, 255}
	case Spaceship:
		return Color{120, 180, 255}
	default:
		return Color{160, 160, 200}
	}
}
