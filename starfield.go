package astra

import (
	"math"
	"math/rand"
)

// Star is one fixed point on the backdrop sphere.
type Star struct {
	Position   Vector
	Brightness float64
}

// Starfield is the background pass: a seeded sphere of stars that follows
// the camera so it never gets closer or farther.
type Starfield struct {
	Stars []Star
}

// starDepth keeps stars behind everything the pipeline draws.
const starDepth = 100.0

func NewStarfield(count int, seed int64) *Starfield {
	rng := rand.New(rand.NewSource(seed))
	stars := make([]Star, count)
	const radius = 100.0
	for i := range stars {
		theta := rng.Float64() * 2 * math.Pi
		phi := rng.Float64() * math.Pi
		stars[i] = Star{
			Position: Vector{
				radius * math.Sin(phi) * math.Cos(theta),
				radius * math.Sin(phi) * math.Sin(theta),
				radius * math.Cos(phi),
			},
			Brightness: rng.Float64()*0.5 + 0.5,
		}
	}
	return &Starfield{Stars: stars}
}

// Render projects each star through view/projection/viewport and plots it
// as a depth-tested point. Stars behind the camera are skipped.
func (s *Starfield) Render(fb *Framebuffer, u *Uniforms) {
	for _, star := range s.Stars {
		position := star.Position.Add(u.CameraPosition)

		projected := u.Projection.Mul(u.View).MulPositionW(position)
		if projected.W <= 0 {
			continue
		}
		ndc := projected.DivScalar(projected.W).Vector()

		screen := u.Viewport.MulPosition(ndc)
		if screen.Z < 0 {
			continue
		}

		v := uint8(star.Brightness * 255)
		fb.Point(int(screen.X), int(screen.Y), starDepth, Color{v, v, v})
	}
}
