package astra

import (
	"testing"

	"github.com/beorn7/floats"
)

func TestTrailRingIsBounded(t *testing.T) {
	tr := NewTrail(4)
	for i := 0; i < 10; i++ {
		tr.Push(Vector{float64(i), 0, 0}, White)
	}
	if tr.Len() != 4 {
		t.Fatalf("trail holds %d particles, want 4", tr.Len())
	}

	var xs []float64
	tr.Each(func(p Particle) { xs = append(xs, p.Position.X) })
	want := []float64{6, 7, 8, 9}
	for i := range want {
		if xs[i] != want[i] {
			t.Fatalf("trail order %v, want oldest-first %v", xs, want)
		}
	}
}

func TestTrailParticlesDecayAndShrink(t *testing.T) {
	tr := NewTrail(2)
	tr.Push(Vector{}, White)
	tr.Update()

	var got Particle
	tr.Each(func(p Particle) { got = p })
	if got.Life >= 1 || got.Size >= 2 {
		t.Fatalf("particle did not decay: %+v", got)
	}

	for i := 0; i < 100; i++ {
		tr.Update()
	}
	live := 0
	tr.Each(func(Particle) { live++ })
	if live != 0 {
		t.Fatalf("%d particles alive after full decay", live)
	}
}

func TestBodyOrbitsParent(t *testing.T) {
	earth := NewBody(Earth, Vector{18, 0, 0}, 0.7)
	moon := NewBody(Moon, Vector{20, 0, 0}, 0.2)
	moon.OrbitRadius = 2
	moon.OrbitSpeed = 0.03
	moon.Parent = earth

	for i := 0; i < 50; i++ {
		moon.Update()
		d := moon.Position.Distance(earth.Position)
		if !floats.AlmostEqual(d, 2, 1e-9) {
			t.Fatalf("moon drifted to distance %v from earth", d)
		}
	}
}

func TestStaticBodyStaysPut(t *testing.T) {
	sun := NewBody(Sun, Vector{0, 0, 0}, 2)
	rotation := sun.Rotation.Y
	sun.Update()
	if sun.Position != (Vector{0, 0, 0}) {
		t.Fatalf("non-orbiting body moved to %v", sun.Position)
	}
	if sun.Rotation.Y <= rotation {
		t.Fatal("body did not spin")
	}
}

func TestBodyModelMatrixPlacesOrigin(t *testing.T) {
	b := NewBody(Mars, Vector{24, 1, -3}, 0.5)
	p := b.ModelMatrix().MulPosition(Vector{0, 0, 0})
	if p != b.Position {
		t.Fatalf("model origin mapped to %v, want %v", p, b.Position)
	}
	// Scale applies before translation.
	q := b.ModelMatrix().MulPosition(Vector{1, 0, 0})
	if !floats.AlmostEqual(q.Distance(b.Position), 0.5, 1e-9) {
		t.Fatalf("unit offset scaled to %v", q.Distance(b.Position))
	}
}
