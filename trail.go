package astra

// Particle is one sample on a body's trail. Life decays from 1 to 0 and the
// rendered size shrinks with it.
type Particle struct {
	Position Vector
	Color    Color
	Life     float64
	Size     float64
}

// Trail is a bounded ring of recent positions. Pushing past capacity
// overwrites the oldest sample.
type Trail struct {
	particles []Particle
	head      int
	count     int
}

func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{particles: make([]Particle, capacity)}
}

func (t *Trail) Len() int { return t.count }

func (t *Trail) Push(position Vector, color Color) {
	t.particles[t.head] = Particle{Position: position, Color: color, Life: 1, Size: 2}
	t.head = (t.head + 1) % len(t.particles)
	if t.count < len(t.particles) {
		t.count++
	}
}

// Update decays every live particle by one frame; dead particles stay in
// the ring until overwritten but are skipped by Each.
func (t *Trail) Update() {
	for i := range t.particles {
		p := &t.particles[i]
		if p.Life <= 0 {
			continue
		}
		p.Life -= 0.02
		p.Size *= 0.97
	}
}

// Each visits live particles, oldest first.
func (t *Trail) Each(fn func(Particle)) {
	start := t.head - t.count
	if start < 0 {
		start += len(t.particles)
	}
	for i := 0; i < t.count; i++ {
		p := t.particles[(start+i)%len(t.particles)]
		if p.Life > 0 {
			fn(p)
		}
	}
}
