package astra

import (
	"log"
	"math"
)

// FixedDelta is the assumed per-frame time step. Motion is frame-count
// driven, keeping replays and tests deterministic.
const FixedDelta = 1.0 / 60

// Scene owns everything one frame touches: the camera, the body list, the
// framebuffer and the renderer. There is no ambient state; a Scene value is
// the whole world.
type Scene struct {
	Camera      *Camera
	Bodies      []*Body
	Framebuffer *Framebuffer
	Renderer    *Renderer
	Starfield   *Starfield
	Frustum     Frustum
	Mesh        *Mesh // shared sphere mesh for all bodies
	ShipMesh    *Mesh
	Noise       Noise
	Time        int

	projection Matrix
	viewport   Matrix
}

// NewScene builds the default solar system in front of a camera at
// (0, 0, 5), looking at the origin.
func NewScene(width, height int, seed int64) *Scene {
	s := &Scene{
		Camera:      NewCamera(Vector{0, 0, 5}, Vector{0, 0, 0}),
		Framebuffer: NewFramebuffer(width, height),
		Renderer:    NewRenderer(),
		Starfield:   NewStarfield(1000, seed),
		Frustum:     NewFrustum(45, 0.1, 1000),
		Mesh:        NewSphere(24, 32),
		ShipMesh:    NewShipMesh(),
		Noise:       NewCloudNoise(seed),
		projection:  Perspective(45, float64(width)/float64(height), 0.1, 1000),
		viewport:    Screen(width, height),
	}

	table := []struct {
		kind  Kind
		pos   Vector
		scale float64
		speed float64
	}{
		{Sun, Vector{0, 0, 0}, 2.0, 0},
		{Mercury, Vector{6, 0, 0}, 0.4, 0.008},
		{Venus, Vector{12, 0, 0}, 0.6, 0.006},
		{Earth, Vector{18, 0, 0}, 0.7, 0.005},
		{Mars, Vector{24, 0, 0}, 0.5, 0.004},
		{Jupiter, Vector{32, 0, 0}, 1.5, 0.003},
		{Saturn, Vector{40, 0, 0}, 1.3, 0.002},
		{Uranus, Vector{48, 0, 0}, 0.9, 0.0015},
		{Neptune, Vector{56, 0, 0}, 0.9, 0.001},
	}
	for _, row := range table {
		b := NewBody(row.kind, row.pos, row.scale)
		if row.speed > 0 {
			b.OrbitRadius = row.pos.X
			b.OrbitSpeed = row.speed
		}
		if row.kind == Saturn {
			b.Rotation.X = 0.2
		}
		s.Bodies = append(s.Bodies, b)
	}

	earth := s.BodyOf(Earth)
	moon := NewBody(Moon, Vector{18, 0, 2}, 0.2)
	moon.OrbitRadius = 2
	moon.OrbitSpeed = 0.03
	moon.Parent = earth
	s.Bodies = append(s.Bodies, moon)

	s.Bodies = append(s.Bodies, NewBody(BlackHole, Vector{-20, 0, -20}, 4))
	return s
}

// BodyOf returns the first body of the given kind, or nil.
func (s *Scene) BodyOf(kind Kind) *Body {
	for _, b := range s.Bodies {
		if b.Kind == kind {
			return b
		}
	}
	return nil
}

// Blocked reports whether pos is inside a body's collision sphere. The
// driver consults this before committing camera movement.
func (s *Scene) Blocked(pos Vector) bool {
	for _, b := range s.Bodies {
		if pos.Distance(b.Position) < b.Scale+0.5 {
			return true
		}
	}
	return false
}

// WarpTo starts a cinematic warp that ends a short distance from the body,
// facing it.
func (s *Scene) WarpTo(b *Body) {
	if b == nil {
		return
	}
	standoff := b.Scale*4 + 2
	dir := b.Position.Sub(s.Camera.Eye).Normalize()
	if dir == (Vector{}) {
		dir = Vector{0, 0, -1}
	}
	s.Camera.StartWarp(b.Position.Sub(dir.MulScalar(standoff)), dir)
}

// boundingRadius is the cull radius of a body; Saturn's rings reach well
// past the sphere.
func boundingRadius(b *Body) float64 {
	if b.Kind == Saturn {
		return b.Scale * 2.5
	}
	return b.Scale
}

// Step runs one complete frame in the fixed order: warp update, input,
// body motion, clear, background pass, culled body passes, foreground
// pass, trails.
func (s *Scene) Step(input func(*Camera)) {
	s.Time++

	s.Camera.UpdateWarp(FixedDelta)
	s.Camera.DecayRoll()
	if input != nil {
		input(s.Camera)
	}

	for _, b := range s.Bodies {
		b.Update()
	}

	s.Framebuffer.Clear()

	u := Uniforms{
		Model:          Identity(),
		View:           s.Camera.ViewMatrix(),
		Projection:     s.projection,
		Viewport:       s.viewport,
		Time:           s.Time,
		Noise:          s.Noise,
		CameraPosition: s.Camera.Eye,
	}

	s.Starfield.Render(s.Framebuffer, &u)

	forward := s.Camera.Forward()
	for _, b := range s.Bodies {
		if !s.Frustum.Visible(s.Camera.Eye, forward, b.Position, boundingRadius(b)) {
			continue
		}
		if s.Mesh == nil {
			log.Printf("astra: body %v has no mesh to render", b.Kind)
			continue
		}
		u.Model = b.ModelMatrix()
		s.Renderer.Render(s.Framebuffer, &u, s.Mesh.LevelOfDetail(s.Camera.Eye.Distance(b.Position)).Vertices, b.Kind)
	}

	s.renderShip(&u)
	s.renderTrails(&u)
}

// renderShip draws the viewpoint model just below and ahead of the camera.
// Its fragments carry the nearest depth sentinel, so it is always in front.
func (s *Scene) renderShip(u *Uniforms) {
	if s.ShipMesh == nil {
		return
	}
	pos := s.Camera.Eye.
		Add(s.Camera.Forward().MulScalar(2)).
		Add(s.Camera.Up.MulScalar(-0.6))
	u.Model = Translate(pos).
		Mul(RotateY(-s.Camera.Yaw + math.Pi/2)).
		Mul(RotateZ(s.Camera.Roll)).
		Mul(Scale(Vector{0.3, 0.3, 0.3}))
	s.Renderer.Render(s.Framebuffer, u, s.ShipMesh.Vertices, Spaceship)
}

// renderTrails plots each body's particle ring as depth-tested points,
// faded and shrunk by remaining life, then decays the rings.
func (s *Scene) renderTrails(u *Uniforms) {
	vp := u.Projection.Mul(u.View)
	for _, b := range s.Bodies {
		if b.Trail == nil {
			continue
		}
		b.Trail.Each(func(p Particle) {
			clip := vp.MulPositionW(p.Position)
			if clip.W <= 0 {
				return
			}
			screen := u.Viewport.MulPosition(clip.DivScalar(clip.W).Vector())
			if screen.Z < 0 {
				return
			}
			c := p.Color.MulScalar(p.Life)
			half := int(p.Size / 2)
			for dy := -half; dy <= half; dy++ {
				for dx := -half; dx <= half; dx++ {
					s.Framebuffer.Point(int(screen.X)+dx, int(screen.Y)+dy, screen.Z, c)
				}
			}
		})
		b.Trail.Update()
	}
}

// NewShipMesh builds the small faceted dart used as the viewpoint model.
func NewShipMesh() *Mesh {
	nose := Vector{0, 0, -2}
	tailL := Vector{-1, 0, 1}
	tailR := Vector{1, 0, 1}
	top := Vector{0, 0.5, 0.6}
	bottom := Vector{0, -0.2, 0.6}

	var vertices []Vertex
	face := func(a, b, c Vector) {
		n := b.Sub(a).Cross(c.Sub(a)).Normalize()
		vertices = append(vertices,
			Vertex{Position: a, Normal: n, Color: White},
			Vertex{Position: b, Normal: n, Color: White},
			Vertex{Position: c, Normal: n, Color: White},
		)
	}
	face(nose, top, tailL)
	face(nose, tailR, top)
	face(nose, tailL, bottom)
	face(nose, bottom, tailR)
	face(top, tailR, tailL)
	face(bottom, tailL, tailR)
	return &Mesh{Vertices: vertices}
}
