package astra

func edge(a, b, c Vector) float64 {
	return (b.X-c.X)*(a.Y-c.Y) - (b.Y-c.Y)*(a.X-c.X)
}

// Rasterize converts one screen-space triangle into fragments, appending to
// buf so callers can reuse a per-frame scratch slice. A pixel center belongs
// to the triangle iff all three normalized barycentric weights are >= 0;
// the signed-area normalization makes both windings fill. Attributes are
// interpolated linearly in screen space. Degenerate triangles produce
// nothing.
func Rasterize(v0, v1, v2 Vertex, width, height int, buf []Fragment) []Fragment {
	s0, s1, s2 := v0.Screen, v1.Screen, v2.Screen

	area := edge(s0, s1, s2)
	if area == 0 {
		return buf
	}
	ra := 1 / area

	min := s0.Min(s1.Min(s2)).Floor()
	max := s0.Max(s1.Max(s2)).Ceil()
	x0 := ClampInt(int(min.X), 0, width-1)
	x1 := ClampInt(int(max.X), 0, width-1)
	y0 := ClampInt(int(min.Y), 0, height-1)
	y1 := ClampInt(int(max.Y), 0, height-1)

	p := Vector{float64(x0) + 0.5, float64(y0) + 0.5, 0}
	w00 := edge(s1, s2, p)
	w01 := edge(s2, s0, p)
	w02 := edge(s0, s1, p)
	a01 := s1.Y - s0.Y
	b01 := s0.X - s1.X
	a12 := s2.Y - s1.Y
	b12 := s1.X - s2.X
	a20 := s0.Y - s2.Y
	b20 := s2.X - s0.X

	for y := y0; y <= y1; y++ {
		w0 := w00
		w1 := w01
		w2 := w02
		for x := x0; x <= x1; x++ {
			b0 := w0 * ra
			b1 := w1 * ra
			b2 := w2 * ra
			if b0 >= 0 && b1 >= 0 && b2 >= 0 {
				depth := b0*s0.Z + b1*s1.Z + b2*s2.Z
				normal := Vector{
					b0*v0.WorldNormal.X + b1*v1.WorldNormal.X + b2*v2.WorldNormal.X,
					b0*v0.WorldNormal.Y + b1*v1.WorldNormal.Y + b2*v2.WorldNormal.Y,
					b0*v0.WorldNormal.Z + b1*v1.WorldNormal.Z + b2*v2.WorldNormal.Z,
				}.Normalize()
				position := Vector{
					b0*v0.Position.X + b1*v1.Position.X + b2*v2.Position.X,
					b0*v0.Position.Y + b1*v1.Position.Y + b2*v2.Position.Y,
					b0*v0.Position.Z + b1*v1.Position.Z + b2*v2.Position.Z,
				}
				color := Color{
					uint8(Clamp(b0*float64(v0.Color.R)+b1*float64(v1.Color.R)+b2*float64(v2.Color.R), 0, 255)),
					uint8(Clamp(b0*float64(v0.Color.G)+b1*float64(v1.Color.G)+b2*float64(v2.Color.G), 0, 255)),
					uint8(Clamp(b0*float64(v0.Color.B)+b1*float64(v1.Color.B)+b2*float64(v2.Color.B), 0, 255)),
				}
				buf = append(buf, Fragment{
					X:         x,
					Y:         y,
					Depth:     depth,
					Normal:    normal,
					Position:  position,
					Color:     color,
					Intensity: maxf(0, normal.Dot(LightDirection)),
				})
			}
			w0 += a12
			w1 += a20
			w2 += a01
		}
		w00 += b12
		w01 += b20
		w02 += b01
	}
	return buf
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
