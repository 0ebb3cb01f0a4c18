package astra

import "math"

// Kind tags a body with its procedural material. The set is closed; Shade
// matches over it exhaustively.
type Kind int

const (
	Sun Kind = iota
	Mercury
	Venus
	Earth
	Moon
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	BlackHole
	Spaceship
)

var kindNames = [...]string{
	"Sun", "Mercury", "Venus", "Earth", "Moon", "Mars",
	"Jupiter", "Saturn", "Uranus", "Neptune", "BlackHole", "Spaceship",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// Shade maps one fragment to its color. It is a pure function of the
// fragment and the per-frame uniforms; unknown tags fall back to the flat
// hull color.
func Shade(f Fragment, u *Uniforms, kind Kind) Color {
	switch kind {
	case Sun:
		return sunShader(f, u)
	case Mercury:
		return mercuryShader(f, u)
	case Venus:
		return venusShader(f, u)
	case Earth:
		return blendLayers(earthShader(f, u), cloudShader(f, u))
	case Moon:
		return moonShader(f, u)
	case Mars:
		return marsShader(f, u)
	case Jupiter:
		return jupiterShader(f, u)
	case Saturn:
		return saturnShader(f, u)
	case Uranus:
		return uranusShader(f, u)
	case Neptune:
		return neptuneShader(f, u)
	case BlackHole:
		return blackHoleShader(f, u)
	default: // Spaceship: flat hull color, no procedural shading
		return Color{192, 192, 192}
	}
}

// blendLayers composites an overlay (clouds) over a base color. Dim
// overlays are ignored; bright ones blend in at fixed opacity.
func blendLayers(base, overlay Color) Color {
	if overlay.Mean() > 0.3 {
		return base.Lerp(overlay, 0.7)
	}
	return base
}

// sunShader animates a hot two-sample noise pattern, pulsating the sample
// coordinate over time.
func sunShader(f Fragment, u *Uniforms) Color {
	bright := Color{255, 255, 100}
	dark := Color{255, 140, 0}

	p := f.Position
	t := float64(u.Time) * 0.02
	pulsate := math.Sin(t*0.4) * 0.8

	const zoom = 800.0
	n1 := u.Noise.Sample3D(p.X*zoom, p.Y*zoom, (p.Z+pulsate)*zoom)
	n2 := u.Noise.Sample3D((p.X+1000)*zoom, (p.Y+1000)*zoom, (p.Z+1000+pulsate)*zoom)
	n := math.Min((n1+n2)*0.5+0.2, 1)

	return dark.Lerp(bright, n).MulScalar(f.Intensity * 1.2)
}

// earthShader thresholds noise into ocean and land with a soft transition
// band, then tints the rim with atmosphere.
func earthShader(f Fragment, u *Uniforms) Color {
	ocean := Color{25, 80, 180}
	land := Color{50, 160, 80}

	p := f.Position
	const zoom = 250.0
	n := math.Abs(u.Noise.Sample3D(p.X*zoom, p.Y*zoom, p.Z*zoom))

	const threshold = 0.5
	const width = 0.1
	var landFactor float64
	switch {
	case n < threshold-width:
		landFactor = 0
	case n > threshold+width:
		landFactor = 1
	default:
		landFactor = (n - (threshold - width)) / (width * 2)
	}
	base := ocean.Lerp(land, landFactor)

	atmosphere := Color{150, 200, 255}
	rim := math.Pow(1-math.Abs(f.Normal.Dot(Vector{0, 0, 1})), 2)
	return base.Lerp(atmosphere, rim*0.4).MulScalar(f.Intensity)
}

// cloudShader is the time-scrolling overlay composited onto the earth.
func cloudShader(f Fragment, u *Uniforms) Color {
	const zoom = 100.0
	const ox, oy = 100.0, 100.0
	t := float64(u.Time) * 0.1

	n := u.Noise.Sample2D(f.Position.X*zoom+ox+t, f.Position.Y*zoom+oy)

	const threshold = 0.1
	factor := 0.0
	if n > threshold {
		factor = math.Min((n-threshold)/(1-threshold), 1)
	}
	return White.MulScalar(factor * f.Intensity)
}

func mercuryShader(f Fragment, u *Uniforms) Color {
	dark := Color{80, 75, 70}
	light := Color{170, 160, 150}
	crater := Color{60, 55, 50}

	p := f.Position
	const zoom = 300.0
	terrain := math.Abs(u.Noise.Sample3D(p.X*zoom, p.Y*zoom, p.Z*zoom))

	const craterZoom = 600.0
	craters := math.Abs(u.Noise.Sample3D(p.X*craterZoom, p.Y*craterZoom, p.Z*craterZoom))

	c := dark.Lerp(light, terrain)
	if craters > 0.7 {
		c = c.Lerp(crater, 0.5)
	}
	return c.MulScalar(f.Intensity)
}

func venusShader(f Fragment, u *Uniforms) Color {
	base := Color{230, 180, 50}
	cloud := Color{255, 198, 88}

	p := f.Position
	t := float64(u.Time) * 0.05
	const zoom = 150.0
	clouds := math.Abs(u.Noise.Sample3D(p.X*zoom+t, p.Y*zoom, p.Z*zoom))
	c := base.Lerp(cloud, clouds)

	atmosphere := Color{255, 220, 150}
	rim := math.Pow(1-f.Normal.Dot(Vector{0, 0, 1}), 0.5)
	if math.IsNaN(rim) {
		rim = 0
	}
	return c.Lerp(atmosphere, rim*0.3).MulScalar(f.Intensity)
}

func marsShader(f Fragment, u *Uniforms) Color {
	darkRed := Color{145, 50, 20}
	lightRed := Color{200, 80, 30}
	dustColor := Color{230, 130, 50}

	p := f.Position
	const zoom = 250.0
	terrain := math.Abs(u.Noise.Sample3D(p.X*zoom, p.Y*zoom, p.Z*zoom))

	const dustZoom = 400.0
	dust := math.Abs(u.Noise.Sample3D(p.X*dustZoom, p.Y*dustZoom, p.Z*dustZoom))

	return darkRed.Lerp(lightRed, terrain).Lerp(dustColor, dust*0.3).MulScalar(f.Intensity)
}

func jupiterShader(f Fragment, u *Uniforms) Color {
	lightBand := Color{255, 220, 180}
	darkBand := Color{180, 140, 100}
	storm := Color{255, 160, 120}

	p := f.Position
	t := float64(u.Time) * 0.1

	bands := math.Abs(u.Noise.Sample2D(p.Y*100, t))

	const turbZoom = 300.0
	turbulence := math.Abs(u.Noise.Sample3D(p.X*turbZoom+t, p.Y*turbZoom, p.Z*turbZoom))

	return darkBand.Lerp(lightBand, bands).Lerp(storm, turbulence*0.3).MulScalar(f.Intensity)
}

// saturnShader splits fragments into the ring band and the body. The ring
// is a radial test in model space: an inner/outer radius annulus inside a
// thin vertical slab.
func saturnShader(f Fragment, u *Uniforms) Color {
	planetLight := Color{255, 240, 200}
	planetDark := Color{200, 180, 140}
	ringLight := Color{210, 190, 170}
	ringDark := Color{160, 140, 120}

	p := f.Position
	radius := math.Sqrt(p.X*p.X + p.Z*p.Z)

	const ringInner = 1.2
	const ringOuter = 2.5
	const ringThickness = 0.1

	if radius >= ringInner && radius <= ringOuter && math.Abs(p.Y) <= ringThickness {
		pattern := math.Abs(math.Sin(radius*20)*0.5 + 0.5)
		detail := math.Abs(u.Noise.Sample2D(radius*15, math.Atan2(p.Z, p.X)*5))
		factor := pattern*0.7 + detail*0.3
		c := ringLight.Lerp(ringDark, factor)
		falloff := math.Max(math.Abs(f.Normal.Dot(Vector{0, 1, 0})), 0.2)
		return c.MulScalar(f.Intensity * falloff)
	}

	t := float64(u.Time) * 0.08
	bands := math.Abs(u.Noise.Sample2D(p.Y*120, t))
	return planetLight.Lerp(planetDark, bands).MulScalar(f.Intensity)
}

func uranusShader(f Fragment, u *Uniforms) Color {
	base := Color{150, 210, 230}
	cloud := Color{180, 230, 255}

	p := f.Position
	t := float64(u.Time) * 0.03
	const zoom = 200.0
	clouds := math.Abs(u.Noise.Sample3D(p.X*zoom+t, p.Y*zoom, p.Z*zoom))

	return base.Lerp(cloud, clouds*0.4).MulScalar(f.Intensity)
}

func neptuneShader(f Fragment, u *Uniforms) Color {
	base := Color{30, 100, 200}
	storm := Color{100, 160, 255}

	p := f.Position
	t := float64(u.Time) * 0.06

	const stormZoom = 250.0
	storms := math.Abs(u.Noise.Sample3D(p.X*stormZoom+t, p.Y*stormZoom, p.Z*stormZoom))
	bands := math.Abs(u.Noise.Sample2D(p.Y*150, t))

	return base.Lerp(storm, (storms+bands*0.5)*0.4).MulScalar(f.Intensity)
}

func moonShader(f Fragment, u *Uniforms) Color {
	dark := Color{100, 100, 100}
	light := Color{200, 200, 200}
	crater := Color{80, 80, 80}

	p := f.Position
	const zoom = 400.0
	terrain := math.Abs(u.Noise.Sample3D(p.X*zoom, p.Y*zoom, p.Z*zoom))

	const craterZoom = 800.0
	craters := math.Abs(u.Noise.Sample3D(p.X*craterZoom, p.Y*craterZoom, p.Z*craterZoom))

	c := dark.Lerp(light, terrain)
	if craters > 0.7 {
		c = c.Lerp(crater, 0.5)
	}
	return c.MulScalar(f.Intensity)
}

// blackHoleShader partitions model space into core/inner/outer/halo radius
// zones. Every denominator is kept away from zero by the zone thresholds.
func blackHoleShader(f Fragment, u *Uniforms) Color {
	core := Color{0, 0, 0}
	inner := Color{255, 0, 255}
	outer := Color{147, 0, 255}
	space := Color{75, 0, 130}

	p := f.Position
	radius := math.Sqrt(p.X*p.X + p.Z*p.Z)
	t := float64(u.Time) * 0.05

	angle := math.Atan2(p.Z, p.X) + t
	spiral := math.Sin(angle*5+radius*10+t)*0.5 + 0.5
	pulse := math.Sin(t*2)*0.5 + 0.5
	distortion := 1 / (radius + 0.5)
	noise := math.Abs(u.Noise.Sample3D(p.X*2+t, p.Y*2, p.Z*2-t))
	effect := (spiral + noise + pulse) / 3

	switch {
	case radius < 0.3:
		return core
	case radius < 1.0:
		factor := math.Sqrt((radius - 0.3) / 0.7)
		return core.Lerp(inner, factor*effect).MulScalar(distortion * 0.5)
	case radius < 2.0:
		factor := math.Sqrt(radius - 1.0)
		return inner.Lerp(outer, factor*effect).MulScalar((3 - radius) * 0.5)
	default:
		fade := math.Min(1/(radius-1.5), 1)
		return outer.Lerp(space, fade).MulScalar(0.5 * fade)
	}
}
