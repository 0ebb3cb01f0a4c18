package astra

import "math"

const pitchLimit = math.Pi/2 - 0.1

// WarpState is the scripted camera transition. While active the camera pose
// is driven entirely by the interpolation below; on completion it snaps
// exactly to the end pose.
type WarpState struct {
	StartPosition  Vector
	EndPosition    Vector
	StartDirection Vector
	EndDirection   Vector
	Progress       float64
	Duration       float64
	Active         bool
}

// Camera holds the viewpoint. Pitch and yaw are the sole orientation source
// of truth; Center is re-derived from them, and Roll is a cosmetic banking
// parameter that never affects movement.
type Camera struct {
	Eye    Vector
	Center Vector
	Up     Vector
	Pitch  float64
	Yaw    float64
	Roll   float64
	Warp   WarpState
}

func NewCamera(eye, center Vector) *Camera {
	forward := center.Sub(eye).Normalize()
	c := &Camera{
		Eye:   eye,
		Up:    Vector{0, 1, 0},
		Pitch: math.Asin(forward.Y),
		Yaw:   math.Atan2(forward.Z, forward.X),
		Warp: WarpState{
			StartDirection: Vector{0, 0, -1},
			EndDirection:   Vector{0, 0, -1},
			Duration:       1,
		},
	}
	c.updateCenter()
	return c
}

// Forward derives the view direction from pitch and yaw.
func (c *Camera) Forward() Vector {
	return Vector{
		math.Cos(c.Yaw) * math.Cos(c.Pitch),
		math.Sin(c.Pitch),
		math.Sin(c.Yaw) * math.Cos(c.Pitch),
	}.Normalize()
}

func (c *Camera) Right() Vector {
	return c.Forward().Cross(c.Up).Normalize()
}

func (c *Camera) updateCenter() {
	c.Center = c.Eye.Add(c.Forward())
}

func (c *Camera) MoveForward(amount float64) {
	c.Eye = c.Eye.Add(c.Forward().MulScalar(amount))
	c.updateCenter()
}

func (c *Camera) MoveRight(amount float64) {
	c.Eye = c.Eye.Add(c.Right().MulScalar(amount))
	c.updateCenter()
}

func (c *Camera) MoveUp(amount float64) {
	c.Eye = c.Eye.Add(c.Up.MulScalar(amount))
	c.updateCenter()
}

func (c *Camera) RotateYaw(angle float64) {
	c.Yaw += angle
	c.updateCenter()
}

func (c *Camera) RotatePitch(angle float64) {
	c.Pitch = Clamp(c.Pitch+angle, -pitchLimit, pitchLimit)
	c.updateCenter()
}

func (c *Camera) SetRoll(angle float64) {
	c.Roll = angle
}

// DecayRoll eases the cosmetic roll back toward level; called once per
// frame when the driver is not actively banking.
func (c *Camera) DecayRoll() {
	c.Roll *= 0.9
	if math.Abs(c.Roll) < 1e-4 {
		c.Roll = 0
	}
}

// ViewMatrix applies the cosmetic roll to the up vector only, so roll never
// changes where movement goes.
func (c *Camera) ViewMatrix() Matrix {
	up := c.Up
	if c.Roll != 0 {
		up = RotateAxis(c.Forward(), c.Roll).MulDirection(up).Normalize()
	}
	return LookAt(c.Eye, c.Center, up)
}

// RotateAxis builds a rotation of angle radians about the given axis.
func RotateAxis(axis Vector, angle float64) Matrix {
	a := axis.Normalize()
	s, c := math.Sincos(angle)
	m := 1 - c
	return Matrix{
		m*a.X*a.X + c, m*a.X*a.Y - a.Z*s, m*a.Z*a.X + a.Y*s, 0,
		m*a.X*a.Y + a.Z*s, m*a.Y*a.Y + c, m*a.Y*a.Z - a.X*s, 0,
		m*a.Z*a.X - a.Y*s, m*a.Y*a.Z + a.X*s, m*a.Z*a.Z + c, 0,
		0, 0, 0, 1}
}

// StartWarp snapshots the current pose as the start of a warp toward the
// target pose.
func (c *Camera) StartWarp(targetPos, targetDir Vector) {
	c.Warp.StartPosition = c.Eye
	c.Warp.EndPosition = targetPos
	c.Warp.StartDirection = c.Forward()
	c.Warp.EndDirection = targetDir.Normalize()
	c.Warp.Progress = 0
	c.Warp.Duration = 1
	c.Warp.Active = true
}

// UpdateWarp advances an active warp by dt. The eased parameter sin(pi*p)
// returns to zero at p=1, so arrival is handled by an exact snap to the end
// pose rather than by the interpolation.
func (c *Camera) UpdateWarp(dt float64) {
	if !c.Warp.Active {
		return
	}

	c.Warp.Progress += dt / c.Warp.Duration

	if c.Warp.Progress >= 1 {
		c.Eye = c.Warp.EndPosition
		dir := c.Warp.EndDirection
		c.Pitch = math.Asin(Clamp(dir.Y, -1, 1))
		c.Yaw = math.Atan2(dir.Z, dir.X)
		c.Roll = 0
		c.Warp.Active = false
		c.updateCenter()
		return
	}

	t := math.Sin(c.Warp.Progress * math.Pi)

	c.Eye = c.Warp.StartPosition.Lerp(c.Warp.EndPosition, t)

	dir := c.Warp.StartDirection.Lerp(c.Warp.EndDirection, t).Normalize()
	c.Pitch = math.Asin(Clamp(dir.Y, -1, 1))
	c.Yaw = math.Atan2(dir.Z, dir.X)

	// Cosmetic banking while in transit.
	c.Roll = math.Sin(t*2*math.Pi) * 0.5

	c.updateCenter()
}
