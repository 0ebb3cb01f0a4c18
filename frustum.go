package astra

import "math"

// Frustum is the coarse per-object visibility test run before any shading
// cost is paid. FOV is the full vertical field of view in radians.
type Frustum struct {
	FOV  float64
	Near float64
	Far  float64
}

func NewFrustum(fovDegrees, near, far float64) Frustum {
	return Frustum{FOV: fovDegrees * math.Pi / 180, Near: near, Far: far}
}

// Visible reports whether a sphere of the given radius at center can appear
// on screen. The view cone is widened by asin(radius/distance) so larger or
// nearer objects are accepted even when their centers sit outside the cone.
func (fr Frustum) Visible(eye, forward, center Vector, radius float64) bool {
	to := center.Sub(eye)
	dist := to.Length()
	if dist < fr.Near || dist > fr.Far {
		return false
	}

	angle := math.Acos(Clamp(forward.Normalize().Dot(to.DivScalar(dist)), -1, 1))
	allowance := math.Asin(Clamp(radius/dist, 0, 1))
	return angle <= fr.FOV/2+allowance
}
