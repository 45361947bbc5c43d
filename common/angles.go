package common

import (
	"github.com/chewxy/math32"
)

// AnglesToDirection converts a yaw/pitch angle pair into a unit direction
// vector using a pitch-then-yaw spherical parametrization. Yaw is the rotation
// about the world Y axis (yaw 0, pitch 0 faces +Z), pitch the rotation about
// the local horizontal axis.
//
// The resulting vector only degenerates exactly at the poles (pitch = ±π/2),
// where yaw no longer affects the direction.
//
// Parameters:
//   - yaw: horizontal angle in radians
//   - pitch: vertical angle in radians
//
// Returns:
//   - x, y, z: unit direction vector components
func AnglesToDirection(yaw, pitch float32) (x, y, z float32) {
	cosPitch := math32.Cos(pitch)
	x = cosPitch * math32.Sin(yaw)
	y = math32.Sin(pitch)
	z = cosPitch * math32.Cos(yaw)
	return x, y, z
}

// DirectionToAngles decomposes a unit direction vector back into its yaw/pitch
// angle pair. This is the inverse of AnglesToDirection for pitch strictly
// inside (-π/2, π/2); at the poles yaw is numerically unstable but the result
// is still a valid boundary value (pitch = ±π/2).
//
// The y component is clamped before asin so that a vector that is very
// slightly longer than unit length does not produce NaN.
//
// Parameters:
//   - x, y, z: unit direction vector components
//
// Returns:
//   - yaw: horizontal angle in radians, in (-π, π]
//   - pitch: vertical angle in radians, in [-π/2, π/2]
func DirectionToAngles(x, y, z float32) (yaw, pitch float32) {
	yaw = math32.Atan2(x, z)
	pitch = math32.Asin(Clamp(y, -1, 1))
	return yaw, pitch
}
