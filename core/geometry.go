package core

import "math"

// ECEF is an Earth-Centered, Earth-Fixed position in kilometres.
type ECEF struct {
	X, Y, Z float64
}

// Norm returns the distance from the ellipsoid centre.
func (p ECEF) Norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Sub returns p - other.
func (p ECEF) Sub(other ECEF) ECEF {
	return ECEF{X: p.X - other.X, Y: p.Y - other.Y, Z: p.Z - other.Z}
}

// DistanceTo returns the straight-line distance between two positions.
func (p ECEF) DistanceTo(other ECEF) float64 {
	return p.Sub(other).Norm()
}

// Geodetic is a position relative to the reference ellipsoid.
// Latitude is valid in [-90, 90]; longitude may use either the
// [-180, 180] or [0, 360] convention.
type Geodetic struct {
	LatDeg   float64
	LonDeg   float64
	HeightKm float64 // above the ellipsoid, negative below it
}

// ECEF converts g with LLHToECEF.
func (g Geodetic) ECEF() ECEF {
	return LLHToECEF(g.LatDeg, g.LonDeg, g.HeightKm)
}

// LatitudeInRange reports whether the latitude lies in [-90, 90].
func (g Geodetic) LatitudeInRange() bool {
	return g.LatDeg >= -90 && g.LatDeg <= 90
}
