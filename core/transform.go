package core

import "math"

// Reference ellipsoid. Output compatibility depends on these exact values.
const (
	// EquatorialRadiusKm is the ellipsoid semi-major axis R_E.
	EquatorialRadiusKm = 6378.1363
	// Eccentricity is the first eccentricity e_E of the ellipsoid.
	Eccentricity = 0.081819221456
)

// eccentricitySq is a typed constant so it is rounded to float64 exactly as
// a runtime e*e would be.
const eccentricitySq = float64(Eccentricity) * float64(Eccentricity)

// DegToRad converts degrees to radians as deg*π/180, multiplying first.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// LLHToECEF maps a geodetic latitude and longitude (degrees) and a height
// above the ellipsoid (km) to ECEF kilometres.
//
// C_E is the prime-vertical radius of curvature; S_E scales it by
// (1 - e_E²) for the polar component. The radicand 1 - e_E²·sin²φ stays
// positive for every latitude, so the function is total over finite input.
func LLHToECEF(latDeg, lonDeg, heightKm float64) ECEF {
	lat := DegToRad(latDeg)
	lon := DegToRad(lonDeg)

	sinPhi := math.Sin(lat)
	cosPhi := math.Cos(lat)

	// The conversion keeps the product rounded before the subtraction
	// on targets that would otherwise fuse it.
	denom := math.Sqrt(1 - float64(eccentricitySq*(sinPhi*sinPhi)))
	cE := EquatorialRadiusKm / denom
	sE := (EquatorialRadiusKm * (1 - eccentricitySq)) / denom

	return ECEF{
		X: (cE + heightKm) * cosPhi * math.Cos(lon),
		Y: (cE + heightKm) * cosPhi * math.Sin(lon),
		Z: (sE + heightKm) * sinPhi,
	}
}

// PolarRadiusKm is the Z component LLHToECEF yields at the north pole
// with zero height: R_E(1-e_E²)/sqrt(1-e_E²).
func PolarRadiusKm() float64 {
	return EquatorialRadiusKm * (1 - eccentricitySq) / math.Sqrt(1-eccentricitySq)
}
