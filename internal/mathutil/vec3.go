package mathutil

import "math"

// Vec3 is a 3-component vector (value type, stack-allocated).
type Vec3 [3]float64

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < 1e-12 {
		return Vec3{}
	}
	return Vec3{v[0] / l, v[1] / l, v[2] / l}
}

// FromLonLat converts spherical coordinates (degrees) to a Cartesian
// position. Longitude 0 faces +Z, positive longitude turns toward +X,
// positive latitude points up (+Y).
func FromLonLat(lonDeg, latDeg, radius float64) Vec3 {
	lon := Deg2Rad(lonDeg)
	lat := Deg2Rad(latDeg)
	return Vec3{
		radius * math.Cos(lat) * math.Sin(lon),
		radius * math.Sin(lat),
		radius * math.Cos(lat) * math.Cos(lon),
	}
}

// LonLat returns the spherical angles of v in degrees.
// Inverse of FromLonLat up to the radius.
func (v Vec3) LonLat() (lonDeg, latDeg float64) {
	lon := math.Atan2(v[0], v[2])
	lat := math.Atan2(v[1], math.Hypot(v[0], v[2]))
	return Rad2Deg(lon), Rad2Deg(lat)
}
