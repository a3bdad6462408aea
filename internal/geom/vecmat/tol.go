package vecmat

// Tol mirrors BRL-CAD's bn_tol: a distance tolerance for "same point"
// tests and a perpendicularity tolerance (sine of the angle) for
// "are these directions parallel" tests.
type Tol struct {
	// Dist is the maximum distance between two points considered equal.
	Dist float64
	// DistSq is Dist*Dist, cached to avoid a sqrt in hot comparisons.
	DistSq float64
	// Perp is the largest sin(theta) between two directions at which
	// they are still considered parallel.
	Perp float64
}

// DefaultTol is the tolerance used when a session has not been given
// an explicit one.
var DefaultTol = NewTol(0.0005, 1e-6)

// NewTol builds a Tol from a distance and a near-zero perpendicularity
// threshold (the minimum sin(theta) for which two directions count as
// distinct).
func NewTol(dist, perp float64) Tol {
	return Tol{Dist: dist, DistSq: dist * dist, Perp: perp}
}

// SamePoint reports whether a and b are within the tolerance's
// distance of each other.
func (t Tol) SamePoint(a, b Vec3) bool {
	d := Sub(a, b)
	return Dot(d, d) <= t.DistSq
}

// Parallel reports whether two (not necessarily unit) directions are
// parallel within tolerance, via the magnitude of their cross product
// relative to their lengths.
func (t Tol) Parallel(a, b Vec3) bool {
	ma, mb := Magnitude(a), Magnitude(b)
	if ma < 1e-20 || mb < 1e-20 {
		return false
	}
	cross := Cross(a, b)
	sinTheta := Magnitude(cross) / (ma * mb)
	return sinTheta <= t.Perp
}

// Coplanar reports whether four points lie in a common plane within
// tolerance, used by the ARB planarity invariant (spec §8 property 1).
func Coplanar(a, b, c, d Vec3, tol Tol) bool {
	n := Cross(Sub(b, a), Sub(c, a))
	if IsZero(n, 1e-20) {
		return true
	}
	un, ok := Unitize(n)
	if !ok {
		return true
	}
	dist := Dot(un, Sub(d, a))
	if dist < 0 {
		dist = -dist
	}
	return dist <= tol.Dist
}
