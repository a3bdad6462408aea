// Package plane implements the plane-equation algebra shared by every
// primitive that edits via face planes (ARB, TGC's base/top planes,
// NMG face support): construction from points, line/plane and
// three-plane intersection, and the "make a plane through N points"
// helper rt_arb_calc_planes relies on.
package plane

import (
	"errors"

	"github.com/csgedit/csgedit/internal/geom/vecmat"
)

// ErrDegenerate is returned when three points are collinear or
// otherwise fail to define a unique plane.
var ErrDegenerate = errors.New("plane: degenerate point set")

// ErrParallel is returned when a line and plane (or three planes)
// don't intersect because they are parallel.
var ErrParallel = errors.New("plane: parallel, no intersection")

// Plane is the equation N.X = D for a unit normal N.
type Plane struct {
	N vecmat.Vec3
	D float64
}

// FromPoints builds the plane through three non-collinear points,
// oriented by the right-hand rule a->b, a->c (bg_make_plane_3pnts).
func FromPoints(a, b, c vecmat.Vec3, tol vecmat.Tol) (Plane, error) {
	n := vecmat.Cross(vecmat.Sub(b, a), vecmat.Sub(c, a))
	un, ok := vecmat.Unitize(n)
	if !ok {
		return Plane{}, ErrDegenerate
	}
	return Plane{N: un, D: vecmat.Dot(un, a)}, nil
}

// AnchorThrough returns a copy of p whose D term places pt exactly on
// the plane, keeping the normal fixed. Used to re-anchor a rotated
// face plane through its fixed vertex.
func (p Plane) AnchorThrough(pt vecmat.Vec3) Plane {
	return Plane{N: p.N, D: vecmat.Dot(p.N, pt)}
}

// Translate returns a copy of p moved so that target lies on it,
// along the plane's own normal (spec §4.2 face move).
func (p Plane) Translate(target vecmat.Vec3) Plane {
	return p.AnchorThrough(target)
}

// SignedDistance returns N.pt - D, positive on the side N points to.
func (p Plane) SignedDistance(pt vecmat.Vec3) float64 {
	return vecmat.Dot(p.N, pt) - p.D
}

// IsectLinePlane intersects the line thru+t*dir with p, returning the
// parameter t such that thru+t*dir lies on the plane.
func IsectLinePlane(thru, dir vecmat.Vec3, p Plane, tol vecmat.Tol) (float64, error) {
	denom := vecmat.Dot(p.N, dir)
	if denom < tol.Perp && denom > -tol.Perp {
		return 0, ErrParallel
	}
	t := (p.D - vecmat.Dot(p.N, thru)) / denom
	return t, nil
}

// Isect3 intersects three planes at a single point (rt_arb_3face_intersect).
func Isect3(a, b, c Plane, tol vecmat.Tol) (vecmat.Vec3, error) {
	// Solve the 3x3 linear system [a.N;b.N;c.N] x = [a.D;b.D;c.D] via
	// Cramer's rule, the textbook three-plane intersection.
	denom := vecmat.Dot(a.N, vecmat.Cross(b.N, c.N))
	if denom < tol.Perp && denom > -tol.Perp {
		return vecmat.Vec3{}, ErrParallel
	}
	num := vecmat.Add(
		vecmat.Add(
			vecmat.Scale(vecmat.Cross(b.N, c.N), a.D),
			vecmat.Scale(vecmat.Cross(c.N, a.N), b.D),
		),
		vecmat.Scale(vecmat.Cross(a.N, b.N), c.D),
	)
	return vecmat.Scale(num, 1/denom), nil
}
