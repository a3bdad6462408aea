// Package arb implements the ARB4-ARB8 generalized-arb8 editor
// (spec §4.2): edge/face/point moves that keep every face planar,
// face rotation about a fixed vertex, extrusion, vertex permutation
// and face mirroring, grounded on the teacher's original
// primitives/arb8/edarb.c.
package arb

import (
	"github.com/csgedit/csgedit/internal/geom/plane"
	"github.com/csgedit/csgedit/internal/geom/vecmat"
	"github.com/csgedit/csgedit/internal/primitive"
)

// Type is the current classification of an 8-point ARB record: how
// many of its 8 stored points are geometrically distinct right now.
// An ARB always stores all 8 slots; duplicate slots carry a copy of
// another vertex (rt_arb_get_cgtype's ARB4..ARB8 result).
type Type int

const (
	ARB4 Type = 4
	ARB5 Type = 5
	ARB6 Type = 6
	ARB7 Type = 7
	ARB8 Type = 8
)

// ARB is the internal form of a generalized arb8: 8 vertex slots (some
// possibly duplicated per Type) and 6 face-plane equations, plus a
// 7th scratch plane row used by extrude/mirror the way peqn[6] is
// used as working storage in the original.
type ARB struct {
	Pts    [8]vecmat.Vec3
	Planes [7]plane.Plane
	Tol    vecmat.Tol
}

// New builds an ARB from 8 points already laid out per the standard
// ARB8 vertex numbering (bottom 1-2-3-4, top 5-6-7-8, verticals
// 15/26/37/48) and computes its initial face planes.
func New(pts [8]vecmat.Vec3, tol vecmat.Tol) (*ARB, error) {
	a := &ARB{Pts: pts, Tol: tol}
	if err := a.CalcPlanes(a.Classify()); err != nil {
		return nil, err
	}
	return a, nil
}

// TypeName implements primitive.Primitive.
func (a *ARB) TypeName() string {
	switch a.Classify() {
	case ARB4:
		return "ARB4"
	case ARB5:
		return "ARB5"
	case ARB6:
		return "ARB6"
	case ARB7:
		return "ARB7"
	default:
		return "ARB8"
	}
}

// Keypoint implements primitive.Primitive: vertex 1 (pt[0]).
func (a *ARB) Keypoint() vecmat.Vec3 { return a.Pts[0] }

// ApplyMatrix implements primitive.Primitive: transform every vertex
// slot and recompute face planes.
func (a *ARB) ApplyMatrix(m vecmat.Mat4) error {
	for i := range a.Pts {
		a.Pts[i] = vecmat.TransformPoint(m, a.Pts[i])
	}
	return a.CalcPlanes(a.Classify())
}

// Classify reports which of the 8 vertex slots are currently distinct
// (rt_arb_get_cgtype), by testing the duplicate patterns each Type
// implies against the actual point positions, most collapsed (ARB4)
// first.
//
// This is a geometric approximation of the original's combinatorial
// uvec/svec classifier: rather than reproducing its exact index
// bookkeeping, it simply asks "does the collapse pattern this Type
// implies actually hold, within tolerance?" for each Type from ARB4
// up to ARB7, and returns the first match, or ARB8 when none holds.
func (a *ARB) Classify() Type {
	same := func(i, j int) bool { return vecmat.Equal(a.Pts[i], a.Pts[j], a.Tol.Dist) }
	switch {
	case same(4, 5) && same(4, 6) && same(4, 7):
		if same(0, 3) {
			return ARB4
		}
		return ARB5
	case same(4, 5) && same(6, 7):
		return ARB6
	case same(4, 7):
		return ARB7
	default:
		return ARB8
	}
}

// CalcPlanes recomputes all 6 face planes from the current vertices,
// using the face-vertex table for typ (rt_arb_calc_planes).
func (a *ARB) CalcPlanes(typ Type) error {
	faces := facesFor(typ)
	for i, f := range faces {
		if f[0] < 0 {
			continue
		}
		pl, err := plane.FromPoints(a.Pts[f[0]], a.Pts[f[1]], a.Pts[f[2]], a.Tol)
		if err != nil {
			return primitive.Wrap(primitive.GeometryRejected, err, "face %d is degenerate", i+1)
		}
		a.Planes[i] = pl
	}
	return nil
}

// CalcPoints recomputes every vertex as the intersection of its three
// incident face planes (rt_arb_calc_points), used after a face move
// or rotation changes a plane equation directly.
func (a *ARB) CalcPoints(typ Type) error {
	incidence := vertexPlanesFor(typ)
	for i, tri := range incidence {
		if tri[0] < 0 {
			continue
		}
		p, err := plane.Isect3(a.Planes[tri[0]], a.Planes[tri[1]], a.Planes[tri[2]], a.Tol)
		if err != nil {
			return primitive.Wrap(primitive.GeometryRejected, err, "vertex %d is no longer well defined", i+1)
		}
		a.Pts[i] = p
	}
	return carryAlong(a, typ)
}

// carryAlong copies the canonical vertex into every slot that Type
// declares redundant, the "carry along any like points" step at the
// end of arb_edit.
func carryAlong(a *ARB, typ Type) error {
	switch typ {
	case ARB8:
	case ARB7:
		a.Pts[7] = a.Pts[4]
	case ARB6:
		a.Pts[5] = a.Pts[4]
		a.Pts[7] = a.Pts[6]
	case ARB5:
		for i := 5; i < 8; i++ {
			a.Pts[i] = a.Pts[4]
		}
	case ARB4:
		a.Pts[3] = a.Pts[0]
		for i := 5; i < 8; i++ {
			a.Pts[i] = a.Pts[4]
		}
	default:
		return primitive.Newf(primitive.InternalInvariant, "unknown ARB type %d", typ)
	}
	return nil
}
