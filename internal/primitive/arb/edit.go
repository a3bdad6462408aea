package arb

import (
	"github.com/csgedit/csgedit/internal/geom/plane"
	"github.com/csgedit/csgedit/internal/geom/vecmat"
	"github.com/csgedit/csgedit/internal/primitive"
)

// intersectSlots returns the face indices shared by two slots'
// incident-face sets — for an edge, the faces the edge lies in.
func intersectSlots(typ Type, s1, s2 int) []int {
	f1 := facesContaining(typ, s1)
	f2 := facesContaining(typ, s2)
	var out []int
	for _, a := range f1 {
		for _, b := range f2 {
			if a == b {
				out = append(out, a)
			}
		}
	}
	return out
}

// findFace returns the face index whose canonical point set exactly
// matches pts (order-independent), or -1.
func findFace(typ Type, pts ...int) int {
	want := map[int]bool{}
	for _, p := range pts {
		want[collapse(typ, p)] = true
	}
	for i := 0; i < 6; i++ {
		got := facePoints(typ, i)
		if len(got) != len(want) {
			continue
		}
		ok := true
		for _, g := range got {
			if !want[g] {
				ok = false
				break
			}
		}
		if ok {
			return i
		}
	}
	return -1
}

// recomputePlanesTouching rebuilds every valid face plane that has
// slot among its corners, except any face listed in except.
func (a *ARB) recomputePlanesTouching(typ Type, slot int, except ...int) error {
	skip := map[int]bool{}
	for _, e := range except {
		skip[e] = true
	}
	faces := facesFor(typ)
	for i, tri := range faces {
		if tri[0] < 0 || skip[i] {
			continue
		}
		if tri[0] != slot && tri[1] != slot && tri[2] != slot {
			continue
		}
		pl, err := plane.FromPoints(a.Pts[tri[0]], a.Pts[tri[1]], a.Pts[tri[2]], a.Tol)
		if err != nil {
			return primitive.Wrap(primitive.GeometryRejected, err, "face %d would become degenerate", i+1)
		}
		a.Planes[i] = pl
	}
	return nil
}

// MoveEdge moves the edge between slots pt1 and pt2 so it passes
// through thru with direction dir, re-deriving the endpoints by
// intersecting the line with the edge's two bounding face planes,
// then pushing every affected face and vertex back into agreement
// (arb_edit's edge-move branch, mv_edge).
func (a *ARB) MoveEdge(typ Type, pt1, pt2 int, thru, dir vecmat.Vec3) error {
	if vecmat.IsZero(dir, a.Tol.Dist) {
		return primitive.Newf(primitive.GeometryRejected, "edge has zero length")
	}
	bounds := intersectSlots(typ, pt1, pt2)
	if len(bounds) != 2 {
		return primitive.Newf(primitive.InternalInvariant, "edge %d-%d is not shared by exactly two faces", pt1, pt2)
	}
	endFace := func(slot int) int {
		for _, f := range facesContaining(typ, slot) {
			if f != bounds[0] && f != bounds[1] {
				return f
			}
		}
		return -1
	}
	bp1, bp2 := endFace(pt1), endFace(pt2)
	if bp1 < 0 || bp2 < 0 {
		return primitive.Newf(primitive.InternalInvariant, "edge %d-%d has no bounding face at one end", pt1, pt2)
	}

	t1, err := plane.IsectLinePlane(thru, dir, a.Planes[bp1], a.Tol)
	if err != nil {
		return primitive.Wrap(primitive.GeometryRejected, err, "edge does not meet its bounding face")
	}
	t2, err := plane.IsectLinePlane(thru, dir, a.Planes[bp2], a.Tol)
	if err != nil {
		return primitive.Wrap(primitive.GeometryRejected, err, "edge does not meet its bounding face")
	}

	a.Pts[pt1] = vecmat.Join1(thru, t1, dir)
	a.Pts[pt2] = vecmat.Join1(thru, t2, dir)

	if err := a.recomputePlanesTouching(typ, pt1, bp1, bp2); err != nil {
		return err
	}
	if err := a.recomputePlanesTouching(typ, pt2, bp1, bp2); err != nil {
		return err
	}
	return a.CalcPoints(typ)
}

// MovePoint moves a single vertex (PTARB) to newPos, recomputing
// every face it bounds and then every vertex position.
func (a *ARB) MovePoint(typ Type, slot int, newPos vecmat.Vec3) error {
	a.Pts[slot] = newPos
	if err := a.recomputePlanesTouching(typ, slot); err != nil {
		return err
	}
	if err := a.CalcPoints(typ); err != nil {
		return err
	}
	if typ == ARB7 && slot == 4 {
		if f := findFace(typ, 4, 5, 6); f >= 0 {
			pl, err := plane.FromPoints(a.Pts[4], a.Pts[5], a.Pts[6], a.Tol)
			if err != nil {
				return primitive.Wrap(primitive.GeometryRejected, err, "ARB7 cap face is degenerate")
			}
			a.Planes[f] = pl
		}
	}
	return nil
}

// MoveFace moves face faceIdx to pass through newPos along its
// current normal, then re-solves every vertex (ecmd_arb_move_face).
func (a *ARB) MoveFace(typ Type, faceIdx int, newPos vecmat.Vec3) error {
	a.Planes[faceIdx] = a.Planes[faceIdx].Translate(newPos)
	return a.CalcPoints(typ)
}

// RotateFace reorients face faceIdx to newNormal (already unit
// length), re-anchors it through fixedVertex, and re-solves every
// vertex (ecmd_arb_rotate_face, after the session-level rotation
// bookkeeping done by the caller).
func (a *ARB) RotateFace(typ Type, faceIdx int, newNormal vecmat.Vec3, fixedVertex int) error {
	a.Planes[faceIdx] = plane.Plane{N: newNormal, D: 0}.AnchorThrough(a.Pts[fixedVertex])
	return a.CalcPoints(typ)
}

// Extrude protrudes face (encoded as a 3- or 4-digit vertex product
// the way the original's numeric face codes work, e.g. 1234 or 125)
// by dist along its outward normal. An ARB4 protruding its base
// becomes an ARB6 (ext4to6); returns the resulting Type.
func (a *ARB) Extrude(typ Type, faceProduct int, dist float64) (Type, error) {
	if typ != ARB8 && typ != ARB6 && typ != ARB4 {
		return typ, primitive.Newf(primitive.GeometryRejected, "only ARB4, ARB6 and ARB8 can be extruded")
	}

	pts, prod, err := decodeFaceDigits(typ, faceProduct)
	if err != nil {
		return typ, err
	}

	pl, err := plane.FromPoints(a.Pts[pts[0]], a.Pts[pts[1]], a.Pts[pts[2]], a.Tol)
	if err != nil {
		return typ, primitive.Wrap(primitive.GeometryRejected, err, "extrude face is degenerate")
	}
	var centroid vecmat.Vec3
	for _, p := range a.Pts {
		centroid = vecmat.Add(centroid, vecmat.Scale(p, 1.0/8))
	}
	if vecmat.Dot(pl.N, vecmat.Sub(centroid, a.Pts[pts[0]])) > 0 {
		dist = -dist // the face's plane normal points into the solid
	}
	normal := vecmat.Scale(pl.N, dist)

	switch {
	case prod == 6 || prod == 8 || prod == 12: // extrude ARB4 face 123/124/134 to make ARB6
		ext4to6(&a.Pts, pts[0], pts[1], pts[2], normal)
		typ = ARB6
	case prod == 24: // protrude 1234 (or, for ARB4, extrude face 234 to make ARB6)
		if typ == ARB6 {
			return typ, primitive.Newf(primitive.GeometryRejected, "ARB6 cannot extrude face 1234")
		}
		if typ == ARB4 {
			ext4to6(&a.Pts, pts[0], pts[1], pts[2], normal)
			typ = ARB6
			break
		}
		for i := 0; i < 4; i++ {
			a.Pts[i+4] = vecmat.Add(a.Pts[i], normal)
		}
	case prod == 1680: // protrude 5678
		for i := 0; i < 4; i++ {
			a.Pts[i] = vecmat.Add(a.Pts[i+4], normal)
		}
	case prod == 60 || prod == 10: // protrude 1256 / extrude 125
		a.Pts[3] = vecmat.Add(a.Pts[0], normal)
		a.Pts[2] = vecmat.Add(a.Pts[1], normal)
		a.Pts[7] = vecmat.Add(a.Pts[4], normal)
		a.Pts[6] = vecmat.Add(a.Pts[5], normal)
	case prod == 672 || prod == 72: // protrude 4378 / extrude 346
		a.Pts[0] = vecmat.Add(a.Pts[3], normal)
		a.Pts[1] = vecmat.Add(a.Pts[2], normal)
		a.Pts[5] = vecmat.Add(a.Pts[6], normal)
		a.Pts[4] = vecmat.Add(a.Pts[7], normal)
	case prod == 252: // protrude 2367
		a.Pts[0] = vecmat.Add(a.Pts[1], normal)
		a.Pts[3] = vecmat.Add(a.Pts[2], normal)
		a.Pts[4] = vecmat.Add(a.Pts[5], normal)
		a.Pts[7] = vecmat.Add(a.Pts[6], normal)
	case prod == 160: // protrude 1548
		a.Pts[1] = vecmat.Add(a.Pts[0], normal)
		a.Pts[5] = vecmat.Add(a.Pts[4], normal)
		a.Pts[2] = vecmat.Add(a.Pts[3], normal)
		a.Pts[6] = vecmat.Add(a.Pts[7], normal)
	default:
		return typ, primitive.Newf(primitive.GeometryRejected, "face %d cannot be extruded", faceProduct)
	}

	if err := a.CalcPlanes(typ); err != nil {
		return typ, err
	}
	return typ, nil
}

// ext4to6 converts an ARB4 to an ARB6 by extruding the triangular
// face (pt1, pt2, pt3) along normal (ext4to6).
func ext4to6(pts *[8]vecmat.Vec3, pt1, pt2, pt3 int, normal vecmat.Vec3) {
	var out [8]vecmat.Vec3
	out[0] = pts[pt1]
	out[1] = pts[pt2]
	out[4] = pts[pt3]
	out[5] = pts[pt3]
	out[2] = vecmat.Add(out[1], normal)
	out[3] = vecmat.Add(out[0], normal)
	out[6] = vecmat.Add(out[4], normal)
	out[7] = out[6]
	*pts = out
}

// decodeFaceDigits splits a face product code (1234, 125, ...) into
// its four 0-indexed point slots plus the "product" value the
// original switches the extrude/mirror case on, computed over the
// raw 1-indexed digits before the ARB4/ARB6 duplicate-slot bump the
// way arb_extrude's parsing loop does: a 3-digit code (triangular
// face) pads a synthetic "vertex 1" as its fourth digit, a 4-digit
// code is split one digit per point.
func decodeFaceDigits(typ Type, face int) (pts [4]int, prod int, err error) {
	threeDigit := (typ == ARB6 || typ == ARB4) && face < 1000
	if threeDigit {
		pts[0] = face / 100
		rest := face - pts[0]*100
		pts[1] = rest / 10
		pts[2] = rest - pts[1]*10
		pts[3] = 1
	} else {
		pts[0] = face / 1000
		rest := face - pts[0]*1000
		pts[1] = rest / 100
		rest -= pts[1] * 100
		pts[2] = rest / 10
		pts[3] = rest - pts[2]*10
	}

	prod = 1
	for i := range pts {
		prod *= pts[i]
		if typ == ARB6 && pts[i] == 6 {
			pts[i]++
		}
		if typ == ARB4 && pts[i] == 4 {
			pts[i]++
		}
		pts[i]--
		if pts[i] < 0 || pts[i] > 7 {
			return pts, prod, primitive.Newf(primitive.OutOfRange, "face code %d names a vertex out of range", face)
		}
	}
	return pts, prod, nil
}

// MirrorFaceAxis mirrors face (same product-code convention as
// Extrude) across the plane perpendicular to axis ("x", "y" or "z")
// through the origin (arb_mirror_face_axis).
func (a *ARB) MirrorFaceAxis(typ Type, faceProduct int, axis string) error {
	var k int
	switch axis {
	case "x":
		k = 0
	case "y":
		k = 1
	case "z":
		k = 2
	default:
		return primitive.Newf(primitive.BadArity, "axis must be x, y or z")
	}
	work := vecmat.Vec3{X: 1, Y: 1, Z: 1}
	switch k {
	case 0:
		work.X = -1
	case 1:
		work.Y = -1
	case 2:
		work.Z = -1
	}

	if typ != ARB8 && typ != ARB6 {
		return primitive.Newf(primitive.GeometryRejected, "mirror_face_axis only supports ARB6/ARB8")
	}
	_, prod, err := decodeFaceDigits(typ, faceProduct)
	if err != nil {
		return err
	}

	elmul := func(v vecmat.Vec3) vecmat.Vec3 {
		return vecmat.Vec3{X: v.X * work.X, Y: v.Y * work.Y, Z: v.Z * work.Z}
	}

	switch {
	case prod == 24:
		if typ == ARB6 {
			return primitive.Newf(primitive.GeometryRejected, "ARB6 has no face 1234 to mirror")
		}
		for i := 0; i < 4; i++ {
			a.Pts[i+4] = elmul(a.Pts[i])
		}
	case prod == 1680:
		for i := 0; i < 4; i++ {
			a.Pts[i] = elmul(a.Pts[i+4])
		}
	case prod == 60 || prod == 10:
		a.Pts[3] = elmul(a.Pts[0])
		a.Pts[2] = elmul(a.Pts[1])
		a.Pts[7] = elmul(a.Pts[4])
		a.Pts[6] = elmul(a.Pts[5])
	case prod == 672 || prod == 72:
		a.Pts[0] = elmul(a.Pts[3])
		a.Pts[1] = elmul(a.Pts[2])
		a.Pts[5] = elmul(a.Pts[6])
		a.Pts[4] = elmul(a.Pts[7])
	case prod == 252:
		a.Pts[0] = elmul(a.Pts[1])
		a.Pts[3] = elmul(a.Pts[2])
		a.Pts[4] = elmul(a.Pts[5])
		a.Pts[7] = elmul(a.Pts[6])
	case prod == 160:
		a.Pts[1] = elmul(a.Pts[0])
		a.Pts[5] = elmul(a.Pts[4])
		a.Pts[2] = elmul(a.Pts[3])
		a.Pts[6] = elmul(a.Pts[7])
	default:
		return primitive.Newf(primitive.GeometryRejected, "face %d cannot be mirrored", faceProduct)
	}

	return a.CalcPlanes(typ)
}
