package nmg

import (
	"github.com/csgedit/csgedit/internal/geom/plane"
	"github.com/csgedit/csgedit/internal/geom/vecmat"
	"github.com/csgedit/csgedit/internal/primitive"
)

// addFaceLoop appends a face-bound loop of the given points, wiring
// its circular edgeuse chain, and returns the faceuse ID
// (nmg_cface/nmg_cmface, simplified to a single exterior loop).
func (m *Model) addFaceLoop(sh ShellID, pts []vecmat.Vec3, pl plane.Plane) (FaceUseID, []EdgeUseID) {
	n := len(pts)
	vids := make([]VertexID, n)
	for i, p := range pts {
		vids[i] = m.addVertex(p)
	}

	fuID := FaceUseID(len(m.FaceUses))
	luID := LoopUseID(len(m.LoopUses))
	m.LoopUses = append(m.LoopUses, LoopUse{Shell: sh, Face: fuID, NEdge: n})
	m.FaceUses = append(m.FaceUses, FaceUse{Shell: sh, Loop: luID, Plane: pl})

	edges := make([]EdgeUseID, n)
	first := EdgeUseID(NilID)
	var prev EdgeUseID
	for i := 0; i < n; i++ {
		eu := m.addEdgeUsePair(vids[i], vids[(i+1)%n])
		m.EdgeUses[eu].Loop = luID
		edges[i] = eu
		if first == EdgeUseID(NilID) {
			first = eu
		} else {
			m.EdgeUses[prev].Next = eu
			m.EdgeUses[eu].Prev = prev
		}
		prev = eu
	}
	m.EdgeUses[prev].Next = first
	m.EdgeUses[first].Prev = prev
	m.LoopUses[luID].First = first

	m.Shells[sh].FaceUses = append(m.Shells[sh].FaceUses, fuID)
	return fuID, edges
}

// bondRadial marries two edgeuses as each other's radial partner
// across a shared physical edge, replacing their self-mate fallback
// (nmg_radial_join_eu, simplified to the pairwise case this
// construction always produces).
func (m *Model) bondRadial(a, b EdgeUseID) {
	m.EdgeUses[m.EdgeUses[a].Mate].Radial = b
	m.EdgeUses[m.EdgeUses[b].Mate].Radial = a
}

// ExtrudeLoop extrudes the wire loop lu along dir, producing a closed
// prismatic shell: a bottom cap, a top cap, and one quadrilateral side
// face per edge of the original loop, each side face's vertical edges
// radially bonded to its neighbors and its horizontal edges radially
// bonded to the corresponding cap edge. dir must not be parallel to
// the loop's own plane (rt_solid_edit_nmg_prim_edit LEXTRU's
// pre-checks, folded in by the caller via CheckExtrudable).
func (m *Model) ExtrudeLoop(lu LoopUseID, dir vecmat.Vec3, tol vecmat.Tol) (ShellID, error) {
	pts := m.LoopPoints(lu)
	n := len(pts)
	if n < 3 {
		return ShellID(NilID), primitive.Newf(primitive.GeometryRejected, "loop has fewer than 3 vertices")
	}

	shID := ShellID(len(m.Shells))
	m.Shells = append(m.Shells, Shell{})

	top := make([]vecmat.Vec3, n)
	for i, p := range pts {
		top[i] = vecmat.Add(p, dir)
	}

	botPts := make([]vecmat.Vec3, n)
	for i := range pts {
		botPts[i] = pts[n-1-i]
	}
	botNormal, ok := vecmat.Unitize(vecmat.Scale(dir, -1))
	if !ok {
		return ShellID(NilID), primitive.Newf(primitive.GeometryRejected, "extrude direction is degenerate")
	}
	botPlane := plane.Plane{N: botNormal, D: vecmat.Dot(botNormal, botPts[0])}
	_, botEdges := m.addFaceLoop(shID, botPts, botPlane)

	topNormal, _ := vecmat.Unitize(dir)
	topPlane := plane.Plane{N: topNormal, D: vecmat.Dot(topNormal, top[0])}
	_, topEdges := m.addFaceLoop(shID, top, topPlane)

	sideEdges := make([][4]EdgeUseID, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		quad := []vecmat.Vec3{pts[i], pts[j], top[j], top[i]}
		pl, err := plane.FromPoints(quad[0], quad[1], quad[2], tol)
		if err != nil {
			return ShellID(NilID), primitive.Wrap(primitive.GeometryRejected, err, "side face %d is degenerate", i)
		}
		_, edges := m.addFaceLoop(shID, quad, pl)
		sideEdges[i] = [4]EdgeUseID{edges[0], edges[1], edges[2], edges[3]}
	}

	for i := 0; i < n; i++ {
		// Bottom edge of side i (pts[i]->pts[i+1]) radially bonds the
		// bottom cap's edge running the opposite way
		// (botPts[n-2-i]->botPts[n-1-i]).
		k := (n - 2 - i%n + n) % n
		m.bondRadial(sideEdges[i][0], botEdges[k])

		// Top edge of side i (top[j]->top[i]) radially bonds the top
		// cap's edge running top[i]->top[j].
		m.bondRadial(sideEdges[i][2], topEdges[i])

		// Right vertical edge of side i (pts[j]->top[j]) radially
		// bonds the left vertical edge of side j
		// (top[j]->pts[j] direction, i.e. side[j]'s 4th edge).
		j := (i + 1) % n
		m.bondRadial(sideEdges[i][1], sideEdges[j][3])
	}

	return shID, nil
}

// CheckExtrudable validates the LEXTRU pre-conditions (spec §4.3):
// the extrude direction is not parallel to the loop's plane, and the
// loop does not self-intersect. Non-adjacent-edge overlap is checked
// pairwise in the loop's own plane, matching
// bg_isect_lseg3_lseg3's role in ednmg.c's ECMD_NMG_LEXTRU handler.
func (m *Model) CheckExtrudable(lu LoopUseID, dir vecmat.Vec3, tol vecmat.Tol) error {
	pl, area := m.LoopPlaneArea(lu)
	if area <= 0 {
		return primitive.Newf(primitive.GeometryRejected, "cannot extrude loop with no area")
	}
	if vecmat.IsZero(dir, tol.Dist) {
		return primitive.Newf(primitive.GeometryRejected, "extrude direction is degenerate")
	}
	unitDir, _ := vecmat.Unitize(dir)
	if d := vecmat.Dot(unitDir, pl.N); d > -tol.Perp && d < tol.Perp {
		return primitive.Newf(primitive.GeometryRejected, "extrude direction is parallel to the loop's plane")
	}

	pts := m.LoopPoints(lu)
	n := len(pts)
	for i := 0; i < n; i++ {
		a1, a2 := pts[i], pts[(i+1)%n]
		for j := i + 1; j < n; j++ {
			if j == i || (j+1)%n == i || (i+1)%n == j {
				continue
			}
			b1, b2 := pts[j], pts[(j+1)%n]
			if segmentsIntersect2D(a1, a2, b1, b2, pl, tol) {
				return primitive.Newf(primitive.GeometryRejected, "loop crosses itself, cannot extrude")
			}
		}
	}
	return nil
}

// segmentsIntersect2D tests two 3-D segments known to lie in plane pl
// for intersection, by projecting onto the plane's own 2-D basis.
func segmentsIntersect2D(a1, a2, b1, b2 vecmat.Vec3, pl plane.Plane, tol vecmat.Tol) bool {
	u := vecmat.Sub(a2, a1)
	ux, ok := vecmat.Unitize(u)
	if !ok {
		return false
	}
	v := vecmat.Cross(pl.N, ux)

	proj := func(p vecmat.Vec3) (float64, float64) {
		rel := vecmat.Sub(p, a1)
		return vecmat.Dot(rel, ux), vecmat.Dot(rel, v)
	}
	ax1, ay1 := proj(a1)
	ax2, ay2 := proj(a2)
	bx1, by1 := proj(b1)
	bx2, by2 := proj(b2)

	d1 := cross2(ax2-ax1, ay2-ay1, bx1-ax1, by1-ay1)
	d2 := cross2(ax2-ax1, ay2-ay1, bx2-ax1, by2-ay1)
	d3 := cross2(bx2-bx1, by2-by1, ax1-bx1, ay1-by1)
	d4 := cross2(bx2-bx1, by2-by1, ax2-bx1, ay2-by1)

	return ((d1 > 0) != (d2 > 0)) && ((d3 > 0) != (d4 > 0)) && !withinTol(d1, d2, d3, d4, tol.Dist)
}

func cross2(ax, ay, bx, by float64) float64 {
	return ax*by - ay*bx
}

func withinTol(vals ...float64) bool {
	for _, v := range vals {
		if v < -1e-9 || v > 1e-9 {
			return false
		}
	}
	return true
}
