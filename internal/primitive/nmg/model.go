// Package nmg implements the non-manifold-geometry boundary
// representation editor (spec §4.3), grounded in BRL-CAD's ednmg.c.
// The original's pointer-rich radial-edge structures (vertex,
// vertexuse, edgeuse, loopuse, faceuse, shell, all doubly linked and
// cross-referenced by raw pointers) are replaced here by an arena of
// typed nodes addressed by integer index, the idiomatic Go rendering
// of the same topology: every "pointer" field becomes an index into
// the owning Model's slice, and BU_LIST_PNEXT_CIRC/PPREV_CIRC become
// plain slice-index arithmetic.
package nmg

import (
	"github.com/csgedit/csgedit/internal/geom/plane"
	"github.com/csgedit/csgedit/internal/geom/vecmat"
)

// VertexID, EdgeUseID, LoopUseID, FaceUseID and ShellID index into
// Model's arenas. NilID marks an absent reference (NULL in the
// original).
type (
	VertexID  int
	EdgeUseID int
	LoopUseID int
	FaceUseID int
	ShellID   int
)

// NilID is the zero-value sentinel for every ID type above (the
// original's NULL pointer).
const NilID = -1

// Vertex is a single point in model space (struct vertex + vertex_g).
type Vertex struct {
	Pos vecmat.Vec3
}

// EdgeUse is one directed use of an edge (struct edgeuse, simplified:
// vertexuse/edge are folded into Vertex/Mate since this kernel doesn't
// need independent use-counting beyond what editing requires).
type EdgeUse struct {
	// Vertex is this use's starting vertex; the ending vertex is
	// Mate's Vertex.
	Vertex VertexID
	// Mate is the opposite-direction use of the same physical edge.
	Mate EdgeUseID
	// Radial is the next edgeuse radially around the same physical
	// edge, on the neighboring face (eumate_p->radial_p). A lone wire
	// edge's radial is its own mate, the standard NMG fact for an edge
	// used by only one face (or no face at all).
	Radial EdgeUseID
	// Next/Prev link this use into its owning loop's circular list
	// (BU_LIST_PNEXT_CIRC/PPREV_CIRC over down_hd).
	Next, Prev EdgeUseID
	// Loop is the owning loopuse, or NilID for a bare shell wire edge.
	Loop LoopUseID
}

// LoopUse is an ordered, circular chain of edgeuses bounding one
// face loop or standing alone as a wire loop (struct loopuse).
type LoopUse struct {
	Shell ShellID
	Face  FaceUseID // NilID for a wire loop
	First EdgeUseID
	NEdge int
}

// FaceUse is a planar face bounded by one or more loops (struct
// faceuse); this kernel only ever builds single-loop faces.
type FaceUse struct {
	Shell ShellID
	Loop  LoopUseID
	Plane plane.Plane
}

// Shell is a maximal connected component of faces, wire loops and
// wire edges (struct shell).
type Shell struct {
	FaceUses  []FaceUseID
	WireLoops []LoopUseID
	WireEdges []EdgeUseID
}

// Model is the whole boundary representation: every other type
// indexes into one of these arenas (struct model/nmgregion collapsed
// to a single shell list, since this editor works one shell at a
// time).
type Model struct {
	Vertices []Vertex
	EdgeUses []EdgeUse
	LoopUses []LoopUse
	FaceUses []FaceUse
	Shells   []Shell
}

// NewModel returns an empty arena.
func NewModel() *Model {
	return &Model{}
}

// addVertex appends a vertex and returns its ID.
func (m *Model) addVertex(pos vecmat.Vec3) VertexID {
	m.Vertices = append(m.Vertices, Vertex{Pos: pos})
	return VertexID(len(m.Vertices) - 1)
}

// addEdgeUsePair appends the two mated edgeuses running between from
// and to, wiring their Mate fields, and returns the forward use's ID
// (nmg_me, the basic "make edge" primitive).
func (m *Model) addEdgeUsePair(from, to VertexID) EdgeUseID {
	fwdID := EdgeUseID(len(m.EdgeUses))
	revID := fwdID + 1
	m.EdgeUses = append(m.EdgeUses,
		EdgeUse{Vertex: from, Mate: revID, Radial: revID, Loop: LoopUseID(NilID)},
		EdgeUse{Vertex: to, Mate: fwdID, Radial: fwdID, Loop: LoopUseID(NilID)},
	)
	return fwdID
}

// Vert returns the vertex an edgeuse starts at.
func (m *Model) Vert(eu EdgeUseID) Vertex {
	return m.Vertices[m.EdgeUses[eu].Vertex]
}

// EndVert returns the vertex an edgeuse ends at (its mate's start).
func (m *Model) EndVert(eu EdgeUseID) Vertex {
	return m.Vert(m.EdgeUses[eu].Mate)
}

// Next returns the next edgeuse in eu's loop (BU_LIST_PNEXT_CIRC).
func (m *Model) Next(eu EdgeUseID) EdgeUseID {
	return m.EdgeUses[eu].Next
}

// Prev returns the previous edgeuse in eu's loop (BU_LIST_PPREV_CIRC).
func (m *Model) Prev(eu EdgeUseID) EdgeUseID {
	return m.EdgeUses[eu].Prev
}

// RadialMate returns eu's mate's radial partner
// (n->es_eu = n->es_eu->eumate_p->radial_p), the edgeuse on the
// adjacent face, or eu itself when the edge has no other use (a lone
// wire edge's radial is its mate).
func (m *Model) RadialMate(eu EdgeUseID) EdgeUseID {
	mate := m.EdgeUses[eu].Mate
	return m.EdgeUses[mate].Radial
}

// NewWireLoop builds a shell containing a single closed wire loop
// through pts in order, appended to the model, and returns its
// shell and loopuse IDs. Mirrors the sketch-import shape ednmg.c's
// LEXTRU path expects to find: "exactly one wire loop with positive
// area."
func (m *Model) NewWireLoop(pts []vecmat.Vec3) (ShellID, LoopUseID) {
	n := len(pts)
	vids := make([]VertexID, n)
	for i, p := range pts {
		vids[i] = m.addVertex(p)
	}

	shID := ShellID(len(m.Shells))
	m.Shells = append(m.Shells, Shell{})

	luID := LoopUseID(len(m.LoopUses))
	m.LoopUses = append(m.LoopUses, LoopUse{Shell: shID, Face: FaceUseID(NilID), NEdge: n})

	first := EdgeUseID(NilID)
	var prev EdgeUseID
	for i := 0; i < n; i++ {
		from := vids[i]
		to := vids[(i+1)%n]
		eu := m.addEdgeUsePair(from, to)
		m.EdgeUses[eu].Loop = luID
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

	m.Shells[shID].WireLoops = append(m.Shells[shID].WireLoops, luID)
	return shID, luID
}

// LoopPoints returns lu's vertex positions in loop order.
func (m *Model) LoopPoints(lu LoopUseID) []vecmat.Vec3 {
	l := m.LoopUses[lu]
	pts := make([]vecmat.Vec3, 0, l.NEdge)
	eu := l.First
	for i := 0; i < l.NEdge; i++ {
		pts = append(pts, m.Vert(eu).Pos)
		eu = m.Next(eu)
	}
	return pts
}

// LoopPlaneArea computes the loop's best-fit plane and signed area
// (nmg_loop_plane_area): the plane's normal by Newell's method, and
// the area as half the sum of cross products, matching the original's
// "area < 0 means a crack/degenerate loop" convention.
func (m *Model) LoopPlaneArea(lu LoopUseID) (plane.Plane, float64) {
	pts := m.LoopPoints(lu)
	n := len(pts)
	if n < 3 {
		return plane.Plane{}, -1
	}
	var normal vecmat.Vec3
	centroid := vecmat.Vec3{}
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%n]
		normal = vecmat.Add(normal, vecmat.Vec3{
			X: (a.Y - b.Y) * (a.Z + b.Z),
			Y: (a.Z - b.Z) * (a.X + b.X),
			Z: (a.X - b.X) * (a.Y + b.Y),
		})
		centroid = vecmat.Add(centroid, a)
	}
	area := vecmat.Magnitude(normal) / 2
	unit, ok := vecmat.Unitize(normal)
	if !ok {
		return plane.Plane{}, -1
	}
	centroid = vecmat.Scale(centroid, 1.0/float64(n))
	return plane.Plane{N: unit, D: vecmat.Dot(unit, centroid)}, area
}
