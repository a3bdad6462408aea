package nmg

import (
	"github.com/csgedit/csgedit/internal/callback"
	"github.com/csgedit/csgedit/internal/editflag"
	"github.com/csgedit/csgedit/internal/geom/vecmat"
	"github.com/csgedit/csgedit/internal/primitive"
	"github.com/csgedit/csgedit/internal/session"
)

func state(sess *session.Session) *EditState {
	st, _ := sess.SubState.(*EditState)
	if st == nil {
		st = &EditState{Selected: EdgeUseID(NilID)}
		sess.SubState = st
	}
	return st
}

// Apply runs the NMG sub-operation named by sess.EditFlag.Op. rayOrigin
// and rayDir locate the picking ray in model space (supplied by the
// dispatch layer from the current view, ECMD_NMG_EPICK only); viewDir
// is the view's look direction, used to keep edge moves/splits in the
// containing loop's plane (ednmg.c's ecmd_nmg_emove/esplit).
func Apply(sess *session.Session, n *Nmg, rayOrigin, rayDir, viewDir vecmat.Vec3) error {
	st := state(sess)
	switch sess.EditFlag.Op {
	case editflag.NmgEpick:
		return pick(sess, st, n, rayOrigin, rayDir)
	case editflag.NmgForw:
		return step(sess, st, n, n.Next)
	case editflag.NmgBack:
		return step(sess, st, n, n.Prev)
	case editflag.NmgRadial:
		return step(sess, st, n, n.RadialMate)
	case editflag.NmgEmove:
		return move(sess, st, n, viewDir)
	case editflag.NmgEsplit:
		return split(sess, st, n, viewDir)
	case editflag.NmgEkill:
		return kill(sess, st, n)
	case editflag.NmgLextru:
		return lextru(sess, st, n, viewDir)
	case editflag.NmgEdebug:
		return edebug(sess, st, n)
	default:
		return primitive.Newf(primitive.BadArity, "NMG: edit flag %q is not an NMG sub-operation", sess.EditFlag.Op)
	}
}

// pick finds the edgeuse whose infinite line lies closest to the ray
// through rayOrigin/rayDir, with tolerance explicitly zero
// (closest-only, spec §4.3).
func pick(sess *session.Session, st *EditState, n *Nmg, rayOrigin, rayDir vecmat.Vec3) error {
	rd, ok := vecmat.Unitize(rayDir)
	if !ok {
		return primitive.Newf(primitive.GeometryRejected, "pick ray has no direction")
	}
	best := EdgeUseID(NilID)
	bestDist := -1.0
	seen := map[EdgeUseID]bool{}
	for eu := range n.EdgeUses {
		id := EdgeUseID(eu)
		if seen[id] || seen[n.EdgeUses[id].Mate] {
			continue
		}
		seen[id] = true
		d := lineLineDist(rayOrigin, rd, n.Vert(id).Pos, edgeDir(n.Model, id))
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = id
		}
	}
	if best == EdgeUseID(NilID) {
		return primitive.Newf(primitive.MissingSelection, "no edges to pick from")
	}
	st.Selected = best
	st.HasSelect = true
	sess.Logf("edgeuse selected = %v (%v) <-> (%v)\n", best, n.Vert(best).Pos, n.EndVert(best).Pos)
	sess.FlushLog()
	return nil
}

// edebug asks the host to draw a diagnostic overlay for the currently
// selected edgeuse (ECMD_NMG_EDEBUG, spec §6.1), requiring a prior
// pick the same way FORW/BACK/RADIAL do.
func edebug(sess *session.Session, st *EditState, n *Nmg) error {
	if !st.HasSelect {
		return primitive.Newf(primitive.MissingSelection, "no edge selected yet")
	}
	sess.Callbacks.InvokeDuring(callback.NmgEdebug, st.Selected)
	return nil
}

func edgeDir(m *Model, eu EdgeUseID) vecmat.Vec3 {
	return vecmat.Sub(m.EndVert(eu).Pos, m.Vert(eu).Pos)
}

// lineLineDist returns the distance between the infinite lines
// (p1,d1) and (p2,d2), handling the parallel case by perpendicular
// point-to-line distance.
func lineLineDist(p1, d1, p2, d2 vecmat.Vec3) float64 {
	u, ok1 := vecmat.Unitize(d1)
	v, ok2 := vecmat.Unitize(d2)
	if !ok1 || !ok2 {
		return vecmat.Magnitude(vecmat.Sub(p2, p1))
	}
	cr := vecmat.Cross(u, v)
	w0 := vecmat.Sub(p1, p2)
	mag := vecmat.Magnitude(cr)
	if mag < 1e-12 {
		perp := vecmat.Sub(w0, vecmat.Scale(u, vecmat.Dot(w0, u)))
		return vecmat.Magnitude(perp)
	}
	d := vecmat.Dot(cr, w0) / mag
	if d < 0 {
		d = -d
	}
	return d
}

// step moves the selected edgeuse via next, requiring a prior pick
// (ECMD_NMG_FORW/BACK/RADIAL all share this "no edge selected" guard).
func step(sess *session.Session, st *EditState, n *Nmg, next func(EdgeUseID) EdgeUseID) error {
	if !st.HasSelect {
		return primitive.Newf(primitive.MissingSelection, "no edge selected yet")
	}
	st.Selected = next(st.Selected)
	sess.Logf("edgeuse selected = %v (%v) <-> (%v)\n", st.Selected, n.Vert(st.Selected).Pos, n.EndVert(st.Selected).Pos)
	sess.FlushLog()
	return nil
}

// targetPoint resolves the pending move/split destination from the
// keyboard-entered parameters (ecmd_nmg_emove/esplit's e_inpara path;
// the mouse-driven e_mvalid path is wired by the dispatch layer's own
// XY entry point, not this parameter-mode one).
func targetPoint(sess *session.Session) (vecmat.Vec3, bool, error) {
	if !sess.ParamValid || sess.NumParams == 0 {
		return vecmat.Vec3{}, false, nil
	}
	if sess.NumParams != 3 {
		return vecmat.Vec3{}, false, primitive.Newf(primitive.BadArity, "x y z coordinates required")
	}
	p := vecmat.Vec3{X: sess.Params[0] * sess.Local2Base, Y: sess.Params[1] * sess.Local2Base, Z: sess.Params[2] * sess.Local2Base}
	if sess.MVContext {
		p = vecmat.TransformPoint(sess.EInvMat, p)
	}
	return p, true, nil
}

// projectIntoLoopPlane keeps an edge move/split inside its containing
// wire loop's plane, projecting along viewDir (ecmd_nmg_emove's
// view-ray intersection with the loop's plane).
func projectIntoLoopPlane(n *Nmg, eu EdgeUseID, pt, viewDir vecmat.Vec3, tol vecmat.Tol) (vecmat.Vec3, error) {
	lu := n.EdgeUses[eu].Loop
	if lu == LoopUseID(NilID) {
		return pt, nil
	}
	pl, area := n.LoopPlaneArea(lu)
	if area <= 0 {
		return pt, nil
	}
	denom := vecmat.Dot(pl.N, viewDir)
	if denom > -tol.Perp && denom < tol.Perp {
		return vecmat.Vec3{}, primitive.Newf(primitive.GeometryRejected, "cannot place new point in plane of loop")
	}
	t := (pl.D - vecmat.Dot(pl.N, pt)) / denom
	return vecmat.Add(pt, vecmat.Scale(viewDir, t)), nil
}

// move slides the selected edge's infinite line so it passes through
// the resolved target point, preserving direction, projected into the
// containing loop's plane first if it is a wire loop
// (ecmd_nmg_emove).
func move(sess *session.Session, st *EditState, n *Nmg, viewDir vecmat.Vec3) error {
	if !st.HasSelect {
		return primitive.Newf(primitive.MissingSelection, "no edge selected yet")
	}
	pt, ok, err := targetPoint(sess)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	pt, err = projectIntoLoopPlane(n, st.Selected, pt, viewDir, sess.Tol)
	if err != nil {
		return err
	}

	eu := st.Selected
	start, end := n.Vert(eu).Pos, n.EndVert(eu).Pos
	dir := vecmat.Sub(end, start)
	dirU, ok2 := vecmat.Unitize(dir)
	if !ok2 {
		return primitive.Newf(primitive.GeometryRejected, "selected edge is degenerate")
	}
	tproj := vecmat.Dot(vecmat.Sub(pt, start), dirU)
	closest := vecmat.Add(start, vecmat.Scale(dirU, tproj))
	offset := vecmat.Sub(pt, closest)

	n.Vertices[n.EdgeUses[eu].Vertex].Pos = vecmat.Add(start, offset)
	n.Vertices[n.EdgeUses[n.EdgeUses[eu].Mate].Vertex].Pos = vecmat.Add(end, offset)
	sess.ClearParams()
	sess.NotifyReplot()
	return nil
}

// split inserts a new vertex between the selected edge's endpoints at
// the resolved target point (ecmd_nmg_esplit); only valid for wire
// edges or edges in wire loops.
func split(sess *session.Session, st *EditState, n *Nmg, viewDir vecmat.Vec3) error {
	if !st.HasSelect {
		return primitive.Newf(primitive.MissingSelection, "no edge selected yet")
	}
	eu := st.Selected
	if lu := n.EdgeUses[eu].Loop; lu != LoopUseID(NilID) && n.LoopUses[lu].Face != FaceUseID(NilID) {
		return primitive.Newf(primitive.GeometryRejected, "currently, we can only split wire edges or edges in wire loops")
	}
	pt, ok, err := targetPoint(sess)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	pt, err = projectIntoLoopPlane(n, eu, pt, viewDir, sess.Tol)
	if err != nil {
		return err
	}

	lu := n.EdgeUses[eu].Loop
	newV := n.addVertex(pt)
	oldEnd := n.EdgeUses[n.EdgeUses[eu].Mate].Vertex
	newEU := n.addEdgeUsePair(newV, oldEnd)
	n.EdgeUses[n.EdgeUses[eu].Mate].Vertex = newV
	nextEU := n.EdgeUses[eu].Next
	n.EdgeUses[eu].Next = newEU
	n.EdgeUses[newEU].Prev = eu
	n.EdgeUses[newEU].Next = nextEU
	n.EdgeUses[nextEU].Prev = newEU
	n.EdgeUses[newEU].Loop = lu
	if lu != LoopUseID(NilID) {
		n.LoopUses[lu].NEdge++
	}

	sess.ClearParams()
	sess.NotifyReplot()
	return nil
}

// kill deletes the selected edge, permitted only for wire edges or
// edges in wire loops (ecmd_nmg_ekill). For a loop, the following
// vertex is moved onto the preceding one and the edge is removed;
// killing the last edge of a loop running to/from the same vertex is
// refused.
func kill(sess *session.Session, st *EditState, n *Nmg) error {
	if !st.HasSelect {
		return primitive.Newf(primitive.MissingSelection, "no edge selected yet")
	}
	eu := st.Selected
	lu := n.EdgeUses[eu].Loop
	if lu == LoopUseID(NilID) {
		// Bare wire edge: the edgeuse pair stays in the model; only the
		// selection is cleared.
		st.Selected = EdgeUseID(NilID)
		st.HasSelect = false
		sess.NotifyReplot()
		return nil
	}
	if n.LoopUses[lu].Face != FaceUseID(NilID) {
		return primitive.Newf(primitive.GeometryRejected, "currently, we can only kill wire edges or edges in wire loops")
	}

	prevEU := n.Prev(eu)
	if prevEU == eu {
		if n.EdgeUses[eu].Vertex == n.EdgeUses[n.EdgeUses[eu].Mate].Vertex {
			return primitive.Newf(primitive.GeometryRejected, "cannot delete last edge running to/from same vertex")
		}
		n.EdgeUses[n.EdgeUses[eu].Mate].Vertex = n.EdgeUses[eu].Vertex
		return nil
	}

	nextEU := n.Next(eu)
	n.EdgeUses[nextEU].Vertex = n.EdgeUses[eu].Vertex
	n.EdgeUses[prevEU].Next = nextEU
	n.EdgeUses[nextEU].Prev = prevEU
	n.LoopUses[lu].First = nextEU
	n.LoopUses[lu].NEdge--
	st.Selected = prevEU
	sess.NotifyReplot()
	return nil
}

// lextru extrudes the shell's single wire loop along the resolved
// direction parameter, rejecting a zero-area or self-crossing loop
// and a direction parallel to the loop's plane (ecmd_nmg_lextru via
// the ECMD_NMG_LEXTRU menu handler's pre-checks plus nmg_extrude_face
// equivalent, folded into Model.ExtrudeLoop).
func lextru(sess *session.Session, st *EditState, n *Nmg, viewDir vecmat.Vec3) error {
	var lu LoopUseID = LoopUseID(NilID)
	count := 0
	for _, sh := range n.Shells {
		for _, wl := range sh.WireLoops {
			lu = wl
			count++
		}
	}
	if count == 0 {
		return primitive.Newf(primitive.GeometryRejected, "no sketch (wire loop) to extrude")
	}
	if count > 1 {
		return primitive.Newf(primitive.GeometryRejected, "too many wire loops, don't know which to extrude")
	}

	if !sess.ParamValid || sess.NumParams != 3 {
		return primitive.Newf(primitive.BadArity, "x y z extrude direction required")
	}
	dir := vecmat.Vec3{X: sess.Params[0], Y: sess.Params[1], Z: sess.Params[2]}

	if err := n.CheckExtrudable(lu, dir, sess.Tol); err != nil {
		return err
	}

	shID, err := n.ExtrudeLoop(lu, dir, sess.Tol)
	if err != nil {
		return err
	}
	st.ExtrudeShell = shID
	sess.ClearParams()
	sess.NotifyReplot()
	return nil
}
