package ars

import (
	"github.com/csgedit/csgedit/internal/editflag"
	"github.com/csgedit/csgedit/internal/geom/vecmat"
	"github.com/csgedit/csgedit/internal/primitive"
	"github.com/csgedit/csgedit/internal/session"
)

func state(sess *session.Session) *EditState {
	st, _ := sess.SubState.(*EditState)
	if st == nil {
		st = &EditState{Crv: NilSel, Col: NilSel}
		sess.SubState = st
	}
	return st
}

// Apply runs the ARS sub-operation named by sess.EditFlag.Op.
// rayOrigin/rayDir locate the picking ray in model space, used only
// by ArsPick (find_ars_nearest_pnt).
func Apply(sess *session.Session, a *Ars, rayOrigin, rayDir vecmat.Vec3) error {
	st := state(sess)
	switch sess.EditFlag.Op {
	case editflag.ArsPick:
		return pick(sess, st, a, rayOrigin, rayDir)
	case editflag.ArsNextPt:
		return nextPt(sess, st, a)
	case editflag.ArsPrevPt:
		return prevPt(sess, st, a)
	case editflag.ArsNextCrv:
		return nextCrv(sess, st, a)
	case editflag.ArsPrevCrv:
		return prevCrv(sess, st, a)
	case editflag.ArsMovePt:
		return move(sess, st, a, applyPt)
	case editflag.ArsMoveCrv:
		return move(sess, st, a, applyCrv)
	case editflag.ArsMoveCol:
		return move(sess, st, a, applyCol)
	case editflag.ArsDupCrv:
		return dupCrv(sess, st, a)
	case editflag.ArsDupCol:
		return dupCol(sess, st, a)
	case editflag.ArsDelCrv:
		return delCrv(sess, st, a)
	case editflag.ArsDelCol:
		return delCol(sess, st, a)
	default:
		return primitive.Newf(primitive.BadArity, "ARS: edit flag %q is not an ARS sub-operation", sess.EditFlag.Op)
	}
}

// lineDistSq returns the squared distance from pt to the infinite
// line (origin, dir) (bg_distsq_line3_pnt3).
func lineDistSq(pt, origin, dir vecmat.Vec3) float64 {
	u, ok := vecmat.Unitize(dir)
	if !ok {
		return vecmat.Magnitude(vecmat.Sub(pt, origin)) * vecmat.Magnitude(vecmat.Sub(pt, origin))
	}
	w := vecmat.Sub(pt, origin)
	t := vecmat.Dot(w, u)
	perp := vecmat.Sub(w, vecmat.Scale(u, t))
	return vecmat.Dot(perp, perp)
}

// pick finds the grid point nearest the ray through rayOrigin/rayDir
// (find_ars_nearest_pnt/ecmd_ars_pick).
func pick(sess *session.Session, st *EditState, a *Ars, rayOrigin, rayDir vecmat.Vec3) error {
	if a.NCurves() == 0 || a.PtsPerCurve() == 0 {
		return primitive.Newf(primitive.MissingSelection, "ARS has no points to pick from")
	}
	bestCrv, bestCol := 0, 0
	bestDistSq := -1.0
	for i := range a.Curves {
		for j, p := range a.Curves[i] {
			d := lineDistSq(p, rayOrigin, rayDir)
			if bestDistSq < 0 || d < bestDistSq {
				bestDistSq = d
				bestCrv, bestCol = i, j
			}
		}
	}
	st.Crv, st.Col = bestCrv, bestCol
	st.Pt = a.Curves[bestCrv][bestCol]
	sess.Logf("Selected point #%d from curve #%d (%v)\n", st.Col, st.Crv, st.Pt)
	sess.FlushLog()
	return nil
}

func requireSelection(st *EditState, a *Ars) error {
	if st.Crv < 0 || st.Col < 0 {
		return primitive.Newf(primitive.MissingSelection, "no ARS point selected")
	}
	if st.Crv >= a.NCurves() || st.Col >= a.PtsPerCurve() {
		return primitive.Newf(primitive.InternalInvariant, "selected point is out of range of the current grid")
	}
	return nil
}

// nextPt advances the selected column, wrapping (ecmd_ars_next_pt).
func nextPt(sess *session.Session, st *EditState, a *Ars) error {
	if err := requireSelection(st, a); err != nil {
		return err
	}
	st.Col++
	if st.Col >= a.PtsPerCurve() {
		st.Col = 0
	}
	st.Pt = a.Curves[st.Crv][st.Col]
	sess.Logf("Selected point #%d from curve #%d (%v)\n", st.Col, st.Crv, st.Pt)
	sess.FlushLog()
	return nil
}

// prevPt retreats the selected column, wrapping (ecmd_ars_prev_pt).
func prevPt(sess *session.Session, st *EditState, a *Ars) error {
	if err := requireSelection(st, a); err != nil {
		return err
	}
	st.Col--
	if st.Col < 0 {
		st.Col = a.PtsPerCurve() - 1
	}
	st.Pt = a.Curves[st.Crv][st.Col]
	sess.Logf("Selected point #%d from curve #%d (%v)\n", st.Col, st.Crv, st.Pt)
	sess.FlushLog()
	return nil
}

// nextCrv advances the selected row, wrapping (ecmd_ars_next_crv).
func nextCrv(sess *session.Session, st *EditState, a *Ars) error {
	if err := requireSelection(st, a); err != nil {
		return err
	}
	st.Crv++
	if st.Crv >= a.NCurves() {
		st.Crv = 0
	}
	st.Pt = a.Curves[st.Crv][st.Col]
	sess.Logf("Selected point #%d from curve #%d (%v)\n", st.Col, st.Crv, st.Pt)
	sess.FlushLog()
	return nil
}

// prevCrv retreats the selected row, wrapping (ecmd_ars_prev_crv).
func prevCrv(sess *session.Session, st *EditState, a *Ars) error {
	if err := requireSelection(st, a); err != nil {
		return err
	}
	st.Crv--
	if st.Crv < 0 {
		st.Crv = a.NCurves() - 1
	}
	st.Pt = a.Curves[st.Crv][st.Col]
	sess.Logf("Selected point #%d from curve #%d (%v)\n", st.Col, st.Crv, st.Pt)
	sess.FlushLog()
	return nil
}

// targetPoint resolves the pending move destination from the
// keyboard-entered parameters (ecmd_ars_move_{pt,crv,col}'s e_inpara
// path; the mouse-driven e_mvalid/view-plane-projection path belongs
// to the dispatch layer's XY entry point, not this one).
func targetPoint(sess *session.Session) (vecmat.Vec3, bool, error) {
	if !sess.ParamValid || sess.NumParams == 0 {
		return vecmat.Vec3{}, false, nil
	}
	if sess.NumParams != 3 {
		return vecmat.Vec3{}, false, primitive.Newf(primitive.BadArity, "x y z coordinates required for point movement")
	}
	p := vecmat.Vec3{X: sess.Params[0] * sess.Local2Base, Y: sess.Params[1] * sess.Local2Base, Z: sess.Params[2] * sess.Local2Base}
	if sess.MVContext {
		p = vecmat.TransformPoint(sess.EInvMat, p)
	}
	return p, true, nil
}

func applyPt(a *Ars, st *EditState, diff vecmat.Vec3) {
	a.Curves[st.Crv][st.Col] = vecmat.Add(a.Curves[st.Crv][st.Col], diff)
}

func applyCrv(a *Ars, st *EditState, diff vecmat.Vec3) {
	for j := range a.Curves[st.Crv] {
		a.Curves[st.Crv][j] = vecmat.Add(a.Curves[st.Crv][j], diff)
	}
}

func applyCol(a *Ars, st *EditState, diff vecmat.Vec3) {
	for i := range a.Curves {
		a.Curves[i][st.Col] = vecmat.Add(a.Curves[i][st.Col], diff)
	}
}

// move resolves the target point and applies the resulting delta
// from the selected point via apply (shared body of
// ecmd_ars_move_{pt,crv,col}, which differ only in which points the
// delta is added to).
func move(sess *session.Session, st *EditState, a *Ars, apply func(*Ars, *EditState, vecmat.Vec3)) error {
	if err := requireSelection(st, a); err != nil {
		return err
	}
	target, ok, err := targetPoint(sess)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	diff := vecmat.Sub(target, a.Curves[st.Crv][st.Col])
	apply(a, st, diff)
	st.Pt = a.Curves[st.Crv][st.Col]
	sess.ClearParams()
	sess.NotifyReplot()
	return nil
}

// dupCrv duplicates the selected curve, inserting the copy
// immediately after it (ecmd_ars_dup_crv).
func dupCrv(sess *session.Session, st *EditState, a *Ars) error {
	if err := requireSelection(st, a); err != nil {
		return err
	}
	out := make([][]vecmat.Vec3, 0, a.NCurves()+1)
	out = append(out, a.Curves[:st.Crv+1]...)
	dup := make([]vecmat.Vec3, len(a.Curves[st.Crv]))
	copy(dup, a.Curves[st.Crv])
	out = append(out, dup)
	out = append(out, a.Curves[st.Crv+1:]...)
	a.Curves = out
	sess.NotifyReplot()
	return nil
}

// dupCol duplicates the selected column in every curve, inserting the
// copy immediately after it (ecmd_ars_dup_col).
func dupCol(sess *session.Session, st *EditState, a *Ars) error {
	if err := requireSelection(st, a); err != nil {
		return err
	}
	for i := range a.Curves {
		row := a.Curves[i]
		out := make([]vecmat.Vec3, 0, len(row)+1)
		out = append(out, row[:st.Col+1]...)
		out = append(out, row[st.Col])
		out = append(out, row[st.Col+1:]...)
		a.Curves[i] = out
	}
	sess.NotifyReplot()
	return nil
}

// delCrv removes the selected curve, refusing to delete the first or
// last one (ecmd_ars_del_crv).
func delCrv(sess *session.Session, st *EditState, a *Ars) error {
	if err := requireSelection(st, a); err != nil {
		return err
	}
	if st.Crv == 0 || st.Crv == a.NCurves()-1 {
		return primitive.Newf(primitive.GeometryRejected, "cannot delete first or last curve")
	}
	a.Curves = append(a.Curves[:st.Crv], a.Curves[st.Crv+1:]...)
	if st.Crv >= a.NCurves() {
		st.Crv = a.NCurves() - 1
	}
	sess.NotifyReplot()
	return nil
}

// delCol removes the selected column from every curve, refusing to
// delete the first or last column and refusing to shrink below two
// points per curve (ecmd_ars_del_col). The original compares the
// selected column against ncurves-1 rather than pts_per_curve-1 when
// rejecting "last column," which cannot be the intended guard (it
// would reject or admit based on the wrong grid dimension whenever
// ncurves != pts_per_curve); this reproduces the spec's stated
// "first/last column cannot be deleted" against the column count
// instead.
func delCol(sess *session.Session, st *EditState, a *Ars) error {
	if err := requireSelection(st, a); err != nil {
		return err
	}
	if st.Col == 0 || st.Col == a.PtsPerCurve()-1 {
		return primitive.Newf(primitive.GeometryRejected, "cannot delete first or last column")
	}
	if a.PtsPerCurve() < 3 {
		return primitive.Newf(primitive.GeometryRejected, "cannot create an ARS with less than two points per curve")
	}
	for i := range a.Curves {
		row := a.Curves[i]
		a.Curves[i] = append(row[:st.Col], row[st.Col+1:]...)
	}
	if st.Col >= a.PtsPerCurve() {
		st.Col = a.PtsPerCurve() - 1
	}
	sess.NotifyReplot()
	return nil
}
