package metaball

import (
	"github.com/csgedit/csgedit/internal/editflag"
	"github.com/csgedit/csgedit/internal/geom/vecmat"
	"github.com/csgedit/csgedit/internal/primitive"
	"github.com/csgedit/csgedit/internal/session"
)

func state(sess *session.Session) *EditState {
	st, _ := sess.SubState.(*EditState)
	if st == nil {
		st = &EditState{}
		sess.SubState = st
	}
	return st
}

// Apply runs the metaball sub-operation named by sess.EditFlag.Op
// (spec §4.7), grounded in edmetaball.c's rt_solid_edit_metaball_edit.
// rayOrigin/rayDir locate the picking ray in model space, used only
// by MetaballSelect (ecmd_metaball_pt_pick).
func Apply(sess *session.Session, m *Metaball, rayOrigin, rayDir vecmat.Vec3) error {
	st := state(sess)
	switch sess.EditFlag.Op {
	case editflag.MetaballSetThreshold:
		return setThreshold(sess, m)
	case editflag.MetaballSetMethod:
		return setMethod(sess, m)
	case editflag.MetaballSelect:
		return pick(sess, st, m, rayOrigin, rayDir)
	case editflag.MetaballNextPt:
		return next(sess, st, m, +1)
	case editflag.MetaballPrevPt:
		return next(sess, st, m, -1)
	case editflag.MetaballMovePt:
		return move(sess, st, m)
	case editflag.MetaballScaleStr:
		return scaleField(sess, st, m, func(p *Point, f float64) { p.FldStr *= f })
	case editflag.MetaballScaleGoo:
		return scaleField(sess, st, m, func(p *Point, f float64) { p.Sweat *= f })
	case editflag.MetaballDelPt:
		return del(sess, st, m)
	case editflag.MetaballAddPt:
		return add(sess, st, m)
	default:
		return primitive.Newf(primitive.BadArity, "METABALL: edit flag %q is not a metaball sub-operation", sess.EditFlag.Op)
	}
}

func oneScalar(sess *session.Session) (float64, error) {
	if sess.NumParams != 1 || !sess.ParamValid {
		return 0, primitive.Newf(primitive.BadArity, "only one argument needed")
	}
	v := sess.Params[0]
	if v < 0 {
		return 0, primitive.Newf(primitive.OutOfRange, "scale factor must be non-negative")
	}
	return v, nil
}

// setThreshold sets the whole-metaball isosurface threshold
// (menu_metaball_set_threshold).
func setThreshold(sess *session.Session, m *Metaball) error {
	v, err := oneScalar(sess)
	if err != nil {
		sess.ClearParams()
		return err
	}
	m.Threshold = v
	sess.ClearParams()
	sess.NotifyReplot()
	return nil
}

// setMethod sets the blending/render method code
// (menu_metaball_set_method).
func setMethod(sess *session.Session, m *Metaball) error {
	v, err := oneScalar(sess)
	if err != nil {
		sess.ClearParams()
		return err
	}
	m.Method = v
	sess.ClearParams()
	sess.NotifyReplot()
	return nil
}

// pick selects the control point whose line-distance to the
// (rayOrigin, rayDir) ray is smallest (ecmd_metaball_pt_pick).
func pick(sess *session.Session, st *EditState, m *Metaball, rayOrigin, rayDir vecmat.Vec3) error {
	if sess.NumParams != 3 || !sess.ParamValid {
		return primitive.Newf(primitive.BadArity, "x y z coordinates required for control point selection")
	}
	target := vecmat.Scale(vecmat.Vec3{X: sess.Params[0], Y: sess.Params[1], Z: sess.Params[2]}, sess.Local2Base)
	_ = target // the original re-derives the ray through new_pt; rayOrigin/rayDir already encode it here

	if len(m.Points) == 0 {
		st.HasSelect = false
		sess.ClearParams()
		return primitive.Newf(primitive.MissingSelection, "no METABALL control point selected")
	}

	dir, ok := vecmat.Unitize(rayDir)
	if !ok {
		sess.ClearParams()
		return primitive.Newf(primitive.GeometryRejected, "pick ray has zero direction")
	}

	best := -1
	bestDist := 0.0
	for i, p := range m.Points {
		d := lineDistSq(p.Coord, rayOrigin, dir)
		if best == -1 || d < bestDist {
			best, bestDist = i, d
		}
	}
	st.Selected = best
	st.HasSelect = true
	sess.ClearParams()
	sess.NotifyAxesPos()
	return nil
}

func lineDistSq(pt, origin, unitDir vecmat.Vec3) float64 {
	w := vecmat.Sub(pt, origin)
	t := vecmat.Dot(w, unitDir)
	closest := vecmat.Add(origin, vecmat.Scale(unitDir, t))
	d := vecmat.Sub(pt, closest)
	return vecmat.Dot(d, d)
}

// next steps the selection forward (dir=+1) or backward (dir=-1)
// through the control-point list, refusing to step past either end
// (ecmd_metaball's MENU_METABALL_{NEXT,PREV}_PT handlers).
func next(sess *session.Session, st *EditState, m *Metaball, dir int) error {
	if !st.HasSelect {
		return primitive.Newf(primitive.MissingSelection, "no Metaball Point selected")
	}
	n := st.Selected + dir
	if n < 0 || n >= len(m.Points) {
		if dir > 0 {
			return primitive.Newf(primitive.OutOfRange, "current point is the last")
		}
		return primitive.Newf(primitive.OutOfRange, "current point is the first")
	}
	st.Selected = n
	sess.NotifyAxesPos()
	return nil
}

// move translates the selected point by the resolved dx,dy,dz delta
// (ecmd_metaball_pt_mov).
func move(sess *session.Session, st *EditState, m *Metaball) error {
	if !st.HasSelect {
		return primitive.Newf(primitive.MissingSelection, "must select a point to move")
	}
	if sess.NumParams != 3 || !sess.ParamValid {
		return primitive.Newf(primitive.BadArity, "must provide dx dy dz")
	}
	delta := vecmat.Scale(vecmat.Vec3{X: sess.Params[0], Y: sess.Params[1], Z: sess.Params[2]}, sess.Local2Base)
	m.Points[st.Selected].Coord = vecmat.Add(m.Points[st.Selected].Coord, delta)
	sess.ClearParams()
	sess.NotifyReplot()
	return nil
}

// scaleField multiplies the selected point's field strength or goo
// value by the pending scalar factor (menu_metaball_pt_fldstr /
// menu_metaball_pt_set_goo).
func scaleField(sess *session.Session, st *EditState, m *Metaball, apply func(*Point, float64)) error {
	if !st.HasSelect {
		return primitive.Newf(primitive.MissingSelection, "pscale: no metaball point selected")
	}
	factor, err := oneScalar(sess)
	if err != nil {
		sess.ClearParams()
		return err
	}
	if factor <= 0 {
		sess.ClearParams()
		return primitive.Newf(primitive.OutOfRange, "scale factor must be positive")
	}
	apply(&m.Points[st.Selected], factor)
	sess.ClearParams()
	sess.NotifyReplot()
	return nil
}

// del removes the selected point, moving the selection to its
// predecessor (or, failing that, its successor); deleting the last
// remaining point is permitted but leaves a warning
// (ecmd_metaball_pt_del).
func del(sess *session.Session, st *EditState, m *Metaball) error {
	if !st.HasSelect {
		return primitive.Newf(primitive.MissingSelection, "no point selected")
	}
	i := st.Selected
	m.Points = append(m.Points[:i], m.Points[i+1:]...)

	switch {
	case len(m.Points) == 0:
		st.HasSelect = false
		st.Selected = 0
		sess.Logf("WARNING: last point of this metaball has been deleted")
	case i > 0:
		st.Selected = i - 1
	default:
		st.Selected = 0
	}
	sess.FlushLog()
	sess.NotifyReplot()
	return nil
}

// add appends a new control point at the given x,y,z with default
// field strength 1.0, and selects it (ecmd_metaball_pt_add).
func add(sess *session.Session, st *EditState, m *Metaball) error {
	if sess.NumParams != 3 || !sess.ParamValid {
		return primitive.Newf(primitive.BadArity, "must provide x y z")
	}
	coord := vecmat.Scale(vecmat.Vec3{X: sess.Params[0], Y: sess.Params[1], Z: sess.Params[2]}, sess.Local2Base)
	m.Points = append(m.Points, Point{Coord: coord, FldStr: 1.0})
	st.Selected = len(m.Points) - 1
	st.HasSelect = true
	sess.ClearParams()
	sess.NotifyReplot()
	return nil
}
