package tgc

import (
	"math"

	"github.com/csgedit/csgedit/internal/editflag"
	"github.com/csgedit/csgedit/internal/geom/vecmat"
	"github.com/csgedit/csgedit/internal/primitive"
	"github.com/csgedit/csgedit/internal/session"
)

const smallMag = 1e-20

// Apply runs the TGC sub-operation named by sess.EditFlag.Op
// (edtgc.c's rt_solid_edit_tgc_edit / pscale switch).
func Apply(sess *session.Session, t *Tgc) error {
	switch sess.EditFlag.Op {
	case editflag.TgcScaleH:
		return scaleOneParam(sess, func(f float64) error { return t.scaleH(f) })
	case editflag.TgcScaleA:
		return scaleOneParam(sess, func(f float64) error { return t.scaleVec(&t.A, "A", f) })
	case editflag.TgcScaleB:
		return scaleOneParam(sess, func(f float64) error { return t.scaleVec(&t.B, "B", f) })
	case editflag.TgcScaleC:
		return scaleOneParam(sess, func(f float64) error { return t.scaleVec(&t.C, "C", f) })
	case editflag.TgcScaleD:
		return scaleOneParam(sess, func(f float64) error { return t.scaleVec(&t.D, "D", f) })
	case editflag.TgcScaleAB:
		return scaleOneParam(sess, func(f float64) error { return t.scalePaired(&t.A, &t.B, f) })
	case editflag.TgcScaleCD:
		return scaleOneParam(sess, func(f float64) error { return t.scalePaired(&t.C, &t.D, f) })
	case editflag.TgcScaleABCD:
		return scaleOneParam(sess, func(f float64) error { return t.scaleAllFour(f) })
	case editflag.TgcScaleHV:
		return scaleOneParam(sess, func(f float64) error { return t.scaleHMoveV(f) })
	case editflag.TgcScaleHCD:
		return scaleOneParam(sess, func(f float64) error { return t.scaleHAdjust(f, &t.C, &t.D, t.A, t.B) })
	case editflag.TgcScaleHVAB:
		return scaleOneParam(sess, func(f float64) error { return t.scaleHAdjust(f, &t.A, &t.B, t.C, t.D) })
	case editflag.TgcRotH:
		return rotAbsolute(sess, &t.H)
	case editflag.TgcRotAB:
		return rotABCD(sess, t)
	case editflag.TgcMoveHRegenAB:
		return moveHRegenAB(sess, t)
	case editflag.TgcMoveHFixedAB:
		return moveHFixed(sess, t)
	default:
		return primitive.Newf(primitive.BadArity, "TGC: edit flag %q is not a TGC sub-operation", sess.EditFlag.Op)
	}
}

// scaleOneParam requires exactly one positive scalar parameter, folds
// in the leaf-path scale factor, runs do, and clears the pending
// parameters and notifies a replot on success.
func scaleOneParam(sess *session.Session, do func(factor float64) error) error {
	if sess.NumParams != 1 || !sess.ParamValid {
		return primitive.Newf(primitive.BadArity, "TGC: this sub-operation needs exactly one scalar argument")
	}
	factor := sess.Params[0]
	if factor <= 0 {
		return primitive.Newf(primitive.OutOfRange, "TGC: scale factor must be positive")
	}
	if err := do(factor * sess.EMat.LeafScaleFactor()); err != nil {
		return err
	}
	sess.ClearParams()
	sess.NotifyReplot()
	return nil
}

// scaleH scales H in place: V is fixed, the far end (V+H) moves.
func (t *Tgc) scaleH(factor float64) error {
	if vecmat.IsZero(t.H, smallMag) {
		return primitive.Newf(primitive.GeometryRejected, "H is degenerate and cannot be scaled")
	}
	t.H = vecmat.Scale(t.H, factor)
	return nil
}

// scaleVec scales one of A, B, C, D independently in place.
func (t *Tgc) scaleVec(v *vecmat.Vec3, name string, factor float64) error {
	if vecmat.IsZero(*v, smallMag) {
		return primitive.Newf(primitive.GeometryRejected, "%s is degenerate and cannot be scaled", name)
	}
	*v = vecmat.Scale(*v, factor)
	return nil
}

// scalePaired scales lead by factor, then forces trail's magnitude to
// match lead's new magnitude while preserving trail's direction
// (ECMD_TGC_SCALE_AB / SCALE_CD).
func (t *Tgc) scalePaired(lead, trail *vecmat.Vec3, factor float64) error {
	if vecmat.IsZero(*lead, smallMag) {
		return primitive.Newf(primitive.GeometryRejected, "vector is degenerate and cannot be scaled")
	}
	newLead := vecmat.Scale(*lead, factor)
	trailMag := vecmat.Magnitude(*trail)
	if trailMag < smallMag {
		return primitive.Newf(primitive.GeometryRejected, "paired vector is degenerate and cannot be matched")
	}
	dir, _ := vecmat.Unitize(*trail)
	*lead = newLead
	*trail = vecmat.Scale(dir, vecmat.Magnitude(newLead))
	return nil
}

// scaleAllFour scales A by factor, then forces B, C and D each to A's
// new magnitude, preserving each one's own direction
// (ECMD_TGC_SCALE_ABCD).
func (t *Tgc) scaleAllFour(factor float64) error {
	if vecmat.IsZero(t.A, smallMag) {
		return primitive.Newf(primitive.GeometryRejected, "A is degenerate and cannot be scaled")
	}
	newA := vecmat.Scale(t.A, factor)
	mag := vecmat.Magnitude(newA)
	for _, v := range []*vecmat.Vec3{&t.B, &t.C, &t.D} {
		if vecmat.Magnitude(*v) < smallMag {
			return primitive.Newf(primitive.GeometryRejected, "a paired vector is degenerate and cannot be matched")
		}
		dir, _ := vecmat.Unitize(*v)
		*v = vecmat.Scale(dir, mag)
	}
	t.A = newA
	return nil
}

// scaleHMoveV scales H about the top: V moves so V+H (where C/D
// live) stays fixed (ECMD_TGC_SCALE_H_V).
func (t *Tgc) scaleHMoveV(factor float64) error {
	if vecmat.IsZero(t.H, smallMag) {
		return primitive.Newf(primitive.GeometryRejected, "H is degenerate and cannot be scaled")
	}
	top := vecmat.Add(t.V, t.H)
	newH := vecmat.Scale(t.H, factor)
	t.V = vecmat.Sub(top, newH)
	t.H = newH
	return nil
}

// scaleHAdjust scales H about the top like scaleHMoveV, and
// interpolates lead1/lead2 toward ref1/ref2 by (1 - factor); if the
// interpolated result would flip direction or vanish in either
// component, neither is changed (ECMD_TGC_SCALE_H_CD /
// ECMD_TGC_SCALE_H_V_AB).
func (t *Tgc) scaleHAdjust(factor float64, lead1, lead2 *vecmat.Vec3, ref1, ref2 vecmat.Vec3) error {
	if err := t.scaleHMoveV(factor); err != nil {
		return err
	}
	delta1 := vecmat.Scale(vecmat.Sub(ref1, *lead1), 1-factor)
	delta2 := vecmat.Scale(vecmat.Sub(ref2, *lead2), 1-factor)
	new1 := vecmat.Add(*lead1, delta1)
	new2 := vecmat.Add(*lead2, delta2)
	if vecmat.Dot(*lead1, new1) >= 0 && vecmat.Dot(*lead2, new2) >= 0 &&
		vecmat.Magnitude(new1) > smallMag && vecmat.Magnitude(new2) > smallMag {
		*lead1 = new1
		*lead2 = new2
	}
	return nil
}

// rotAbsolute applies an absolute Euler rotation to *target, free
// vectors needing no pivot point, using the same cancel-then-install
// accumulated-rotation bookkeeping as the generic editor's srot
// (ECMD_TGC_ROT_H).
func rotAbsolute(sess *session.Session, target *vecmat.Vec3) error {
	if !sess.ParamValid || sess.NumParams == 0 {
		return nil
	}
	invSolR, ok := vecmat.Inverse(sess.AccRotSol)
	if !ok {
		return primitive.Newf(primitive.InternalInvariant, "accumulated rotation is singular")
	}
	newRot := vecmat.AnglesDeg(sess.Params[0], sess.Params[1], sess.Params[2])
	incr := vecmat.Mul(newRot, invSolR)
	sess.AccRotSol = newRot

	*target = vecmat.TransformVec(incr, *target)
	sess.ResetIncrChange()
	sess.ClearParams()
	sess.NotifyReplot()
	return nil
}

// rotABCD rotates the entire (A,B,C,D) cross-section plane as one
// rigid set by the same absolute-rotation bookkeeping as rotAbsolute
// (ECMD_TGC_ROT_AB).
func rotABCD(sess *session.Session, t *Tgc) error {
	if !sess.ParamValid || sess.NumParams == 0 {
		return nil
	}
	invSolR, ok := vecmat.Inverse(sess.AccRotSol)
	if !ok {
		return primitive.Newf(primitive.InternalInvariant, "accumulated rotation is singular")
	}
	newRot := vecmat.AnglesDeg(sess.Params[0], sess.Params[1], sess.Params[2])
	incr := vecmat.Mul(newRot, invSolR)
	sess.AccRotSol = newRot

	t.A = vecmat.TransformVec(incr, t.A)
	t.B = vecmat.TransformVec(incr, t.B)
	t.C = vecmat.TransformVec(incr, t.C)
	t.D = vecmat.TransformVec(incr, t.D)
	sess.ResetIncrChange()
	sess.ClearParams()
	sess.NotifyReplot()
	return nil
}

// moveHRegenAB moves the tip of H to newTip (sess.MParam) and
// re-derives A and B orthogonal to the new H, preserving their
// magnitudes (ECMD_TGC_MV_H).
func moveHRegenAB(sess *session.Session, t *Tgc) error {
	newTip := sess.MParam
	newH := vecmat.Sub(newTip, t.V)
	if vecmat.IsZero(newH, sess.Tol.Dist) {
		return primitive.Newf(primitive.GeometryRejected, "new H is degenerate")
	}
	magA := vecmat.Magnitude(t.A)
	magB := vecmat.Magnitude(t.B)
	dirH, _ := vecmat.Unitize(newH)
	ref := vecmat.Vec3{X: 0, Y: 0, Z: 1}
	if math.Abs(vecmat.Dot(dirH, ref)) > 1-1e-9 {
		ref = vecmat.Vec3{X: 1, Y: 0, Z: 0}
	}
	newA := vecmat.Cross(ref, dirH)
	newA, ok := vecmat.Unitize(newA)
	if !ok {
		return primitive.Newf(primitive.InternalInvariant, "cannot derive an orthogonal A from new H")
	}
	newB := vecmat.Cross(dirH, newA)
	newB, ok = vecmat.Unitize(newB)
	if !ok {
		return primitive.Newf(primitive.InternalInvariant, "cannot derive an orthogonal B from new H")
	}
	t.H = newH
	t.A = vecmat.Scale(newA, magA)
	t.B = vecmat.Scale(newB, magB)
	sess.ClearParams()
	sess.NotifyReplot()
	return nil
}

// moveHFixed moves the tip of H to newTip (sess.MParam), holding
// A, B, C and D fixed (ECMD_TGC_MV_HH).
func moveHFixed(sess *session.Session, t *Tgc) error {
	newTip := sess.MParam
	newH := vecmat.Sub(newTip, t.V)
	if vecmat.IsZero(newH, sess.Tol.Dist) {
		return primitive.Newf(primitive.GeometryRejected, "new H is degenerate")
	}
	t.H = newH
	sess.ClearParams()
	sess.NotifyReplot()
	return nil
}
