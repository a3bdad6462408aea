package arb

import (
	"math"

	"github.com/csgedit/csgedit/internal/callback"
	"github.com/csgedit/csgedit/internal/editflag"
	"github.com/csgedit/csgedit/internal/geom/plane"
	"github.com/csgedit/csgedit/internal/geom/vecmat"
	"github.com/csgedit/csgedit/internal/primitive"
	"github.com/csgedit/csgedit/internal/session"
)

// EditState is the ARB-specific sub-state a session.Session stores in
// its SubState field while editflag.KindARB owns the edit (the
// rt_arb8_edit fields that ride alongside struct rt_solid_edit):
// which edge/point/face is selected, and the fixed vertex anchoring
// an in-progress face rotation.
type EditState struct {
	Solid *ARB
	Type  Type

	EdgePt1, EdgePt2 int
	SelectedPoint    int
	SelectedFace     int
	FixedVertex      int

	// EdgeDirOverride, when non-nil, is a user-supplied direction for
	// the next edge move (the "change direction" variant of edgedir,
	// spec §6.3), consumed and cleared by the next MoveEdge call. A
	// nil override means "drag endpoint": the existing edge direction
	// is reused.
	EdgeDirOverride *vecmat.Vec3
}

// NewState builds the sub-state for a freshly opened ARB edit.
func NewState(form *ARB) *EditState {
	return &EditState{Solid: form, Type: form.Classify()}
}

func state(sess *session.Session) (*EditState, error) {
	st, ok := sess.SubState.(*EditState)
	if !ok || st == nil {
		return nil, primitive.Newf(primitive.InternalInvariant, "session has no ARB sub-state")
	}
	return st, nil
}

// Apply dispatches the session's current ARB sub-op (spec §4.2),
// mirroring editarb's switch over edit_flag.
func Apply(sess *session.Session) error {
	st, err := state(sess)
	if err != nil {
		return err
	}

	switch sess.EditFlag.Op {
	case editflag.ARBEdge:
		return applyMoveEdge(sess, st)
	case editflag.ARBPoint:
		return applyMovePoint(sess, st)
	case editflag.ARBMoveFace:
		return applyMoveFace(sess, st)
	case editflag.ARBSetupRotFace:
		return setupRotFace(sess, st)
	case editflag.ARBRotateFace:
		return applyRotateFace(sess, st)
	default:
		return primitive.Newf(primitive.BadArity, "unrecognized ARB sub-operation %q", sess.EditFlag.Op)
	}
}

func applyMoveEdge(sess *session.Session, st *EditState) error {
	if sess.NumParams != 3 || !sess.ParamValid {
		return primitive.Newf(primitive.BadArity, "move edge needs an X Y Z through-point")
	}
	thru := vecmat.Scale(vecmat.Vec3{X: sess.Params[0], Y: sess.Params[1], Z: sess.Params[2]}, sess.Local2Base)
	dir := vecmat.Sub(st.Solid.Pts[st.EdgePt2], st.Solid.Pts[st.EdgePt1])
	if st.EdgeDirOverride != nil {
		dir = *st.EdgeDirOverride
	}
	if err := st.Solid.MoveEdge(st.Type, st.EdgePt1, st.EdgePt2, thru, dir); err != nil {
		return err
	}
	st.EdgeDirOverride = nil
	sess.ClearParams()
	sess.NotifyReplot()
	return nil
}

func applyMovePoint(sess *session.Session, st *EditState) error {
	if sess.NumParams != 3 || !sess.ParamValid {
		return primitive.Newf(primitive.BadArity, "move point needs an X Y Z position")
	}
	newPos := vecmat.Scale(vecmat.Vec3{X: sess.Params[0], Y: sess.Params[1], Z: sess.Params[2]}, sess.Local2Base)
	if err := st.Solid.MovePoint(st.Type, st.SelectedPoint, newPos); err != nil {
		return err
	}
	sess.ClearParams()
	sess.NotifyReplot()
	return nil
}

func applyMoveFace(sess *session.Session, st *EditState) error {
	if sess.NumParams != 3 || !sess.ParamValid {
		return primitive.Newf(primitive.BadArity, "move face needs an X Y Z through-point")
	}
	newPos := vecmat.Scale(vecmat.Vec3{X: sess.Params[0], Y: sess.Params[1], Z: sess.Params[2]}, sess.Local2Base)
	if err := st.Solid.MoveFace(st.Type, st.SelectedFace, newPos); err != nil {
		return err
	}
	sess.ClearParams()
	sess.NotifyReplot()
	return nil
}

// setupRotFace asks the host which vertex stays fixed while the
// selected face rotates, then arms ARBRotateFace (ecmd_arb_setup_rotface).
func setupRotFace(sess *session.Session, st *EditState) error {
	fixv, invoked := sess.Callbacks.InvokeDuring(callback.ArbSetupRotface, nil)
	if v, ok := fixv.(int); invoked && ok {
		st.FixedVertex = v - 1
	}
	sess.EditFlag = editflag.Flag{Kind: editflag.KindARB, Op: editflag.ARBRotateFace}
	sess.Rotate, sess.Translate, sess.Scale, sess.Pick = true, false, false, false
	sess.NotifyAxesPos()
	return nil
}

// applyRotateFace rotates the selected face's plane normal through
// the fixed vertex, tracking the accumulator the same way the
// generic SROT path does (ecmd_arb_rotate_face).
func applyRotateFace(sess *session.Session, st *EditState) error {
	plIdx := st.SelectedFace
	eqp := st.Solid.Planes[plIdx].N

	if sess.ParamValid {
		invSolR, ok := vecmat.Inverse(sess.AccRotSol)
		if !ok {
			return primitive.Newf(primitive.InternalInvariant, "rotation accumulator is singular")
		}
		work := vecmat.TransformVec(invSolR, eqp)

		var newNormal vecmat.Vec3
		switch sess.NumParams {
		case 3:
			sess.ModelChanges = vecmat.AnglesDeg(sess.Params[0], sess.Params[1], sess.Params[2])
			sess.AccRotSol = sess.ModelChanges
			sess.IncrChange = vecmat.Mul(sess.ModelChanges, invSolR)

			if sess.MVContext {
				edit := vecmat.XformAboutPoint(sess.IncrChange, sess.Keypoint)
				mat := vecmat.MulChain(sess.EInvMat, edit, sess.EMat)
				sess.IncrChange = vecmat.Identity()
				newNormal = vecmat.TransformVec(mat, work)
			} else {
				newNormal = vecmat.TransformVec(sess.ModelChanges, work)
			}
		case 2:
			rot := sess.Params[0] * math.Pi / 180
			fb := sess.Params[1] * math.Pi / 180
			newNormal = vecmat.Vec3{
				X: math.Cos(fb) * math.Cos(rot),
				Y: math.Cos(fb) * math.Sin(rot),
				Z: math.Sin(fb),
			}
		default:
			return primitive.Newf(primitive.BadArity, "rotate face needs <rot fb> or <xdeg ydeg zdeg>")
		}

		st.Solid.Planes[plIdx] = anchoredPlane(newNormal, st.Solid.Pts[st.FixedVertex])
		sess.ModelChanges = vecmat.Identity()
	} else {
		work := vecmat.TransformVec(sess.IncrChange, eqp)
		st.Solid.Planes[plIdx] = anchoredPlane(work, st.Solid.Pts[st.FixedVertex])
	}

	if err := st.Solid.CalcPoints(st.Type); err != nil {
		return err
	}
	sess.ResetIncrChange()
	sess.NotifyReplot()
	return nil
}

func anchoredPlane(n, anchor vecmat.Vec3) plane.Plane {
	return plane.Plane{N: n, D: vecmat.Dot(n, anchor)}
}
