package arb

import (
	"math"

	"github.com/csgedit/csgedit/internal/geom/vecmat"
	"github.com/csgedit/csgedit/internal/primitive"
	"github.com/csgedit/csgedit/internal/session"
)

// SetFaceEqn implements the `f_eqn A B C` command surface (spec
// §6.3): during an in-progress face rotation it sets the selected
// face's plane equation directly to (A, B, C, D=N·fixv), the same
// "anchor through the fixed vertex" rule applyRotateFace uses.
func SetFaceEqn(sess *session.Session, a, b, c float64) error {
	st, err := state(sess)
	if err != nil {
		return err
	}
	if st.SelectedFace < 0 || st.SelectedFace >= len(st.Solid.Planes) {
		return primitive.Newf(primitive.MissingSelection, "f_eqn: no face selected for rotation")
	}
	n := vecmat.Vec3{X: a, Y: b, Z: c}
	if vecmat.IsZero(n, 1e-20) {
		return primitive.Newf(primitive.OutOfRange, "f_eqn: normal must be non-zero")
	}
	st.Solid.Planes[st.SelectedFace] = anchoredPlane(n, st.Solid.Pts[st.FixedVertex])
	if err := st.Solid.CalcPoints(st.Type); err != nil {
		return err
	}
	sess.NotifyReplot()
	return nil
}

// SetEdgeDir implements the `edgedir dx dy dz` command surface: arms
// the next edge move with an explicit direction vector instead of the
// existing edge's own direction (the "change direction" variant of
// spec §4.2's edge move algorithm).
func SetEdgeDir(sess *session.Session, dx, dy, dz float64) error {
	st, err := state(sess)
	if err != nil {
		return err
	}
	dir := vecmat.Vec3{X: dx, Y: dy, Z: dz}
	if vecmat.IsZero(dir, 1e-20) {
		return primitive.Newf(primitive.OutOfRange, "edgedir: direction must be non-zero")
	}
	st.EdgeDirOverride = &dir
	return nil
}

// SetEdgeRotTilt implements the `edgedir rot fb` command surface
// variant: rot/fb are a rotation and a tilt-back angle in degrees,
// converted to a direction vector the same way applyRotateFace's
// two-scalar path does.
func SetEdgeRotTilt(sess *session.Session, rotDeg, fbDeg float64) error {
	rot := rotDeg * math.Pi / 180
	fb := fbDeg * math.Pi / 180
	dir := vecmat.Vec3{
		X: math.Cos(fb) * math.Cos(rot),
		Y: math.Cos(fb) * math.Sin(rot),
		Z: math.Sin(fb),
	}
	st, err := state(sess)
	if err != nil {
		return err
	}
	st.EdgeDirOverride = &dir
	return nil
}
