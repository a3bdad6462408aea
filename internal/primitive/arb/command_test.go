package arb

import (
	"math"
	"testing"

	"github.com/csgedit/csgedit/internal/editflag"
	"github.com/csgedit/csgedit/internal/geom/vecmat"
	"github.com/csgedit/csgedit/internal/session"
)

func newCommandSess(t *testing.T) (*session.Session, *ARB, *EditState) {
	t.Helper()
	a, err := New(cubePts(), vecmat.DefaultTol)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	sess := session.New(a, editflag.KindARB, nil, nil)
	st := NewState(a)
	sess.SubState = st
	return sess, a, st
}

func TestSetFaceEqnRejectsWithoutSelectedFace(t *testing.T) {
	sess, _, st := newCommandSess(t)
	st.SelectedFace = -1
	if err := SetFaceEqn(sess, 0, 0, 1); err == nil {
		t.Fatal("expected rejection with no face selected")
	}
}

func TestSetFaceEqnRejectsZeroNormal(t *testing.T) {
	sess, _, st := newCommandSess(t)
	st.SelectedFace = 0
	st.FixedVertex = 0
	if err := SetFaceEqn(sess, 0, 0, 0); err == nil {
		t.Fatal("expected rejection of a zero normal")
	}
}

func TestSetFaceEqnAnchorsThroughFixedVertex(t *testing.T) {
	sess, a, st := newCommandSess(t)
	st.SelectedFace = 0
	st.FixedVertex = 0
	if err := SetFaceEqn(sess, 0, 0, 1); err != nil {
		t.Fatalf("SetFaceEqn: %v", err)
	}
	pl := a.Planes[0]
	if pl.N != (vecmat.Vec3{Z: 1}) {
		t.Errorf("plane normal = %+v, want {0 0 1}", pl.N)
	}
	anchor := a.Pts[0]
	if math.Abs(pl.D-vecmat.Dot(pl.N, anchor)) > 1e-9 {
		t.Errorf("plane does not pass through fixed vertex %+v", anchor)
	}
}

func TestSetEdgeDirRejectsZeroVector(t *testing.T) {
	sess, _, _ := newCommandSess(t)
	if err := SetEdgeDir(sess, 0, 0, 0); err == nil {
		t.Fatal("expected rejection of a zero direction")
	}
}

func TestSetEdgeDirArmsOverrideConsumedByMoveEdge(t *testing.T) {
	sess, a, st := newCommandSess(t)
	st.EdgePt1, st.EdgePt2 = 4, 5 // top face edge, naturally along +X

	if err := SetEdgeDir(sess, 1, 0, 0.5); err != nil {
		t.Fatalf("SetEdgeDir: %v", err)
	}
	if st.EdgeDirOverride == nil {
		t.Fatal("expected EdgeDirOverride to be armed")
	}

	sess.EditFlag = editflag.Flag{Kind: editflag.KindARB, Op: editflag.ARBEdge}
	sess.SetParams(0, 0, 0.5)
	if err := Apply(sess); err != nil {
		t.Fatalf("Apply move edge: %v", err)
	}
	if st.EdgeDirOverride != nil {
		t.Error("EdgeDirOverride should be cleared after being consumed")
	}
	if !assertPlanarFacesNoFatal(a, st.Type) {
		t.Error("faces should remain planar after an overridden edge move")
	}
}

func TestSetEdgeRotTiltArmsOverride(t *testing.T) {
	sess, _, st := newCommandSess(t)
	if err := SetEdgeRotTilt(sess, 90, 0); err != nil {
		t.Fatalf("SetEdgeRotTilt: %v", err)
	}
	if st.EdgeDirOverride == nil {
		t.Fatal("expected EdgeDirOverride to be armed")
	}
	want := vecmat.Vec3{X: 0, Y: 1, Z: 0}
	got := *st.EdgeDirOverride
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 || math.Abs(got.Z-want.Z) > 1e-9 {
		t.Errorf("override direction = %+v, want %+v", got, want)
	}
}

func assertPlanarFacesNoFatal(a *ARB, typ Type) bool {
	for i := 0; i < 6; i++ {
		pts := facePoints(typ, i)
		if len(pts) < 4 {
			continue
		}
		if !vecmat.Coplanar(a.Pts[pts[0]], a.Pts[pts[1]], a.Pts[pts[2]], a.Pts[pts[3]], a.Tol) {
			return false
		}
	}
	return true
}
