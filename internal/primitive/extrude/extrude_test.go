package extrude

import (
	"testing"

	"github.com/csgedit/csgedit/internal/editflag"
	"github.com/csgedit/csgedit/internal/geom/vecmat"
	"github.com/csgedit/csgedit/internal/session"
)

func newSess(e *Extrude) *session.Session {
	return session.New(e, editflag.KindExtrude, nil, nil)
}

func TestSetSketchRequiresName(t *testing.T) {
	e := &Extrude{H: vecmat.Vec3{Z: 1}}
	sess := newSess(e)
	sess.EditFlag = editflag.Flag{Kind: editflag.KindExtrude, Op: editflag.ExtrSketch}
	if err := Apply(sess, e, ""); err == nil {
		t.Fatal("expected rejection of an empty sketch name")
	}
	if err := Apply(sess, e, "outline"); err != nil {
		t.Fatalf("setSketch: %v", err)
	}
	if e.Sketch != "outline" {
		t.Errorf("sketch = %q, want outline", e.Sketch)
	}
}

func TestMoveHSetsVectorFromTarget(t *testing.T) {
	e := &Extrude{V: vecmat.Vec3{X: 1, Y: 1, Z: 1}, H: vecmat.Vec3{Z: 1}}
	sess := newSess(e)
	sess.EditFlag = editflag.Flag{Kind: editflag.KindExtrude, Op: editflag.ExtrMoveH}
	sess.SetParams(1, 1, 5) // V+H target; V=(1,1,1) so H should become (0,0,4)
	if err := Apply(sess, e, ""); err != nil {
		t.Fatalf("moveH: %v", err)
	}
	if got := e.H; got != (vecmat.Vec3{X: 0, Y: 0, Z: 4}) {
		t.Errorf("H = %+v, want {0 0 4}", got)
	}
}

func TestMoveHResetsToPlusZOnZeroResult(t *testing.T) {
	e := &Extrude{V: vecmat.Vec3{X: 1, Y: 2, Z: 3}, H: vecmat.Vec3{Z: 5}}
	sess := newSess(e)
	sess.EditFlag = editflag.Flag{Kind: editflag.KindExtrude, Op: editflag.ExtrMoveH}
	sess.SetParams(1, 2, 3) // same as V, so H would collapse to zero
	if err := Apply(sess, e, ""); err == nil {
		t.Fatal("expected rejection of a zero-length H")
	}
	if got := e.H; got != (vecmat.Vec3{Z: 1}) {
		t.Errorf("H should reset to +Z, got %+v", got)
	}
}

func TestScaleHMultipliesByFactor(t *testing.T) {
	e := &Extrude{H: vecmat.Vec3{Z: 2}}
	sess := newSess(e)
	sess.EMat = vecmat.Identity()
	sess.EditFlag = editflag.Flag{Kind: editflag.KindExtrude, Op: editflag.ExtrScaleH}
	sess.SetParams(3)
	if err := Apply(sess, e, ""); err != nil {
		t.Fatalf("scaleH: %v", err)
	}
	if got := e.H; got != (vecmat.Vec3{Z: 6}) {
		t.Errorf("H = %+v, want {0 0 6}", got)
	}
}

func TestScaleHRejectsNonPositiveFactor(t *testing.T) {
	e := &Extrude{H: vecmat.Vec3{Z: 2}}
	sess := newSess(e)
	sess.EMat = vecmat.Identity()
	sess.EditFlag = editflag.Flag{Kind: editflag.KindExtrude, Op: editflag.ExtrScaleH}
	sess.SetParams(-1)
	if err := Apply(sess, e, ""); err == nil {
		t.Fatal("expected rejection of a non-positive scale factor")
	}
}

func TestRotHThenInverseReturnsToOriginal(t *testing.T) {
	e := &Extrude{H: vecmat.Vec3{Z: 1}}
	sess := newSess(e)
	sess.EMat, sess.EInvMat = vecmat.Identity(), vecmat.Identity()
	sess.AccRotSol = vecmat.Identity()
	original := e.H

	sess.EditFlag = editflag.Flag{Kind: editflag.KindExtrude, Op: editflag.ExtrRotH}
	sess.SetParams(0, 0, 90)
	if err := Apply(sess, e, ""); err != nil {
		t.Fatalf("rotH 90: %v", err)
	}
	sess.SetParams(0, 0, 0)
	if err := Apply(sess, e, ""); err != nil {
		t.Fatalf("rotH back to 0: %v", err)
	}
	if vecmat.Magnitude(vecmat.Sub(e.H, original)) > 1e-9 {
		t.Errorf("H after rotate+unrotate = %+v, want %+v", e.H, original)
	}
}

func TestApplyMatrixTransformsVAndH(t *testing.T) {
	e := &Extrude{V: vecmat.Vec3{X: 1}, H: vecmat.Vec3{Z: 1}}
	m := vecmat.Translation(vecmat.Vec3{X: 10})
	if err := e.ApplyMatrix(m); err != nil {
		t.Fatalf("ApplyMatrix: %v", err)
	}
	if got := e.V; got != (vecmat.Vec3{X: 11}) {
		t.Errorf("V = %+v, want {11 0 0}", got)
	}
	if got := e.H; got != (vecmat.Vec3{Z: 1}) {
		t.Errorf("H (a vector) should be unaffected by translation, got %+v", got)
	}
}
