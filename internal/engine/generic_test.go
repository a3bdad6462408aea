package engine_test

import (
	"math"
	"testing"

	"github.com/csgedit/csgedit/internal/editflag"
	"github.com/csgedit/csgedit/internal/engine"
	"github.com/csgedit/csgedit/internal/geom/vecmat"
	"github.com/csgedit/csgedit/internal/session"
)

type recordingForm struct {
	kp      vecmat.Vec3
	applied []vecmat.Mat4
	fail    error
}

func (f *recordingForm) ApplyMatrix(m vecmat.Mat4) error {
	if f.fail != nil {
		return f.fail
	}
	f.applied = append(f.applied, m)
	return nil
}
func (f *recordingForm) Keypoint() vecmat.Vec3 { return f.kp }
func (f *recordingForm) TypeName() string      { return "TEST" }

func newSession(t *testing.T, form *recordingForm, op editflag.SubOp) *session.Session {
	t.Helper()
	sess := session.New(form, editflag.KindGeneric, nil, nil)
	sess.EditFlag = editflag.Flag{Op: op}
	return sess
}

func TestSScaleRejectsMultipleParams(t *testing.T) {
	form := &recordingForm{}
	sess := newSession(t, form, editflag.GenericScale)
	sess.SetParams(1, 2)

	err := engine.Apply(sess, engine.View{})
	if err == nil {
		t.Fatal("expected error for multi-parameter scale")
	}
	if len(form.applied) != 0 {
		t.Fatal("scale should not mutate the primitive on error")
	}
}

func TestSScaleRejectsNonPositive(t *testing.T) {
	form := &recordingForm{}
	sess := newSession(t, form, editflag.GenericScale)
	sess.SetParams(-2)

	if err := engine.Apply(sess, engine.View{}); err == nil {
		t.Fatal("expected error for non-positive scale")
	}
}

func TestSScaleAppliesAndResets(t *testing.T) {
	form := &recordingForm{kp: vecmat.Vec3{X: 1, Y: 1, Z: 1}}
	sess := newSession(t, form, editflag.GenericScale)
	sess.SetParams(2)

	if err := engine.Apply(sess, engine.View{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(form.applied) != 1 {
		t.Fatalf("expected one applied matrix, got %d", len(form.applied))
	}
	if sess.EsScale != 1 {
		t.Fatalf("EsScale should reset to 1 after apply, got %v", sess.EsScale)
	}
	if sess.AccScSol != 2 {
		t.Fatalf("AccScSol should accumulate to 2, got %v", sess.AccScSol)
	}
}

func TestStraBuildsTranslationToTarget(t *testing.T) {
	form := &recordingForm{kp: vecmat.Vec3{X: 0, Y: 0, Z: 0}}
	sess := newSession(t, form, editflag.GenericTranslate)
	sess.SetParams(5, 0, 0)
	sess.Local2Base = 1

	if err := engine.Apply(sess, engine.View{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(form.applied) != 1 {
		t.Fatalf("expected one applied matrix, got %d", len(form.applied))
	}
	got := form.applied[0]
	if math.Abs(got[3]-5) > 1e-9 {
		t.Fatalf("expected translation x=5 (move keypoint to target), got %v", got[3])
	}
}

func TestSRotCancelsPriorAccumulation(t *testing.T) {
	form := &recordingForm{}
	sess := newSession(t, form, editflag.GenericRotate)
	sess.AccRotSol = vecmat.AnglesDeg(0, 0, 90)
	sess.SetParams(0, 0, 0)

	if err := engine.Apply(sess, engine.View{RotateAbout: editflag.PivotModelOrigin}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.AccRotSol != vecmat.AnglesDeg(0, 0, 0) {
		t.Fatalf("expected accumulator reset to zero rotation, got %v", sess.AccRotSol)
	}
	if sess.IncrChange != vecmat.Identity() {
		t.Fatalf("IncrChange should be reset after apply")
	}
}

func TestMatrixModeScaleRejectedFromParamsEntry(t *testing.T) {
	form := &recordingForm{}
	sess := newSession(t, form, editflag.MatrixScale)

	if err := engine.Apply(sess, engine.View{}); err == nil {
		t.Fatal("expected matrix-mode scale to be rejected from parameter entry")
	}
}
