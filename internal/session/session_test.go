package session_test

import (
	"testing"

	"github.com/csgedit/csgedit/internal/callback"
	"github.com/csgedit/csgedit/internal/editflag"
	"github.com/csgedit/csgedit/internal/geom/vecmat"
	"github.com/csgedit/csgedit/internal/session"
)

type stubPrimitive struct {
	kp vecmat.Vec3
}

func (s stubPrimitive) ApplyMatrix(vecmat.Mat4) error { return nil }
func (s stubPrimitive) Keypoint() vecmat.Vec3         { return s.kp }
func (s stubPrimitive) TypeName() string              { return "STUB" }

func TestNewSessionDefaults(t *testing.T) {
	form := stubPrimitive{kp: vecmat.Vec3{X: 1, Y: 2, Z: 3}}
	sess := session.New(form, editflag.KindARB, nil, nil)

	if sess.Keypoint != form.kp {
		t.Fatalf("keypoint = %v, want %v", sess.Keypoint, form.kp)
	}
	if sess.AxesPos != form.kp {
		t.Fatalf("axes pos = %v, want %v", sess.AxesPos, form.kp)
	}
	if sess.EMat != vecmat.Identity() {
		t.Fatalf("EMat should start as identity")
	}
	if sess.AccScSol != 1 || sess.AccScObj != 1 {
		t.Fatalf("scale accumulators should start at 1")
	}
	if sess.EsScale != 1 {
		t.Fatalf("EsScale should start at 1")
	}
	if sess.ID.String() == "" {
		t.Fatalf("session should get a non-empty UUID")
	}
}

func TestSetParamsAndClear(t *testing.T) {
	sess := session.New(stubPrimitive{}, editflag.KindTGC, nil, nil)

	sess.SetParams(1.5, 2.5)
	if sess.NumParams != 2 || !sess.ParamValid {
		t.Fatalf("expected 2 valid params, got %d valid=%v", sess.NumParams, sess.ParamValid)
	}
	if sess.Params[0] != 1.5 || sess.Params[1] != 2.5 {
		t.Fatalf("unexpected param values: %v", sess.Params)
	}

	sess.ClearParams()
	if sess.NumParams != 0 || sess.ParamValid {
		t.Fatalf("expected params cleared, got %d valid=%v", sess.NumParams, sess.ParamValid)
	}
}

func TestResetIncrChange(t *testing.T) {
	sess := session.New(stubPrimitive{}, editflag.KindARS, nil, nil)
	sess.IncrChange = vecmat.Translation(vecmat.Vec3{X: 1})
	sess.ResetIncrChange()
	if sess.IncrChange != vecmat.Identity() {
		t.Fatalf("ResetIncrChange did not restore identity: %v", sess.IncrChange)
	}
}

func TestLogAndFlush(t *testing.T) {
	var captured any
	sess := session.New(stubPrimitive{}, editflag.KindNMG, nil, nil)
	sess.Callbacks.Set(callback.PrintResults, callback.During, func(arg any) any {
		captured = arg
		return nil
	})

	sess.Logf("moved edge %d", 3)
	sess.FlushLog()

	lines, ok := captured.([]string)
	if !ok || len(lines) != 1 || lines[0] != "moved edge 3" {
		t.Fatalf("unexpected flushed log: %#v", captured)
	}
}
