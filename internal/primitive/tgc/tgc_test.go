package tgc

import (
	"testing"

	"github.com/csgedit/csgedit/internal/editflag"
	"github.com/csgedit/csgedit/internal/geom/vecmat"
	"github.com/csgedit/csgedit/internal/session"
)

func newSess(t *Tgc) *session.Session {
	return session.New(t, editflag.KindTGC, nil, nil)
}

// TestScenarioS3 exercises spec §8 S3: apply TGC_ROT_H by (90, 0, 0)
// followed by its inverse; H should return to its original value.
func TestScenarioS3(t *testing.T) {
	tgc := &Tgc{V: vecmat.Vec3{}, H: vecmat.Vec3{Z: 1}, A: vecmat.Vec3{X: 1}, B: vecmat.Vec3{Y: 1}, C: vecmat.Vec3{X: 1}, D: vecmat.Vec3{Y: 1}}
	sess := newSess(tgc)
	sess.EditFlag = editflag.Flag{Kind: editflag.KindTGC, Op: editflag.TgcRotH}
	sess.SetParams(90, 0, 0)
	if err := Apply(sess, tgc); err != nil {
		t.Fatalf("rotate H: %v", err)
	}

	sess.EditFlag = editflag.Flag{Kind: editflag.KindTGC, Op: editflag.TgcRotH}
	sess.SetParams(0, 0, 0)
	if err := Apply(sess, tgc); err != nil {
		t.Fatalf("rotate H inverse: %v", err)
	}

	want := vecmat.Vec3{Z: 1}
	if !vecmat.Equal(tgc.H, want, 1e-9) {
		t.Errorf("H after rotate+inverse = %+v, want %+v", tgc.H, want)
	}
}

func TestScaleHMovesNothingWhenVFixed(t *testing.T) {
	tgc := &Tgc{V: vecmat.Vec3{X: 1, Y: 2, Z: 3}, H: vecmat.Vec3{Z: 2}}
	sess := newSess(tgc)
	sess.EditFlag = editflag.Flag{Kind: editflag.KindTGC, Op: editflag.TgcScaleH}
	sess.SetParams(2)

	if err := Apply(sess, tgc); err != nil {
		t.Fatalf("scale H: %v", err)
	}
	if tgc.V != (vecmat.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("V should not move under plain ScaleH, got %+v", tgc.V)
	}
	if tgc.H != (vecmat.Vec3{Z: 4}) {
		t.Errorf("H = %+v, want {0 0 4}", tgc.H)
	}
}

func TestScaleHVMovesVKeepsTopFixed(t *testing.T) {
	tgc := &Tgc{V: vecmat.Vec3{Z: 0}, H: vecmat.Vec3{Z: 2}}
	top := vecmat.Add(tgc.V, tgc.H)
	sess := newSess(tgc)
	sess.EditFlag = editflag.Flag{Kind: editflag.KindTGC, Op: editflag.TgcScaleHV}
	sess.SetParams(0.5)

	if err := Apply(sess, tgc); err != nil {
		t.Fatalf("scale H_V: %v", err)
	}
	newTop := vecmat.Add(tgc.V, tgc.H)
	if !vecmat.Equal(newTop, top, 1e-9) {
		t.Errorf("top (V+H) should stay fixed, got %+v want %+v", newTop, top)
	}
	if tgc.H != (vecmat.Vec3{Z: 1}) {
		t.Errorf("H = %+v, want {0 0 1}", tgc.H)
	}
}

func TestScaleABCDMatchesMagnitudes(t *testing.T) {
	tgc := &Tgc{
		A: vecmat.Vec3{X: 1}, B: vecmat.Vec3{Y: 2},
		C: vecmat.Vec3{X: 0, Y: 0, Z: 3}, D: vecmat.Vec3{Y: 4},
	}
	sess := newSess(tgc)
	sess.EditFlag = editflag.Flag{Kind: editflag.KindTGC, Op: editflag.TgcScaleABCD}
	sess.SetParams(2) // A magnitude 1 -> 2

	if err := Apply(sess, tgc); err != nil {
		t.Fatalf("scale ABCD: %v", err)
	}
	for name, v := range map[string]vecmat.Vec3{"A": tgc.A, "B": tgc.B, "C": tgc.C, "D": tgc.D} {
		if got := vecmat.Magnitude(v); got < 1.999 || got > 2.001 {
			t.Errorf("%s magnitude = %v, want 2", name, got)
		}
	}
}

func TestMoveHFixedHoldsABCD(t *testing.T) {
	tgc := &Tgc{V: vecmat.Vec3{}, H: vecmat.Vec3{Z: 1}, A: vecmat.Vec3{X: 1}, B: vecmat.Vec3{Y: 1}}
	sess := newSess(tgc)
	sess.EditFlag = editflag.Flag{Kind: editflag.KindTGC, Op: editflag.TgcMoveHFixedAB}
	sess.MParam = vecmat.Vec3{X: 1, Z: 5}

	if err := Apply(sess, tgc); err != nil {
		t.Fatalf("move H fixed: %v", err)
	}
	if tgc.H != (vecmat.Vec3{X: 1, Z: 5}) {
		t.Errorf("H = %+v, want {1 0 5}", tgc.H)
	}
	if tgc.A != (vecmat.Vec3{X: 1}) || tgc.B != (vecmat.Vec3{Y: 1}) {
		t.Errorf("A/B should be unchanged, got A=%+v B=%+v", tgc.A, tgc.B)
	}
}

func TestMoveHRegenABPreservesMagnitudes(t *testing.T) {
	tgc := &Tgc{V: vecmat.Vec3{}, H: vecmat.Vec3{Z: 1}, A: vecmat.Vec3{X: 2}, B: vecmat.Vec3{Y: 3}}
	sess := newSess(tgc)
	sess.EditFlag = editflag.Flag{Kind: editflag.KindTGC, Op: editflag.TgcMoveHRegenAB}
	sess.MParam = vecmat.Vec3{X: 1, Z: 1}

	if err := Apply(sess, tgc); err != nil {
		t.Fatalf("move H regen AB: %v", err)
	}
	if vecmat.Magnitude(tgc.A) < 1.999 || vecmat.Magnitude(tgc.A) > 2.001 {
		t.Errorf("A magnitude should be preserved at 2, got %v", vecmat.Magnitude(tgc.A))
	}
	if vecmat.Magnitude(tgc.B) < 2.999 || vecmat.Magnitude(tgc.B) > 3.001 {
		t.Errorf("B magnitude should be preserved at 3, got %v", vecmat.Magnitude(tgc.B))
	}
	if vecmat.Dot(tgc.A, tgc.H) > 1e-9 || vecmat.Dot(tgc.B, tgc.H) > 1e-9 {
		t.Errorf("regenerated A/B should be orthogonal to new H")
	}
}

func TestScaleRejectsDegenerateVector(t *testing.T) {
	tgc := &Tgc{H: vecmat.Vec3{Z: 1}}
	sess := newSess(tgc)
	sess.EditFlag = editflag.Flag{Kind: editflag.KindTGC, Op: editflag.TgcScaleA}
	sess.SetParams(2)

	if err := Apply(sess, tgc); err == nil {
		t.Fatal("expected rejection of scaling a zero-length A")
	}
}

func TestParamsRoundTrip(t *testing.T) {
	tgc := &Tgc{
		V: vecmat.Vec3{X: 1, Y: 2, Z: 3}, H: vecmat.Vec3{Z: 4},
		A: vecmat.Vec3{X: 1}, B: vecmat.Vec3{Y: 1}, C: vecmat.Vec3{X: 2}, D: vecmat.Vec3{Y: 2},
	}
	text := tgc.WriteParams(1.0)
	got, err := ReadParams(text, 1.0)
	if err != nil {
		t.Fatalf("ReadParams: %v", err)
	}
	if got.V != tgc.V || got.H != tgc.H || got.A != tgc.A || got.B != tgc.B || got.C != tgc.C || got.D != tgc.D {
		t.Errorf("round trip mismatch: got %+v want %+v", got, tgc)
	}
}
