package vecmat

import "testing"

func TestIdentityIsNoOp(t *testing.T) {
	p := Vec3{1, 2, 3}
	got := TransformPoint(Identity(), p)
	if !Equal(got, p, 1e-9) {
		t.Fatalf("identity transform changed point: got %+v want %+v", got, p)
	}
}

func TestInverseRoundTrip(t *testing.T) {
	m := MulChain(Translation(Vec3{1, -2, 3}), AnglesDeg(10, 20, 30), UniformScale(2))
	inv, ok := Inverse(m)
	if !ok {
		t.Fatal("expected invertible matrix")
	}
	if !IsIdentityProduct(inv, m, 1e-9) {
		t.Fatalf("inv*m != identity")
	}
	p := Vec3{4, 5, 6}
	roundTrip := TransformPoint(inv, TransformPoint(m, p))
	if !Equal(roundTrip, p, 1e-6) {
		t.Fatalf("round trip failed: got %+v want %+v", roundTrip, p)
	}
}

func TestScaleAboutPointFixesPivot(t *testing.T) {
	pivot := Vec3{2, 2, 2}
	m := ScaleAboutPoint(pivot, 3)
	got := TransformPoint(m, pivot)
	if !Equal(got, pivot, 1e-9) {
		t.Fatalf("pivot moved under scale-about-point: got %+v", got)
	}
}

func TestScaleReciprocity(t *testing.T) {
	pivot := Vec3{1, 0, 0}
	p := Vec3{5, 5, 5}
	up := ScaleAboutPoint(pivot, 4)
	down := ScaleAboutPoint(pivot, 1.0/4.0)
	got := TransformPoint(down, TransformPoint(up, p))
	if !Equal(got, p, 1e-6) {
		t.Fatalf("scale by s then 1/s did not round trip: got %+v want %+v", got, p)
	}
}

func TestXformAboutPointRotation(t *testing.T) {
	pivot := Vec3{1, 1, 1}
	rot := AnglesDeg(0, 0, 90)
	m := XformAboutPoint(rot, pivot)
	got := TransformPoint(m, pivot)
	if !Equal(got, pivot, 1e-9) {
		t.Fatalf("pivot moved under rotation-about-point: got %+v", got)
	}
}
