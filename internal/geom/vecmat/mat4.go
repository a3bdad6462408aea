package vecmat

import "math"

// Mat4 is a row-major 4x4 homogeneous transform, element [i] at row i/4,
// column i%4. Translation lives in column 3 (indices 3, 7, 11); the
// bottom row (12-15) carries the perspective/scale divisor the way
// BRL-CAD's vmath.h macros expect, with index 15 doubling as the
// "leaf-path scale factor" referenced by the simple scalar editors.
type Mat4 [16]float64

// Identity returns the 4x4 identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation returns a matrix that translates by delta.
func Translation(delta Vec3) Mat4 {
	m := Identity()
	m[3], m[7], m[11] = delta.X, delta.Y, delta.Z
	return m
}

// TranslationNeg returns a matrix that translates by -delta (the
// MAT_DELTAS_VEC_NEG idiom used for "move so keypoint lands here").
func TranslationNeg(delta Vec3) Mat4 {
	return Translation(Scale(delta, -1))
}

// UniformScale returns a matrix that scales about the origin by s.
func UniformScale(s float64) Mat4 {
	m := Identity()
	m[0], m[5], m[10] = s, s, s
	return m
}

// AxisScale returns a matrix that scales independently along X, Y, Z.
func AxisScale(sx, sy, sz float64) Mat4 {
	m := Identity()
	m[0], m[5], m[10] = sx, sy, sz
	return m
}

// Mul returns a*b.
func Mul(a, b Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += a[i*4+k] * b[k*4+j]
			}
			out[i*4+j] = sum
		}
	}
	return out
}

// MulChain multiplies a sequence of matrices left to right.
func MulChain(ms ...Mat4) Mat4 {
	out := Identity()
	for _, m := range ms {
		out = Mul(out, m)
	}
	return out
}

// TransformPoint applies m to point p as a homogeneous column vector,
// dividing through by the bottom-row result the way MAT4X3PNT does.
func TransformPoint(m Mat4, p Vec3) Vec3 {
	w := m[12]*p.X + m[13]*p.Y + m[14]*p.Z + m[15]
	if w == 0 {
		w = 1
	}
	inv := 1 / w
	return Vec3{
		(m[0]*p.X + m[1]*p.Y + m[2]*p.Z + m[3]) * inv,
		(m[4]*p.X + m[5]*p.Y + m[6]*p.Z + m[7]) * inv,
		(m[8]*p.X + m[9]*p.Y + m[10]*p.Z + m[11]) * inv,
	}
}

// TransformVec applies the linear (non-translating) part of m to a
// direction vector, as MAT4X3VEC does.
func TransformVec(m Mat4, v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[4]*v.X + m[5]*v.Y + m[6]*v.Z,
		m[8]*v.X + m[9]*v.Y + m[10]*v.Z,
	}
}

// ScaleAboutPoint returns a matrix that scales uniformly by s about pt:
// translate(-pt), scale, translate(pt).
func ScaleAboutPoint(pt Vec3, s float64) Mat4 {
	return XformAboutPoint(UniformScale(s), pt)
}

// AxisScaleAboutPoint scales independently per axis about pt.
func AxisScaleAboutPoint(pt Vec3, sx, sy, sz float64) Mat4 {
	return XformAboutPoint(AxisScale(sx, sy, sz), pt)
}

// XformAboutPoint conjugates xform by a translation to pt: the
// bn_mat_xform_about_pnt idiom used by both rotation and matrix-mode
// scale so that edits pivot on the keypoint rather than the origin.
func XformAboutPoint(xform Mat4, pt Vec3) Mat4 {
	toOrigin := TranslationNeg(pt)
	backOut := Translation(pt)
	return MulChain(backOut, xform, toOrigin)
}

// LeafScaleFactor returns the scalar stored in element 15, the
// "leaf-path scale factor" the simple scalar editors apply before
// mutating a primitive (spec §4.9).
func (m Mat4) LeafScaleFactor() float64 {
	if m[15] == 0 {
		return 1
	}
	return m[15]
}

// Inverse returns the inverse of m via Gauss-Jordan elimination with
// partial pivoting, and false if m is singular within tolerance.
func Inverse(m Mat4) (Mat4, bool) {
	var a [4][8]float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			a[i][j] = m[i*4+j]
		}
		a[i][4+i] = 1
	}

	for col := 0; col < 4; col++ {
		pivot := col
		best := math.Abs(a[col][col])
		for r := col + 1; r < 4; r++ {
			if v := math.Abs(a[r][col]); v > best {
				best = v
				pivot = r
			}
		}
		if best < 1e-15 {
			return Identity(), false
		}
		a[col], a[pivot] = a[pivot], a[col]

		pv := a[col][col]
		for j := 0; j < 8; j++ {
			a[col][j] /= pv
		}
		for r := 0; r < 4; r++ {
			if r == col {
				continue
			}
			factor := a[r][col]
			if factor == 0 {
				continue
			}
			for j := 0; j < 8; j++ {
				a[r][j] -= factor * a[col][j]
			}
		}
	}

	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i*4+j] = a[i][4+j]
		}
	}
	return out, true
}

// IsIdentityProduct reports whether a*b is the identity within tol,
// the e_invmat*e_mat == I invariant from spec §3.5.
func IsIdentityProduct(a, b Mat4, tol float64) bool {
	prod := Mul(a, b)
	id := Identity()
	for i := range prod {
		if math.Abs(prod[i]-id[i]) > tol {
			return false
		}
	}
	return true
}

// AnglesDeg builds a rotation matrix from absolute Euler angles given
// in degrees, applied in X, then Y, then Z order (bn_mat_angles).
func AnglesDeg(xDeg, yDeg, zDeg float64) Mat4 {
	rx := rotX(xDeg * math.Pi / 180)
	ry := rotY(yDeg * math.Pi / 180)
	rz := rotZ(zDeg * math.Pi / 180)
	return MulChain(rz, ry, rx)
}

func rotX(r float64) Mat4 {
	c, s := math.Cos(r), math.Sin(r)
	m := Identity()
	m[5], m[6] = c, -s
	m[9], m[10] = s, c
	return m
}

func rotY(r float64) Mat4 {
	c, s := math.Cos(r), math.Sin(r)
	m := Identity()
	m[0], m[2] = c, s
	m[8], m[10] = -s, c
	return m
}

func rotZ(r float64) Mat4 {
	c, s := math.Cos(r), math.Sin(r)
	m := Identity()
	m[0], m[1] = c, -s
	m[4], m[5] = s, c
	return m
}
