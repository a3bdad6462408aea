package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/csgedit/csgedit/internal/primitive/arb"
	"github.com/csgedit/csgedit/internal/session"
)

// Interpreter runs the §6.3 command surface against one bound ARB
// edit session. A fresh Interpreter should be created per session,
// matching the teacher's one-LState-per-plugin-instance lifetime
// (internal/plugin/lua/state.go's State wraps exactly one *lua.LState).
type Interpreter struct {
	L    *lua.LState
	sess *session.Session
	form *arb.ARB
}

// New creates an Interpreter bound to sess, whose Form must be an
// *arb.ARB: every command this surface exposes (f_eqn, edgedir, rot,
// extrude, permute, mirror_face_axis) is an ARB sub-operation (spec
// §6.3). Binding to a non-ARB session returns an error and no
// Interpreter.
func New(sess *session.Session) (*Interpreter, error) {
	form, ok := sess.Form.(*arb.ARB)
	if !ok {
		return nil, fmt.Errorf("script: command surface requires an ARB session, got %T", sess.Form)
	}
	it := &Interpreter{L: lua.NewState(), sess: sess, form: form}
	it.bind()
	return it, nil
}

// Close releases the underlying Lua state.
func (it *Interpreter) Close() { it.L.Close() }

// Run executes a chunk of Lua source, typically a single command line
// like `extrude(1234, 0.5)` or `f_eqn(0, 0, 1)`.
func (it *Interpreter) Run(src string) error {
	if err := it.L.DoString(src); err != nil {
		it.sess.Logf("script error: %v", err)
		it.sess.FlushLog()
		return err
	}
	return nil
}

func (it *Interpreter) bind() {
	it.L.SetGlobal("f_eqn", it.L.NewFunction(it.fEqn))
	it.L.SetGlobal("edgedir", it.L.NewFunction(it.edgedir))
	it.L.SetGlobal("rot", it.L.NewFunction(it.rot))
	it.L.SetGlobal("extrude", it.L.NewFunction(it.extrude))
	it.L.SetGlobal("permute", it.L.NewFunction(it.permute))
	it.L.SetGlobal("mirror_face_axis", it.L.NewFunction(it.mirrorFaceAxis))
}

func argErr(L *lua.LState, name string, want int) int {
	L.RaiseError("%s: expected %d arguments", name, want)
	return 0
}

func checkFloat(L *lua.LState, i int) float64 {
	return float64(L.CheckNumber(i))
}

// fEqn implements `f_eqn A B C` (spec §6.3).
func (it *Interpreter) fEqn(L *lua.LState) int {
	if L.GetTop() != 3 {
		return argErr(L, "f_eqn", 3)
	}
	a, b, c := checkFloat(L, 1), checkFloat(L, 2), checkFloat(L, 3)
	if err := arb.SetFaceEqn(it.sess, a, b, c); err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	return 0
}

// edgedir implements `edgedir dx dy dz` (spec §6.3).
func (it *Interpreter) edgedir(L *lua.LState) int {
	if L.GetTop() != 3 {
		return argErr(L, "edgedir", 3)
	}
	dx, dy, dz := checkFloat(L, 1), checkFloat(L, 2), checkFloat(L, 3)
	if err := arb.SetEdgeDir(it.sess, dx, dy, dz); err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	return 0
}

// rot implements `edgedir rot fb` (the rot/tilt-pair variant of
// edgedir, spec §6.3/§4.2).
func (it *Interpreter) rot(L *lua.LState) int {
	if L.GetTop() != 2 {
		return argErr(L, "rot", 2)
	}
	rotDeg, fbDeg := checkFloat(L, 1), checkFloat(L, 2)
	if err := arb.SetEdgeRotTilt(it.sess, rotDeg, fbDeg); err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	return 0
}

// extrude implements `extrude(face, dist)` (spec §4.2/§6.3).
func (it *Interpreter) extrude(L *lua.LState) int {
	if L.GetTop() != 2 {
		return argErr(L, "extrude", 2)
	}
	face := int(L.CheckNumber(1))
	dist := checkFloat(L, 2)
	typ := it.form.Classify()
	newTyp, err := it.form.Extrude(typ, face, dist)
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	_ = newTyp
	it.sess.NotifyReplot()
	return 0
}

// permute implements `permute(encoded_vertex_order)` (spec §4.2/§6.3).
func (it *Interpreter) permute(L *lua.LState) int {
	if L.GetTop() != 1 {
		return argErr(L, "permute", 1)
	}
	encoded := L.CheckString(1)
	typ := it.form.Classify()
	if err := it.form.Permute(typ, encoded); err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	it.sess.NotifyReplot()
	return 0
}

// mirrorFaceAxis implements `mirror_face_axis(face, axis)`
// (spec §4.2/§6.3).
func (it *Interpreter) mirrorFaceAxis(L *lua.LState) int {
	if L.GetTop() != 2 {
		return argErr(L, "mirror_face_axis", 2)
	}
	face := int(L.CheckNumber(1))
	axis := L.CheckString(2)
	typ := it.form.Classify()
	if err := it.form.MirrorFaceAxis(typ, face, axis); err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	it.sess.NotifyReplot()
	return 0
}
