package arb

import (
	"fmt"

	"github.com/csgedit/csgedit/internal/editflag"
	"github.com/csgedit/csgedit/internal/primitive"
	"github.com/csgedit/csgedit/internal/session"
)

// Edges returns the slot pairs that form a geometric edge of typ: two
// canonical vertex slots whose incident face sets share exactly two
// faces, the same "two bounding planes" test MoveEdge relies on
// (edarb.c's per-type edge tables, rederived here from facesContaining
// rather than hand-transcribed, since the combinatorics are identical
// to the ones intersectSlots already proves out for MoveEdge itself).
func Edges(typ Type) [][2]int {
	slots := canonicalSlots(typ)
	var out [][2]int
	for i := 0; i < len(slots); i++ {
		for j := i + 1; j < len(slots); j++ {
			if len(intersectSlots(typ, slots[i], slots[j])) == 2 {
				out = append(out, [2]int{slots[i], slots[j]})
			}
		}
	}
	return out
}

// Menu builds ARB's edit menu (edarb.c's arb8_edge_menu /
// arb8_face_menu / arb8_rot_menu, folded into the two-level
// MAIN_MENU/SPECIFIC_MENU structure ECMD_ARB_MAIN_MENU and
// ECMD_ARB_SPECIFIC_MENU name): the top-level menu offers "Move
// edge"/"Move point" (ARB4 has no edges; it moves one of its 4
// distinct vertices instead), "Move face" and "Rotate face"; picking
// one installs a second menu, via sess.InstallMenu, listing that
// category's items for the solid's current Classify() type. setFlag
// mirrors every other primitive's Menu(setFlag) convention for leaf
// items; st is the ARB sub-state those leaves must also populate
// (EdgePt1/EdgePt2, SelectedPoint, SelectedFace) before the matching
// sub-op can run.
func (a *ARB) Menu(sess *session.Session, st *EditState, setFlag func(editflag.SubOp)) primitive.Menu {
	typ := a.Classify()
	st.Type = typ

	edgeLabel := "Move edge"
	if typ == ARB4 {
		edgeLabel = "Move point"
	}

	installSub := func(build func() primitive.Menu) func() error {
		return func() error {
			setFlag(editflag.ARBSpecificMenu)
			sess.InstallMenu(build())
			return nil
		}
	}

	// returnItem re-installs this same top-level menu, the leaf
	// every sub-menu ends with to back out of ECMD_ARB_SPECIFIC_MENU
	// into ECMD_ARB_MAIN_MENU (edarb.c's "RETURN" menu entry).
	returnItem := primitive.MenuItem{
		Label: "RETURN",
		Handler: func() error {
			setFlag(editflag.ARBMainMenu)
			sess.InstallMenu(a.Menu(sess, st, setFlag))
			return nil
		},
	}

	return primitive.Menu{
		{Label: fmt.Sprintf("ARB%d MENU", typ), Handler: nil},
		{Label: edgeLabel, Handler: installSub(func() primitive.Menu { return edgeOrPointMenu(st, typ, setFlag, returnItem) })},
		{Label: "Move face", Handler: installSub(func() primitive.Menu { return faceMenu(st, typ, setFlag, returnItem) })},
		{Label: "Rotate face", Handler: installSub(func() primitive.Menu { return rotateFaceMenu(st, typ, setFlag, returnItem) })},
	}
}

// edgeOrPointMenu lists either every geometric edge of typ (ARB5-8) or
// every distinct vertex (ARB4, whose 6 theoretical edges collapse onto
// only 4 slots and whose own menu moves points instead, matching
// spec §4.2's "ARB4: 4 vertex moves").
func edgeOrPointMenu(st *EditState, typ Type, setFlag func(editflag.SubOp), returnItem primitive.MenuItem) primitive.Menu {
	if typ == ARB4 {
		return pointMenu(st, typ, setFlag, returnItem)
	}

	menu := primitive.Menu{{Label: "MOVE EDGE", Handler: nil}}
	for _, e := range Edges(typ) {
		s1, s2 := e[0], e[1]
		menu = append(menu, primitive.MenuItem{
			Label: fmt.Sprintf("move edge %d%d", s1+1, s2+1),
			Handler: func() error {
				st.EdgePt1, st.EdgePt2 = s1, s2
				setFlag(editflag.ARBEdge)
				return nil
			},
		})
	}
	return append(menu, returnItem)
}

// pointMenu lists ARB4's 4 distinct vertices (PTARB).
func pointMenu(st *EditState, typ Type, setFlag func(editflag.SubOp), returnItem primitive.MenuItem) primitive.Menu {
	menu := primitive.Menu{{Label: "MOVE POINT", Handler: nil}}
	for _, s := range canonicalSlots(typ) {
		s := s
		menu = append(menu, primitive.MenuItem{
			Label: fmt.Sprintf("move point %d", s+1),
			Handler: func() error {
				st.SelectedPoint = s
				setFlag(editflag.ARBPoint)
				return nil
			},
		})
	}
	return append(menu, returnItem)
}

// faceMenu lists every face typ has (ECMD_ARB_MOVE_FACE).
func faceMenu(st *EditState, typ Type, setFlag func(editflag.SubOp), returnItem primitive.MenuItem) primitive.Menu {
	menu := primitive.Menu{{Label: "MOVE FACE", Handler: nil}}
	valid := validFaces(typ)
	for f := 0; f < 6; f++ {
		if !valid[f] {
			continue
		}
		f := f
		menu = append(menu, primitive.MenuItem{
			Label: fmt.Sprintf("move face %d", f+1),
			Handler: func() error {
				st.SelectedFace = f
				setFlag(editflag.ARBMoveFace)
				return nil
			},
		})
	}
	return append(menu, returnItem)
}

// rotateFaceMenu lists every face typ has (ECMD_ARB_SETUP_ROTFACE,
// which arms ECMD_ARB_ROTATE_FACE once the host supplies the fixed
// vertex via callback.ArbSetupRotface).
func rotateFaceMenu(st *EditState, typ Type, setFlag func(editflag.SubOp), returnItem primitive.MenuItem) primitive.Menu {
	menu := primitive.Menu{{Label: "ROTATE FACE", Handler: nil}}
	valid := validFaces(typ)
	for f := 0; f < 6; f++ {
		if !valid[f] {
			continue
		}
		f := f
		menu = append(menu, primitive.MenuItem{
			Label: fmt.Sprintf("rotate face %d", f+1),
			Handler: func() error {
				st.SelectedFace = f
				setFlag(editflag.ARBSetupRotFace)
				return nil
			},
		})
	}
	return append(menu, returnItem)
}
