package editflag

// ARB sub-ops (the EARB/PTARB/ECMD_ARB_* constant family in edarb.c),
// scoped under KindARB.
const (
	ARBEdge           SubOp = "EARB"
	ARBPoint          SubOp = "PTARB"
	ARBMainMenu       SubOp = "ECMD_ARB_MAIN_MENU"
	ARBSpecificMenu   SubOp = "ECMD_ARB_SPECIFIC_MENU"
	ARBMoveFace       SubOp = "ECMD_ARB_MOVE_FACE"
	ARBSetupRotFace   SubOp = "ECMD_ARB_SETUP_ROTFACE"
	ARBRotateFace     SubOp = "ECMD_ARB_ROTATE_FACE"
)
