package editflag

// ARS sub-ops (spec §4.4): grid pick/traversal, point/row/column
// move, and curve/column duplication or deletion.
const (
	ArsPick    SubOp = "ECMD_ARS_PICK"
	ArsNextPt  SubOp = "ECMD_ARS_NEXT_PT"
	ArsPrevPt  SubOp = "ECMD_ARS_PREV_PT"
	ArsNextCrv SubOp = "ECMD_ARS_NEXT_CRV"
	ArsPrevCrv SubOp = "ECMD_ARS_PREV_CRV"
	ArsMovePt  SubOp = "ECMD_ARS_MOVE_PT"
	ArsMoveCrv SubOp = "ECMD_ARS_MOVE_CRV"
	ArsMoveCol SubOp = "ECMD_ARS_MOVE_COL"
	ArsDupCrv  SubOp = "ECMD_ARS_DUP_CRV"
	ArsDelCrv  SubOp = "ECMD_ARS_DEL_CRV"
	ArsDupCol  SubOp = "ECMD_ARS_DUP_COL"
	ArsDelCol  SubOp = "ECMD_ARS_DEL_COL"
)
