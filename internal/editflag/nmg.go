package editflag

// NMG sub-ops (spec §4.3): edgeuse selection/traversal and the Euler
// operators that mutate the boundary representation.
const (
	NmgEpick  SubOp = "ECMD_NMG_EPICK"
	NmgEmove  SubOp = "ECMD_NMG_EMOVE"
	NmgEsplit SubOp = "ECMD_NMG_ESPLIT"
	NmgEkill  SubOp = "ECMD_NMG_EKILL"
	NmgForw   SubOp = "ECMD_NMG_FORW"
	NmgBack   SubOp = "ECMD_NMG_BACK"
	NmgRadial SubOp = "ECMD_NMG_RADIAL"
	NmgLextru SubOp = "ECMD_NMG_LEXTRU"
	NmgEdebug SubOp = "ECMD_NMG_EDEBUG"
)
