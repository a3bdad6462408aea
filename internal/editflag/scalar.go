package editflag

// Sub-ops for the simple scalar editors (spec §4.9): ELL, TOR, PART,
// ETO, HYP, SUPERELL each scale one or more independent scalar fields
// by a single positive factor, leaving every other field untouched.
const (
	EllScaleA SubOp = "ECMD_ELL_SCALE_A"
	EllScaleB SubOp = "ECMD_ELL_SCALE_B"
	EllScaleC SubOp = "ECMD_ELL_SCALE_C"

	TorR1 SubOp = "ECMD_TOR_R1"
	TorR2 SubOp = "ECMD_TOR_R2"

	PartV SubOp = "ECMD_PART_V"
	PartH SubOp = "ECMD_PART_H"

	EtoR      SubOp = "ECMD_ETO_R"
	EtoRd     SubOp = "ECMD_ETO_RD"
	EtoScaleC SubOp = "ECMD_ETO_SCALE_C"

	HypScaleA SubOp = "ECMD_HYP_SCALE_A"
	HypScaleB SubOp = "ECMD_HYP_SCALE_B"
	HypC      SubOp = "ECMD_HYP_C"

	SuperellScaleA SubOp = "ECMD_SUPERELL_SCALE_A"
	SuperellScaleB SubOp = "ECMD_SUPERELL_SCALE_B"
	SuperellScaleC SubOp = "ECMD_SUPERELL_SCALE_C"
	SuperellSetN   SubOp = "ECMD_SUPERELL_SET_N"
	SuperellSetE   SubOp = "ECMD_SUPERELL_SET_E"
)
