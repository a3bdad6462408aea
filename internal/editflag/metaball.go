package editflag

// Metaball sub-ops (spec §4.7): threshold/method are session-wide,
// the rest operate on the currently selected control point.
const (
	MetaballSetThreshold SubOp = "ECMD_METABALL_SET_THRESHOLD"
	MetaballSetMethod    SubOp = "ECMD_METABALL_SET_METHOD"
	MetaballSelect       SubOp = "ECMD_METABALL_SELECT"
	MetaballNextPt       SubOp = "ECMD_METABALL_NEXT_PT"
	MetaballPrevPt       SubOp = "ECMD_METABALL_PREV_PT"
	MetaballMovePt       SubOp = "ECMD_METABALL_MOVE_PT"
	MetaballScaleStr     SubOp = "ECMD_METABALL_SCALE_STRENGTH"
	MetaballScaleGoo     SubOp = "ECMD_METABALL_SCALE_GOO"
	MetaballDelPt        SubOp = "ECMD_METABALL_DEL_PT"
	MetaballAddPt        SubOp = "ECMD_METABALL_ADD_PT"
)
