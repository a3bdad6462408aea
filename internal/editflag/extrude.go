package editflag

// Extrude sub-ops (spec §4.6): set sketch reference, move the
// extrusion tip (V+H), scale H, rotate H.
const (
	ExtrSketch SubOp = "ECMD_EXTR_SKT_NAME"
	ExtrMoveH  SubOp = "ECMD_EXTR_MOV_H"
	ExtrScaleH SubOp = "ECMD_EXTR_SCALE_H"
	ExtrRotH   SubOp = "ECMD_EXTR_ROT_H"
)
