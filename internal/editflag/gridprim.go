package editflag

// Shared sub-ops for the sampled-grid primitives EBM, VOL, DSP, HF
// (spec §4.8): set data-source filename, set file dimensions, set
// voxel/cell size, and the extrusion-height or per-axis scale factor
// each of DSP/HF/EBM/VOL variant carries.
const (
	GridSetFile SubOp = "ECMD_GRID_SET_FILE"
	GridSetDims SubOp = "ECMD_GRID_SET_DIMS"
	GridSetCell SubOp = "ECMD_GRID_SET_CELL_SIZE"
	GridSetScl  SubOp = "ECMD_GRID_SET_SCALE"
)
