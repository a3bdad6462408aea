package editflag

// TGC sub-ops (spec §4.5), grounded in BRL-CAD's edtgc.c: independent
// scale of H, A, B, C, D, the paired AB/CD/ABCD variants that couple
// trailing-vector magnitudes to the first-scaled vector, the four
// H-scaling variants, rotation of H or the A/B/C/D plane set, and the
// two "move end of H" variants.
const (
	TgcScaleH SubOp = "ECMD_TGC_SCALE_H"
	TgcScaleA SubOp = "ECMD_TGC_SCALE_A"
	TgcScaleB SubOp = "ECMD_TGC_SCALE_B"
	TgcScaleC SubOp = "ECMD_TGC_SCALE_C"
	TgcScaleD SubOp = "ECMD_TGC_SCALE_D"

	// TgcScaleAB scales A by the given factor and forces B's magnitude
	// to match A's new magnitude, preserving B's direction.
	TgcScaleAB SubOp = "ECMD_TGC_SCALE_AB"
	// TgcScaleCD scales C by the given factor and forces D's magnitude
	// to match C's new magnitude, preserving D's direction.
	TgcScaleCD SubOp = "ECMD_TGC_SCALE_CD"
	// TgcScaleABCD scales A by the given factor and forces B, C, and D
	// all to A's new magnitude, each preserving its own direction.
	TgcScaleABCD SubOp = "ECMD_TGC_SCALE_ABCD"

	// TgcScaleHV scales H about the top: V moves so that V+H (the top,
	// where C/D live) stays fixed, the opposite of TgcScaleH.
	TgcScaleHV SubOp = "ECMD_TGC_SCALE_H_V"
	// TgcScaleHCD scales H about the top like TgcScaleHV and also
	// interpolates C and D toward A and B respectively by (1 -
	// factor), so the taper ratio is preserved; if the interpolated C
	// or D would flip direction or vanish, both are left unchanged.
	TgcScaleHCD SubOp = "ECMD_TGC_SCALE_H_CD"
	// TgcScaleHVAB scales H about the top like TgcScaleHV and
	// interpolates A and B toward C and D respectively by (1 -
	// factor), the symmetric counterpart of TgcScaleHCD; same
	// silent-no-op guard.
	TgcScaleHVAB SubOp = "ECMD_TGC_SCALE_H_V_AB"

	TgcRotH  SubOp = "ECMD_TGC_ROT_H"
	TgcRotAB SubOp = "ECMD_TGC_ROT_AB"

	// TgcMoveHRegenAB moves the tip of H and re-derives A/B orthogonal
	// to the new H, keeping their magnitudes.
	TgcMoveHRegenAB SubOp = "ECMD_TGC_MV_H"
	// TgcMoveHFixedAB moves the tip of H while holding A/B/C/D fixed.
	TgcMoveHFixedAB SubOp = "ECMD_TGC_MV_HH"
)
