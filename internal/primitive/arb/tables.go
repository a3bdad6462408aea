package arb

// arb8Faces lists, for each of the 6 ARB8 faces, its 4 vertex slots in
// the standard numbering (bottom 1234, top 5678, sides 2367/1548/
// 4378/1256) — the same face names arb_extrude and
// arb_mirror_face_axis key their "product" switch on.
var arb8Faces = [6][4]int{
	{0, 1, 2, 3}, // 1234
	{4, 5, 6, 7}, // 5678
	{1, 2, 6, 5}, // 2367
	{0, 4, 7, 3}, // 1548
	{3, 2, 6, 7}, // 4378
	{0, 1, 5, 4}, // 1256
}

// arb8VertexFaces lists, for each of the 8 slots, the 3 face indices
// (into arb8Faces) that meet at that vertex.
var arb8VertexFaces = [8][3]int{
	{0, 3, 5}, // slot 0
	{0, 2, 5}, // slot 1
	{0, 2, 4}, // slot 2
	{0, 3, 4}, // slot 3
	{1, 3, 5}, // slot 4
	{1, 2, 5}, // slot 5
	{1, 2, 4}, // slot 6
	{1, 3, 4}, // slot 7
}

// collapse maps any slot index to the canonical slot it currently
// coincides with for typ, the inverse of the "carry along any like
// points" rule in CalcPoints: slots that Type declares redundant
// collapse onto the slot that actually stores their position.
func collapse(typ Type, slot int) int {
	switch typ {
	case ARB4:
		switch slot {
		case 3:
			return 0
		case 5, 6, 7:
			return 4
		}
	case ARB5:
		switch slot {
		case 5, 6, 7:
			return 4
		}
	case ARB6:
		switch slot {
		case 5:
			return 4
		case 7:
			return 6
		}
	case ARB7:
		if slot == 7 {
			return 4
		}
	}
	return slot
}

// canonicalSlots returns the independent vertex slots for typ — the
// ones CalcPoints actually solves for, in increasing order.
func canonicalSlots(typ Type) []int {
	seen := make(map[int]bool, 8)
	var out []int
	for s := 0; s < 8; s++ {
		c := collapse(typ, s)
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// facePoints returns the distinct canonical vertex slots bounding
// face faceIdx under typ's collapse rule, in their original corner
// order. A face whose corners collapse to fewer than 3 distinct
// slots does not exist for typ (e.g. ARB6's top face 5678 collapses
// to the 2-point ridge 5-6 and is dropped; ARB7's top face collapses
// to the triangular cap 5-6-7 documented as a special case in the
// original source).
func facePoints(typ Type, faceIdx int) []int {
	corners := arb8Faces[faceIdx]
	seen := make(map[int]bool, 4)
	var out []int
	for _, s := range corners {
		c := collapse(typ, s)
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// facesFor returns, for each face index 0..5, the 3-point triple used
// to compute its plane equation, or nil if that face doesn't exist
// for typ.
func facesFor(typ Type) [6][3]int {
	var out [6][3]int
	for i := range out {
		pts := facePoints(typ, i)
		if len(pts) < 3 {
			out[i] = [3]int{-1, -1, -1}
			continue
		}
		out[i] = [3]int{pts[0], pts[1], pts[2]}
	}
	return out
}

// validFaces returns which of the 6 face indices exist for typ.
func validFaces(typ Type) [6]bool {
	var ok [6]bool
	for i := 0; i < 6; i++ {
		ok[i] = len(facePoints(typ, i)) >= 3
	}
	return ok
}

// vertexPlanesFor returns, for each of the 8 slots, the 3 valid face
// indices meeting at that slot's canonical vertex, or {-1,-1,-1} for
// a non-canonical (duplicate) slot, which CalcPoints's carry-along
// step fills in instead.
func vertexPlanesFor(typ Type) [8][3]int {
	var out [8][3]int
	valid := validFaces(typ)
	for s := 0; s < 8; s++ {
		if collapse(typ, s) != s {
			out[s] = [3]int{-1, -1, -1}
			continue
		}
		var tri [3]int
		n := 0
		for _, f := range arb8VertexFaces[s] {
			if valid[f] && n < 3 {
				tri[n] = f
				n++
			}
		}
		for ; n < 3; n++ {
			tri[n] = -1
		}
		out[s] = tri
	}
	return out
}

// facesContaining returns every valid face index that, under typ's
// collapse rule, has slot among its distinct corners.
func facesContaining(typ Type, slot int) []int {
	c := collapse(typ, slot)
	var out []int
	for i := 0; i < 6; i++ {
		for _, p := range facePoints(typ, i) {
			if p == c {
				out = append(out, i)
				break
			}
		}
	}
	return out
}
