package arb

import (
	"strconv"

	"github.com/csgedit/csgedit/internal/geom/vecmat"
	"github.com/csgedit/csgedit/internal/primitive"
)

// The permutation tables below are a verbatim transcription of
// arb_permute's perm4..perm8 and vert_loc tables: for each possible
// "vertex 1" choice, the list of valid 8-character encoded
// permutations reachable from it ('*' marks a redundantly-stored
// slot). A nil entry in the outer slice means that starting vertex
// has no valid permutation for that type.
var perm4 = [4][]string{
	{"123*4***", "124*3***", "132*4***", "134*2***", "142*3***", "143*2***"},
	{"213*4***", "214*3***", "231*4***", "234*1***", "241*3***", "243*1***"},
	{"312*4***", "314*2***", "321*4***", "324*1***", "341*2***", "342*1***"},
	{"412*3***", "413*2***", "421*3***", "423*1***", "431*2***", "432*1***"},
}

var perm5 = [5][]string{
	{"12345***", "14325***"},
	{"21435***", "23415***"},
	{"32145***", "34125***"},
	{"41235***", "43215***"},
	nil,
}

var perm6 = [6][]string{
	{"12345*6*", "15642*3*"},
	{"21435*6*", "25631*4*"},
	{"34126*5*", "36524*1*"},
	{"43216*5*", "46513*2*"},
	{"51462*3*", "52361*4*"},
	{"63254*1*", "64153*2*"},
}

var perm7 = [7][]string{
	{"1234567*"},
	nil,
	nil,
	{"4321576*"},
	nil,
	{"6237514*"},
	{"7326541*"},
}

var perm8 = [8][]string{
	{"12345678", "12654378", "14325876", "14852376", "15624873", "15842673"},
	{"21436587", "21563487", "23416785", "23761485", "26513784", "26731584"},
	{"32147658", "32674158", "34127856", "34872156", "37624851", "37842651"},
	{"41238567", "41583267", "43218765", "43781265", "48513762", "48731562"},
	{"51268437", "51486237", "56218734", "56781234", "58416732", "58761432"},
	{"62157348", "62375148", "65127843", "65872143", "67325841", "67852341"},
	{"73268415", "73486215", "76238514", "76583214", "78436512", "78563412"},
	{"84157326", "84375126", "85147623", "85674123", "87345621", "87654321"},
}

// vertLoc is the ARB_VERT_LOC table: the array slot holding the
// 1-indexed vertex v for ARB type typ, or -1 if that vertex doesn't
// have an independent slot.
var vertLoc = map[Type][8]int{
	ARB4: {0, 1, 2, 4, -1, -1, -1, -1},
	ARB5: {0, 1, 2, 3, 4, -1, -1, -1},
	ARB6: {0, 1, 2, 3, 4, 6, -1, -1},
	ARB7: {0, 1, 2, 3, 4, 5, 6, -1},
	ARB8: {0, 1, 2, 3, 4, 5, 6, 7},
}

func minTupleSize(typ Type) int {
	switch typ {
	case ARB4:
		return 3
	case ARB5, ARB6:
		return 2
	case ARB7:
		return 1
	default:
		return 3
	}
}

// Permute reassigns which stored vertex plays each role, per an
// 8-character (or shorter, face-only) encoded permutation string
// naming the new vertex 1 first (arb_permute).
func (a *ARB) Permute(typ Type, encoded string) error {
	if len(encoded) < minTupleSize(typ) || len(encoded) > 8 {
		return primitive.Newf(primitive.BadArity, "permutation string has the wrong length for this ARB type")
	}
	vertex := int(encoded[0] - '1')
	if vertex < 0 || vertex >= int(typ) {
		return primitive.Newf(primitive.OutOfRange, "starting vertex %d is out of range", vertex+1)
	}

	var candidates []string
	switch typ {
	case ARB4:
		candidates = perm4[vertex]
	case ARB5:
		candidates = perm5[vertex]
	case ARB6:
		candidates = perm6[vertex]
	case ARB7:
		candidates = perm7[vertex]
	case ARB8:
		candidates = perm8[vertex]
	default:
		return primitive.Newf(primitive.InternalInvariant, "unknown ARB type %d", typ)
	}

	var chosen string
	for _, c := range candidates {
		if len(c) >= len(encoded) && c[:len(encoded)] == encoded {
			chosen = c
			break
		}
	}
	if chosen == "" {
		return primitive.Newf(primitive.GeometryRejected, "permutation %q is not reachable from vertex %d", encoded, vertex+1)
	}

	loc := vertLoc[typ]
	old := a.Pts
	var next [8]vecmat.Vec3
	for i := 0; i < 8; i++ {
		ch := chosen[i]
		if ch == '*' {
			continue
		}
		k, err := strconv.Atoi(string(ch))
		if err != nil {
			return primitive.Newf(primitive.InternalInvariant, "malformed permutation table entry %q", chosen)
		}
		slot := loc[k-1]
		if slot < 0 {
			return primitive.Newf(primitive.InternalInvariant, "permutation table references an empty slot")
		}
		next[i] = old[slot]
	}
	a.Pts = next

	if err := carryAlong(a, typ); err != nil {
		return err
	}
	return a.CalcPlanes(typ)
}
