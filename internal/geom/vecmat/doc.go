// Package vecmat implements the tolerance-aware vector and matrix
// primitives shared by every edit backend: 3-vectors, 4x4 homogeneous
// matrices, and the distance/parallel predicates that the primitive
// editors use to decide whether a move is legal.
package vecmat
