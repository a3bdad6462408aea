// Package scalar implements the common template shared by ELL, TOR,
// PART, ETO, HYP and SUPERELL (spec §4.9): a menu of independent
// scalar scales plus uniform scale, where every sub-operation takes
// exactly one positive scalar, rejects any other arity, and applies
// the leaf-path scale factor e_mat[15] before mutating the
// primitive. Each field's set function is free to clamp the result
// to preserve its primitive's type invariant (e.g. TOR's minor
// radius never exceeds its major radius).
package scalar

import (
	"github.com/csgedit/csgedit/internal/editflag"
	"github.com/csgedit/csgedit/internal/primitive"
	"github.com/csgedit/csgedit/internal/session"
)

// Field is one independently scalable scalar belonging to a
// primitive: Name labels it for diagnostics, and Scale multiplies its
// current value by factor in place, returning an error if the result
// would violate the primitive's type invariant. Scale is free to
// clamp rather than reject (TOR's minor radius is clamped to its
// major radius, spec §8 scenario S2) where the original does so.
type Field struct {
	Name  string
	Scale func(factor float64) error
}

// Fields maps each sub-op this primitive claims to the Field it
// scales. Built once per primitive value and handed to Apply.
type Fields map[editflag.SubOp]Field

// Apply scales the field sess.EditFlag.Op names by the single pending
// scalar parameter (itself a multiplicative factor, spec §8 S2),
// after folding in the leaf-path scale factor e_mat[15] (spec §4.9).
// Idempotent on rejection: the field is left unchanged and an error
// returned.
func Apply(sess *session.Session, fields Fields, typeName string) error {
	f, ok := fields[sess.EditFlag.Op]
	if !ok {
		return primitive.Newf(primitive.BadArity, "%s: edit flag %q is not a scalar sub-operation", typeName, sess.EditFlag.Op)
	}
	if sess.NumParams != 1 || !sess.ParamValid {
		return primitive.Newf(primitive.BadArity, "%s: %s needs exactly one scalar argument", typeName, f.Name)
	}
	factor := sess.Params[0]
	if factor <= 0 {
		return primitive.Newf(primitive.OutOfRange, "%s: %s scale factor must be positive", typeName, f.Name)
	}

	if err := f.Scale(factor * sess.EMat.LeafScaleFactor()); err != nil {
		return err
	}
	sess.ClearParams()
	sess.NotifyReplot()
	return nil
}
