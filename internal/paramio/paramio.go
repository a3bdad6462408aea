// Package paramio implements the line-oriented "write/read params"
// text format shared by the primitives that support textual
// round-trip editing (spec §6.2): one field per line, CRLF or LF line
// endings, a "strip to last colon" pre-pass on read, and scaling by a
// session's local2base/base2local on the way in and out.
package paramio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/csgedit/csgedit/internal/geom/vecmat"
)

// ErrBadFormat is wrapped into every parse failure so callers can
// distinguish a malformed parameter block from other errors.
var ErrBadFormat = fmt.Errorf("paramio: malformed parameter text")

// Lines splits text into its constituent lines, tolerating both LF
// and CRLF endings and dropping a single trailing empty line.
func Lines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// StripLabel removes everything up to and including the last colon on
// a line, the original's "ignore the prefix label" read convention,
// and trims surrounding whitespace from what remains.
func StripLabel(line string) string {
	if i := strings.LastIndexByte(line, ':'); i >= 0 {
		line = line[i+1:]
	}
	return strings.TrimSpace(line)
}

// ParseFloats splits the data after a line's label on whitespace and
// parses exactly want floats.
func ParseFloats(line string, want int) ([]float64, error) {
	data := StripLabel(line)
	fields := strings.Fields(data)
	if len(fields) != want {
		return nil, fmt.Errorf("%w: expected %d numbers, found %d in %q", ErrBadFormat, want, len(fields), line)
	}
	out := make([]float64, want)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
		}
		out[i] = v
	}
	return out, nil
}

// ParseVec3 parses a line as "Label: x y z", scaling the result by
// local2base (the read-side half of spec §6.2's unit conversion).
func ParseVec3(line string, local2base float64) (vecmat.Vec3, error) {
	vals, err := ParseFloats(line, 3)
	if err != nil {
		return vecmat.Vec3{}, err
	}
	return vecmat.Scale(vecmat.Vec3{X: vals[0], Y: vals[1], Z: vals[2]}, local2base), nil
}

// WriteVec3 formats v (already scaled by base2local by the caller) as
// a "Label: x y z" line.
func WriteVec3(label string, v vecmat.Vec3) string {
	return fmt.Sprintf("%s: %.12g %.12g %.12g", label, v.X, v.Y, v.Z)
}

// WriteScalar formats a single value as a "Label: value" line.
func WriteScalar(label string, v float64) string {
	return fmt.Sprintf("%s: %.12g", label, v)
}

// ParseScalar parses a line as "Label: value", scaled by local2base.
func ParseScalar(line string, local2base float64) (float64, error) {
	vals, err := ParseFloats(line, 1)
	if err != nil {
		return 0, err
	}
	return vals[0] * local2base, nil
}

// Require checks that lines has at least n entries, the precondition
// every fixed-shape Read function needs before indexing into it.
func Require(lines []string, n int) error {
	if len(lines) < n {
		return fmt.Errorf("%w: expected at least %d lines, found %d", ErrBadFormat, n, len(lines))
	}
	return nil
}
