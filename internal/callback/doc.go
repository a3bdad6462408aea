// Package callback implements the host callback registry of spec §6.1:
// a mapping keyed by (event, phase) to a host-provided function.
// Edit backends invoke registered callbacks to recompute edit-axes
// position, install a menu, flush diagnostics, request a redraw, or
// ask the host for a filename/fixed-vertex index. The registry itself
// owns no lifetime over the callbacks; the host retains that, the
// same contract internal/event/registry.go and internal/dispatcher/hook
// use for subscriptions and hooks.
package callback
