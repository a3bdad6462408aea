// Package script implements the §6.3 command surface — f_eqn,
// edgedir, extrude, permute, mirror_face_axis — as Lua-callable
// functions bound to one edit session, using
// github.com/yuin/gopher-lua the way the teacher's
// internal/plugin/lua package binds Go functions into an *lua.LState
// (the same "register Go funcs as lua.LGFunction, run a script,
// collect results" pattern as internal/plugin/lua/bridge.go and
// executor.go, narrowed from the teacher's general-purpose plugin
// host to this system's fixed, small ARB-editing command set).
//
// This is the concrete realization of spec §1's "the host scripting
// layer... reached through a callback registry": the core itself
// never runs Lua outside of this package, and nothing here is
// reachable except through the functions New binds.
package script
