package callback

// Event identifies a host callback hook point (spec §6.1).
type Event string

const (
	// EaxesPos asks the host to recompute the edit-axis draw position.
	EaxesPos Event = "ECMD_EAXES_POS"
	// MenuSet installs a new menu item table on the host's menu widget.
	MenuSet Event = "ECMD_MENU_SET"
	// PrintResults flushes a session's log buffer to the user.
	PrintResults Event = "ECMD_PRINT_RESULTS"
	// ReplotSolid invalidates the host's display of the solid being edited.
	ReplotSolid Event = "ECMD_REPLOT_EDITING_SOLID"
	// ViewSetFlag marks the host's view as dirty.
	ViewSetFlag Event = "ECMD_VIEW_SET_FLAG"
	// GetFilename asks the host for a user-chosen file path.
	GetFilename Event = "ECMD_GET_FILENAME"
	// ArbSetupRotface asks the host for the fixed-vertex index of an
	// ARB face rotation.
	ArbSetupRotface Event = "ECMD_ARB_SETUP_ROTFACE"
	// NmgEdebug asks the host to draw an NMG diagnostic overlay.
	NmgEdebug Event = "ECMD_NMG_EDEBUG"
	// ExtrSktName tells the host a new sketch has been bound to an
	// extrusion primitive.
	ExtrSktName Event = "ECMD_EXTR_SKT_NAME"
)

// Phase identifies when, relative to the operation it's attached to,
// a callback fires.
type Phase int

const (
	// Before fires prior to the core mutating state for this event.
	Before Phase = iota
	// During fires as the event itself is being processed.
	During
	// After fires once the core has finished processing the event.
	After
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case Before:
		return "before"
	case During:
		return "during"
	case After:
		return "after"
	default:
		return "unknown"
	}
}
