package primitive

// MenuItem is one entry in a primitive's edit menu (spec §3.2): a
// label the host displays and a handler invoked when the host reports
// a click. The first item of a Menu carries the menu's title and a
// nil Handler.
type MenuItem struct {
	Label   string
	Handler func() error
}

// Menu is an ordered, immutable sequence of menu items. Menus are
// built once per primitive type and do not change across sessions.
type Menu []MenuItem

// Title returns the menu's title, the label of its first item.
func (m Menu) Title() string {
	if len(m) == 0 {
		return ""
	}
	return m[0].Label
}
