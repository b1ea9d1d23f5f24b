// Package shell holds the page-level UI state shared by the header and the
// animated sections.
package shell

const (
	openIconPath  = "M4 6h16M4 12h16M4 18h16"
	closeIconPath = "M6 18L18 6M6 6l12 12"
)

// State is the top-level UI state of the page.
type State struct {
	MenuOpen      bool
	ReducedMotion bool
}

// ToggleMenu flips the mobile menu.
func (s *State) ToggleMenu() {
	s.MenuOpen = !s.MenuOpen
}

// CloseMenu closes the mobile menu, as any navigation click does.
func (s *State) CloseMenu() {
	s.MenuOpen = false
}

// MenuLabel is the accessible label of the menu button.
func (s State) MenuLabel() string {
	if s.MenuOpen {
		return "Close menu"
	}
	return "Open menu"
}

// MenuIconPath is the SVG path of the menu button icon.
func (s State) MenuIconPath() string {
	if s.MenuOpen {
		return closeIconPath
	}
	return openIconPath
}

// MenuClasses are the mobile menu container classes.
func (s State) MenuClasses() string {
	base := "md:hidden bg-white border-t border-gray-100 py-4"
	switch {
	case !s.MenuOpen:
		return base + " hidden"
	case s.ReducedMotion:
		return base + " block"
	default:
		return base + " animate-fade-in-down"
	}
}

// UnderlineClasses are the hover underline classes of a desktop nav link.
func (s State) UnderlineClasses() string {
	base := "absolute left-0 bottom-0 w-full h-0.5 bg-[#f03a37] "
	if s.ReducedMotion {
		return base + "opacity-0 group-hover:opacity-100"
	}
	return base + "transform scale-x-0 group-hover:scale-x-100 transition-transform duration-300"
}
