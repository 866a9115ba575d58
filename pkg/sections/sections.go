// Package sections switches which documentation block the landing page shows.
package sections

import "errors"

// ErrUnknownSection is returned by Parse for ids outside the fixed set.
var ErrUnknownSection = errors.New("unknown section")

// Section identifies one entry of the documentation navigation.
type Section int

const (
	Introduction Section = iota
	Pillars
	Benefits
	// Register is a navigation target only. Selecting it scrolls to the
	// form and never becomes the active section.
	Register
)

var ids = [...]string{
	Introduction: "introduction",
	Pillars:      "pillars",
	Benefits:     "benefits",
	Register:     "register",
}

func (s Section) String() string {
	if s < Introduction || s > Register {
		return "unknown"
	}
	return ids[s]
}

// Parse maps a section id to its Section.
func Parse(id string) (Section, error) {
	for i, v := range ids {
		if v == id {
			return Section(i), nil
		}
	}
	return Introduction, ErrUnknownSection
}

// Effect is the scroll side effect requested by a selection.
type Effect int

const (
	ScrollToContent Effect = iota
	ScrollToRegistration
)

// Anchor is the page fragment the effect scrolls to.
func (e Effect) Anchor() string {
	if e == ScrollToRegistration {
		return "register"
	}
	return "docs"
}

// Router holds the active documentation section. The zero value is not
// ready; use NewRouter or Restore.
type Router struct {
	active Section
}

// NewRouter starts on the introduction.
func NewRouter() *Router {
	return &Router{active: Introduction}
}

// Restore recreates a Router from a previously stored section id. Unknown or
// non-content ids fall back to the introduction.
func Restore(id string) *Router {
	s, err := Parse(id)
	if err != nil || s == Register {
		return NewRouter()
	}
	return &Router{active: s}
}

// Active returns the section currently displayed.
func (r *Router) Active() Section {
	return r.active
}

// Select handles a navigation click.
func (r *Router) Select(s Section) Effect {
	if s == Register {
		return ScrollToRegistration
	}
	r.active = s
	return ScrollToContent
}

// NavItem is one navigation entry.
type NavItem struct {
	Section Section
	Label   string
}

// ID returns the section id used in URLs.
func (n NavItem) ID() string { return n.Section.String() }

var navItems = []NavItem{
	{Introduction, "Introduction"},
	{Pillars, "Trois Piliers"},
	{Benefits, "Avantages"},
	{Register, "Inscription"},
}

// NavItems lists navigation entries in display order. Desktop and mobile
// navigation both render from this list.
func NavItems() []NavItem {
	out := make([]NavItem, len(navItems))
	copy(out, navItems)
	return out
}
