// Package shell assembles the landing page view: header navigation, hero,
// documentation area, registration form and footer.
package shell

import (
	"html/template"
	"time"

	"bootcamp-landing/pkg/content"
	"bootcamp-landing/pkg/form"
	"bootcamp-landing/pkg/models"
	"bootcamp-landing/pkg/sections"
	"bootcamp-landing/pkg/theme"
)

// NavEntry is a navigation item with its active flag resolved.
type NavEntry struct {
	sections.NavItem
	Active bool
}

// State is the per-visitor input to a page render.
type State struct {
	Theme     theme.Theme
	Router    *sections.Router
	Form      form.Snapshot
	CSRFField template.HTML
	CSRFToken string
}

// Page is the template model for the landing page.
type Page struct {
	Theme         theme.Theme
	NextTheme     theme.Theme
	Active        sections.Section
	Nav           []NavEntry
	Doc           content.Doc
	Hero          content.Hero
	Footer        content.Footer
	Form          form.Snapshot
	MotivationMax int
	ResetSeconds  int
	ScrollMargin  int
	// ScrollVisible is the indicator state on first paint, before the
	// browser script takes over the same computation on scroll.
	ScrollVisible bool
	CSRFField     template.HTML
	CSRFToken     string
}

// Shell renders page models from shared content.
type Shell struct {
	library    *content.Library
	hero       content.Hero
	footer     content.Footer
	resetDelay time.Duration
}

// New creates a Shell. resetDelay is how long the success panel stays up,
// used to refresh the page once the form has been cleared.
func New(library *content.Library, resetDelay time.Duration) *Shell {
	if resetDelay <= 0 {
		resetDelay = form.DefaultResetDelay
	}
	return &Shell{
		library:    library,
		hero:       content.Landing(),
		footer:     content.PageFooter(),
		resetDelay: resetDelay,
	}
}

// Page builds the model for one render.
func (s *Shell) Page(state State) Page {
	router := state.Router
	if router == nil {
		router = sections.NewRouter()
	}
	active := router.Active()

	items := sections.NavItems()
	nav := make([]NavEntry, len(items))
	for i, item := range items {
		nav[i] = NavEntry{NavItem: item, Active: item.Section == active}
	}

	return Page{
		Theme:         state.Theme,
		NextTheme:     state.Theme.Toggle(),
		Active:        active,
		Nav:           nav,
		Doc:           s.doc(active),
		Hero:          s.hero,
		Footer:        s.footer,
		Form:          state.Form,
		MotivationMax: models.MotivationMaxLength,
		ResetSeconds:  int((s.resetDelay + time.Second - 1) / time.Second),
		ScrollMargin:  ScrollIndicatorMargin,
		ScrollVisible: NewScrollIndicator(0).Update(0),
		CSRFField:     state.CSRFField,
		CSRFToken:     state.CSRFToken,
	}
}

// doc is the only place a section is mapped to what the content area shows.
func (s *Shell) doc(active sections.Section) content.Doc {
	var d content.Doc
	switch active {
	case sections.Introduction, sections.Pillars, sections.Benefits:
		d, _ = s.library.Doc(active)
	case sections.Register:
		d, _ = s.library.Doc(sections.Introduction)
	}
	return d
}
