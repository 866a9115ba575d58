package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"

	"bootcamp-landing/pkg/form"
	"bootcamp-landing/pkg/middleware"
	"bootcamp-landing/pkg/models"
	"bootcamp-landing/pkg/sections"
	"bootcamp-landing/pkg/shell"
	"bootcamp-landing/pkg/web"
)

// Index renders the landing page for the visitor.
func (h *Handlers) Index(c *gin.Context) {
	snap := h.sessions.Snapshot(h.existingSession(c))
	h.render(c, http.StatusOK, snap)
}

func (h *Handlers) render(c *gin.Context, status int, snap form.Snapshot) {
	page := h.pages.Page(shell.State{
		Theme:     h.theme(c),
		Router:    h.router(c),
		Form:      snap,
		CSRFField: csrf.TemplateField(c.Request),
		CSRFToken: csrf.Token(c.Request),
	})
	c.Header("Cache-Control", "no-store")
	c.HTML(status, web.IndexTemplate, page)
}

// SelectSection handles a navigation click. Content sections become active;
// the registration entry only scrolls to the form.
func (h *Handlers) SelectSection(c *gin.Context) {
	s, err := sections.Parse(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "section inconnue")
		return
	}

	router := h.router(c)
	effect := router.Select(s)
	if effect == sections.ScrollToContent {
		h.setCookie(c, sectionCookie, router.Active().String(), 0, false)
	}
	c.Redirect(http.StatusSeeOther, "/#"+effect.Anchor())
}

// HandleRegisterForm processes the HTML form post and redirects back to the
// form, which then shows the success panel or the error banner.
func (h *Handlers) HandleRegisterForm(c *gin.Context) {
	id := h.session(c)
	log := middleware.Logger(c, h.logger).WithSession(id)
	holder := h.sessions.Get(id)

	if holder.Snapshot().Submitting() {
		// The page keeps showing the values being sent.
		log.Warn("registration already in progress")
		c.Redirect(http.StatusSeeOther, "/#register")
		return
	}

	for _, name := range models.Fields {
		if err := holder.UpdateField(name, c.PostForm(name)); err != nil {
			log.Error("error updating form field", "field", name, "error", err)
		}
	}

	err := holder.Submit(c.Request.Context())
	var verr *form.ValidationError
	switch {
	case err == nil:
		log.Info("registration submitted")
	case errors.As(err, &verr):
		// Not stored: the banner only accompanies this response.
		snap := holder.Snapshot()
		snap.Status = form.StatusFailed
		snap.Message = verr.UserMessage()
		h.render(c, http.StatusBadRequest, snap)
		return
	case form.IsInProgress(err):
		log.Warn("registration already in progress")
	default:
		log.Warn("registration failed", "error", err)
	}
	c.Redirect(http.StatusSeeOther, "/#register")
}

// ToggleTheme switches between the dark and light scheme.
func (h *Handlers) ToggleTheme(c *gin.Context) {
	next := h.theme(c).Toggle()
	h.setCookie(c, themeCookie, next.String(), themeMaxAge, false)
	c.Redirect(http.StatusSeeOther, "/")
}
