package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bootcamp-landing/pkg/sections"
	"bootcamp-landing/pkg/theme"
)

const (
	sessionCookie = "bootcamp_session"
	sectionCookie = "bootcamp_section"
	themeCookie   = "bootcamp_theme"

	themeMaxAge = 365 * 24 * 60 * 60
)

// session returns the visitor's session id, issuing a new one if the cookie
// is missing or malformed. Only handlers that write to the form call it.
func (h *Handlers) session(c *gin.Context) string {
	if id := h.existingSession(c); id != "" {
		return id
	}
	id := uuid.NewString()
	h.setCookie(c, sessionCookie, id, int(h.opts.SessionTTL.Seconds()), true)
	return id
}

// existingSession returns the id from a valid session cookie, or "".
func (h *Handlers) existingSession(c *gin.Context) string {
	v, err := c.Cookie(sessionCookie)
	if err != nil {
		return ""
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return ""
	}
	return id.String()
}

func (h *Handlers) router(c *gin.Context) *sections.Router {
	v, _ := c.Cookie(sectionCookie)
	return sections.Restore(v)
}

func (h *Handlers) theme(c *gin.Context) theme.Theme {
	v, _ := c.Cookie(themeCookie)
	return theme.Parse(v)
}

func (h *Handlers) setCookie(c *gin.Context, name, value string, maxAge int, httpOnly bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", h.opts.CookieSecure, httpOnly)
}
