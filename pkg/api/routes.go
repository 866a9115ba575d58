package api

import (
	"github.com/gin-gonic/gin"

	"bootcamp-landing/pkg/web"
)

// Register mounts every route on r. submit middleware (rate limiting) runs
// only on the endpoints that reach the sheet.
func (h *Handlers) Register(r *gin.Engine, submit ...gin.HandlerFunc) {
	r.GET("/", h.Index)
	r.GET("/health", h.HealthCheck)
	r.GET("/sections/:id", h.SelectSection)
	r.POST("/theme", h.ToggleTheme)
	r.StaticFS("/static", web.Static())

	r.POST("/register", chain(submit, h.HandleRegisterForm)...)

	api := r.Group("/api")
	api.GET("/form", h.FormState)
	api.POST("/phone/normalize", h.NormalizePhone)
	api.POST("/registrations", chain(submit, h.HandleRegistration)...)
}

func chain(mw []gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(mw)+1)
	out = append(out, mw...)
	return append(out, handler)
}
