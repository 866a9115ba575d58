package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"bootcamp-landing/pkg/form"
	"bootcamp-landing/pkg/logging"
	"bootcamp-landing/pkg/middleware"
	"bootcamp-landing/pkg/models"
	"bootcamp-landing/pkg/services"
	"bootcamp-landing/pkg/shell"
	"bootcamp-landing/pkg/utils"
)

// Messages returned by the JSON API in addition to the form and service ones.
const (
	MsgReceived         = "Candidature reçue. Nous vous recontacterons bientôt."
	MsgInProgress       = "Une soumission est déjà en cours. Veuillez patienter."
	MsgInvalidJSON      = "Format de requête invalide."
	MsgInvalidEmail     = "Veuillez saisir une adresse email valide."
	MsgValidationFailed = form.MsgMissingFields
)

// Options configures cookie handling.
type Options struct {
	CookieSecure bool
	SessionTTL   time.Duration
}

// Handlers contains all HTTP handlers for the landing site
type Handlers struct {
	sessions *services.FormSessions
	pages    *shell.Shell
	logger   *logging.Logger
	opts     Options
}

// NewHandlers creates a new Handlers instance
func NewHandlers(sessions *services.FormSessions, pages *shell.Shell, logger *logging.Logger, opts Options) *Handlers {
	if logger == nil {
		logger = logging.Nop()
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = services.DefaultSessionTTL
	}
	return &Handlers{
		sessions: sessions,
		pages:    pages,
		logger:   logger,
		opts:     opts,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

type registrationResponse struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// HandleRegistration is the JSON variant of the registration form. It shares
// the visitor's form with the HTML page, so a second call while the first is
// in flight is rejected with 409.
func (h *Handlers) HandleRegistration(c *gin.Context) {
	id := h.session(c)
	log := middleware.Logger(c, h.logger).WithSession(id)

	var input models.RegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			log.Warn("error parsing registration JSON", "error", err)
			c.JSON(http.StatusBadRequest, registrationResponse{Status: "error", Message: MsgInvalidJSON})
			return
		}
		c.JSON(http.StatusBadRequest, validationResponse(verrs))
		return
	}

	holder := h.sessions.Get(id)
	if holder.Snapshot().Submitting() {
		c.JSON(http.StatusConflict, registrationResponse{Status: "error", Message: MsgInProgress})
		return
	}
	for name, value := range input.Values() {
		if err := holder.UpdateField(name, value); err != nil {
			log.Error("error updating form field", "field", name, "error", err)
			c.JSON(http.StatusInternalServerError, registrationResponse{Status: "error", Message: form.MsgGeneric})
			return
		}
	}

	err := holder.Submit(c.Request.Context())
	if err == nil {
		log.Info("registration submitted", "phone_hash", utils.PhoneHash(input.Phone))
		c.JSON(http.StatusOK, registrationResponse{Status: "success", Message: MsgReceived})
		return
	}

	status, resp := errorResponse(err)
	log.Warn("registration rejected", "status", status, "error", err)
	c.JSON(status, resp)
}

func validationResponse(verrs validator.ValidationErrors) registrationResponse {
	resp := registrationResponse{Status: "error", Message: MsgValidationFailed}
	for _, fe := range verrs {
		resp.Fields = append(resp.Fields, strings.ToLower(fe.Field()))
		if fe.Tag() == "email" {
			resp.Message = MsgInvalidEmail
		}
	}
	return resp
}

// errorResponse maps a Submit error to an HTTP status and visitor message.
func errorResponse(err error) (int, registrationResponse) {
	resp := registrationResponse{Status: "error", Message: form.UserMessage(err)}

	var verr *form.ValidationError
	var serr *services.SubmissionError
	switch {
	case form.IsInProgress(err):
		resp.Message = MsgInProgress
		return http.StatusConflict, resp
	case errors.As(err, &verr):
		resp.Fields = verr.Fields
		return http.StatusBadRequest, resp
	case errors.As(err, &serr) && serr.Kind == services.KindConfiguration:
		return http.StatusServiceUnavailable, resp
	case errors.As(err, &serr):
		return http.StatusBadGateway, resp
	default:
		return http.StatusInternalServerError, resp
	}
}

type formStateResponse struct {
	Status  string                   `json:"status"`
	Message string                   `json:"message,omitempty"`
	Input   models.RegistrationInput `json:"input"`
}

// FormState returns the visitor's form as JSON.
func (h *Handlers) FormState(c *gin.Context) {
	snap := h.sessions.Snapshot(h.existingSession(c))
	c.JSON(http.StatusOK, formStateResponse{
		Status:  snap.Status.String(),
		Message: snap.Message,
		Input:   snap.Input,
	})
}

type phoneRequest struct {
	Phone string `json:"phone"`
}

// NormalizePhone formats a partially typed phone number.
func (h *Handlers) NormalizePhone(c *gin.Context) {
	var req phoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": MsgInvalidJSON})
		return
	}
	c.JSON(http.StatusOK, phoneRequest{Phone: utils.NormalizePhone(req.Phone)})
}
