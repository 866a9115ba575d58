package form

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSubmitInProgress is returned by Submit while a previous submission
	// has not completed. No request is made.
	ErrSubmitInProgress = errors.New("submission already in progress")
	// ErrUnknownField is returned by UpdateField for names outside models.Fields.
	ErrUnknownField = errors.New("unknown form field")
	// ErrClosed is returned by Submit after Close.
	ErrClosed = errors.New("form holder closed")
)

// Shown when a failure carries no message of its own.
const MsgGeneric = "Une erreur est survenue. Veuillez réessayer."

// MsgMissingFields is shown when required fields are empty.
const MsgMissingFields = "Veuillez remplir tous les champs obligatoires."

// ValidationError lists required fields that were empty at submit time.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

func (e *ValidationError) UserMessage() string {
	return MsgMissingFields
}

// userMessager is implemented by errors that carry a visitor-safe message.
type userMessager interface {
	UserMessage() string
}

// UserMessage returns the message to display for err. Errors that do not
// carry their own message get MsgGeneric, so raw errors never reach a page.
func UserMessage(err error) string {
	var um userMessager
	if errors.As(err, &um) && um.UserMessage() != "" {
		return um.UserMessage()
	}
	return MsgGeneric
}
