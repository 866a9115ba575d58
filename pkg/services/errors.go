package services

import "fmt"

// User-facing messages. They never include technical detail; the cause is
// logged instead.
const (
	MsgConfiguration = "Erreur de configuration. Veuillez contacter le support."
	MsgTransport     = "Erreur lors de l'envoi. Vérifiez votre connexion et réessayez."
)

// ErrorKind classifies a failed submission.
type ErrorKind int

const (
	// KindConfiguration means no submission endpoint is configured.
	KindConfiguration ErrorKind = iota + 1
	// KindTransport covers network failures and non-2xx responses.
	KindTransport
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// SubmissionError is returned by SubmissionService.Submit. Message is safe
// to show to the visitor; Cause is for logs only.
type SubmissionError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("%s error: %v", e.Kind, e.Cause)
}

func (e *SubmissionError) Unwrap() error {
	return e.Cause
}

// UserMessage implements the form package's user-message contract.
func (e *SubmissionError) UserMessage() string {
	return e.Message
}
