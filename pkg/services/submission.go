package services

import (
	"context"
	"errors"

	"bootcamp-landing/pkg/clients/sheetdb"
	"bootcamp-landing/pkg/logging"
	"bootcamp-landing/pkg/models"
	"bootcamp-landing/pkg/utils"
)

// SubmissionService sends completed registrations to the spreadsheet sink.
// It makes exactly one attempt per call: no retry, no idempotency key.
type SubmissionService interface {
	Submit(ctx context.Context, row models.SheetRow) error
}

type submissionServiceImpl struct {
	sheetClient sheetdb.Client
	logger      *logging.Logger
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(sheetClient sheetdb.Client, logger *logging.Logger) SubmissionService {
	return &submissionServiceImpl{
		sheetClient: sheetClient,
		logger:      logger,
	}
}

// Submit forwards row to the sheet and maps any failure to a *SubmissionError.
func (s *submissionServiceImpl) Submit(ctx context.Context, row models.SheetRow) error {
	log := s.logger.With("phone_hash", utils.PhoneHash(row.RawPhone()))

	if !s.sheetClient.Configured() {
		log.Error("submission endpoint is not configured")
		return &SubmissionError{Kind: KindConfiguration, Message: MsgConfiguration, Cause: sheetdb.ErrNotConfigured}
	}

	log.Info("submitting registration")

	err := s.sheetClient.CreateRow(ctx, row)
	switch {
	case err == nil:
		log.Info("registration stored in sheet")
		return nil
	case errors.Is(err, sheetdb.ErrNotConfigured):
		log.Error("submission endpoint is not configured")
		return &SubmissionError{Kind: KindConfiguration, Message: MsgConfiguration, Cause: err}
	default:
		var statusErr *sheetdb.StatusError
		if errors.As(err, &statusErr) {
			log.Error("sheet rejected registration", "status", statusErr.StatusCode, "body", statusErr.Body)
		} else {
			log.Error("error sending registration", "error", err)
		}
		return &SubmissionError{Kind: KindTransport, Message: MsgTransport, Cause: err}
	}
}
