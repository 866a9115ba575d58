package services

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bootcamp-landing/pkg/clients/sheetdb"
	"bootcamp-landing/pkg/form"
	"bootcamp-landing/pkg/logging"
	"bootcamp-landing/pkg/models"
)

func testRow() models.SheetRow {
	return models.SheetRow{
		Name:       "Awa Diop",
		Email:      "awa@example.com",
		Phone:      "'77 123 45 67",
		Location:   "Dakar",
		Experience: "1 an",
		Motivation: "Apprendre",
		Timestamp:  "2025-01-01T00:00:00.000Z",
	}
}

func sheetServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestSubmitSuccess(t *testing.T) {
	srv, calls := sheetServer(t, http.StatusOK, `{"created":1}`)
	svc := NewSubmissionService(sheetdb.NewClient(srv.URL), logging.Nop())

	require.NoError(t, svc.Submit(context.Background(), testRow()))
	assert.EqualValues(t, 1, calls.Load())
}

func TestSubmitServerErrorIsTransportError(t *testing.T) {
	srv, _ := sheetServer(t, http.StatusInternalServerError, "stack trace: secret")
	var logs bytes.Buffer
	svc := NewSubmissionService(sheetdb.NewClient(srv.URL), logging.New(&logs, logging.LevelInfo))

	err := svc.Submit(context.Background(), testRow())

	var subErr *SubmissionError
	require.True(t, errors.As(err, &subErr))
	assert.Equal(t, KindTransport, subErr.Kind)
	assert.Equal(t, MsgTransport, subErr.Message)
	assert.NotContains(t, subErr.Message, "secret")
	assert.Equal(t, MsgTransport, form.UserMessage(err))

	assert.Contains(t, logs.String(), "stack trace: secret", "raw cause is logged")
	assert.NotContains(t, logs.String(), "77 123 45 67", "phone is logged hashed")
}

func TestSubmitNotConfiguredMakesNoCall(t *testing.T) {
	_, calls := sheetServer(t, http.StatusOK, "")
	svc := NewSubmissionService(sheetdb.NewClient(""), logging.Nop())

	err := svc.Submit(context.Background(), testRow())

	var subErr *SubmissionError
	require.True(t, errors.As(err, &subErr))
	assert.Equal(t, KindConfiguration, subErr.Kind)
	assert.Equal(t, MsgConfiguration, subErr.UserMessage())
	assert.ErrorIs(t, err, sheetdb.ErrNotConfigured)
	assert.Zero(t, calls.Load())
}

func TestSubmitUnreachableIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := NewSubmissionService(sheetdb.NewClient(url), logging.Nop()).Submit(context.Background(), testRow())

	var subErr *SubmissionError
	require.True(t, errors.As(err, &subErr))
	assert.Equal(t, KindTransport, subErr.Kind)
	assert.Equal(t, "transport", subErr.Kind.String())
}

func TestHolderAgainstSheetEndpoint(t *testing.T) {
	srv, calls := sheetServer(t, http.StatusInternalServerError, "boom")
	svc := NewSubmissionService(sheetdb.NewClient(srv.URL), logging.Nop())
	h := form.NewHolder(svc)
	defer h.Close()

	for _, f := range models.Fields {
		require.NoError(t, h.UpdateField(f, "771234567"))
	}
	require.Error(t, h.Submit(context.Background()))

	snap := h.Snapshot()
	assert.Equal(t, form.StatusFailed, snap.Status)
	assert.Equal(t, MsgTransport, snap.Message)
	assert.EqualValues(t, 1, calls.Load())
}
