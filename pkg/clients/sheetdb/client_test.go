package sheetdb

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bootcamp-landing/pkg/models"
)

func sampleRow() models.SheetRow {
	return models.SheetRow{
		Name:       "Awa Diop",
		Email:      "awa@example.com",
		Phone:      "'+221 77 123 45 67",
		Location:   "Dakar, Sénégal",
		Experience: "1 an avec React",
		Motivation: "Construire des produits",
		Timestamp:  "2025-01-02T03:04:05.000Z",
	}
}

func TestCreateRowPostsDataEnvelope(t *testing.T) {
	var got map[string]map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	require.True(t, client.Configured())
	require.NoError(t, client.CreateRow(context.Background(), sampleRow()))

	data := got["data"]
	require.NotNil(t, data)
	assert.Equal(t, "'+221 77 123 45 67", data["phone"])
	assert.Equal(t, "Awa Diop", data["name"])
	assert.Equal(t, "2025-01-02T03:04:05.000Z", data["timestamp"])
	assert.Len(t, data, 7)
}

func TestCreateRowNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "sheet exploded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := NewClient(srv.URL).CreateRow(context.Background(), sampleRow())
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "sheet exploded")
}

func TestCreateRowNotConfigured(t *testing.T) {
	client := NewClient("")
	assert.False(t, client.Configured())
	assert.ErrorIs(t, client.CreateRow(context.Background(), sampleRow()), ErrNotConfigured)
}

func TestCreateRowTransportError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	url := srv.URL
	srv.Close()

	err := NewClient(url).CreateRow(context.Background(), sampleRow())
	require.Error(t, err)
	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
	assert.Zero(t, calls.Load())
}

func TestWithHTTPClientUsesProvidedClient(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	assert.Error(t, NewClient(srv.URL).CreateRow(context.Background(), sampleRow()),
		"default client does not trust the test certificate")
	assert.NoError(t, NewClient(srv.URL, WithHTTPClient(srv.Client())).CreateRow(context.Background(), sampleRow()))
}

func TestWithTimeoutAfterNilClient(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	client := NewClient(srv.URL, WithHTTPClient(nil), WithTimeout(50*time.Millisecond))
	err := client.CreateRow(context.Background(), sampleRow())
	require.Error(t, err)
	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
}
