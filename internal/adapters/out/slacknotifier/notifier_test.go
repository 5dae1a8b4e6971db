package slacknotifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/beacon/internal/domain"
)

func TestNew_RequiresWebhookURL(t *testing.T) {
	_, err := New("")
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestNotifier_PostsTextPayload(t *testing.T) {
	var (
		method string
		body   map[string]any
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	n, err := New(server.URL, WithHTTPClient(server.Client()))
	require.NoError(t, err)

	err = n.Notify(context.Background(), "https://api.example.com", domain.Degraded)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "Service DEGRADED\nhttps://api.example.com", body["text"])
}

func TestNotifier_SinkErrorIsReturned(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	n, err := New(server.URL)
	require.NoError(t, err)

	err = n.Notify(context.Background(), "https://api.example.com", domain.Outage)
	assert.ErrorIs(t, err, domain.ErrNotificationFailed)
}

func TestNotifier_UnreachableSink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	n, err := New(url)
	require.NoError(t, err)

	err = n.Notify(context.Background(), "https://api.example.com", domain.Operational)
	assert.ErrorIs(t, err, domain.ErrNotificationFailed)
}
