package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ordenes-api/internal/application/ports"
)

func TestPublish_EnviaJSON(t *testing.T) {
	var got payload
	var header string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Get("X-Event-Type")
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(srv.URL, time.Second)
	err := n.Publish(context.Background(), ports.Event{
		Type:       ports.EventOrderCommitted,
		OccurredAt: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
		Payload:    map[string]string{"number": "PO0008"},
	})
	require.NoError(t, err)
	assert.Equal(t, ports.EventOrderCommitted, header)
	assert.Equal(t, ports.EventOrderCommitted, got.Type)
	assert.Equal(t, "2024-03-15T10:00:00Z", got.OccurredAt)
	assert.Equal(t, map[string]any{"number": "PO0008"}, got.Data)
}

func TestPublish_ErrorHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewWebhookNotifier(srv.URL, time.Second).Publish(context.Background(), ports.Event{Type: ports.EventLowStock})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestNew_SinURLEsNop(t *testing.T) {
	n := New("", 0)
	assert.IsType(t, Nop{}, n)
	assert.NoError(t, n.Publish(context.Background(), ports.Event{}))
}
