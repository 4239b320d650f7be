// AngelaMos | 2026
// client_test.go

package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendOrder(t *testing.T) {
	var received Order

	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.WriteHeader(http.StatusOK)
		},
	))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, slog.Default())

	order := Order{
		CustomerName:   "Jane Doe",
		CustomerEmail:  "jane@x.com",
		Plan:           "Quarterly",
		Amount:         4000,
		DurationMonths: 3,
		UserID:         "cust-1",
		Timestamp:      time.Now(),
	}

	require.NoError(t, client.SendOrder(context.Background(), order))
	assert.Equal(t, "Jane Doe", received.CustomerName)
	assert.Equal(t, 4000, received.Amount)
}

func TestSendOrderRelayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		},
	))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, slog.Default())

	err := client.SendOrder(context.Background(), Order{UserID: "cust-1"})
	assert.ErrorContains(t, err, "502")
}

func TestSendOrderUnreachableEndpoint(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", time.Second, slog.Default())

	err := client.SendOrder(context.Background(), Order{UserID: "cust-1"})
	assert.Error(t, err)
}
