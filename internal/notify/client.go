// AngelaMos | 2026
// client.go

// Package notify relays order records to an external form-relay endpoint.
// The relay is advisory: membership activation never waits on it and a
// failed relay is logged, not propagated.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

type Order struct {
	CustomerName   string    `json:"customerName"`
	CustomerEmail  string    `json:"customerEmail"`
	Plan           string    `json:"plan"`
	Amount         int       `json:"amount"`
	DurationMonths int       `json:"durationMonths"`
	UserID         string    `json:"userId"`
	Timestamp      time.Time `json:"timestamp"`
}

type Client struct {
	endpoint string
	client   *http.Client
	timeout  time.Duration
	logger   *slog.Logger
}

func NewClient(endpoint string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		timeout:  timeout,
		logger:   logger,
	}
}

// SendOrder posts the order record and waits for the response. Used
// directly only when a caller wants the outcome.
func (c *Client) SendOrder(ctx context.Context, order Order) error {
	body, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.endpoint,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send order: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // response body drain

	_, _ = io.Copy(io.Discard, resp.Body) //nolint:errcheck // drain for reuse

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("send order: relay returned %d", resp.StatusCode)
	}

	return nil
}

// SendOrderAsync fires the relay in the background with its own timeout,
// detached from the request context so a finished request does not cancel
// the relay mid-flight.
func (c *Client) SendOrderAsync(order Order) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()

		if err := c.SendOrder(ctx, order); err != nil {
			c.logger.Warn("order notification failed",
				"error", err,
				"user_id", order.UserID,
				"plan", order.Plan,
			)
		}
	}()
}
