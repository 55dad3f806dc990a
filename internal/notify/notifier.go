// Package notify delivers reply texts back to the messaging gateway.
//
// Delivery is best-effort by design: a failed or slow send is logged and
// discarded, and must never fail the inbound request that produced it.
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

// Sender pushes one text message to a recipient.
type Sender interface {
	Send(ctx context.Context, to, text string) error
}

// Gateway posts messages to an HTTP messaging gateway (a WhatsApp-style
// provider endpoint).
type Gateway struct {
	url     string
	token   string
	client  *http.Client
	timeout time.Duration
}

type outboundMessage struct {
	To   string `json:"to"`
	Body string `json:"body"`
}

func NewGateway(url, token string, timeout time.Duration) *Gateway {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Gateway{
		url:     url,
		token:   token,
		client:  &http.Client{Timeout: timeout},
		timeout: timeout,
	}
}

// Send posts the message and treats any non-2xx status as a failure.
// The per-call timeout bounds how long an inbound request can be held up.
func (g *Gateway) Send(ctx context.Context, to, text string) error {
	body, err := json.Marshal(outboundMessage{To: to, Body: text})
	if err != nil {
		return fmt.Errorf("marshal outbound message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("post to gateway: %w", err)
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}
	return nil
}

// BestEffortSend sends the reply and swallows any failure after logging it.
// Callers never see an error from an outbound notification.
func BestEffortSend(ctx context.Context, sender Sender, to, text string) {
	if sender == nil || to == "" || text == "" {
		return
	}
	if err := sender.Send(ctx, to, text); err != nil {
		slog.WarnContext(ctx, "Outbound notification failed",
			"to", to,
			"error", err)
		return
	}
	slog.DebugContext(ctx, "Outbound notification sent", "to", to)
}

// Nop is a Sender that discards messages. Used when no gateway is
// configured.
type Nop struct{}

func (Nop) Send(context.Context, string, string) error { return nil }
