package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGatewaySend(t *testing.T) {
	var got outboundMessage
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	g := NewGateway(srv.URL, "secret", 2*time.Second)
	if err := g.Send(context.Background(), "+55119", "recorded 43.50"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if got.To != "+55119" || got.Body != "recorded 43.50" {
		t.Errorf("gateway received %+v", got)
	}
	if auth != "Bearer secret" {
		t.Errorf("Authorization = %q, want Bearer secret", auth)
	}
}

func TestGatewaySendNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	g := NewGateway(srv.URL, "", time.Second)
	if err := g.Send(context.Background(), "+55119", "hello"); err == nil {
		t.Error("expected error for 502 response")
	}
}

func TestGatewaySendTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	g := NewGateway(srv.URL, "", 20*time.Millisecond)
	if err := g.Send(context.Background(), "+55119", "hello"); err == nil {
		t.Error("expected timeout error")
	}
}

type failingSender struct{ calls int }

func (f *failingSender) Send(context.Context, string, string) error {
	f.calls++
	return errors.New("provider down")
}

func TestBestEffortSendSwallowsFailure(t *testing.T) {
	sender := &failingSender{}
	// Must not panic or propagate the error
	BestEffortSend(context.Background(), sender, "+55119", "hello")
	if sender.calls != 1 {
		t.Errorf("sender called %d times, want 1", sender.calls)
	}
}

func TestBestEffortSendSkipsEmptyTargets(t *testing.T) {
	sender := &failingSender{}
	BestEffortSend(context.Background(), sender, "", "hello")
	BestEffortSend(context.Background(), sender, "+55119", "")
	BestEffortSend(context.Background(), nil, "+55119", "hello")
	if sender.calls != 0 {
		t.Errorf("sender called %d times, want 0", sender.calls)
	}
}
