package http

import (
	"encoding/json"
	"net/http"

	"log/slog"

	"ledgerbot/internal/bot"
)

const maxWebhookBody = 64 << 10 // 64 KiB

// handleHome is a plain liveness page so gateway setup can be verified
// from a browser.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "ledgerbot",
	})
}

// handleWebhook receives one inbound message from the gateway and always
// answers 200 with a reply body. Parse and business failures are folded
// into the reply text so the gateway never retries a message the user
// already got an answer for.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var msg bot.InboundMessage
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxWebhookBody)).Decode(&msg); err != nil {
		// Treat an undecodable payload like an empty message
		slog.WarnContext(r.Context(), "Failed to decode webhook payload", "error", err)
		msg = bot.InboundMessage{}
	}

	reply := s.handler.HandleMessage(r.Context(), msg)
	writeJSON(w, http.StatusOK, reply)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
