// Package bot orchestrates one inbound message: classify, record or
// query, compose a reply, and fire the best-effort notification.
package bot

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"ledgerbot/internal/core"
	"ledgerbot/internal/interpret"
	"ledgerbot/internal/ledger"
	"ledgerbot/internal/notify"
)

// InboundMessage is what the gateway delivers. Both fields are optional at
// the boundary; either one missing short-circuits to a fallback reply.
type InboundMessage struct {
	From string `json:"from"`
	Body string `json:"body"`
}

// ParsedRecord describes what was understood from a record message.
type ParsedRecord struct {
	Kind       string `json:"kind"`
	Category   string `json:"category"`
	Amount     string `json:"amount"`
	OccurredOn string `json:"occurred_on"`
	Saved      bool   `json:"saved"`
}

// CategoryAmount is one row of a query breakdown.
type CategoryAmount struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

// QueryResult describes the aggregation behind a query reply.
type QueryResult struct {
	Total      string           `json:"total"`
	Count      int              `json:"count"`
	ByCategory []CategoryAmount `json:"by_category"`
}

// Reply is the webhook response body. Status is always "ok": every failure
// mode is absorbed into the reply text, never into an error status.
type Reply struct {
	Status   string         `json:"status"`
	Received InboundMessage `json:"received"`
	Intent   string         `json:"intent"`
	Text     string         `json:"reply"`
	Parsed   *ParsedRecord  `json:"parsed,omitempty"`
	Summary  *QueryResult   `json:"summary,omitempty"`
}

// TransactionStore is the persistence surface the service writes to and
// queries through.
type TransactionStore interface {
	InsertTransaction(ctx context.Context, tx core.Transaction) (int64, error)
	ledger.TransactionReader
}

// ExportPublisher queues a recorded transaction for ledger export.
type ExportPublisher interface {
	PublishExport(ctx context.Context, id int64) error
}

// Service handles one message per call and holds no per-request state.
type Service struct {
	store     TransactionStore
	publisher ExportPublisher
	notifier  notify.Sender
	interp    *interpret.Interpreter
	engine    *ledger.Engine

	now func() time.Time
}

func NewService(store TransactionStore, publisher ExportPublisher, notifier notify.Sender, interp *interpret.Interpreter) *Service {
	return &Service{
		store:     store,
		publisher: publisher,
		notifier:  notifier,
		interp:    interp,
		engine:    ledger.NewEngine(store),
		now:       time.Now,
	}
}

// HandleMessage runs the full pipeline for one inbound message. It always
// returns a reply; infrastructure failures degrade the text instead of
// propagating.
func (s *Service) HandleMessage(ctx context.Context, msg InboundMessage) Reply {
	reply := Reply{Status: "ok", Received: msg}

	text := strings.TrimSpace(msg.Body)
	if msg.From == "" || text == "" {
		reply.Intent = string(interpret.IntentUnknown)
		reply.Text = replyNothingToDo
		return reply
	}

	today := core.DateOf(s.now())
	intent := interpret.ClassifyIntent(text)
	reply.Intent = string(intent)

	switch intent {
	case interpret.IntentRecord:
		s.handleRecord(ctx, &reply, msg.From, text, today)
	case interpret.IntentQuery:
		s.handleQuery(ctx, &reply, msg.From, text, today)
	default:
		reply.Text = replyNotUnderstood
	}

	notify.BestEffortSend(ctx, s.notifier, msg.From, reply.Text)
	return reply
}

func (s *Service) handleRecord(ctx context.Context, reply *Reply, phone, text string, today core.Date) {
	tx, err := s.interp.Interpret(phone, text, today)
	if errors.Is(err, interpret.ErrNoAmount) {
		reply.Text = replyNoAmount
		return
	}
	if err != nil {
		slog.ErrorContext(ctx, "Interpret failed", "error", err)
		reply.Text = replyNotUnderstood
		return
	}

	parsed := &ParsedRecord{
		Kind:       string(tx.Kind),
		Category:   tx.Category,
		Amount:     tx.Amount.String(),
		OccurredOn: tx.OccurredOn.String(),
	}
	reply.Parsed = parsed

	id, err := s.store.InsertTransaction(ctx, tx)
	if err != nil {
		// Degrade instead of failing the request: the user learns the
		// message was understood but not stored.
		slog.ErrorContext(ctx, "Transaction insert failed",
			"error", err,
			"phone", phone,
			"amount_cents", tx.Amount.Cents)
		reply.Text = buildNotSavedReply(tx)
		return
	}
	tx.ID = id
	parsed.Saved = true

	if s.publisher != nil {
		if err := s.publisher.PublishExport(ctx, id); err != nil {
			// Export is asynchronous and best-effort; the periodic sweep
			// picks the row up later.
			slog.WarnContext(ctx, "Failed to publish export message", "id", id, "error", err)
		}
	}

	reply.Text = buildRecordReply(tx)
}

func (s *Service) handleQuery(ctx context.Context, reply *Reply, phone, text string, today core.Date) {
	period := ledger.ResolvePeriod(text, today)
	summary, err := s.engine.Summarize(ctx, phone, period)
	if err != nil {
		slog.ErrorContext(ctx, "Query failed", "error", err, "phone", phone)
		reply.Text = replyQueryUnavailable
		return
	}

	result := &QueryResult{Total: summary.Total.String(), Count: summary.Count}
	for _, row := range summary.ByCategory {
		result.ByCategory = append(result.ByCategory, CategoryAmount{
			Category: row.Category,
			Amount:   row.Amount.String(),
		})
	}
	reply.Summary = result
	reply.Text = buildQueryReply(summary)
}
