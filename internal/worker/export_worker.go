// Package worker moves recorded transactions from the local database to
// the Google Sheets ledger.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ledgerbot/internal/amqp"
	"ledgerbot/internal/core"
	"ledgerbot/internal/storage"
)

// TransactionSource is the storage surface the worker needs.
type TransactionSource interface {
	GetTransaction(ctx context.Context, id int64) (core.Transaction, error)
	ListPendingExport(ctx context.Context, limit int) ([]int64, error)
	MarkExported(ctx context.Context, id int64) error
	MarkExportError(ctx context.Context, id int64) error
}

// LedgerAppender writes one transaction row to the external ledger.
type LedgerAppender interface {
	Append(ctx context.Context, tx core.Transaction) (string, error)
}

// ExportWorker consumes export messages and periodically sweeps rows the
// queue missed.
type ExportWorker struct {
	source    TransactionSource
	appender  LedgerAppender
	batchSize int
}

func NewExportWorker(source TransactionSource, appender LedgerAppender, batchSize int) *ExportWorker {
	if batchSize < 1 {
		batchSize = 10
	}
	return &ExportWorker{
		source:    source,
		appender:  appender,
		batchSize: batchSize,
	}
}

// HandleExportMessage exports the transaction named by one queue message.
// A transaction that no longer exists is dropped rather than requeued
// forever.
func (w *ExportWorker) HandleExportMessage(ctx context.Context, msg *amqp.ExportMessage) error {
	return w.exportOne(ctx, msg.ID)
}

func (w *ExportWorker) exportOne(ctx context.Context, id int64) error {
	tx, err := w.source.GetTransaction(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		slog.WarnContext(ctx, "Transaction missing, dropping export", "id", id)
		return nil
	}
	if err != nil {
		return fmt.Errorf("load transaction %d: %w", id, err)
	}

	ref, err := w.appender.Append(ctx, tx)
	if err != nil {
		if markErr := w.source.MarkExportError(ctx, id); markErr != nil {
			slog.ErrorContext(ctx, "Failed to mark export error", "id", id, "error", markErr)
		}
		return fmt.Errorf("append transaction %d to ledger: %w", id, err)
	}

	if err := w.source.MarkExported(ctx, id); err != nil {
		return fmt.Errorf("mark transaction %d exported: %w", id, err)
	}

	slog.InfoContext(ctx, "Transaction exported",
		"id", id,
		"ref", ref,
		"category", tx.Category,
		"amount_cents", tx.Amount.Cents)
	return nil
}

// ProcessPending sweeps transactions still marked pending. This catches
// rows recorded while the queue or worker was down.
func (w *ExportWorker) ProcessPending(ctx context.Context) error {
	ids, err := w.source.ListPendingExport(ctx, w.batchSize)
	if err != nil {
		return fmt.Errorf("list pending exports: %w", err)
	}
	if len(ids) == 0 {
		return nil
	}

	slog.InfoContext(ctx, "Processing pending exports", "count", len(ids))

	var failed int
	for _, id := range ids {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := w.exportOne(ctx, id); err != nil {
			slog.ErrorContext(ctx, "Pending export failed", "id", id, "error", err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d pending exports failed", failed, len(ids))
	}
	return nil
}
