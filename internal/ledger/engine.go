// Package ledger answers "how much did I spend" questions by aggregating
// persisted transactions.
package ledger

import (
	"context"
	"fmt"
	"strings"

	"ledgerbot/internal/core"
	"ledgerbot/internal/interpret"
)

// Period is an inclusive range of calendar days used to filter a query.
// The zero value means all-time.
type Period struct {
	From core.Date
	To   core.Date
}

// IsAllTime reports whether the period applies no filter.
func (p Period) IsAllTime() bool {
	return p.From.IsEmpty() && p.To.IsEmpty()
}

// Contains reports whether d falls inside the period.
func (p Period) Contains(d core.Date) bool {
	if p.IsAllTime() {
		return true
	}
	return !d.Before(p.From.Time) && !d.After(p.To.Time)
}

// Day returns a single-day period.
func Day(d core.Date) Period {
	return Period{From: d, To: d}
}

// MonthToDate returns the period from the first of ref's month through ref.
func MonthToDate(ref core.Date) Period {
	return Period{From: ref.MonthStart(), To: ref}
}

// ResolvePeriod derives the query window from the message text. An explicit
// or relative date wins; otherwise a "month" trigger selects month-to-date;
// otherwise the query is unfiltered.
func ResolvePeriod(text string, ref core.Date) Period {
	if d, ok := interpret.ResolveDate(text, ref); ok {
		return Day(d)
	}
	if strings.Contains(strings.ToLower(text), "month") {
		return MonthToDate(ref)
	}
	return Period{}
}

// TransactionReader is the storage port the engine reads from. An empty
// result is valid, not an error.
type TransactionReader interface {
	ListTransactions(ctx context.Context, phone string, p Period) ([]core.Transaction, error)
}

// CategoryTotal is one row of the per-category breakdown.
type CategoryTotal struct {
	Category string
	Amount   core.Money
}

// Summary aggregates expense totals for one phone over a period.
// ByCategory keeps first-seen order while summing, not sorted order.
type Summary struct {
	Period     Period
	Total      core.Money
	ByCategory []CategoryTotal
	Count      int
}

// Empty reports whether the filtered set had no expense records. This is a
// user-visible reply state ("no spending found"), not an error.
func (s Summary) Empty() bool {
	return s.Count == 0
}

// Engine aggregates transactions read from storage.
type Engine struct {
	reader TransactionReader
}

func NewEngine(reader TransactionReader) *Engine {
	return &Engine{reader: reader}
}

// Summarize fetches the phone's transactions for the period and totals the
// expenses, overall and per category.
func (e *Engine) Summarize(ctx context.Context, phone string, p Period) (Summary, error) {
	txs, err := e.reader.ListTransactions(ctx, phone, p)
	if err != nil {
		return Summary{}, fmt.Errorf("list transactions: %w", err)
	}

	summary := Summary{Period: p}
	index := make(map[string]int)
	for _, tx := range txs {
		if tx.Kind != core.Expense {
			continue
		}
		summary.Total.Cents += tx.Amount.Cents
		summary.Count++
		i, seen := index[tx.Category]
		if !seen {
			i = len(summary.ByCategory)
			index[tx.Category] = i
			summary.ByCategory = append(summary.ByCategory, CategoryTotal{Category: tx.Category})
		}
		summary.ByCategory[i].Amount.Cents += tx.Amount.Cents
	}
	return summary, nil
}
