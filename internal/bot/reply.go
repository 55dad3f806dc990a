package bot

import (
	"fmt"
	"strings"

	"ledgerbot/internal/core"
	"ledgerbot/internal/ledger"
)

// Canned replies for states that carry no data.
const (
	replyNothingToDo      = "Got your message, but there was nothing I could act on."
	replyNotUnderstood    = `Sorry, I didn't understand that. Try "spent 20 on market" or "how much did I spend today".`
	replyNoAmount         = "I couldn't identify an amount in that message, so nothing was recorded."
	replyQueryUnavailable = "I couldn't look that up right now. Please try again in a moment."
	replyNoRecords        = "No spending found for that period."
)

// buildRecordReply summarizes what was understood and stored. The amount
// always uses a dot decimal, regardless of how the user wrote it.
func buildRecordReply(tx core.Transaction) string {
	verb := "Recorded expense of"
	if tx.Kind == core.Income {
		verb = "Recorded income of"
	}
	return fmt.Sprintf("%s %s (%s) on %s.", verb, tx.Amount.String(), tx.Category, tx.OccurredOn.String())
}

// buildNotSavedReply acknowledges an understood message that could not be
// persisted.
func buildNotSavedReply(tx core.Transaction) string {
	return fmt.Sprintf("I understood %s of %s (%s), but couldn't save it. Please try again.",
		string(tx.Kind), tx.Amount.String(), tx.Category)
}

// buildQueryReply renders the aggregation: total first, then per-category
// subtotals in first-seen order.
func buildQueryReply(summary ledger.Summary) string {
	if summary.Empty() {
		return replyNoRecords
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You spent %s%s.", summary.Total.String(), describePeriod(summary.Period))
	for _, row := range summary.ByCategory {
		fmt.Fprintf(&b, "\n- %s: %s", row.Category, row.Amount.String())
	}
	return b.String()
}

func describePeriod(p ledger.Period) string {
	switch {
	case p.IsAllTime():
		return " in total"
	case p.From.Equal(p.To.Time):
		return " on " + p.From.String()
	default:
		return fmt.Sprintf(" between %s and %s", p.From.String(), p.To.String())
	}
}
