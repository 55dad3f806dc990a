package interpret

import "strings"

const (
	IntentQuery   Intent = "query"
	IntentRecord  Intent = "record"
	IntentUnknown Intent = "unknown"
)

// Intent is the caller's purpose for a message: ask for a summary or
// record a transaction.
type Intent string

// Trigger sets are checked in a fixed priority order: query triggers before
// record triggers, so "how much did I spend today" is a query even though
// it contains "spend". Both sets are substring matches against the
// lower-cased text.
var (
	queryTriggers = []string{
		"how much",
		"summary",
		"this month",
		"today",
		"yesterday",
		"day",
	}
	recordTriggers = []string{
		"spent",
		"paid",
		"bought",
		"received",
	}
)

// ClassifyIntent decides whether text is a query, a record request, or
// neither.
func ClassifyIntent(text string) Intent {
	lower := strings.ToLower(text)
	for _, trigger := range queryTriggers {
		if strings.Contains(lower, trigger) {
			return IntentQuery
		}
	}
	for _, trigger := range recordTriggers {
		if strings.Contains(lower, trigger) {
			return IntentRecord
		}
	}
	return IntentUnknown
}
