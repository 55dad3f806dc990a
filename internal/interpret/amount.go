// Package interpret turns free-text messages into structured transactions.
//
// Every function here is pure: the same text and reference date always
// produce the same result, and nothing is persisted at this layer.
package interpret

import (
	"regexp"

	"ledgerbot/internal/core"
)

// amountPattern matches the first decimal token: digits optionally followed
// by a comma or dot separator and more digits.
var amountPattern = regexp.MustCompile(`\d+(?:[.,]\d+)?`)

// ParseAmount extracts the first decimal number from text and returns it as
// cents. The second return value reports whether an amount was found.
//
// Only the first number in the text is used. "bought 2 items for 50" yields
// 2, not 50. That mirrors the observed behavior and is kept deliberately;
// see DESIGN.md before changing it.
func ParseAmount(text string) (core.Money, bool) {
	token := amountPattern.FindString(text)
	if token == "" {
		return core.Money{}, false
	}
	cents, err := core.ParseDecimalToCents(token)
	if err != nil {
		return core.Money{}, false
	}
	return core.Money{Cents: cents}, true
}
