package interpret

import (
	"errors"
	"strings"

	"ledgerbot/internal/core"
)

// ErrNoAmount reports that no monetary amount could be found in the text.
// The amount is the only field without a default; a message that yields no
// amount never becomes a transaction.
var ErrNoAmount = errors.New("no amount found in text")

// incomeTriggers flip the transaction kind to income. Everything else
// defaults to expense.
var incomeTriggers = []string{"earned", "received", "salary"}

// Interpreter composes amount, category, and date extraction into one
// transaction record.
type Interpreter struct {
	categories *Classifier
}

func NewInterpreter(categories *Classifier) *Interpreter {
	return &Interpreter{categories: categories}
}

// Interpret builds a candidate transaction from a message. ref supplies
// "today" for relative dates and the fallback when the text names no date.
//
// Interpret is a pure function of its arguments: the same text and
// reference date always produce the same record.
func (i *Interpreter) Interpret(phone, text string, ref core.Date) (core.Transaction, error) {
	amount, ok := ParseAmount(text)
	if !ok {
		return core.Transaction{}, ErrNoAmount
	}

	occurredOn, ok := ResolveDate(text, ref)
	if !ok {
		occurredOn = ref
	}

	return core.Transaction{
		Phone:      phone,
		Kind:       classifyKind(text),
		Category:   i.categories.Classify(text),
		Amount:     amount,
		RawText:    text,
		OccurredOn: occurredOn,
	}, nil
}

func classifyKind(text string) core.Kind {
	lower := strings.ToLower(text)
	for _, trigger := range incomeTriggers {
		if strings.Contains(lower, trigger) {
			return core.Income
		}
	}
	return core.Expense
}
