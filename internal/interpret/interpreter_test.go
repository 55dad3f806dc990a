package interpret

import (
	"errors"
	"reflect"
	"testing"

	"ledgerbot/internal/core"
)

func TestInterpret(t *testing.T) {
	interp := NewInterpreter(NewClassifier())
	ref := core.NewDate(2024, 1, 10)

	tests := []struct {
		name    string
		text    string
		want    core.Transaction
		wantErr error
	}{
		{
			name: "expense with category",
			text: "spent 43,50 on market",
			want: core.Transaction{
				Phone:      "+55119",
				Kind:       core.Expense,
				Category:   "market",
				Amount:     core.Money{Cents: 4350},
				RawText:    "spent 43,50 on market",
				OccurredOn: ref,
			},
		},
		{
			name: "income from salary",
			text: "received 1000 salary",
			want: core.Transaction{
				Phone:      "+55119",
				Kind:       core.Income,
				Category:   core.DefaultCategory,
				Amount:     core.Money{Cents: 100000},
				RawText:    "received 1000 salary",
				OccurredOn: ref,
			},
		},
		{
			name: "explicit date",
			text: "paid 80 rent on 5/3",
			want: core.Transaction{
				Phone:      "+55119",
				Kind:       core.Expense,
				Category:   "housing",
				Amount:     core.Money{Cents: 8000},
				RawText:    "paid 80 rent on 5/3",
				OccurredOn: core.NewDate(2024, 3, 5),
			},
		},
		{
			name: "invalid date falls back to reference",
			text: "paid 80 rent on 31/2",
			want: core.Transaction{
				Phone:      "+55119",
				Kind:       core.Expense,
				Category:   "housing",
				Amount:     core.Money{Cents: 8000},
				RawText:    "paid 80 rent on 31/2",
				OccurredOn: ref,
			},
		},
		{
			name:    "no amount",
			text:    "paid the electricity bill",
			wantErr: ErrNoAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := interp.Interpret("+55119", tt.text, ref)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Interpret(%q) error = %v, want %v", tt.text, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Interpret(%q): %v", tt.text, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Interpret(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestInterpretIsIdempotent(t *testing.T) {
	interp := NewInterpreter(NewClassifier())
	ref := core.NewDate(2024, 1, 10)

	first, err := interp.Interpret("+55119", "spent 43,50 on market", ref)
	if err != nil {
		t.Fatal(err)
	}
	second, err := interp.Interpret("+55119", "spent 43,50 on market", ref)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("interpreting the same text twice differed: %+v vs %+v", first, second)
	}
}

func TestInterpretedTransactionValidates(t *testing.T) {
	interp := NewInterpreter(NewClassifier())
	tx, err := interp.Interpret("+55119", "bought 12.90 lunch", core.NewDate(2024, 1, 10))
	if err != nil {
		t.Fatal(err)
	}
	if err := tx.Validate(); err != nil {
		t.Errorf("interpreted transaction failed validation: %v", err)
	}
}
