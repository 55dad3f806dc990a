package core

import "testing"

func TestParseDecimalToCents(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "dot separator", input: "12.34", want: 1234},
		{name: "comma separator", input: "25,90", want: 2590},
		{name: "bare integer", input: "50", want: 5000},
		{name: "single fractional digit", input: "7.5", want: 750},
		{name: "third digit rounds down", input: "12.344", want: 1234},
		{name: "third digit rounds up", input: "12.346", want: 1235},
		{name: "leading dot", input: ".99", want: 99},
		{name: "empty", input: "", wantErr: true},
		{name: "negative", input: "-5", wantErr: true},
		{name: "explicit plus", input: "+5", wantErr: true},
		{name: "zero", input: "0", wantErr: true},
		{name: "letters", input: "abc", wantErr: true},
		{name: "two separators", input: "1.2.3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDecimalToCents(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDecimalToCents(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseDecimalToCents(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestMoneyString(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{4350, "43.50"},
		{5000, "50.00"},
		{7, "0.07"},
		{-1234, "-12.34"},
	}

	for _, tt := range tests {
		if got := (Money{Cents: tt.cents}).String(); got != tt.want {
			t.Errorf("Money{%d}.String() = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestTransactionValidate(t *testing.T) {
	valid := Transaction{
		Phone:      "+55119",
		Kind:       Expense,
		Category:   "market",
		Amount:     Money{Cents: 4350},
		RawText:    "spent 43,50 on market",
		OccurredOn: NewDate(2024, 1, 10),
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid transaction rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Transaction)
	}{
		{"missing phone", func(tx *Transaction) { tx.Phone = " " }},
		{"bad kind", func(tx *Transaction) { tx.Kind = "transfer" }},
		{"zero amount", func(tx *Transaction) { tx.Amount = Money{} }},
		{"empty text", func(tx *Transaction) { tx.RawText = "" }},
		{"zero date", func(tx *Transaction) { tx.OccurredOn = Date{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := valid
			tt.mutate(&tx)
			if err := tx.Validate(); err == nil {
				t.Errorf("expected validation error for %s", tt.name)
			}
		})
	}
}

func TestDateHelpers(t *testing.T) {
	d := NewDate(2024, 1, 10)
	if got := d.AddDays(-1).String(); got != "2024-01-09" {
		t.Errorf("AddDays(-1) = %s, want 2024-01-09", got)
	}
	if got := d.MonthStart().String(); got != "2024-01-01" {
		t.Errorf("MonthStart() = %s, want 2024-01-01", got)
	}
	back, err := ParseDate(d.String())
	if err != nil {
		t.Fatalf("ParseDate round trip: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Errorf("ParseDate round trip mismatch: %s != %s", back, d)
	}
}
