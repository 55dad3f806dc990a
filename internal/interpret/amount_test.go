package interpret

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantCents int64
		wantFound bool
	}{
		{name: "integer amount", text: "spent 50 on market", wantCents: 5000, wantFound: true},
		{name: "comma decimal", text: "spent 25,90", wantCents: 2590, wantFound: true},
		{name: "dot decimal", text: "paid 43.50 for groceries", wantCents: 4350, wantFound: true},
		{name: "no digits", text: "hello", wantFound: false},
		{name: "first number wins", text: "bought 2 items for 50", wantCents: 200, wantFound: true},
		{name: "amount at start", text: "12 bus ticket", wantCents: 1200, wantFound: true},
		{name: "zero is not an amount", text: "spent 0 today", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ParseAmount(tt.text)
			if found != tt.wantFound {
				t.Fatalf("ParseAmount(%q) found = %v, want %v", tt.text, found, tt.wantFound)
			}
			if found && got.Cents != tt.wantCents {
				t.Errorf("ParseAmount(%q) = %d cents, want %d", tt.text, got.Cents, tt.wantCents)
			}
		})
	}
}
