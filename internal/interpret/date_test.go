package interpret

import (
	"testing"

	"ledgerbot/internal/core"
)

func TestResolveDate(t *testing.T) {
	ref := core.NewDate(2024, 1, 10)

	tests := []struct {
		name      string
		text      string
		want      string
		wantFound bool
	}{
		{name: "today", text: "how much did I spend today", want: "2024-01-10", wantFound: true},
		{name: "yesterday", text: "spent 10 yesterday", want: "2024-01-09", wantFound: true},
		{name: "day before yesterday", text: "paid 5 day before yesterday", want: "2024-01-08", wantFound: true},
		{name: "slash day month", text: "paid on 5/3", want: "2024-03-05", wantFound: true},
		{name: "dash day month", text: "paid on 5-3", want: "2024-03-05", wantFound: true},
		{name: "explicit year", text: "paid on 24/12/2023", want: "2023-12-24", wantFound: true},
		{name: "no date reference", text: "no date info", wantFound: false},
		{name: "invalid day month pair", text: "paid on 31/2", wantFound: false},
		{name: "month out of range", text: "paid on 10/13", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ResolveDate(tt.text, ref)
			if found != tt.wantFound {
				t.Fatalf("ResolveDate(%q) found = %v, want %v", tt.text, found, tt.wantFound)
			}
			if found && got.String() != tt.want {
				t.Errorf("ResolveDate(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}

func TestResolveDateLongerPhraseWins(t *testing.T) {
	ref := core.NewDate(2024, 1, 10)
	got, found := ResolveDate("day before yesterday", ref)
	if !found || got.String() != "2024-01-08" {
		t.Errorf(`"day before yesterday" resolved to %s (found=%v), want 2024-01-08`, got, found)
	}
}
